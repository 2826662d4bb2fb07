package getopt

import (
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/huandu/xstrings"
	"github.com/pkg/errors"
)

// field is an exported struct field bound to options by Bind.
type field struct {
	path        string
	name        string
	short       string
	help        string
	placeholder string
	limit       int
	unlimited   bool
	suffix      string
	noLong      bool
	args        bool

	binder binder
}

// Bind registers options for the exported fields of config, which must be a
// pointer to a struct. Non-zero field values become defaults. The options are
// controlled with struct tags like `getopt:"short=v,help='be louder, please'"`:
//
// `-` skip the field
//
// `name=<name>` long option name; defaults to the field name in kebab case
//
// `short=<name>` also register a short option
//
// `nolong` do not register a long option
//
// `help=<text>` option description
//
// `placeholder=<text>` argument name shown in the description
//
// `limit=<n>`, `unlimited` how many values to keep; slice fields are
// unlimited unless a limit is given
//
// `eq`, `next` only accept "--name=value" or "--name value" respectively
//
// `args` the field, a []string, receives the leftover arguments
//
// bool fields become flags. Supported value types are string, int, int64,
// uint, float64 and time.Duration, and slices of them.
func (s *Set) Bind(config interface{}) *Set {
	if s.err != nil {
		return s
	}
	fields, err := getFieldsFromConfig(config)
	if err != nil {
		s.err = err
		return s
	}
	for _, f := range fields {
		if f.args {
			continue
		}
		if err := f.binder.register(s, f); err != nil {
			s.err = errors.Wrapf(err, "problem with field %s", f.path)
			return s
		}
	}
	return s
}

// Decode copies the values held by r into config, which must have the same
// type as the struct passed to Bind. Fields whose options hold no value are
// left alone.
func Decode(r *Registry, config interface{}) error {
	fields, err := getFieldsFromConfig(config)
	if err != nil {
		return err
	}
	for _, f := range fields {
		if f.args {
			f.binder.(argsBinder).set(r.Leftovers())
			continue
		}
		h, err := f.lookup(r)
		if err != nil {
			return errors.Wrapf(err, "problem with field %s", f.path)
		}
		if err := f.binder.decode(h); err != nil {
			return errors.Wrapf(err, "problem with field %s", f.path)
		}
	}
	return nil
}

// lookup finds the option holding the field's value, preferring the short
// option only when it was used and the long one was not.
func (f field) lookup(r *Registry) (Handle, error) {
	var long, short Handle
	var err error
	if !f.noLong {
		if _, ok := f.binder.(flagBinder); ok {
			long, err = r.LookupLong(f.name)
		} else {
			long, err = r.LookupLong(f.name + f.suffix)
		}
		if err != nil {
			return Handle{}, err
		}
	}
	if f.short != "" {
		short, err = r.LookupShort(f.short)
		if err != nil {
			return Handle{}, err
		}
	}
	if long.Option() == nil || (short.Used() && !long.Used()) {
		return short, nil
	}
	return long, nil
}

func getFieldsFromConfig(config interface{}) ([]field, error) {
	configVal := reflect.ValueOf(config)
	if !configVal.IsValid() {
		return nil, configErr("", "invalid config value")
	}
	if configVal.Kind() != reflect.Ptr {
		return nil, configErr("", "config must be a struct pointer (got %s)", configVal.Type())
	}

	configElemVal := configVal.Elem()
	if !configElemVal.IsValid() || configElemVal.Kind() != reflect.Struct {
		return nil, configErr("", "config must be a struct pointer (got %s)", configVal.Type())
	}

	return getFields(configElemVal)
}

// sv must be a reflected struct pointer element
func getFields(sv reflect.Value) ([]field, error) {
	fields := []field{}
	for i := 0; i < sv.NumField(); i++ {
		sf := sv.Type().Field(i)
		val := sv.Field(i)

		tags := parseTagSet(sf.Tag.Get("getopt"))
		if tags.has("-") {
			continue
		}

		// embedded struct, recurse; its exported fields are settable even
		// when the embedded type is not
		if sf.Anonymous && val.Kind() == reflect.Struct {
			embedded, err := getFields(val)
			if err != nil {
				return nil, err
			}
			fields = append(fields, embedded...)
			continue
		}

		// ignore unaddressable and unexported fields
		if !val.CanSet() {
			continue
		}

		f, err := newField(sv.Type().Name()+"."+sf.Name, sf, val, tags)
		if err != nil {
			return nil, errors.Wrapf(err, "problem with field %s.%s", sv.Type(), sf.Name)
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func newField(path string, sf reflect.StructField, val reflect.Value, tags tagSet) (field, error) {
	f := field{
		path: path,
		name: xstrings.ToKebabCase(sf.Name),
	}

	if name, ok := tags.pop("name"); ok {
		f.name = name
	}
	if short, ok := tags.pop("short"); ok {
		if short == "" {
			return f, configErr("", "short name must not be empty")
		}
		f.short = short
	}
	f.help, _ = tags.pop("help")
	f.placeholder, _ = tags.pop("placeholder")
	if limit, ok := tags.pop("limit"); ok {
		n, err := strconv.Atoi(limit)
		if err != nil || n <= 0 {
			return f, configErr("", "limit must be a positive integer (got %q)", limit)
		}
		f.limit = n
	}
	f.unlimited = tags.has("unlimited")
	if tags.has("eq") {
		f.suffix = "="
	}
	if tags.has("next") {
		if f.suffix != "" {
			return f, configErr("", "eq and next cannot be combined")
		}
		f.suffix = " "
	}
	f.noLong = tags.has("nolong")
	f.args = tags.has("args")

	if keys := tags.remaining(); len(keys) > 0 {
		return f, configErr("", "unknown tags: %s", strings.Join(keys, ", "))
	}
	if f.noLong && f.short == "" && !f.args {
		return f, configErr("", "nolong requires a short name")
	}

	if f.args {
		p, ok := val.Addr().Interface().(*[]string)
		if !ok {
			return f, configErr("", "field has an args tag but type is not a slice of strings")
		}
		f.binder = argsBinder{p}
		return f, nil
	}

	b := binderFor(val.Addr().Interface())
	if b == nil {
		return f, configErr("", "unsupported type %s", val.Type())
	}
	f.binder = b
	return f, nil
}

// binder registers and decodes the options of a field of one concrete type.
type binder interface {
	register(s *Set, f field) error
	decode(h Handle) error
}

func binderFor(i interface{}) binder {
	switch p := i.(type) {
	case *bool:
		return flagBinder{p}
	case *string:
		return scalarBinder[string]{p}
	case *int:
		return scalarBinder[int]{p}
	case *int64:
		return scalarBinder[int64]{p}
	case *uint:
		return scalarBinder[uint]{p}
	case *float64:
		return scalarBinder[float64]{p}
	case *time.Duration:
		return scalarBinder[time.Duration]{p}
	case *[]string:
		return sliceBinder[string]{p}
	case *[]int:
		return sliceBinder[int]{p}
	case *[]int64:
		return sliceBinder[int64]{p}
	case *[]uint:
		return sliceBinder[uint]{p}
	case *[]float64:
		return sliceBinder[float64]{p}
	case *[]time.Duration:
		return sliceBinder[time.Duration]{p}
	default:
		return nil
	}
}

type flagBinder struct {
	p *bool
}

func (b flagBinder) register(s *Set, f field) error {
	if !f.noLong {
		s.Long(f.name, f.help)
	}
	if f.short != "" {
		s.Short(f.short, f.help)
	}
	return s.err
}

func (b flagBinder) decode(h Handle) error {
	if h.Used() {
		*b.p = true
	}
	return nil
}

type scalarBinder[T comparable] struct {
	p *T
}

func (b scalarBinder[T]) register(s *Set, f field) error {
	v := NewValue[T]()
	var zero T
	if *b.p != zero {
		v.Default(*b.p)
	}
	return registerValue(s, f, v)
}

func (b scalarBinder[T]) decode(h Handle) error {
	x, err := Get[T](h)
	if isNoValue(err) {
		return nil
	} else if err != nil {
		return err
	}
	*b.p = x
	return nil
}

type sliceBinder[T any] struct {
	p *[]T
}

func (b sliceBinder[T]) register(s *Set, f field) error {
	v := NewValue[T](*b.p...).Unlimited()
	return registerValue(s, f, v)
}

func (b sliceBinder[T]) decode(h Handle) error {
	xs, err := GetSlice[T](h)
	if isNoValue(err) {
		return nil
	} else if err != nil {
		return err
	}
	*b.p = xs
	return nil
}

type argsBinder struct {
	p *[]string
}

func (b argsBinder) set(args []string) {
	*b.p = args
}

func (b argsBinder) register(s *Set, f field) error { return nil }
func (b argsBinder) decode(h Handle) error          { return nil }

func registerValue[T any](s *Set, f field, v *Value[T]) error {
	if f.placeholder != "" {
		v.Name(f.placeholder)
	}
	if f.unlimited {
		v.Unlimited()
	}
	if f.limit > 0 {
		v.Limit(f.limit)
	}
	if !f.noLong {
		s.LongValue(f.name+f.suffix, v, f.help)
	}
	if f.short != "" {
		s.ShortValue(f.short, v, f.help)
	}
	return s.err
}

func isNoValue(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue) && ue.Reason == reasonNoValue
}
