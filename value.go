package getopt

import (
	"fmt"
)

// NoLimit is the limit of a Value that accepts any number of arguments.
const NoLimit = -1

// Value describes the argument(s) of a value-bearing option: its defaults,
// how many values it keeps, an optional constraint, and the name shown for it
// in help output.
//
// Configuration mistakes (such as a limit smaller than the number of
// defaults) are recorded on the Value and reported by Err and by the Set
// method the Value is registered with. Once an error is recorded, further
// configuration calls are ignored.
type Value[T any] struct {
	defaults   []T
	limit      int
	constraint func(T) bool
	name       string
	err        error
}

// NewValue returns a Value holding the given defaults, keeping at most one
// argument and displayed as "arg".
func NewValue[T any](defaults ...T) *Value[T] {
	v := &Value[T]{
		limit: 1,
		name:  "arg",
	}
	return v.Default(defaults...)
}

// Default appends xs to the defaults. Every new default must satisfy the
// constraint, if one is already attached.
func (v *Value[T]) Default(xs ...T) *Value[T] {
	if v.err != nil {
		return v
	}
	if v.constraint != nil {
		for _, x := range xs {
			if !v.constraint(x) {
				v.err = configErr("", "default value %v does not satisfy the constraint", x)
				return v
			}
		}
	}
	v.defaults = append(v.defaults, xs...)
	return v
}

// Limit sets how many values the option keeps. Values received past the
// limit overwrite the last one.
func (v *Value[T]) Limit(n int) *Value[T] {
	if v.err != nil {
		return v
	}
	if n <= 0 {
		v.err = configErr("", "limit must be positive (got %d)", n)
		return v
	}
	if n < len(v.defaults) {
		v.err = configErr("", "limit %d is smaller than the number of defaults (%d)", n, len(v.defaults))
		return v
	}
	v.limit = n
	return v
}

// Unlimited lets the option keep any number of values.
func (v *Value[T]) Unlimited() *Value[T] {
	if v.err != nil {
		return v
	}
	v.limit = NoLimit
	return v
}

// Constraint attaches a predicate every value must satisfy. The existing
// defaults are checked immediately.
func (v *Value[T]) Constraint(f func(T) bool) *Value[T] {
	if v.err != nil {
		return v
	}
	for _, x := range v.defaults {
		if !f(x) {
			v.err = configErr("", "default value %v does not satisfy the constraint", x)
			return v
		}
	}
	v.constraint = f
	return v
}

// Name sets the placeholder shown for the argument in help output.
func (v *Value[T]) Name(name string) *Value[T] {
	if v.err != nil {
		return v
	}
	v.name = name
	return v
}

// Err returns the first configuration error recorded on v.
func (v *Value[T]) Err() error {
	return v.err
}

// Defaults returns a copy of the configured defaults.
func (v *Value[T]) Defaults() []T {
	return append([]T(nil), v.defaults...)
}

// Max returns the configured limit, or NoLimit.
func (v *Value[T]) Max() int {
	return v.limit
}

// DisplayName returns the placeholder shown in help output.
func (v *Value[T]) DisplayName() string {
	return v.name
}

func (v *Value[T]) unlimited() bool {
	return v.limit == NoLimit
}

// placeholder renders the argument part of an option signature, e.g.
// "<arg...[1-3]>(=1,2)".
func (v *Value[T]) placeholder() string {
	s := "<" + v.name
	if v.unlimited() {
		s += "..."
	} else if v.limit > 1 {
		s += fmt.Sprintf("...[1-%d]", v.limit)
	}
	s += ">"
	if len(v.defaults) > 0 {
		s += "(=" + joinValues(v.defaults) + ")"
	}
	return s
}

// Valuer is implemented by *Value[T] for every T; it lets the non-generic
// registration methods of Set accept any value descriptor.
type Valuer interface {
	newOption(name, desc string, pattern OptionPattern, arg ArgPattern) (Option, error)
}

func (v *Value[T]) newOption(name, desc string, pattern OptionPattern, arg ArgPattern) (Option, error) {
	full := pattern.prefix() + name
	if v.err != nil {
		if ce, ok := v.err.(*ConfigError); ok && ce.Option == "" {
			return nil, &ConfigError{Option: full, Reason: ce.Reason}
		}
		return nil, v.err
	}
	if arg == ArgNone {
		return nil, configErr(full, "a value-bearing option must accept an argument")
	}
	if !canConvert[T]() {
		return nil, configErr(full, "no setter for type %s", typeName[T]())
	}
	if !v.unlimited() && len(v.defaults) > v.limit {
		return nil, configErr(full, "limit %d is smaller than the number of defaults (%d)", v.limit, len(v.defaults))
	}
	base, err := newBaseOption(name, desc, pattern)
	if err != nil {
		return nil, err
	}
	info := *v
	info.defaults = v.Defaults()
	o := &valueOption[T]{
		baseOption: base,
		info:       info,
		arg:        arg,
		values:     v.Defaults(),
	}
	return o, nil
}
