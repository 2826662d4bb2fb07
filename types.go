package getopt

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Setter can be implemented by any pointer type to make it usable as an
// option value type. Set is called once per argument.
type Setter interface {
	Set(s string) error
}

// setters

func tryGetSetter(i interface{}) Setter {
	switch v := i.(type) {
	case Setter:
		return v
	case encoding.TextUnmarshaler:
		return textSetter{v}
	case encoding.BinaryUnmarshaler:
		return binarySetter{v}
	case *time.Duration:
		return durationSetter{v}
	case *string:
		return stringSetter{v}
	case
		*bool,
		*int, *int8, *int16, *int32, *int64,
		*uint, *uint8, *uint16, *uint32, *uint64,
		*float32, *float64:
		return scanfSetter{v}
	default:
		return nil
	}
}

// canConvert reports whether strings can be converted to T.
func canConvert[T any]() bool {
	var v T
	return tryGetSetter(&v) != nil
}

// convert parses s into a fresh T.
func convert[T any](s string) (T, error) {
	var v T
	set := tryGetSetter(&v)
	if set == nil {
		return v, errors.Errorf("no setter for type %s", typeName[T]())
	}
	if err := set.Set(s); err != nil {
		return v, err
	}
	return v, nil
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func typeName[T any]() string {
	return typeOf[T]().String()
}

// string

type stringSetter struct {
	v *string
}

func (ss stringSetter) Set(s string) error {
	*ss.v = s
	return nil
}

// TextUnmarshaler

type textSetter struct {
	encoding.TextUnmarshaler
}

func (ts textSetter) Set(s string) error {
	return ts.UnmarshalText([]byte(s))
}

// BinaryUnmarshaler

type binarySetter struct {
	encoding.BinaryUnmarshaler
}

func (bs binarySetter) Set(s string) error {
	return bs.UnmarshalBinary([]byte(s))
}

// Primitives (scanf)

type scanfSetter struct {
	v interface{}
}

func (ss scanfSetter) Set(s string) error {
	r := strings.NewReader(s)
	n, err := fmt.Fscanf(r, "%v", ss.v)
	if err != nil {
		return err
	} else if n == 0 {
		return errors.New("scanf did not scan any items")
	}
	if r.Len() > 0 {
		return errors.Errorf("unexpected trailing text %q", s[len(s)-r.Len():])
	}
	return nil
}

// time.Duration

type durationSetter struct {
	duration *time.Duration
}

func (ds durationSetter) Set(s string) error {
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*ds.duration = v
	return nil
}
