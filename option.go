package getopt

import (
	"fmt"
	"reflect"
	"strings"
)

// Option is a registered short or long option. There are two kinds: flags,
// which never take a value, and value-bearing options created from a Value.
type Option interface {
	// Name is the option name without its leading dashes.
	Name() string
	// FullName is the option name with its leading dashes.
	FullName() string
	Description() string
	Pattern() OptionPattern
	// Used reports whether the option appeared in the parsed arguments.
	Used() bool
	// Capability returns the argument forms the option accepts; ArgNone for
	// flags.
	Capability() ArgPattern
	// AddRawValue converts token to the option's value type and stores it.
	AddRawValue(token string) error
	// Describe returns the option signature and description used in help
	// output.
	Describe() (signature, description string)

	markUsed()
	clone() Option
	valueType() reflect.Type
}

type baseOption struct {
	name    string
	desc    string
	pattern OptionPattern
	used    bool
}

func newBaseOption(name, desc string, pattern OptionPattern) (baseOption, error) {
	switch {
	case name == "":
		return baseOption{}, configErr(name, "option name must not be empty")
	case name[0] == '-':
		return baseOption{}, configErr(name, "option name must not start with '-'")
	case strings.ContainsRune(name, '='):
		return baseOption{}, configErr(name, "option name must not contain '='")
	case strings.ContainsRune(name, ' '):
		return baseOption{}, configErr(name, "option name must not contain a space")
	}
	return baseOption{
		name:    name,
		desc:    desc,
		pattern: pattern,
	}, nil
}

func (o *baseOption) Name() string           { return o.name }
func (o *baseOption) Description() string    { return o.desc }
func (o *baseOption) Pattern() OptionPattern { return o.pattern }
func (o *baseOption) Used() bool             { return o.used }
func (o *baseOption) markUsed()              { o.used = true }

func (o *baseOption) FullName() string {
	return o.pattern.prefix() + o.name
}

// flag

type flagOption struct {
	baseOption
}

func newFlagOption(name, desc string, pattern OptionPattern) (*flagOption, error) {
	base, err := newBaseOption(name, desc, pattern)
	if err != nil {
		return nil, err
	}
	return &flagOption{base}, nil
}

func (o *flagOption) Capability() ArgPattern { return ArgNone }

func (o *flagOption) AddRawValue(token string) error {
	return usageErr("option cannot take a value", o.FullName())
}

func (o *flagOption) Describe() (string, string) {
	return o.FullName(), o.desc
}

func (o *flagOption) clone() Option {
	c := *o
	return &c
}

func (o *flagOption) valueType() reflect.Type { return nil }

// value-bearing

type valueOption[T any] struct {
	baseOption
	info   Value[T]
	arg    ArgPattern
	values []T
}

func (o *valueOption[T]) Capability() ArgPattern { return o.arg }

func (o *valueOption[T]) AddRawValue(token string) error {
	v, err := convert[T](token)
	if err != nil {
		return &ConversionError{
			Option: o.FullName(),
			Token:  token,
			Type:   typeName[T](),
			Err:    err,
		}
	}
	return o.AddValue(v)
}

// AddValue stores x. The first value received discards the defaults; once
// the limit is reached, the last value is overwritten instead of appended.
func (o *valueOption[T]) AddValue(x T) error {
	if o.info.constraint != nil && !o.info.constraint(x) {
		return &ConstraintError{Option: o.FullName(), Value: fmt.Sprint(x)}
	}
	if !o.used {
		o.values = nil
	}
	if o.info.unlimited() || len(o.values) < o.info.limit {
		o.values = append(o.values, x)
	} else {
		o.values[o.info.limit-1] = x
	}
	o.used = true
	return nil
}

func (o *valueOption[T]) Describe() (string, string) {
	return o.FullName() + o.arg.separator(o.pattern) + o.info.placeholder(), o.desc
}

func (o *valueOption[T]) clone() Option {
	c := *o
	c.values = append([]T(nil), o.values...)
	return &c
}

func (o *valueOption[T]) valueType() reflect.Type { return typeOf[T]() }
