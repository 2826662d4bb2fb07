package getopt

import (
	"fmt"
)

// ConfigError is returned when an option or value descriptor is registered
// with an invalid configuration. It always indicates a programming error.
type ConfigError struct {
	Option string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Option == "" {
		return fmt.Sprintf("invalid option configuration: %s", e.Reason)
	}
	return fmt.Sprintf("invalid option configuration for %q: %s", e.Option, e.Reason)
}

// ConversionError is returned when an argument cannot be converted to the
// type declared for the option it was passed to.
type ConversionError struct {
	Option string
	Token  string
	Type   string
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("invalid value %q for option %s: cannot convert to %s", e.Token, e.Option, e.Type)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// ConstraintError is returned when a converted value is rejected by the
// constraint attached to its option.
type ConstraintError struct {
	Option string
	Value  string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("value %s for option %s does not satisfy its constraint", e.Value, e.Option)
}

// UsageError is returned when the argument vector does not match the
// registered options, or when a value is requested from an option that
// cannot hold one.
type UsageError struct {
	Token  string
	Reason string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Token)
}

// LookupError is returned when a caller queries an option name that was
// never registered.
type LookupError struct {
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("no such option: %s", e.Name)
}

// TypeError is returned when a value is requested as a type other than the
// one the option stores.
type TypeError struct {
	Option string
	Want   string
	Have   string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("option %s holds values of type %s, not %s", e.Option, e.Have, e.Want)
}

const reasonNoValue = "no value present"

func usageErr(reason, token string) error {
	return &UsageError{Token: token, Reason: reason}
}

func configErr(option, format string, args ...interface{}) error {
	return &ConfigError{Option: option, Reason: fmt.Sprintf(format, args...)}
}
