package getopt

// Handle gives access to one option of a Registry.
type Handle struct {
	opt Option
}

// Used reports whether the option appeared in the parsed arguments.
func (h Handle) Used() bool {
	return h.opt != nil && h.opt.Used()
}

// Option returns the underlying option.
func (h Handle) Option() Option {
	return h.opt
}

// Get returns the first value stored for the option behind h. Stored values
// are returned whether or not the option was used, so defaults stay
// available; check Used to tell the two apart.
func Get[T any](h Handle) (T, error) {
	var zero T
	o, err := valueOptionOf[T](h)
	if err != nil {
		return zero, err
	}
	return o.values[0], nil
}

// GetSlice is like Get, but returns every stored value.
func GetSlice[T any](h Handle) ([]T, error) {
	o, err := valueOptionOf[T](h)
	if err != nil {
		return nil, err
	}
	return append([]T(nil), o.values...), nil
}

func valueOptionOf[T any](h Handle) (*valueOption[T], error) {
	if h.opt == nil {
		return nil, &LookupError{Name: "<nil>"}
	}
	if h.opt.Capability().Has(ArgNone) {
		return nil, usageErr("option cannot hold a value", h.opt.FullName())
	}
	o, ok := h.opt.(*valueOption[T])
	if !ok {
		return nil, &TypeError{
			Option: h.opt.FullName(),
			Want:   typeName[T](),
			Have:   h.opt.valueType().String(),
		}
	}
	if len(o.values) == 0 {
		return nil, usageErr(reasonNoValue, h.opt.FullName())
	}
	return o, nil
}
