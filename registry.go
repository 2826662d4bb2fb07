package getopt

import (
	"strings"
)

// handle identifies an option inside a Registry by partition and index. It
// stays valid across Clone.
type handle struct {
	pattern OptionPattern
	index   int
}

// Registry holds registered options and, after parsing, the arguments that
// were not options. A Set owns the template Registry; every parse works on a
// clone of it, so the registry returned by ParseArgs can be inspected and
// modified freely.
type Registry struct {
	shorts    []Option
	longs     []Option
	order     []handle
	leftovers []string
}

func newRegistry() *Registry {
	return &Registry{
		shorts:    []Option{},
		longs:     []Option{},
		order:     []handle{},
		leftovers: []string{},
	}
}

func (r *Registry) add(o Option) {
	h := handle{pattern: o.Pattern()}
	if o.Pattern() == LongOption {
		h.index = len(r.longs)
		r.longs = append(r.longs, o)
	} else {
		h.index = len(r.shorts)
		r.shorts = append(r.shorts, o)
	}
	r.order = append(r.order, h)
}

func (r *Registry) get(h handle) Option {
	if h.pattern == LongOption {
		return r.longs[h.index]
	}
	return r.shorts[h.index]
}

// Clone returns a deep copy of r.
func (r *Registry) Clone() *Registry {
	c := &Registry{
		shorts:    make([]Option, len(r.shorts)),
		longs:     make([]Option, len(r.longs)),
		order:     append([]handle{}, r.order...),
		leftovers: append([]string{}, r.leftovers...),
	}
	for i, o := range r.shorts {
		c.shorts[i] = o.clone()
	}
	for i, o := range r.longs {
		c.longs[i] = o.clone()
	}
	return c
}

// Options returns the registered options in registration order.
func (r *Registry) Options() []Option {
	opts := make([]Option, 0, len(r.order))
	for _, h := range r.order {
		opts = append(opts, r.get(h))
	}
	return opts
}

// Leftovers returns the arguments that were not options, in order.
func (r *Registry) Leftovers() []string {
	return append([]string{}, r.leftovers...)
}

// LookupShort returns the short option with the given name (without the
// leading dash).
func (r *Registry) LookupShort(name string) (Handle, error) {
	if o := findByName(r.shorts, name); o != nil {
		return Handle{o}, nil
	}
	return Handle{}, &LookupError{Name: "-" + name}
}

// LookupLong returns the long option with the given name (without the
// leading dashes). A trailing '=' selects an option accepting "--name=value",
// a trailing space one accepting "--name value".
func (r *Registry) LookupLong(name string) (Handle, error) {
	if o := r.findLong(name); o != nil {
		return Handle{o}, nil
	}
	return Handle{}, &LookupError{Name: "--" + name}
}

// Lookup returns the short option with the given name, or failing that the
// long option. The trailing '=' and space suffixes of LookupLong are
// supported and always select a long option.
func (r *Registry) Lookup(name string) (Handle, error) {
	if !strings.HasSuffix(name, "=") && !strings.HasSuffix(name, " ") {
		if o := findByName(r.shorts, name); o != nil {
			return Handle{o}, nil
		}
	}
	if o := r.findLong(name); o != nil {
		return Handle{o}, nil
	}
	return Handle{}, &LookupError{Name: name}
}

func (r *Registry) findLong(name string) Option {
	switch {
	case strings.HasSuffix(name, "="):
		return findByCapability(r.longs, strings.TrimSuffix(name, "="), ArgEqualSign)
	case strings.HasSuffix(name, " "):
		return findByCapability(r.longs, strings.TrimSuffix(name, " "), ArgNext)
	default:
		return findByName(r.longs, name)
	}
}

func findByName(opts []Option, name string) Option {
	for _, o := range opts {
		if o.Name() == name {
			return o
		}
	}
	return nil
}

func findByCapability(opts []Option, name string, p ArgPattern) Option {
	for _, o := range opts {
		if o.Name() == name && o.Capability().Has(p) {
			return o
		}
	}
	return nil
}
