package getopt

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Set is a collection of registered options which can parse argument
// vectors. Registration methods return the Set for chaining; the first
// registration error is kept and returned by Err and ParseArgs, and any
// registration after it is skipped.
type Set struct {
	registry  *Registry
	err       error
	logger    *slog.Logger
	helpWidth int
	helpGap   int
}

// New creates an empty Set.
func New(opts ...SetOption) *Set {
	s := &Set{
		registry:  newRegistry(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		helpWidth: 25,
		helpGap:   2,
	}
	for _, opt := range opts {
		opt.Apply(s)
	}
	return s
}

// Short registers a short flag, "-name".
func (s *Set) Short(name, desc string) *Set {
	return s.addFlag(name, desc, ShortOption)
}

// Long registers a long flag, "--name".
func (s *Set) Long(name, desc string) *Set {
	return s.addFlag(name, desc, LongOption)
}

// ShortValue registers a short option taking its argument from the next
// command line argument, "-name value".
func (s *Set) ShortValue(name string, v Valuer, desc string) *Set {
	return s.addValue(name, v, desc, ShortOption, ArgAll)
}

// LongValue registers a long option taking arguments either as
// "--name value" or "--name=value[,value...]". A trailing '=' on name only
// allows the second form, a trailing space only the first.
func (s *Set) LongValue(name string, v Valuer, desc string) *Set {
	arg := ArgAll
	if strings.HasSuffix(name, "=") {
		name, arg = strings.TrimSuffix(name, "="), ArgEqualSign
	} else if strings.HasSuffix(name, " ") {
		name, arg = strings.TrimSuffix(name, " "), ArgNext
	}
	return s.addValue(name, v, desc, LongOption, arg)
}

func (s *Set) addFlag(name, desc string, pattern OptionPattern) *Set {
	if s.err != nil {
		return s
	}
	o, err := newFlagOption(name, desc, pattern)
	if err != nil {
		s.err = err
		return s
	}
	s.registry.add(o)
	return s
}

func (s *Set) addValue(name string, v Valuer, desc string, pattern OptionPattern, arg ArgPattern) *Set {
	if s.err != nil {
		return s
	}
	if v == nil {
		s.err = configErr(pattern.prefix()+name, "missing value descriptor")
		return s
	}
	o, err := v.newOption(name, desc, pattern, arg)
	if err != nil {
		s.err = err
		return s
	}
	s.registry.add(o)
	return s
}

// Err returns the first registration error, if any.
func (s *Set) Err() error {
	return s.err
}

// Registry returns a copy of the registered options, as they are before any
// parsing.
func (s *Set) Registry() *Registry {
	return s.registry.Clone()
}

// Parse is a convenience method for calling ParseArgs(os.Args).
func (s *Set) Parse() (*Registry, error) {
	return s.ParseArgs(os.Args)
}

// ParseArgs parses args, skipping args[0] (the program name), and returns a
// fresh registry holding the result. The Set itself is never modified, so it
// can parse any number of argument vectors. Nothing is returned on error.
func (s *Set) ParseArgs(args []string) (*Registry, error) {
	if s.err != nil {
		return nil, s.err
	}
	if len(args) > 0 {
		args = args[1:]
	}
	p := parser{
		registry: s.registry.Clone(),
		logger:   s.logger,
	}
	if err := p.parse(args); err != nil {
		s.logger.Debug("parsing failed", "error", err)
		return nil, err
	}
	return p.registry, nil
}

// MustParseArgs is like ParseArgs, but panics on error.
func (s *Set) MustParseArgs(args []string) *Registry {
	r, err := s.ParseArgs(args)
	if err != nil {
		panic(fmt.Sprintf("getopt: %s", err))
	}
	return r
}

// SetOption configures a Set created by New.
type SetOption interface {
	Apply(s *Set)
}

type setOptionFunc func(s *Set)

func (of setOptionFunc) Apply(s *Set) {
	of(s)
}

// WithLogger makes the Set log parsing progress to logger at debug level.
func WithLogger(logger *slog.Logger) SetOption {
	return setOptionFunc(func(s *Set) {
		if logger != nil {
			s.logger = logger
		}
	})
}

// WithHelpWidth sets the width of the signature column in the description.
func WithHelpWidth(width int) SetOption {
	return setOptionFunc(func(s *Set) {
		s.helpWidth = width
	})
}

// WithHelpGap sets the minimum number of spaces between a signature and its
// description.
func WithHelpGap(gap int) SetOption {
	return setOptionFunc(func(s *Set) {
		if gap < 0 {
			gap = 0
		}
		s.helpGap = gap
	})
}
