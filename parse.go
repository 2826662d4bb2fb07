package getopt

import (
	"log/slog"
	"strings"
)

// parser makes a single pass over the arguments, storing option values in
// registry and collecting everything else as leftovers. Options and their
// arguments are never joined in one token, except for the "--name=value"
// form of long options.
type parser struct {
	registry *Registry
	args     []string
	logger   *slog.Logger
}

func (p *parser) parse(arguments []string) error {
	p.args = arguments
	for {
		seen, err := p.parseOne()
		if err != nil {
			return err
		}
		if !seen {
			break
		}
	}
	return nil
}

func (p *parser) parseOne() (bool, error) {
	if len(p.args) == 0 {
		return false, nil
	}
	s := p.args[0]
	switch {
	case isShortOption(s):
		p.logger.Debug("parsing short option", "token", s)
		return true, p.parseShort(s)
	case isLongOption(s):
		p.logger.Debug("parsing long option", "token", s)
		return true, p.parseLong(s)
	default:
		p.logger.Debug("collected leftover argument", "token", s)
		p.registry.leftovers = append(p.registry.leftovers, s)
		p.args = p.args[1:]
		return true, nil
	}
}

// isShortOption reports whether s looks like "-x...". A lone "-" is not an
// option.
func isShortOption(s string) bool {
	return len(s) >= 2 && s[0] == '-' && s[1] != '-'
}

// isLongOption reports whether s looks like "--x...". A lone "--" and
// anything starting with "---" are not options.
func isLongOption(s string) bool {
	return len(s) >= 3 && s[0] == '-' && s[1] == '-' && s[2] != '-'
}

func (p *parser) parseShort(s string) error {
	for _, o := range p.registry.shorts {
		if o.FullName() != s {
			continue
		}
		if o.Capability().Has(ArgNext) {
			return p.consumeNext(o)
		}
		o.markUsed()
		p.args = p.args[1:]
		return nil
	}
	return usageErr("unrecognized option", s)
}

func (p *parser) parseLong(s string) error {
	name, value, hasValue := strings.Cut(s, "=")
	for _, o := range p.registry.longs {
		if o.FullName() != name {
			continue
		}
		capability := o.Capability()
		switch {
		case hasValue && capability.Has(ArgEqualSign):
			if value == "" {
				return usageErr("missing value after =", s)
			}
			for _, v := range splitValues(value) {
				if err := o.AddRawValue(v); err != nil {
					return err
				}
			}
			p.logger.Debug("stored option values", "option", name, "value", value)
			p.args = p.args[1:]
			return nil
		case !hasValue && capability.Has(ArgNext):
			return p.consumeNext(o)
		case !hasValue && capability.Has(ArgNone):
			o.markUsed()
			p.args = p.args[1:]
			return nil
		}
	}
	return usageErr("unrecognized option", s)
}

// consumeNext stores the argument following the current one as the value of
// o. The argument must exist and must not itself look like an option.
func (p *parser) consumeNext(o Option) error {
	if len(p.args) < 2 || isShortOption(p.args[1]) || isLongOption(p.args[1]) {
		return usageErr("option requires an argument", o.FullName())
	}
	if err := o.AddRawValue(p.args[1]); err != nil {
		return err
	}
	p.logger.Debug("stored option value", "option", o.FullName(), "value", p.args[1])
	p.args = p.args[2:]
	return nil
}
