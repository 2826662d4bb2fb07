package getopt

// OptionPattern selects the textual form of an option.
type OptionPattern int

const (
	ShortOption OptionPattern = iota // -name
	LongOption                       // --name
)

func (p OptionPattern) prefix() string {
	if p == LongOption {
		return "--"
	}
	return "-"
}

func (p OptionPattern) String() string {
	switch p {
	case ShortOption:
		return "short"
	case LongOption:
		return "long"
	default:
		return "unknown"
	}
}

// ArgPattern is the set of syntactic forms through which an option accepts
// its arguments.
type ArgPattern int

const (
	ArgNone      ArgPattern = 0                      // no argument, the option is a flag
	ArgNext      ArgPattern = 1                      // --name value
	ArgEqualSign ArgPattern = 2                      // --name=value[,value...]
	ArgAll       ArgPattern = ArgNext | ArgEqualSign // either form
)

// Has reports whether a includes every form in p. ArgNone is only included
// in ArgNone itself.
func (a ArgPattern) Has(p ArgPattern) bool {
	if p == ArgNone {
		return a == ArgNone
	}
	return a&p == p
}

func (a ArgPattern) String() string {
	switch a {
	case ArgNone:
		return "none"
	case ArgNext:
		return "next"
	case ArgEqualSign:
		return "equal-sign"
	case ArgAll:
		return "all"
	default:
		return "unknown"
	}
}

// separator is the text placed between an option name and its argument
// placeholder in help output.
func (a ArgPattern) separator(p OptionPattern) string {
	switch a {
	case ArgNext:
		return " "
	case ArgEqualSign:
		return "="
	case ArgAll:
		if p == ShortOption {
			return " "
		}
		return "[ |=]"
	default:
		return ""
	}
}
