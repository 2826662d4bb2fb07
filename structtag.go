package getopt

import (
	"sort"
	"strings"
)

// tagSet holds the key/value pairs of a `getopt:"key1,key2=value"` struct
// tag. Values may be single quoted to contain commas.
type tagSet map[string]string

func parseTagSet(tag string) tagSet {
	ts := tagSet{}

	const (
		inKey = iota
		inValue
		inQuote
	)
	key := strings.Builder{}
	val := strings.Builder{}
	state := inKey
	flush := func() {
		ts[key.String()] = val.String()
		key.Reset()
		val.Reset()
		state = inKey
	}
	for _, c := range tag {
		switch state {
		case inKey:
			switch c {
			case ',':
				flush()
			case '=':
				state = inValue
			case ' ':
			default:
				key.WriteRune(c)
			}
		case inValue:
			switch c {
			case ',':
				flush()
			case '\'':
				state = inQuote
			default:
				val.WriteRune(c)
			}
		case inQuote:
			if c == '\'' {
				state = inValue
			} else {
				val.WriteRune(c)
			}
		}
	}
	if key.Len() > 0 {
		flush()
	}
	return ts
}

// pop removes key and returns its value.
func (ts tagSet) pop(key string) (string, bool) {
	val, ok := ts[key]
	if ok {
		delete(ts, key)
	}
	return val, ok
}

// has removes key and reports whether it was present.
func (ts tagSet) has(key string) bool {
	_, ok := ts.pop(key)
	return ok
}

// remaining returns the keys that were never popped, sorted.
func (ts tagSet) remaining() []string {
	keys := make([]string, 0, len(ts))
	for k := range ts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
