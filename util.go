package getopt

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Base64String is a byte slice that can be unmarshaled from a standard (RFC
// 4648) base64-encoded string, e.g. NewValue[Base64String]().
type Base64String []byte

func (b *Base64String) UnmarshalText(src []byte) error {
	enc := base64.StdEncoding
	dbuf := make([]byte, enc.DecodedLen(len(src)))
	n, err := enc.Decode(dbuf, src)
	if err != nil {
		return err
	}
	*b = dbuf[:n]
	return nil
}

func (b Base64String) String() string {
	return base64.StdEncoding.EncodeToString(b)
}

// splitValues splits the text after '=' into its comma separated pieces. A
// trailing empty piece is dropped, so "1," yields just "1".
func splitValues(s string) []string {
	parts := strings.Split(s, ",")
	if len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

func joinValues[T any](xs []T) string {
	sb := strings.Builder{}
	for i, x := range xs {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprint(&sb, x)
	}
	return sb.String()
}
