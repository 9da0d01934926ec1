package clarity

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// hexTable maps every byte to its two-digit lowercase hex form. Built once
// before first use and never mutated afterwards, so it is safe to share
// across concurrent encoders.
var hexTable [256]string

func init() {
	for i := 0; i < 256; i++ {
		hexTable[i] = fmt.Sprintf("%02x", i)
	}
}

// Ok wraps an encoded fragment in a success result.
func Ok(v string) string {
	return "(ok " + v + ")"
}

// Err wraps an encoded fragment in a failure result.
func Err(v string) string {
	return "(err " + v + ")"
}

// Some wraps an encoded fragment in a present optional.
func Some(v string) string {
	return "(some " + v + ")"
}

// None returns the absent optional.
func None() string {
	return "none"
}

// Bool encodes a boolean.
func Bool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// Int encodes a signed integer as bare digits.
func Int(v int64) string {
	return strconv.FormatInt(v, 10)
}

// Uint encodes an unsigned integer with the u prefix.
func Uint(v uint64) string {
	return "u" + strconv.FormatUint(v, 10)
}

// Ascii encodes an ASCII string literal.
func Ascii(s string) string {
	return `"` + s + `"`
}

// Utf8 encodes a UTF8 string literal.
func Utf8(s string) string {
	return `u"` + s + `"`
}

// Buff encodes a byte buffer as 0x-prefixed lowercase hex, two digits per
// byte. Buff(nil) encodes as "0x".
func Buff(b []byte) string {
	var sb strings.Builder
	sb.Grow(2 + 2*len(b))
	sb.WriteString("0x")
	for _, c := range b {
		sb.WriteString(hexTable[c])
	}
	return sb.String()
}

// Principal encodes a principal identifier.
func Principal(addr string) string {
	return "'" + addr
}

// List encodes already-encoded fragments in the parenthesized,
// space-separated form the engine accepts as input. Note this is not the
// bracketed form ExpectList decodes; see the package documentation.
func List(items ...string) string {
	return "(list " + strings.Join(items, " ") + ")"
}

// Tuple encodes a mapping of field name to value. A value may be an
// already-encoded fragment (string) or a nested mapping, which is rendered
// as a nested tuple. Fields are emitted in sorted key order so output is
// deterministic. Sequence-valued fields are not representable in tuple
// notation and are rejected outright.
func Tuple(fields map[string]any) (string, error) {
	if len(fields) == 0 {
		return "{ }", nil
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		switch v := fields[k].(type) {
		case string:
			parts = append(parts, k+": "+v)
		case map[string]any:
			nested, err := Tuple(v)
			if err != nil {
				return "", err
			}
			parts = append(parts, k+": "+nested)
		case []any, []string:
			return "", fmt.Errorf("clarity: tuple field %q is a sequence; lists cannot appear inside tuple notation", k)
		default:
			return "", fmt.Errorf("clarity: tuple field %q has unsupported type %T; encode it first", k, v)
		}
	}

	return "{ " + strings.Join(parts, ", ") + " }", nil
}
