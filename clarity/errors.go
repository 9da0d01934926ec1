package clarity

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MismatchError reports a decode failure: the input did not carry the
// expected token or delimiter shape. Both sides are kept verbatim so test
// failures show exactly what was compared.
type MismatchError struct {
	Expected string
	Actual   string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("clarity: expected %q, got %q", e.Expected, e.Actual)
}

// NotFoundError reports that no record in an event log satisfied every
// expectation for the requested event kind.
type NotFoundError struct {
	Kind     string
	Criteria map[string]string
}

func (e *NotFoundError) Error() string {
	keys := make([]string, 0, len(e.Criteria))
	for k := range e.Criteria {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k)
		sb.WriteString("=")
		sb.WriteString(e.Criteria[k])
	}
	return fmt.Sprintf("clarity: no %s matching %s", e.Kind, sb.String())
}

// IsMismatch reports whether err is (or wraps) a MismatchError.
func IsMismatch(err error) bool {
	var m *MismatchError
	return errors.As(err, &m)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var n *NotFoundError
	return errors.As(err, &n)
}
