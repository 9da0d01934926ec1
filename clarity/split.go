package clarity

import "strings"

// splitTopLevel splits a delimited notation string into its top-level
// comma-separated elements. The input must begin with open and end with
// close. A depth stack keyed to bracket kind skips nested brackets, braces
// and parens; a closer only pops when the top of the stack is its
// counterpart. A comma seen while the stack holds exactly the record's own
// opening delimiter separates elements, and scanning resumes one character
// past the following space per the notation's ", " convention.
func splitTopLevel(s string, open, close byte) ([]string, error) {
	framing := string(open) + "..." + string(close)
	if len(s) < 2 || s[0] != open || s[len(s)-1] != close {
		return nil, &MismatchError{Expected: framing, Actual: s}
	}

	var elems []string
	stack := make([]byte, 0, 8)

	start := 1
	if start < len(s)-1 && s[start] == ' ' {
		start++
	}

	for i := 0; i < len(s)-1; i++ {
		switch c := s[i]; c {
		case '(', '[', '{':
			stack = append(stack, c)
		case ')':
			if len(stack) > 0 && stack[len(stack)-1] == '(' {
				stack = stack[:len(stack)-1]
			}
		case ']':
			if len(stack) > 0 && stack[len(stack)-1] == '[' {
				stack = stack[:len(stack)-1]
			}
		case '}':
			if len(stack) > 0 && stack[len(stack)-1] == '{' {
				stack = stack[:len(stack)-1]
			}
		case ',':
			if len(stack) == 1 {
				elems = append(elems, s[start:i])
				i++ // skip the separating space
				start = i + 1
			}
		}
	}

	// Trailing residual before the closing delimiter.
	end := len(s) - 1
	if end > start && s[end-1] == ' ' {
		end--
	}
	if end > start {
		elems = append(elems, s[start:end])
	}

	return elems, nil
}

// ExpectList decodes a bracketed, comma-separated list into its ordered
// elements, each still in raw encoded form. This is the decode-side list
// grammar; encoded lists use the (list ...) form instead.
func (v Value) ExpectList() ([]Value, error) {
	raw, err := splitTopLevel(string(v), '[', ']')
	if err != nil {
		return nil, err
	}
	elems := make([]Value, len(raw))
	for i, e := range raw {
		elems[i] = Value(e)
	}
	return elems, nil
}

// ExpectTuple decodes tuple notation into a mapping from field name to raw
// value fragment. Each top-level element splits on its first colon; the
// value starts two characters past it, skipping the ": " separator. Nested
// tuples and lists stay encoded; decode a field on demand.
func (v Value) ExpectTuple() (map[string]Value, error) {
	raw, err := splitTopLevel(string(v), '{', '}')
	if err != nil {
		return nil, err
	}

	fields := make(map[string]Value, len(raw))
	for _, e := range raw {
		idx := strings.IndexByte(e, ':')
		if idx < 0 {
			return nil, &MismatchError{Expected: "k: v", Actual: e}
		}
		name := e[:idx]
		var value string
		if idx+2 <= len(e) {
			value = e[idx+2:]
		}
		fields[name] = Value(value)
	}
	return fields, nil
}
