package clarity

// Value is a raw notation string as returned by the engine. The expect
// family checks it against an expected token or wrapper and hands back the
// still-encoded remainder for further decoding.
type Value string

func (v Value) String() string {
	return string(v)
}

// expectWrapped strips a single-character delimiter pair and matches token
// against the interior. On success it returns the interior remainder after
// the token and one optional separating space.
func (v Value) expectWrapped(token string) (Value, error) {
	s := string(v)
	if len(s) < len(token)+2 {
		return "", &MismatchError{Expected: token, Actual: s}
	}
	inner := s[1 : len(s)-1]
	if inner[:len(token)] != token {
		return "", &MismatchError{Expected: token, Actual: s}
	}
	rest := inner[len(token):]
	if len(rest) > 0 && rest[0] == ' ' {
		rest = rest[1:]
	}
	return Value(rest), nil
}

// expectToken matches token at position 0 of the full string, no outer
// delimiter removed, and returns the remainder after an optional space.
func (v Value) expectToken(token string) (Value, error) {
	s := string(v)
	if len(s) < len(token) || s[:len(token)] != token {
		return "", &MismatchError{Expected: token, Actual: s}
	}
	rest := s[len(token):]
	if len(rest) > 0 && rest[0] == ' ' {
		rest = rest[1:]
	}
	return Value(rest), nil
}

// ExpectOk strips an (ok ...) wrapper and returns the interior.
func (v Value) ExpectOk() (Value, error) {
	return v.expectWrapped("ok")
}

// ExpectErr strips an (err ...) wrapper and returns the interior.
func (v Value) ExpectErr() (Value, error) {
	return v.expectWrapped("err")
}

// ExpectSome strips a (some ...) wrapper and returns the interior.
func (v Value) ExpectSome() (Value, error) {
	return v.expectWrapped("some")
}

// ExpectNone checks the value is the none keyword.
func (v Value) ExpectNone() error {
	_, err := v.expectToken(None())
	return err
}

// ExpectBool checks the value is the given boolean.
func (v Value) ExpectBool(expected bool) error {
	_, err := v.expectToken(Bool(expected))
	return err
}

// ExpectInt checks the value is the given signed integer and returns it.
func (v Value) ExpectInt(expected int64) (int64, error) {
	if _, err := v.expectToken(Int(expected)); err != nil {
		return 0, err
	}
	return expected, nil
}

// ExpectUint checks the value is the given unsigned integer and returns it.
func (v Value) ExpectUint(expected uint64) (uint64, error) {
	if _, err := v.expectToken(Uint(expected)); err != nil {
		return 0, err
	}
	return expected, nil
}

// ExpectAscii checks the value is the given ASCII string literal.
func (v Value) ExpectAscii(expected string) error {
	_, err := v.expectToken(Ascii(expected))
	return err
}

// ExpectUtf8 checks the value is the given UTF8 string literal.
func (v Value) ExpectUtf8(expected string) error {
	_, err := v.expectToken(Utf8(expected))
	return err
}

// ExpectPrincipal checks the value is the given principal. The expected
// address is passed without the leading quote; the encoder adds it.
func (v Value) ExpectPrincipal(expected string) error {
	_, err := v.expectToken(Principal(expected))
	return err
}

// ExpectBuff re-encodes the expected bytes and requires the value to equal
// the encoding byte for byte.
func (v Value) ExpectBuff(expected []byte) error {
	encoded := Buff(expected)
	if string(v) != encoded {
		return &MismatchError{Expected: encoded, Actual: string(v)}
	}
	return nil
}
