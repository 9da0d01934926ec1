package clarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpectOk(t *testing.T) {
	inner, err := Value("(ok u1)").ExpectOk()
	require.NoError(t, err)
	assert.Equal(t, Value("u1"), inner)
}

func TestExpectOk_WrongWrapper(t *testing.T) {
	_, err := Value("(err u2)").ExpectOk()
	require.Error(t, err)
	assert.True(t, IsMismatch(err))
	assert.Contains(t, err.Error(), `"ok"`)
	assert.Contains(t, err.Error(), "(err u2)")
}

func TestExpectErr(t *testing.T) {
	inner, err := Value("(err u419)").ExpectErr()
	require.NoError(t, err)
	assert.Equal(t, Value("u419"), inner)

	_, err = Value("(ok u1)").ExpectErr()
	assert.True(t, IsMismatch(err))
}

func TestExpectSome(t *testing.T) {
	inner, err := Value(`(some "v")`).ExpectSome()
	require.NoError(t, err)
	assert.Equal(t, Value(`"v"`), inner)

	_, err = Value("none").ExpectSome()
	assert.True(t, IsMismatch(err))
}

func TestExpectNone(t *testing.T) {
	require.NoError(t, Value("none").ExpectNone())
	assert.True(t, IsMismatch(Value("(some u1)").ExpectNone()))
}

func TestExpect_TooShort(t *testing.T) {
	// Wrapped mode needs the token plus both delimiter characters.
	_, err := Value("ok").ExpectOk()
	require.Error(t, err)
	assert.True(t, IsMismatch(err))

	_, err = Value("").ExpectOk()
	require.Error(t, err)
}

func TestExpectBool(t *testing.T) {
	require.NoError(t, Value("true").ExpectBool(true))
	require.NoError(t, Value("false").ExpectBool(false))
	assert.True(t, IsMismatch(Value("true").ExpectBool(false)))
	assert.True(t, IsMismatch(Value("u1").ExpectBool(true)))
}

func TestExpectUint(t *testing.T) {
	got, err := Value("u42").ExpectUint(42)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), got)

	_, err = Value("u42").ExpectUint(43)
	assert.True(t, IsMismatch(err))

	// Signed form must not satisfy the unsigned check.
	_, err = Value("42").ExpectUint(42)
	assert.True(t, IsMismatch(err))
}

func TestExpectInt(t *testing.T) {
	got, err := Value("-7").ExpectInt(-7)
	require.NoError(t, err)
	assert.Equal(t, int64(-7), got)

	_, err = Value("7").ExpectInt(8)
	assert.True(t, IsMismatch(err))
}

func TestExpectAscii(t *testing.T) {
	require.NoError(t, Value(`"hello"`).ExpectAscii("hello"))
	assert.True(t, IsMismatch(Value(`"hello"`).ExpectAscii("world")))
	// Bare token without quotes is not an ASCII literal.
	assert.True(t, IsMismatch(Value("hello").ExpectAscii("hello")))
}

func TestExpectUtf8(t *testing.T) {
	require.NoError(t, Value(`u"héllo"`).ExpectUtf8("héllo"))
	assert.True(t, IsMismatch(Value(`"héllo"`).ExpectUtf8("héllo")))
}

func TestExpectPrincipal(t *testing.T) {
	addr := "ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM"
	require.NoError(t, Value("'"+addr).ExpectPrincipal(addr))
	assert.True(t, IsMismatch(Value(addr).ExpectPrincipal(addr)))
	assert.True(t, IsMismatch(Value("'"+addr).ExpectPrincipal("ST2OTHER")))
}

func TestExpectBuff(t *testing.T) {
	require.NoError(t, Value("0x0010ff").ExpectBuff([]byte{0x00, 0x10, 0xff}))
	require.NoError(t, Value("0x").ExpectBuff(nil))

	err := Value("0x0010ff").ExpectBuff([]byte{0x00, 0x10})
	require.Error(t, err)
	assert.True(t, IsMismatch(err))

	// Uppercase hex is not byte-exact with the encoder's output.
	assert.Error(t, Value("0x0010FF").ExpectBuff([]byte{0x00, 0x10, 0xff}))
}

func TestExpect_ChainedDecoding(t *testing.T) {
	// (ok (some u7)) peels one layer at a time.
	inner, err := Value("(ok (some u7))").ExpectOk()
	require.NoError(t, err)
	inner, err = inner.ExpectSome()
	require.NoError(t, err)
	got, err := inner.ExpectUint(7)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), got)
}
