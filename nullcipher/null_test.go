package nullcipher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srtpforge/srtpcrypto"
)

func TestSelfTest(t *testing.T) {
	require.NoError(t, srtpcrypto.SelfTest(Type))
}

func TestPassthrough(t *testing.T) {
	c, err := New(0, 0)
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Init(nil))
	require.NoError(t, c.SetIV(make([]byte, 16), srtpcrypto.DirectionEncrypt))

	msg := []byte("rtp payload left in the clear")
	out := make([]byte, len(msg))
	n, err := c.Encrypt(out, msg)
	require.NoError(t, err)
	assert.Equal(t, len(msg), n)
	assert.Equal(t, msg, out)

	back := make([]byte, len(msg))
	_, err = c.Decrypt(back, out)
	require.NoError(t, err)
	assert.Equal(t, msg, back)
}

func TestBufferTooSmall(t *testing.T) {
	c, err := New(0, 0)
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Encrypt(make([]byte, 3), make([]byte, 4))
	require.ErrorIs(t, err, srtpcrypto.ErrBufferTooSmall)
}

func TestClosedContext(t *testing.T) {
	c, err := New(0, 0)
	require.NoError(t, err)
	require.NoError(t, c.Close())

	require.ErrorIs(t, c.Init(nil), srtpcrypto.ErrBadParam)
	_, err = c.Encrypt(make([]byte, 1), make([]byte, 1))
	require.ErrorIs(t, err, srtpcrypto.ErrBadParam)

	var nilCtx *Context
	require.ErrorIs(t, nilCtx.Close(), srtpcrypto.ErrBadParam)
}
