// Package nullcipher provides the identity cipher. It implements the full
// cipher contract but applies no transform, standing in for a real cipher on
// streams that are deliberately left unprotected and in contract tests.
package nullcipher

import (
	"fmt"

	"github.com/srtpforge/srtpcrypto"
)

// Context is a null cipher context. All operations succeed and Encrypt
// copies its input unchanged.
type Context struct {
	closed bool
}

var _ srtpcrypto.Cipher = (*Context)(nil)

// Type describes the null cipher. Its test vector only checks the
// passthrough property.
var Type = srtpcrypto.Type{
	ID:          srtpcrypto.NullCipher,
	KeyLen:      0,
	Description: "null cipher",
	TestVector: srtpcrypto.TestVector{
		IV:         make([]byte, 16),
		Plaintext:  []byte("null cipher passthrough"),
		Ciphertext: []byte("null cipher passthrough"),
	},
	Alloc: func(keyLen, tagLen int) (srtpcrypto.Cipher, error) {
		return New(keyLen, tagLen)
	},
}

// New allocates a null cipher context. Key and tag lengths are accepted and
// ignored.
func New(keyLen, tagLen int) (*Context, error) {
	_, _ = keyLen, tagLen
	return &Context{}, nil
}

// Init accepts any key material, including none.
func (c *Context) Init(keyWithSalt []byte) error {
	_ = keyWithSalt
	if c == nil || c.closed {
		return srtpcrypto.ErrBadParam
	}
	return nil
}

// SetIV accepts and ignores the IV.
func (c *Context) SetIV(iv []byte, dir srtpcrypto.Direction) error {
	_, _ = iv, dir
	if c == nil || c.closed {
		return srtpcrypto.ErrBadParam
	}
	return nil
}

// Encrypt copies src to dst unchanged.
func (c *Context) Encrypt(dst, src []byte) (int, error) {
	if c == nil || c.closed {
		return 0, srtpcrypto.ErrBadParam
	}
	if len(dst) < len(src) {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", srtpcrypto.ErrBufferTooSmall, len(src), len(dst))
	}
	copy(dst, src)
	return len(src), nil
}

// Decrypt is Encrypt.
func (c *Context) Decrypt(dst, src []byte) (int, error) {
	return c.Encrypt(dst, src)
}

// Close marks the context unusable. There is no key material to wipe.
func (c *Context) Close() error {
	if c == nil {
		return srtpcrypto.ErrBadParam
	}
	c.closed = true
	return nil
}
