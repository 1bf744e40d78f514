package srtpcrypto

import (
	"bytes"
	"fmt"
)

// SelfTest validates a cipher variant against its built-in known-answer
// vector. The vector must reproduce exactly in the encrypt direction, and
// re-applying the IV in the decrypt direction must recover the plaintext.
func SelfTest(ct Type) error {
	if ct.Alloc == nil {
		return fmt.Errorf("%s: %w: no allocator", ct.Description, ErrBadParam)
	}
	tv := ct.TestVector

	c, err := ct.Alloc(ct.KeyLen, 0)
	if err != nil {
		return fmt.Errorf("%s: alloc: %w", ct.Description, err)
	}
	defer c.Close()

	if err := c.Init(tv.Key); err != nil {
		return fmt.Errorf("%s: init: %w", ct.Description, err)
	}

	if err := c.SetIV(tv.IV, DirectionEncrypt); err != nil {
		return fmt.Errorf("%s: set iv: %w", ct.Description, err)
	}
	got := make([]byte, len(tv.Plaintext))
	n, err := c.Encrypt(got, tv.Plaintext)
	if err != nil {
		return fmt.Errorf("%s: encrypt: %w", ct.Description, err)
	}
	if n != len(tv.Plaintext) {
		return fmt.Errorf("%s: encrypt wrote %d of %d bytes", ct.Description, n, len(tv.Plaintext))
	}
	if !bytes.Equal(got, tv.Ciphertext) {
		return fmt.Errorf("%s: known-answer mismatch:\n got  %x\n want %x", ct.Description, got, tv.Ciphertext)
	}

	// The same keystream must come back for the same IV.
	if err := c.SetIV(tv.IV, DirectionDecrypt); err != nil {
		return fmt.Errorf("%s: reset iv: %w", ct.Description, err)
	}
	back := make([]byte, len(tv.Ciphertext))
	if _, err := c.Decrypt(back, tv.Ciphertext); err != nil {
		return fmt.Errorf("%s: decrypt: %w", ct.Description, err)
	}
	if !bytes.Equal(back, tv.Plaintext) {
		return fmt.Errorf("%s: decrypt did not recover plaintext:\n got  %x\n want %x", ct.Description, back, tv.Plaintext)
	}

	return nil
}
