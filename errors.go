package srtpcrypto

import "errors"

var (
	// ErrBadParam is returned for invalid key lengths, key sizes and
	// malformed input sizes.
	ErrBadParam = errors.New("srtpcrypto: bad parameter")

	// ErrAllocFail is returned when a context or primitive cannot be
	// allocated.
	ErrAllocFail = errors.New("srtpcrypto: allocation failed")

	// ErrInitFail is returned when the block-cipher primitive cannot be
	// initialized.
	ErrInitFail = errors.New("srtpcrypto: cipher init failed")

	// ErrFail is returned when the primitive rejects key or counter
	// programming.
	ErrFail = errors.New("srtpcrypto: cipher programming failed")

	// ErrCipherFail is returned when the primitive fails during a block
	// transform.
	ErrCipherFail = errors.New("srtpcrypto: cipher transform failed")

	// ErrBufferTooSmall is returned when the destination cannot hold the
	// requested transform length. Nothing is written in that case.
	ErrBufferTooSmall = errors.New("srtpcrypto: destination buffer too small")
)
