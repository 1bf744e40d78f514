package srtpcrypto

// Direction states what the caller is about to do with a cipher context when
// an IV is applied. Counter-mode ciphers ignore it (the keystream XOR is its
// own inverse), but the contract carries it so implementations that do
// distinguish the two paths can act on it.
type Direction int

const (
	DirectionAny Direction = iota
	DirectionEncrypt
	DirectionDecrypt
)

func (d Direction) String() string {
	switch d {
	case DirectionAny:
		return "any"
	case DirectionEncrypt:
		return "encrypt"
	case DirectionDecrypt:
		return "decrypt"
	default:
		return "unknown"
	}
}

// AlgorithmID identifies a cipher variant.
type AlgorithmID uint32

const (
	NullCipher AlgorithmID = iota
	AESICM128
	AESICM192
	AESICM256
)

func (id AlgorithmID) String() string {
	switch id {
	case NullCipher:
		return "NULL_CIPHER"
	case AESICM128:
		return "AES_ICM_128"
	case AESICM192:
		return "AES_ICM_192"
	case AESICM256:
		return "AES_ICM_256"
	default:
		return "UNKNOWN"
	}
}

// Cipher is a keystream (or passthrough) transform bound to one crypto
// stream. A Cipher is not safe for concurrent use.
//
// There is no method for associated data: the variants in this module are
// stream ciphers and produce no authentication tag.
type Cipher interface {
	// Init loads key material into the context. For salted counter-mode
	// ciphers the slice is the raw cipher key immediately followed by the
	// 14-byte session salt.
	Init(keyWithSalt []byte) error

	// SetIV establishes the per-packet counter state from a 16-byte IV.
	// Supplying a distinct IV per packet is the caller's obligation; the
	// context does not detect IV reuse.
	SetIV(iv []byte, dir Direction) error

	// Encrypt transforms len(src) bytes into dst and returns the number of
	// bytes written, always len(src) on success. dst must hold at least
	// len(src) bytes.
	Encrypt(dst, src []byte) (int, error)

	// Decrypt is the inverse of Encrypt. For stream ciphers it is the same
	// operation.
	Decrypt(dst, src []byte) (int, error)

	// Close destroys the context, wiping key-bearing memory.
	Close() error
}

// TestVector is a fixed known-answer tuple for a cipher variant.
type TestVector struct {
	Key        []byte // raw key followed by the session salt
	IV         []byte
	Plaintext  []byte
	Ciphertext []byte
}

// Type describes one cipher variant: its identity, the total key material
// length it accepts (salt included), and how to allocate a context for it.
// Type values are immutable after program start and may be shared freely
// across goroutines.
type Type struct {
	ID          AlgorithmID
	KeyLen      int
	Description string
	TestVector  TestVector

	// Alloc creates an unkeyed context. tagLen is part of the contract for
	// AEAD parity and is ignored by stream ciphers.
	Alloc func(keyLen, tagLen int) (Cipher, error)
}
