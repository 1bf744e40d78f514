// Package icm implements AES integer counter mode, the keystream
// construction that protects SRTP packets (RFC 3711, section 4.1.1).
//
// The keystream for a packet is E(k, ctr) || E(k, ctr+1) || ... where
// ctr = offset XOR iv. The offset is the 14-byte session salt left-aligned
// in a 128-bit value; the low 16 bits of both offset and counter are held at
// zero when an IV is applied, because they belong to the intra-packet block
// counter. All values are big-endian.
package icm

import (
	"crypto/aes"
	ccipher "crypto/cipher"
	"fmt"

	"github.com/awnumar/memguard"
	"github.com/pion/logging"
	"github.com/pion/transport/v2/utils/xor"

	"github.com/srtpforge/srtpcrypto"
)

const (
	// SaltLen is the session salt length (112 bits).
	SaltLen = 14

	blockSize = aes.BlockSize

	keyLen128 = 16
	keyLen192 = 24
	keyLen256 = 32

	// Total key material lengths accepted by New, salt included.
	KeyLen128WithSalt = keyLen128 + SaltLen
	KeyLen192WithSalt = keyLen192 + SaltLen
	KeyLen256WithSalt = keyLen256 + SaltLen

	maxKeyLen = keyLen256
)

// BlockFactory builds the block-cipher primitive for a raw key. The default
// is crypto/aes. Tests substitute a deterministic fake to observe the exact
// counter sequence fed to the primitive.
type BlockFactory func(key []byte) (ccipher.Block, error)

// Option configures a Context at allocation time.
type Option func(*Context)

// WithLoggerFactory routes debug output (key, offset and counter values)
// through the given factory. The default factory only surfaces errors, so
// per-packet debug output is off unless a caller opts in.
func WithLoggerFactory(f logging.LoggerFactory) Option {
	return func(c *Context) {
		if f != nil {
			c.log = f.NewLogger("icm")
		}
	}
}

// WithBlockFactory substitutes the block-cipher primitive.
func WithBlockFactory(f BlockFactory) Option {
	return func(c *Context) {
		if f != nil {
			c.newBlock = f
		}
	}
}

// Context is an AES-ICM cipher context bound to a single crypto stream. It
// owns its key material, the session offset and the live counter, and must
// not be used from more than one goroutine at a time.
//
// Reusing an IV under the same key reuses keystream and destroys
// confidentiality. The context does not detect reuse; the protocol layer
// that owns packet indices is responsible for IV uniqueness.
type Context struct {
	key     [maxKeyLen]byte
	keySize int

	// offset is the session salt left-aligned in a 128-bit value with the
	// low 16 bits held at zero. counter is offset XOR iv, advanced once per
	// keystream block.
	offset  [blockSize]byte
	counter [blockSize]byte

	block    ccipher.Block
	newBlock BlockFactory

	// stream holds keystream bytes generated but not yet consumed, so one
	// packet may be transformed across several Encrypt calls.
	stream     [blockSize]byte
	streamUsed int

	log    logging.LeveledLogger
	closed bool
}

var _ srtpcrypto.Cipher = (*Context)(nil)

// New allocates a context for one of the three supported key sizes. keyLen
// is the total key material length, salt included: 30, 38 or 46 bytes for
// AES-128, AES-192 and AES-256. tagLen is accepted for contract parity and
// ignored; counter mode produces no authentication tag.
func New(keyLen, tagLen int, opts ...Option) (*Context, error) {
	_ = tagLen

	var keySize int
	switch keyLen {
	case KeyLen128WithSalt:
		keySize = keyLen128
	case KeyLen192WithSalt:
		keySize = keyLen192
	case KeyLen256WithSalt:
		keySize = keyLen256
	default:
		return nil, fmt.Errorf("%w: key length %d, want %d, %d or %d",
			srtpcrypto.ErrBadParam, keyLen,
			KeyLen128WithSalt, KeyLen192WithSalt, KeyLen256WithSalt)
	}

	c := &Context{
		keySize:    keySize,
		newBlock:   aes.NewCipher,
		streamUsed: blockSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logging.NewDefaultLoggerFactory().NewLogger("icm")
	}

	c.log.Debugf("allocated cipher with key length %d", keyLen)
	return c, nil
}

// Init loads the raw cipher key and session salt. keyWithSalt holds the key
// (16, 24 or 32 bytes, matching the length the context was allocated for)
// immediately followed by the 14-byte salt. The salt seeds both the offset
// and the counter; the trailing two octets of each stay zero so the block
// counter field starts at zero for every packet.
func (c *Context) Init(keyWithSalt []byte) error {
	if c == nil || c.closed {
		return srtpcrypto.ErrBadParam
	}
	switch c.keySize {
	case keyLen128, keyLen192, keyLen256:
	default:
		return fmt.Errorf("%w: key size %d", srtpcrypto.ErrBadParam, c.keySize)
	}
	if c.keySize > len(c.key) {
		return fmt.Errorf("%w: key size %d exceeds buffer capacity %d",
			srtpcrypto.ErrBadParam, c.keySize, len(c.key))
	}
	if len(keyWithSalt) < c.keySize+SaltLen {
		return fmt.Errorf("%w: %d bytes of key material, want at least %d",
			srtpcrypto.ErrBadParam, len(keyWithSalt), c.keySize+SaltLen)
	}

	memguard.WipeBytes(c.counter[:])
	memguard.WipeBytes(c.offset[:])
	salt := keyWithSalt[c.keySize : c.keySize+SaltLen]
	copy(c.counter[:SaltLen], salt)
	copy(c.offset[:SaltLen], salt)

	// The trailing two octets belong to the intra-packet block counter.
	c.offset[SaltLen], c.offset[SaltLen+1] = 0, 0
	c.counter[SaltLen], c.counter[SaltLen+1] = 0, 0

	copy(c.key[:c.keySize], keyWithSalt[:c.keySize])

	block, err := c.newBlock(c.key[:c.keySize])
	if err != nil {
		c.wipe()
		return fmt.Errorf("%w: %v", srtpcrypto.ErrInitFail, err)
	}
	c.block = block
	c.streamUsed = blockSize

	c.log.Debugf("key: %x", c.key[:c.keySize])
	c.log.Debugf("offset: %x", c.offset)
	return nil
}

// SetIV derives the packet counter from a 16-byte IV: counter = offset XOR
// iv, over all 128 bits. The direction is accepted and ignored; counter mode
// always runs the block cipher in the encrypt direction, and the keystream
// XOR undoes itself.
func (c *Context) SetIV(iv []byte, dir srtpcrypto.Direction) error {
	_ = dir
	if c == nil || c.closed {
		return srtpcrypto.ErrBadParam
	}
	if len(iv) != blockSize {
		return fmt.Errorf("%w: iv length %d, want %d", srtpcrypto.ErrBadParam, len(iv), blockSize)
	}
	if c.block == nil {
		return fmt.Errorf("%w: context not initialized", srtpcrypto.ErrFail)
	}

	var nonce [blockSize]byte
	copy(nonce[:], iv)
	c.log.Debugf("setting iv: %x", nonce)

	xor.XorBytes(c.counter[:], c.offset[:], nonce[:])
	c.streamUsed = blockSize

	c.log.Debugf("counter: %x", c.counter)
	return nil
}

// Encrypt XORs src with the keystream into dst and returns the number of
// bytes written, always len(src) on success. dst must hold at least
// len(src) bytes; on ErrBufferTooSmall nothing is written. Consecutive calls
// without an intervening SetIV continue the keystream where the previous
// call stopped.
func (c *Context) Encrypt(dst, src []byte) (int, error) {
	if c == nil || c.closed {
		return 0, srtpcrypto.ErrBadParam
	}
	if c.block == nil {
		return 0, fmt.Errorf("%w: context not initialized", srtpcrypto.ErrCipherFail)
	}
	if len(dst) < len(src) {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", srtpcrypto.ErrBufferTooSmall, len(src), len(dst))
	}

	total := len(src)

	// Drain keystream left over from the previous call.
	if c.streamUsed < blockSize {
		n := xorBytes(dst, src, c.stream[c.streamUsed:])
		c.streamUsed += n
		dst = dst[n:]
		src = src[n:]
	}

	for len(src) > 0 {
		c.block.Encrypt(c.stream[:], c.counter[:])
		incrementCounter(c.counter[:])

		n := xorBytes(dst, src, c.stream[:])
		c.streamUsed = n
		dst = dst[n:]
		src = src[n:]
	}

	return total, nil
}

// Decrypt is Encrypt: the keystream XOR is its own inverse.
func (c *Context) Decrypt(dst, src []byte) (int, error) {
	return c.Encrypt(dst, src)
}

// Close destroys the context. All key-bearing state (key, offset, counter
// and unconsumed keystream) is wiped before the primitive handle is dropped.
// Closing an already-closed context is a no-op; a nil context is an error.
func (c *Context) Close() error {
	if c == nil {
		return srtpcrypto.ErrBadParam
	}
	if c.closed {
		return nil
	}
	c.wipe()
	c.block = nil
	c.closed = true
	return nil
}

// wipe zeroizes key-bearing memory. It runs on teardown and on the
// early-return path of a failed Init, which leaves the context unusable.
func (c *Context) wipe() {
	memguard.WipeBytes(c.key[:])
	memguard.WipeBytes(c.offset[:])
	memguard.WipeBytes(c.counter[:])
	memguard.WipeBytes(c.stream[:])
	c.keySize = 0
	c.streamUsed = blockSize
}

// xorBytes XORs src1 with src2 into dst, bounded by the shortest of the
// three, and returns the number of bytes written.
func xorBytes(dst, src1, src2 []byte) int {
	n := len(src1)
	if len(src2) < n {
		n = len(src2)
	}
	if len(dst) < n {
		n = len(dst)
	}
	if n == 0 {
		return 0
	}
	return xor.XorBytes(dst[:n], src1[:n], src2[:n])
}

// incrementCounter adds one to a big-endian 128-bit counter.
func incrementCounter(ctr []byte) {
	for i := len(ctr) - 1; i >= 0; i-- {
		ctr[i]++
		if ctr[i] != 0 {
			break
		}
	}
}
