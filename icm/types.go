package icm

import (
	"encoding/hex"

	"github.com/srtpforge/srtpcrypto"
)

// Type128, Type192 and Type256 describe the three AES-ICM variants. Each
// carries a fixed known-answer vector over a 32-byte zero plaintext with a
// zero IV; the AES-128 vector is the keystream segment published in RFC 3711
// appendix B.2. The values are never mutated after program start.
var (
	Type128 = srtpcrypto.Type{
		ID:          srtpcrypto.AESICM128,
		KeyLen:      KeyLen128WithSalt,
		Description: "AES-128 integer counter mode",
		TestVector: srtpcrypto.TestVector{
			Key: mustHex("2b7e151628aed2a6abf7158809cf4f3c" +
				"f0f1f2f3f4f5f6f7f8f9fafbfcfd"),
			IV:        make([]byte, 16),
			Plaintext: make([]byte, 32),
			Ciphertext: mustHex("e03ead0935c95e80e166b16dd92b4eb4" +
				"d23513162b02d0f72a43a2fe4a5f97ab"),
		},
		Alloc: alloc,
	}

	Type192 = srtpcrypto.Type{
		ID:          srtpcrypto.AESICM192,
		KeyLen:      KeyLen192WithSalt,
		Description: "AES-192 integer counter mode",
		TestVector: srtpcrypto.TestVector{
			Key: mustHex("000102030405060708090a0b0c0d0e0f1011121314151617" +
				"f0f1f2f3f4f5f6f7f8f9fafbfcfd"),
			IV:        make([]byte, 16),
			Plaintext: make([]byte, 32),
			Ciphertext: mustHex("c5fcfb2e5610deeb3858b832b1395b1d" +
				"954ab480f8d304b261fa5b481f34003d"),
		},
		Alloc: alloc,
	}

	Type256 = srtpcrypto.Type{
		ID:          srtpcrypto.AESICM256,
		KeyLen:      KeyLen256WithSalt,
		Description: "AES-256 integer counter mode",
		TestVector: srtpcrypto.TestVector{
			Key: mustHex("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f" +
				"f0f1f2f3f4f5f6f7f8f9fafbfcfd"),
			IV:        make([]byte, 16),
			Plaintext: make([]byte, 32),
			Ciphertext: mustHex("78f56e51a98219045cca17113fe745d9" +
				"73662db07dbfb3ac515529b4406cbc4a"),
		},
		Alloc: alloc,
	}
)

func alloc(keyLen, tagLen int) (srtpcrypto.Cipher, error) {
	return New(keyLen, tagLen)
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("icm: bad hex constant: " + err.Error())
	}
	return b
}
