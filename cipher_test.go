package srtpcrypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "any", DirectionAny.String())
	assert.Equal(t, "encrypt", DirectionEncrypt.String())
	assert.Equal(t, "decrypt", DirectionDecrypt.String())
	assert.Equal(t, "unknown", Direction(42).String())
}

func TestAlgorithmIDString(t *testing.T) {
	assert.Equal(t, "NULL_CIPHER", NullCipher.String())
	assert.Equal(t, "AES_ICM_128", AESICM128.String())
	assert.Equal(t, "AES_ICM_192", AESICM192.String())
	assert.Equal(t, "AES_ICM_256", AESICM256.String())
	assert.Equal(t, "UNKNOWN", AlgorithmID(99).String())
}

func TestSelfTestRequiresAllocator(t *testing.T) {
	err := SelfTest(Type{Description: "broken"})
	require.ErrorIs(t, err, ErrBadParam)
}
