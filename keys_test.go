package dilithium

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyAllModes(t *testing.T) {
	for _, mode := range []Mode{Mode2, Mode3, Mode5} {
		sk, err := GenerateKey(mode, rand.Reader)
		require.NoError(t, err)
		require.NotNil(t, sk)
		assert.Equal(t, mode, sk.params.Mode)
	}
}

func TestNewPrivateKeyFromSeedDeterministic(t *testing.T) {
	seed := make([]byte, seedBytes)
	for i := range seed {
		seed[i] = byte(i)
	}

	sk1, err := NewPrivateKeyFromSeed(Mode2, seed)
	require.NoError(t, err)
	sk2, err := NewPrivateKeyFromSeed(Mode2, seed)
	require.NoError(t, err)

	assert.Equal(t, sk1.encode(), sk2.encode())
}

func TestNewPrivateKeyFromSeedRejectsBadLength(t *testing.T) {
	_, err := NewPrivateKeyFromSeed(Mode2, make([]byte, 10))
	assert.ErrorIs(t, err, ErrInvalidSeedLength)
}

func TestPublicPrivateKeyEncodedSizes(t *testing.T) {
	cases := []struct {
		mode Mode
		pub  int
		priv int
	}{
		{Mode2, 1312, 2528},
		{Mode3, 1952, 4000},
		{Mode5, 2592, 4864},
	}
	for _, c := range cases {
		sk, err := GenerateKey(c.mode, rand.Reader)
		require.NoError(t, err)

		pkBytes, err := sk.pub.MarshalBinary()
		require.NoError(t, err)
		assert.Len(t, pkBytes, c.pub)

		skBytes, err := sk.MarshalBinary()
		require.NoError(t, err)
		assert.Len(t, skBytes, c.priv)
	}
}

func TestPublicKeyRoundTrip(t *testing.T) {
	sk, err := GenerateKey(Mode3, rand.Reader)
	require.NoError(t, err)

	data, err := sk.pub.MarshalBinary()
	require.NoError(t, err)

	pk2, err := UnmarshalPublicKey(Mode3, data)
	require.NoError(t, err)
	assert.True(t, sk.pub.Equal(pk2))
}

func TestUnmarshalPublicKeyRejectsBadLength(t *testing.T) {
	_, err := UnmarshalPublicKey(Mode2, make([]byte, 10))
	assert.ErrorIs(t, err, ErrInvalidPublicKeyLength)
}

func TestPrivateKeyRoundTrip(t *testing.T) {
	sk, err := GenerateKey(Mode2, rand.Reader)
	require.NoError(t, err)

	data, err := sk.MarshalBinary()
	require.NoError(t, err)

	sk2, err := UnmarshalPrivateKey(Mode2, data)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(sk.encode(), sk2.encode()))
	assert.True(t, sk.pub.Equal(sk2.pub))
}

func TestUnmarshalPrivateKeyRejectsBadLength(t *testing.T) {
	_, err := UnmarshalPrivateKey(Mode2, make([]byte, 10))
	assert.ErrorIs(t, err, ErrInvalidPrivateKeyLength)
}

func TestPublicKeyEqualRejectsDifferentMode(t *testing.T) {
	sk2, err := GenerateKey(Mode2, rand.Reader)
	require.NoError(t, err)
	sk3, err := GenerateKey(Mode3, rand.Reader)
	require.NoError(t, err)

	assert.False(t, sk2.pub.Equal(sk3.pub))
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "Dilithium2", Mode2.String())
	assert.Equal(t, "Dilithium3", Mode3.String())
	assert.Equal(t, "Dilithium5", Mode5.String())
}
