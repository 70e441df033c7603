package hashing_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/sharedkit/pkg/hashing"
)

func TestPBKDF2Hasher(t *testing.T) {
	h := hashing.NewPBKDF2(1000)

	t.Run("hash and verify", func(t *testing.T) {
		encoded, err := h.Hash("s3cret")
		require.NoError(t, err)

		parts := strings.Split(encoded, "$")
		require.Len(t, parts, 4)
		assert.Equal(t, "pbkdf2-sha256", parts[0])
		assert.Equal(t, "1000", parts[1])

		assert.NoError(t, h.Verify("s3cret", encoded))
		assert.ErrorIs(t, h.Verify("wrong", encoded), hashing.ErrMismatch)
	})

	t.Run("salted", func(t *testing.T) {
		a, err := h.Hash("same")
		require.NoError(t, err)
		b, err := h.Hash("same")
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("verify uses stored iterations", func(t *testing.T) {
		encoded, err := hashing.NewPBKDF2(500).Hash("pw")
		require.NoError(t, err)
		assert.NoError(t, h.Verify("pw", encoded))
	})

	t.Run("defaults", func(t *testing.T) {
		assert.Equal(t, hashing.DefaultPBKDF2Iterations, hashing.NewPBKDF2(0).Iterations())
		assert.Equal(t, hashing.DefaultPBKDF2Iterations, hashing.PBKDF2Hasher{}.Iterations())
	})

	t.Run("zero value hashes with default iterations", func(t *testing.T) {
		detected, err := hashing.Detect("pbkdf2-sha256$1$c2FsdA$a2V5")
		require.NoError(t, err)

		for _, zh := range []hashing.Hasher{hashing.PBKDF2Hasher{}, detected} {
			encoded, err := zh.Hash("pw")
			require.NoError(t, err)
			assert.Equal(t, "600000", strings.Split(encoded, "$")[1])
			assert.NoError(t, zh.Verify("pw", encoded))
		}
	})

	t.Run("empty password", func(t *testing.T) {
		_, err := h.Hash("")
		assert.ErrorIs(t, err, hashing.ErrEmptyPassword)
	})

	t.Run("malformed", func(t *testing.T) {
		for _, encoded := range []string{
			"",
			"pbkdf2-sha256$x$c2FsdA$a2V5",
			"pbkdf2-sha256$10$!!$a2V5",
			"pbkdf2-sha256$10$c2FsdA$",
			"sha1$10$c2FsdA$a2V5",
		} {
			assert.ErrorIs(t, h.Verify("pw", encoded), hashing.ErrMalformedHash, encoded)
		}
	})
}

func TestBcryptHasher(t *testing.T) {
	h := hashing.NewBcrypt(bcrypt.MinCost)

	encoded, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NoError(t, h.Verify("s3cret", encoded))
	assert.ErrorIs(t, h.Verify("nope", encoded), hashing.ErrMismatch)
	assert.ErrorIs(t, h.Verify("s3cret", "garbage"), hashing.ErrMalformedHash)

	_, err = h.Hash("")
	assert.ErrorIs(t, err, hashing.ErrEmptyPassword)
}

func TestVerify_Detects(t *testing.T) {
	p, err := hashing.NewPBKDF2(100).Hash("pw")
	require.NoError(t, err)
	b, err := hashing.NewBcrypt(bcrypt.MinCost).Hash("pw")
	require.NoError(t, err)

	assert.NoError(t, hashing.Verify("pw", p))
	assert.NoError(t, hashing.Verify("pw", b))
	assert.ErrorIs(t, hashing.Verify("other", b), hashing.ErrMismatch)
	assert.ErrorIs(t, hashing.Verify("pw", "plain"), hashing.ErrUnsupportedAlg)
}

func TestDigests(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", hashing.SHA256(nil))
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72", hashing.MD5([]byte("abc")))

	mac := hashing.HMACSHA256([]byte("key"), []byte("The quick brown fox jumps over the lazy dog"))
	assert.Equal(t, "f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8", mac)
	assert.True(t, hashing.EqualHMAC(mac, mac))
	assert.False(t, hashing.EqualHMAC(mac, hashing.SHA256(nil)))
}
