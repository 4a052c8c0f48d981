package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptor_RoundTrip(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)

	enc, err := NewEncryptor(key)
	require.NoError(t, err)

	plaintext := []byte(`{"access_token":"secret-token"}`)
	ciphertext, err := enc.Encrypt(plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, ciphertext)

	decrypted, err := enc.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestEncryptor_TamperDetection(t *testing.T) {
	key, _ := GenerateKey()
	enc, _ := NewEncryptor(key)

	ciphertext, err := enc.Encrypt([]byte("payload"))
	require.NoError(t, err)

	ciphertext[len(ciphertext)-1] ^= 0xff
	_, err = enc.Decrypt(ciphertext)
	assert.Error(t, err)
}

func TestNewEncryptor_InvalidKeyLength(t *testing.T) {
	_, err := NewEncryptor([]byte("short"))
	assert.Error(t, err)
}

func TestNewEncryptorFromSecret(t *testing.T) {
	t.Run("short secret is padded", func(t *testing.T) {
		enc, err := NewEncryptorFromSecret("short-secret")
		require.NoError(t, err)

		ciphertext, err := enc.Encrypt([]byte("data"))
		require.NoError(t, err)
		decrypted, err := enc.Decrypt(ciphertext)
		require.NoError(t, err)
		assert.Equal(t, []byte("data"), decrypted)
	})

	t.Run("long secret is truncated deterministically", func(t *testing.T) {
		long := "0123456789012345678901234567890123456789"
		a, err := NewEncryptorFromSecret(long)
		require.NoError(t, err)
		b, err := NewEncryptorFromSecret(long[:32])
		require.NoError(t, err)

		ciphertext, err := a.Encrypt([]byte("data"))
		require.NoError(t, err)
		decrypted, err := b.Decrypt(ciphertext)
		require.NoError(t, err)
		assert.Equal(t, []byte("data"), decrypted)
	})

	t.Run("empty secret is rejected", func(t *testing.T) {
		_, err := NewEncryptorFromSecret("")
		assert.Error(t, err)
	})
}

func TestEncryptor_JSONHelpers(t *testing.T) {
	enc, err := NewEncryptorFromSecret("test-secret")
	require.NoError(t, err)

	type blob struct {
		AccessToken string `json:"access_token"`
	}

	ciphertext, err := enc.EncryptJSON(blob{AccessToken: "tok"})
	require.NoError(t, err)

	var out blob
	require.NoError(t, enc.DecryptJSON(ciphertext, &out))
	assert.Equal(t, "tok", out.AccessToken)
}
