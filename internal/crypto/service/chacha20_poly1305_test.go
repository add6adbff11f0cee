package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/taxledger/internal/crypto/domain"
)

func TestNewChaCha20Poly1305(t *testing.T) {
	t.Run("valid key", func(t *testing.T) {
		cipher, err := NewChaCha20Poly1305(newTestKey(t))
		require.NoError(t, err)
		assert.NotNil(t, cipher)
	})

	t.Run("nil key", func(t *testing.T) {
		cipher, err := NewChaCha20Poly1305(nil)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidEncryptionKey)
		assert.Nil(t, cipher)
	})
}

func TestChaCha20Poly1305Cipher_SealOpen(t *testing.T) {
	cipher, err := NewChaCha20Poly1305(newTestKey(t))
	require.NoError(t, err)

	field, err := cipher.Seal([]byte("Acme Pty Ltd"))
	require.NoError(t, err)
	assert.Len(t, field.Nonce, cryptoDomain.NonceSize)
	assert.Len(t, field.Tag, cryptoDomain.TagSize)
	assert.Len(t, field.Ciphertext, len("Acme Pty Ltd"))

	plaintext, err := cipher.Open(field)
	require.NoError(t, err)
	assert.Equal(t, "Acme Pty Ltd", string(plaintext))

	t.Run("fresh nonce per seal", func(t *testing.T) {
		other, err := cipher.Seal([]byte("Acme Pty Ltd"))
		require.NoError(t, err)
		assert.NotEqual(t, field.Nonce, other.Nonce)
	})

	t.Run("tampered tag", func(t *testing.T) {
		tampered := field
		tampered.Tag = append([]byte(nil), field.Tag...)
		tampered.Tag[0] ^= 0xff

		_, err := cipher.Open(tampered)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("short nonce", func(t *testing.T) {
		short := field
		short.Nonce = field.Nonce[:8]

		_, err := cipher.Open(short)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("wrong key", func(t *testing.T) {
		other, err := NewChaCha20Poly1305(newTestKey(t))
		require.NoError(t, err)

		_, err = other.Open(field)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})
}

func TestNewAEAD(t *testing.T) {
	key := newTestKey(t)

	aesCipher, err := NewAEAD(cryptoDomain.AESGCM, key)
	require.NoError(t, err)
	assert.IsType(t, &AESGCMCipher{}, aesCipher)

	chachaCipher, err := NewAEAD(cryptoDomain.ChaCha20, key)
	require.NoError(t, err)
	assert.IsType(t, &ChaCha20Poly1305Cipher{}, chachaCipher)

	_, err = NewAEAD("rot13", key)
	assert.ErrorIs(t, err, cryptoDomain.ErrUnsupportedAlgorithm)

	t.Run("algorithms are not interchangeable", func(t *testing.T) {
		field, err := aesCipher.Seal([]byte("secret"))
		require.NoError(t, err)

		_, err = chachaCipher.Open(field)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})
}
