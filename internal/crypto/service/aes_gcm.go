package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	cryptoDomain "github.com/allisson/taxledger/internal/crypto/domain"
)

// AESGCMCipher implements AEAD using AES-256-GCM.
//
// Every Seal draws a new 12-byte nonce from crypto/rand; reusing a nonce under the
// same key would break both confidentiality and authentication. The 16-byte tag is
// split from the ciphertext so it can be stored as its own field component.
//
// The cipher holds no mutable state and is safe for concurrent use.
type AESGCMCipher struct {
	aead cipher.AEAD
}

// NewAESGCM creates an AES-256-GCM cipher from a validated encryption key.
func NewAESGCM(key *cryptoDomain.EncryptionKey) (*AESGCMCipher, error) {
	if key == nil || len(key.Bytes()) != cryptoDomain.KeySize {
		return nil, fmt.Errorf("%w: key must be exactly %d bytes", cryptoDomain.ErrInvalidEncryptionKey, cryptoDomain.KeySize)
	}

	block, err := aes.NewCipher(key.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCMWithNonceSize(block, cryptoDomain.NonceSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AESGCMCipher{aead: aead}, nil
}

// Seal encrypts plaintext and returns nonce, tag and ciphertext separately.
func (a *AESGCMCipher) Seal(plaintext []byte) (cryptoDomain.EncryptedField, error) {
	nonce := make([]byte, cryptoDomain.NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return cryptoDomain.EncryptedField{}, fmt.Errorf("failed to generate nonce: %w", err)
	}

	// Seal appends the tag to the ciphertext.
	sealed := a.aead.Seal(nil, nonce, plaintext, nil)
	split := len(sealed) - cryptoDomain.TagSize

	return cryptoDomain.EncryptedField{
		Nonce:      nonce,
		Tag:        sealed[split:],
		Ciphertext: sealed[:split],
	}, nil
}

// Open verifies the field's tag and decrypts it. Any authentication failure,
// including a nonce or tag of the wrong size, returns ErrDecryptionFailed.
func (a *AESGCMCipher) Open(field cryptoDomain.EncryptedField) ([]byte, error) {
	if len(field.Nonce) != cryptoDomain.NonceSize || len(field.Tag) != cryptoDomain.TagSize {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	sealed := make([]byte, 0, len(field.Ciphertext)+len(field.Tag))
	sealed = append(sealed, field.Ciphertext...)
	sealed = append(sealed, field.Tag...)

	plaintext, err := a.aead.Open(nil, field.Nonce, sealed, nil)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	return plaintext, nil
}
