package service

import (
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	cryptoDomain "github.com/allisson/taxledger/internal/crypto/domain"
)

// ChaCha20Poly1305Cipher implements AEAD using ChaCha20-Poly1305. It is the
// faster choice on hosts without AES hardware acceleration.
type ChaCha20Poly1305Cipher struct {
	aead cipher.AEAD
}

// NewChaCha20Poly1305 creates a ChaCha20-Poly1305 cipher from a validated encryption key.
func NewChaCha20Poly1305(key *cryptoDomain.EncryptionKey) (*ChaCha20Poly1305Cipher, error) {
	if key == nil || len(key.Bytes()) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("%w: key must be exactly %d bytes", cryptoDomain.ErrInvalidEncryptionKey, chacha20poly1305.KeySize)
	}

	aead, err := chacha20poly1305.New(key.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to create ChaCha20-Poly1305 cipher: %w", err)
	}

	return &ChaCha20Poly1305Cipher{aead: aead}, nil
}

// Seal encrypts plaintext under a random nonce and splits off the Poly1305 tag.
func (c *ChaCha20Poly1305Cipher) Seal(plaintext []byte) (cryptoDomain.EncryptedField, error) {
	nonce := make([]byte, chacha20poly1305.NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return cryptoDomain.EncryptedField{}, fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := c.aead.Seal(nil, nonce, plaintext, nil)
	split := len(sealed) - chacha20poly1305.Overhead

	return cryptoDomain.EncryptedField{
		Nonce:      nonce,
		Tag:        sealed[split:],
		Ciphertext: sealed[:split],
	}, nil
}

// Open verifies the tag and decrypts the field. Every failure is ErrDecryptionFailed.
func (c *ChaCha20Poly1305Cipher) Open(field cryptoDomain.EncryptedField) ([]byte, error) {
	if len(field.Nonce) != chacha20poly1305.NonceSize || len(field.Tag) != chacha20poly1305.Overhead {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	sealed := make([]byte, 0, len(field.Ciphertext)+len(field.Tag))
	sealed = append(sealed, field.Ciphertext...)
	sealed = append(sealed, field.Tag...)

	plaintext, err := c.aead.Open(nil, field.Nonce, sealed, nil)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	return plaintext, nil
}
