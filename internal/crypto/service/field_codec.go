package service

import (
	"fmt"
	"log/slog"

	cryptoDomain "github.com/allisson/taxledger/internal/crypto/domain"
)

// FieldCodec encrypts and decrypts individual text fields for storage.
//
// The encryption key is injected and validated once, when the codec is built.
// Reads of values that predate encryption (anything without the three part
// "nonce:tag:ciphertext" shape) return the raw value and emit a warning that
// carries only the value length.
type FieldCodec struct {
	aead   AEAD
	logger *slog.Logger
}

// NewFieldCodec creates a codec sealing values with alg under key.
func NewFieldCodec(
	alg cryptoDomain.Algorithm,
	key *cryptoDomain.EncryptionKey,
	logger *slog.Logger,
) (*FieldCodec, error) {
	aead, err := NewAEAD(alg, key)
	if err != nil {
		return nil, err
	}
	return NewFieldCodecWithAEAD(aead, logger), nil
}

// NewFieldCodecWithAEAD creates a codec around an existing AEAD.
func NewFieldCodecWithAEAD(aead AEAD, logger *slog.Logger) *FieldCodec {
	if logger == nil {
		logger = slog.Default()
	}
	return &FieldCodec{aead: aead, logger: logger}
}

// Encrypt seals plaintext and serializes it as "nonce:tag:ciphertext".
func (c *FieldCodec) Encrypt(plaintext string) (string, error) {
	field, err := c.aead.Seal([]byte(plaintext))
	if err != nil {
		return "", fmt.Errorf("failed to encrypt field: %w", err)
	}
	return field.String(), nil
}

// Decrypt restores the plaintext of a stored value.
func (c *FieldCodec) Decrypt(stored string) (string, error) {
	parsed, err := cryptoDomain.ParseStoredField(stored)
	if err != nil {
		return "", err
	}

	switch field := parsed.(type) {
	case cryptoDomain.LegacyPlaintext:
		c.logger.Warn("legacy plaintext field read",
			slog.Int("length", len(field.Raw)),
		)
		return field.Raw, nil
	case cryptoDomain.EncryptedField:
		plaintext, err := c.aead.Open(field)
		if err != nil {
			return "", err
		}
		return string(plaintext), nil
	default:
		return "", fmt.Errorf("%w: unknown stored field %T", cryptoDomain.ErrDecryptionFailed, parsed)
	}
}

// EncryptOptional encrypts a nullable field; nil means no value and is not encrypted.
func (c *FieldCodec) EncryptOptional(plaintext *string) (*string, error) {
	if plaintext == nil {
		return nil, nil
	}
	stored, err := c.Encrypt(*plaintext)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// DecryptOptional decrypts a nullable field; nil stays nil.
func (c *FieldCodec) DecryptOptional(stored *string) (*string, error) {
	if stored == nil {
		return nil, nil
	}
	plaintext, err := c.Decrypt(*stored)
	if err != nil {
		return nil, err
	}
	return &plaintext, nil
}
