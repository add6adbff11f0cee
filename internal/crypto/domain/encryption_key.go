package domain

import (
	"encoding/hex"
	"fmt"
)

// EncryptionKey is the 32-byte AES-256 key used to protect sensitive fields at rest.
//
// A key value only exists once its source passed validation, so holders never need
// to re-check its shape.
type EncryptionKey struct {
	key []byte
}

// ParseEncryptionKey validates raw as a 64 character hexadecimal string and decodes it.
//
// The variable name is only used to build error messages that tell the operator
// which setting to fix:
//   - empty raw returns ErrEncryptionKeyNotSet with a generation hint
//   - any other shape (wrong length, non-hex characters, whitespace) returns
//     ErrInvalidEncryptionKey including the observed length
//
// The key material itself is never included in an error.
func ParseEncryptionKey(variable, raw string) (*EncryptionKey, error) {
	if raw == "" {
		return nil, fmt.Errorf(
			"%w: %s environment variable is required. Generate one with: %s",
			ErrEncryptionKeyNotSet,
			variable,
			EncryptionKeyGenerateHint,
		)
	}

	if len(raw) != KeyHexLength || !isHex(raw) {
		return nil, invalidKeyError(variable, len(raw))
	}

	key, err := hex.DecodeString(raw)
	if err != nil {
		return nil, invalidKeyError(variable, len(raw))
	}

	return &EncryptionKey{key: key}, nil
}

// NewEncryptionKey wraps raw key bytes, typically freshly generated ones.
// The slice is copied, callers may zero their copy afterwards.
func NewEncryptionKey(raw []byte) (*EncryptionKey, error) {
	if len(raw) != KeySize {
		return nil, fmt.Errorf(
			"%w: key must be %d bytes, got %d",
			ErrInvalidEncryptionKey,
			KeySize,
			len(raw),
		)
	}

	key := make([]byte, KeySize)
	copy(key, raw)
	return &EncryptionKey{key: key}, nil
}

// Bytes returns the raw key material.
func (k *EncryptionKey) Bytes() []byte {
	return k.key
}

// Hex returns the key in the textual form accepted by ParseEncryptionKey.
func (k *EncryptionKey) Hex() string {
	return hex.EncodeToString(k.key)
}

// Close zeroes the key material. The key must not be used afterwards.
func (k *EncryptionKey) Close() {
	Zero(k.key)
}

// Zero overwrites a byte slice with zeros to clear sensitive data from memory.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func invalidKeyError(variable string, length int) error {
	return fmt.Errorf(
		"%w: %s must be %d hexadecimal characters (%d bytes). Current length: %d",
		ErrInvalidEncryptionKey,
		variable,
		KeyHexLength,
		KeySize,
		length,
	)
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
