package domain

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// StoredField is the result of inspecting a persisted field value.
//
// It is either an EncryptedField or a LegacyPlaintext; the set is closed.
type StoredField interface {
	isStoredField()
}

// EncryptedField is one AES-256-GCM sealed value in its decoded form.
//
// Serialized as "nonce:tag:ciphertext" where every part is hex encoded. The nonce
// is always NonceSize bytes and the tag TagSize bytes. A new EncryptedField is built
// on every write and never mutated.
type EncryptedField struct {
	Nonce      []byte
	Tag        []byte
	Ciphertext []byte
}

// LegacyPlaintext is a stored value that does not have the encrypted shape, either
// data written before encryption was enabled or a corrupted value. The two cases
// cannot be told apart.
type LegacyPlaintext struct {
	Raw string
}

func (EncryptedField) isStoredField()  {}
func (LegacyPlaintext) isStoredField() {}

// String serializes the field into its storage form using lowercase hex.
func (f EncryptedField) String() string {
	return strings.Join([]string{
		hex.EncodeToString(f.Nonce),
		hex.EncodeToString(f.Tag),
		hex.EncodeToString(f.Ciphertext),
	}, FieldSeparator)
}

// ParseStoredField classifies a persisted value by its shape.
//
// Anything that does not split into exactly three parts on ":" is LegacyPlaintext.
// Three parts are always treated as an encrypted value: if a part is not valid hex
// (either case) or the nonce or tag has the wrong size, ErrDecryptionFailed is
// returned rather than handing back a value that looks encrypted.
func ParseStoredField(stored string) (StoredField, error) {
	parts := strings.Split(stored, FieldSeparator)
	if len(parts) != 3 {
		return LegacyPlaintext{Raw: stored}, nil
	}

	nonce, err := hex.DecodeString(parts[0])
	if err != nil || len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: malformed nonce", ErrDecryptionFailed)
	}

	tag, err := hex.DecodeString(parts[1])
	if err != nil || len(tag) != TagSize {
		return nil, fmt.Errorf("%w: malformed authentication tag", ErrDecryptionFailed)
	}

	ciphertext, err := hex.DecodeString(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: malformed ciphertext", ErrDecryptionFailed)
	}

	return EncryptedField{Nonce: nonce, Tag: tag, Ciphertext: ciphertext}, nil
}

// IsEncrypted reports whether stored has the three part encrypted field shape.
func IsEncrypted(stored string) bool {
	return strings.Count(stored, FieldSeparator) == 2
}
