// Package service provides the authenticated field encryption used to protect
// personally identifying columns (client names, ABNs) at rest.
package service

import (
	cryptoDomain "github.com/allisson/taxledger/internal/crypto/domain"
)

// AEAD seals and opens individual values with a detached authentication tag.
type AEAD interface {
	// Seal encrypts plaintext under a freshly generated nonce.
	Seal(plaintext []byte) (cryptoDomain.EncryptedField, error)

	// Open verifies the tag and returns the plaintext.
	Open(field cryptoDomain.EncryptedField) ([]byte, error)
}

// FieldEncryptor converts sensitive string fields to and from their storage form.
type FieldEncryptor interface {
	// Encrypt returns the "nonce:tag:ciphertext" form of plaintext.
	Encrypt(plaintext string) (string, error)

	// Decrypt returns the plaintext of a stored value. Values without the encrypted
	// shape are returned unchanged.
	Decrypt(stored string) (string, error)

	// EncryptOptional is Encrypt for nullable fields; nil stays nil.
	EncryptOptional(plaintext *string) (*string, error)

	// DecryptOptional is Decrypt for nullable fields; nil stays nil.
	DecryptOptional(stored *string) (*string, error)
}
