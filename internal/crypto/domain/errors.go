package domain

import (
	"github.com/allisson/taxledger/internal/errors"
)

// Field encryption error definitions.
//
// Configuration errors describe a deployment problem and are fatal to the call that
// hit them. Decryption errors mean a stored value failed authentication. Neither is
// mapped to a client error: both surface as internal errors at the HTTP layer so a
// tampered or misconfigured value is never silently replaced.
var (
	// ErrConfiguration is the parent of every encryption key configuration error.
	ErrConfiguration = errors.New("encryption configuration error")

	// ErrEncryptionKeyNotSet indicates the key variable is absent or empty.
	ErrEncryptionKeyNotSet = errors.Wrap(ErrConfiguration, "encryption key not set")

	// ErrInvalidEncryptionKey indicates the key is not exactly 64 hexadecimal characters.
	ErrInvalidEncryptionKey = errors.Wrap(ErrConfiguration, "invalid encryption key")

	// ErrUnsupportedAlgorithm indicates an unknown field encryption algorithm.
	ErrUnsupportedAlgorithm = errors.Wrap(ErrConfiguration, "unsupported encryption algorithm")

	// ErrDecryptionFailed indicates the authentication tag did not verify.
	//
	// The cause (wrong key, tampered ciphertext, corrupted nonce or tag) is not
	// distinguished.
	ErrDecryptionFailed = errors.New("decryption failed")
)
