package domain

import (
	"fmt"
	"strings"
)

// Algorithm names the AEAD used to seal stored fields. Both algorithms use a
// 12-byte nonce and a 16-byte tag, so the stored shape is identical. Values
// sealed under one algorithm cannot be opened under the other.
type Algorithm string

const (
	AESGCM   Algorithm = "aes-gcm"
	ChaCha20 Algorithm = "chacha20-poly1305"
)

// ParseAlgorithm converts a configuration value into an Algorithm. An empty
// value selects AESGCM.
func ParseAlgorithm(raw string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(raw))) {
	case "", AESGCM:
		return AESGCM, nil
	case ChaCha20:
		return ChaCha20, nil
	default:
		return "", fmt.Errorf("%w: %q (valid options: %s, %s)", ErrUnsupportedAlgorithm, raw, AESGCM, ChaCha20)
	}
}
