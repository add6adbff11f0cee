package service

import (
	cryptoDomain "github.com/allisson/taxledger/internal/crypto/domain"
)

// NewAEAD creates the cipher for alg keyed with key.
func NewAEAD(alg cryptoDomain.Algorithm, key *cryptoDomain.EncryptionKey) (AEAD, error) {
	switch alg {
	case cryptoDomain.AESGCM:
		return NewAESGCM(key)
	case cryptoDomain.ChaCha20:
		return NewChaCha20Poly1305(key)
	default:
		return nil, cryptoDomain.ErrUnsupportedAlgorithm
	}
}
