package domain

const (
	// EncryptionKeyEnv is the environment variable holding the hex encoded field encryption key.
	EncryptionKeyEnv = "FIELD_ENCRYPTION_KEY"

	// EncryptionKeyGenerateHint is the command operators can run to produce a valid key.
	EncryptionKeyGenerateHint = "openssl rand -hex 32"

	// KeySize is the raw key length in bytes required by AES-256.
	KeySize = 32

	// KeyHexLength is the number of hexadecimal characters that encode a KeySize key.
	KeyHexLength = KeySize * 2

	// AlgorithmEnv is the environment variable selecting the field encryption algorithm.
	AlgorithmEnv = "FIELD_ENCRYPTION_ALGORITHM"

	// NonceSize is the AEAD nonce length in bytes (96 bits).
	NonceSize = 12

	// TagSize is the AEAD authentication tag length in bytes (128 bits).
	TagSize = 16

	// FieldSeparator joins the nonce, tag and ciphertext of a stored field.
	FieldSeparator = ":"
)
