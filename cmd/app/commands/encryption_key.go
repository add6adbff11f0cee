package commands

import (
	"crypto/rand"
	"fmt"
	"io"

	cryptoDomain "github.com/allisson/taxledger/internal/crypto/domain"
)

// RunCreateEncryptionKey generates a random AES-256 key and prints it in the form
// expected by FIELD_ENCRYPTION_KEY. The raw bytes are zeroed once encoded.
func RunCreateEncryptionKey(w io.Writer, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	raw := make([]byte, cryptoDomain.KeySize)
	if _, err := rand.Read(raw); err != nil {
		return fmt.Errorf("failed to generate encryption key: %w", err)
	}
	defer cryptoDomain.Zero(raw)

	key, err := cryptoDomain.NewEncryptionKey(raw)
	if err != nil {
		return err
	}
	defer key.Close()

	value := key.Hex()
	return render(w, format,
		map[string]string{"variable": cryptoDomain.EncryptionKeyEnv, "value": value},
		func(w io.Writer) error {
			_, err := fmt.Fprintf(w,
				"# Store this value in your secret manager. Losing it makes client data unreadable.\n%s=%q\n",
				cryptoDomain.EncryptionKeyEnv, value)
			return err
		},
	)
}
