package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestParseEncryptionKey(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
		errMsgs []string
	}{
		{
			name: "valid lowercase key",
			raw:  validKeyHex,
		},
		{
			name: "valid uppercase key",
			raw:  strings.ToUpper(validKeyHex),
		},
		{
			name:    "unset key",
			raw:     "",
			wantErr: ErrEncryptionKeyNotSet,
			errMsgs: []string{"FIELD_ENCRYPTION_KEY", "openssl rand -hex 32"},
		},
		{
			name:    "short key",
			raw:     "abcdef",
			wantErr: ErrInvalidEncryptionKey,
			errMsgs: []string{"FIELD_ENCRYPTION_KEY", "64", "Current length: 6"},
		},
		{
			name:    "32 character key",
			raw:     validKeyHex[:32],
			wantErr: ErrInvalidEncryptionKey,
			errMsgs: []string{"64", "Current length: 32"},
		},
		{
			name:    "128 character key",
			raw:     validKeyHex + validKeyHex,
			wantErr: ErrInvalidEncryptionKey,
			errMsgs: []string{"64", "Current length: 128"},
		},
		{
			name:    "non hex characters",
			raw:     strings.Repeat("g", 64),
			wantErr: ErrInvalidEncryptionKey,
			errMsgs: []string{"64", "Current length: 64"},
		},
		{
			name:    "embedded whitespace",
			raw:     validKeyHex[:30] + "  " + validKeyHex[32:],
			wantErr: ErrInvalidEncryptionKey,
			errMsgs: []string{"64", "Current length: 64"},
		},
		{
			name:    "trailing newline",
			raw:     validKeyHex + "\n",
			wantErr: ErrInvalidEncryptionKey,
			errMsgs: []string{"Current length: 65"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ParseEncryptionKey(EncryptionKeyEnv, tt.raw)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, key)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrConfiguration)
				for _, msg := range tt.errMsgs {
					assert.Contains(t, err.Error(), msg)
				}
				return
			}

			require.NoError(t, err)
			assert.Len(t, key.Bytes(), KeySize)
			assert.Equal(t, strings.ToLower(tt.raw), key.Hex())
		})
	}
}

func TestParseEncryptionKey_DoesNotLeakKeyMaterial(t *testing.T) {
	raw := validKeyHex[:63] + "z"

	_, err := ParseEncryptionKey(EncryptionKeyEnv, raw)

	require.Error(t, err)
	assert.NotContains(t, err.Error(), raw)
}

func TestNewEncryptionKey(t *testing.T) {
	t.Run("copies raw bytes", func(t *testing.T) {
		raw := make([]byte, KeySize)
		raw[0] = 0xff

		key, err := NewEncryptionKey(raw)
		require.NoError(t, err)

		Zero(raw)
		assert.Equal(t, byte(0xff), key.Bytes()[0])
	})

	t.Run("rejects wrong size", func(t *testing.T) {
		_, err := NewEncryptionKey(make([]byte, 16))
		assert.ErrorIs(t, err, ErrInvalidEncryptionKey)
	})
}

func TestEncryptionKey_Close(t *testing.T) {
	key, err := ParseEncryptionKey(EncryptionKeyEnv, validKeyHex)
	require.NoError(t, err)

	key.Close()

	assert.Equal(t, make([]byte, KeySize), key.Bytes())
}

func TestZero(t *testing.T) {
	t.Run("zero non-empty slice", func(t *testing.T) {
		b := []byte{1, 2, 3, 4, 5}
		Zero(b)
		assert.Equal(t, []byte{0, 0, 0, 0, 0}, b)
	})

	t.Run("zero nil slice", func(t *testing.T) {
		var b []byte
		assert.NotPanics(t, func() { Zero(b) })
	})
}
