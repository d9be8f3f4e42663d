package commands

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/allisson/fieldcrypt/codec"
)

// testEncryptionKey is a URL-safe base64 encoding of a 32-byte key.
const testEncryptionKey = "AAECAwQFBgcICQoLDA0ODxAREhMUFRYXGBkaGxwdHh8"

// newTestCipher builds a codec for command tests.
func newTestCipher(t *testing.T) codec.Cipher {
	t.Helper()

	cipher, err := codec.New(testEncryptionKey, codec.AESGCM)
	require.NoError(t, err)
	return cipher
}
