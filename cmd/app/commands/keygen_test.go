package commands

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/allisson/fieldcrypt/codec"
	"github.com/allisson/fieldcrypt/keyprovider"
)

// generateLocalSecretsURI generates a base64key:// URI for testing.
func generateLocalSecretsURI(t *testing.T) string {
	t.Helper()

	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return "base64key://" + base64.URLEncoding.EncodeToString(key)
}

// extractEnvValue returns the quoted value of an env line in the command output.
func extractEnvValue(t *testing.T, output, name string) string {
	t.Helper()

	prefix := name + "=\""
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSuffix(strings.TrimPrefix(line, prefix), "\"")
		}
	}
	t.Fatalf("output does not contain %s line", name)
	return ""
}

func TestRunKeygen(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("success", func(t *testing.T) {
		var out bytes.Buffer
		err := RunKeygen(ctx, logger, &out, "my-key", "", "")

		require.NoError(t, err)
		require.Contains(t, out.String(), "ENCRYPTION_KEY=\"")
		require.Contains(t, out.String(), "ENCRYPTION_KEY_ID=\"my-key\"")
	})

	t.Run("success-generated-key-is-usable", func(t *testing.T) {
		var out bytes.Buffer
		err := RunKeygen(ctx, logger, &out, "my-key", "", "")
		require.NoError(t, err)

		encodedKey := extractEnvValue(t, out.String(), "ENCRYPTION_KEY")
		_, err = codec.New(encodedKey, codec.AESGCM)
		require.NoError(t, err)
	})

	t.Run("success-default-id-is-uuid", func(t *testing.T) {
		var out bytes.Buffer
		err := RunKeygen(ctx, logger, &out, "", "", "")
		require.NoError(t, err)

		keyID := extractEnvValue(t, out.String(), "ENCRYPTION_KEY_ID")
		_, err = uuid.Parse(keyID)
		require.NoError(t, err)
	})

	t.Run("success-kms", func(t *testing.T) {
		keyURI := generateLocalSecretsURI(t)

		var out bytes.Buffer
		err := RunKeygen(ctx, logger, &out, "kms-key", "base64key", keyURI)

		require.NoError(t, err)
		require.Contains(t, out.String(), "KMS_PROVIDER=\"base64key\"")
		require.Contains(t, out.String(), "KMS_KEY_URI=\""+keyURI+"\"")
		require.Contains(t, out.String(), "ENCRYPTION_KEY_CIPHERTEXT=\"")
		require.Contains(t, out.String(), "ENCRYPTION_KEY_ID=\"kms-key\"")

		// The plaintext key must never appear in KMS mode
		require.NotContains(t, out.String(), "ENCRYPTION_KEY=\"")
	})

	t.Run("success-kms-wrapped-key-unwraps", func(t *testing.T) {
		keyURI := generateLocalSecretsURI(t)

		var out bytes.Buffer
		err := RunKeygen(ctx, logger, &out, "kms-key", "base64key", keyURI)
		require.NoError(t, err)

		wrappedKey := extractEnvValue(t, out.String(), "ENCRYPTION_KEY_CIPHERTEXT")
		provider, err := keyprovider.NewKMS(ctx, keyURI, wrappedKey)
		require.NoError(t, err)
		defer func() {
			require.NoError(t, provider.Close())
		}()

		encodedKey, err := provider.Key(ctx)
		require.NoError(t, err)

		_, err = codec.New(encodedKey, codec.AESGCM)
		require.NoError(t, err)
	})

	t.Run("missing-kms-uri", func(t *testing.T) {
		var out bytes.Buffer
		err := RunKeygen(ctx, logger, &out, "", "gcpkms", "")

		require.Error(t, err)
		require.Contains(t, err.Error(), "must be provided together")
	})

	t.Run("missing-kms-provider", func(t *testing.T) {
		var out bytes.Buffer
		err := RunKeygen(ctx, logger, &out, "", "", "base64key://key")

		require.Error(t, err)
		require.Contains(t, err.Error(), "must be provided together")
	})

	t.Run("kms-open-error", func(t *testing.T) {
		var out bytes.Buffer
		err := RunKeygen(ctx, logger, &out, "", "gcpkms", "invalid://uri")

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to wrap encryption key")
	})
}
