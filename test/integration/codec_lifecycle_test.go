// Package integration provides end-to-end tests wiring configuration, the
// dependency injection container, key providers and the field codec together.
package integration

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/fieldcrypt/codec"
	"github.com/allisson/fieldcrypt/internal/app"
	"github.com/allisson/fieldcrypt/internal/config"
	"github.com/allisson/fieldcrypt/keyprovider"
)

// generateEncryptionKey creates a new 32-byte key in the codec key format.
func generateEncryptionKey(t *testing.T) string {
	t.Helper()

	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err, "failed to generate encryption key")
	return base64.RawURLEncoding.EncodeToString(key)
}

// generateLocalSecretsURI generates a base64key:// URI for the local KMS driver.
func generateLocalSecretsURI(t *testing.T) string {
	t.Helper()

	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err, "failed to generate KMS master key")
	return "base64key://" + base64.URLEncoding.EncodeToString(key)
}

// setupContainer validates the configuration and builds a container that is
// shut down when the test finishes.
func setupContainer(t *testing.T, cfg *config.Config) *app.Container {
	t.Helper()

	require.NoError(t, cfg.Validate(), "configuration should validate")

	container := app.NewContainer(cfg)
	t.Cleanup(func() {
		assert.NoError(t, container.Shutdown(context.Background()), "failed to shutdown container")
	})
	return container
}

// TestCodecLifecycle exercises the full flow from configuration to typed
// round trips for both supported algorithms.
func TestCodecLifecycle(t *testing.T) {
	for _, algorithm := range []string{"aes-gcm", "chacha20-poly1305"} {
		t.Run(algorithm, func(t *testing.T) {
			container := setupContainer(t, &config.Config{
				LogLevel:            "error",
				EncryptionAlgorithm: algorithm,
				EncryptionKey:       generateEncryptionKey(t),
			})

			cipher, err := container.Codec()
			require.NoError(t, err, "failed to get codec")

			textToken, err := cipher.EncryptText("integration secret")
			require.NoError(t, err)
			text, err := cipher.DecryptText(textToken)
			require.NoError(t, err)
			assert.Equal(t, "integration secret", text)

			boolToken, err := cipher.EncryptBool(true)
			require.NoError(t, err)
			boolValue, err := cipher.DecryptBool(boolToken)
			require.NoError(t, err)
			assert.True(t, boolValue)

			date := civil.Date{Year: 2024, Month: time.February, Day: 29}
			dateToken, err := cipher.EncryptDate(date)
			require.NoError(t, err)
			dateValue, err := cipher.DecryptDate(dateToken)
			require.NoError(t, err)
			assert.Equal(t, date, dateValue)

			clock := civil.Time{Hour: 23, Minute: 59, Second: 59}
			timeToken, err := cipher.EncryptTime(clock)
			require.NoError(t, err)
			timeValue, err := cipher.DecryptTime(timeToken)
			require.NoError(t, err)
			assert.Equal(t, clock, timeValue)

			timestamp := time.Date(2024, 6, 15, 12, 30, 45, 123456789, time.UTC)
			datetimeToken, err := cipher.EncryptDateTime(timestamp)
			require.NoError(t, err)
			datetimeValue, err := cipher.DecryptDateTime(datetimeToken)
			require.NoError(t, err)
			assert.True(t, timestamp.Equal(datetimeValue))

			issuedAt, err := cipher.TokenIssuedAt(textToken)
			require.NoError(t, err)
			assert.WithinDuration(t, time.Now(), issuedAt, time.Minute)

			// A codec holding a different key is denied
			otherContainer := setupContainer(t, &config.Config{
				LogLevel:            "error",
				EncryptionAlgorithm: algorithm,
				EncryptionKey:       generateEncryptionKey(t),
			})
			otherCipher, err := otherContainer.Codec()
			require.NoError(t, err, "failed to get second codec")

			_, err = otherCipher.DecryptText(textToken)
			assert.ErrorIs(t, err, codec.ErrAccessDenied)
		})
	}
}

// TestKMSKeyDelivery verifies that a KMS-wrapped key and a static key yield
// interoperable codecs when both carry the same key material.
func TestKMSKeyDelivery(t *testing.T) {
	ctx := context.Background()

	encodedKey := generateEncryptionKey(t)
	rawKey, err := base64.RawURLEncoding.DecodeString(encodedKey)
	require.NoError(t, err)

	keyURI := generateLocalSecretsURI(t)
	wrappedKey, err := keyprovider.WrapKey(ctx, keyURI, rawKey)
	require.NoError(t, err, "failed to wrap encryption key")

	staticContainer := setupContainer(t, &config.Config{
		LogLevel:            "error",
		EncryptionAlgorithm: "aes-gcm",
		EncryptionKey:       encodedKey,
	})
	kmsContainer := setupContainer(t, &config.Config{
		LogLevel:                "error",
		EncryptionAlgorithm:     "aes-gcm",
		KMSProvider:             "base64key",
		KMSKeyURI:               keyURI,
		EncryptionKeyCiphertext: wrappedKey,
	})

	staticCipher, err := staticContainer.Codec()
	require.NoError(t, err, "failed to get static codec")
	kmsCipher, err := kmsContainer.Codec()
	require.NoError(t, err, "failed to get KMS codec")

	token, err := staticCipher.EncryptText("wrapped delivery")
	require.NoError(t, err)
	value, err := kmsCipher.DecryptText(token)
	require.NoError(t, err)
	assert.Equal(t, "wrapped delivery", value)

	token, err = kmsCipher.EncryptText("round trip back")
	require.NoError(t, err)
	value, err = staticCipher.DecryptText(token)
	require.NoError(t, err)
	assert.Equal(t, "round trip back", value)
}

// TestMetricsExposition verifies that codec operations made through a
// metrics-enabled container show up on the Prometheus handler.
func TestMetricsExposition(t *testing.T) {
	container := setupContainer(t, &config.Config{
		LogLevel:            "error",
		EncryptionAlgorithm: "aes-gcm",
		EncryptionKey:       generateEncryptionKey(t),
		MetricsEnabled:      true,
		MetricsNamespace:    "fieldcrypt",
	})

	cipher, err := container.Codec()
	require.NoError(t, err, "failed to get codec")

	token, err := cipher.EncryptText("observed")
	require.NoError(t, err)
	_, err = cipher.DecryptText(token)
	require.NoError(t, err)

	provider, err := container.MetricsProvider()
	require.NoError(t, err, "failed to get metrics provider")

	recorder := httptest.NewRecorder()
	provider.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "fieldcrypt_operations_total")
}
