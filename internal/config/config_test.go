package config

import (
	"encoding/base64"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEncryptionKey() string {
	return base64.RawURLEncoding.EncodeToString(make([]byte, 32))
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "load default configuration",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, "aes-gcm", cfg.EncryptionAlgorithm)
				assert.Empty(t, cfg.EncryptionKey)
				assert.Empty(t, cfg.EncryptionKeyID)
				assert.Empty(t, cfg.KMSProvider)
				assert.Empty(t, cfg.KMSKeyURI)
				assert.Empty(t, cfg.EncryptionKeyCiphertext)
				assert.False(t, cfg.MetricsEnabled)
				assert.Equal(t, "fieldcrypt", cfg.MetricsNamespace)
			},
		},
		{
			name: "load custom codec configuration",
			envVars: map[string]string{
				"ENCRYPTION_ALGORITHM": "chacha20-poly1305",
				"ENCRYPTION_KEY":       "dGVzdC1rZXk",
				"ENCRYPTION_KEY_ID":    "0193e4a2-key",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "chacha20-poly1305", cfg.EncryptionAlgorithm)
				assert.Equal(t, "dGVzdC1rZXk", cfg.EncryptionKey)
				assert.Equal(t, "0193e4a2-key", cfg.EncryptionKeyID)
			},
		},
		{
			name: "load custom KMS configuration",
			envVars: map[string]string{
				"KMS_PROVIDER":              "gcpkms",
				"KMS_KEY_URI":               "gcpkms://projects/p/locations/l/keyRings/r/cryptoKeys/k",
				"ENCRYPTION_KEY_CIPHERTEXT": "d3JhcHBlZA==",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "gcpkms", cfg.KMSProvider)
				assert.Equal(
					t,
					"gcpkms://projects/p/locations/l/keyRings/r/cryptoKeys/k",
					cfg.KMSKeyURI,
				)
				assert.Equal(t, "d3JhcHBlZA==", cfg.EncryptionKeyCiphertext)
			},
		},
		{
			name: "load custom metrics configuration",
			envVars: map[string]string{
				"METRICS_ENABLED":   "true",
				"METRICS_NAMESPACE": "myapp",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.MetricsEnabled)
				assert.Equal(t, "myapp", cfg.MetricsNamespace)
			},
		},
		{
			name: "load custom log level",
			envVars: map[string]string{
				"LOG_LEVEL": "debug",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.LogLevel)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear environment
			os.Clearenv()

			// Set test environment variables
			for key, value := range tt.envVars {
				err := os.Setenv(key, value)
				require.NoError(t, err)
			}

			// Load configuration
			cfg := Load()

			// Validate
			tt.validate(t, cfg)
		})
	}
}

func TestValidate(t *testing.T) {
	validKey := testEncryptionKey()

	tests := []struct {
		name      string
		cfg       Config
		shouldErr bool
		errMsg    string
	}{
		{
			name: "valid static key configuration",
			cfg: Config{
				LogLevel:            "info",
				EncryptionAlgorithm: "aes-gcm",
				EncryptionKey:       validKey,
				MetricsNamespace:    "fieldcrypt",
			},
			shouldErr: false,
		},
		{
			name: "valid KMS configuration",
			cfg: Config{
				LogLevel:                "info",
				EncryptionAlgorithm:     "chacha20-poly1305",
				KMSProvider:             "base64key",
				KMSKeyURI:               "base64key://" + base64.URLEncoding.EncodeToString(make([]byte, 32)),
				EncryptionKeyCiphertext: "d3JhcHBlZA==",
			},
			shouldErr: false,
		},
		{
			name: "invalid log level",
			cfg: Config{
				LogLevel:            "verbose",
				EncryptionAlgorithm: "aes-gcm",
				EncryptionKey:       validKey,
			},
			shouldErr: true,
			errMsg:    "log level must be one of",
		},
		{
			name: "missing encryption algorithm",
			cfg: Config{
				LogLevel:      "info",
				EncryptionKey: validKey,
			},
			shouldErr: true,
			errMsg:    "encryption algorithm is required",
		},
		{
			name: "unsupported encryption algorithm",
			cfg: Config{
				LogLevel:            "info",
				EncryptionAlgorithm: "des",
				EncryptionKey:       validKey,
			},
			shouldErr: true,
			errMsg:    "encryption algorithm must be one of",
		},
		{
			name: "missing encryption key without KMS",
			cfg: Config{
				LogLevel:            "info",
				EncryptionAlgorithm: "aes-gcm",
			},
			shouldErr: true,
			errMsg:    "encryption key is required",
		},
		{
			name: "malformed encryption key",
			cfg: Config{
				LogLevel:            "info",
				EncryptionAlgorithm: "aes-gcm",
				EncryptionKey:       "not a valid key!!!",
			},
			shouldErr: true,
			errMsg:    "must be valid URL-safe base64-encoded data",
		},
		{
			name: "encryption key with wrong size",
			cfg: Config{
				LogLevel:            "info",
				EncryptionAlgorithm: "aes-gcm",
				EncryptionKey:       base64.RawURLEncoding.EncodeToString(make([]byte, 16)),
			},
			shouldErr: true,
			errMsg:    "must decode to exactly 32 bytes",
		},
		{
			name: "key id with whitespace",
			cfg: Config{
				LogLevel:            "info",
				EncryptionAlgorithm: "aes-gcm",
				EncryptionKey:       validKey,
				EncryptionKeyID:     " key-id ",
			},
			shouldErr: true,
			errMsg:    "must not contain leading or trailing whitespace",
		},
		{
			name: "unknown KMS provider",
			cfg: Config{
				LogLevel:                "info",
				EncryptionAlgorithm:     "aes-gcm",
				KMSProvider:             "vault9000",
				KMSKeyURI:               "vault9000://key",
				EncryptionKeyCiphertext: "d3JhcHBlZA==",
			},
			shouldErr: true,
			errMsg:    "KMS provider must be one of",
		},
		{
			name: "KMS provider without key URI",
			cfg: Config{
				LogLevel:                "info",
				EncryptionAlgorithm:     "aes-gcm",
				KMSProvider:             "hashivault",
				EncryptionKeyCiphertext: "d3JhcHBlZA==",
			},
			shouldErr: true,
			errMsg:    "KMS key URI is required",
		},
		{
			name: "KMS provider without wrapped key",
			cfg: Config{
				LogLevel:            "info",
				EncryptionAlgorithm: "aes-gcm",
				KMSProvider:         "hashivault",
				KMSKeyURI:           "hashivault://transit-key",
			},
			shouldErr: true,
			errMsg:    "encryption key ciphertext is required",
		},
		{
			name: "wrapped key is not standard base64",
			cfg: Config{
				LogLevel:                "info",
				EncryptionAlgorithm:     "aes-gcm",
				KMSProvider:             "hashivault",
				KMSKeyURI:               "hashivault://transit-key",
				EncryptionKeyCiphertext: "not base64!!!",
			},
			shouldErr: true,
			errMsg:    "must be valid base64-encoded data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.shouldErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Contains(t, err.Error(), "invalid input")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
