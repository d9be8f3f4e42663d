// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"

	appValidation "github.com/allisson/fieldcrypt/internal/validation"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// EncryptionAlgorithm is the AEAD algorithm used by the field codec
	// (e.g., "aes-gcm", "chacha20-poly1305").
	EncryptionAlgorithm string
	// EncryptionKey is the URL-safe base64 encoded 32-byte encryption key.
	// Required unless a KMS provider delivers the key.
	EncryptionKey string
	// EncryptionKeyID is an optional identifier for the active key, carried
	// through logs and generated env output for rotation bookkeeping.
	EncryptionKeyID string

	// KMSProvider is the KMS provider holding the wrapped encryption key
	// (e.g., "gcpkms", "awskms", "azurekeyvault", "hashivault", "base64key").
	// Empty means the key comes directly from EncryptionKey.
	KMSProvider string
	// KMSKeyURI is the URI for the master key in the KMS.
	KMSKeyURI string
	// EncryptionKeyCiphertext is the standard base64 encoded encryption key
	// as wrapped by the KMS master key.
	EncryptionKeyCiphertext string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Field codec
		EncryptionAlgorithm: env.GetString("ENCRYPTION_ALGORITHM", "aes-gcm"),
		EncryptionKey:       env.GetString("ENCRYPTION_KEY", ""),
		EncryptionKeyID:     env.GetString("ENCRYPTION_KEY_ID", ""),

		// KMS configuration
		KMSProvider:             env.GetString("KMS_PROVIDER", ""),
		KMSKeyURI:               env.GetString("KMS_KEY_URI", ""),
		EncryptionKeyCiphertext: env.GetString("ENCRYPTION_KEY_CIPHERTEXT", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", false),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "fieldcrypt"),
	}
}

// Validate checks that the loaded configuration is usable. A process must not
// start encrypting with a misconfigured key, so callers treat any error here
// as fatal.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.LogLevel,
			validation.In("debug", "info", "warn", "error").
				Error("log level must be one of: debug, info, warn, error"),
		),
		validation.Field(&c.EncryptionAlgorithm,
			validation.Required.Error("encryption algorithm is required"),
			validation.In("aes-gcm", "chacha20-poly1305").
				Error("encryption algorithm must be one of: aes-gcm, chacha20-poly1305"),
		),
		validation.Field(&c.EncryptionKey,
			validation.When(c.KMSProvider == "",
				validation.Required.Error("encryption key is required when no KMS provider is configured"),
			),
			appValidation.Base64URLKey,
		),
		validation.Field(&c.EncryptionKeyID,
			appValidation.NoWhitespace,
		),
		validation.Field(&c.KMSProvider,
			validation.In("gcpkms", "awskms", "azurekeyvault", "hashivault", "base64key").
				Error("KMS provider must be one of: gcpkms, awskms, azurekeyvault, hashivault, base64key"),
		),
		validation.Field(&c.KMSKeyURI,
			validation.When(c.KMSProvider != "",
				validation.Required.Error("KMS key URI is required when a KMS provider is configured"),
			),
			appValidation.NoWhitespace,
		),
		validation.Field(&c.EncryptionKeyCiphertext,
			validation.When(c.KMSProvider != "",
				validation.Required.Error(
					"encryption key ciphertext is required when a KMS provider is configured",
				),
			),
			appValidation.Base64,
		),
	)
	return appValidation.WrapValidationError(err)
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
