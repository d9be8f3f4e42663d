package commands

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/allisson/fieldcrypt/internal/aead"
	"github.com/allisson/fieldcrypt/keyprovider"
)

// RunKeygen generates a cryptographically secure 32-byte encryption key and
// prints it as environment variable lines. Key material is zeroed from memory
// after encoding. If keyID is empty, a UUIDv7 is generated.
//
// When kmsProvider and kmsKeyURI are set, the key is wrapped with the KMS
// master key before output and only the ciphertext is printed.
//
// Security: never use the base64key provider in production. Use cloud KMS
// providers (gcpkms, awskms, azurekeyvault, hashivault).
func RunKeygen(
	ctx context.Context,
	logger *slog.Logger,
	writer io.Writer,
	keyID, kmsProvider, kmsKeyURI string,
) error {
	// KMS parameters must be set together
	if (kmsProvider == "") != (kmsKeyURI == "") {
		return fmt.Errorf(
			"--kms-provider and --kms-key-uri must be provided together\n\nFor local development, use:\n  --kms-provider=base64key --kms-key-uri=\"base64key://<32-byte-base64-key>\"\n\nFor production, use cloud KMS providers:\n  --kms-provider=gcpkms --kms-key-uri=\"gcpkms://projects/.../cryptoKeys/...\"\n  --kms-provider=awskms --kms-key-uri=\"awskms:///alias/...\"\n  --kms-provider=azurekeyvault --kms-key-uri=\"azurekeyvault://...\"",
		)
	}

	// Generate a default key ID if not provided
	if keyID == "" {
		keyID = uuid.Must(uuid.NewV7()).String()
	}

	// Generate a cryptographically secure 32-byte key
	key := make([]byte, aead.KeySize)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("failed to generate encryption key: %w", err)
	}
	defer aead.Zero(key)

	if kmsProvider == "" {
		encodedKey := base64.RawURLEncoding.EncodeToString(key)

		_, _ = fmt.Fprintln(writer, "# Encryption Key Configuration")
		_, _ = fmt.Fprintln(writer, "# Copy these environment variables to your .env file or secrets manager")
		_, _ = fmt.Fprintln(writer)
		_, _ = fmt.Fprintf(writer, "ENCRYPTION_KEY=\"%s\"\n", encodedKey)
		_, _ = fmt.Fprintf(writer, "ENCRYPTION_KEY_ID=\"%s\"\n", keyID)
		_, _ = fmt.Fprintln(writer)
		_, _ = fmt.Fprintln(writer, "# Keep the key secret. Anyone holding it can decrypt every protected field.")

		logger.Info("encryption key generated", slog.String("key_id", keyID))
		return nil
	}

	// KMS mode: wrap the key before output
	wrappedKey, err := keyprovider.WrapKey(ctx, kmsKeyURI, key)
	if err != nil {
		return fmt.Errorf("failed to wrap encryption key: %w", err)
	}

	_, _ = fmt.Fprintln(writer, "# Encryption Key Configuration (KMS Mode)")
	_, _ = fmt.Fprintln(writer, "# Copy these environment variables to your .env file or secrets manager")
	_, _ = fmt.Fprintln(writer)
	_, _ = fmt.Fprintf(writer, "KMS_PROVIDER=\"%s\"\n", kmsProvider)
	_, _ = fmt.Fprintf(writer, "KMS_KEY_URI=\"%s\"\n", kmsKeyURI)
	_, _ = fmt.Fprintf(writer, "ENCRYPTION_KEY_CIPHERTEXT=\"%s\"\n", wrappedKey)
	_, _ = fmt.Fprintf(writer, "ENCRYPTION_KEY_ID=\"%s\"\n", keyID)

	logger.Info(
		"encryption key generated",
		slog.String("key_id", keyID),
		slog.String("kms_provider", kmsProvider),
	)
	return nil
}
