package commands

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/allisson/fieldcrypt/codec"
)

// RunInspect authenticates a token and prints its embedded creation timestamp
// without revealing the plaintext.
func RunInspect(
	cipher codec.Cipher,
	logger *slog.Logger,
	writer io.Writer,
	token, format string,
) error {
	issuedAt, err := cipher.TokenIssuedAt(token)
	if err != nil {
		return fmt.Errorf("failed to inspect token: %w", err)
	}

	logger.Info("token inspected", slog.Time("issued_at", issuedAt))

	if format == "json" {
		return writeJSON(writer, map[string]string{"issued_at": issuedAt.Format(time.RFC3339)})
	}

	_, _ = fmt.Fprintf(writer, "Issued At: %s\n", issuedAt.Format(time.RFC3339))
	return nil
}
