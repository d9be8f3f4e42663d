package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"cloud.google.com/go/civil"

	"github.com/allisson/fieldcrypt/codec"
)

// RunEncrypt encrypts a single field value and prints the resulting token in
// either text or JSON format. The value is parsed according to valueType
// before encryption, so the token decrypts with the matching typed operation.
func RunEncrypt(
	cipher codec.Cipher,
	logger *slog.Logger,
	writer io.Writer,
	valueType, value, format string,
) error {
	var token string
	var err error

	switch valueType {
	case "text":
		token, err = cipher.EncryptText(value)
	case "bool":
		parsed, parseErr := strconv.ParseBool(value)
		if parseErr != nil {
			return fmt.Errorf("invalid bool value: %s (valid options: true, false)", value)
		}
		token, err = cipher.EncryptBool(parsed)
	case "date":
		parsed, parseErr := civil.ParseDate(value)
		if parseErr != nil {
			return fmt.Errorf("invalid date value: %s (expected YYYY-MM-DD)", value)
		}
		token, err = cipher.EncryptDate(parsed)
	case "time":
		parsed, parseErr := civil.ParseTime(value)
		if parseErr != nil {
			return fmt.Errorf("invalid time value: %s (expected HH:MM:SS)", value)
		}
		token, err = cipher.EncryptTime(parsed)
	case "datetime":
		parsed, parseErr := parseDateTime(value)
		if parseErr != nil {
			return fmt.Errorf("invalid datetime value: %s (expected RFC 3339 or YYYY-MM-DDTHH:MM:SS)", value)
		}
		token, err = cipher.EncryptDateTime(parsed)
	default:
		return fmt.Errorf("invalid value type: %s (valid options: text, bool, date, time, datetime)", valueType)
	}
	if err != nil {
		return fmt.Errorf("failed to encrypt value: %w", err)
	}

	logger.Info("field value encrypted", slog.String("type", valueType))

	if format == "json" {
		return writeJSON(writer, map[string]string{"token": token})
	}

	_, _ = fmt.Fprintf(writer, "Token: %s\n", token)
	return nil
}
