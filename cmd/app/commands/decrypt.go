package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"cloud.google.com/go/civil"

	"github.com/allisson/fieldcrypt/codec"
)

// RunDecrypt decrypts a token as the requested value type and prints the
// recovered value in either text or JSON format. Dates and times are rendered
// in their canonical forms; datetimes as RFC 3339.
func RunDecrypt(
	cipher codec.Cipher,
	logger *slog.Logger,
	writer io.Writer,
	valueType, token, format string,
) error {
	var value string
	var err error

	switch valueType {
	case "text":
		value, err = cipher.DecryptText(token)
	case "bool":
		var parsed bool
		parsed, err = cipher.DecryptBool(token)
		value = strconv.FormatBool(parsed)
	case "date":
		var parsed civil.Date
		parsed, err = cipher.DecryptDate(token)
		value = parsed.String()
	case "time":
		var parsed civil.Time
		parsed, err = cipher.DecryptTime(token)
		value = parsed.String()
	case "datetime":
		var parsed time.Time
		parsed, err = cipher.DecryptDateTime(token)
		value = parsed.Format(time.RFC3339Nano)
	default:
		return fmt.Errorf("invalid value type: %s (valid options: text, bool, date, time, datetime)", valueType)
	}
	if err != nil {
		return fmt.Errorf("failed to decrypt token: %w", err)
	}

	logger.Info("token decrypted", slog.String("type", valueType))

	if format == "json" {
		return writeJSON(writer, map[string]string{"value": value})
	}

	_, _ = fmt.Fprintf(writer, "Value: %s\n", value)
	return nil
}
