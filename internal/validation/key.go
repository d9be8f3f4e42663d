// Package validation provides custom validation rules for the application.
package validation

import (
	"encoding/base64"
	"fmt"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/allisson/fieldcrypt/internal/aead"
)

// Base64URLKey validates that a string is a URL-safe base64 encoded key of
// exactly the AEAD key size. Padded and unpadded forms are both accepted.
var Base64URLKey = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_base64url_key_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	key, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
	if err != nil {
		return validation.NewError("validation_base64url_key", "must be valid URL-safe base64-encoded data")
	}
	defer aead.Zero(key)
	if len(key) != aead.KeySize {
		return validation.NewError(
			"validation_base64url_key_size",
			fmt.Sprintf("must decode to exactly %d bytes", aead.KeySize),
		)
	}
	return nil
})
