// Package token owns the wire format of field ciphertext tokens.
package token

import (
	"github.com/allisson/fieldcrypt/internal/errors"
)

// Token wire format error definitions.
//
// These errors describe structural decoding failures. Callers that guard
// against decryption oracles must collapse them into a single opaque error
// before surfacing anything to their own callers.
var (
	// ErrInvalidTokenBase64 indicates the token is not valid URL-safe base64.
	ErrInvalidTokenBase64 = errors.Wrap(errors.ErrInvalidInput, "invalid token base64")

	// ErrInvalidTokenFormat indicates the decoded token is structurally invalid.
	ErrInvalidTokenFormat = errors.Wrap(errors.ErrInvalidInput, "invalid token format")
)
