package codec

import (
	"github.com/allisson/fieldcrypt/internal/errors"
)

// Field codec error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors.
// Classify failures with errors.Is; never match on message text.
var (
	// ErrAccessDenied indicates a token could not be authenticated and decrypted.
	//
	// This error can occur due to:
	//   - Wrong decryption key used
	//   - Ciphertext has been tampered with (authentication failure)
	//   - Truncated or otherwise malformed token
	//   - Token produced by a codec configured with a different algorithm
	//
	// For security reasons, the specific cause is not disclosed to prevent
	// information leakage that could aid attackers. The same bare error value
	// is returned for every failure mode.
	ErrAccessDenied = errors.Wrap(errors.ErrForbidden, "access denied")

	// ErrTypeMismatch indicates a plaintext value does not match the canonical
	// textual form of the requested type.
	//
	// Returned by typed decrypt operations after a successful authenticated
	// decrypt, when the recovered text cannot be parsed as the requested type
	// (usually because the token was produced by a different typed encrypt).
	// Also returned by typed encrypt operations handed values that have no
	// canonical representation, such as an invalid civil.Date.
	ErrTypeMismatch = errors.Wrap(errors.ErrInvalidInput, "value does not match the expected format")

	// ErrInvalidKey indicates the encryption key is malformed.
	//
	// The key must be URL-safe base64 (padded or unpadded) decoding to exactly
	// 32 bytes. This is a configuration error: an application must not start
	// serving with a misconfigured key, so callers should treat it as fatal
	// rather than catch and retry.
	ErrInvalidKey = errors.Wrap(errors.ErrInvalidInput, "invalid encryption key")

	// ErrUnsupportedAlgorithm indicates the requested encryption algorithm is not supported.
	//
	// Supported algorithms: AESGCM (AES-256-GCM), ChaCha20 (ChaCha20-Poly1305)
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")
)
