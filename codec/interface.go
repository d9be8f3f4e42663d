package codec

import (
	"time"

	"cloud.google.com/go/civil"
)

// Cipher defines the typed field-encryption surface.
//
// Every encrypt operation returns a printable, self-contained token safe to
// store in a text column. Every decrypt operation authenticates the token
// first and may return ErrAccessDenied; the typed variants then parse the
// recovered plaintext and may return ErrTypeMismatch. Implementations must be
// safe for concurrent use.
type Cipher interface {
	// EncryptText encrypts arbitrary text, which may be empty.
	EncryptText(value string) (string, error)

	// DecryptText authenticates a token and returns the original text.
	DecryptText(content string) (string, error)

	// EncryptBool encrypts a boolean as its canonical "True"/"False" text.
	EncryptBool(value bool) (string, error)

	// DecryptBool decrypts a boolean token. Any plaintext other than the exact
	// string "True" decodes to false without an error.
	DecryptBool(content string) (bool, error)

	// EncryptDate encrypts a calendar date in ISO-8601 form (YYYY-MM-DD).
	EncryptDate(value civil.Date) (string, error)

	// DecryptDate decrypts a calendar date token.
	DecryptDate(content string) (civil.Date, error)

	// EncryptTime encrypts a time of day in ISO-8601 form, with fractional
	// seconds when the value carries them.
	EncryptTime(value civil.Time) (string, error)

	// DecryptTime decrypts a time-of-day token.
	DecryptTime(content string) (civil.Time, error)

	// EncryptDateTime encrypts an instant in RFC 3339 form, preserving the
	// UTC offset of the value.
	EncryptDateTime(value time.Time) (string, error)

	// DecryptDateTime decrypts a datetime token. Offset-less ISO-8601
	// plaintexts are interpreted as UTC.
	DecryptDateTime(content string) (time.Time, error)

	// TokenIssuedAt authenticates a token and returns its embedded creation
	// time, at second precision, without exposing the plaintext.
	TokenIssuedAt(content string) (time.Time, error)
}
