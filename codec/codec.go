package codec

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/allisson/fieldcrypt/internal/aead"
	"github.com/allisson/fieldcrypt/internal/token"
)

// dateTimeLayout is the offset-less ISO-8601 form accepted by DecryptDateTime
// and interpreted as UTC. Fractional seconds are accepted on parse.
const dateTimeLayout = "2006-01-02T15:04:05"

// Codec implements Cipher over a single symmetric key.
//
// A Codec holds the key material for its whole lifetime and nothing else; it
// is stateless across calls and safe for concurrent use. Construct one per
// process at configuration load time.
type Codec struct {
	aead    aead.AEAD
	version byte
}

// New creates a Codec from a URL-safe base64 encoded 32-byte key and an
// algorithm.
//
// The key is decoded once here and the decoded copy is zeroed as soon as the
// underlying cipher holds its own key schedule. Padded and unpadded base64
// are both accepted.
//
// Returns ErrInvalidKey if the key is malformed or of the wrong length, and
// ErrUnsupportedAlgorithm for an unknown algorithm. Both are configuration
// errors: callers must treat them as fatal and refuse to start.
func New(encodedKey string, algorithm Algorithm) (*Codec, error) {
	key, err := decodeKey(encodedKey)
	if err != nil {
		return nil, err
	}
	defer aead.Zero(key)

	var (
		cipher  aead.AEAD
		version byte
	)
	switch algorithm {
	case AESGCM:
		cipher, err = aead.NewAESGCM(key)
		version = versionAESGCM
	case ChaCha20:
		cipher, err = aead.NewChaCha20Poly1305(key)
		version = versionChaCha20
	default:
		return nil, fmt.Errorf(
			"%w: %s (valid options: %s, %s)",
			ErrUnsupportedAlgorithm,
			algorithm,
			AESGCM,
			ChaCha20,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	return &Codec{aead: cipher, version: version}, nil
}

// decodeKey decodes a URL-safe base64 key, accepting optional padding, and
// requires exactly the AEAD key size.
func decodeKey(encodedKey string) ([]byte, error) {
	key, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(encodedKey, "="))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if len(key) != aead.KeySize {
		aead.Zero(key)
		return nil, fmt.Errorf("%w: must decode to exactly %d bytes", ErrInvalidKey, aead.KeySize)
	}
	return key, nil
}

// EncryptText encrypts arbitrary text into a self-contained token.
//
// A fresh random nonce is drawn for every call, so encrypting the same text
// twice produces different tokens. The token header (algorithm version and
// creation timestamp) is authenticated together with the ciphertext. An error
// here means the process could not obtain randomness and must not be ignored.
func (c *Codec) EncryptText(value string) (string, error) {
	tok := token.Token{Version: c.version, IssuedAt: time.Now().UTC()}

	ciphertext, nonce, err := c.aead.Encrypt([]byte(value), tok.Header())
	if err != nil {
		return "", fmt.Errorf("failed to encrypt: %w", err)
	}

	tok.Nonce = nonce
	tok.Ciphertext = ciphertext
	return tok.String(), nil
}

// DecryptText authenticates a token and returns the original text.
//
// Every failure mode returns the bare ErrAccessDenied: malformed base64,
// truncated payload, algorithm version mismatch, wrong key, and tampered
// ciphertext are indistinguishable to the caller.
func (c *Codec) DecryptText(content string) (string, error) {
	_, plaintext, err := c.open(content)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// EncryptBool encrypts a boolean as its canonical "True"/"False" text.
func (c *Codec) EncryptBool(value bool) (string, error) {
	if value {
		return c.EncryptText(boolTrue)
	}
	return c.EncryptText(boolFalse)
}

// DecryptBool decrypts a boolean token.
//
// The decode is permissive: any plaintext other than the exact string "True"
// decodes to false without an error, including text that was never produced
// by EncryptBool. Callers that need strict decoding should use DecryptText
// and compare against the canonical forms themselves.
func (c *Codec) DecryptBool(content string) (bool, error) {
	plaintext, err := c.DecryptText(content)
	if err != nil {
		return false, err
	}
	return plaintext == boolTrue, nil
}

// EncryptDate encrypts a calendar date in its ISO-8601 form (YYYY-MM-DD).
//
// Returns ErrTypeMismatch for structurally invalid dates, which have no
// canonical form and therefore could not round-trip.
func (c *Codec) EncryptDate(value civil.Date) (string, error) {
	if !value.IsValid() {
		return "", fmt.Errorf("%w: invalid date %q", ErrTypeMismatch, value.String())
	}
	return c.EncryptText(value.String())
}

// DecryptDate decrypts a calendar date token.
//
// Returns ErrAccessDenied if the token cannot be authenticated, and
// ErrTypeMismatch if the authenticated plaintext is not an ISO-8601 date.
func (c *Codec) DecryptDate(content string) (civil.Date, error) {
	plaintext, err := c.DecryptText(content)
	if err != nil {
		return civil.Date{}, err
	}

	date, err := civil.ParseDate(plaintext)
	if err != nil {
		return civil.Date{}, fmt.Errorf("%w: %v", ErrTypeMismatch, err)
	}
	return date, nil
}

// EncryptTime encrypts a time of day in its ISO-8601 form (HH:MM:SS, with
// nanoseconds when the value carries them).
//
// Returns ErrTypeMismatch for structurally invalid times.
func (c *Codec) EncryptTime(value civil.Time) (string, error) {
	if !value.IsValid() {
		return "", fmt.Errorf("%w: invalid time %q", ErrTypeMismatch, value.String())
	}
	return c.EncryptText(value.String())
}

// DecryptTime decrypts a time-of-day token.
//
// Returns ErrAccessDenied if the token cannot be authenticated, and
// ErrTypeMismatch if the authenticated plaintext is not an ISO-8601 time of
// day. Offset-bearing times are not representable as a civil.Time and fail
// the same way.
func (c *Codec) DecryptTime(content string) (civil.Time, error) {
	plaintext, err := c.DecryptText(content)
	if err != nil {
		return civil.Time{}, err
	}

	value, err := civil.ParseTime(plaintext)
	if err != nil {
		return civil.Time{}, fmt.Errorf("%w: %v", ErrTypeMismatch, err)
	}
	return value, nil
}

// EncryptDateTime encrypts an instant in RFC 3339 form at nanosecond
// precision. The value's UTC offset is preserved; its zone name is not.
//
// Returns ErrTypeMismatch for years outside [0, 9999], which cannot be
// represented in the canonical form.
func (c *Codec) EncryptDateTime(value time.Time) (string, error) {
	if year := value.Year(); year < 0 || year > 9999 {
		return "", fmt.Errorf("%w: year %d is outside the canonical range", ErrTypeMismatch, year)
	}
	return c.EncryptText(value.Format(time.RFC3339Nano))
}

// DecryptDateTime decrypts a datetime token.
//
// The plaintext must be RFC 3339, or an offset-less ISO-8601 datetime which
// is interpreted as UTC. Returns ErrAccessDenied if the token cannot be
// authenticated, and ErrTypeMismatch if the authenticated plaintext matches
// neither form.
func (c *Codec) DecryptDateTime(content string) (time.Time, error) {
	plaintext, err := c.DecryptText(content)
	if err != nil {
		return time.Time{}, err
	}

	if value, err := time.Parse(time.RFC3339, plaintext); err == nil {
		return value, nil
	}

	value, err := time.ParseInLocation(dateTimeLayout, plaintext, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrTypeMismatch, err)
	}
	return value, nil
}

// TokenIssuedAt authenticates a token and returns its embedded creation time
// in UTC, at second precision. The decrypted plaintext is discarded.
//
// Returns ErrAccessDenied under exactly the same conditions as DecryptText.
func (c *Codec) TokenIssuedAt(content string) (time.Time, error) {
	tok, plaintext, err := c.open(content)
	if err != nil {
		return time.Time{}, err
	}
	aead.Zero(plaintext)
	return tok.IssuedAt, nil
}

// open parses and authenticates a token. Every failure collapses into the
// bare ErrAccessDenied with no wrapped cause, so the error value leaks
// nothing about which step failed.
func (c *Codec) open(content string) (token.Token, []byte, error) {
	tok, err := token.NewToken(content)
	if err != nil {
		return token.Token{}, nil, ErrAccessDenied
	}

	if tok.Version != c.version {
		return token.Token{}, nil, ErrAccessDenied
	}

	plaintext, err := c.aead.Decrypt(tok.Ciphertext, tok.Nonce, tok.Header())
	if err != nil {
		return token.Token{}, nil, ErrAccessDenied
	}

	return tok, plaintext, nil
}
