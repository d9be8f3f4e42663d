package token

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"time"
)

const (
	// headerSize is one version byte plus an 8-byte big-endian unix timestamp.
	headerSize = 9
	// nonceSize is the AEAD nonce size shared by all supported ciphers.
	nonceSize = 12
	// tagSize is the AEAD authentication tag appended to the ciphertext.
	tagSize = 16

	// minRawSize is the smallest structurally valid token payload: header,
	// nonce, and the ciphertext of an empty plaintext (tag only).
	minRawSize = headerSize + nonceSize + tagSize
)

// Token represents one field ciphertext token.
//
// The binary layout is: version(1) || issued-at unix seconds, big-endian(8) ||
// nonce(12) || ciphertext+tag. The whole payload is carried as unpadded
// URL-safe base64, so a token is printable and safe to store in a text column.
// The version byte identifies the AEAD cipher that produced the ciphertext.
//
// The version and timestamp header is additionally authenticated (AAD) by the
// cipher, so neither can be altered without failing authentication.
type Token struct {
	Version    byte
	IssuedAt   time.Time
	Nonce      []byte
	Ciphertext []byte
}

// NewToken parses a Token from its string representation.
//
// Returns:
//   - ErrInvalidTokenBase64 if the content is not URL-safe base64
//   - ErrInvalidTokenFormat if the decoded payload is too short to hold a
//     header, a nonce, and an authentication tag
//
// A successfully parsed token is only structurally valid; whether it is
// authentic is decided by the cipher when the ciphertext is opened against
// Header().
func NewToken(content string) (Token, error) {
	raw, err := base64.RawURLEncoding.DecodeString(content)
	if err != nil {
		return Token{}, fmt.Errorf("%w: %v", ErrInvalidTokenBase64, err)
	}

	if len(raw) < minRawSize {
		return Token{}, fmt.Errorf("%w: payload too short", ErrInvalidTokenFormat)
	}

	seconds := binary.BigEndian.Uint64(raw[1:headerSize])

	return Token{
		Version:    raw[0],
		IssuedAt:   time.Unix(int64(seconds), 0).UTC(),
		Nonce:      raw[headerSize : headerSize+nonceSize],
		Ciphertext: raw[headerSize+nonceSize:],
	}, nil
}

// Header returns the authenticated header bytes: the version byte followed by
// the issued-at unix timestamp in big-endian order. The same bytes must be
// passed as AAD when sealing and when opening the ciphertext.
func (t Token) Header() []byte {
	header := make([]byte, 0, headerSize)
	header = append(header, t.Version)
	header = binary.BigEndian.AppendUint64(header, uint64(t.IssuedAt.Unix()))
	return header
}

// String serializes the Token to its URL-safe base64 representation.
//
// This method provides round-trip serialization with NewToken, at second
// precision for IssuedAt.
func (t Token) String() string {
	raw := make([]byte, 0, headerSize+len(t.Nonce)+len(t.Ciphertext))
	raw = append(raw, t.Header()...)
	raw = append(raw, t.Nonce...)
	raw = append(raw, t.Ciphertext...)
	return base64.RawURLEncoding.EncodeToString(raw)
}
