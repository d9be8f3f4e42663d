// Package keyprovider supplies the field codec's encoded encryption key.
//
// A Provider abstracts where the key material lives: directly in configuration
// (Static) or wrapped by a KMS master key (KMS). Providers return the key in
// the exact format codec.New consumes, a URL-safe base64 encoded 32-byte key.
package keyprovider

import (
	"context"

	"github.com/allisson/fieldcrypt/internal/errors"
)

// Provider supplies the active encryption key.
type Provider interface {
	// Key returns the URL-safe base64 encoded 32-byte encryption key.
	// Implementations backed by remote systems perform I/O here.
	Key(ctx context.Context) (string, error)
}

// Static supplies a key configured directly, typically from the environment.
type Static struct {
	encodedKey string
}

// NewStatic creates a Static provider holding the given encoded key.
func NewStatic(encodedKey string) *Static {
	return &Static{encodedKey: encodedKey}
}

// Key returns the configured key.
func (s *Static) Key(_ context.Context) (string, error) {
	if s.encodedKey == "" {
		return "", errors.Wrap(errors.ErrInvalidInput, "encryption key is not configured")
	}
	return s.encodedKey, nil
}
