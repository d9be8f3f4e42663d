package keyprovider

import (
	"context"
	"encoding/base64"
	"fmt"

	"gocloud.dev/secrets"

	"github.com/allisson/fieldcrypt/internal/aead"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// KMS supplies a key that is stored wrapped by a KMS master key.
//
// The wrapped key is a standard base64 encoded ciphertext produced by the KMS
// master key identified by the key URI. Key calls unwrap it through the KMS
// and re-encode it in the codec key format; the raw key bytes are zeroed
// before returning.
type KMS struct {
	keeper     *secrets.Keeper
	wrappedKey string
}

// NewKMS opens a keeper for the master key URI and returns a KMS provider for
// the given wrapped key.
//
// The URI scheme selects the driver: gcpkms://, awskms://, azurekeyvault://,
// hashivault:// and base64key:// are supported. Callers own the provider and
// must Close it when done.
func NewKMS(ctx context.Context, keyURI, wrappedKey string) (*KMS, error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	return &KMS{keeper: keeper, wrappedKey: wrappedKey}, nil
}

// Key unwraps the encryption key through the KMS and returns it in the codec
// key format.
func (k *KMS) Key(ctx context.Context) (string, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(k.wrappedKey)
	if err != nil {
		return "", fmt.Errorf("failed to decode wrapped key: %w", err)
	}

	key, err := k.keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return "", fmt.Errorf("failed to unwrap encryption key: %w", err)
	}
	defer aead.Zero(key)

	if len(key) != aead.KeySize {
		return "", fmt.Errorf("unwrapped key must be %d bytes, got %d", aead.KeySize, len(key))
	}

	return base64.RawURLEncoding.EncodeToString(key), nil
}

// Close releases the underlying keeper.
func (k *KMS) Close() error {
	return k.keeper.Close()
}

// WrapKey encrypts raw key material with the KMS master key at keyURI and
// returns the ciphertext as standard base64, the format NewKMS expects as its
// wrapped key.
func WrapKey(ctx context.Context, keyURI string, key []byte) (string, error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return "", fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	defer func() { _ = keeper.Close() }()

	ciphertext, err := keeper.Encrypt(ctx, key)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt key with KMS: %w", err)
	}

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}
