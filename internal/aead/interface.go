// Package aead provides the authenticated encryption primitives behind the
// field codec. Implements AEAD ciphers (AES-256-GCM, ChaCha20-Poly1305) over
// a single 32-byte key.
package aead

// KeySize is the key size in bytes required by every supported cipher.
const KeySize = 32

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext and nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt decrypts ciphertext using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}
