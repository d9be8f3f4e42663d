package codec

import (
	"fmt"
)

// Algorithm represents the cryptographic algorithm used for field encryption.
//
// All supported algorithms provide Authenticated Encryption with Associated Data (AEAD),
// ensuring both confidentiality and authenticity of encrypted fields. AEAD prevents both
// unauthorized reading and tampering with stored ciphertext.
//
// Algorithm selection guidelines:
//   - Use AESGCM on modern CPUs with AES-NI hardware acceleration
//   - Use ChaCha20 on mobile devices or systems without AES-NI
//   - Both provide equivalent 256-bit security when used correctly
type Algorithm string

const (
	// AESGCM represents the AES-256-GCM authenticated encryption algorithm.
	//
	// AES-GCM (Advanced Encryption Standard in Galois/Counter Mode) combines
	// AES encryption with GMAC authentication. It uses a 256-bit key and
	// provides excellent performance on hardware with AES-NI acceleration.
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 represents the ChaCha20-Poly1305 authenticated encryption algorithm.
	//
	// ChaCha20-Poly1305 combines the ChaCha20 stream cipher with the Poly1305 MAC
	// for authentication. It's designed for high performance on platforms without
	// AES hardware acceleration and is resistant to timing attacks.
	ChaCha20 Algorithm = "chacha20-poly1305"
)

// Token version bytes, one per algorithm. A codec only accepts tokens carrying
// the version byte of its own configured algorithm.
const (
	versionAESGCM   byte = 0x01
	versionChaCha20 byte = 0x02
)

// Canonical boolean plaintexts. Decoding compares against the true form only,
// so any other decrypted text maps to false.
const (
	boolTrue  = "True"
	boolFalse = "False"
)

// ParseAlgorithm converts an algorithm string to the Algorithm type.
// Returns ErrUnsupportedAlgorithm if the string names no supported algorithm.
func ParseAlgorithm(value string) (Algorithm, error) {
	switch value {
	case string(AESGCM):
		return AESGCM, nil
	case string(ChaCha20):
		return ChaCha20, nil
	default:
		return "", fmt.Errorf(
			"%w: %s (valid options: %s, %s)",
			ErrUnsupportedAlgorithm,
			value,
			AESGCM,
			ChaCha20,
		)
	}
}
