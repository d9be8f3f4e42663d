/*
Package codec provides typed, authenticated field-level encryption.

The codec encrypts values of five semantic types (text, boolean, calendar
date, time of day, datetime) under a single 32-byte symmetric key, producing
printable tokens that fit in one text column. Each typed operation layers a
canonical ISO-8601 (or "True"/"False") serialization over a generic
authenticated text cipher, so decryption with the right key either returns
the exact original value or fails.

# Token Format

A token is unpadded URL-safe base64 of:

	version(1) || issued-at unix seconds, big-endian(8) || nonce(12) || ciphertext+tag

The version byte identifies the AEAD cipher (AES-256-GCM or
ChaCha20-Poly1305). The header is bound to the ciphertext as additional
authenticated data, so the embedded creation timestamp cannot be altered.
Every encryption draws a fresh random nonce; two tokens for equal plaintext
never compare equal.

# Error Model

Decryption failures of any kind (wrong key, tampering, truncation, malformed
encoding, algorithm mismatch) collapse into the single bare ErrAccessDenied.
Typed parse failures after a successful decrypt are a distinct
ErrTypeMismatch. Construction rejects malformed keys with ErrInvalidKey,
which callers must treat as fatal configuration errors.

# Basic Usage

Construct a codec once per process:

	c, err := codec.New(os.Getenv("ENCRYPTION_KEY"), codec.AESGCM)
	if err != nil {
	    log.Fatal(err)
	}

Encrypt and decrypt typed fields:

	token, err := c.EncryptDate(civil.Date{Year: 2024, Month: time.February, Day: 29})
	date, err := c.DecryptDate(token)

	token, err = c.EncryptBool(true)
	ok, err := c.DecryptBool(token)

A Codec is stateless aside from the held key and safe for concurrent use
from multiple goroutines.
*/
package codec
