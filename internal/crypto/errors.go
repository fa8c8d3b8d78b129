package crypto

import "errors"

var (
	// ErrInvalidKeySize is returned when the AES key is not exactly 32 bytes.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce is not exactly 12 bytes.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrInvalidSaltSize is returned when a salt is outside the [8, 64] byte range.
	ErrInvalidSaltSize = errors.New("invalid salt size")

	// ErrInvalidIterations is returned when a PBKDF2 iteration count is outside
	// the [1000, 100000] range.
	ErrInvalidIterations = errors.New("invalid iteration count")

	// ErrAuthenticationFailed is returned when tag verification fails during
	// decryption. The cause is deliberately not disclosed: a wrong key, a wrong
	// password, a wrong iteration count and tampered ciphertext are all
	// indistinguishable by design.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrTooShort is returned when an input is shorter than the fixed 16-byte
	// authentication tag.
	ErrTooShort = errors.New("input shorter than authentication tag")
)
