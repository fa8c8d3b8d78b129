package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// randReader is the random source used for nonce and salt generation.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

func reader() io.Reader {
	if randReader != nil {
		return randReader
	}
	return rand.Reader
}

// GenerateNonce returns a fresh 12-byte random nonce. A new nonce must be
// generated for every encryption; reusing a (key, nonce) pair with different
// plaintexts breaks AES-GCM completely.
func GenerateNonce() ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(reader(), nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return nonce, nil
}

// GenerateSalt returns a fresh random salt of the given length. The length
// must be within the [MinSaltSize, MaxSaltSize] range.
func GenerateSalt(length int) ([]byte, error) {
	if length < MinSaltSize || length > MaxSaltSize {
		return nil, fmt.Errorf("%w: got %d, want %d..%d", ErrInvalidSaltSize, length, MinSaltSize, MaxSaltSize)
	}

	salt := make([]byte, length)
	if _, err := io.ReadFull(reader(), salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}
