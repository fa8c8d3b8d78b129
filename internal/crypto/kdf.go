package crypto

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// DeriveKey derives a 32-byte symmetric key from a password and salt using
// PBKDF2-HMAC-SHA256. The derivation is deterministic: identical inputs
// always produce an identical key, which is what makes password-based
// decryption (and caller-side caching of the result) possible.
//
// Validation happens before any KDF work: iterations must be within
// [MinIterations, MaxIterations] and the salt length within
// [MinSaltSize, MaxSaltSize].
func DeriveKey(password string, salt []byte, iterations int) ([]byte, error) {
	if iterations < MinIterations || iterations > MaxIterations {
		return nil, fmt.Errorf("%w: got %d, want %d..%d", ErrInvalidIterations, iterations, MinIterations, MaxIterations)
	}

	if len(salt) < MinSaltSize || len(salt) > MaxSaltSize {
		return nil, fmt.Errorf("%w: got %d, want %d..%d", ErrInvalidSaltSize, len(salt), MinSaltSize, MaxSaltSize)
	}

	return pbkdf2.Key([]byte(password), salt, iterations, KeySize, sha256.New), nil
}
