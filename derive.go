package sealbridge

import (
	"fmt"

	"github.com/sealbridge/envelope-go/internal/crypto"
)

// DeriveKey derives a 32-byte symmetric key from a password using
// PBKDF2-HMAC-SHA256. The derivation is deterministic, so callers that pay
// the iteration cost once may hold on to the result across many
// [EncryptWithKey]/[DecryptWithKey] calls. The returned key is owned by the
// caller, who is responsible for wiping it with [ZeroBytes] after last use.
//
// The salt must be 8 to 64 bytes and iterations 1000 to 100000; violations
// fail before any derivation work is performed.
func DeriveKey(password string, salt []byte, iterations int) ([]byte, error) {
	if password == "" {
		return nil, fmt.Errorf("%w: password", ErrInvalidArgument)
	}
	if salt == nil {
		return nil, fmt.Errorf("%w: salt", ErrInvalidArgument)
	}

	key, err := crypto.DeriveKey(password, salt, iterations)
	if err != nil {
		return nil, wrapError(err)
	}

	return key, nil
}

// GenerateSalt returns a fresh random salt of the given length (8 to 64
// bytes) for use with [DeriveKey] or [WithSalt].
func GenerateSalt(length int) ([]byte, error) {
	salt, err := crypto.GenerateSalt(length)
	if err != nil {
		return nil, wrapError(err)
	}
	return salt, nil
}

// ZeroBytes overwrites a byte slice with zeros. Use it to dispose of keys
// returned by [DeriveKey] or [DeriveSharedSecret] once they are no longer
// needed. Safe to call on nil slices.
func ZeroBytes(b []byte) {
	crypto.Zero(b)
}
