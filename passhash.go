package sealbridge

import (
	"fmt"

	"github.com/allisson/go-pwdhash"
)

// passwordHasher is the Argon2id hasher behind HashPassword and
// VerifyPassword. The interactive policy balances login latency against
// brute-force cost.
var passwordHasher = mustHasher()

func mustHasher() *pwdhash.PasswordHasher {
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		// This should never happen with a valid policy
		panic(err)
	}
	return hasher
}

// HashPassword hashes a login credential with Argon2id and returns the
// self-describing encoded string. This is the one-way path for credential
// storage; it is unrelated to the reversible envelope encryption and the two
// must never be mixed.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("%w: password", ErrInvalidArgument)
	}
	return passwordHasher.Hash([]byte(password))
}

// VerifyPassword performs a constant-time check of a password against an
// encoded hash produced by [HashPassword]. Malformed hashes verify as false
// rather than erroring, so callers cannot distinguish a bad password from a
// corrupted hash.
func VerifyPassword(password, encodedHash string) bool {
	ok, err := passwordHasher.Verify([]byte(password), encodedHash)
	if err != nil {
		return false
	}
	return ok
}
