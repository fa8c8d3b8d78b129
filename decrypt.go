package sealbridge

import (
	"fmt"

	"github.com/sealbridge/envelope-go/internal/crypto"
	"github.com/sealbridge/envelope-go/internal/envelope"
)

// DecryptWithKey decodes a keyed-format envelope and decrypts it under the
// given raw 32-byte key. The authentication tag is verified before any
// plaintext is returned; on any integrity violation the result is
// [ErrAuthenticationFailed] with no further detail.
func DecryptWithKey(env string, key []byte) ([]byte, error) {
	if env == "" {
		return nil, fmt.Errorf("%w: envelope", ErrInvalidArgument)
	}
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: key", ErrInvalidArgument)
	}

	nonce, ciphertext, tag, err := envelope.DecodeKeyed(env)
	if err != nil {
		return nil, &EnvelopeError{Format: "keyed", Err: err}
	}

	plaintext, err := crypto.Open(ciphertext, tag, key, nonce)
	if err != nil {
		return nil, wrapError(err)
	}

	return plaintext, nil
}

// DecryptWithPassword decodes a password-format envelope, re-derives the key
// from the password and the envelope's salt, and decrypts. The iteration
// count must match the one used for encryption (default 2000, see
// [WithIterations]); a mismatch is indistinguishable from tampering and
// fails with [ErrAuthenticationFailed].
func DecryptWithPassword(env string, password string, opts ...PasswordOption) ([]byte, error) {
	if env == "" {
		return nil, fmt.Errorf("%w: envelope", ErrInvalidArgument)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password", ErrInvalidArgument)
	}

	cfg := newPasswordConfig(opts)

	salt, nonce, ciphertext, tag, err := envelope.DecodePassword(env)
	if err != nil {
		return nil, &EnvelopeError{Format: "password", Err: err}
	}

	key, err := crypto.DeriveKey(password, salt, cfg.iterations)
	if err != nil {
		return nil, wrapError(err)
	}
	defer crypto.Zero(key)

	plaintext, err := crypto.Open(ciphertext, tag, key, nonce)
	if err != nil {
		return nil, wrapError(err)
	}

	return plaintext, nil
}
