package sealbridge

import (
	"fmt"

	"github.com/sealbridge/envelope-go/internal/crypto"
	"github.com/sealbridge/envelope-go/internal/envelope"
)

// EncryptWithKey encrypts plaintext under a raw 32-byte key and returns a
// keyed-format envelope. A fresh random nonce is generated for every call, so
// encrypting the same plaintext twice yields different envelopes.
func EncryptWithKey(plaintext, key []byte) (string, error) {
	if plaintext == nil {
		return "", fmt.Errorf("%w: plaintext", ErrInvalidArgument)
	}
	if len(key) == 0 {
		return "", fmt.Errorf("%w: key", ErrInvalidArgument)
	}

	nonce, err := crypto.GenerateNonce()
	if err != nil {
		return "", err
	}

	ciphertext, tag, err := crypto.Seal(plaintext, key, nonce)
	if err != nil {
		return "", wrapError(err)
	}

	return envelope.EncodeKeyed(nonce, ciphertext, tag), nil
}

// EncryptWithPassword encrypts plaintext under a key derived from the
// password with PBKDF2 and returns a password-format envelope. A random
// 16-byte salt is generated unless [WithSalt] supplies one; the salt travels
// inside the envelope so the receiver can re-derive the key. The iteration
// count (default 2000, see [WithIterations]) is not carried in the envelope
// and must be agreed with the receiver.
func EncryptWithPassword(plaintext []byte, password string, opts ...PasswordOption) (string, error) {
	if plaintext == nil {
		return "", fmt.Errorf("%w: plaintext", ErrInvalidArgument)
	}
	if password == "" {
		return "", fmt.Errorf("%w: password", ErrInvalidArgument)
	}

	cfg := newPasswordConfig(opts)

	salt := cfg.salt
	if salt == nil {
		var err error
		salt, err = crypto.GenerateSalt(crypto.DefaultSaltSize)
		if err != nil {
			return "", wrapError(err)
		}
	}

	key, err := crypto.DeriveKey(password, salt, cfg.iterations)
	if err != nil {
		return "", wrapError(err)
	}
	defer crypto.Zero(key)

	nonce, err := crypto.GenerateNonce()
	if err != nil {
		return "", err
	}

	ciphertext, tag, err := crypto.Seal(plaintext, key, nonce)
	if err != nil {
		return "", wrapError(err)
	}

	return envelope.EncodePassword(salt, nonce, ciphertext, tag), nil
}
