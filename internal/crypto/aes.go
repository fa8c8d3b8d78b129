package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// newGCM builds an AES-256-GCM AEAD for the given key.
func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), KeySize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return aead, nil
}

// Seal encrypts plaintext using AES-256-GCM and returns the ciphertext and
// the 16-byte authentication tag separately. The ciphertext has the same
// length as the plaintext.
func Seal(plaintext, key, nonce []byte) (ciphertext, tag []byte, err error) {
	if len(nonce) != NonceSize {
		return nil, nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), NonceSize)
	}

	aead, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	// Seal appends the tag to the ciphertext; split it back out so callers
	// can frame the two independently.
	sealed := aead.Seal(nil, nonce, plaintext, nil)
	return sealed[:len(sealed)-TagSize], sealed[len(sealed)-TagSize:], nil
}

// Open verifies the authentication tag and decrypts the ciphertext using
// AES-256-GCM. The tag is verified before any plaintext is released; on
// mismatch the uniform ErrAuthenticationFailed is returned with no further
// detail.
func Open(ciphertext, tag, key, nonce []byte) ([]byte, error) {
	if len(tag) != TagSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrTooShort, len(tag), TagSize)
	}

	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), NonceSize)
	}

	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	return plaintext, nil
}
