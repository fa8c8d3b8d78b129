package sealbridge

import (
	"errors"
	"fmt"

	"github.com/sealbridge/envelope-go/internal/crypto"
	"github.com/sealbridge/envelope-go/internal/envelope"
	"github.com/sealbridge/envelope-go/internal/exchange"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidArgument is returned when a required argument is nil or empty.
	// Arguments are validated before any cryptographic work begins.
	ErrInvalidArgument = errors.New("required argument is missing")

	// ErrInvalidKey is returned when a symmetric key is not exactly 32 bytes.
	ErrInvalidKey = errors.New("invalid key length")

	// ErrInvalidSalt is returned when a salt is outside the 8 to 64 byte range.
	ErrInvalidSalt = errors.New("invalid salt length")

	// ErrInvalidIterations is returned when an iteration count is outside the
	// 1000 to 100000 range.
	ErrInvalidIterations = errors.New("invalid iteration count")

	// ErrMalformedEnvelope is returned when an envelope does not match either
	// wire format.
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// ErrAuthenticationFailed is returned when decryption fails integrity
	// verification. A wrong key, a wrong password, a wrong iteration count and
	// tampered ciphertext are deliberately indistinguishable.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrInvalidPublicKey is returned when a counterparty public key cannot be
	// parsed in any supported encoding.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidPrivateKey is returned when a private key cannot be
	// reconstructed from its raw bytes.
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrInvalidEncapsulation is returned when a KEM encapsulation has the
	// wrong size.
	ErrInvalidEncapsulation = errors.New("invalid encapsulation size")
)

// EnvelopeError reports a malformed envelope together with the format that
// was being decoded.
type EnvelopeError struct {
	Format string // "keyed" or "password"
	Err    error
}

func (e *EnvelopeError) Error() string {
	return fmt.Sprintf("decode %s envelope: %v", e.Format, e.Err)
}

// Unwrap returns the underlying error.
func (e *EnvelopeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *EnvelopeError) Is(target error) bool {
	return target == ErrMalformedEnvelope
}

// wrapError converts internal package errors to public sentinel errors so
// that errors.Is() checks work against the exported taxonomy.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, crypto.ErrInvalidKeySize):
		return fmt.Errorf("%w: %v", ErrInvalidKey, err)
	case errors.Is(err, crypto.ErrInvalidSaltSize):
		return fmt.Errorf("%w: %v", ErrInvalidSalt, err)
	case errors.Is(err, crypto.ErrInvalidIterations):
		return fmt.Errorf("%w: %v", ErrInvalidIterations, err)
	case errors.Is(err, crypto.ErrAuthenticationFailed),
		errors.Is(err, crypto.ErrInvalidNonceSize),
		errors.Is(err, crypto.ErrTooShort):
		// Anything wrong with the authenticated portion surfaces uniformly.
		return ErrAuthenticationFailed
	case errors.Is(err, envelope.ErrMalformed):
		return fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	case errors.Is(err, exchange.ErrInvalidPublicKey):
		return fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	case errors.Is(err, exchange.ErrInvalidEncapsulation):
		return fmt.Errorf("%w: %v", ErrInvalidEncapsulation, err)
	case errors.Is(err, exchange.ErrInvalidPrivateKey):
		return fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}

	return err
}
