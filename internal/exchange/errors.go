package exchange

import "errors"

var (
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
