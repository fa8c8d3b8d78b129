package sealbridge

import (
	"fmt"

	"github.com/sealbridge/envelope-go/internal/exchange"
)

// KeyPair is an ECDH key pair over NIST P-256, the curve fixed for
// interoperability across all counterparty runtimes.
type KeyPair struct {
	// PublicKey is the canonical 65-byte uncompressed curve-point encoding,
	// suitable for sending to any counterparty generation.
	PublicKey []byte
	// PrivateKey is the raw private scalar. It must never leave the process
	// that generated it.
	PrivateKey []byte
	// PublicKeyB64 is the public key encoded as URL-safe base64.
	PublicKeyB64 string
}

// GenerateKeyPair creates a new P-256 key pair for key exchange.
func GenerateKeyPair() (*KeyPair, error) {
	kp, err := exchange.GenerateKeyPair()
	if err != nil {
		return nil, err
	}

	return &KeyPair{
		PublicKey:    kp.PublicKey,
		PrivateKey:   kp.PrivateKey,
		PublicKeyB64: kp.PublicKeyB64,
	}, nil
}

// PublicKeyPKIX returns the public key in the SubjectPublicKeyInfo encoding
// expected by previous-generation counterparties.
func (k *KeyPair) PublicKeyPKIX() ([]byte, error) {
	der, err := exchange.EncodePKIX(k.PublicKey)
	if err != nil {
		return nil, wrapError(err)
	}
	return der, nil
}

// DeriveSharedSecret computes the 32-byte shared secret between a local
// private key and a counterparty public key. The public key is accepted in
// either the compact uncompressed point encoding or the PKIX wrapper; the
// two strategies are tried in order and only a failure of both surfaces as
// [ErrInvalidPublicKey]. The derivation is commutative, and the result is
// directly usable as a key for [EncryptWithKey]. The caller owns the
// returned secret and should wipe it with [ZeroBytes] after last use.
func DeriveSharedSecret(privateKey, peerPublicKey []byte) ([]byte, error) {
	if len(privateKey) == 0 {
		return nil, fmt.Errorf("%w: private key", ErrInvalidArgument)
	}
	if len(peerPublicKey) == 0 {
		return nil, fmt.Errorf("%w: peer public key", ErrInvalidArgument)
	}

	secret, err := exchange.DeriveShared(privateKey, peerPublicKey)
	if err != nil {
		return nil, wrapError(err)
	}

	return secret, nil
}

// KEMKeyPair is an ML-KEM-768 key pair for counterparties on the
// post-quantum exchange track.
type KEMKeyPair struct {
	// PublicKey is the raw ML-KEM-768 public key bytes.
	PublicKey []byte
	// SecretKey is the raw ML-KEM-768 secret key bytes.
	SecretKey []byte
	// PublicKeyB64 is the public key encoded as URL-safe base64.
	PublicKeyB64 string
}

// GenerateKEMKeyPair creates a new ML-KEM-768 key pair.
func GenerateKEMKeyPair() (*KEMKeyPair, error) {
	kp, err := exchange.GenerateKEMKeyPair()
	if err != nil {
		return nil, err
	}

	return &KEMKeyPair{
		PublicKey:    kp.PublicKey,
		SecretKey:    kp.SecretKey,
		PublicKeyB64: kp.PublicKeyB64,
	}, nil
}

// Encapsulate derives a fresh 32-byte symmetric key against a counterparty
// KEM public key. The returned encapsulation is transmitted to the
// counterparty, who recovers the same key with [KEMKeyPair.Decapsulate];
// the key itself never travels.
func Encapsulate(peerPublicKey []byte) (sharedKey, encapsulated []byte, err error) {
	if len(peerPublicKey) == 0 {
		return nil, nil, fmt.Errorf("%w: peer public key", ErrInvalidArgument)
	}

	sharedKey, encapsulated, err = exchange.Encapsulate(peerPublicKey)
	if err != nil {
		return nil, nil, wrapError(err)
	}

	return sharedKey, encapsulated, nil
}

// Decapsulate recovers the 32-byte symmetric key from an encapsulation
// produced against this key pair's public key.
func (k *KEMKeyPair) Decapsulate(encapsulated []byte) ([]byte, error) {
	if len(encapsulated) == 0 {
		return nil, fmt.Errorf("%w: encapsulation", ErrInvalidArgument)
	}

	inner := &exchange.KEMKeyPair{
		PublicKey: k.PublicKey,
		SecretKey: k.SecretKey,
	}

	sharedKey, err := inner.Decapsulate(encapsulated)
	if err != nil {
		return nil, wrapError(err)
	}

	return sharedKey, nil
}
