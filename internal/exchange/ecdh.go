package exchange

import (
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"fmt"

	"github.com/sealbridge/envelope-go/internal/crypto"
)

// curve is fixed to NIST P-256 for interoperability with every counterparty
// runtime. crypto/ecdh provides a constant-time implementation.
var curve = ecdh.P256()

// KeyPair is an ECDH key pair over P-256.
type KeyPair struct {
	// PublicKey is the canonical 65-byte uncompressed curve-point encoding.
	PublicKey []byte
	// PrivateKey is the raw private scalar. It never leaves the process that
	// generated it.
	PrivateKey []byte
	// PublicKeyB64 is the public key encoded as URL-safe base64.
	PublicKeyB64 string
}

// GenerateKeyPair creates a new P-256 key pair.
func GenerateKeyPair() (*KeyPair, error) {
	priv, err := curve.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate key pair: %w", err)
	}

	pubBytes := priv.PublicKey().Bytes()

	return &KeyPair{
		PublicKey:    pubBytes,
		PrivateKey:   priv.Bytes(),
		PublicKeyB64: crypto.ToBase64URL(pubBytes),
	}, nil
}

// publicKeyParsers are the import strategies for counterparty public keys,
// tried in order: the compact uncompressed curve point used by current
// runtimes, then the SubjectPublicKeyInfo wrapper exported by the previous
// generation. A parse failure falls through silently to the next strategy.
var publicKeyParsers = []func([]byte) (*ecdh.PublicKey, error){
	parseUncompressedPoint,
	parsePKIX,
}

func parseUncompressedPoint(b []byte) (*ecdh.PublicKey, error) {
	return curve.NewPublicKey(b)
}

func parsePKIX(b []byte) (*ecdh.PublicKey, error) {
	parsed, err := x509.ParsePKIXPublicKey(b)
	if err != nil {
		return nil, err
	}

	switch pub := parsed.(type) {
	case *ecdsa.PublicKey:
		return pub.ECDH()
	case *ecdh.PublicKey:
		if pub.Curve() != curve {
			return nil, fmt.Errorf("unexpected curve")
		}
		return pub, nil
	default:
		return nil, fmt.Errorf("unexpected key type %T", parsed)
	}
}

// parsePublicKey tries each import strategy in order.
func parsePublicKey(b []byte) (*ecdh.PublicKey, error) {
	for _, parse := range publicKeyParsers {
		if pub, err := parse(b); err == nil {
			return pub, nil
		}
	}
	return nil, fmt.Errorf("%w: not an uncompressed point or PKIX key", ErrInvalidPublicKey)
}

// DeriveShared computes the shared secret between a local private key and a
// counterparty public key in either supported encoding. The raw ECDH output
// is hashed with SHA-256 so the result is always exactly 32 bytes and
// directly usable as a symmetric key.
func DeriveShared(privateKey, peerPublicKey []byte) ([]byte, error) {
	priv, err := curve.NewPrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}

	pub, err := parsePublicKey(peerPublicKey)
	if err != nil {
		return nil, err
	}

	secret, err := priv.ECDH(pub)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}

	sum := sha256.Sum256(secret)
	crypto.Zero(secret)

	return sum[:], nil
}

// EncodePKIX wraps a canonical uncompressed public key in the
// SubjectPublicKeyInfo encoding used by the previous runtime generation.
func EncodePKIX(publicKey []byte) ([]byte, error) {
	pub, err := curve.NewPublicKey(publicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}

	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, fmt.Errorf("marshal public key: %w", err)
	}

	return der, nil
}
