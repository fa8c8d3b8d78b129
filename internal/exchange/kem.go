package exchange

import (
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/cloudflare/circl/kem/mlkem/mlkem768"
	"golang.org/x/crypto/hkdf"

	"github.com/sealbridge/envelope-go/internal/crypto"
)

const (
	// KEMPublicKeySize is the size of an ML-KEM-768 public key in bytes.
	KEMPublicKeySize = 1184
	// KEMSecretKeySize is the size of an ML-KEM-768 secret key in bytes.
	KEMSecretKeySize = 2400
	// KEMEncapsulationSize is the size of an ML-KEM-768 ciphertext in bytes.
	KEMEncapsulationSize = 1088
	// KEMSharedKeySize is the size of the shared secret from ML-KEM-768 in bytes.
	KEMSharedKeySize = 32

	// kemContext is the HKDF domain-separation context for keys derived from
	// KEM shared secrets.
	kemContext = "sealbridge:kem:v1"
)

// KEMKeyPair is an ML-KEM-768 key pair for the post-quantum exchange track.
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
	pub, priv, err := mlkem768.GenerateKeyPair(nil)
	if err != nil {
		return nil, fmt.Errorf("generate KEM key pair: %w", err)
	}

	// MarshalBinary never fails for valid keys from GenerateKeyPair
	pubBytes, _ := pub.MarshalBinary()
	privBytes, _ := priv.MarshalBinary()

	return &KEMKeyPair{
		PublicKey:    pubBytes,
		SecretKey:    privBytes,
		PublicKeyB64: crypto.ToBase64URL(pubBytes),
	}, nil
}

// Encapsulate derives a fresh 32-byte symmetric key against the counterparty
// public key and returns it together with the encapsulation to transmit. Only
// the holder of the matching secret key can recover the same symmetric key.
func Encapsulate(peerPublicKey []byte) (sharedKey, encapsulated []byte, err error) {
	if len(peerPublicKey) != KEMPublicKeySize {
		return nil, nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidPublicKey, len(peerPublicKey), KEMPublicKeySize)
	}

	// Public key Unpack never fails for correctly-sized bytes
	var pub mlkem768.PublicKey
	pub.Unpack(peerPublicKey)

	encapsulated = make([]byte, KEMEncapsulationSize)
	secret := make([]byte, KEMSharedKeySize)
	pub.EncapsulateTo(encapsulated, secret, nil)

	sharedKey, err = deriveKEMKey(secret, encapsulated)
	crypto.Zero(secret)
	if err != nil {
		return nil, nil, err
	}

	return sharedKey, encapsulated, nil
}

// Decapsulate recovers the 32-byte symmetric key from an encapsulation
// produced against this key pair's public key.
func (k *KEMKeyPair) Decapsulate(encapsulated []byte) ([]byte, error) {
	if len(k.SecretKey) != KEMSecretKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidPrivateKey, len(k.SecretKey), KEMSecretKeySize)
	}

	if len(encapsulated) != KEMEncapsulationSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidEncapsulation, len(encapsulated), KEMEncapsulationSize)
	}

	var priv mlkem768.PrivateKey
	if err := priv.Unpack(k.SecretKey); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}

	secret := make([]byte, KEMSharedKeySize)
	priv.DecapsulateTo(secret, encapsulated)

	sharedKey, err := deriveKEMKey(secret, encapsulated)
	crypto.Zero(secret)
	return sharedKey, err
}

// deriveKEMKey expands a KEM shared secret into the final symmetric key with
// HKDF-SHA-256, salted with a hash of the encapsulation and bound to a fixed
// context so keys from the two exchange tracks can never collide.
func deriveKEMKey(secret, encapsulated []byte) ([]byte, error) {
	salt := sha256.Sum256(encapsulated)

	reader := hkdf.New(sha256.New, secret, salt[:], []byte(kemContext))
	key := make([]byte, crypto.KeySize)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	return key, nil
}
