package sealbridge

import "github.com/sealbridge/envelope-go/internal/crypto"

// DefaultIterations is the PBKDF2 iteration count used when no
// [WithIterations] option is given. Both sides of a password-based exchange
// must agree on the count; it is not carried in the envelope.
const DefaultIterations = crypto.DefaultIterations

// passwordConfig holds configuration for password-based operations.
type passwordConfig struct {
	salt       []byte
	iterations int
}

// PasswordOption configures password-based encryption and decryption.
type PasswordOption func(*passwordConfig)

// WithIterations sets the PBKDF2 iteration count. Valid values are 1000 to
// 100000; the default is 2000. Decryption must use the same count that
// produced the envelope, or it fails as if the ciphertext were tampered with.
func WithIterations(n int) PasswordOption {
	return func(c *passwordConfig) {
		c.iterations = n
	}
}

// WithSalt supplies an explicit salt (8 to 64 bytes) instead of generating a
// random one. Only meaningful for encryption; decryption reads the salt from
// the envelope and ignores this option.
func WithSalt(salt []byte) PasswordOption {
	return func(c *passwordConfig) {
		c.salt = salt
	}
}

func newPasswordConfig(opts []PasswordOption) *passwordConfig {
	cfg := &passwordConfig{iterations: DefaultIterations}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
