package crypto

const (
	// KeySize is the size of an AES-256 key in bytes.
	KeySize = 32
	// NonceSize is the size of an AES-GCM nonce in bytes.
	NonceSize = 12
	// TagSize is the size of an AES-GCM authentication tag in bytes.
	TagSize = 16

	// MinSaltSize is the minimum accepted PBKDF2 salt length in bytes.
	MinSaltSize = 8
	// MaxSaltSize is the maximum accepted PBKDF2 salt length in bytes.
	MaxSaltSize = 64
	// DefaultSaltSize is the salt length generated when the caller does not
	// supply a salt.
	DefaultSaltSize = 16

	// MinIterations is the minimum accepted PBKDF2 iteration count. It guards
	// against trivially weak configurations.
	MinIterations = 1000
	// MaxIterations is the maximum accepted PBKDF2 iteration count. It guards
	// against denial of service through attacker-supplied counts.
	MaxIterations = 100000
	// DefaultIterations is the PBKDF2 iteration count used when the caller
	// does not specify one.
	DefaultIterations = 2000
)
