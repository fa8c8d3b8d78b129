// Package crypto provides the cryptographic primitives behind the SealBridge
// envelope formats: AES-256-GCM authenticated encryption and PBKDF2-HMAC-SHA256
// password-based key derivation.
//
// # Algorithms
//
//   - AES-256-GCM: authenticated encryption with a 32-byte key, 12-byte nonce
//     and 16-byte tag. Ciphertext length equals plaintext length.
//
//   - PBKDF2-HMAC-SHA256 (RFC 8018): iterated key derivation turning a
//     password and salt into a 32-byte symmetric key. Iteration counts are
//     bounded to [1000, 100000] and salts to [8, 64] bytes; both are
//     validated before any derivation work happens.
//
// # Security Notes
//
// AES-GCM nonces MUST be unique for each encryption with the same key. Nonce
// reuse completely breaks the security of AES-GCM, allowing attackers to
// recover the authentication key and forge messages. Every encryption
// generates a fresh nonce from the operating system's secure random source.
//
// Open verifies the authentication tag before releasing any plaintext and
// fails with a single uniform error for every integrity violation. A wrong
// key, a wrong password, a wrong iteration count and tampered ciphertext are
// deliberately indistinguishable so the failure cannot be used as an oracle.
//
// Key material handled by this package is never logged. Use [Zero] to wipe
// buffers that held secrets once they are no longer needed.
package crypto
