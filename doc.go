// Package sealbridge provides authenticated symmetric encryption,
// password-based key derivation and elliptic-curve key exchange for callers
// that cannot use a modern cryptographic standard library directly, such as
// legacy client runtimes or a database's embedded code layer.
//
// Basic usage with a raw key:
//
//	key := make([]byte, 32)
//	if _, err := rand.Read(key); err != nil {
//	    log.Fatal(err)
//	}
//
//	envelope, err := sealbridge.EncryptWithKey([]byte("hello world"), key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plaintext, err := sealbridge.DecryptWithKey(envelope, key)
//
// Password-based usage, where the key is derived with PBKDF2 and the salt
// travels inside the envelope:
//
//	envelope, err := sealbridge.EncryptWithPassword(data, "passphrase")
//	plaintext, err := sealbridge.DecryptWithPassword(envelope, "passphrase")
//
// # Envelope Formats
//
// Two wire formats are produced, both self-delimiting ASCII strings:
//
//   - Keyed: "base64(nonce):base64(ciphertext||tag)", returned by
//     [EncryptWithKey].
//
//   - Password: a single base64 blob of
//     u32-LE(saltLen) || salt || nonce || ciphertext || tag, returned by
//     [EncryptWithPassword]. The iteration count is not carried in the
//     envelope and must be agreed between counterparties.
//
// # Key Exchange
//
// [GenerateKeyPair] and [DeriveSharedSecret] implement ECDH over NIST P-256.
// Counterparty public keys are accepted in either the compact uncompressed
// point encoding or the SubjectPublicKeyInfo wrapper exported by older
// runtimes; the derived secret is SHA-256 hashed to exactly 32 bytes so it
// can be passed straight to [EncryptWithKey]. Counterparties on the
// post-quantum track use [GenerateKEMKeyPair], [Encapsulate] and
// [KEMKeyPair.Decapsulate] instead.
//
// # Security Model
//
// Every operation is a pure, synchronous, stateless function; concurrent
// calls need no locking. Decryption verifies the authentication tag before
// releasing any plaintext, and every integrity violation - wrong key, wrong
// password, wrong iteration count, tampered ciphertext - surfaces as the
// single [ErrAuthenticationFailed] so failures cannot be used as an oracle.
// A fresh random nonce is generated for each encryption; a (key, nonce) pair
// is never reused. Keys the library derives internally are zeroed as soon as
// the operation completes; keys returned to the caller by [DeriveKey] are the
// caller's to dispose of with [ZeroBytes].
package sealbridge
