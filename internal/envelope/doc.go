// Package envelope serializes and deserializes the two SealBridge wire
// formats. It is the only place the envelope layout is known; the crypto
// primitives are unaware of serialization.
//
// # Keyed format
//
// Used when the caller already holds the raw 32-byte key:
//
//	base64(nonce) + ":" + base64(ciphertext || tag)
//
// The format is self-delimiting: the string splits on its single ':'
// separator and the nonce and tag have fixed sizes.
//
// # Password format
//
// Used when the key is derived from a password; the salt travels with the
// ciphertext so a verifier can re-derive the same key:
//
//	base64( u32-LE(saltLen) || salt || nonce || ciphertext || tag )
//
// The 4-byte length prefix locates the salt/nonce/ciphertext boundaries.
// Neither format carries a version byte or the iteration count; both are
// agreed out of band between counterparties.
//
// Envelopes are written in standard padded base64 but decoded leniently,
// accepting the unpadded and URL-safe variants some legacy bindings emit.
package envelope
