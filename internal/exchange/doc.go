// Package exchange implements the two key-agreement tracks used between
// SealBridge counterparties.
//
// # ECDH (classical track)
//
// Key pairs are generated over NIST P-256, fixed for interoperability across
// all counterparty runtimes. Public keys are exported in the canonical
// 65-byte uncompressed curve-point encoding, but two generations of
// counterparties exist: older ones export the generic
// SubjectPublicKeyInfo (PKIX) wrapper instead. Import therefore tries an
// ordered list of parser strategies and only fails once all of them do,
// so callers never need to know which generation they are talking to.
//
// The raw ECDH shared secret is hashed with SHA-256 before being returned,
// yielding exactly 32 bytes of key material directly usable as an AES-256
// key. The derivation is commutative: DeriveShared(A.priv, B.pub) equals
// DeriveShared(B.priv, A.pub).
//
// # ML-KEM-768 (post-quantum track)
//
// The newest counterparty generation negotiates keys by encapsulation
// instead of Diffie-Hellman. The KEM shared secret is expanded with
// HKDF-SHA-256 under a fixed domain-separation context so both tracks
// produce interchangeable 32-byte symmetric keys.
package exchange
