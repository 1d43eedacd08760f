// Package oqs is a safety layer over a native post-quantum library (liboqs)
// exposing key-encapsulation mechanisms and signature schemes.
//
// The cryptography is the native library's; this module owns the boundary.
// Buffers are typed by role and bound to an algorithm, every length is
// checked against a static descriptor table before a native call is made,
// outputs are preallocated from that table, and secret-classified storage is
// wiped exactly once when its owner is destroyed, on every exit path.
//
// # Packages
//
//   - catalog: the static algorithm table and enabled queries
//   - buffer: owned and borrowed role-tagged byte buffers
//   - kem: key encapsulation handles
//   - sig: signature handles
//   - logging: slog facade with redaction helpers
//
// # Providers
//
// Handles talk to a provider chosen by Config.Backend. Building with
// `-tags liboqs` (cgo required) links the liboqs provider; the pure-Go circl
// provider is always available and covers ML-KEM, Kyber, FrodoKEM-640-SHAKE
// and ML-DSA. Algorithms a provider lacks report disabled and fail with
// ErrUnsupportedAlgorithm.
//
// # Errors
//
// Every operation failure is an *Error whose Kind is one of
// KindUnsupportedAlgorithm, KindInvalidLength, KindUnsupportedFeature,
// KindCryptoFailure or KindVerificationFailed. Use errors.Is with the
// matching sentinel. Nothing is retried.
package oqs
