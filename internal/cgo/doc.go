// Package cgo contains all cgo bindings to liboqs.
//
// # Design Principles
//
// 1. Isolation: ALL cgo code lives in this package. No other package imports
//    "C", and no other package does pointer arithmetic on key material.
//
// 2. Minimal Surface: only the entry points the wrapper consumes are bound:
//    OQS_KEM_{new,keypair,encaps,decaps,free,alg_is_enabled} and
//    OQS_SIG_{new,keypair,sign,sign_with_ctx_str,verify,verify_with_ctx_str,
//    free,alg_is_enabled}, plus OQS_init and OQS_version.
//
// 3. Error Handling: OQS_STATUS values are converted to backend.Status
//    immediately; callers above decide what they mean.
//
// 4. Memory Management: liboqs writes into Go-owned buffers that the caller
//    sized from the reported lengths. Pointers never outlive the cgo call.
//    OQS_KEM and OQS_SIG objects are released through Free.
//
// # Build
//
// The provider is compiled only with `-tags liboqs` and cgo enabled; it
// locates liboqs through pkg-config. Without the tag the package is empty
// and the circl provider serves as the default.
//
// # Threading
//
// liboqs method objects are immutable after OQS_KEM_new / OQS_SIG_new, and
// the reference implementations keep no global mutable state. Concurrent use
// of one object with distinct buffers is assumed, not enforced.
package cgo
