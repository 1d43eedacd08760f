// Package backend defines the shape of the native post-quantum library this
// module wraps and keeps a registry of the providers compiled into the
// current binary.
//
// A Provider mirrors the liboqs C API: per-algorithm method objects whose
// entry points fill caller-provided buffers in place and report a Status.
// Providers never allocate caller-visible output; sizing and validation are
// the job of the adapter in pkg/oqs/internal/ffi.
//
// # Threading
//
// Providers must tolerate concurrent calls on the same method object with
// distinct buffers. liboqs documents this for its reference implementations;
// it is a precondition on the native collaborator, not something this layer
// can enforce.
package backend
