//go:build cgo && liboqs

package cgo

/*
#cgo pkg-config: liboqs
#include <stdlib.h>
#include <stdint.h>
#include <oqs/oqs.h>
*/
import "C"

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/hsiuhsiu/oqs-safe-go/internal/backend"
)

// Name is the registry name of this provider.
const Name = "liboqs"

var initOnce sync.Once

func init() {
	backend.Register(Provider{})
}

// Provider implements backend.Provider on top of the linked liboqs.
type Provider struct{}

var _ backend.Provider = Provider{}

func (Provider) Name() string { return Name }

func (Provider) Version() string {
	ensureInit()
	return "liboqs " + C.GoString(C.OQS_version())
}

func (Provider) KEMEnabled(alg string) bool {
	ensureInit()
	name := C.CString(alg)
	defer C.free(unsafe.Pointer(name))
	return C.OQS_KEM_alg_is_enabled(name) == 1
}

func (Provider) SigEnabled(alg string) bool {
	ensureInit()
	name := C.CString(alg)
	defer C.free(unsafe.Pointer(name))
	return C.OQS_SIG_alg_is_enabled(name) == 1
}

func (Provider) NewKEM(alg string) (backend.KEMMethod, error) {
	ensureInit()
	name := C.CString(alg)
	defer C.free(unsafe.Pointer(name))
	k := C.OQS_KEM_new(name)
	if k == nil {
		return nil, fmt.Errorf("%w: %s", backend.ErrDisabled, alg)
	}
	return &kemMethod{ptr: k}, nil
}

func (Provider) NewSig(alg string) (backend.SigMethod, error) {
	ensureInit()
	name := C.CString(alg)
	defer C.free(unsafe.Pointer(name))
	s := C.OQS_SIG_new(name)
	if s == nil {
		return nil, fmt.Errorf("%w: %s", backend.ErrDisabled, alg)
	}
	return &sigMethod{ptr: s}, nil
}

// ensureInit runs OQS_init once. Library startup belongs to the process, but
// liboqs tolerates the call being made lazily from the first use.
func ensureInit() {
	initOnce.Do(func() { C.OQS_init() })
}

func toStatus(s C.OQS_STATUS) backend.Status {
	switch s {
	case C.OQS_SUCCESS:
		return backend.StatusSuccess
	case C.OQS_EXTERNAL_LIB_ERROR_OPENSSL:
		return backend.StatusExternalLibError
	default:
		return backend.StatusError
	}
}

// ptr returns a C view of b valid for the duration of one cgo call. Empty
// slices map to NULL; liboqs accepts NULL for zero-length messages and
// contexts, and every key-sized buffer is non-empty by construction.
func ptr(b []byte) *C.uint8_t {
	if len(b) == 0 {
		return nil
	}
	return (*C.uint8_t)(unsafe.Pointer(&b[0]))
}
