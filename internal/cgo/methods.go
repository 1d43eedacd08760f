//go:build cgo && liboqs

package cgo

/*
#include <oqs/oqs.h>
*/
import "C"

import (
	"github.com/hsiuhsiu/oqs-safe-go/internal/backend"
)

type kemMethod struct {
	ptr *C.OQS_KEM
}

func (m *kemMethod) Lengths() backend.KEMLengths {
	return backend.KEMLengths{
		PublicKey:    int(m.ptr.length_public_key),
		SecretKey:    int(m.ptr.length_secret_key),
		Ciphertext:   int(m.ptr.length_ciphertext),
		SharedSecret: int(m.ptr.length_shared_secret),
	}
}

func (m *kemMethod) Keypair(pk, sk []byte) backend.Status {
	return toStatus(C.OQS_KEM_keypair(m.ptr, ptr(pk), ptr(sk)))
}

func (m *kemMethod) Encaps(ct, ss, pk []byte) backend.Status {
	return toStatus(C.OQS_KEM_encaps(m.ptr, ptr(ct), ptr(ss), ptr(pk)))
}

func (m *kemMethod) Decaps(ss, ct, sk []byte) backend.Status {
	return toStatus(C.OQS_KEM_decaps(m.ptr, ptr(ss), ptr(ct), ptr(sk)))
}

func (m *kemMethod) Free() {
	if m.ptr != nil {
		C.OQS_KEM_free(m.ptr)
		m.ptr = nil
	}
}

type sigMethod struct {
	ptr *C.OQS_SIG
}

func (m *sigMethod) Lengths() backend.SigLengths {
	return backend.SigLengths{
		PublicKey:       int(m.ptr.length_public_key),
		SecretKey:       int(m.ptr.length_secret_key),
		MaxSignature:    int(m.ptr.length_signature),
		SupportsContext: bool(m.ptr.sig_with_ctx_support),
	}
}

func (m *sigMethod) Keypair(pk, sk []byte) backend.Status {
	return toStatus(C.OQS_SIG_keypair(m.ptr, ptr(pk), ptr(sk)))
}

func (m *sigMethod) Sign(sig, msg, sk []byte) (int, backend.Status) {
	var n C.size_t
	st := C.OQS_SIG_sign(m.ptr, ptr(sig), &n, ptr(msg), C.size_t(len(msg)), ptr(sk))
	return int(n), toStatus(st)
}

func (m *sigMethod) SignWithContext(sig, msg, ctx, sk []byte) (int, backend.Status) {
	var n C.size_t
	st := C.OQS_SIG_sign_with_ctx_str(m.ptr, ptr(sig), &n,
		ptr(msg), C.size_t(len(msg)),
		ptr(ctx), C.size_t(len(ctx)),
		ptr(sk))
	return int(n), toStatus(st)
}

func (m *sigMethod) Verify(msg, sig, pk []byte) backend.Status {
	return toStatus(C.OQS_SIG_verify(m.ptr,
		ptr(msg), C.size_t(len(msg)),
		ptr(sig), C.size_t(len(sig)),
		ptr(pk)))
}

func (m *sigMethod) VerifyWithContext(msg, sig, ctx, pk []byte) backend.Status {
	return toStatus(C.OQS_SIG_verify_with_ctx_str(m.ptr,
		ptr(msg), C.size_t(len(msg)),
		ptr(sig), C.size_t(len(sig)),
		ptr(ctx), C.size_t(len(ctx)),
		ptr(pk)))
}

func (m *sigMethod) Free() {
	if m.ptr != nil {
		C.OQS_SIG_free(m.ptr)
		m.ptr = nil
	}
}
