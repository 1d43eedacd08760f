// Package kem provides key-encapsulation handles.
//
// A KEM is bound to one algorithm for its lifetime. Every buffer passed to it
// must be bound to the same algorithm and have the length the catalog
// declares; violations are reported before the native library is reached.
//
//	k, err := kem.New(catalog.MLKEM768)
//	if err != nil {
//	    return err
//	}
//	defer k.Close()
//
//	pk, sk, err := k.GenerateKeypair()
//	...
//	ct, ss, err := k.Encapsulate(pk)
//	...
//	defer ss.Destroy()
//
// Handles are safe for concurrent use. Using a handle after Close panics.
package kem

import (
	"runtime"
	"sync"

	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs"
	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs/buffer"
	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs/catalog"
	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs/internal/ffi"
)

type options struct {
	lib *oqs.Library
}

// Option configures New.
type Option func(*options)

// WithLibrary binds the handle to lib instead of oqs.Default().
func WithLibrary(lib *oqs.Library) Option {
	return func(o *options) { o.lib = lib }
}

// KEM is a handle on one key-encapsulation algorithm.
type KEM struct {
	desc catalog.KEMDescriptor

	mu     sync.RWMutex
	native *ffi.KEM
}

// New opens a handle for id. It fails with oqs.ErrUnsupportedAlgorithm when
// id is unknown, not a KEM, or not offered by the library.
func New(id catalog.ID, opts ...Option) (*KEM, error) {
	d, err := catalog.DescribeKEM(id)
	if err != nil {
		return nil, err
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.lib == nil {
		o.lib = oqs.Default()
	}

	native, err := ffi.OpenKEM(o.lib, d)
	if err != nil {
		return nil, err
	}
	k := &KEM{desc: d, native: native}
	runtime.SetFinalizer(k, (*KEM).Close)
	return k, nil
}

// NewByName opens a handle for the canonical liboqs name, e.g. "ML-KEM-768".
func NewByName(name string, opts ...Option) (*KEM, error) {
	id, err := catalog.Lookup(catalog.FamilyKEM, name)
	if err != nil {
		return nil, err
	}
	return New(id, opts...)
}

// acquire read-locks k and returns the native object. The caller must call
// k.mu.RUnlock.
func (k *KEM) acquire() *ffi.KEM {
	k.mu.RLock()
	if k.native == nil {
		k.mu.RUnlock()
		panic("kem: use of closed " + k.desc.Name + " handle")
	}
	return k.native
}

// GenerateKeypair returns a fresh key pair. The caller owns both buffers and
// should Destroy the secret key when done.
func (k *KEM) GenerateKeypair() (*buffer.PublicKey, *buffer.SecretKey, error) {
	n := k.acquire()
	defer k.mu.RUnlock()
	return n.Keypair()
}

// Encapsulate derives a shared secret and the ciphertext that carries it to
// the holder of pk.
func (k *KEM) Encapsulate(pk buffer.Source[buffer.PublicKeyTag]) (*buffer.Ciphertext, *buffer.SharedSecret, error) {
	n := k.acquire()
	defer k.mu.RUnlock()
	return n.Encaps(pk)
}

// Decapsulate recovers the shared secret carried by ct. Tampered
// ciphertexts of IND-CCA schemes yield an unrelated secret, not an error.
func (k *KEM) Decapsulate(sk buffer.Source[buffer.SecretKeyTag], ct buffer.Source[buffer.CiphertextTag]) (*buffer.SharedSecret, error) {
	n := k.acquire()
	defer k.mu.RUnlock()
	return n.Decaps(sk, ct)
}

// Close releases the native object. It is safe to call more than once.
func (k *KEM) Close() error {
	if k == nil {
		return nil
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.native == nil {
		return nil
	}
	k.native.Free()
	k.native = nil
	runtime.SetFinalizer(k, nil)
	return nil
}

func (k *KEM) Algorithm() catalog.ID { return k.desc.ID }
func (k *KEM) Name() string { return k.desc.Name }
func (k *KEM) Descriptor() catalog.KEMDescriptor { return k.desc }
func (k *KEM) ClaimedNISTLevel() int { return k.desc.ClaimedNISTLevel }
func (k *KEM) IsIndCCA() bool { return k.desc.IndCCA }
func (k *KEM) PublicKeyLen() int { return k.desc.PublicKeyLen }
func (k *KEM) SecretKeyLen() int { return k.desc.SecretKeyLen }
func (k *KEM) CiphertextLen() int { return k.desc.CiphertextLen }
func (k *KEM) SharedSecretLen() int { return k.desc.SharedSecretLen }
func (k *KEM) String() string { return "kem(" + k.desc.Name + ")" }

// PublicKeyFromBytes copies b into a public key bound to this algorithm.
func (k *KEM) PublicKeyFromBytes(b []byte) (*buffer.PublicKey, error) {
	return buffer.FromBytes[buffer.PublicKeyTag](k.desc.ID, b)
}

// SecretKeyFromBytes copies b into a secret key bound to this algorithm. The
// caller remains responsible for wiping b.
func (k *KEM) SecretKeyFromBytes(b []byte) (*buffer.SecretKey, error) {
	return buffer.FromBytes[buffer.SecretKeyTag](k.desc.ID, b)
}

// CiphertextFromBytes copies b into a ciphertext bound to this algorithm.
func (k *KEM) CiphertextFromBytes(b []byte) (*buffer.Ciphertext, error) {
	return buffer.FromBytes[buffer.CiphertextTag](k.desc.ID, b)
}

// SharedSecretFromBytes copies b into a shared secret bound to this
// algorithm.
func (k *KEM) SharedSecretFromBytes(b []byte) (*buffer.SharedSecret, error) {
	return buffer.FromBytes[buffer.SharedSecretTag](k.desc.ID, b)
}
