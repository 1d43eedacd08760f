// Package sig provides signature handles.
//
// A Sig is bound to one algorithm for its lifetime. Signatures are produced
// at their true length, which may be shorter than MaxSignatureLen. Verify
// distinguishes a rejected signature (oqs.ErrVerificationFailed) from a
// native failure (oqs.ErrCryptoFailure) and from malformed input
// (oqs.ErrInvalidLength).
//
// Context strings are only accepted by algorithms that support them, ML-DSA
// in the current catalog. An empty context is the same as no context.
//
// Handles are safe for concurrent use. Using a handle after Close panics.
package sig

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

// Sig is a handle on one signature algorithm.
type Sig struct {
	desc catalog.SigDescriptor

	mu     sync.RWMutex
	native *ffi.Sig
}

// New opens a handle for id. It fails with oqs.ErrUnsupportedAlgorithm when
// id is unknown, not a signature scheme, or not offered by the library.
func New(id catalog.ID, opts ...Option) (*Sig, error) {
	d, err := catalog.DescribeSig(id)
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

	native, err := ffi.OpenSig(o.lib, d)
	if err != nil {
		return nil, err
	}
	s := &Sig{desc: d, native: native}
	runtime.SetFinalizer(s, (*Sig).Close)
	return s, nil
}

// NewByName opens a handle for the canonical liboqs name, e.g. "ML-DSA-65".
func NewByName(name string, opts ...Option) (*Sig, error) {
	id, err := catalog.Lookup(catalog.FamilySig, name)
	if err != nil {
		return nil, err
	}
	return New(id, opts...)
}

func (s *Sig) acquire() *ffi.Sig {
	s.mu.RLock()
	if s.native == nil {
		s.mu.RUnlock()
		panic("sig: use of closed " + s.desc.Name + " handle")
	}
	return s.native
}

// GenerateKeypair returns a fresh key pair. The caller owns both buffers and
// should Destroy the secret key when done.
func (s *Sig) GenerateKeypair() (*buffer.PublicKey, *buffer.SecretKey, error) {
	n := s.acquire()
	defer s.mu.RUnlock()
	return n.Keypair()
}

// Sign signs msg with sk.
func (s *Sig) Sign(sk buffer.Source[buffer.SecretKeyTag], msg []byte) (*buffer.Signature, error) {
	return s.SignWithContext(sk, msg, nil)
}

// SignWithContext signs msg bound to ctx. A non-empty ctx on an algorithm
// without context support fails with oqs.ErrUnsupportedFeature before the
// native library is called.
func (s *Sig) SignWithContext(sk buffer.Source[buffer.SecretKeyTag], msg, ctx []byte) (*buffer.Signature, error) {
	n := s.acquire()
	defer s.mu.RUnlock()
	return n.Sign(sk, buffer.MessageOf(msg), buffer.ContextOf(ctx))
}

// Verify checks sig over msg under pk. It returns nil only for a valid
// signature.
func (s *Sig) Verify(pk buffer.Source[buffer.PublicKeyTag], msg []byte, sig buffer.Source[buffer.SignatureTag]) error {
	return s.VerifyWithContext(pk, msg, sig, nil)
}

// VerifyWithContext checks sig over msg and ctx under pk.
func (s *Sig) VerifyWithContext(pk buffer.Source[buffer.PublicKeyTag], msg []byte, sig buffer.Source[buffer.SignatureTag], ctx []byte) error {
	n := s.acquire()
	defer s.mu.RUnlock()
	return n.Verify(pk, buffer.MessageOf(msg), sig, buffer.ContextOf(ctx))
}

// Close releases the native object. It is safe to call more than once.
func (s *Sig) Close() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.native == nil {
		return nil
	}
	s.native.Free()
	s.native = nil
	runtime.SetFinalizer(s, nil)
	return nil
}

func (s *Sig) Algorithm() catalog.ID { return s.desc.ID }
func (s *Sig) Name() string { return s.desc.Name }
func (s *Sig) Descriptor() catalog.SigDescriptor { return s.desc }
func (s *Sig) ClaimedNISTLevel() int { return s.desc.ClaimedNISTLevel }
func (s *Sig) IsEUFCMA() bool { return s.desc.EUFCMA }
func (s *Sig) SupportsContext() bool { return s.desc.SupportsContext }
func (s *Sig) PublicKeyLen() int { return s.desc.PublicKeyLen }
func (s *Sig) SecretKeyLen() int { return s.desc.SecretKeyLen }
func (s *Sig) MaxSignatureLen() int { return s.desc.MaxSignatureLen }
func (s *Sig) String() string { return "sig(" + s.desc.Name + ")" }

// PublicKeyFromBytes copies b into a public key bound to this algorithm.
func (s *Sig) PublicKeyFromBytes(b []byte) (*buffer.PublicKey, error) {
	return buffer.FromBytes[buffer.PublicKeyTag](s.desc.ID, b)
}

// SecretKeyFromBytes copies b into a secret key bound to this algorithm. The
// caller remains responsible for wiping b.
func (s *Sig) SecretKeyFromBytes(b []byte) (*buffer.SecretKey, error) {
	return buffer.FromBytes[buffer.SecretKeyTag](s.desc.ID, b)
}

// SignatureFromBytes copies b into a signature bound to this algorithm. Any
// length up to MaxSignatureLen is accepted.
func (s *Sig) SignatureFromBytes(b []byte) (*buffer.Signature, error) {
	return buffer.FromBytes[buffer.SignatureTag](s.desc.ID, b)
}
