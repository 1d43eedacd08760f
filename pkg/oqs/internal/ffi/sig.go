package ffi

import (
	"context"
	"fmt"
	"runtime"

	"github.com/hsiuhsiu/oqs-safe-go/internal/backend"
	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs"
	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs/buffer"
	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs/catalog"
	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs/logging"
)

// Sig is a native signature object checked against its descriptor. It is
// not synchronized; Free must not race with other calls.
type Sig struct {
	desc catalog.SigDescriptor
	m    backend.SigMethod
	log  logging.Logger
}

// OpenSig obtains the provider's method object for d. A provider whose
// reported lengths or context support disagree with the catalog is a build
// defect and panics.
func OpenSig(lib *oqs.Library, d catalog.SigDescriptor) (*Sig, error) {
	const op = "sig.Open"
	p := lib.Provider()
	if !p.SigEnabled(d.Name) {
		return nil, oqs.UnsupportedAlgorithm(op, d.Name, backend.ErrDisabled)
	}
	m, err := p.NewSig(d.Name)
	if err != nil {
		return nil, oqs.UnsupportedAlgorithm(op, d.Name, err)
	}

	want := backend.SigLengths{
		PublicKey:       d.PublicKeyLen,
		SecretKey:       d.SecretKeyLen,
		MaxSignature:    d.MaxSignatureLen,
		SupportsContext: d.SupportsContext,
	}
	if got := m.Lengths(); got != want {
		m.Free()
		panic(mismatch(p.Name(), d.Name, got, want))
	}

	log := logging.ForHandle(lib.Logger(), "sig", d.Name, p.Name())
	log.Debug(context.Background(), "sig opened")
	return &Sig{desc: d, m: m, log: log}, nil
}

// Keypair generates a key pair.
func (s *Sig) Keypair() (*buffer.PublicKey, *buffer.SecretKey, error) {
	const op = "sig.GenerateKeypair"
	id := s.desc.ID
	pk, err := buffer.Allocate[buffer.PublicKeyTag](id)
	if err != nil {
		return nil, nil, err
	}
	sk, err := buffer.Allocate[buffer.SecretKeyTag](id)
	if err != nil {
		return nil, nil, err
	}

	pkb, skb := pk.Bytes(), sk.Bytes()
	status, err := call(op, s.desc.Name, func() backend.Status {
		return s.m.Keypair(pkb, skb)
	})
	if err != nil || status != backend.StatusSuccess {
		sk.Destroy()
		pk.Destroy()
		return nil, nil, failure(s.log, op, s.desc.Name, status, err)
	}
	return pk, sk, nil
}

// checkContext rejects a non-empty context on an algorithm without context
// support. An empty context is the same as none.
func (s *Sig) checkContext(op string, ctx buffer.View[buffer.ContextTag]) ([]byte, error) {
	b := ctx.Bytes()
	if len(b) > 0 && !s.desc.SupportsContext {
		return nil, oqs.UnsupportedFeature(op, s.desc.Name, fmt.Errorf("%s does not accept a context string", s.desc.Name))
	}
	return b, nil
}

// Sign signs msg, binding ctx when it is non-empty. The returned signature
// has the exact length the provider produced.
func (s *Sig) Sign(sk buffer.Source[buffer.SecretKeyTag], msg buffer.View[buffer.MessageTag], ctx buffer.View[buffer.ContextTag]) (*buffer.Signature, error) {
	op := "sig.Sign"
	if ctx.Len() > 0 {
		op = "sig.SignWithContext"
	}
	id := s.desc.ID
	ctxb, err := s.checkContext(op, ctx)
	if err != nil {
		return nil, err
	}
	skv, skb, err := input(op, id, sk)
	if err != nil {
		return nil, err
	}
	msgb := msg.Bytes()

	sig, err := buffer.Fill[buffer.SignatureTag](id, func(dst []byte) (int, error) {
		var n int
		status, err := call(op, s.desc.Name, func() backend.Status {
			var st backend.Status
			if len(ctxb) > 0 {
				n, st = s.m.SignWithContext(dst, msgb, ctxb, skb)
			} else {
				n, st = s.m.Sign(dst, msgb, skb)
			}
			return st
		})
		if err != nil || status != backend.StatusSuccess {
			return 0, failure(s.log, op, s.desc.Name, status, err)
		}
		if n <= 0 || n > len(dst) {
			cause := fmt.Errorf("provider reported signature length %d, buffer holds %d", n, len(dst))
			return 0, failure(s.log, op, s.desc.Name, backend.StatusError, oqs.CryptoFailure(op, s.desc.Name, backend.StatusError, cause))
		}
		return n, nil
	})
	runtime.KeepAlive(skv)
	return sig, err
}

// Verify checks sig over msg and ctx. A rejected signature is
// ErrVerificationFailed; any other native failure is ErrCryptoFailure.
func (s *Sig) Verify(pk buffer.Source[buffer.PublicKeyTag], msg buffer.View[buffer.MessageTag], sig buffer.Source[buffer.SignatureTag], ctx buffer.View[buffer.ContextTag]) error {
	op := "sig.Verify"
	if ctx.Len() > 0 {
		op = "sig.VerifyWithContext"
	}
	id := s.desc.ID
	ctxb, err := s.checkContext(op, ctx)
	if err != nil {
		return err
	}
	pkv, pkb, err := input(op, id, pk)
	if err != nil {
		return err
	}
	sigv, sigb, err := input(op, id, sig)
	if err != nil {
		return err
	}
	msgb := msg.Bytes()

	status, err := call(op, s.desc.Name, func() backend.Status {
		if len(ctxb) > 0 {
			return s.m.VerifyWithContext(msgb, sigb, ctxb, pkb)
		}
		return s.m.Verify(msgb, sigb, pkb)
	})
	runtime.KeepAlive(pkv)
	runtime.KeepAlive(sigv)
	switch {
	case err != nil:
		return failure(s.log, op, s.desc.Name, status, err)
	case status == backend.StatusSuccess:
		return nil
	case status == backend.StatusError:
		return oqs.VerificationFailed(op, s.desc.Name)
	default:
		return failure(s.log, op, s.desc.Name, status, nil)
	}
}

// Free releases the native object. Later calls on s are invalid.
func (s *Sig) Free() {
	if s.m == nil {
		return
	}
	s.m.Free()
	s.m = nil
	s.log.Debug(context.Background(), "sig freed")
}
