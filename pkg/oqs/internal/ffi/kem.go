package ffi

import (
	"context"
	"runtime"

	"github.com/hsiuhsiu/oqs-safe-go/internal/backend"
	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs"
	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs/buffer"
	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs/catalog"
	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs/logging"
)

// KEM is a native KEM object checked against its descriptor. It is not
// synchronized; Free must not race with other calls.
type KEM struct {
	desc catalog.KEMDescriptor
	m    backend.KEMMethod
	log  logging.Logger
}

// OpenKEM obtains the provider's method object for d. A provider whose
// reported lengths disagree with the catalog is a build defect and panics.
func OpenKEM(lib *oqs.Library, d catalog.KEMDescriptor) (*KEM, error) {
	const op = "kem.Open"
	p := lib.Provider()
	if !p.KEMEnabled(d.Name) {
		return nil, oqs.UnsupportedAlgorithm(op, d.Name, backend.ErrDisabled)
	}
	m, err := p.NewKEM(d.Name)
	if err != nil {
		return nil, oqs.UnsupportedAlgorithm(op, d.Name, err)
	}

	want := backend.KEMLengths{
		PublicKey:    d.PublicKeyLen,
		SecretKey:    d.SecretKeyLen,
		Ciphertext:   d.CiphertextLen,
		SharedSecret: d.SharedSecretLen,
	}
	if got := m.Lengths(); got != want {
		m.Free()
		panic(mismatch(p.Name(), d.Name, got, want))
	}

	log := logging.ForHandle(lib.Logger(), "kem", d.Name, p.Name())
	log.Debug(context.Background(), "kem opened")
	return &KEM{desc: d, m: m, log: log}, nil
}

// Keypair generates a key pair.
func (k *KEM) Keypair() (*buffer.PublicKey, *buffer.SecretKey, error) {
	const op = "kem.GenerateKeypair"
	id := k.desc.ID
	pk, err := buffer.Allocate[buffer.PublicKeyTag](id)
	if err != nil {
		return nil, nil, err
	}
	sk, err := buffer.Allocate[buffer.SecretKeyTag](id)
	if err != nil {
		return nil, nil, err
	}

	pkb, skb := pk.Bytes(), sk.Bytes()
	status, err := call(op, k.desc.Name, func() backend.Status {
		return k.m.Keypair(pkb, skb)
	})
	if err != nil || status != backend.StatusSuccess {
		sk.Destroy()
		pk.Destroy()
		return nil, nil, failure(k.log, op, k.desc.Name, status, err)
	}
	return pk, sk, nil
}

// Encaps encapsulates a fresh shared secret to pk.
func (k *KEM) Encaps(pk buffer.Source[buffer.PublicKeyTag]) (*buffer.Ciphertext, *buffer.SharedSecret, error) {
	const op = "kem.Encapsulate"
	id := k.desc.ID
	pkv, pkb, err := input(op, id, pk)
	if err != nil {
		return nil, nil, err
	}
	ct, err := buffer.Allocate[buffer.CiphertextTag](id)
	if err != nil {
		return nil, nil, err
	}
	ss, err := buffer.Allocate[buffer.SharedSecretTag](id)
	if err != nil {
		return nil, nil, err
	}

	ctb, ssb := ct.Bytes(), ss.Bytes()
	status, err := call(op, k.desc.Name, func() backend.Status {
		return k.m.Encaps(ctb, ssb, pkb)
	})
	runtime.KeepAlive(pkv)
	if err != nil || status != backend.StatusSuccess {
		ss.Destroy()
		ct.Destroy()
		return nil, nil, failure(k.log, op, k.desc.Name, status, err)
	}
	return ct, ss, nil
}

// Decaps recovers the shared secret from ct.
func (k *KEM) Decaps(sk buffer.Source[buffer.SecretKeyTag], ct buffer.Source[buffer.CiphertextTag]) (*buffer.SharedSecret, error) {
	const op = "kem.Decapsulate"
	id := k.desc.ID
	skv, skb, err := input(op, id, sk)
	if err != nil {
		return nil, err
	}
	ctv, ctb, err := input(op, id, ct)
	if err != nil {
		return nil, err
	}
	ss, err := buffer.Allocate[buffer.SharedSecretTag](id)
	if err != nil {
		return nil, err
	}

	ssb := ss.Bytes()
	status, err := call(op, k.desc.Name, func() backend.Status {
		return k.m.Decaps(ssb, ctb, skb)
	})
	runtime.KeepAlive(skv)
	runtime.KeepAlive(ctv)
	if err != nil || status != backend.StatusSuccess {
		ss.Destroy()
		return nil, failure(k.log, op, k.desc.Name, status, err)
	}
	return ss, nil
}

// Free releases the native object. Later calls on k are invalid.
func (k *KEM) Free() {
	if k.m == nil {
		return
	}
	k.m.Free()
	k.m = nil
	k.log.Debug(context.Background(), "kem freed")
}
