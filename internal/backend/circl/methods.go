package circl

import (
	"github.com/cloudflare/circl/kem"
	"github.com/cloudflare/circl/sign"

	"github.com/hsiuhsiu/oqs-safe-go/internal/backend"
	"github.com/hsiuhsiu/oqs-safe-go/internal/zeroize"
)

type kemMethod struct {
	scheme kem.Scheme
}

func (m *kemMethod) Lengths() backend.KEMLengths {
	return backend.KEMLengths{
		PublicKey:    m.scheme.PublicKeySize(),
		SecretKey:    m.scheme.PrivateKeySize(),
		Ciphertext:   m.scheme.CiphertextSize(),
		SharedSecret: m.scheme.SharedKeySize(),
	}
}

func (m *kemMethod) Keypair(pk, sk []byte) backend.Status {
	pub, priv, err := m.scheme.GenerateKeyPair()
	if err != nil {
		return backend.StatusError
	}
	pkBytes, err := pub.MarshalBinary()
	if err != nil {
		return backend.StatusError
	}
	skBytes, err := priv.MarshalBinary()
	defer zeroize.Bytes(skBytes)
	if err != nil {
		return backend.StatusError
	}
	if len(pkBytes) != len(pk) || len(skBytes) != len(sk) {
		return backend.StatusError
	}
	copy(pk, pkBytes)
	copy(sk, skBytes)
	return backend.StatusSuccess
}

func (m *kemMethod) Encaps(ct, ss, pk []byte) backend.Status {
	pub, err := m.scheme.UnmarshalBinaryPublicKey(pk)
	if err != nil {
		return backend.StatusError
	}
	ctBytes, ssBytes, err := m.scheme.Encapsulate(pub)
	defer zeroize.Bytes(ssBytes)
	if err != nil {
		return backend.StatusError
	}
	if len(ctBytes) != len(ct) || len(ssBytes) != len(ss) {
		return backend.StatusError
	}
	copy(ct, ctBytes)
	copy(ss, ssBytes)
	return backend.StatusSuccess
}

func (m *kemMethod) Decaps(ss, ct, sk []byte) backend.Status {
	priv, err := m.scheme.UnmarshalBinaryPrivateKey(sk)
	if err != nil {
		return backend.StatusError
	}
	ssBytes, err := m.scheme.Decapsulate(priv, ct)
	defer zeroize.Bytes(ssBytes)
	if err != nil || len(ssBytes) != len(ss) {
		return backend.StatusError
	}
	copy(ss, ssBytes)
	return backend.StatusSuccess
}

func (m *kemMethod) Free() {}

type sigMethod struct {
	scheme sign.Scheme
}

func (m *sigMethod) supportsContext() bool {
	c, ok := m.scheme.(interface{ SupportsContext() bool })
	return ok && c.SupportsContext()
}

func (m *sigMethod) Lengths() backend.SigLengths {
	return backend.SigLengths{
		PublicKey:       m.scheme.PublicKeySize(),
		SecretKey:       m.scheme.PrivateKeySize(),
		MaxSignature:    m.scheme.SignatureSize(),
		SupportsContext: m.supportsContext(),
	}
}

func (m *sigMethod) Keypair(pk, sk []byte) backend.Status {
	pub, priv, err := m.scheme.GenerateKey()
	if err != nil {
		return backend.StatusError
	}
	pkBytes, err := pub.MarshalBinary()
	if err != nil {
		return backend.StatusError
	}
	skBytes, err := priv.MarshalBinary()
	defer zeroize.Bytes(skBytes)
	if err != nil {
		return backend.StatusError
	}
	if len(pkBytes) != len(pk) || len(skBytes) != len(sk) {
		return backend.StatusError
	}
	copy(pk, pkBytes)
	copy(sk, skBytes)
	return backend.StatusSuccess
}

func (m *sigMethod) Sign(sig, msg, sk []byte) (int, backend.Status) {
	return m.sign(sig, msg, nil, sk)
}

func (m *sigMethod) SignWithContext(sig, msg, ctx, sk []byte) (int, backend.Status) {
	if len(ctx) > 0 && !m.supportsContext() {
		return 0, backend.StatusError
	}
	return m.sign(sig, msg, ctx, sk)
}

func (m *sigMethod) sign(sig, msg, ctx, sk []byte) (int, backend.Status) {
	priv, err := m.scheme.UnmarshalBinaryPrivateKey(sk)
	if err != nil {
		return 0, backend.StatusError
	}
	out := m.scheme.Sign(priv, msg, opts(ctx))
	if len(out) == 0 || len(out) > len(sig) {
		return 0, backend.StatusError
	}
	return copy(sig, out), backend.StatusSuccess
}

func (m *sigMethod) Verify(msg, sig, pk []byte) backend.Status {
	return m.verify(msg, sig, nil, pk)
}

func (m *sigMethod) VerifyWithContext(msg, sig, ctx, pk []byte) backend.Status {
	if len(ctx) > 0 && !m.supportsContext() {
		return backend.StatusError
	}
	return m.verify(msg, sig, ctx, pk)
}

func (m *sigMethod) verify(msg, sig, ctx, pk []byte) backend.Status {
	pub, err := m.scheme.UnmarshalBinaryPublicKey(pk)
	if err != nil {
		return backend.StatusError
	}
	if !m.scheme.Verify(pub, msg, sig, opts(ctx)) {
		return backend.StatusError
	}
	return backend.StatusSuccess
}

func (m *sigMethod) Free() {}

func opts(ctx []byte) *sign.SignatureOpts {
	if len(ctx) == 0 {
		return nil
	}
	return &sign.SignatureOpts{Context: string(ctx)}
}
