//go:build cgo && liboqs

package cgo_test

import (
	"testing"

	"github.com/open-quantum-safe/liboqs-go/oqs"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/oqs-safe-go/internal/backend"
	provider "github.com/hsiuhsiu/oqs-safe-go/internal/cgo"
	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs/catalog"
)

// TestCatalogMatchesLiboqsGo checks the static table against the details
// liboqs-go reads from the same shared library.
func TestCatalogMatchesLiboqsGo(t *testing.T) {
	for _, id := range catalog.All(catalog.FamilyKEM) {
		d, err := catalog.DescribeKEM(id)
		require.NoError(t, err)
		if !oqs.IsKEMEnabled(d.Name) {
			continue
		}
		var k oqs.KeyEncapsulation
		require.NoError(t, k.Init(d.Name, nil), d.Name)
		got := k.Details()
		k.Clean()

		require.Equal(t, d.PublicKeyLen, got.LengthPublicKey, d.Name)
		require.Equal(t, d.SecretKeyLen, got.LengthSecretKey, d.Name)
		require.Equal(t, d.CiphertextLen, got.LengthCiphertext, d.Name)
		require.Equal(t, d.SharedSecretLen, got.LengthSharedSecret, d.Name)
		require.Equal(t, d.ClaimedNISTLevel, got.ClaimedNISTLevel, d.Name)
		require.Equal(t, d.IndCCA, got.IsINDCCA, d.Name)
	}

	for _, id := range catalog.All(catalog.FamilySig) {
		d, err := catalog.DescribeSig(id)
		require.NoError(t, err)
		if !oqs.IsSigEnabled(d.Name) {
			continue
		}
		var s oqs.Signature
		require.NoError(t, s.Init(d.Name, nil), d.Name)
		got := s.Details()
		s.Clean()

		require.Equal(t, d.PublicKeyLen, got.LengthPublicKey, d.Name)
		require.Equal(t, d.SecretKeyLen, got.LengthSecretKey, d.Name)
		require.Equal(t, d.MaxSignatureLen, got.MaxLengthSignature, d.Name)
		require.Equal(t, d.ClaimedNISTLevel, got.ClaimedNISTLevel, d.Name)
		require.Equal(t, d.EUFCMA, got.IsEUFCMA, d.Name)
	}
}

func TestProviderAgreesWithLiboqsGo(t *testing.T) {
	p, err := backend.Lookup(provider.Name)
	require.NoError(t, err)
	require.Contains(t, p.Version(), "liboqs")

	for _, name := range oqs.EnabledKEMs() {
		require.True(t, p.KEMEnabled(name), name)
	}
	for _, name := range oqs.EnabledSigs() {
		require.True(t, p.SigEnabled(name), name)
	}
}

func TestKEMRoundTrip(t *testing.T) {
	p, err := backend.Lookup(provider.Name)
	require.NoError(t, err)
	if !p.KEMEnabled("ML-KEM-768") {
		t.Skip("ML-KEM-768 not compiled into liboqs")
	}
	m, err := p.NewKEM("ML-KEM-768")
	require.NoError(t, err)
	defer m.Free()

	l := m.Lengths()
	pk, sk := make([]byte, l.PublicKey), make([]byte, l.SecretKey)
	ct, ss1, ss2 := make([]byte, l.Ciphertext), make([]byte, l.SharedSecret), make([]byte, l.SharedSecret)

	require.Equal(t, backend.StatusSuccess, m.Keypair(pk, sk))
	require.Equal(t, backend.StatusSuccess, m.Encaps(ct, ss1, pk))
	require.Equal(t, backend.StatusSuccess, m.Decaps(ss2, ct, sk))
	require.Equal(t, ss1, ss2)
}

func TestSigContext(t *testing.T) {
	p, err := backend.Lookup(provider.Name)
	require.NoError(t, err)
	if !p.SigEnabled("ML-DSA-44") {
		t.Skip("ML-DSA-44 not compiled into liboqs")
	}
	m, err := p.NewSig("ML-DSA-44")
	require.NoError(t, err)
	defer m.Free()

	l := m.Lengths()
	require.True(t, l.SupportsContext)
	pk, sk := make([]byte, l.PublicKey), make([]byte, l.SecretKey)
	require.Equal(t, backend.StatusSuccess, m.Keypair(pk, sk))

	sig := make([]byte, l.MaxSignature)
	n, st := m.SignWithContext(sig, []byte("msg"), []byte("ctx"), sk)
	require.Equal(t, backend.StatusSuccess, st)
	require.Equal(t, backend.StatusSuccess, m.VerifyWithContext([]byte("msg"), sig[:n], []byte("ctx"), pk))
	require.Equal(t, backend.StatusError, m.VerifyWithContext([]byte("msg"), sig[:n], []byte("other"), pk))
}
