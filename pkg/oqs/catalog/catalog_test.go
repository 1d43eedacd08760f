package catalog_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs"
	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs/catalog"
)

func TestTableIsWellFormed(t *testing.T) {
	seen := map[string]catalog.ID{}
	for _, f := range []catalog.Family{catalog.FamilyKEM, catalog.FamilySig} {
		require.Positive(t, catalog.Count(f))
		for i := range catalog.Count(f) {
			id, err := catalog.IdentifierAt(f, i)
			require.NoError(t, err)
			require.Equal(t, f, id.Family())

			name := id.String()
			prev, dup := seen[name]
			require.Falsef(t, dup, "%s used by %d and %d", name, prev, id)
			seen[name] = id

			d, err := catalog.Describe(id)
			require.NoError(t, err)
			require.Equal(t, id, d.Algorithm())
			require.Equal(t, f, d.Family())
			require.Equal(t, name, d.String())
		}
	}
}

func TestKEMDescriptors(t *testing.T) {
	for _, id := range catalog.All(catalog.FamilyKEM) {
		d, err := catalog.DescribeKEM(id)
		require.NoError(t, err)
		require.Positive(t, d.PublicKeyLen, d.Name)
		require.Positive(t, d.SecretKeyLen, d.Name)
		require.Positive(t, d.CiphertextLen, d.Name)
		require.Positive(t, d.SharedSecretLen, d.Name)
		require.Contains(t, []int{1, 2, 3, 4, 5}, d.ClaimedNISTLevel, d.Name)
	}

	d, err := catalog.DescribeKEM(catalog.MLKEM768)
	require.NoError(t, err)
	require.Equal(t, "ML-KEM-768", d.Name)
	require.Equal(t, 1184, d.PublicKeyLen)
	require.Equal(t, 2400, d.SecretKeyLen)
	require.Equal(t, 1088, d.CiphertextLen)
	require.Equal(t, 32, d.SharedSecretLen)
	require.Equal(t, 3, d.ClaimedNISTLevel)
	require.True(t, d.IndCCA)

	bike, err := catalog.DescribeKEM(catalog.BIKEL1)
	require.NoError(t, err)
	require.False(t, bike.IndCCA)
}

func TestSigDescriptors(t *testing.T) {
	for _, id := range catalog.All(catalog.FamilySig) {
		d, err := catalog.DescribeSig(id)
		require.NoError(t, err)
		require.Positive(t, d.PublicKeyLen, d.Name)
		require.Positive(t, d.SecretKeyLen, d.Name)
		require.Positive(t, d.MaxSignatureLen, d.Name)
		require.True(t, d.EUFCMA, d.Name)
	}

	d, err := catalog.DescribeSig(catalog.MLDSA44)
	require.NoError(t, err)
	require.True(t, d.SupportsContext)
	require.Equal(t, 2420, d.MaxSignatureLen)

	d, err = catalog.DescribeSig(catalog.Falcon512)
	require.NoError(t, err)
	require.False(t, d.SupportsContext)
	require.Equal(t, 1, d.ClaimedNISTLevel)
}

func TestFamiliesAreDisjoint(t *testing.T) {
	_, err := catalog.DescribeKEM(catalog.MLDSA65)
	require.ErrorIs(t, err, oqs.ErrUnsupportedAlgorithm)

	_, err = catalog.DescribeSig(catalog.MLKEM512)
	require.ErrorIs(t, err, oqs.ErrUnsupportedAlgorithm)

	_, err = catalog.Lookup(catalog.FamilySig, "ML-KEM-512")
	require.ErrorIs(t, err, oqs.ErrUnsupportedAlgorithm)
}

func TestUnknownID(t *testing.T) {
	for _, id := range []catalog.ID{catalog.Invalid, 0x00ff, 0xffff} {
		require.False(t, id.Known())
		require.Equal(t, catalog.Family(0), id.Family())
		require.False(t, catalog.IsEnabled(id))

		_, err := catalog.Describe(id)
		require.ErrorIs(t, err, oqs.ErrUnsupportedAlgorithm)
		require.Equal(t, oqs.KindUnsupportedAlgorithm, oqs.KindOf(err))
	}
}

func TestIdentifierAtOutOfRange(t *testing.T) {
	_, err := catalog.IdentifierAt(catalog.FamilyKEM, -1)
	require.ErrorIs(t, err, oqs.ErrUnsupportedAlgorithm)

	_, err = catalog.IdentifierAt(catalog.FamilySig, catalog.Count(catalog.FamilySig))
	require.ErrorIs(t, err, oqs.ErrUnsupportedAlgorithm)

	_, err = catalog.IdentifierAt(catalog.Family(9), 0)
	require.ErrorIs(t, err, oqs.ErrUnsupportedAlgorithm)
}

func TestLookup(t *testing.T) {
	id, err := catalog.Lookup(catalog.FamilyKEM, "Kyber1024")
	require.NoError(t, err)
	require.Equal(t, catalog.Kyber1024, id)

	id, err = catalog.Lookup(catalog.FamilySig, "SPHINCS+-SHAKE-256s-simple")
	require.NoError(t, err)
	require.Equal(t, catalog.SPHINCSSHAKE256sSimple, id)

	for _, name := range []string{"ml-kem-768", "ML-KEM-768 ", "", "NotARealKEM"} {
		_, err := catalog.Lookup(catalog.FamilyKEM, name)
		require.Truef(t, errors.Is(err, oqs.ErrUnsupportedAlgorithm), "%q", name)
	}
}

func TestEnabledMatchesIsEnabled(t *testing.T) {
	for _, f := range []catalog.Family{catalog.FamilyKEM, catalog.FamilySig} {
		enabled := catalog.Enabled(f)
		for _, id := range enabled {
			require.True(t, catalog.IsEnabled(id))
		}
		require.LessOrEqual(t, len(enabled), catalog.Count(f))
	}

	// Both bundled providers implement ML-KEM and ML-DSA.
	require.True(t, catalog.IsEnabled(catalog.MLKEM768))
	require.True(t, catalog.IsEnabled(catalog.MLDSA65))
}

func TestIsEnabledIn(t *testing.T) {
	lib, err := oqs.Open(oqs.Config{Backend: oqs.BackendCircl})
	require.NoError(t, err)

	require.True(t, catalog.IsEnabledIn(lib, catalog.MLKEM512))
	require.True(t, catalog.IsEnabledIn(lib, catalog.FrodoKEM640SHAKE))
	require.False(t, catalog.IsEnabledIn(lib, catalog.FrodoKEM640AES))
	require.False(t, catalog.IsEnabledIn(lib, catalog.Falcon512))
	require.False(t, catalog.IsEnabledIn(lib, catalog.Invalid))
}
