// Package catalog is the closed table of algorithms the wrapper knows about.
//
// Each identifier maps to a descriptor fixing the canonical liboqs name and
// the byte length of every buffer role. Whether the linked provider actually
// offers an algorithm is a separate, runtime question answered by IsEnabled.
package catalog

import (
	"fmt"

	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs"
)

// Family distinguishes key-encapsulation mechanisms from signature schemes.
type Family uint8

const (
	FamilyKEM Family = iota + 1
	FamilySig
)

func (f Family) String() string {
	switch f {
	case FamilyKEM:
		return "kem"
	case FamilySig:
		return "sig"
	default:
		return fmt.Sprintf("Family(%d)", uint8(f))
	}
}

// ID names one algorithm. KEM and signature identifiers never overlap.
type ID uint16

// Invalid is the zero ID; no descriptor exists for it.
const Invalid ID = 0

const (
	kemBase ID = 0x0001
	sigBase ID = 0x0100
)

// String returns the canonical liboqs name.
func (id ID) String() string {
	if d, ok := lookupKEM(id); ok {
		return d.Name
	}
	if d, ok := lookupSig(id); ok {
		return d.Name
	}
	return fmt.Sprintf("ID(%d)", uint16(id))
}

// Family reports the algorithm family, or zero for an unknown ID.
func (id ID) Family() Family {
	if _, ok := lookupKEM(id); ok {
		return FamilyKEM
	}
	if _, ok := lookupSig(id); ok {
		return FamilySig
	}
	return 0
}

// Known reports whether the ID has a descriptor.
func (id ID) Known() bool {
	return id.Family() != 0
}

// Descriptor is implemented by KEMDescriptor and SigDescriptor.
type Descriptor interface {
	Algorithm() ID
	Family() Family
	String() string
}

// KEMDescriptor holds the static facts about one KEM.
type KEMDescriptor struct {
	ID               ID
	Name             string
	ClaimedNISTLevel int
	IndCCA           bool

	PublicKeyLen    int
	SecretKeyLen    int
	CiphertextLen   int
	SharedSecretLen int
}

func (d KEMDescriptor) Algorithm() ID  { return d.ID }
func (d KEMDescriptor) Family() Family { return FamilyKEM }
func (d KEMDescriptor) String() string { return d.Name }

// SigDescriptor holds the static facts about one signature scheme.
// MaxSignatureLen is an upper bound; produced signatures may be shorter.
type SigDescriptor struct {
	ID               ID
	Name             string
	ClaimedNISTLevel int
	EUFCMA           bool

	PublicKeyLen    int
	SecretKeyLen    int
	MaxSignatureLen int
	SupportsContext bool
}

func (d SigDescriptor) Algorithm() ID  { return d.ID }
func (d SigDescriptor) Family() Family { return FamilySig }
func (d SigDescriptor) String() string { return d.Name }

func lookupKEM(id ID) (*KEMDescriptor, bool) {
	if id < kemBase || int(id-kemBase) >= len(kemTable) {
		return nil, false
	}
	return &kemTable[id-kemBase], true
}

func lookupSig(id ID) (*SigDescriptor, bool) {
	if id < sigBase || int(id-sigBase) >= len(sigTable) {
		return nil, false
	}
	return &sigTable[id-sigBase], true
}

// Count returns the number of algorithms in the family.
func Count(f Family) int {
	switch f {
	case FamilyKEM:
		return len(kemTable)
	case FamilySig:
		return len(sigTable)
	default:
		return 0
	}
}

// IdentifierAt returns the i-th identifier of the family in table order.
func IdentifierAt(f Family, i int) (ID, error) {
	if i < 0 || i >= Count(f) {
		return Invalid, oqs.UnsupportedAlgorithm("catalog.IdentifierAt", fmt.Sprintf("%s[%d]", f, i), nil)
	}
	if f == FamilyKEM {
		return kemTable[i].ID, nil
	}
	return sigTable[i].ID, nil
}

// All returns every identifier of the family in table order.
func All(f Family) []ID {
	ids := make([]ID, 0, Count(f))
	for i := range Count(f) {
		id, _ := IdentifierAt(f, i)
		ids = append(ids, id)
	}
	return ids
}

// IsEnabled asks the default library whether it offers the algorithm.
// Unknown IDs are never enabled.
func IsEnabled(id ID) bool {
	return IsEnabledIn(oqs.Default(), id)
}

// IsEnabledIn asks lib whether it offers the algorithm.
func IsEnabledIn(lib *oqs.Library, id ID) bool {
	switch id.Family() {
	case FamilyKEM:
		return lib.KEMEnabled(id.String())
	case FamilySig:
		return lib.SigEnabled(id.String())
	default:
		return false
	}
}

// Enabled returns the identifiers of the family that the default library
// offers, in table order.
func Enabled(f Family) []ID {
	lib := oqs.Default()
	var ids []ID
	for _, id := range All(f) {
		if IsEnabledIn(lib, id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// Describe returns the descriptor of any known ID.
func Describe(id ID) (Descriptor, error) {
	if d, ok := lookupKEM(id); ok {
		return *d, nil
	}
	if d, ok := lookupSig(id); ok {
		return *d, nil
	}
	return nil, oqs.UnsupportedAlgorithm("catalog.Describe", id.String(), nil)
}

// DescribeKEM returns the descriptor of a KEM ID.
func DescribeKEM(id ID) (KEMDescriptor, error) {
	d, ok := lookupKEM(id)
	if !ok {
		return KEMDescriptor{}, oqs.UnsupportedAlgorithm("catalog.DescribeKEM", id.String(), nil)
	}
	return *d, nil
}

// DescribeSig returns the descriptor of a signature ID.
func DescribeSig(id ID) (SigDescriptor, error) {
	d, ok := lookupSig(id)
	if !ok {
		return SigDescriptor{}, oqs.UnsupportedAlgorithm("catalog.DescribeSig", id.String(), nil)
	}
	return *d, nil
}

// Lookup resolves a canonical name within a family. Matching is exact and
// case-sensitive.
func Lookup(f Family, name string) (ID, error) {
	switch f {
	case FamilyKEM:
		for i := range kemTable {
			if kemTable[i].Name == name {
				return kemTable[i].ID, nil
			}
		}
	case FamilySig:
		for i := range sigTable {
			if sigTable[i].Name == name {
				return sigTable[i].ID, nil
			}
		}
	}
	return Invalid, oqs.UnsupportedAlgorithm("catalog.Lookup", name, nil)
}
