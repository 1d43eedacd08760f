package buffer

import (
	"fmt"

	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs"
	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs/catalog"
)

// Role is the purpose of a byte buffer. It fixes the buffer's length for a
// given algorithm and whether its storage is secret.
type Role uint8

const (
	RolePublicKey Role = iota + 1
	RoleSecretKey
	RoleCiphertext
	RoleSharedSecret
	RoleSignature
	RoleMessage
	RoleContext
)

func (r Role) String() string {
	switch r {
	case RolePublicKey:
		return "public key"
	case RoleSecretKey:
		return "secret key"
	case RoleCiphertext:
		return "ciphertext"
	case RoleSharedSecret:
		return "shared secret"
	case RoleSignature:
		return "signature"
	case RoleMessage:
		return "message"
	case RoleContext:
		return "context"
	default:
		return fmt.Sprintf("Role(%d)", uint8(r))
	}
}

// Secret reports whether storage of this role is wiped on destruction.
func (r Role) Secret() bool {
	return r == RoleSecretKey || r == RoleSharedSecret
}

// Tag is implemented by the zero-size types that name a role at compile time.
// A secret key cannot be passed where a public key is expected.
type Tag interface {
	Role() Role
}

type (
	PublicKeyTag    struct{}
	SecretKeyTag    struct{}
	CiphertextTag   struct{}
	SharedSecretTag struct{}
	SignatureTag    struct{}
	MessageTag      struct{}
	ContextTag      struct{}
)

func (PublicKeyTag) Role() Role    { return RolePublicKey }
func (SecretKeyTag) Role() Role    { return RoleSecretKey }
func (CiphertextTag) Role() Role   { return RoleCiphertext }
func (SharedSecretTag) Role() Role { return RoleSharedSecret }
func (SignatureTag) Role() Role    { return RoleSignature }
func (MessageTag) Role() Role      { return RoleMessage }
func (ContextTag) Role() Role      { return RoleContext }

func roleOf[T Tag]() Role {
	var t T
	return t.Role()
}

// bound is the length rule for one (role, algorithm) pair.
type bound struct {
	n     int
	upTo  bool // n is a maximum rather than an exact length
	unset bool // any length is accepted
}

func (b bound) admits(got int) bool {
	switch {
	case b.unset:
		return true
	case b.upTo:
		return got <= b.n
	default:
		return got == b.n
	}
}

// capacity is the storage size to allocate before the true length is known.
func (b bound) capacity() int {
	if b.unset {
		return 0
	}
	return b.n
}

// boundFor resolves the length rule, failing when the role does not exist in
// the ID's family or the ID is unknown.
func boundFor(op string, r Role, id catalog.ID) (bound, error) {
	switch r {
	case RoleMessage, RoleContext:
		if id == catalog.Invalid || id.Family() == catalog.FamilySig {
			return bound{unset: true}, nil
		}
		return bound{}, oqs.UnsupportedAlgorithm(op, id.String(), fmt.Errorf("no %s role for %s", r, id.Family()))
	}

	switch id.Family() {
	case catalog.FamilyKEM:
		d, err := catalog.DescribeKEM(id)
		if err != nil {
			return bound{}, err
		}
		switch r {
		case RolePublicKey:
			return bound{n: d.PublicKeyLen}, nil
		case RoleSecretKey:
			return bound{n: d.SecretKeyLen}, nil
		case RoleCiphertext:
			return bound{n: d.CiphertextLen}, nil
		case RoleSharedSecret:
			return bound{n: d.SharedSecretLen}, nil
		}
	case catalog.FamilySig:
		d, err := catalog.DescribeSig(id)
		if err != nil {
			return bound{}, err
		}
		switch r {
		case RolePublicKey:
			return bound{n: d.PublicKeyLen}, nil
		case RoleSecretKey:
			return bound{n: d.SecretKeyLen}, nil
		case RoleSignature:
			return bound{n: d.MaxSignatureLen, upTo: true}, nil
		}
	default:
		return bound{}, oqs.UnsupportedAlgorithm(op, id.String(), nil)
	}
	return bound{}, oqs.UnsupportedAlgorithm(op, id.String(), fmt.Errorf("no %s role for %s", r, id.Family()))
}

// Length returns the byte length a buffer of role r must have for id. For
// signatures it is the maximum; for messages and contexts it is -1.
func Length(r Role, id catalog.ID) (int, error) {
	b, err := boundFor("buffer.Length", r, id)
	if err != nil {
		return 0, err
	}
	if b.unset {
		return -1, nil
	}
	return b.n, nil
}

// CheckLength validates got against the length rule for (r, id).
func CheckLength(op string, r Role, id catalog.ID, got int) error {
	b, err := boundFor(op, r, id)
	if err != nil {
		return err
	}
	if !b.admits(got) {
		return oqs.InvalidLength(op, id.String(), r.String(), got, b.n)
	}
	return nil
}
