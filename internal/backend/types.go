package backend

import (
	"errors"
	"fmt"
)

// Status mirrors OQS_STATUS.
type Status int

// Status codes matching liboqs.
const (
	StatusSuccess          Status = 0
	StatusError            Status = -1
	StatusExternalLibError Status = 50
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "OQS_SUCCESS"
	case StatusError:
		return "OQS_ERROR"
	case StatusExternalLibError:
		return "OQS_EXTERNAL_LIB_ERROR_OPENSSL"
	default:
		return fmt.Sprintf("OQS_STATUS(%d)", int(s))
	}
}

var (
	// ErrNotBuilt reports that the requested provider was not linked into the
	// current binary.
	ErrNotBuilt = errors.New("oqs/internal/backend: provider not built")

	// ErrDisabled reports that the provider does not offer the algorithm.
	ErrDisabled = errors.New("oqs/internal/backend: algorithm disabled")
)

// KEMLengths are the sizes a provider reports for a KEM algorithm.
type KEMLengths struct {
	PublicKey    int
	SecretKey    int
	Ciphertext   int
	SharedSecret int
}

// SigLengths are the sizes a provider reports for a signature algorithm.
type SigLengths struct {
	PublicKey       int
	SecretKey       int
	MaxSignature    int
	SupportsContext bool
}

// KEMMethod is a native KEM object bound to one algorithm.
//
// Output buffers are sized by the caller to exactly the reported lengths.
type KEMMethod interface {
	Lengths() KEMLengths
	Keypair(pk, sk []byte) Status
	Encaps(ct, ss, pk []byte) Status
	Decaps(ss, ct, sk []byte) Status
	Free()
}

// SigMethod is a native signature object bound to one algorithm.
//
// sig is sized to MaxSignature; Sign reports how many bytes were written.
// Verify returns StatusError when the signature is rejected.
type SigMethod interface {
	Lengths() SigLengths
	Keypair(pk, sk []byte) Status
	Sign(sig, msg, sk []byte) (int, Status)
	SignWithContext(sig, msg, ctx, sk []byte) (int, Status)
	Verify(msg, sig, pk []byte) Status
	VerifyWithContext(msg, sig, ctx, pk []byte) Status
	Free()
}

// Provider is one native post-quantum library.
type Provider interface {
	Name() string
	Version() string
	KEMEnabled(alg string) bool
	SigEnabled(alg string) bool
	NewKEM(alg string) (KEMMethod, error)
	NewSig(alg string) (SigMethod, error)
}
