package oqs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hsiuhsiu/oqs-safe-go/internal/backend"
)

// Kind classifies every failure an operation of this module can report. The
// set is closed.
type Kind uint8

const (
	// KindUnknown is returned by KindOf for errors not produced here.
	KindUnknown Kind = iota
	// KindUnsupportedAlgorithm: unknown, disabled, or wrong-family algorithm,
	// or a buffer bound to a different algorithm than the handle.
	KindUnsupportedAlgorithm
	// KindInvalidLength: a caller-supplied buffer does not have the length
	// declared for its role and algorithm.
	KindInvalidLength
	// KindUnsupportedFeature: context-string signing on an algorithm that
	// does not support it.
	KindUnsupportedFeature
	// KindCryptoFailure: the native library reported an internal failure.
	KindCryptoFailure
	// KindVerificationFailed: a signature was cryptographically rejected.
	KindVerificationFailed
)

func (k Kind) String() string {
	switch k {
	case KindUnsupportedAlgorithm:
		return "unsupported algorithm"
	case KindInvalidLength:
		return "invalid length"
	case KindUnsupportedFeature:
		return "unsupported feature"
	case KindCryptoFailure:
		return "crypto failure"
	case KindVerificationFailed:
		return "verification failed"
	default:
		return "unknown"
	}
}

var (
	// ErrUnsupportedAlgorithm matches errors of KindUnsupportedAlgorithm.
	ErrUnsupportedAlgorithm = errors.New("oqs: unsupported algorithm")
	// ErrInvalidLength matches errors of KindInvalidLength.
	ErrInvalidLength = errors.New("oqs: invalid length")
	// ErrUnsupportedFeature matches errors of KindUnsupportedFeature.
	ErrUnsupportedFeature = errors.New("oqs: unsupported feature")
	// ErrCryptoFailure matches errors of KindCryptoFailure.
	ErrCryptoFailure = errors.New("oqs: crypto failure")
	// ErrVerificationFailed matches errors of KindVerificationFailed.
	ErrVerificationFailed = errors.New("oqs: verification failed")

	// ErrNotBuilt reports that the requested native provider was not linked
	// into the current binary. It is a configuration error returned by Open,
	// never by an operation.
	ErrNotBuilt = backend.ErrNotBuilt
)

func (k Kind) sentinel() error {
	switch k {
	case KindUnsupportedAlgorithm:
		return ErrUnsupportedAlgorithm
	case KindInvalidLength:
		return ErrInvalidLength
	case KindUnsupportedFeature:
		return ErrUnsupportedFeature
	case KindCryptoFailure:
		return ErrCryptoFailure
	case KindVerificationFailed:
		return ErrVerificationFailed
	default:
		return nil
	}
}

// Error is the typed failure returned by catalog, buffer, kem and sig
// operations. Fields other than Kind and Op are set where they apply.
type Error struct {
	Kind      Kind
	Op        string // operation that failed, e.g. "kem.Encapsulate"
	Algorithm string // canonical algorithm name
	Role      string // buffer role for length and binding errors
	Length    int    // length encountered
	Expected  int    // length required; for signatures, the maximum
	Status    int    // native status code for crypto failures
	Err       error  // optional cause
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("oqs: ")
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.String())
	if e.Algorithm != "" {
		fmt.Fprintf(&b, " (%s)", e.Algorithm)
	}
	switch e.Kind {
	case KindInvalidLength:
		if e.Role == "signature" {
			fmt.Fprintf(&b, ": %s is %d bytes, want at most %d", e.Role, e.Length, e.Expected)
		} else {
			fmt.Fprintf(&b, ": %s is %d bytes, want %d", e.Role, e.Length, e.Expected)
		}
	case KindCryptoFailure:
		if e.Status != 0 {
			fmt.Fprintf(&b, ": %s", backend.Status(e.Status))
		}
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap exposes the kind sentinel and the cause so errors.Is matches both.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// KindOf reports the Kind of err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	for _, k := range []Kind{
		KindUnsupportedAlgorithm,
		KindInvalidLength,
		KindUnsupportedFeature,
		KindCryptoFailure,
		KindVerificationFailed,
	} {
		if errors.Is(err, k.sentinel()) {
			return k
		}
	}
	return KindUnknown
}

// UnsupportedAlgorithm builds a KindUnsupportedAlgorithm error. It is exported
// for use by the subpackages of this module.
func UnsupportedAlgorithm(op, alg string, cause error) error {
	return &Error{Kind: KindUnsupportedAlgorithm, Op: op, Algorithm: alg, Err: cause}
}

// InvalidLength builds a KindInvalidLength error.
func InvalidLength(op, alg, role string, got, want int) error {
	return &Error{Kind: KindInvalidLength, Op: op, Algorithm: alg, Role: role, Length: got, Expected: want}
}

// UnsupportedFeature builds a KindUnsupportedFeature error.
func UnsupportedFeature(op, alg string, cause error) error {
	return &Error{Kind: KindUnsupportedFeature, Op: op, Algorithm: alg, Err: cause}
}

// CryptoFailure builds a KindCryptoFailure error.
func CryptoFailure(op, alg string, status backend.Status, cause error) error {
	return &Error{Kind: KindCryptoFailure, Op: op, Algorithm: alg, Status: int(status), Err: cause}
}

// VerificationFailed builds a KindVerificationFailed error.
func VerificationFailed(op, alg string) error {
	return &Error{Kind: KindVerificationFailed, Op: op, Algorithm: alg}
}
