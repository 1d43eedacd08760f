package oqs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/hsiuhsiu/oqs-safe-go/internal/backend"
	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs/logging"
)

func TestWrapperVersionDefault(t *testing.T) {
	if got := WrapperVersion(); got != "v0.0.0-in-progress" {
		t.Fatalf("expected development version, got %q", got)
	}
}

func TestUpstreamVersionNonEmpty(t *testing.T) {
	if UpstreamVersion() == "" {
		t.Fatal("expected a provider version")
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	lib, err := Open(Config{Backend: "nope"})
	if !errors.Is(err, ErrNotBuilt) {
		t.Fatalf("expected ErrNotBuilt, got %v", err)
	}
	if lib != nil {
		t.Fatalf("expected nil library, got %+v", lib)
	}
}

func TestOpenCircl(t *testing.T) {
	lib, err := Open(Config{Backend: BackendCircl})
	if err != nil {
		t.Fatalf("open circl: %v", err)
	}
	if lib.Backend() != BackendCircl {
		t.Fatalf("backend = %q", lib.Backend())
	}
	if !strings.HasPrefix(lib.Version(), "circl") {
		t.Fatalf("version = %q", lib.Version())
	}
	if lib.Logger() == nil {
		t.Fatal("nil logger after defaults")
	}
	if !lib.KEMEnabled("ML-KEM-768") || lib.KEMEnabled("BIKE-L1") {
		t.Fatal("unexpected circl KEM set")
	}
	if !lib.SigEnabled("ML-DSA-44") || lib.SigEnabled("Falcon-512") {
		t.Fatal("unexpected circl signature set")
	}
}

func TestDefaultIsStable(t *testing.T) {
	if Default() != Default() {
		t.Fatal("Default returned different libraries")
	}
	found := false
	for _, name := range Backends() {
		if name == Default().Backend() {
			found = true
		}
	}
	if !found {
		t.Fatalf("default backend %q not in %v", Default().Backend(), Backends())
	}
}

func TestErrorKinds(t *testing.T) {
	cases := []struct {
		err      error
		kind     Kind
		sentinel error
	}{
		{UnsupportedAlgorithm("kem.New", "Nope", nil), KindUnsupportedAlgorithm, ErrUnsupportedAlgorithm},
		{InvalidLength("kem.Decapsulate", "ML-KEM-512", "ciphertext", 767, 768), KindInvalidLength, ErrInvalidLength},
		{UnsupportedFeature("sig.SignWithContext", "Falcon-512", nil), KindUnsupportedFeature, ErrUnsupportedFeature},
		{CryptoFailure("kem.Encapsulate", "HQC-128", backend.StatusExternalLibError, nil), KindCryptoFailure, ErrCryptoFailure},
		{VerificationFailed("sig.Verify", "ML-DSA-44"), KindVerificationFailed, ErrVerificationFailed},
	}
	for _, tc := range cases {
		if got := KindOf(tc.err); got != tc.kind {
			t.Errorf("KindOf(%v) = %v, want %v", tc.err, got, tc.kind)
		}
		if !errors.Is(tc.err, tc.sentinel) {
			t.Errorf("%v does not match %v", tc.err, tc.sentinel)
		}
		wrapped := fmt.Errorf("outer: %w", tc.err)
		if KindOf(wrapped) != tc.kind {
			t.Errorf("kind lost through wrapping: %v", wrapped)
		}
	}
	if KindOf(errors.New("other")) != KindUnknown {
		t.Error("foreign error classified")
	}
	if KindOf(ErrVerificationFailed) != KindVerificationFailed {
		t.Error("bare sentinel not classified")
	}
}

func TestErrorMessages(t *testing.T) {
	got := InvalidLength("kem.Decapsulate", "ML-KEM-512", "ciphertext", 767, 768).Error()
	want := "oqs: kem.Decapsulate: invalid length (ML-KEM-512): ciphertext is 767 bytes, want 768"
	if got != want {
		t.Fatalf("got %q\nwant %q", got, want)
	}

	got = InvalidLength("sig.Verify", "Falcon-512", "signature", 800, 752).Error()
	if !strings.Contains(got, "want at most 752") {
		t.Fatalf("signature bound not described as a maximum: %q", got)
	}

	got = CryptoFailure("kem.Encapsulate", "HQC-128", backend.StatusError, nil).Error()
	if !strings.HasSuffix(got, "(HQC-128): OQS_ERROR") {
		t.Fatalf("status missing: %q", got)
	}
}

func TestErrorCause(t *testing.T) {
	cause := errors.New("disabled")
	err := UnsupportedAlgorithm("sig.New", "Falcon-512", cause)
	if !errors.Is(err, cause) || !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Fatalf("errors.Is must match both sentinel and cause: %v", err)
	}
}

func TestZeroizeBytes(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	ZeroizeBytes(b)
	if !bytes.Equal(b, make([]byte, 4)) {
		t.Fatalf("not zeroed: %v", b)
	}
	ZeroizeBytes(nil)
}

func TestConfigLogger(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(slog.New(slog.NewTextHandler(&buf, nil)))
	lib, err := Open(Config{Backend: BackendCircl, Logger: l})
	if err != nil {
		t.Fatal(err)
	}
	lib.Logger().Info(context.Background(), "hello", logging.Redacted("sk"))
	if !strings.Contains(buf.String(), "sk="+logging.Placeholder()) {
		t.Fatalf("unexpected log output %q", buf.String())
	}

}
