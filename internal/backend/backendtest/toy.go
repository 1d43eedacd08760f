// Package backendtest provides a deterministic toy provider for tests.
//
// WARNING: the toy schemes have no security at all. Public keys embed the
// secret seed. They exist so handle tests can cover every catalog algorithm,
// inject native failures, and count native calls without liboqs.
package backendtest

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"golang.org/x/crypto/sha3"

	"github.com/hsiuhsiu/oqs-safe-go/internal/backend"
	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs"
	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs/catalog"
	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs/logging"
)

const seedLen = 32

// Op names a native entry point.
type Op int

const (
	OpKeypair Op = iota
	OpEncaps
	OpDecaps
	OpSign
	OpVerify
	numOps
)

// Option configures a Provider.
type Option func(*Provider)

// WithDisabled reports the named algorithms as not compiled in.
func WithDisabled(algs ...string) Option {
	return func(p *Provider) {
		for _, a := range algs {
			p.disabled[a] = true
		}
	}
}

// WithStatus makes every call to op return status without touching outputs.
func WithStatus(op Op, status backend.Status) Option {
	return func(p *Provider) { p.status[op] = status }
}

// WithScribble makes every call to op fill its output buffers with 0x5a and
// then return status. The outputs are recorded for Scribbled.
func WithScribble(op Op, status backend.Status) Option {
	return func(p *Provider) { p.scribble[op] = status }
}

// WithDuring runs fn inside every call to op, after the call is counted and
// before any input is read.
func WithDuring(op Op, fn func()) Option {
	return func(p *Provider) { p.during[op] = fn }
}

// WithPanic makes every call to op panic.
func WithPanic(op Op) Option {
	return func(p *Provider) { p.panics[op] = true }
}

// WithLengthDelta makes alg report a public key length off by delta.
func WithLengthDelta(alg string, delta int) Option {
	return func(p *Provider) { p.delta[alg] = delta }
}

// WithSignatureLength makes every produced signature n bytes long,
// regardless of the buffer offered.
func WithSignatureLength(n int) Option {
	return func(p *Provider) { p.sigLen = n }
}

// Provider is a backend.Provider implementing every catalog algorithm with
// toy constructions sized from the catalog.
type Provider struct {
	name     string
	disabled map[string]bool
	status   map[Op]backend.Status
	panics   map[Op]bool
	delta    map[string]int
	scribble map[Op]backend.Status
	during   map[Op]func()
	sigLen   int

	calls [numOps]atomic.Int64
	freed atomic.Int64

	mu        sync.Mutex
	scribbled map[Op][][]byte
}

var _ backend.Provider = (*Provider)(nil)

var seq atomic.Int64

// New returns an unregistered provider.
func New(opts ...Option) *Provider {
	p := &Provider{
		name:     fmt.Sprintf("toy-%d", seq.Add(1)),
		disabled: map[string]bool{},
		status:   map[Op]backend.Status{},
		panics:   map[Op]bool{},
		delta:    map[string]int{},
		scribble: map[Op]backend.Status{},
		during:   map[Op]func(){},

		scribbled: map[Op][][]byte{},
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Open registers a new provider under a unique name and opens a library bound
// to it with a discarding logger.
func Open(tb testing.TB, opts ...Option) (*Provider, *oqs.Library) {
	tb.Helper()
	p := New(opts...)
	backend.Register(p)

	lib, err := oqs.Open(oqs.Config{Backend: p.name, Logger: logging.Discard()})
	if err != nil {
		tb.Fatalf("backendtest: open %s: %v", p.name, err)
	}
	return p, lib
}

// Calls returns how many times op reached the provider.
func (p *Provider) Calls(op Op) int { return int(p.calls[op].Load()) }

// Scribbled returns the output buffers op wrote before failing, in call
// order and argument order. The slices alias the caller's storage.
func (p *Provider) Scribbled(op Op) [][]byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([][]byte(nil), p.scribbled[op]...)
}

// Freed returns how many method objects have been freed.
func (p *Provider) Freed() int { return int(p.freed.Load()) }

func (p *Provider) Name() string    { return p.name }
func (p *Provider) Version() string { return "toy 0" }

func (p *Provider) KEMEnabled(alg string) bool {
	_, err := catalog.Lookup(catalog.FamilyKEM, alg)
	return err == nil && !p.disabled[alg]
}

func (p *Provider) SigEnabled(alg string) bool {
	_, err := catalog.Lookup(catalog.FamilySig, alg)
	return err == nil && !p.disabled[alg]
}

func (p *Provider) NewKEM(alg string) (backend.KEMMethod, error) {
	if !p.KEMEnabled(alg) {
		return nil, fmt.Errorf("%w: %s", backend.ErrDisabled, alg)
	}
	id, _ := catalog.Lookup(catalog.FamilyKEM, alg)
	d, _ := catalog.DescribeKEM(id)
	return &kemMethod{p: p, d: d}, nil
}

func (p *Provider) NewSig(alg string) (backend.SigMethod, error) {
	if !p.SigEnabled(alg) {
		return nil, fmt.Errorf("%w: %s", backend.ErrDisabled, alg)
	}
	id, _ := catalog.Lookup(catalog.FamilySig, alg)
	d, _ := catalog.DescribeSig(id)
	return &sigMethod{p: p, d: d}, nil
}

// enter counts the call and applies injected behaviour to the outputs of op.
// A non-success status means the method must return it immediately.
func (p *Provider) enter(op Op, outs ...[]byte) backend.Status {
	p.calls[op].Add(1)
	if fn := p.during[op]; fn != nil {
		fn()
	}
	if p.panics[op] {
		panic(fmt.Sprintf("backendtest: injected panic in op %d", op))
	}
	if s, ok := p.scribble[op]; ok {
		p.mu.Lock()
		for _, out := range outs {
			for i := range out {
				out[i] = 0x5a
			}
			p.scribbled[op] = append(p.scribbled[op], out)
		}
		p.mu.Unlock()
		return s
	}
	if s, ok := p.status[op]; ok {
		return s
	}
	return backend.StatusSuccess
}

// expand fills out with SHAKE256 over the labelled inputs.
func expand(out []byte, label string, parts ...[]byte) {
	h := sha3.NewShake256()
	_, _ = h.Write([]byte(label))
	for _, part := range parts {
		var n [2]byte
		n[0], n[1] = byte(len(part)>>8), byte(len(part))
		_, _ = h.Write(n[:])
		_, _ = h.Write(part)
	}
	_, _ = h.Read(out)
}

func keypair(pk, sk []byte) backend.Status {
	if len(pk) < seedLen || len(sk) < seedLen {
		return backend.StatusError
	}
	if _, err := rand.Read(sk[:seedLen]); err != nil {
		return backend.StatusExternalLibError
	}
	expand(sk[seedLen:], "sk", sk[:seedLen])
	copy(pk, sk[:seedLen])
	expand(pk[seedLen:], "pk", sk[:seedLen])
	return backend.StatusSuccess
}

type kemMethod struct {
	p *Provider
	d catalog.KEMDescriptor
}

func (m *kemMethod) Lengths() backend.KEMLengths {
	return backend.KEMLengths{
		PublicKey:    m.d.PublicKeyLen + m.p.delta[m.d.Name],
		SecretKey:    m.d.SecretKeyLen,
		Ciphertext:   m.d.CiphertextLen,
		SharedSecret: m.d.SharedSecretLen,
	}
}

func (m *kemMethod) Keypair(pk, sk []byte) backend.Status {
	if s := m.p.enter(OpKeypair, pk, sk); s != backend.StatusSuccess {
		return s
	}
	return keypair(pk, sk)
}

func (m *kemMethod) Encaps(ct, ss, pk []byte) backend.Status {
	if s := m.p.enter(OpEncaps, ct, ss); s != backend.StatusSuccess {
		return s
	}
	if _, err := rand.Read(ct[:seedLen]); err != nil {
		return backend.StatusExternalLibError
	}
	expand(ct[seedLen:], "ct", ct[:seedLen])
	expand(ss, "ss", pk[:seedLen], ct[:seedLen])
	return backend.StatusSuccess
}

// Decaps derives the same secret Encaps did. A tampered ciphertext yields a
// different secret rather than an error, as implicit rejection does.
func (m *kemMethod) Decaps(ss, ct, sk []byte) backend.Status {
	if s := m.p.enter(OpDecaps, ss); s != backend.StatusSuccess {
		return s
	}
	expand(ss, "ss", sk[:seedLen], ct[:seedLen])
	return backend.StatusSuccess
}

func (m *kemMethod) Free() { m.p.freed.Add(1) }

type sigMethod struct {
	p *Provider
	d catalog.SigDescriptor
}

func (m *sigMethod) Lengths() backend.SigLengths {
	return backend.SigLengths{
		PublicKey:       m.d.PublicKeyLen + m.p.delta[m.d.Name],
		SecretKey:       m.d.SecretKeyLen,
		MaxSignature:    m.d.MaxSignatureLen,
		SupportsContext: m.d.SupportsContext,
	}
}

func (m *sigMethod) Keypair(pk, sk []byte) backend.Status {
	if s := m.p.enter(OpKeypair, pk, sk); s != backend.StatusSuccess {
		return s
	}
	return keypair(pk, sk)
}

// sigLen varies with the message so callers see short signatures.
func (m *sigMethod) sigLen(msg []byte) int {
	if m.p.sigLen != 0 {
		return m.p.sigLen
	}
	return m.d.MaxSignatureLen - len(msg)%7
}

func (m *sigMethod) Sign(sig, msg, sk []byte) (int, backend.Status) {
	return m.SignWithContext(sig, msg, nil, sk)
}

func (m *sigMethod) SignWithContext(sig, msg, ctx, sk []byte) (int, backend.Status) {
	if s := m.p.enter(OpSign, sig); s != backend.StatusSuccess {
		return 0, s
	}
	if len(ctx) > 0 && !m.d.SupportsContext {
		return 0, backend.StatusError
	}
	n := m.sigLen(msg)
	if n > len(sig) {
		return n, backend.StatusSuccess
	}
	expand(sig[:n], "sig", sk[:seedLen], ctx, msg)
	return n, backend.StatusSuccess
}

func (m *sigMethod) Verify(msg, sig, pk []byte) backend.Status {
	return m.VerifyWithContext(msg, sig, nil, pk)
}

func (m *sigMethod) VerifyWithContext(msg, sig, ctx, pk []byte) backend.Status {
	if s := m.p.enter(OpVerify); s != backend.StatusSuccess {
		return s
	}
	if len(ctx) > 0 && !m.d.SupportsContext {
		return backend.StatusError
	}
	n := m.sigLen(msg)
	if len(sig) != n {
		return backend.StatusError
	}
	want := make([]byte, n)
	expand(want, "sig", pk[:seedLen], ctx, msg)
	if subtle.ConstantTimeCompare(want, sig) != 1 {
		return backend.StatusError
	}
	return backend.StatusSuccess
}

func (m *sigMethod) Free() { m.p.freed.Add(1) }
