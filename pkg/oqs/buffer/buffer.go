package buffer

import (
	"crypto/subtle"
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"

	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs"
	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs/catalog"
	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs/logging"
)

// wipeHook observes zeroization in tests. Finalizers call wipe from the
// runtime's goroutine, so the hook is swapped atomically.
var wipeHook atomic.Pointer[func([]byte)]

func wipe(b []byte) {
	oqs.ZeroizeBytes(b)
	if h := wipeHook.Load(); h != nil {
		(*h)(b)
	}
}

// Owned is storage for one role of one algorithm. T fixes the role at compile
// time; the algorithm is checked at run time when the buffer is handed to a
// handle.
//
// An Owned buffer must not be copied after first use. Secret roles are wiped
// by Destroy; a finalizer wipes buffers that are dropped without it.
type Owned[T Tag] struct {
	_ noCopy

	alg       catalog.ID
	data      []byte
	destroyed atomic.Bool
}

// Aliases for the roles handles produce and consume.
type (
	PublicKey    = Owned[PublicKeyTag]
	SecretKey    = Owned[SecretKeyTag]
	Ciphertext   = Owned[CiphertextTag]
	SharedSecret = Owned[SharedSecretTag]
	Signature    = Owned[SignatureTag]
)

func newOwned[T Tag](id catalog.ID, data []byte) *Owned[T] {
	o := &Owned[T]{alg: id, data: data}
	if roleOf[T]().Secret() {
		runtime.SetFinalizer(o, (*Owned[T]).Destroy)
	}
	return o
}

// Allocate returns a zeroed buffer of the length the role has for id. For
// signatures that is the maximum length.
func Allocate[T Tag](id catalog.ID) (*Owned[T], error) {
	b, err := boundFor("buffer.Allocate", roleOf[T](), id)
	if err != nil {
		return nil, err
	}
	return newOwned[T](id, make([]byte, b.capacity())), nil
}

// FromBytes copies src into a new buffer bound to id. Fixed-length roles
// require an exact match; signatures accept up to the maximum; messages and
// contexts accept any length.
func FromBytes[T Tag](id catalog.ID, src []byte) (*Owned[T], error) {
	if err := CheckLength("buffer.FromBytes", roleOf[T](), id, len(src)); err != nil {
		return nil, err
	}
	data := make([]byte, len(src))
	copy(data, src)
	return newOwned[T](id, data), nil
}

// Fill allocates storage at the role's (maximum) length, lets fn write into
// it, and keeps the first n bytes fn reports. If fn fails or reports a length
// the role does not admit, the storage is wiped and nothing is returned.
func Fill[T Tag](id catalog.ID, fn func(dst []byte) (n int, err error)) (*Owned[T], error) {
	r := roleOf[T]()
	b, err := boundFor("buffer.Fill", r, id)
	if err != nil {
		return nil, err
	}
	o := newOwned[T](id, make([]byte, b.capacity()))
	n, err := fn(o.data)
	if err != nil {
		o.Destroy()
		return nil, err
	}
	if n < 0 || n > len(o.data) || !b.admits(n) {
		o.Destroy()
		return nil, oqs.InvalidLength("buffer.Fill", id.String(), r.String(), n, b.n)
	}
	o.data = o.data[:n]
	return o, nil
}

// Algorithm returns the ID the buffer is bound to.
func (o *Owned[T]) Algorithm() catalog.ID { return o.alg }

// Role returns the role named by T.
func (o *Owned[T]) Role() Role { return roleOf[T]() }

// Bytes returns the live storage. The slice must not be retained past
// Destroy. It panics if the buffer was destroyed.
func (o *Owned[T]) Bytes() []byte {
	if o.destroyed.Load() {
		panic(fmt.Sprintf("buffer: use of destroyed %s (%s)", o.Role(), o.alg))
	}
	return o.data
}

// CloneBytes returns a copy the caller owns. Copies of secret roles are the
// caller's to wipe.
func (o *Owned[T]) CloneBytes() []byte {
	src := o.Bytes()
	out := make([]byte, len(src))
	copy(out, src)
	return out
}

// Len returns the true length of the contents.
func (o *Owned[T]) Len() int { return len(o.Bytes()) }

// Borrow returns a read view tied to o.
func (o *Owned[T]) Borrow() View[T] {
	return View[T]{owner: o, alg: o.alg}
}

// Equal compares contents in constant time. Buffers bound to different
// algorithms are never equal.
func (o *Owned[T]) Equal(other Source[T]) bool {
	return equal(o.Borrow(), other.Borrow())
}

// Destroyed reports whether Destroy has run.
func (o *Owned[T]) Destroyed() bool { return o.destroyed.Load() }

// Destroy wipes secret storage and releases it. Only the first call has an
// effect.
func (o *Owned[T]) Destroy() {
	if o == nil || !o.destroyed.CompareAndSwap(false, true) {
		return
	}
	if o.Role().Secret() {
		wipe(o.data[:cap(o.data)])
		runtime.SetFinalizer(o, nil)
	}
	o.data = nil
}

// String describes the buffer without its contents.
func (o *Owned[T]) String() string {
	switch {
	case o.destroyed.Load():
		return fmt.Sprintf("%s(%s, destroyed)", o.Role(), o.alg)
	case o.Role().Secret():
		return fmt.Sprintf("%s(%s, %d bytes, %s)", o.Role(), o.alg, len(o.data), logging.Placeholder())
	default:
		return fmt.Sprintf("%s(%s, %d bytes)", o.Role(), o.alg, len(o.data))
	}
}

// LogValue implements slog.LogValuer.
func (o *Owned[T]) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("role", o.Role().String()),
		slog.String("alg", o.alg.String()),
	}
	if !o.destroyed.Load() {
		attrs = append(attrs, slog.Int("len", len(o.data)))
	}
	if o.Role().Secret() {
		attrs = append(attrs, logging.Redacted("bytes"))
	}
	return slog.GroupValue(attrs...)
}

// View is a borrowed, read-only window onto either an Owned buffer or caller
// bytes (messages and contexts). A view of an Owned buffer panics on any read
// after the owner is destroyed.
type View[T Tag] struct {
	owner *Owned[T]
	alg   catalog.ID
	ext   []byte
}

// MessageOf borrows b as a message. Messages are not bound to an algorithm.
func MessageOf(b []byte) View[MessageTag] {
	return View[MessageTag]{ext: b}
}

// ContextOf borrows b as a signature context string.
func ContextOf(b []byte) View[ContextTag] {
	return View[ContextTag]{ext: b}
}

// Bytes returns the viewed bytes. The slice aliases the owner's storage and
// must not be written to or kept past the owner's Destroy; use CloneBytes for
// a copy the caller may modify.
func (v View[T]) Bytes() []byte {
	if v.owner != nil {
		return v.owner.Bytes()
	}
	return v.ext
}

// CloneBytes returns a copy of the viewed bytes.
func (v View[T]) CloneBytes() []byte {
	src := v.Bytes()
	out := make([]byte, len(src))
	copy(out, src)
	return out
}

// Len returns the length of the viewed bytes.
func (v View[T]) Len() int { return len(v.Bytes()) }

// Algorithm returns the ID the viewed buffer is bound to, or catalog.Invalid
// for unbound caller bytes.
func (v View[T]) Algorithm() catalog.ID { return v.alg }

// Role returns the role named by T.
func (v View[T]) Role() Role { return roleOf[T]() }

// Borrow returns v.
func (v View[T]) Borrow() View[T] { return v }

// Equal compares contents in constant time.
func (v View[T]) Equal(other Source[T]) bool {
	return equal(v, other.Borrow())
}

func (v View[T]) String() string {
	if v.owner != nil {
		return v.owner.String()
	}
	return fmt.Sprintf("%s(%d bytes)", v.Role(), len(v.ext))
}

// Source is accepted by every operation that reads a buffer; both *Owned[T]
// and View[T] satisfy it.
type Source[T Tag] interface {
	Borrow() View[T]
}

func equal[T Tag](a, b View[T]) bool {
	if a.alg != b.alg {
		return false
	}
	return subtle.ConstantTimeCompare(a.Bytes(), b.Bytes()) == 1
}

// noCopy lets go vet's copylocks check flag copies of Owned.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
