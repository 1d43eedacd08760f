// Package ffi is the checked boundary between handles and a native provider.
//
// Every call follows the same sequence: validate algorithm binding and
// lengths, preallocate outputs from the catalog, call the provider, map its
// status. No input reaches the provider unchecked and no output buffer is
// returned after a failed call; fresh secret outputs are wiped first.
package ffi

import (
	"context"
	"fmt"

	"github.com/hsiuhsiu/oqs-safe-go/internal/backend"
	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs"
	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs/buffer"
	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs/catalog"
	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs/logging"
)

// input resolves a caller buffer after checking it is bound to id and has
// the length its role requires. The returned view holds the owner; callers
// pass it to runtime.KeepAlive once the native call returns, otherwise the
// owner's finalizer may wipe the bytes while the provider reads them.
func input[T buffer.Tag](op string, id catalog.ID, src buffer.Source[T]) (buffer.View[T], []byte, error) {
	v := src.Borrow()
	if v.Algorithm() != id {
		return v, nil, oqs.UnsupportedAlgorithm(op, id.String(),
			fmt.Errorf("%s is bound to %s", v.Role(), v.Algorithm()))
	}
	b := v.Bytes()
	if err := buffer.CheckLength(op, v.Role(), id, len(b)); err != nil {
		return v, nil, err
	}
	return v, b, nil
}

// call runs fn, turning a provider panic into a crypto failure.
func call(op, alg string, fn func() backend.Status) (status backend.Status, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = oqs.CryptoFailure(op, alg, backend.StatusError, fmt.Errorf("provider panic: %v", r))
		}
	}()
	return fn(), nil
}

// failure logs and builds the error for a non-success status or a recovered
// panic.
func failure(log logging.Logger, op, alg string, status backend.Status, err error) error {
	if err == nil {
		err = oqs.CryptoFailure(op, alg, status, nil)
	}
	log.Warn(context.Background(), "native call failed", "op", op, "status", status.String(), "error", err)
	return err
}

func mismatch(provider, alg string, got, want any) string {
	return fmt.Sprintf("ffi: provider %s reports lengths %+v for %s, catalog has %+v", provider, got, alg, want)
}
