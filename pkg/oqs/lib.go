package oqs

import (
	"context"
	"errors"
	"sync"

	"github.com/hsiuhsiu/oqs-safe-go/internal/backend"
	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs/logging"

	// Providers register themselves with the backend registry.
	_ "github.com/hsiuhsiu/oqs-safe-go/internal/backend/circl"
	_ "github.com/hsiuhsiu/oqs-safe-go/internal/cgo"
)

// Library binds a native provider and a logger. It holds no mutable state
// and may be shared freely between goroutines.
//
// Initialising and tearing down the native library itself is the process's
// responsibility; a Library only selects which provider handles talk to.
type Library struct {
	cfg      Config
	provider backend.Provider
}

// Open resolves cfg.Backend against the providers compiled into the binary.
// It returns ErrNotBuilt when the requested provider is absent.
func Open(cfg Config) (*Library, error) {
	cfg = cfg.withDefaults()
	p, err := backend.Lookup(cfg.Backend)
	if err != nil {
		return nil, err
	}
	return &Library{cfg: cfg, provider: p}, nil
}

var (
	defaultOnce sync.Once
	defaultLib  *Library
)

// Default returns the process-wide library, opened on first use from
// OQS_SAFE_BACKEND. An unusable value falls back to the preferred provider.
func Default() *Library {
	defaultOnce.Do(func() {
		cfg := configFromEnv()
		lib, err := Open(cfg)
		if err != nil && cfg.Backend != "" {
			logging.New(nil).Warn(context.Background(), "configured backend unavailable, using default",
				"backend", cfg.Backend, "error", err)
			cfg.Backend = ""
			lib, err = Open(cfg)
		}
		if err != nil {
			// The circl provider is always linked; reaching this is a build
			// defect, not a runtime condition.
			panic(errors.Join(errors.New("oqs: no provider registered"), err))
		}
		defaultLib = lib
	})
	return defaultLib
}

// Backend returns the name of the bound provider.
func (l *Library) Backend() string {
	return l.provider.Name()
}

// Version returns the provider's self-reported version.
func (l *Library) Version() string {
	return l.provider.Version()
}

// Logger returns the configured logger.
func (l *Library) Logger() logging.Logger {
	return l.cfg.Logger
}

// KEMEnabled reports whether the provider offers the named KEM.
func (l *Library) KEMEnabled(name string) bool {
	return l.provider.KEMEnabled(name)
}

// SigEnabled reports whether the provider offers the named signature scheme.
func (l *Library) SigEnabled(name string) bool {
	return l.provider.SigEnabled(name)
}

// Provider exposes the bound provider. It is exported for use by the
// subpackages of this module; the return type is internal.
func (l *Library) Provider() backend.Provider {
	return l.provider
}

// Backends lists the providers compiled into the binary.
func Backends() []string {
	return backend.Names()
}
