package oqs

import (
	"os"

	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs/logging"
)

// BackendEnv names the environment variable consulted by Default when no
// backend is configured explicitly.
const BackendEnv = "OQS_SAFE_BACKEND"

// Backend names accepted by Config.Backend.
const (
	BackendLibOQS = "liboqs"
	BackendCircl  = "circl"
)

// Config selects the native provider and the logger used by handles opened
// through a Library.
type Config struct {
	// Backend names the provider. Empty prefers liboqs when the binary was
	// built with `-tags liboqs`, otherwise the pure-Go circl provider.
	Backend string

	// Logger receives handle lifecycle and failure events. Nil binds to
	// slog.Default().
	Logger logging.Logger
}

func (c Config) withDefaults() Config {
	if c.Logger == nil {
		c.Logger = logging.New(nil)
	}
	return c
}

func configFromEnv() Config {
	return Config{Backend: os.Getenv(BackendEnv)}
}
