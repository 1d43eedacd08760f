package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs/logging"
)

func TestForHandleScopesRecords(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	h := logging.ForHandle(l, "kem", "ML-KEM-768", "circl")
	h.Debug(context.Background(), "kem opened", logging.Redacted("sk"))

	out := buf.String()
	require.Contains(t, out, "family=kem")
	require.Contains(t, out, "alg=ML-KEM-768")
	require.Contains(t, out, "backend=circl")
	require.Contains(t, out, "sk="+logging.Placeholder())
}

func TestDiscardDropsEverything(t *testing.T) {
	l := logging.Discard()
	require.NotPanics(t, func() {
		l.Error(context.Background(), "dropped")
		l.With("k", "v").Warn(context.Background(), "dropped")
	})
}

func TestNewNilUsesDefault(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	logging.New(nil).Info(context.Background(), "hello")
	require.Contains(t, buf.String(), "msg=hello")
}
