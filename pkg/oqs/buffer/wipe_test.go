package buffer

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs/catalog"
)

// watchWipes counts wipes of storage starting at target[0] and the bytes they
// covered. Finalizers of unrelated buffers may wipe concurrently.
func watchWipes(t *testing.T, target []byte) (calls, covered *atomic.Int64) {
	t.Helper()
	calls, covered = new(atomic.Int64), new(atomic.Int64)
	h := func(b []byte) {
		if len(b) > 0 && &b[0] == &target[0] {
			calls.Add(1)
			covered.Add(int64(len(b)))
		}
	}
	wipeHook.Store(&h)
	t.Cleanup(func() { wipeHook.Store(nil) })
	return calls, covered
}

func TestSecretWipedExactlyOnce(t *testing.T) {
	sk, err := Allocate[SecretKeyTag](catalog.MLKEM1024)
	require.NoError(t, err)
	calls, _ := watchWipes(t, sk.Bytes())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sk.Destroy()
		}()
	}
	wg.Wait()
	sk.Destroy()

	require.EqualValues(t, 1, calls.Load())
}

func TestPublicNotWiped(t *testing.T) {
	pk, err := Allocate[PublicKeyTag](catalog.MLKEM1024)
	require.NoError(t, err)
	calls, _ := watchWipes(t, pk.Bytes())

	pk.Destroy()

	require.EqualValues(t, 0, calls.Load())
	require.True(t, pk.Destroyed())
}

func TestDestroyWipesFullCapacity(t *testing.T) {
	storage := make([]byte, 16, 32)
	ss := newOwned[SharedSecretTag](catalog.MLKEM512, storage)
	_, covered := watchWipes(t, storage)

	ss.Destroy()
	require.EqualValues(t, 32, covered.Load())
}

func TestFilledSecretWipedOnDestroy(t *testing.T) {
	var storage []byte
	ss, err := Fill[SharedSecretTag](catalog.MLKEM512, func(dst []byte) (int, error) {
		storage = dst
		for i := range dst {
			dst[i] = 0xee
		}
		return len(dst), nil
	})
	require.NoError(t, err)
	calls, _ := watchWipes(t, storage)

	ss.Destroy()
	require.EqualValues(t, 1, calls.Load())
	require.Equal(t, make([]byte, len(storage)), storage)
}
