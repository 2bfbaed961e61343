package notestore_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// casStore is what every engine in this package provides.
type casStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	CompareAndSwap(ctx context.Context, key string, old, next []byte) (bool, error)
	Healthcheck(ctx context.Context) error
}

// runStoreContract checks the behavior the notes service relies on. Keys are
// random so shared backends can run it repeatedly.
func runStoreContract(t *testing.T, store casStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("absent key reads as nil", func(t *testing.T) {
		v, err := store.Get(ctx, "absent-"+uuid.NewString())
		require.NoError(t, err)
		assert.Empty(t, v)
	})

	t.Run("set then get", func(t *testing.T) {
		key := "set-" + uuid.NewString()
		require.NoError(t, store.Set(ctx, key, []byte("frame-1")))
		v, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []byte("frame-1"), v)

		require.NoError(t, store.Set(ctx, key, []byte("frame-2")))
		v, err = store.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []byte("frame-2"), v)
	})

	t.Run("swap from absent with empty old", func(t *testing.T) {
		key := "cas-absent-" + uuid.NewString()
		ok, err := store.CompareAndSwap(ctx, key, nil, []byte("first"))
		require.NoError(t, err)
		assert.True(t, ok)

		v, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []byte("first"), v)
	})

	t.Run("swap from empty value with empty old", func(t *testing.T) {
		key := "cas-empty-" + uuid.NewString()
		require.NoError(t, store.Set(ctx, key, []byte{}))
		ok, err := store.CompareAndSwap(ctx, key, []byte{}, []byte("first"))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("swap requires exact old bytes", func(t *testing.T) {
		key := "cas-match-" + uuid.NewString()
		require.NoError(t, store.Set(ctx, key, []byte("current")))

		ok, err := store.CompareAndSwap(ctx, key, []byte("stale"), []byte("next"))
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = store.CompareAndSwap(ctx, key, nil, []byte("next"))
		require.NoError(t, err)
		assert.False(t, ok, "empty old must not overwrite a non-empty value")

		ok, err = store.CompareAndSwap(ctx, key, []byte("current"), []byte("next"))
		require.NoError(t, err)
		assert.True(t, ok)

		v, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []byte("next"), v)
	})

	t.Run("concurrent swaps from the same old", func(t *testing.T) {
		key := "cas-race-" + uuid.NewString()
		require.NoError(t, store.Set(ctx, key, []byte("base")))

		var (
			wg  sync.WaitGroup
			won atomic.Int32
		)
		for i := range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := store.CompareAndSwap(ctx, key, []byte("base"), []byte{byte('a' + i)})
				if err == nil && ok {
					won.Add(1)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), won.Load())
	})

	t.Run("healthcheck", func(t *testing.T) {
		assert.NoError(t, store.Healthcheck(ctx))
	})
}
