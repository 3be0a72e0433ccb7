package cache

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (string, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			assert.NoError(t, err)
			assert.Equal(t, "value", v)
		}()
	}

	close(start)
	wg.Wait()

	assert.EqualValues(t, 1, calls.Load())
}

func TestStore_GetOrLoad_CachesSuccessOnly(t *testing.T) {
	t.Parallel()

	store := NewStore[int](time.Minute)
	errBoom := errors.New("boom")
	var calls atomic.Int32

	_, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (int, error) {
		calls.Add(1)
		return 0, errBoom
	})
	require.ErrorIs(t, err, errBoom)
	assert.Zero(t, store.Len())

	for i := 0; i < 2; i++ {
		v, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (int, error) {
			calls.Add(1)
			return 42, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	}
	assert.EqualValues(t, 2, calls.Load())
}

func TestStore_ExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore[string](30 * time.Second)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "valorant", "roster")
	_, ok := store.Get(context.Background(), "valorant")
	assert.True(t, ok)

	now = now.Add(31 * time.Second)
	_, ok = store.Get(context.Background(), "valorant")
	assert.False(t, ok)
	assert.Zero(t, store.Len())
}

func TestStore_EmptyKeyBypassesCache(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	v, err := store.GetOrLoad(context.Background(), "", func(context.Context) (string, error) { return "direct", nil })
	require.NoError(t, err)
	assert.Equal(t, "direct", v)
	assert.Zero(t, store.Len())
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore[int](time.Minute)
	ctx := context.Background()
	store.Set(ctx, "game:list", 1)
	store.Set(ctx, "game:lower:valorant", 2)
	store.Set(ctx, "player:game:1", 3)

	store.DeletePrefix(ctx, "game:")

	assert.Equal(t, 1, store.Len())
	_, ok := store.Get(ctx, "player:game:1")
	assert.True(t, ok)
}

func TestStore_SetSweepsExpiredKeys(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore[bool](10 * time.Millisecond)
	store.now = func() time.Time { return now }

	for i := 0; i < 5000; i++ {
		store.Set(ctx, "game:lower:nope "+strconv.Itoa(i), false)
	}
	require.Equal(t, 5000, store.Len())

	now = now.Add(11 * time.Millisecond)
	store.Set(ctx, "game:lower:valorant", true)

	assert.Equal(t, 1, store.Len())
	v, ok := store.Get(ctx, "game:lower:valorant")
	assert.True(t, ok)
	assert.True(t, v)
}

func TestStore_SweepRunsAtMostOncePerTTL(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore[int](time.Minute)
	store.now = func() time.Time { return now }

	store.Set(ctx, "a", 1)
	now = now.Add(30 * time.Second)
	store.Set(ctx, "b", 2)
	now = now.Add(31 * time.Second)
	store.Set(ctx, "c", 3)

	assert.Equal(t, 2, store.Len(), "a expired and was swept, b is still live")
}
