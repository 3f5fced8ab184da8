package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()

	_, ok, err := cache.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "k", "v1"))
	require.NoError(t, cache.Set(ctx, "k", "v2"))

	val, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", val)
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = cache.Set(ctx, fmt.Sprintf("key-%d", i), "x")
		}(i)
		go func(i int) {
			defer wg.Done()
			_, _, _ = cache.Get(ctx, fmt.Sprintf("key-%d", i))
		}(i)
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		_, ok, _ := cache.Get(ctx, fmt.Sprintf("key-%d", i))
		assert.True(t, ok)
	}
}
