package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunVerdictCacheContract runs a suite of tests to verify that a VerdictCache implementation
// adheres to the defined interface contract.
func RunVerdictCacheContract(t *testing.T, cache VerdictCache) {
	ctx := context.Background()
	prefix := "contract-" + time.Now().Format("20060102150405") + ":"

	t.Run("Miss", func(t *testing.T) {
		_, found, err := cache.Get(ctx, prefix+"missing")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Set and Get", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, prefix+"yes", true))
		require.NoError(t, cache.Set(ctx, prefix+"no", false))

		accepted, found, err := cache.Get(ctx, prefix+"yes")
		require.NoError(t, err)
		assert.True(t, found)
		assert.True(t, accepted)

		accepted, found, err = cache.Get(ctx, prefix+"no")
		require.NoError(t, err)
		assert.True(t, found, "a rejected verdict is still a cached verdict")
		assert.False(t, accepted)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, prefix+"flip", true))
		require.NoError(t, cache.Set(ctx, prefix+"flip", false))

		accepted, found, err := cache.Get(ctx, prefix+"flip")
		require.NoError(t, err)
		assert.True(t, found)
		assert.False(t, accepted)
	})

	t.Run("Empty Input Key", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, prefix, true))
		accepted, found, err := cache.Get(ctx, prefix)
		require.NoError(t, err)
		assert.True(t, found)
		assert.True(t, accepted)
	})
}

// RunLineSourceContract verifies that a LineSource yields exactly the expected lines.
func RunLineSourceContract(t *testing.T, source LineSource, want []string) {
	t.Helper()

	reader, err := source.Open(context.Background())
	require.NoError(t, err)
	defer reader.Close()

	var got []string
	for reader.Scan() {
		got = append(got, reader.Text())
	}
	require.NoError(t, reader.Err())

	if len(want) == 0 {
		assert.Empty(t, got)
		return
	}
	assert.Equal(t, want, got)
}
