package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/nfa/pkg/adapters/redis"
	"github.com/aretw0/nfa/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "Failed to start miniredis")
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestRedisCache_Contract(t *testing.T) {
	_, client := newClient(t)

	cache := redis.NewFromClient(client)
	ports.RunVerdictCacheContract(t, cache)
}

func TestRedisCache_Prefix(t *testing.T) {
	mr, client := newClient(t)
	ctx := context.Background()

	cache := redis.NewFromClient(client, redis.WithPrefix("test:"))
	require.NoError(t, cache.Set(ctx, "abc", true))

	val, err := mr.Get("test:abc")
	require.NoError(t, err)
	assert.Equal(t, "1", val)
}

func TestRedisCache_TTL_Expiration(t *testing.T) {
	mr, client := newClient(t)
	ctx := context.Background()

	cache := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	require.NoError(t, cache.Set(ctx, "k", true))

	_, found, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)

	mr.FastForward(2 * time.Second)

	_, found, err = cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCache_CorruptValue(t *testing.T) {
	mr, client := newClient(t)

	require.NoError(t, mr.Set(redis.DefaultPrefix+"bad", "maybe"))

	_, _, err := redis.NewFromClient(client).Get(context.Background(), "bad")
	assert.Error(t, err)
}

func TestRedisCache_Unreachable(t *testing.T) {
	mr, client := newClient(t)
	cache := redis.NewFromClient(client)
	mr.Close()

	assert.Error(t, cache.Ping(context.Background()))
	_, _, err := cache.Get(context.Background(), "k")
	assert.Error(t, err)
}
