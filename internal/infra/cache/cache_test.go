package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"cafeteria/internal/domain/service"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestRedisCatalogCache_SetGetInvalidate(t *testing.T) {
	client := getRedisClient(t)
	ctx := context.Background()
	cache := NewRedisCatalogCache(client, time.Minute)
	namespace := "test-" + uuid.NewString()

	_, err := cache.Get(ctx, namespace, "all")
	require.ErrorIs(t, err, service.ErrCacheMiss)

	require.NoError(t, cache.Set(ctx, namespace, "all", []byte(`["Beverages"]`)))

	value, err := cache.Get(ctx, namespace, "all")
	require.NoError(t, err)
	assert.Equal(t, `["Beverages"]`, string(value))

	require.NoError(t, cache.Invalidate(ctx, namespace))

	_, err = cache.Get(ctx, namespace, "all")
	assert.ErrorIs(t, err, service.ErrCacheMiss)
}

func TestRedisIdempotencyStore_ReserveOnce(t *testing.T) {
	client := getRedisClient(t)
	ctx := context.Background()
	store := NewRedisIdempotencyStore(client)
	key := uuid.NewString()

	ok, err := store.Reserve(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Reserve(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok, "second reservation must be rejected")

	ttl, err := client.TTL(ctx, idempotencyKeyPrefix+key).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 23*time.Hour)

	require.NoError(t, store.Release(ctx, key))

	ok, err = store.Reserve(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok, "released key can be reserved again")
}

func TestNoopCatalogCache(t *testing.T) {
	cache := NewCatalogCache(CatalogCacheParams{})
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "products", "all", []byte("x")))

	_, err := cache.Get(ctx, "products", "all")
	assert.ErrorIs(t, err, service.ErrCacheMiss)
	assert.NoError(t, cache.Invalidate(ctx, "products"))
}

func TestMemoryIdempotencyStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store := newMemoryIdempotencyStore()
	store.now = func() time.Time { return now }

	ok, err := store.Reserve(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Reserve(ctx, "k1")
	require.NoError(t, err)
	assert.False(t, ok)

	t.Run("expired key can be reused", func(t *testing.T) {
		now = now.Add(idempotencyKeyTTL + time.Second)

		ok, err := store.Reserve(ctx, "k1")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("release", func(t *testing.T) {
		require.NoError(t, store.Release(ctx, "k1"))

		ok, err := store.Reserve(ctx, "k1")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
