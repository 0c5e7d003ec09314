package cache

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"cafeteria/config"
	"cafeteria/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	catalogKeyPrefix = "catalog:"
	defaultCacheTTL  = 10 * time.Minute
)

// redisCatalogCache versions every namespace with a generation counter.
// Invalidate bumps the counter, which orphans all keys of the previous
// generation until their TTL expires.
type redisCatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// CatalogCacheParams holds dependencies for the catalog cache, injected by Fx
type CatalogCacheParams struct {
	fx.In

	Client *redis.Client `optional:"true"`
	Config *config.Config
	Logger *slog.Logger
}

// NewCatalogCache returns a Redis catalog cache, or a no-op cache when no client is available.
func NewCatalogCache(params CatalogCacheParams) service.CatalogCache {
	if params.Client == nil {
		return noopCatalogCache{}
	}

	ttl := defaultCacheTTL
	if params.Config.Redis != nil && params.Config.Redis.CacheTTL > 0 {
		ttl = params.Config.Redis.CacheTTL
	}

	return NewRedisCatalogCache(params.Client, ttl)
}

// NewRedisCatalogCache builds a catalog cache on top of client.
func NewRedisCatalogCache(client *redis.Client, ttl time.Duration) service.CatalogCache {
	return &redisCatalogCache{client: client, ttl: ttl}
}

func (c *redisCatalogCache) Get(ctx context.Context, namespace, key string) ([]byte, error) {
	gen, err := c.generation(ctx, namespace)
	if err != nil {
		return nil, err
	}

	value, err := c.client.Get(ctx, c.entryKey(namespace, gen, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, service.ErrCacheMiss
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cache entry")
	}

	return value, nil
}

func (c *redisCatalogCache) Set(ctx context.Context, namespace, key string, value []byte) error {
	gen, err := c.generation(ctx, namespace)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, c.entryKey(namespace, gen, key), value, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to write cache entry")
	}

	return nil
}

func (c *redisCatalogCache) Invalidate(ctx context.Context, namespace string) error {
	if err := c.client.Incr(ctx, c.generationKey(namespace)).Err(); err != nil {
		return errors.Wrap(err, "failed to invalidate cache namespace")
	}

	return nil
}

func (c *redisCatalogCache) generation(ctx context.Context, namespace string) (int64, error) {
	gen, err := c.client.Get(ctx, c.generationKey(namespace)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "failed to read cache generation")
	}

	return gen, nil
}

func (c *redisCatalogCache) generationKey(namespace string) string {
	return catalogKeyPrefix + namespace + ":gen"
}

func (c *redisCatalogCache) entryKey(namespace string, gen int64, key string) string {
	return catalogKeyPrefix + namespace + ":" + strconv.FormatInt(gen, 10) + ":" + key
}

type noopCatalogCache struct{}

func (noopCatalogCache) Get(context.Context, string, string) ([]byte, error) {
	return nil, service.ErrCacheMiss
}

func (noopCatalogCache) Set(context.Context, string, string, []byte) error {
	return nil
}

func (noopCatalogCache) Invalidate(context.Context, string) error {
	return nil
}
