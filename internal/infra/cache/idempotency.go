package cache

import (
	"context"
	"sync"
	"time"

	"cafeteria/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	idempotencyKeyPrefix = "idempotency:"
	idempotencyKeyTTL    = 24 * time.Hour
)

type redisIdempotencyStore struct {
	client *redis.Client
}

// IdempotencyStoreParams holds dependencies for the idempotency store, injected by Fx
type IdempotencyStoreParams struct {
	fx.In

	Client *redis.Client `optional:"true"`
}

// NewIdempotencyStore returns a Redis backed store, or an in-process one when
// no client is available.
func NewIdempotencyStore(params IdempotencyStoreParams) service.IdempotencyStore {
	if params.Client == nil {
		return newMemoryIdempotencyStore()
	}

	return NewRedisIdempotencyStore(params.Client)
}

// NewRedisIdempotencyStore builds an idempotency store on top of client.
func NewRedisIdempotencyStore(client *redis.Client) service.IdempotencyStore {
	return &redisIdempotencyStore{client: client}
}

func (s *redisIdempotencyStore) Reserve(ctx context.Context, key string) (bool, error) {
	ok, err := s.client.SetNX(ctx, idempotencyKeyPrefix+key, 1, idempotencyKeyTTL).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to reserve idempotency key")
	}

	return ok, nil
}

func (s *redisIdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, idempotencyKeyPrefix+key).Err(); err != nil {
		return errors.Wrap(err, "failed to release idempotency key")
	}

	return nil
}

// memoryIdempotencyStore keeps keys for the life of the process. Only used
// when Redis is unavailable, so replays are caught per instance.
type memoryIdempotencyStore struct {
	mu   sync.Mutex
	keys map[string]time.Time
	now  func() time.Time
}

func newMemoryIdempotencyStore() *memoryIdempotencyStore {
	return &memoryIdempotencyStore{keys: make(map[string]time.Time), now: time.Now}
}

func (s *memoryIdempotencyStore) Reserve(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if expiresAt, ok := s.keys[key]; ok && now.Before(expiresAt) {
		return false, nil
	}
	s.keys[key] = now.Add(idempotencyKeyTTL)

	return true, nil
}

func (s *memoryIdempotencyStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.keys, key)

	return nil
}
