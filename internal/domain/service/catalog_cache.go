package service

import (
	"context"
	"errors"
)

// ErrCacheMiss is returned by CatalogCache.Get when no entry exists.
var ErrCacheMiss = errors.New("cache miss")

// CatalogCache stores serialized catalog reads. Entries live in a namespace and
// a whole namespace is dropped at once whenever anything in it changes.
type CatalogCache interface {
	// Get returns the cached value for key in namespace or ErrCacheMiss.
	Get(ctx context.Context, namespace, key string) ([]byte, error)

	// Set stores value for key in namespace.
	Set(ctx context.Context, namespace, key string, value []byte) error

	// Invalidate drops every entry of namespace.
	Invalidate(ctx context.Context, namespace string) error
}

// IdempotencyStore remembers request keys that were already accepted.
type IdempotencyStore interface {
	// Reserve records key and reports false if it had been recorded before.
	Reserve(ctx context.Context, key string) (bool, error)

	// Release forgets key so that a failed request can be retried.
	Release(ctx context.Context, key string) error
}
