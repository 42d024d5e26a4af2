package cache

import (
	"context"
	"errors"
)

// based on github.com/kittpat1413/go-common/framework/cache/cache.go

var ErrCacheMiss = errors.New("cache miss")

type (
	LoaderFunc[V any] func(ctx context.Context) (*V, error)

	Cache[K comparable, V any] interface {
		Get(ctx context.Context, key K) (*V, error)
		// GetOrLoad uses loader instead of the configured one on a miss
		GetOrLoad(ctx context.Context, key K, loader LoaderFunc[V]) (*V, error)
		Invalidate(ctx context.Context, key K)
		Len() int
	}
)
