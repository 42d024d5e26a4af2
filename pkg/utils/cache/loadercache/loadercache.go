package loadercache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/mpapenbr/diveplanner-go/log"
	"github.com/mpapenbr/diveplanner-go/pkg/utils/cache"
)

// based on github.com/kittpat1413/go-common/framework/cache/localcache/localcache.go

type (
	Option[K comparable, V any] func(*config[K, V])
	item[T any]                 struct {
		data    T
		expires *time.Time
	}
	loaderFunc[K comparable, V any] func(context.Context, K) (*V, error)
	config[K comparable, V any]     struct {
		expiration time.Duration
		loader     loaderFunc[K, V]
		l          *log.Logger
	}
	loaderCache[K comparable, V any] struct {
		mutex  sync.Mutex
		items  map[K]item[*V]
		config *config[K, V]
		group  singleflight.Group // in-flight loads per key
	}
)

func WithExpiration[K comparable, V any](expiration time.Duration) Option[K, V] {
	return func(c *config[K, V]) {
		c.expiration = expiration
	}
}

func WithLoader[K comparable, V any](lf loaderFunc[K, V]) Option[K, V] {
	return func(c *config[K, V]) {
		c.loader = lf
	}
}

func WithLogger[K comparable, V any](arg *log.Logger) Option[K, V] {
	return func(c *config[K, V]) {
		c.l = arg
	}
}

func New[K comparable, V any](opts ...Option[K, V]) cache.Cache[K, V] {
	c := &config[K, V]{
		expiration: 5 * time.Minute,
		l:          log.Default().Named("cache"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return &loaderCache[K, V]{
		mutex:  sync.Mutex{},
		items:  make(map[K]item[*V]),
		config: c,
	}
}

func (c *loaderCache[K, V]) Get(ctx context.Context, key K) (*V, error) {
	return c.GetOrLoad(ctx, key, nil)
}

// GetOrLoad returns the cached value or loads it. The cache is not locked while
// loading, concurrent requests for the same key share a single load.
//
//nolint:whitespace // readability
func (c *loaderCache[K, V]) GetOrLoad(
	ctx context.Context,
	key K,
	loader cache.LoaderFunc[V],
) (*V, error) {
	if v, ok := c.lookup(key); ok {
		return v, nil
	}
	if loader == nil && c.config.loader == nil {
		return nil, cache.ErrCacheMiss
	}
	v, err, shared := c.group.Do(fmt.Sprintf("%#v", key), func() (any, error) {
		return c.load(ctx, key, loader)
	})
	if shared {
		c.config.l.Debug("shared load", log.Any("key", key))
	}
	if err != nil {
		return nil, err
	}
	ret, _ := v.(*V)
	return ret, nil
}

// lookup removes expired entries
func (c *loaderCache[K, V]) lookup(key K) (*V, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	cacheItem, ok := c.items[key]
	if !ok {
		return nil, false
	}
	if cacheItem.expires != nil && cacheItem.expires.Before(time.Now()) {
		delete(c.items, key)
		return nil, false
	}
	return cacheItem.data, true
}

//nolint:whitespace // readability
func (c *loaderCache[K, V]) load(
	ctx context.Context,
	key K,
	loader cache.LoaderFunc[V],
) (*V, error) {
	var v *V
	var err error
	if loader != nil {
		v, err = loader(ctx)
	} else {
		v, err = c.config.loader(ctx, key)
	}
	c.config.l.Debug("loaderCache.load", log.Any("key", key))
	if err != nil {
		c.config.l.Error("error loading entry", log.ErrorField(err))
		return nil, err
	}
	expires := time.Now().Add(c.config.expiration)
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.items[key] = item[*V]{data: v, expires: &expires}
	return v, nil
}

func (c *loaderCache[K, V]) Invalidate(ctx context.Context, key K) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.config.l.Debug("Invalidate", log.Any("key", key))

	delete(c.items, key)
	c.config.l.Debug("Invalidate", log.Int("remain items", len(c.items)))
}

func (c *loaderCache[K, V]) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.items)
}
