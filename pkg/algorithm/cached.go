package algorithm

import (
	"context"
	"time"

	"github.com/mpapenbr/diveplanner-go/log"
	"github.com/mpapenbr/diveplanner-go/pkg/profile"
	"github.com/mpapenbr/diveplanner-go/pkg/utils"
	"github.com/mpapenbr/diveplanner-go/pkg/utils/cache"
	"github.com/mpapenbr/diveplanner-go/pkg/utils/cache/loadercache"
)

// Cached memoizes results of the wrapped algorithm by a fingerprint of the params.
// Callers receive copies, so they may modify the returned profiles.
type Cached struct {
	algorithm Algorithm
	profiles  cache.Cache[string, profile.CalculatedProfile]
	limits    cache.Cache[string, float64]
}

func NewCached(a Algorithm, expiration time.Duration) *Cached {
	l := log.Default().Named("algorithm.cache")
	return &Cached{
		algorithm: a,
		profiles: loadercache.New(
			loadercache.WithExpiration[string, profile.CalculatedProfile](expiration),
			loadercache.WithLogger[string, profile.CalculatedProfile](l)),
		limits: loadercache.New(
			loadercache.WithExpiration[string, float64](expiration),
			loadercache.WithLogger[string, float64](l)),
	}
}

//nolint:whitespace // readability
func (c *Cached) Decompression(
	ctx context.Context,
	p *Params,
) (*profile.CalculatedProfile, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	ret, err := c.profiles.GetOrLoad(ctx, fingerprint(p),
		func(ctx context.Context) (*profile.CalculatedProfile, error) {
			return c.algorithm.Decompression(ctx, p)
		})
	if err != nil {
		return nil, err
	}
	return ret.Copy(), nil
}

func (c *Cached) NoDecoLimit(ctx context.Context, p *Params) (float64, error) {
	if err := p.validate(); err != nil {
		return 0, err
	}
	ret, err := c.limits.GetOrLoad(ctx, fingerprint(p),
		func(ctx context.Context) (*float64, error) {
			v, err := c.algorithm.NoDecoLimit(ctx, p)
			return &v, err
		})
	if err != nil {
		return 0, err
	}
	return *ret, nil
}

func fingerprint(p *Params) string {
	var gasItems any
	if p.Gases != nil {
		gasItems = p.Gases.Items()
	}
	items := p.Segments.Items()
	// the ascent mark changes the result of the algorithm
	return utils.Fingerprint(items, p.Segments.StartAscentIndex(), gasItems, *p.Options)
}
