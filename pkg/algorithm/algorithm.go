package algorithm

import (
	"context"
	"errors"

	"github.com/mpapenbr/diveplanner-go/pkg/gases"
	"github.com/mpapenbr/diveplanner-go/pkg/options"
	"github.com/mpapenbr/diveplanner-go/pkg/profile"
	"github.com/mpapenbr/diveplanner-go/pkg/segments"
)

var ErrMissingParams = errors.New("segments and options are required")

type (
	// Params is the input of a decompression calculation
	Params struct {
		Segments *segments.Segments
		Gases    *gases.Gases
		Options  *options.Options
	}

	// Algorithm calculates the ascent for a profile.
	// Implementations must not modify the params.
	Algorithm interface {
		Decompression(ctx context.Context, p *Params) (*profile.CalculatedProfile, error)
		// NoDecoLimit returns the no decompression limit in minutes
		NoDecoLimit(ctx context.Context, p *Params) (float64, error)
	}
)

func NewParams(s *segments.Segments, g *gases.Gases, o *options.Options) *Params {
	return &Params{Segments: s, Gases: g, Options: o}
}

func (p *Params) validate() error {
	if p == nil || p.Segments == nil || p.Options == nil {
		return ErrMissingParams
	}
	return nil
}

// usedGases returns the configured gases or the gases found in the segments
func (p *Params) usedGases() *gases.Gases {
	if p.Gases != nil && p.Gases.Len() > 0 {
		return p.Gases
	}
	ret := gases.FromList()
	p.Segments.ForEach(func(s segments.Segment) { ret.Add(s.Gas) })
	return ret
}
