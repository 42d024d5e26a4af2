package algorithm

import (
	"context"
	"math"

	"github.com/mpapenbr/diveplanner-go/log"
	"github.com/mpapenbr/diveplanner-go/pkg/gases"
	"github.com/mpapenbr/diveplanner-go/pkg/options"
	"github.com/mpapenbr/diveplanner-go/pkg/physics"
	"github.com/mpapenbr/diveplanner-go/pkg/profile"
	"github.com/mpapenbr/diveplanner-go/pkg/segments"
)

const (
	safetyStopDuration = 3 * physics.OneMinute
	ceilingInterval    = physics.OneMinute
	maxNoDecoLimit     = 300.0 // minutes
)

// no decompression limits for air, depth in meters -> minutes
var airNoDecoLimits = []struct {
	depth   float64
	minutes float64
}{
	{10, 219}, {12, 147}, {14, 98}, {16, 72}, {18, 56}, {20, 45},
	{22, 37}, {25, 29}, {30, 20}, {35, 14}, {40, 9}, {42, 8},
}

// DirectAscent surfaces the diver without any tissue model.
// It respects ascent speeds, gas switches and the safety stop.
type DirectAscent struct {
	log *log.Logger
}

type DirectOption func(*DirectAscent)

func WithLogger(l *log.Logger) DirectOption {
	return func(d *DirectAscent) {
		d.log = l
	}
}

func NewDirectAscent(opts ...DirectOption) *DirectAscent {
	ret := &DirectAscent{log: log.Default().Named("algorithm")}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

//nolint:whitespace // readability
func (d *DirectAscent) Decompression(
	ctx context.Context,
	p *Params,
) (*profile.CalculatedProfile, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	c := p.Options.DepthConverter()
	result := p.Segments.Copy()
	if messages := segments.Validate(result, p.Options.MaxPpO2, c); len(messages) > 0 {
		errs := make([]profile.Event, 0, len(messages))
		for _, msg := range messages {
			errs = append(errs, profile.NewError(msg))
		}
		d.log.Debug("profile not valid", log.Strings("messages", messages))
		return &profile.CalculatedProfile{Segments: result, Errors: errs}, nil
	}

	result.MarkAscentStart(result.Len())
	a := &ascent{
		options: p.Options,
		gases:   p.usedGases(),
		c:       c,
		speeds:  options.NewAscentSpeeds(p.Options),
		result:  result,
	}
	a.speeds.MarkAverageDepth(result.AverageDepth())
	a.surface()

	d.log.Debug("ascent calculated",
		log.Int("userSegments", result.StartAscentIndex()),
		log.Int("segments", result.Len()))
	return &profile.CalculatedProfile{
		Segments: result,
		Ceilings: surfaceCeilings(result.Duration()),
	}, nil
}

// NoDecoLimit uses the equivalent air depth of the deepest segment
func (d *DirectAscent) NoDecoLimit(ctx context.Context, p *Params) (float64, error) {
	if err := p.validate(); err != nil {
		return 0, err
	}
	if !p.Segments.Any() {
		return 0, nil
	}
	c := p.Options.DepthConverter()
	deepest := p.Segments.DeepestPart()
	last := deepest[len(deepest)-1]
	depth := math.Max(last.EndDepth, last.StartDepth)
	ead := c.FromBar(c.ToBar(depth) * last.Gas.FN2() / gases.Air.FN2())
	return noDecoLimit(physics.Round(ead, 2)), nil
}

func noDecoLimit(ead float64) float64 {
	if ead < airNoDecoLimits[0].depth {
		return maxNoDecoLimit
	}
	for _, entry := range airNoDecoLimits {
		if ead <= entry.depth {
			return entry.minutes
		}
	}
	return 0
}

func surfaceCeilings(duration float64) []profile.Ceiling {
	ret := make([]profile.Ceiling, 0, int(duration/ceilingInterval)+1)
	for t := 0.0; t <= duration; t += ceilingInterval {
		ret = append(ret, profile.Ceiling{Time: t, Depth: 0})
	}
	return ret
}

type ascent struct {
	options *options.Options
	gases   *gases.Gases
	c       *physics.DepthConverter
	speeds  *options.AscentSpeeds
	result  *segments.Segments
}

func (a *ascent) surface() {
	last := a.result.Last()
	if last == nil {
		return
	}
	depth := last.EndDepth
	gas := last.Gas
	stopDepth := a.safetyStopDepth(depth)

	for depth > 0 {
		gas = a.switchGas(depth, gas)
		target := a.nextStop(depth, gas, stopDepth)
		speed := a.speeds.Ascent(depth)
		a.result.Add(target, gas, (depth-target)/speed*physics.OneMinute)
		depth = target
		if stopDepth > 0 && depth == stopDepth {
			a.result.AddFlat(depth, gas, safetyStopDuration)
		}
	}
}

// switchGas adds the gas switch stop if better deco gas is available at depth
func (a *ascent) switchGas(depth float64, current gases.Gas) gases.Gas {
	best, found := a.gases.BestGas(depth, a.options.MaxDecoPpO2, a.c)
	if !found || best.CompositionEquals(current) || best.FO2 <= current.FO2 {
		return current
	}
	a.result.AddFlat(depth, best, physics.ToSeconds(a.options.GasSwitchDuration))
	return best
}

// nextStop is the next shallower depth where the ascent changes
func (a *ascent) nextStop(depth float64, current gases.Gas, stopDepth float64) float64 {
	target := a.speeds.NextBand(depth)
	if stopDepth < depth {
		target = math.Max(target, stopDepth)
	}
	for _, g := range a.gases.Items() {
		if g.FO2 <= current.FO2 {
			continue
		}
		switchDepth := a.switchDepth(g)
		if switchDepth < depth {
			target = math.Max(target, switchDepth)
		}
	}
	return target
}

// switchDepth is MOD rounded down to the deco stop distance
func (a *ascent) switchDepth(g gases.Gas) float64 {
	mod := g.MODDepth(a.options.MaxDecoPpO2, a.c)
	distance := a.options.DecoStopDistance
	if distance <= 0 {
		return physics.Floor(mod)
	}
	return math.Floor(physics.Round(mod/distance, 6)) * distance
}

// safetyStopDepth returns 0 if no safety stop is needed
func (a *ascent) safetyStopDepth(depth float64) float64 {
	stop := a.options.LastStopDepth
	if stop <= 0 || depth <= stop {
		return 0
	}
	switch a.options.SafetyStop {
	case options.SafetyStopAlways:
		return stop
	case options.SafetyStopAuto:
		if a.result.MaxDepth() >= a.options.MinimumAutoStopDepth {
			return stop
		}
	case options.SafetyStopNever:
	}
	return 0
}
