package consumption

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/mpapenbr/diveplanner-go/log"
	"github.com/mpapenbr/diveplanner-go/pkg/algorithm"
	"github.com/mpapenbr/diveplanner-go/pkg/gases"
	"github.com/mpapenbr/diveplanner-go/pkg/options"
	"github.com/mpapenbr/diveplanner-go/pkg/physics"
	"github.com/mpapenbr/diveplanner-go/pkg/segments"
	"github.com/mpapenbr/diveplanner-go/pkg/tanks"
)

// MinimumRockBottom is the minimum reserve in bars kept in the first tank,
// even for shallow dives.
const MinimumRockBottom = 30.0

var (
	ErrInvalidProfile = errors.New("profile needs to contain at least 2 segments")
	ErrNoTanks        = errors.New("at least one tank is required")
)

type (
	// Consumption calculates tank consumption during the dive and the reserve
	// needed for an emergency ascent from the deepest point.
	Consumption struct {
		converter      gases.DepthConverter
		algorithm      algorithm.Algorithm
		primaryReserve float64
		log            *log.Logger
	}
	Option func(*Consumption)

	// liters still to be consumed per gas content code
	gasPool map[uint64]float64
)

func WithPrimaryReserve(bars float64) Option {
	return func(c *Consumption) {
		c.primaryReserve = bars
	}
}

func WithLogger(l *log.Logger) Option {
	return func(c *Consumption) {
		c.log = l
	}
}

func New(converter gases.DepthConverter, a algorithm.Algorithm, opts ...Option) *Consumption {
	ret := &Consumption{
		converter:      converter,
		algorithm:      a,
		primaryReserve: MinimumRockBottom,
		log:            log.Default().Named("consumption"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// ConsumeFromTanks updates consumed and reserve of the tanks.
// The segments are the calculated profile (user defined part and generated ascent).
// Calls the decompression algorithm to get the emergency ascent.
//
//nolint:whitespace // readability
func (c *Consumption) ConsumeFromTanks(
	ctx context.Context,
	items []segments.Segment,
	o *options.Options,
	tankList []*tanks.Tank,
	diver *options.Diver,
) error {
	if len(items) < 2 {
		return ErrInvalidProfile
	}
	ascent, err := c.EmergencyAscent(ctx, items, o, tankList)
	if err != nil {
		return err
	}
	return c.ConsumeFromTanks2(items, ascent, tankList, diver)
}

// ConsumeFromTanks2 is ConsumeFromTanks with already known emergency ascent.
// The ascent doesn't need to be part of items.
//
//nolint:whitespace // readability
func (c *Consumption) ConsumeFromTanks2(
	items, emergencyAscent []segments.Segment,
	tankList []*tanks.Tank,
	diver *options.Diver,
) error {
	if len(items) < 2 {
		return ErrInvalidProfile
	}
	if len(tankList) == 0 {
		return ErrNoTanks
	}
	tanks.ResetConsumption(tankList)
	remain := c.consumeByTanks(items, tankList, diver.RMV)
	c.consumeByGases(items, tankList, diver.RMV, remain)
	c.updateReserve(emergencyAscent, tankList, diver.StressRMV)
	return nil
}

// EmergencyAscent returns the ascent from the deepest point of the profile
// prefixed by the problem solving time at depth.
//
//nolint:whitespace // readability
func (c *Consumption) EmergencyAscent(
	ctx context.Context,
	items []segments.Segment,
	o *options.Options,
	tankList []*tanks.Tank,
) ([]segments.Segment, error) {
	deepest := segments.FromCollection(items).DeepestPart()
	params := algorithm.NewParams(segments.FromCollection(deepest), tanks.Gases(tankList), o)
	result, err := c.algorithm.Decompression(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("emergency ascent: %w", err)
	}
	if result.HasErrors() {
		c.log.Warn("emergency ascent not calculated",
			log.String("error", result.Errors[0].Message))
	}
	calculated := result.Segments.Items()
	if len(calculated) <= len(deepest) {
		return []segments.Segment{}, nil
	}
	return addSolvingSegment(calculated[len(deepest):], o.ProblemSolvingDuration), nil
}

// prepends stay at depth, unless the ascent starts with one
func addSolvingSegment(ascent []segments.Segment, problemSolving float64) []segments.Segment {
	first := ascent[0]
	if first.IsFlat() || problemSolving <= 0 {
		return ascent
	}
	depth := first.StartDepth
	solving := segments.New(depth, depth, first.Gas, physics.ToSeconds(problemSolving))
	return append([]segments.Segment{solving}, ascent...)
}

// consumes segments with assigned tank, returns what the tanks couldn't provide
//
//nolint:whitespace // readability
func (c *Consumption) consumeByTanks(
	items []segments.Segment,
	tankList []*tanks.Tank,
	rmv float64,
) gasPool {
	remain := gasPool{}
	for i := range items {
		tank := tanks.Find(tankList, items[i].Tank)
		if tank == nil {
			continue
		}
		liters := c.consumedBySegment(items[i], rmv)
		remain[items[i].Gas.ContentCode()] += consumeFromTank(tank, liters)
	}
	return remain
}

// segments without tank are consumed from all tanks with the same gas,
// starting from the last one to consume stages first.
//
//nolint:whitespace // readability
func (c *Consumption) consumeByGases(
	items []segments.Segment,
	tankList []*tanks.Tank,
	rmv float64,
	remain gasPool,
) {
	c.toBeConsumed(remain, items, rmv, func(s segments.Segment) bool {
		return tanks.Find(tankList, s.Tank) == nil
	})
	distribute(remain, tankList, consumeFromTank)
}

// all emergency ascent segments are generated, so they don't have a tank
//
//nolint:whitespace // readability
func (c *Consumption) updateReserve(
	ascent []segments.Segment,
	tankList []*tanks.Tank,
	stressRmv float64,
) {
	required := gasPool{}
	c.toBeConsumed(required, ascent, stressRmv, func(segments.Segment) bool { return true })
	distribute(required, tankList, addReserveToTank)

	if tankList[0].Reserve < c.primaryReserve {
		tankList[0].Reserve = c.primaryReserve
	}
	if missing := required.total(); missing > 0 {
		c.log.Debug("reserve not covered by tanks", log.Float64("liters", missing))
	}
}

//nolint:whitespace // readability
func (c *Consumption) toBeConsumed(
	pool gasPool,
	items []segments.Segment,
	rmv float64,
	include func(segments.Segment) bool,
) {
	for i := range items {
		if include(items[i]) {
			pool[items[i].Gas.ContentCode()] += c.consumedBySegment(items[i], rmv)
		}
	}
}

// consumedBySegment returns liters consumed at segment average depth
func (c *Consumption) consumedBySegment(s segments.Segment, rmv float64) float64 {
	averagePressure := c.converter.ToBar(s.AverageDepth())
	return s.Duration * averagePressure * physics.PerSecond(rmv)
}

// distribute draws the pooled liters from tanks in reverse order
//
//nolint:whitespace // readability
func distribute(
	pool gasPool,
	tankList []*tanks.Tank,
	draw func(tank *tanks.Tank, liters float64) float64,
) {
	for i := len(tankList) - 1; i >= 0; i-- {
		code := tankList[i].Gas.ContentCode()
		if liters, ok := pool[code]; ok {
			pool[code] = draw(tankList[i], liters)
		}
	}
}

func consumeFromTank(tank *tanks.Tank, liters float64) float64 {
	bars := physics.Ceil(liters / tank.Size)
	if bars > tank.EndPressure() {
		bars = tank.EndPressure()
	}
	tank.Consumed += bars
	return extractRemaining(liters, bars, tank.Size)
}

func addReserveToTank(tank *tanks.Tank, liters float64) float64 {
	bars := physics.Ceil(liters / tank.Size)
	if bars+tank.Reserve > tank.StartPressure {
		bars = tank.StartPressure - tank.Reserve
	}
	tank.Reserve += bars
	return extractRemaining(liters, bars, tank.Size)
}

// remaining liters are recomputed from the rounded bars
func extractRemaining(liters, bars, size float64) float64 {
	return max(0, liters-bars*size)
}

func (p gasPool) total() float64 {
	return lo.Sum(lo.Values(p))
}
