package events

import (
	"math"

	"github.com/mpapenbr/diveplanner-go/pkg/gases"
	"github.com/mpapenbr/diveplanner-go/pkg/options"
	"github.com/mpapenbr/diveplanner-go/pkg/physics"
	"github.com/mpapenbr/diveplanner-go/pkg/profile"
	"github.com/mpapenbr/diveplanner-go/pkg/segments"
)

// pressureSegment is a segment with depths converted to bars
type pressureSegment struct {
	startDepth float64
	endDepth   float64
	duration   float64
}

func toPressureSegment(s segments.Segment, c gases.DepthConverter) pressureSegment {
	return pressureSegment{
		startDepth: c.ToBar(s.StartDepth),
		endDepth:   c.ToBar(s.EndDepth),
		duration:   s.Duration,
	}
}

func (p pressureSegment) minDepth() float64 { return math.Min(p.startDepth, p.endDepth) }
func (p pressureSegment) maxDepth() float64 { return math.Max(p.startDepth, p.endDepth) }
func (p pressureSegment) isDescent() bool   { return p.startDepth < p.endDepth }
func (p pressureSegment) isAscent() bool    { return p.startDepth > p.endDepth }

// timeAt returns whole seconds from segment start when pressure is reached
func (p pressureSegment) timeAt(pressure float64) float64 {
	speed := segments.Speed(p.startDepth, p.endDepth, p.duration)
	return physics.Round(segments.TimeAt(p.startDepth, speed, pressure), 0)
}

// scanContext holds the state of one profile scan
type scanContext struct {
	// values presented to the diver use the well known rounded depths (e.g. 6 m MOD of oxygen)
	simpleDepths *physics.DepthConverter
	density      *gases.DensityAtDepth
	options      *options.Options
	speeds       *options.AscentSpeeds
	events       *profile.Events
	profile      []segments.Segment
	maxDensity   float64

	startAscentIndex int
	index            int
	elapsed          float64 // seconds at start of current segment
	mndArmed         bool
	mndBars          float64
}

func newScanContext(eo *EventOptions) *scanContext {
	simple := physics.NewSimpleDepthConverter()
	speeds := options.NewAscentSpeeds(eo.ProfileOptions)
	speeds.MarkAverageDepth(segments.AverageDepth(eo.Profile))
	maxDensity := eo.MaxDensity
	if maxDensity <= 0 {
		maxDensity = gases.DefaultMaxDensity
	}
	return &scanContext{
		simpleDepths:     simple,
		density:          gases.NewDensityAtDepth(eo.ProfileOptions.DepthConverter()),
		options:          eo.ProfileOptions,
		speeds:           speeds,
		events:           &profile.Events{},
		profile:          eo.Profile,
		maxDensity:       maxDensity,
		startAscentIndex: eo.StartAscentIndex,
		mndArmed:         true,
		mndBars:          simple.ToBar(eo.ProfileOptions.MaxEND),
	}
}

func (c *scanContext) current() segments.Segment {
	return c.profile[c.index]
}

func (c *scanContext) previous() (segments.Segment, bool) {
	if c.index == 0 {
		return segments.Segment{}, false
	}
	return c.profile[c.index-1], true
}

func (c *scanContext) beforeDecoAscent() bool {
	return c.index < c.startAscentIndex
}

func (c *scanContext) maxPpO2() float64 {
	if c.beforeDecoAscent() {
		return c.options.MaxPpO2
	}
	return c.options.MaxDecoPpO2
}

func (c *scanContext) switchingGas() bool {
	previous, ok := c.previous()
	return ok && !c.current().Gas.CompositionEquals(previous.Gas)
}

// tanks are assigned only by the diver
func (c *scanContext) switchingTank() bool {
	previous, ok := c.previous()
	current := c.current()
	return ok && previous.HasTank() && current.HasTank() && previous.Tank != current.Tank
}

func (c *scanContext) currentEndTime() float64 {
	return c.elapsed + c.current().Duration
}

// gasEnd returns equivalent narcotic depth in bars of the current gas
func (c *scanContext) gasEnd(bars float64) float64 {
	return c.current().Gas.END(bars, c.options.OxygenNarcotic)
}

func (c *scanContext) add(event profile.Event) {
	c.events.Add(event)
}

// ceilingContext walks the ceilings along the segments
type ceilingContext struct {
	index     int // ceilings before index were already checked
	start     float64
	end       float64
	armed     bool
	ceilings  []profile.Ceiling
	scanState *scanContext
}

func newCeilingContext(ceilings []profile.Ceiling, sc *scanContext) *ceilingContext {
	return &ceilingContext{armed: true, ceilings: ceilings, scanState: sc}
}

func (c *ceilingContext) assignSegment(s segments.Segment) {
	c.start = c.end
	c.end = c.start + s.Duration
}

// belowCeiling is true if the diver is at least as deep as the ceiling
func (c *ceilingContext) belowCeiling(ceiling profile.Ceiling, s segments.Segment) bool {
	elapsed := math.Min(math.Max(ceiling.Time-c.start, 0), s.Duration)
	diverDepth := physics.Round(s.DepthAt(elapsed), 6)
	return diverDepth >= ceiling.Depth
}
