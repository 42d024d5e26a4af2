// Package events scans a calculated profile for situations the diver should be aware of.
package events

import (
	"github.com/mpapenbr/diveplanner-go/pkg/options"
	"github.com/mpapenbr/diveplanner-go/pkg/physics"
	"github.com/mpapenbr/diveplanner-go/pkg/profile"
	"github.com/mpapenbr/diveplanner-go/pkg/segments"
)

type EventOptions struct {
	// MaxDensity in g/l, defaults to 5.5
	MaxDensity float64
	// StartAscentIndex is the number of segments defined by the diver,
	// later segments are the decompression ascent
	StartAscentIndex int
	// Profile contains user defined segments followed by calculated ascent
	Profile  []segments.Segment
	Ceilings []profile.Ceiling
	// ProfileOptions used to calculate the profile
	ProfileOptions *options.Options
}

// FromProfile returns the events in order of the segments.
// Events of one segment are ordered by rule, not by timestamp.
func FromProfile(eo *EventOptions) *profile.Events {
	c := newScanContext(eo)
	cc := newCeilingContext(eo.Ceilings, c)

	for c.index = 0; c.index < len(eo.Profile); c.index++ {
		ps := toPressureSegment(c.current(), c.simpleDepths)
		addHighPpO2(c, ps)
		addLowPpO2(c, ps)
		addGasSwitch(c)
		addUserTankSwitch(c)
		addHighDescentSpeed(c)
		addHighAscentSpeed(c)
		addSwitchHighN2(c)
		addMndExceeded(c, ps)
		addDensityExceeded(c)

		cc.assignSegment(c.current())
		addBrokenCeiling(cc, c.current())

		c.elapsed = c.currentEndTime()
	}
	return c.events
}

// only descent or gas switch defined by the diver, gas switches in ascent
// are chosen by the algorithm and never exceed the deco ppO2.
func addHighPpO2(c *scanContext, ps pressureSegment) {
	if !ps.isDescent() && (!c.beforeDecoAscent() || !c.switchingGas()) {
		return
	}
	gasMod := c.current().Gas.MOD(c.maxPpO2())
	if ps.maxDepth() <= gasMod {
		return
	}
	highDepth := ps.startDepth // gas switch
	timestamp := c.elapsed
	if ps.startDepth < gasMod {
		highDepth = gasMod
		timestamp += ps.timeAt(highDepth)
	}
	c.add(profile.NewEvent(timestamp, c.simpleDepths.FromBar(highDepth), profile.EventHighPpO2))
}

func addLowPpO2(c *scanContext, ps pressureSegment) {
	current := c.current()
	gasCeiling := current.Gas.Ceiling(c.simpleDepths.SurfacePressure())
	switching := ps.minDepth() < gasCeiling && c.switchingGas()
	ascending := ps.startDepth > gasCeiling && gasCeiling > ps.endDepth && ps.isAscent()
	diveStart := current.StartDepth == 0 && ps.startDepth < gasCeiling && ps.isDescent()
	if !switching && !ascending && !diveStart {
		return
	}
	lowDepth := ps.startDepth
	timestamp := c.elapsed
	if ps.startDepth > gasCeiling {
		lowDepth = gasCeiling
		timestamp += ps.timeAt(lowDepth)
	}
	c.add(profile.NewEvent(timestamp, c.simpleDepths.FromBar(lowDepth), profile.EventLowPpO2))
}

func addGasSwitch(c *scanContext) {
	if c.switchingGas() {
		current := c.current()
		c.add(profile.NewGasEvent(c.elapsed, current.StartDepth, profile.EventGasSwitch, current.Gas))
	}
}

func addUserTankSwitch(c *scanContext) {
	if c.switchingTank() {
		current := c.current()
		c.add(profile.NewGasEvent(c.elapsed, current.StartDepth, profile.EventGasSwitch, current.Gas))
	}
}

func addHighDescentSpeed(c *scanContext) {
	current := c.current()
	if physics.PerMinute(current.Speed()) > c.options.DescentSpeed {
		c.add(profile.NewEvent(c.elapsed, current.StartDepth, profile.EventHighDescentSpeed))
	}
}

func addHighAscentSpeed(c *scanContext) {
	current := c.current()
	// generated segments may contain floating point noise
	speed := physics.RoundTwoDecimals(physics.PerMinute(current.Speed()))
	if -speed > c.speeds.Ascent(current.StartDepth) {
		c.add(profile.NewEvent(c.elapsed, current.StartDepth, profile.EventHighAscentSpeed))
	}
}

// switch from trimix to gas with disproportionately more nitrogen
func addSwitchHighN2(c *scanContext) {
	previous, ok := c.previous()
	if !ok || !c.switchingGas() {
		return
	}
	current := c.current()
	deltaN2 := current.Gas.FN2() - previous.Gas.FN2()
	deltaHe := current.Gas.FHe - previous.Gas.FHe
	if previous.Gas.FHe > 0 && deltaN2*5 > -deltaHe {
		c.add(profile.NewGasEvent(c.elapsed, current.StartDepth,
			profile.EventSwitchToHigherN2, current.Gas))
	}
}

// checks start and end, because the next segment may use another gas.
// Fires once until the narcotic depth is left again.
func addMndExceeded(c *scanContext, ps pressureSegment) {
	current := c.current()
	if c.mndArmed && c.gasEnd(ps.startDepth) > c.mndBars {
		c.add(profile.NewGasEvent(c.elapsed, current.StartDepth,
			profile.EventMaxEndExceeded, current.Gas))
		c.mndArmed = false
	}
	endExceeded := c.gasEnd(ps.endDepth) > c.mndBars
	if c.mndArmed && endExceeded {
		c.add(profile.NewGasEvent(c.currentEndTime(), current.EndDepth,
			profile.EventMaxEndExceeded, current.Gas))
	}
	c.mndArmed = !endExceeded
}

// first segment starts at surface, so there is never high density at its start
func addDensityExceeded(c *scanContext) {
	current := c.current()
	startDensity := c.density.AtDepth(current.Gas, current.StartDepth)
	endDensity := c.density.AtDepth(current.Gas, current.EndDepth)

	switch {
	case c.switchingGas() && startDensity > c.maxDensity:
		c.add(profile.NewGasEvent(c.elapsed, current.StartDepth,
			profile.EventHighGasDensity, current.Gas))
	case current.IsDescent() && endDensity > c.maxDensity:
		c.add(profile.NewGasEvent(c.currentEndTime(), current.EndDepth,
			profile.EventHighGasDensity, current.Gas))
	}
}

// ceilings after the segment end are left for the next segment
func addBrokenCeiling(cc *ceilingContext, s segments.Segment) {
	for cc.index < len(cc.ceilings) {
		ceiling := cc.ceilings[cc.index]
		if ceiling.Time > cc.end {
			return
		}
		cc.index++

		below := cc.belowCeiling(ceiling, s)
		if !below && cc.armed {
			cc.scanState.add(profile.NewEvent(ceiling.Time, ceiling.Depth, profile.EventBrokenCeiling))
			cc.armed = false
		}
		if below {
			cc.armed = true
		}
	}
}
