package basedata

import (
	"github.com/mpapenbr/diveplanner-go/pkg/gases"
	"github.com/mpapenbr/diveplanner-go/pkg/options"
	"github.com/mpapenbr/diveplanner-go/pkg/physics"
	"github.com/mpapenbr/diveplanner-go/pkg/segments"
	"github.com/mpapenbr/diveplanner-go/pkg/tanks"
)

const descentSpeed = 20.0 // m/min

// SampleTank is a 15 liter 200 bar air tank
func SampleTank() *tanks.Tank {
	return tanks.New(1, 15, 200, gases.Air)
}

// SampleTanks contains back gas and a EAN50 stage
func SampleTanks() []*tanks.Tank {
	return []*tanks.Tank{
		tanks.New(1, 24, 200, gases.Air),
		tanks.New(2, 11.1, 200, gases.EAN50),
	}
}

// SampleDive descends at 20 m/min and stays at depth for bottomMinutes.
// Both segments are assigned to tank 1.
func SampleDive(gas gases.Gas, depth, bottomMinutes float64) *segments.Segments {
	s := segments.NewSegments()
	s.EnterWater(gas, descentSpeed, depth).Tank = 1
	s.AddFlat(depth, gas, physics.ToSeconds(bottomMinutes)).Tank = 1
	return s
}

// SampleDiveNoTank is SampleDive without assigned tanks
func SampleDiveNoTank(gas gases.Gas, depth, bottomMinutes float64) *segments.Segments {
	s := segments.NewSegments()
	s.EnterWater(gas, descentSpeed, depth)
	s.AddFlat(depth, gas, physics.ToSeconds(bottomMinutes))
	return s
}

// SampleOptions uses ascent speed of 10 m/min in all depths and no safety stop
func SampleOptions() *options.Options {
	o := options.DefaultOptions()
	o.SafetyStop = options.SafetyStopNever
	o.AscentSpeed6m = 10
	o.AscentSpeed50percTo6m = 10
	o.AscentSpeed50perc = 10
	return o
}
