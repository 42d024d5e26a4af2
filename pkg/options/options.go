package options

import (
	"github.com/mpapenbr/diveplanner-go/pkg/physics"
)

type SafetyStop int

const (
	SafetyStopNever SafetyStop = iota
	SafetyStopAuto
	SafetyStopAlways
)

// depth from which the auto safety stop is added
const SafetyStopAutoDepth = 10.0

// Options controls the profile calculation. Depths in meters, speeds in meters/minute,
// durations in minutes.
//
//nolint:lll // readability
type Options struct {
	GfLow                  float64          `json:"gfLow" yaml:"gfLow" validate:"gt=0,lte=1"`
	GfHigh                 float64          `json:"gfHigh" yaml:"gfHigh" validate:"gt=0,lte=1,gtefield=GfLow"`
	MaxPpO2                float64          `json:"maxPpO2" yaml:"maxPpO2" validate:"gt=0,lte=3"`
	MaxDecoPpO2            float64          `json:"maxDecoPpO2" yaml:"maxDecoPpO2" validate:"gt=0,lte=3"`
	Salinity               physics.Salinity `json:"salinity" yaml:"salinity" validate:"gte=1,lte=3"`
	Altitude               float64          `json:"altitude" yaml:"altitude" validate:"gte=0,lte=5000"`
	RoundStopsToMinutes    bool             `json:"roundStopsToMinutes" yaml:"roundStopsToMinutes"`
	GasSwitchDuration      float64          `json:"gasSwitchDuration" yaml:"gasSwitchDuration" validate:"gte=0"`
	SafetyStop             SafetyStop       `json:"safetyStop" yaml:"safetyStop" validate:"gte=0,lte=2"`
	LastStopDepth          float64          `json:"lastStopDepth" yaml:"lastStopDepth" validate:"gte=0"`
	DecoStopDistance       float64          `json:"decoStopDistance" yaml:"decoStopDistance" validate:"gt=0"`
	MinimumAutoStopDepth   float64          `json:"minimumAutoStopDepth" yaml:"minimumAutoStopDepth" validate:"gte=0"`
	MaxEND                 float64          `json:"maxEND" yaml:"maxEND" validate:"gt=0"`
	OxygenNarcotic         bool             `json:"oxygenNarcotic" yaml:"oxygenNarcotic"`
	AscentSpeed6m          float64          `json:"ascentSpeed6m" yaml:"ascentSpeed6m" validate:"gt=0"`
	AscentSpeed50percTo6m  float64          `json:"ascentSpeed50percTo6m" yaml:"ascentSpeed50percTo6m" validate:"gt=0"`
	AscentSpeed50perc      float64          `json:"ascentSpeed50perc" yaml:"ascentSpeed50perc" validate:"gt=0"`
	DescentSpeed           float64          `json:"descentSpeed" yaml:"descentSpeed" validate:"gt=0"`
	ProblemSolvingDuration float64          `json:"problemSolvingDuration" yaml:"problemSolvingDuration" validate:"gte=0"`
}

func DefaultOptions() *Options {
	return &Options{
		GfLow:                  0.4,
		GfHigh:                 0.85,
		MaxPpO2:                1.4,
		MaxDecoPpO2:            1.6,
		Salinity:               physics.SalinitySalt,
		Altitude:               0,
		RoundStopsToMinutes:    false,
		GasSwitchDuration:      2,
		SafetyStop:             SafetyStopAuto,
		LastStopDepth:          3,
		DecoStopDistance:       3,
		MinimumAutoStopDepth:   10,
		MaxEND:                 30,
		OxygenNarcotic:         true,
		AscentSpeed6m:          3,
		AscentSpeed50percTo6m:  6,
		AscentSpeed50perc:      9,
		DescentSpeed:           18,
		ProblemSolvingDuration: 1,
	}
}

// RecreationalOptions uses single ascent speed and rounded stops
func RecreationalOptions() *Options {
	o := DefaultOptions()
	o.GfLow = 0.85
	o.RoundStopsToMinutes = true
	o.GasSwitchDuration = 1
	o.LastStopDepth = 5
	o.AscentSpeed6m = 10
	o.AscentSpeed50percTo6m = 10
	o.AscentSpeed50perc = 10
	o.DescentSpeed = 20
	o.ProblemSolvingDuration = 2
	return o
}

func (o *Options) Copy() *Options {
	c := *o
	return &c
}

// DepthConverter returns the exact converter for salinity and altitude
func (o *Options) DepthConverter() *physics.DepthConverter {
	return physics.NewDepthConverter(o.Salinity, o.Altitude)
}
