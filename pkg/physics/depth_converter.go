package physics

import "math"

type Salinity int

const (
	SalinityFresh Salinity = iota + 1
	SalinityBrackish
	SalinitySalt
)

const (
	// standard atmosphere at sea level in bar
	StandardPressure = 1.01325
	Gravity          = 9.80665 // m/s2
	pascalPerBar     = 100000.0
)

// water density in kg/m3
func (s Salinity) Density() float64 {
	switch s {
	case SalinityFresh:
		return 1000
	case SalinityBrackish:
		return 1020 // EN13319
	default:
		return 1030
	}
}

func (s Salinity) String() string {
	switch s {
	case SalinityFresh:
		return "fresh"
	case SalinityBrackish:
		return "brackish"
	case SalinitySalt:
		return "salt"
	default:
		return "unknown"
	}
}

// DepthConverter converts between depth in meters and ambient pressure in bar
type DepthConverter struct {
	surfacePressure float64
	barPerMeter     float64
}

// NewSimpleDepthConverter uses the well known rounded values: 1 bar at surface
// and 10 m per bar. Used for values presented to the diver (e.g. 6 m MOD of oxygen).
func NewSimpleDepthConverter() *DepthConverter {
	return &DepthConverter{surfacePressure: 1, barPerMeter: 0.1}
}

// NewDepthConverter creates the exact converter for water type and altitude (meters)
func NewDepthConverter(salinity Salinity, altitude float64) *DepthConverter {
	return &DepthConverter{
		surfacePressure: AltitudePressure(altitude),
		barPerMeter:     salinity.Density() * Gravity / pascalPerBar,
	}
}

func (c *DepthConverter) SurfacePressure() float64 {
	return c.surfacePressure
}

// ToBar returns the absolute pressure at depth
func (c *DepthConverter) ToBar(depth float64) float64 {
	return c.surfacePressure + depth*c.barPerMeter
}

// FromBar returns the depth where absolute pressure is reached
func (c *DepthConverter) FromBar(bars float64) float64 {
	return (bars - c.surfacePressure) / c.barPerMeter
}

// AltitudePressure uses the barometric formula for the standard atmosphere.
func AltitudePressure(altitude float64) float64 {
	const (
		lapseRate   = 0.0065    // K/m
		temperature = 288.15    // K
		molarMass   = 0.0289644 // kg/mol
		gasConstant = 8.31432   // J/(mol K)
	)
	if altitude <= 0 {
		return StandardPressure
	}
	base := 1 - lapseRate*altitude/temperature
	exponent := Gravity * molarMass / (gasConstant * lapseRate)
	return StandardPressure * math.Pow(base, exponent)
}
