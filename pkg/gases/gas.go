package gases

import (
	"fmt"
	"math"
)

const (
	// minimum ppO2 to stay conscious
	MinPpO2 = 0.18
	// nitrogen fraction of air used as the narcotic reference
	airN2 = 0.79
)

// DepthConverter is the part of physics.DepthConverter needed by gas queries
type DepthConverter interface {
	ToBar(depth float64) float64
	FromBar(bars float64) float64
	SurfacePressure() float64
}

// Gas is a breathing gas, fractions in range 0-1.
type Gas struct {
	FO2 float64 `json:"fO2" yaml:"fO2"`
	FHe float64 `json:"fHe" yaml:"fHe"`
}

func New(fO2, fHe float64) Gas {
	return Gas{FO2: fO2, FHe: fHe}
}

func (g Gas) FN2() float64 {
	return 1 - g.FO2 - g.FHe
}

// ContentCode identifies gases with physically identical content.
func (g Gas) ContentCode() uint64 {
	const fourK = 10000
	o2 := uint64(math.Round(g.FO2 * fourK))
	he := uint64(math.Round(g.FHe * fourK))
	return o2*fourK + he
}

func (g Gas) CompositionEquals(other Gas) bool {
	return g.ContentCode() == other.ContentCode()
}

// MOD returns maximum operating pressure in bars for given ppO2
func (g Gas) MOD(ppO2 float64) float64 {
	return ppO2 / g.FO2
}

// Ceiling returns the minimum pressure in bars where the gas is breathable,
// never less than surfacePressure.
func (g Gas) Ceiling(surfacePressure float64) float64 {
	bars := MinPpO2 / g.FO2
	return math.Max(bars, surfacePressure)
}

// END returns equivalent narcotic depth in bars for the ambient pressure in bars
func (g Gas) END(depth float64, oxygenNarcotic bool) float64 {
	if oxygenNarcotic {
		// nitrogen and oxygen, air narcotic fraction is 1
		return depth * (1 - g.FHe)
	}
	return depth * g.FN2() / airN2
}

// MODDepth is the MOD in meters
func (g Gas) MODDepth(ppO2 float64, c DepthConverter) float64 {
	return c.FromBar(g.MOD(ppO2))
}

// CeilingDepth is the gas ceiling in meters
func (g Gas) CeilingDepth(c DepthConverter) float64 {
	return c.FromBar(g.Ceiling(c.SurfacePressure()))
}

// ENDDepth returns equivalent narcotic depth in meters for depth in meters
func (g Gas) ENDDepth(depth float64, oxygenNarcotic bool, c DepthConverter) float64 {
	return math.Max(0, c.FromBar(g.END(c.ToBar(depth), oxygenNarcotic)))
}

// Name returns Air, EANxx, Oxygen or trimix label
func (g Gas) Name() string {
	o2 := int(math.Round(g.FO2 * 100))
	he := int(math.Round(g.FHe * 100))
	switch {
	case he > 0:
		return fmt.Sprintf("%d/%d", o2, he)
	case o2 == 21:
		return "Air"
	case o2 == 100:
		return "Oxygen"
	default:
		return fmt.Sprintf("EAN%d", o2)
	}
}

func (g Gas) String() string {
	return g.Name()
}
