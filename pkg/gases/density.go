package gases

const (
	// densities at 1 atm and 0 °C in g/l
	oxygenDensity   = 1.429
	nitrogenDensity = 1.2506
	heliumDensity   = 0.1785
	// pressure the densities above are measured at
	normalPressure = 1.01325

	DefaultMaxDensity = 5.5 // g/l
)

type DensityAtDepth struct {
	converter DepthConverter
}

func NewDensityAtDepth(c DepthConverter) *DensityAtDepth {
	return &DensityAtDepth{converter: c}
}

// AtDepth returns gas density in g/l at depth in meters
func (d *DensityAtDepth) AtDepth(g Gas, depth float64) float64 {
	return d.ForPressure(g, d.converter.ToBar(depth))
}

// ForPressure returns gas density in g/l at absolute pressure in bars
func (d *DensityAtDepth) ForPressure(g Gas, bars float64) float64 {
	surface := g.FO2*oxygenDensity + g.FN2()*nitrogenDensity + g.FHe*heliumDensity
	return surface * bars / normalPressure
}
