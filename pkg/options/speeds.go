package options

const speedBandShallow = 6.0 // meters

// AscentSpeeds resolves the maximum ascent speed for a depth
type AscentSpeeds struct {
	options      *Options
	averageDepth float64
}

func NewAscentSpeeds(o *Options) *AscentSpeeds {
	return &AscentSpeeds{options: o}
}

// MarkAverageDepth sets the depth the 50% limit is derived from
func (a *AscentSpeeds) MarkAverageDepth(depth float64) {
	a.averageDepth = depth
}

// Ascent returns maximum ascent speed in meters/minute at depth
func (a *AscentSpeeds) Ascent(depth float64) float64 {
	if depth <= speedBandShallow {
		return a.options.AscentSpeed6m
	}
	if depth <= a.averageDepth/2 {
		return a.options.AscentSpeed50percTo6m
	}
	return a.options.AscentSpeed50perc
}

// NextBand returns the shallower depth where Ascent changes, or 0
func (a *AscentSpeeds) NextBand(depth float64) float64 {
	half := a.averageDepth / 2
	if depth > half && half > speedBandShallow {
		return half
	}
	if depth > speedBandShallow {
		return speedBandShallow
	}
	return 0
}
