package profile

import (
	"slices"

	"github.com/mpapenbr/diveplanner-go/pkg/segments"
)

// Ceiling is the shallowest depth (meters) the diver may reach at Time (seconds)
type Ceiling struct {
	Time  float64 `json:"time" yaml:"time"`
	Depth float64 `json:"depth" yaml:"depth"`
}

// CalculatedProfile is the result of the decompression algorithm.
// Segments contain the user defined part followed by the generated ascent.
type CalculatedProfile struct {
	Segments *segments.Segments
	Ceilings []Ceiling
	Errors   []Event
}

func (p *CalculatedProfile) HasErrors() bool {
	return len(p.Errors) > 0
}

// Copy returns a profile which shares no mutable data with p
func (p *CalculatedProfile) Copy() *CalculatedProfile {
	return &CalculatedProfile{
		Segments: p.Segments.Copy(),
		Ceilings: slices.Clone(p.Ceilings),
		Errors:   slices.Clone(p.Errors),
	}
}
