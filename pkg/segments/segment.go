package segments

import (
	"fmt"
	"math"

	"github.com/mpapenbr/diveplanner-go/pkg/gases"
	"github.com/mpapenbr/diveplanner-go/pkg/tanks"
)

// Segment is one leg of the dive. Depths in meters, duration in seconds.
type Segment struct {
	StartDepth float64
	EndDepth   float64
	Gas        gases.Gas
	Duration   float64
	// Tank is the id of the tank assigned by the diver, tanks.NoTank for
	// segments generated by the algorithm.
	Tank int
}

func New(startDepth, endDepth float64, gas gases.Gas, duration float64) Segment {
	return Segment{StartDepth: startDepth, EndDepth: endDepth, Gas: gas, Duration: duration}
}

// Speed in meters per second, negative for ascent
func (s Segment) Speed() float64 {
	return Speed(s.StartDepth, s.EndDepth, s.Duration)
}

func (s Segment) IsFlat() bool {
	return s.StartDepth == s.EndDepth
}

func (s Segment) IsDescent() bool {
	return s.StartDepth < s.EndDepth
}

func (s Segment) IsAscent() bool {
	return s.StartDepth > s.EndDepth
}

func (s Segment) HasTank() bool {
	return s.Tank != tanks.NoTank
}

func (s Segment) AverageDepth() float64 {
	return (s.StartDepth + s.EndDepth) / 2
}

func (s Segment) MaxDepth() float64 {
	return math.Max(s.StartDepth, s.EndDepth)
}

func (s Segment) MinDepth() float64 {
	return math.Min(s.StartDepth, s.EndDepth)
}

// DepthAt returns depth after elapsed seconds from segment start
func (s Segment) DepthAt(elapsed float64) float64 {
	return DepthAt(s.StartDepth, s.Speed(), elapsed)
}

// TimeAt returns seconds from segment start when depth is reached
func (s Segment) TimeAt(depth float64) float64 {
	return TimeAt(s.StartDepth, s.Speed(), depth)
}

// LevelEquals is true for two flat segments at the same depth with same gas
func (s Segment) LevelEquals(other Segment) bool {
	return s.IsFlat() && other.IsFlat() &&
		s.StartDepth == other.StartDepth &&
		s.Gas.CompositionEquals(other.Gas)
}

func (s *Segment) AddTime(other Segment) {
	s.Duration += other.Duration
}

func (s Segment) String() string {
	return fmt.Sprintf("%.1f->%.1f m %s %.0fs", s.StartDepth, s.EndDepth, s.Gas.Name(), s.Duration)
}

// Speed returns meters per second
func Speed(startDepth, endDepth, duration float64) float64 {
	if duration == 0 {
		return 0
	}
	return (endDepth - startDepth) / duration
}

func DepthAt(startDepth, speed, elapsed float64) float64 {
	return startDepth + speed*elapsed
}

func TimeAt(startDepth, speed, depth float64) float64 {
	if speed == 0 {
		return 0
	}
	return (depth - startDepth) / speed
}
