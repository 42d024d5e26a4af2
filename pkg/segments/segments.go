package segments

import (
	"slices"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/mpapenbr/diveplanner-go/pkg/gases"
)

const ascentNotMarked = -1

// Segments is the dive profile in chronological order.
type Segments struct {
	items       []Segment
	ascentIndex int
}

func NewSegments() *Segments {
	return &Segments{ascentIndex: ascentNotMarked}
}

func FromCollection(items []Segment) *Segments {
	return &Segments{items: slices.Clone(items), ascentIndex: ascentNotMarked}
}

// Add appends a segment starting at depth where the last one ends
func (s *Segments) Add(endDepth float64, gas gases.Gas, duration float64) *Segment {
	startDepth := 0.0
	if len(s.items) > 0 {
		startDepth = s.items[len(s.items)-1].EndDepth
	}
	return s.AddSegment(New(startDepth, endDepth, gas, duration))
}

// AddSegment appends a copy of segment and returns pointer to the stored one
func (s *Segments) AddSegment(segment Segment) *Segment {
	s.items = append(s.items, segment)
	return &s.items[len(s.items)-1]
}

// EnterWater adds descent from surface to depth at speed in meters/minute
func (s *Segments) EnterWater(gas gases.Gas, speed, depth float64) *Segment {
	duration := depth / speed * 60
	return s.AddSegment(New(0, depth, gas, duration))
}

func (s *Segments) AddFlat(depth float64, gas gases.Gas, duration float64) *Segment {
	return s.AddSegment(New(depth, depth, gas, duration))
}

// MergeFlat joins neighbor flat segments at the same depth with the same gas
func (s *Segments) MergeFlat() []Segment {
	if len(s.items) < 2 {
		return s.Items()
	}
	merged := make([]Segment, 0, len(s.items))
	merged = append(merged, s.items[0])
	for _, current := range s.items[1:] {
		last := &merged[len(merged)-1]
		if last.LevelEquals(current) {
			last.AddTime(current)
			continue
		}
		merged = append(merged, current)
	}
	s.items = merged
	s.ascentIndex = ascentNotMarked
	return s.Items()
}

// Copy returns deep copy, changes to its segments don't affect the source
func (s *Segments) Copy() *Segments {
	return &Segments{items: slices.Clone(s.items), ascentIndex: s.ascentIndex}
}

// Items returns copy of the segments
func (s *Segments) Items() []Segment {
	return slices.Clone(s.items)
}

func (s *Segments) Len() int {
	return len(s.items)
}

func (s *Segments) Any() bool {
	return len(s.items) > 0
}

// At returns pointer to the stored segment, allowing in place changes
func (s *Segments) At(index int) *Segment {
	return &s.items[index]
}

// Last returns pointer to the stored last segment or nil
func (s *Segments) Last() *Segment {
	if len(s.items) == 0 {
		return nil
	}
	return &s.items[len(s.items)-1]
}

// CutDown removes all segments from index
func (s *Segments) CutDown(index int) {
	if index < len(s.items) {
		s.items = s.items[:index]
	}
}

// Duration in seconds
func (s *Segments) Duration() float64 {
	return Duration(s.items)
}

func (s *Segments) MaxDepth() float64 {
	return MaxDepth(s.items)
}

// AverageDepth is the time weighted average depth
func (s *Segments) AverageDepth() float64 {
	return AverageDepth(s.items)
}

// DeepestPart returns the segments up to and including the last one reaching max. depth
func (s *Segments) DeepestPart() []Segment {
	if len(s.items) == 0 {
		return []Segment{}
	}
	deepest := s.MaxDepth()
	_, index, _ := lo.FindLastIndexOf(s.items, func(item Segment) bool {
		return item.EndDepth == deepest
	})
	if index < 0 {
		// only reached as start depth of first segment
		index = 0
	}
	return slices.Clone(s.items[:index+1])
}

// MarkAscentStart remembers the index of first segment generated by the algorithm
func (s *Segments) MarkAscentStart(index int) {
	s.ascentIndex = index
}

// StartAscentIndex is the index of first segment considered as decompression ascent.
// All segments before are defined by the diver.
func (s *Segments) StartAscentIndex() int {
	if s.ascentIndex == ascentNotMarked {
		return len(s.items)
	}
	return s.ascentIndex
}

// StartAscentTime is the elapsed time in seconds at StartAscentIndex
func (s *Segments) StartAscentTime() float64 {
	return Duration(s.items[:min(s.StartAscentIndex(), len(s.items))])
}

func (s *Segments) ForEach(callback func(segment Segment)) {
	for _, item := range s.items {
		callback(item)
	}
}

func Duration(items []Segment) float64 {
	return floats.Sum(durations(items))
}

func MaxDepth(items []Segment) float64 {
	if len(items) == 0 {
		return 0
	}
	return lo.Max(lo.Map(items, func(s Segment, _ int) float64 { return s.MaxDepth() }))
}

// AverageDepth is the time weighted average depth of the segments
func AverageDepth(items []Segment) float64 {
	if Duration(items) == 0 {
		return 0
	}
	depths := lo.Map(items, func(s Segment, _ int) float64 { return s.AverageDepth() })
	return stat.Mean(depths, durations(items))
}

func durations(items []Segment) []float64 {
	return lo.Map(items, func(s Segment, _ int) float64 { return s.Duration })
}
