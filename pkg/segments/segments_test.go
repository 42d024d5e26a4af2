package segments

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/mpapenbr/diveplanner-go/pkg/gases"
	"github.com/mpapenbr/diveplanner-go/pkg/physics"
)

func sampleProfile() *Segments {
	s := NewSegments()
	s.Add(30, gases.Air, 180)
	s.AddFlat(30, gases.Air, 1200)
	s.Add(0, gases.Air, 180)
	return s
}

func TestSegment_Derived(t *testing.T) {
	descent := New(0, 30, gases.Air, 120)
	assert.InDelta(t, 0.25, descent.Speed(), 1e-9)
	assert.True(t, descent.IsDescent())
	assert.InDelta(t, 15.0, descent.DepthAt(60), 1e-9)
	assert.InDelta(t, 40.0, descent.TimeAt(10), 1e-9)

	ascent := New(30, 0, gases.Air, 180)
	assert.True(t, ascent.IsAscent())
	assert.Negative(t, ascent.Speed())

	flat := New(20, 20, gases.Air, 0)
	assert.True(t, flat.IsFlat())
	assert.InDelta(t, 0.0, flat.Speed(), 0)
	assert.InDelta(t, 20.0, flat.DepthAt(10), 0)
}

func TestSegment_LevelEquals(t *testing.T) {
	a := New(20, 20, gases.Air, 60)
	assert.True(t, a.LevelEquals(New(20, 20, gases.New(0.209, 0), 10)))
	assert.False(t, a.LevelEquals(New(20, 20, gases.EAN32, 10)))
	assert.False(t, a.LevelEquals(New(20, 15, gases.Air, 10)))
}

func TestSegments_Aggregates(t *testing.T) {
	s := sampleProfile()
	assert.Equal(t, 3, s.Len())
	assert.InDelta(t, 1560.0, s.Duration(), 0)
	assert.InDelta(t, 30.0, s.MaxDepth(), 0)
	// (15*180 + 30*1200 + 15*180) / 1560
	assert.InDelta(t, 26.538, s.AverageDepth(), 0.001)
	assert.InDelta(t, 0.0, NewSegments().AverageDepth(), 0)
}

func TestSegments_EnterWater(t *testing.T) {
	s := NewSegments()
	seg := s.EnterWater(gases.Air, 20, 30)
	assert.InDelta(t, 90.0, seg.Duration, 1e-9)
	assert.InDelta(t, 0.0, seg.StartDepth, 0)
}

func TestSegments_MergeFlat(t *testing.T) {
	s := NewSegments()
	s.Add(20, gases.Air, 60)
	s.AddFlat(20, gases.Air, 60)
	s.AddFlat(20, gases.Air, 120)
	s.AddFlat(20, gases.EAN32, 60)
	s.Add(0, gases.EAN32, 120)

	got := s.MergeFlat()
	want := []Segment{
		New(0, 20, gases.Air, 60),
		New(20, 20, gases.Air, 180),
		New(20, 20, gases.EAN32, 60),
		New(20, 0, gases.EAN32, 120),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MergeFlat() mismatch (-want +got):\n%s", diff)
	}
}

func TestSegments_CopyIsDeep(t *testing.T) {
	source := sampleProfile()
	copied := source.Copy()
	copied.Last().Duration = 1
	copied.AddFlat(0, gases.Air, 10)
	assert.InDelta(t, 180.0, source.Last().Duration, 0)
	assert.Equal(t, 3, source.Len())
}

func TestSegments_DeepestPart(t *testing.T) {
	s := NewSegments()
	s.Add(30, gases.Air, 180)
	s.AddFlat(30, gases.Air, 600)
	s.Add(20, gases.Air, 60)
	s.AddFlat(20, gases.Air, 600)
	s.Add(0, gases.Air, 120)

	part := s.DeepestPart()
	assert.Len(t, part, 2)
	assert.InDelta(t, 30.0, part[1].EndDepth, 0)
	assert.Empty(t, NewSegments().DeepestPart())
}

func TestSegments_AscentMark(t *testing.T) {
	s := sampleProfile()
	assert.Equal(t, 3, s.StartAscentIndex())
	s.MarkAscentStart(2)
	assert.Equal(t, 2, s.StartAscentIndex())
	assert.InDelta(t, 1380.0, s.StartAscentTime(), 0)
}

func TestValidate(t *testing.T) {
	simple := physics.NewSimpleDepthConverter()
	assert.Empty(t, Validate(sampleProfile(), 1.4, simple))
	assert.Equal(t, []string{MsgNoSegment}, Validate(NewSegments(), 1.4, simple))

	tooDeep := NewSegments()
	tooDeep.Add(40, gases.EAN50, 120)
	assert.Equal(t, []string{MsgNotBreathableMod}, Validate(tooDeep, 1.4, simple))

	hypoxic := NewSegments()
	hypoxic.Add(40, gases.New(0.1, 0.7), 120)
	assert.Equal(t, []string{MsgNotBreathableCeil}, Validate(hypoxic, 1.4, simple))
}
