//nolint:funlen,lll // readability
package consumption

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/diveplanner-go/pkg/algorithm"
	"github.com/mpapenbr/diveplanner-go/pkg/gases"
	"github.com/mpapenbr/diveplanner-go/pkg/options"
	"github.com/mpapenbr/diveplanner-go/pkg/physics"
	"github.com/mpapenbr/diveplanner-go/pkg/segments"
	"github.com/mpapenbr/diveplanner-go/pkg/tanks"
	"github.com/mpapenbr/diveplanner-go/testsupport/basedata"
)

func newConsumption(o *options.Options, opts ...Option) *Consumption {
	return New(o.DepthConverter(), algorithm.NewDirectAscent(), opts...)
}

func calculate(t *testing.T, s *segments.Segments, o *options.Options) []segments.Segment {
	t.Helper()
	p, err := algorithm.NewDirectAscent().Decompression(context.Background(),
		algorithm.NewParams(s, nil, o))
	require.NoError(t, err)
	return p.Segments.Items()
}

func flat(depth, seconds float64, gas gases.Gas, tank int) segments.Segment {
	s := segments.New(depth, depth, gas, seconds)
	s.Tank = tank
	return s
}

func TestConsumeFromTanks_airDive(t *testing.T) {
	o := basedata.SampleOptions()
	tank := basedata.SampleTank()
	items := calculate(t, basedata.SampleDive(gases.Air, 30, 20), o)

	err := newConsumption(o).ConsumeFromTanks(context.Background(), items, o,
		[]*tanks.Tank{tank}, options.DefaultDiver())
	require.NoError(t, err)
	// descent 6 + bottom 108 + ascent 11
	assert.Equal(t, 125.0, tank.Consumed)
	// 1 min problem solving at 30 m + ascent using stress rmv
	assert.Equal(t, 47.0, tank.Reserve)
	assert.True(t, tank.HasReserve())
}

func TestConsumeFromTanks_invalidProfile(t *testing.T) {
	o := basedata.SampleOptions()
	c := newConsumption(o)
	tank := basedata.SampleTank()
	one := []segments.Segment{segments.New(0, 10, gases.Air, 60)}

	err := c.ConsumeFromTanks(context.Background(), one, o, []*tanks.Tank{tank}, options.DefaultDiver())
	assert.ErrorIs(t, err, ErrInvalidProfile)
	err = c.ConsumeFromTanks2(one, nil, []*tanks.Tank{tank}, options.DefaultDiver())
	assert.ErrorIs(t, err, ErrInvalidProfile)

	two := []segments.Segment{flat(10, 60, gases.Air, 0), flat(10, 60, gases.Air, 0)}
	err = c.ConsumeFromTanks2(two, nil, []*tanks.Tank{}, options.DefaultDiver())
	assert.ErrorIs(t, err, ErrNoTanks)
}

func TestConsumeFromTanks2_distribution(t *testing.T) {
	// simple converter: 2 bar at 10 m, rmv 60 l/min => 2 l/s at 10 m
	diver := options.NewDiver(60)
	tests := []struct {
		name         string
		items        []segments.Segment
		wantConsumed []float64
	}{
		{
			"by gas from last tank", []segments.Segment{
				flat(10, 600, gases.Air, tanks.NoTank),
				flat(10, 600, gases.Air, tanks.NoTank),
			},
			[]float64{140, 100, 0},
		},
		{
			"emptied tank continues from other tanks", []segments.Segment{
				flat(10, 600, gases.Air, 2),
				flat(10, 600, gases.Air, 1),
			},
			[]float64{140, 100, 0},
		},
		{
			"assigned tank only", []segments.Segment{
				flat(10, 150, gases.Air, 1),
				flat(10, 150, gases.Air, 1),
			},
			[]float64{60, 0, 0},
		},
		{
			"unknown tank consumed by gas", []segments.Segment{
				flat(10, 150, gases.Air, 9),
				flat(10, 150, gases.Air, 9),
			},
			[]float64{0, 60, 0},
		},
		{
			"not enough gas", []segments.Segment{
				flat(10, 3000, gases.Air, tanks.NoTank),
				flat(10, 3000, gases.Air, tanks.NoTank),
			},
			[]float64{200, 100, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tankList := []*tanks.Tank{
				tanks.New(1, 10, 200, gases.Air),
				tanks.New(2, 10, 100, gases.Air),
				tanks.New(3, 10, 200, gases.EAN50),
			}
			c := New(physics.NewSimpleDepthConverter(), algorithm.NewDirectAscent())
			err := c.ConsumeFromTanks2(tt.items, nil, tankList, diver)
			require.NoError(t, err)
			for i, want := range tt.wantConsumed {
				assert.Equal(t, want, tankList[i].Consumed, tankList[i].String())
			}
			assert.Equal(t, MinimumRockBottom, tankList[0].Reserve)
			assert.Equal(t, 0.0, tankList[2].Reserve)
		})
	}
}

func TestConsumeFromTanks2_reserve(t *testing.T) {
	// stress rmv 180 l/min => 6 l/s at 10 m
	diver := options.NewDiver(60)
	items := []segments.Segment{flat(10, 60, gases.Air, 1), flat(10, 60, gases.Air, 1)}
	tests := []struct {
		name        string
		ascent      []segments.Segment
		wantReserve []float64
	}{
		{
			"reverse order", []segments.Segment{flat(10, 600, gases.Air, tanks.NoTank)},
			[]float64{160, 200, 0},
		},
		{
			"rock bottom in first tank", []segments.Segment{flat(10, 10, gases.Air, tanks.NoTank)},
			[]float64{MinimumRockBottom, 6, 0},
		},
		{
			"per gas", []segments.Segment{
				flat(10, 100, gases.Air, tanks.NoTank),
				flat(6, 100, gases.EAN50, tanks.NoTank),
			},
			[]float64{MinimumRockBottom, 60, 48},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tankList := []*tanks.Tank{
				tanks.New(1, 10, 200, gases.Air),
				tanks.New(2, 10, 200, gases.Air),
				tanks.New(3, 10, 200, gases.EAN50),
			}
			c := New(physics.NewSimpleDepthConverter(), algorithm.NewDirectAscent())
			err := c.ConsumeFromTanks2(items, tt.ascent, tankList, diver)
			require.NoError(t, err)
			for i, want := range tt.wantReserve {
				assert.Equal(t, want, tankList[i].Reserve, tankList[i].String())
			}
		})
	}
}

func TestConsumeFromTanks_rockBottom(t *testing.T) {
	o := basedata.SampleOptions()
	items := calculate(t, basedata.SampleDive(gases.Air, 5, 10), o)
	tank := basedata.SampleTank()
	err := newConsumption(o).ConsumeFromTanks(context.Background(), items, o,
		[]*tanks.Tank{tank}, options.DefaultDiver())
	require.NoError(t, err)
	assert.Equal(t, MinimumRockBottom, tank.Reserve)

	tank = basedata.SampleTank()
	err = newConsumption(o, WithPrimaryReserve(50)).ConsumeFromTanks(context.Background(), items, o,
		[]*tanks.Tank{tank}, options.DefaultDiver())
	require.NoError(t, err)
	assert.Equal(t, 50.0, tank.Reserve)
}

func TestConsumeFromTanks_boundaries(t *testing.T) {
	o := basedata.SampleOptions()
	profiles := []*segments.Segments{
		basedata.SampleDive(gases.Air, 30, 20),
		basedata.SampleDive(gases.Air, 40, 60),
		basedata.SampleDiveNoTank(gases.Air, 15, 90),
		basedata.SampleDive(gases.EAN32, 5, 300),
	}
	for _, p := range profiles {
		items := calculate(t, p, o)
		tankList := basedata.SampleTanks()
		err := newConsumption(o).ConsumeFromTanks(context.Background(), items, o,
			tankList, options.DefaultDiver())
		require.NoError(t, err)
		for _, tank := range tankList {
			assert.GreaterOrEqual(t, tank.Consumed, 0.0)
			assert.GreaterOrEqual(t, tank.Reserve, 0.0)
			assert.LessOrEqual(t, tank.Consumed, tank.StartPressure)
			assert.LessOrEqual(t, tank.Reserve, tank.StartPressure)
		}
	}
}

func TestEmergencyAscent(t *testing.T) {
	o := basedata.SampleOptions()
	items := calculate(t, basedata.SampleDive(gases.Air, 30, 20), o)

	ascent, err := newConsumption(o).EmergencyAscent(context.Background(), items, o,
		[]*tanks.Tank{basedata.SampleTank()})
	require.NoError(t, err)
	require.Greater(t, len(ascent), 1)
	assert.Equal(t, flat(30, 60, gases.Air, tanks.NoTank), ascent[0])
	assert.True(t, ascent[1].IsAscent())
	assert.Equal(t, 0.0, ascent[len(ascent)-1].EndDepth)

	o.ProblemSolvingDuration = 0
	ascent, err = newConsumption(o).EmergencyAscent(context.Background(), items, o,
		[]*tanks.Tank{basedata.SampleTank()})
	require.NoError(t, err)
	assert.True(t, ascent[0].IsAscent())
	assert.Equal(t, 30.0, ascent[0].StartDepth)
}

func TestEmergencyAscent_fromDeepestPoint(t *testing.T) {
	o := basedata.SampleOptions()
	s := basedata.SampleDive(gases.Air, 30, 10)
	s.Add(20, gases.Air, 60)
	s.AddFlat(20, gases.Air, 600)
	items := calculate(t, s, o)

	ascent, err := newConsumption(o).EmergencyAscent(context.Background(), items, o,
		[]*tanks.Tank{basedata.SampleTank()})
	require.NoError(t, err)
	assert.Equal(t, 30.0, ascent[0].StartDepth)
}
