package planner

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/diveplanner-go/pkg/algorithm"
	"github.com/mpapenbr/diveplanner-go/pkg/consumption"
	"github.com/mpapenbr/diveplanner-go/pkg/gases"
	"github.com/mpapenbr/diveplanner-go/pkg/options"
	"github.com/mpapenbr/diveplanner-go/pkg/profile"
	"github.com/mpapenbr/diveplanner-go/pkg/tanks"
	"github.com/mpapenbr/diveplanner-go/testsupport/basedata"
)

func sampleTask(depth float64) *Task {
	return NewTask(basedata.SampleDive(gases.Air, depth, 20),
		[]*tanks.Tank{basedata.SampleTank()},
		basedata.SampleOptions(), options.DefaultDiver())
}

func newPlanner() *Planner {
	return New(algorithm.NewDirectAscent())
}

func TestCalculateDecompression(t *testing.T) {
	task := sampleTask(30)
	got, err := newPlanner().CalculateDecompression(context.Background(), task)
	require.NoError(t, err)

	assert.Equal(t, task.DiveID, got.DiveID)
	assert.False(t, got.Profile.HasErrors())
	assert.Equal(t, 2, got.Profile.Segments.StartAscentIndex())
	assert.Equal(t, 0.0, got.Profile.Segments.Last().EndDepth)
	// descent at 20 m/min is faster than the 18 m/min allowed
	assert.Equal(t, []profile.Event{profile.NewEvent(0, 0, profile.EventHighDescentSpeed)},
		got.Events.OfType(profile.EventHighDescentSpeed))
	assert.Empty(t, got.Events.OfType(profile.EventHighAscentSpeed))
}

func TestDiveInfo(t *testing.T) {
	got, err := newPlanner().DiveInfo(context.Background(), sampleTask(30))
	require.NoError(t, err)

	assert.Equal(t, 20.0, got.NoDeco)
	assert.Equal(t, 30.0, got.MaxDepth)
	// (90 s at 15 m + 1200 s at 30 m) / 1290 s
	assert.InDelta(t, 28.95, got.AverageDepth, 0.01)
	assert.Equal(t, 30.0, got.Density.Depth)
	assert.True(t, got.Density.Gas.CompositionEquals(gases.Air))
	assert.InDelta(t, 5.14, got.Density.Density, 0.01)
}

func TestCalculateConsumption(t *testing.T) {
	task := sampleTask(30)
	got, err := newPlanner().CalculateConsumption(context.Background(), task)
	require.NoError(t, err)

	want := []TankConsumption{{ID: 1, Consumed: 125, Reserve: 47, EndPressure: 75}}
	if diff := cmp.Diff(want, got.Tanks); diff != "" {
		t.Errorf("tanks mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, got.NotEnoughGas)
	// 1 min problem solving and 3 min ascent at 10 m/min
	assert.InDelta(t, 4.0, got.TimeToSurface, 1e-6)
	assert.Equal(t, 138.0, got.TurnPressure)
	assert.Equal(t, 10, got.TurnTime)
	assert.Greater(t, got.MaxTime, 21)
	assert.Less(t, got.MaxTime, 30)
	assert.Equal(t, 0.0, task.Tanks[0].Consumed, "task tanks are not touched")
}

func TestCalculateConsumption_complex(t *testing.T) {
	p := newPlanner()
	simple, err := p.CalculateConsumption(context.Background(), sampleTask(30))
	require.NoError(t, err)

	task := sampleTask(30)
	task.IsComplex = true
	full, err := p.CalculateConsumption(context.Background(), task)
	require.NoError(t, err)
	assert.InDelta(t, simple.MaxTime, full.MaxTime, 1)
}

func TestCalculateConsumption_notEnoughGas(t *testing.T) {
	task := sampleTask(30)
	task.Tanks = []*tanks.Tank{tanks.New(1, 15, 100, gases.Air)}
	got, err := newPlanner().CalculateConsumption(context.Background(), task)
	require.NoError(t, err)

	assert.True(t, got.NotEnoughGas)
	// estimated from the descent only
	assert.Greater(t, got.MaxTime, 0)
	assert.Less(t, got.MaxTime, 21)
}

func TestCalculateConsumption_invalidProfile(t *testing.T) {
	_, err := newPlanner().CalculateConsumption(context.Background(), sampleTask(70))
	assert.ErrorIs(t, err, consumption.ErrInvalidProfile)
}

func TestPlan(t *testing.T) {
	task := sampleTask(30)
	got, err := newPlanner().Plan(context.Background(), task)
	require.NoError(t, err)

	require.NotNil(t, got.Profile)
	require.NotNil(t, got.DiveInfo)
	require.NotNil(t, got.Consumption)
	assert.Equal(t, task.DiveID, got.Profile.DiveID)
	assert.Equal(t, task.DiveID, got.DiveInfo.DiveID)
	assert.Equal(t, task.DiveID, got.Consumption.DiveID)
	assert.Equal(t, 2, task.Plan.Len())
}

func TestPlan_invalidProfile(t *testing.T) {
	got, err := newPlanner().Plan(context.Background(), sampleTask(70))
	require.NoError(t, err)

	assert.True(t, got.Profile.Profile.HasErrors())
	assert.Equal(t, 0.0, got.DiveInfo.NoDeco)
	assert.Nil(t, got.Consumption)
}

func TestInvalidTask(t *testing.T) {
	p := newPlanner()
	ctx := context.Background()
	noTanks := sampleTask(30)
	noTanks.Tanks = nil

	for _, task := range []*Task{nil, noTanks, {}} {
		_, err := p.Plan(ctx, task)
		assert.ErrorIs(t, err, ErrInvalidTask)
		_, err = p.CalculateDecompression(ctx, task)
		assert.ErrorIs(t, err, ErrInvalidTask)
		_, err = p.DiveInfo(ctx, task)
		assert.ErrorIs(t, err, ErrInvalidTask)
		_, err = p.CalculateConsumption(ctx, task)
		assert.ErrorIs(t, err, ErrInvalidTask)
	}
}
