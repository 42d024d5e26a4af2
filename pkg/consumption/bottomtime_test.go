package consumption

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/diveplanner-go/pkg/gases"
	"github.com/mpapenbr/diveplanner-go/pkg/options"
	"github.com/mpapenbr/diveplanner-go/pkg/tanks"
	"github.com/mpapenbr/diveplanner-go/testsupport/basedata"
)

func TestCalculateMaxBottomTime(t *testing.T) {
	o := basedata.SampleOptions()
	source := basedata.SampleDive(gases.Air, 30, 20)
	tankList := []*tanks.Tank{basedata.SampleTank()}

	got, err := newConsumption(o).CalculateMaxBottomTime(context.Background(), source,
		tankList, options.DefaultDiver(), o)
	require.NoError(t, err)
	// source duration is 21.5 min, about 5 bar per additional minute
	assert.Greater(t, got, 21)
	assert.Less(t, got, 30)
	assert.Equal(t, 0.0, tankList[0].Consumed, "caller tanks are not touched")
	assert.Equal(t, 2, source.Len())
}

func TestCalculateMaxBottomTime_reserveExhausted(t *testing.T) {
	o := basedata.SampleOptions()
	source := basedata.SampleDive(gases.Air, 30, 20)
	tankList := []*tanks.Tank{tanks.New(1, 15, 50, gases.Air)}

	got, err := newConsumption(o).CalculateMaxBottomTime(context.Background(), source,
		tankList, options.DefaultDiver(), o)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestCalculateMaxBottomTime_monotonic(t *testing.T) {
	o := basedata.SampleOptions()
	c := newConsumption(o)
	previous := 0
	for _, pressure := range []float64{120, 150, 200, 232, 300} {
		tankList := []*tanks.Tank{tanks.New(1, 15, pressure, gases.Air)}
		got, err := c.CalculateMaxBottomTime(context.Background(),
			basedata.SampleDive(gases.Air, 30, 20), tankList, options.DefaultDiver(), o)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, previous, "start pressure %v", pressure)
		previous = got
	}
}

func TestCalculateMaxBottomTime_invalid(t *testing.T) {
	o := basedata.SampleOptions()
	c := newConsumption(o)
	ctx := context.Background()

	_, err := c.CalculateMaxBottomTime(ctx, basedata.SampleDive(gases.Air, 30, 20),
		nil, options.DefaultDiver(), o)
	assert.ErrorIs(t, err, ErrNoTanks)

	_, err = c.CalculateMaxBottomTime(ctx, basedata.SampleDive(gases.Air, 70, 20),
		[]*tanks.Tank{basedata.SampleTank()}, options.DefaultDiver(), o)
	assert.ErrorIs(t, err, ErrInvalidProfile)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = c.CalculateMaxBottomTime(canceled, basedata.SampleDive(gases.Air, 30, 20),
		[]*tanks.Tank{basedata.SampleTank()}, options.DefaultDiver(), o)
	assert.ErrorIs(t, err, context.Canceled)
}
