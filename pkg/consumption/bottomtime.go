package consumption

import (
	"context"
	"fmt"

	"github.com/mpapenbr/diveplanner-go/log"
	"github.com/mpapenbr/diveplanner-go/pkg/algorithm"
	"github.com/mpapenbr/diveplanner-go/pkg/options"
	"github.com/mpapenbr/diveplanner-go/pkg/physics"
	"github.com/mpapenbr/diveplanner-go/pkg/search"
	"github.com/mpapenbr/diveplanner-go/pkg/segments"
	"github.com/mpapenbr/diveplanner-go/pkg/tanks"
)

// estimation step based on typical dive duration
const estimationStep = 40 * physics.OneMinute

// CalculateMaxBottomTime returns the max. dive duration in minutes by extending
// the last user segment as long as all tanks keep their reserve.
// Returns 0 if even the source profile doesn't keep the reserve.
// The tanks are not modified.
//
//nolint:whitespace // readability
func (c *Consumption) CalculateMaxBottomTime(
	ctx context.Context,
	source *segments.Segments,
	tankList []*tanks.Tank,
	diver *options.Diver,
	o *options.Options,
) (int, error) {
	if !source.Any() {
		return 0, ErrInvalidProfile
	}
	if len(tankList) == 0 {
		return 0, ErrNoTanks
	}
	trial := source.Copy()
	last := source.Last()
	trial.AddFlat(last.EndDepth, last.Gas, 0)
	added := trial.Len() - 1
	simulated := tanks.Copy(tankList)
	gasList := tanks.Gases(simulated)

	searchCtx := &search.Context{
		InitialValue:   0,
		MaxValue:       physics.OneDay,
		EstimationStep: estimationStep,
		DoWork: func(candidate float64) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			trial.At(added).Duration = candidate
			calculated, err := c.algorithm.Decompression(ctx,
				algorithm.NewParams(trial, gasList, o))
			if err != nil {
				return err
			}
			if calculated.HasErrors() {
				return fmt.Errorf("%w: %s", ErrInvalidProfile, calculated.Errors[0].Message)
			}
			return c.ConsumeFromTanks(ctx, calculated.Segments.Items(), o, simulated, diver)
		},
		MeetsCondition: func() bool { return tanks.HaveReserve(simulated) },
	}
	s := search.NewBinaryIntervalSearch()
	addedDuration, err := s.Search(searchCtx)
	if err != nil {
		return 0, err
	}
	c.log.Debug("max bottom time estimated",
		log.Float64("added", addedDuration),
		log.Int("calls", s.Calls()))

	// the source profile already consumes the reserve
	if addedDuration == 0 {
		return 0, nil
	}
	total := physics.ToMinutes(source.Duration() + addedDuration)
	return int(physics.Floor(total)), nil
}
