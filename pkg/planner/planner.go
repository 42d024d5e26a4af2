package planner

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/mpapenbr/diveplanner-go/log"
	"github.com/mpapenbr/diveplanner-go/pkg/algorithm"
	"github.com/mpapenbr/diveplanner-go/pkg/consumption"
	"github.com/mpapenbr/diveplanner-go/pkg/events"
	"github.com/mpapenbr/diveplanner-go/pkg/gases"
	"github.com/mpapenbr/diveplanner-go/pkg/physics"
	"github.com/mpapenbr/diveplanner-go/pkg/profile"
	"github.com/mpapenbr/diveplanner-go/pkg/segments"
	"github.com/mpapenbr/diveplanner-go/pkg/tanks"
)

type (
	Planner struct {
		algorithm algorithm.Algorithm
		log       *log.Logger
	}
	Option func(*Planner)
)

func WithLogger(l *log.Logger) Option {
	return func(p *Planner) {
		p.log = l
	}
}

func New(a algorithm.Algorithm, opts ...Option) *Planner {
	ret := &Planner{
		algorithm: a,
		log:       log.Default().Named("planner"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// CalculateDecompression returns the calculated profile and its events
func (p *Planner) CalculateDecompression(ctx context.Context, t *Task) (*ProfileResult, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	calculated, err := p.decompression(ctx, t)
	if err != nil {
		return nil, err
	}
	found := events.FromProfile(&events.EventOptions{
		MaxDensity:       t.MaxDensity,
		StartAscentIndex: calculated.Segments.StartAscentIndex(),
		Profile:          calculated.Segments.Items(),
		Ceilings:         calculated.Ceilings,
		ProfileOptions:   t.Options,
	})
	p.log.Debug("profile calculated",
		log.String("diveId", t.DiveID.String()),
		log.Int("segments", calculated.Segments.Len()),
		log.Int("events", found.Len()))
	return &ProfileResult{DiveID: t.DiveID, Profile: calculated, Events: found}, nil
}

// DiveInfo returns no decompression limit and depth statistics of the planned segments
func (p *Planner) DiveInfo(ctx context.Context, t *Task) (*DiveInfoResult, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	noDeco, err := p.algorithm.NoDecoLimit(ctx, p.params(t))
	if err != nil {
		return nil, err
	}
	return &DiveInfoResult{
		DiveID:       t.DiveID,
		NoDeco:       noDeco,
		AverageDepth: t.Plan.AverageDepth(),
		MaxDepth:     t.Plan.MaxDepth(),
		Density:      highestDensity(t.Plan.Items(), t.Options.DepthConverter()),
	}, nil
}

// CalculateConsumption returns max. bottom time, time to surface and
// consumed gas of the task tanks. The task tanks are not modified.
func (p *Planner) CalculateConsumption(ctx context.Context, t *Task) (*ConsumptionResult, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	calculated, err := p.decompression(ctx, t)
	if err != nil {
		return nil, err
	}
	if calculated.HasErrors() {
		return nil, fmt.Errorf("%w: %s", consumption.ErrInvalidProfile, calculated.Errors[0].Message)
	}
	c := consumption.New(t.Options.DepthConverter(), p.algorithm,
		consumption.WithLogger(p.log.Named("consumption")))
	tankList := tanks.Copy(t.Tanks)

	// max. bottom time works on its own tank copies
	maxTime, err := c.CalculateMaxBottomTime(ctx, t.consumptionPlan(), tankList, t.Diver, t.Options)
	if err != nil {
		return nil, err
	}
	items := calculated.Segments.Items()
	ascent, err := c.EmergencyAscent(ctx, items, t.Options, tankList)
	if err != nil {
		return nil, err
	}
	if err := c.ConsumeFromTanks2(items, ascent, tankList, t.Diver); err != nil {
		return nil, err
	}

	ret := &ConsumptionResult{
		DiveID:        t.DiveID,
		MaxTime:       maxTime,
		TimeToSurface: physics.ToMinutes(segments.Duration(ascent)),
		Tanks:         make([]TankConsumption, 0, len(tankList)),
		NotEnoughGas:  !tanks.HaveReserve(tankList),
	}
	for _, tank := range tankList {
		ret.Tanks = append(ret.Tanks, TankConsumption{
			ID:          tank.ID,
			Consumed:    tank.Consumed,
			Reserve:     tank.Reserve,
			EndPressure: tank.EndPressure(),
		})
	}
	first := tankList[0]
	ret.TurnPressure = first.StartPressure - math.Floor(first.Consumed/2)
	ret.TurnTime = int(math.Floor(physics.ToMinutes(t.Plan.Duration()) / 2))
	return ret, nil
}

// Plan runs all calculations concurrently, each of them on its own copy of the task.
// Consumption is left empty for profiles which can't be dived.
func (p *Planner) Plan(ctx context.Context, t *Task) (*Result, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	ret := &Result{}
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ret.Profile, err = p.CalculateDecompression(gCtx, t.copy())
		return err
	})
	g.Go(func() error {
		var err error
		ret.DiveInfo, err = p.DiveInfo(gCtx, t.copy())
		return err
	})
	g.Go(func() error {
		var err error
		ret.Consumption, err = p.CalculateConsumption(gCtx, t.copy())
		if errors.Is(err, consumption.ErrInvalidProfile) {
			p.log.Warn("consumption skipped", log.ErrorField(err))
			return nil
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ret, nil
}

func (p *Planner) decompression(ctx context.Context, t *Task) (*profile.CalculatedProfile, error) {
	return p.algorithm.Decompression(ctx, p.params(t))
}

func (p *Planner) params(t *Task) *algorithm.Params {
	return algorithm.NewParams(t.Plan, tanks.Gases(t.Tanks), t.Options)
}

func (t *Task) copy() *Task {
	c := *t
	c.Plan = t.Plan.Copy()
	c.Tanks = tanks.Copy(t.Tanks)
	c.Options = t.Options.Copy()
	diver := *t.Diver
	c.Diver = &diver
	return &c
}

func highestDensity(items []segments.Segment, c *physics.DepthConverter) Density {
	density := gases.NewDensityAtDepth(c)
	ret := Density{}
	for _, s := range items {
		depth := s.MaxDepth()
		current := density.AtDepth(s.Gas, depth)
		if current > ret.Density {
			ret = Density{Gas: s.Gas, Depth: depth, Density: current}
		}
	}
	return ret
}
