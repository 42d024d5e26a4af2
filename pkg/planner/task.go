// Package planner combines profile, events, dive info and consumption
// calculations for one dive.
package planner

import (
	"errors"

	"github.com/google/uuid"

	"github.com/mpapenbr/diveplanner-go/pkg/gases"
	"github.com/mpapenbr/diveplanner-go/pkg/options"
	"github.com/mpapenbr/diveplanner-go/pkg/profile"
	"github.com/mpapenbr/diveplanner-go/pkg/segments"
	"github.com/mpapenbr/diveplanner-go/pkg/tanks"
)

var ErrInvalidTask = errors.New("task requires plan, tanks, options and diver")

type (
	// Task is the input of all calculations. It is never modified by the planner.
	Task struct {
		DiveID     uuid.UUID
		Name       string
		Plan       *segments.Segments
		Tanks      []*tanks.Tank
		Options    *options.Options
		Diver      *options.Diver
		IsComplex  bool
		MaxDensity float64
	}

	ProfileResult struct {
		DiveID  uuid.UUID
		Profile *profile.CalculatedProfile
		Events  *profile.Events
	}

	DiveInfoResult struct {
		DiveID uuid.UUID
		// NoDeco in minutes
		NoDeco       float64
		AverageDepth float64
		MaxDepth     float64
		Density      Density
	}

	// Density is the highest gas density reached during the dive
	Density struct {
		Gas     gases.Gas
		Depth   float64
		Density float64
	}

	ConsumptionResult struct {
		DiveID uuid.UUID
		// MaxTime is the max. bottom time in minutes
		MaxTime int
		// TimeToSurface of the emergency ascent in minutes
		TimeToSurface float64
		Tanks         []TankConsumption
		NotEnoughGas  bool
		// TurnPressure and TurnTime of the first tank
		TurnPressure float64
		TurnTime     int
	}

	TankConsumption struct {
		ID          int
		Consumed    float64
		Reserve     float64
		EndPressure float64
	}

	// Result collects the results of all tasks
	Result struct {
		Profile     *ProfileResult
		DiveInfo    *DiveInfoResult
		Consumption *ConsumptionResult
	}
)

// NewTask creates task with a new dive id and default max. density
//
//nolint:whitespace // readability
func NewTask(
	plan *segments.Segments,
	tankList []*tanks.Tank,
	o *options.Options,
	diver *options.Diver,
) *Task {
	return &Task{
		DiveID:     uuid.New(),
		Plan:       plan,
		Tanks:      tankList,
		Options:    o,
		Diver:      diver,
		MaxDensity: gases.DefaultMaxDensity,
	}
}

func (t *Task) validate() error {
	if t == nil || t.Plan == nil || !t.Plan.Any() || len(t.Tanks) == 0 ||
		t.Options == nil || t.Diver == nil {
		return ErrInvalidTask
	}
	return nil
}

// consumptionPlan returns the segments used to estimate max. bottom time.
// Simple plans use the descent only, otherwise an already long dive would
// always result in 0.
func (t *Task) consumptionPlan() *segments.Segments {
	if t.IsComplex {
		return t.Plan.Copy()
	}
	return segments.FromCollection(t.Plan.Items()[:1])
}
