// Package plan reads dive plans from JSON or YAML files.
package plan

import (
	"github.com/mpapenbr/diveplanner-go/pkg/gases"
	"github.com/mpapenbr/diveplanner-go/pkg/options"
	"github.com/mpapenbr/diveplanner-go/pkg/segments"
	"github.com/mpapenbr/diveplanner-go/pkg/tanks"
)

// DefaultMaxDensity is used if the plan doesn't define it
const DefaultMaxDensity = gases.DefaultMaxDensity

//nolint:lll // readability
type (
	// Dive is the serialized form of one planned dive.
	// Missing options and diver are taken from defaults.
	Dive struct {
		Name       string           `json:"name" yaml:"name"`
		IsComplex  bool             `json:"isComplex" yaml:"isComplex"`
		MaxDensity float64          `json:"maxDensity" yaml:"maxDensity" validate:"gte=0"`
		Options    *options.Options `json:"options" yaml:"options" validate:"required"`
		Diver      *options.Diver   `json:"diver" yaml:"diver" validate:"required"`
		Tanks      []Tank           `json:"tanks" yaml:"tanks" validate:"required,min=1,unique=ID,dive"`
		Plan       []Segment        `json:"plan" yaml:"plan" validate:"required,min=1,dive"`
	}

	Tank struct {
		ID            int     `json:"id" yaml:"id" validate:"gte=1"`
		Size          float64 `json:"size" yaml:"size" validate:"gt=0,lte=100"`
		WorkPressure  float64 `json:"workPressure" yaml:"workPressure" validate:"gte=0,lte=400"`
		StartPressure float64 `json:"startPressure" yaml:"startPressure" validate:"gt=0,lte=400"`
		Gas           Gas     `json:"gas" yaml:"gas"`
	}

	// Segment uses the gas of its tank, if no gas is defined
	Segment struct {
		StartDepth float64 `json:"startDepth" yaml:"startDepth" validate:"gte=0,lte=350"`
		EndDepth   float64 `json:"endDepth" yaml:"endDepth" validate:"gte=0,lte=350"`
		Duration   float64 `json:"duration" yaml:"duration" validate:"gt=0"`
		TankID     int     `json:"tankId" yaml:"tankId" validate:"gte=0"`
		Gas        *Gas    `json:"gas,omitempty" yaml:"gas,omitempty"`
	}

	Gas struct {
		FO2 float64 `json:"fO2" yaml:"fO2" validate:"gt=0,lte=1"`
		FHe float64 `json:"fHe" yaml:"fHe" validate:"gte=0,lt=1"`
	}
)

func newDive() *Dive {
	return &Dive{
		MaxDensity: DefaultMaxDensity,
		Options:    options.DefaultOptions(),
		Diver:      options.DefaultDiver(),
	}
}

func (g Gas) toGas() gases.Gas {
	return gases.New(g.FO2, g.FHe)
}

// CoreTanks returns new tanks without any consumption
func (d *Dive) CoreTanks() []*tanks.Tank {
	ret := make([]*tanks.Tank, 0, len(d.Tanks))
	for _, t := range d.Tanks {
		tank := tanks.New(t.ID, t.Size, t.StartPressure, t.Gas.toGas())
		tank.WorkingPressure = t.WorkPressure
		ret = append(ret, tank)
	}
	return ret
}

// CoreSegments returns the planned segments. Requires a validated dive.
func (d *Dive) CoreSegments() *segments.Segments {
	ret := segments.NewSegments()
	for _, s := range d.Plan {
		var gas gases.Gas
		if s.Gas != nil {
			gas = s.Gas.toGas()
		} else if t := d.tank(s.TankID); t != nil {
			gas = t.Gas.toGas()
		}
		segment := segments.New(s.StartDepth, s.EndDepth, gas, s.Duration)
		segment.Tank = s.TankID
		ret.AddSegment(segment)
	}
	return ret
}

func (d *Dive) tank(id int) *Tank {
	for i := range d.Tanks {
		if d.Tanks[i].ID == id {
			return &d.Tanks[i]
		}
	}
	return nil
}
