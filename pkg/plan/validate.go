package plan

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidPlan = errors.New("invalid dive plan")

	validate *validator.Validate
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterStructValidation(validateGas, Gas{})
}

// oxygen and helium together can't exceed 100%
func validateGas(sl validator.StructLevel) {
	g, ok := sl.Current().Interface().(Gas)
	if !ok {
		return
	}
	if g.FO2+g.FHe > 1 {
		sl.ReportError(g.FHe, "FHe", "fHe", "gassum", "")
	}
}

// Validate checks field values and references between segments and tanks
func (d *Dive) Validate() error {
	if err := validate.Struct(d); err != nil {
		return errors.Join(ErrInvalidPlan, err)
	}
	for i, s := range d.Plan {
		if s.TankID != 0 && d.tank(s.TankID) == nil {
			return fmt.Errorf("%w: segment %d uses unknown tank %d", ErrInvalidPlan, i+1, s.TankID)
		}
		if s.TankID == 0 && s.Gas == nil {
			return fmt.Errorf("%w: segment %d needs gas or tank", ErrInvalidPlan, i+1)
		}
	}
	return nil
}
