package tanks

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/mpapenbr/diveplanner-go/pkg/gases"
)

// NoTank is used by segments without an explicitly assigned tank
const NoTank = 0

// Tank holds the pressure bookkeeping of one cylinder. All pressures are in bars.
type Tank struct {
	ID              int       // starts at 1
	Size            float64   // water volume in liters
	WorkingPressure float64   // 0 means metric tank without rating
	StartPressure   float64   //
	Gas             gases.Gas //
	Consumed        float64   // used during the planned dive
	Reserve         float64   // needed for emergency ascent
}

func New(id int, size, startPressure float64, gas gases.Gas) *Tank {
	return &Tank{ID: id, Size: size, StartPressure: startPressure, Gas: gas}
}

func (t *Tank) EndPressure() float64 {
	return t.StartPressure - t.Consumed
}

// Volume in liters of gas at start pressure
func (t *Tank) Volume() float64 {
	return t.Size * t.StartPressure
}

// HasReserve is false, if the planned consumption eats into the reserve
func (t *Tank) HasReserve() bool {
	return t.Reserve <= t.EndPressure()
}

func (t *Tank) String() string {
	return fmt.Sprintf("%d. %s %.0fl/%.0fbar", t.ID, t.Gas.Name(), t.Size, t.StartPressure)
}

func ResetConsumption(tanks []*Tank) {
	for _, t := range tanks {
		t.Consumed = 0
		t.Reserve = 0
	}
}

func HaveReserve(tanks []*Tank) bool {
	return lo.EveryBy(tanks, func(t *Tank) bool { return t.HasReserve() })
}

// Copy returns deep copy, so the copies can be consumed independently
func Copy(tanks []*Tank) []*Tank {
	return lo.Map(tanks, func(t *Tank, _ int) *Tank {
		c := *t
		return &c
	})
}

// Find returns the tank with id or nil
func Find(tanks []*Tank, id int) *Tank {
	if id == NoTank {
		return nil
	}
	t, ok := lo.Find(tanks, func(t *Tank) bool { return t.ID == id })
	if !ok {
		return nil
	}
	return t
}

// Gases returns the distinct gases carried by the tanks in tank order
func Gases(tanks []*Tank) *gases.Gases {
	return gases.FromList(lo.Map(tanks, func(t *Tank, _ int) gases.Gas { return t.Gas })...)
}
