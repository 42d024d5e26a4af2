package gases

import (
	"slices"

	"github.com/samber/lo"
)

var (
	Air    = New(0.209, 0)
	EAN32  = New(0.32, 0)
	EAN36  = New(0.36, 0)
	EAN38  = New(0.38, 0)
	EAN50  = New(0.50, 0)
	Oxygen = New(1, 0)
)

// StandardGases maps the well known names
var StandardGases = map[string]Gas{
	"Air":    Air,
	"EAN32":  EAN32,
	"EAN36":  EAN36,
	"EAN38":  EAN38,
	"EAN50":  EAN50,
	"Oxygen": Oxygen,
}

// Gases is a set of gases available during the dive, unique by content
type Gases struct {
	items []Gas
}

func FromList(list ...Gas) *Gases {
	ret := &Gases{}
	for _, g := range list {
		ret.Add(g)
	}
	return ret
}

// Add registers the gas unless a gas with the same content is already registered
func (gs *Gases) Add(g Gas) {
	if gs.IsRegistered(g) {
		return
	}
	gs.items = append(gs.items, g)
}

func (gs *Gases) IsRegistered(g Gas) bool {
	return lo.ContainsBy(gs.items, func(item Gas) bool {
		return item.CompositionEquals(g)
	})
}

func (gs *Gases) Items() []Gas {
	return slices.Clone(gs.items)
}

func (gs *Gases) Len() int {
	return len(gs.items)
}

// BestGas returns the gas with highest oxygen content breathable at depth
// (meters) for given ppO2. Ties prefer more helium.
func (gs *Gases) BestGas(depth, ppO2 float64, c DepthConverter) (Gas, bool) {
	bars := c.ToBar(depth)
	candidates := lo.Filter(gs.items, func(g Gas, _ int) bool {
		return bars <= g.MOD(ppO2)+1e-9 && g.Ceiling(c.SurfacePressure()) <= bars+1e-9
	})
	if len(candidates) == 0 {
		return Gas{}, false
	}
	return lo.MaxBy(candidates, func(a, b Gas) bool {
		if a.FO2 == b.FO2 {
			return a.FHe > b.FHe
		}
		return a.FO2 > b.FO2
	}), true
}
