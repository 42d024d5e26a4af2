// Package blender calculates partial pressure blending using real gas behavior.
package blender

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mpapenbr/diveplanner-go/pkg/gases"
)

var (
	ErrDegenerateGases = errors.New("cannot mix with degenerate gases")
	ErrIdenticalGases  = errors.New("cannot mix with identical gases")
	ErrImpossibleBlend = errors.New("impossible to blend with these gases")
	ErrNoConvergence   = errors.New("pressure calculation does not converge")
)

type (
	// Fill is a cylinder filled with gas up to pressure in bars
	Fill struct {
		Pressure float64
		Gas      gases.Gas
	}

	// TopUp adds Gas until Pressure is reached resulting in Mix.
	// Volume is liters at surface pressure per liter of cylinder volume.
	TopUp struct {
		Gas      gases.Gas
		Pressure float64
		Mix      gases.Gas
		Volume   float64
	}

	Blend struct {
		Start  Fill
		TopUps []TopUp
	}
)

// Nitrox blends target from start using top1 first and top2 to finish
func Nitrox(start, target Fill, top1, top2 gases.Gas) (*Blend, error) {
	if top1.FO2 == top2.FO2 {
		return nil, ErrIdenticalGases
	}
	ivol := normalVolumeFactor(start.Pressure, start.Gas)
	fvol := normalVolumeFactor(target.Pressure, target.Gas)

	vol1 := (top2.FO2-target.Gas.FO2)/(top2.FO2-top1.FO2)*fvol -
		(top2.FO2-start.Gas.FO2)/(top2.FO2-top1.FO2)*ivol
	vol2 := (top1.FO2-target.Gas.FO2)/(top1.FO2-top2.FO2)*fvol -
		(top1.FO2-start.Gas.FO2)/(top1.FO2-top2.FO2)*ivol
	if vol1 <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrImpossibleBlend, target.Gas.Name())
	}

	mix := gases.New((start.Gas.FO2*ivol+top1.FO2*vol1)/(ivol+vol1), 0)
	p1, err := findPressure(mix, ivol+vol1)
	if err != nil {
		return nil, err
	}
	return &Blend{
		Start: start,
		TopUps: []TopUp{
			{Gas: top1, Pressure: p1, Mix: mix, Volume: vol1},
			{Gas: top2, Pressure: target.Pressure, Mix: target.Gas, Volume: vol2},
		},
	}, nil
}

// Trimix blends target from start using the three top up gases in order
//
//nolint:funlen // formulas
func Trimix(start, target Fill, top1, top2, top3 gases.Gas) (*Blend, error) {
	g1, g2, g3 := top1, top2, top3
	det := g3.FHe*g2.FN2()*g1.FN2() -
		g2.FHe*g3.FN2()*g1.FO2 -
		g3.FHe*g1.FN2()*g2.FO2 +
		g1.FHe*g3.FN2()*g2.FO2 +
		g2.FHe*g1.FN2()*g3.FO2 -
		g1.FHe*g2.FN2()*g3.FO2
	if det == 0 {
		return nil, ErrDegenerateGases
	}

	ivol := normalVolumeFactor(start.Pressure, start.Gas)
	fvol := normalVolumeFactor(target.Pressure, target.Gas)
	gi, gf := start.Gas, target.Gas
	he := gf.FHe*fvol - gi.FHe*ivol
	n2 := gf.FN2()*fvol - gi.FN2()*ivol
	o2 := gf.FO2*fvol - gi.FO2*ivol

	vol1 := ((g3.FN2()*g2.FO2-g2.FN2()*g3.FO2)*he +
		(g2.FHe*g3.FO2-g3.FHe*g2.FO2)*n2 +
		(g3.FHe*g2.FN2()-g2.FHe*g3.FN2())*o2) / det
	vol2 := ((g1.FN2()*g3.FO2-g3.FN2()*g1.FO2)*he +
		(g3.FHe*g1.FO2-g1.FHe*g3.FO2)*n2 +
		(g1.FHe*g3.FN2()-g3.FHe*g1.FN2())*o2) / det
	vol3 := ((g2.FN2()*g1.FO2-g1.FN2()*g2.FO2)*he +
		(g1.FHe*g2.FO2-g2.FHe*g1.FO2)*n2 +
		(g2.FHe*g1.FN2()-g1.FHe*g2.FN2())*o2) / det
	if vol1 < 0 || vol2 < 0 || vol3 < 0 {
		return nil, fmt.Errorf("%w: %s", ErrImpossibleBlend, gf.Name())
	}

	total1 := ivol + vol1
	mix1 := gases.New((gi.FO2*ivol+g1.FO2*vol1)/total1, (gi.FHe*ivol+g1.FHe*vol1)/total1)
	p1, err := findPressure(mix1, total1)
	if err != nil {
		return nil, err
	}
	total2 := total1 + vol2
	mix2 := gases.New((gi.FO2*ivol+g1.FO2*vol1+g2.FO2*vol2)/total2,
		(gi.FHe*ivol+g1.FHe*vol1+g2.FHe*vol2)/total2)
	p2, err := findPressure(mix2, total2)
	if err != nil {
		return nil, err
	}
	return &Blend{
		Start: start,
		TopUps: []TopUp{
			{Gas: g1, Pressure: p1, Mix: mix1, Volume: vol1},
			{Gas: g2, Pressure: p2, Mix: mix2, Volume: vol2},
			{Gas: g3, Pressure: target.Pressure, Mix: gf, Volume: vol3},
		},
	}, nil
}

// Instructions returns the blending steps as text
func (b *Blend) Instructions() string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "Start with %.1f bar of %s.\n", b.Start.Pressure, b.Start.Gas.Name())
	for i, t := range b.TopUps {
		prefix := "Then top up"
		switch i {
		case 0:
			prefix = "Top up"
		case len(b.TopUps) - 1:
			prefix = "Finally, top up"
		}
		fmt.Fprintf(&sb, "%s with %s up to %.1f bar and end up with %s.\n",
			prefix, t.Gas.Name(), t.Pressure, t.Mix.Name())
	}
	volumes := make([]string, 0, len(b.TopUps))
	for _, t := range b.TopUps {
		volumes = append(volumes, fmt.Sprintf("%.1f litres of %s", t.Volume, t.Gas.Name()))
	}
	fmt.Fprintf(&sb, "Use %s per litre of cylinder volume.\n", strings.Join(volumes, ", "))
	return sb.String()
}
