// Package chart renders a calculated profile as image.
package chart

import (
	"errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/mpapenbr/diveplanner-go/pkg/physics"
	"github.com/mpapenbr/diveplanner-go/pkg/profile"
)

var ErrEmptyProfile = errors.New("profile contains no segments")

const (
	width  = 10 * vg.Inch
	height = 5 * vg.Inch
)

// Save writes depth and ceilings over time. The format is derived from the
// file extension (png, svg, pdf, ...).
func Save(p *profile.CalculatedProfile, title, file string) error {
	chart, err := New(p, title)
	if err != nil {
		return err
	}
	return chart.Save(width, height, file)
}

// New creates the plot with depths drawn as negative values, runtime in minutes
func New(p *profile.CalculatedProfile, title string) (*plot.Plot, error) {
	if p == nil || p.Segments == nil || !p.Segments.Any() {
		return nil, ErrEmptyProfile
	}
	chart := plot.New()
	chart.Title.Text = title
	chart.X.Label.Text = "runtime [min]"
	chart.Y.Label.Text = "depth [m]"
	chart.Add(plotter.NewGrid())

	depths, err := plotter.NewLine(depthPoints(p))
	if err != nil {
		return nil, err
	}
	depths.Width = vg.Points(2)
	chart.Add(depths)
	chart.Legend.Add("depth", depths)

	if len(p.Ceilings) > 0 {
		ceilings, err := plotter.NewLine(ceilingPoints(p.Ceilings))
		if err != nil {
			return nil, err
		}
		ceilings.Width = vg.Points(1)
		ceilings.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		chart.Add(ceilings)
		chart.Legend.Add("ceiling", ceilings)
	}
	chart.Legend.Top = false
	return chart, nil
}

func depthPoints(p *profile.CalculatedProfile) plotter.XYs {
	items := p.Segments.Items()
	ret := make(plotter.XYs, 0, len(items)+1)
	ret = append(ret, plotter.XY{X: 0, Y: -items[0].StartDepth})
	elapsed := 0.0
	for _, s := range items {
		elapsed += s.Duration
		ret = append(ret, plotter.XY{X: physics.ToMinutes(elapsed), Y: -s.EndDepth})
	}
	return ret
}

func ceilingPoints(ceilings []profile.Ceiling) plotter.XYs {
	ret := make(plotter.XYs, 0, len(ceilings))
	for _, c := range ceilings {
		ret = append(ret, plotter.XY{X: physics.ToMinutes(c.Time), Y: -c.Depth})
	}
	return ret
}
