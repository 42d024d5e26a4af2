package plan

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mpapenbr/diveplanner-go/pkg/physics"
	"github.com/mpapenbr/diveplanner-go/pkg/planner"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#20B9B4"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F4D03F"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C"))
)

func newTable(headers ...string) *table.Table {
	return table.New().Border(lipgloss.RoundedBorder()).Headers(headers...)
}

func decimal1(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func clock(seconds float64) string {
	minutes := int(seconds) / 60
	return fmt.Sprintf("%d:%02d", minutes, int(seconds)%60)
}

func renderProfile(w io.Writer, r *planner.ProfileResult) {
	fmt.Fprintln(w, titleStyle.Render("Profile"))
	for _, e := range r.Profile.Errors {
		fmt.Fprintln(w, errorStyle.Render("error: "+e.Message))
	}
	segments := newTable("runtime", "from [m]", "to [m]", "duration", "gas", "tank")
	elapsed := 0.0
	for i, s := range r.Profile.Segments.Items() {
		elapsed += s.Duration
		tank := ""
		if s.HasTank() {
			tank = strconv.Itoa(s.Tank)
		}
		if i == r.Profile.Segments.StartAscentIndex() {
			tank += " (ascent)"
		}
		segments.Row(clock(elapsed), decimal1(s.StartDepth), decimal1(s.EndDepth),
			clock(s.Duration), s.Gas.Name(), tank)
	}
	fmt.Fprintln(w, segments.Render())

	if r.Events.Len() == 0 {
		fmt.Fprintln(w, "no events")
		return
	}
	events := newTable("runtime", "depth [m]", "event", "gas")
	for _, e := range r.Events.Items() {
		gas := ""
		if e.Gas != nil {
			gas = e.Gas.Name()
		}
		events.Row(clock(e.Timestamp), decimal1(e.Depth), e.Type.String(), gas)
	}
	fmt.Fprintln(w, titleStyle.Render("Events"))
	fmt.Fprintln(w, events.Render())
}

func renderDiveInfo(w io.Writer, r *planner.DiveInfoResult) {
	fmt.Fprintln(w, titleStyle.Render("Dive info"))
	info := newTable("", "")
	info.Row("no deco limit", fmt.Sprintf("%.0f min", r.NoDeco))
	info.Row("max depth", decimal1(r.MaxDepth)+" m")
	info.Row("average depth", decimal1(r.AverageDepth)+" m")
	info.Row("highest density", fmt.Sprintf("%.2f g/l (%s at %s m)",
		r.Density.Density, r.Density.Gas.Name(), decimal1(r.Density.Depth)))
	fmt.Fprintln(w, info.Render())
}

func renderConsumption(w io.Writer, r *planner.ConsumptionResult) {
	fmt.Fprintln(w, titleStyle.Render("Consumption"))
	if r == nil {
		fmt.Fprintln(w, errorStyle.Render("not available for this profile"))
		return
	}
	summary := newTable("", "")
	summary.Row("max bottom time", fmt.Sprintf("%d min", r.MaxTime))
	summary.Row("time to surface", fmt.Sprintf("%.0f min", physics.Ceil(r.TimeToSurface)))
	summary.Row("turn pressure", fmt.Sprintf("%.0f bar", r.TurnPressure))
	summary.Row("turn time", fmt.Sprintf("%d min", r.TurnTime))
	fmt.Fprintln(w, summary.Render())

	tanks := newTable("tank", "consumed [bar]", "reserve [bar]", "end [bar]")
	for _, t := range r.Tanks {
		tanks.Row(strconv.Itoa(t.ID), decimal1(t.Consumed), decimal1(t.Reserve),
			decimal1(t.EndPressure))
	}
	fmt.Fprintln(w, tanks.Render())
	if r.NotEnoughGas {
		fmt.Fprintln(w, warningStyle.Render("not enough gas, the reserve is consumed"))
	}
}

func renderResult(w io.Writer, r *planner.Result) {
	renderProfile(w, r.Profile)
	renderDiveInfo(w, r.DiveInfo)
	renderConsumption(w, r.Consumption)
}
