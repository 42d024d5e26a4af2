package plan

import (
	"github.com/spf13/cobra"

	"github.com/mpapenbr/diveplanner-go/log"
	"github.com/mpapenbr/diveplanner-go/pkg/algorithm"
	"github.com/mpapenbr/diveplanner-go/pkg/config"
	planfile "github.com/mpapenbr/diveplanner-go/pkg/plan"
	"github.com/mpapenbr/diveplanner-go/pkg/planner"
)

func NewPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "commands to calculate planned dives",
		Long: `Plan files are JSON or YAML (detected by extension) and contain either
one dive or a list of dives in "dives".`,
	}
	cmd.PersistentFlags().IntVar(&config.DiveIndex,
		"dive",
		0,
		"index of the dive if the file contains a list of dives")

	cmd.AddCommand(NewEventsCmd())
	cmd.AddCommand(NewInfoCmd())
	cmd.AddCommand(NewConsumptionCmd())
	cmd.AddCommand(NewAllCmd())
	cmd.AddCommand(NewChartCmd())
	cmd.AddCommand(NewWatchCmd())
	return cmd
}

func loadTask(file string) (*planner.Task, error) {
	d, err := planfile.LoadFile(file, config.DiveIndex)
	if err != nil {
		return nil, err
	}
	task := planner.NewTask(d.CoreSegments(), d.CoreTanks(), d.Options, d.Diver)
	task.Name = d.Name
	task.IsComplex = d.IsComplex
	task.MaxDensity = d.MaxDensity
	log.Default().Named("plan").Debug("dive loaded",
		log.String("file", file),
		log.String("name", d.Name),
		log.String("diveId", task.DiveID.String()))
	return task, nil
}

func newPlanner() *planner.Planner {
	cached := algorithm.NewCached(algorithm.NewDirectAscent(), config.CacheExpiration)
	return planner.New(algorithm.NewTraced(cached))
}
