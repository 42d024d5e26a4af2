package plan

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/diveplanner-go/pkg/chart"
)

var chartFile string

func NewChartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart file",
		Short: "renders the calculated profile as image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := loadTask(args[0])
			if err != nil {
				return err
			}
			result, err := newPlanner().CalculateDecompression(cmd.Context(), task)
			if err != nil {
				return err
			}
			if err := chart.Save(result.Profile, task.Name, chartFile); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "profile written to", chartFile)
			return nil
		},
	}
	cmd.Flags().StringVarP(&chartFile, "output", "o", "profile.png",
		"image file, format by extension (png, svg, pdf)")
	return cmd
}
