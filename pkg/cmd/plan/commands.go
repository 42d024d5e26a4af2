package plan

import (
	"github.com/spf13/cobra"
)

func NewEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events file",
		Short: "calculates the profile and its events",
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
			renderProfile(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func NewInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info file",
		Short: "shows no deco limit, depths and gas density",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := loadTask(args[0])
			if err != nil {
				return err
			}
			result, err := newPlanner().DiveInfo(cmd.Context(), task)
			if err != nil {
				return err
			}
			renderDiveInfo(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func NewConsumptionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "consumption file",
		Short: "calculates max bottom time and gas consumption",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := loadTask(args[0])
			if err != nil {
				return err
			}
			result, err := newPlanner().CalculateConsumption(cmd.Context(), task)
			if err != nil {
				return err
			}
			renderConsumption(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func NewAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all file",
		Short: "runs all calculations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := loadTask(args[0])
			if err != nil {
				return err
			}
			result, err := newPlanner().Plan(cmd.Context(), task)
			if err != nil {
				return err
			}
			renderResult(cmd.OutOrStdout(), result)
			return nil
		},
	}
}
