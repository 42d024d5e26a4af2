package blend

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/diveplanner-go/pkg/blender"
	"github.com/mpapenbr/diveplanner-go/pkg/gases"
)

type blendArgs struct {
	startPressure  float64
	startGas       string
	targetPressure float64
	targetGas      string
	topUps         []string
}

func NewBlendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blend",
		Short: "partial pressure blending instructions",
		Long: `Gases are given as Air, Oxygen, EAN32, 32 (oxygen percent) or 18/45 (trimix).
Pressures in bar, real gas behavior is respected.`,
	}
	cmd.AddCommand(NewNitroxCmd())
	cmd.AddCommand(NewTrimixCmd())
	return cmd
}

func NewNitroxCmd() *cobra.Command {
	args := &blendArgs{}
	cmd := &cobra.Command{
		Use:   "nitrox",
		Short: "blends nitrox using two top up gases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return args.run(cmd.OutOrStdout(), 2)
		},
	}
	args.addFlags(cmd, []string{"Oxygen", "Air"}, "EAN32")
	return cmd
}

func NewTrimixCmd() *cobra.Command {
	args := &blendArgs{}
	cmd := &cobra.Command{
		Use:   "trimix",
		Short: "blends trimix using three top up gases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return args.run(cmd.OutOrStdout(), 3)
		},
	}
	args.addFlags(cmd, []string{"0/100", "Oxygen", "Air"}, "21/35")
	return cmd
}

func (a *blendArgs) addFlags(cmd *cobra.Command, topUps []string, target string) {
	cmd.Flags().Float64Var(&a.startPressure, "start-pressure", 0,
		"pressure of gas already in the cylinder")
	cmd.Flags().StringVar(&a.startGas, "start-gas", "Air",
		"gas already in the cylinder")
	cmd.Flags().Float64Var(&a.targetPressure, "target-pressure", 200,
		"pressure after blending")
	cmd.Flags().StringVar(&a.targetGas, "target-gas", target,
		"gas to blend")
	cmd.Flags().StringSliceVar(&a.topUps, "top-up", topUps,
		"top up gases in order of filling")
}

func (a *blendArgs) run(w io.Writer, topUpCount int) error {
	if len(a.topUps) != topUpCount {
		return fmt.Errorf("%d top up gases required, got %d", topUpCount, len(a.topUps))
	}
	start, err := a.fill(a.startPressure, a.startGas)
	if err != nil {
		return err
	}
	target, err := a.fill(a.targetPressure, a.targetGas)
	if err != nil {
		return err
	}
	topUps := make([]gases.Gas, 0, len(a.topUps))
	for _, text := range a.topUps {
		g, err := gases.Parse(text)
		if err != nil {
			return err
		}
		topUps = append(topUps, g)
	}
	var result *blender.Blend
	if topUpCount == 2 {
		result, err = blender.Nitrox(start, target, topUps[0], topUps[1])
	} else {
		result, err = blender.Trimix(start, target, topUps[0], topUps[1], topUps[2])
	}
	if err != nil {
		return err
	}
	fmt.Fprint(w, result.Instructions())
	return nil
}

func (a *blendArgs) fill(pressure float64, gas string) (blender.Fill, error) {
	g, err := gases.Parse(gas)
	if err != nil {
		return blender.Fill{}, err
	}
	return blender.Fill{Pressure: pressure, Gas: g}, nil
}
