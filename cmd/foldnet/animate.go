package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/foldnet/animator"
	"github.com/katalvlaran/foldnet/fold"
	"github.com/katalvlaran/foldnet/shape"
)

var (
	animTicks     int
	animEvery     int
	animSpeed     float64
	animAlgorithm string
	animFrame     float64
)

var animateCmd = &cobra.Command{
	Use:   "animate",
	Short: "Run the unfold animation headless and report progress",
	Args:  cobra.NoArgs,
	RunE:  runAnimate,
}

func init() {
	rootCmd.AddCommand(animateCmd)

	animateCmd.Flags().IntVarP(&animTicks, "ticks", "n", 800, "Number of update ticks")
	animateCmd.Flags().IntVar(&animEvery, "every", 100, "Report every n-th tick")
	animateCmd.Flags().Float64Var(&animSpeed, "speed", 1, "Animation speed")
	animateCmd.Flags().StringVarP(&animAlgorithm, "algorithm", "a", fold.Synchronized.String(), "sequential or synchronized")
	animateCmd.Flags().Float64Var(&animFrame, "frame", animator.DefaultFrameNormalization, "Ticks per unit speed")
}

func runAnimate(cmd *cobra.Command, args []string) error {
	if animEvery <= 0 {
		return fmt.Errorf("--every must be positive, got %d", animEvery)
	}
	if animFrame <= 0 {
		return fmt.Errorf("--frame must be positive, got %v", animFrame)
	}
	alg, err := fold.ParseAlgorithm(animAlgorithm)
	if err != nil {
		return err
	}
	s, err := buildShape()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	tick := 0
	an := animator.New(
		animator.WithFrameNormalization(animFrame),
		animator.WithOnFrame(func(s *shape.Shape, st animator.State) {
			if tick%animEvery == 0 {
				fmt.Fprintf(out, "tick %5d  progress %.4f  %s  at rest %v\n",
					tick, st.Progress, st.Algorithm, s.AtRest(1e-9))
			}
		}),
	)
	if err = an.AddAnimation(s, nil, animator.Speed(animSpeed), animator.Algorithm(alg)); err != nil {
		return err
	}

	for tick = 0; tick < animTicks; tick++ {
		if err = an.Update(); err != nil {
			return err
		}
	}
	a, err := an.GetAnimation(s)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "final progress %.4f after %d ticks\n", a.Progress(), animTicks)

	return nil
}
