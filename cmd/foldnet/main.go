// Command foldnet builds a polyhedron, derives an unfold tree and inspects,
// animates or exports the resulting net.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	foldnet "github.com/katalvlaran/foldnet"
	"github.com/katalvlaran/foldnet/mesh"
	"github.com/katalvlaran/foldnet/shape"
	"github.com/katalvlaran/foldnet/solids"
	"github.com/katalvlaran/foldnet/unfold"
)

var (
	solidName string
	sides     int
	size      float64
	strategy  string
	seed      int64
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "foldnet",
	Short: "Unfold polyhedra into flat nets",
	Long:  "foldnet builds a polyhedron, derives a spanning tree over its faces and unfolds it along that tree.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		foldnet.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&solidName, "solid", "s", "cube", fmt.Sprintf("Platonic solid %v", solids.Names()))
	pf.IntVar(&sides, "prism", 0, "Build an n-sided prism instead of a Platonic solid")
	pf.Float64Var(&size, "size", 1, "Edge length multiplier")
	pf.StringVarP(&strategy, "strategy", "u", "breadth", fmt.Sprintf("Unfold strategy %v", unfold.StrategyNames()))
	pf.Int64Var(&seed, "seed", 0, "Seed for random strategies (0 uses the current time)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Log debug diagnostics to stderr")
}

// buildShape constructs the shape selected by the persistent flags and
// installs the selected unfold tree.
func buildShape() (*shape.Shape, error) {
	if size <= 0 {
		return nil, fmt.Errorf("--size must be positive, got %v", size)
	}
	var (
		regions []mesh.Region
		err     error
	)
	if sides > 0 {
		regions, err = solids.Prism(sides, solids.WithSize(size))
	} else {
		var name solids.PlatonicName
		if name, err = solids.Parse(solidName); err == nil {
			regions, err = solids.Platonic(name, solids.WithSize(size))
		}
	}
	if err != nil {
		return nil, err
	}

	s := seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	derive, err := unfold.Named(strategy, unfold.WithSeed(s))
	if err != nil {
		return nil, err
	}

	return shape.New(regions, shape.WithDefaultUnfold(derive))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
