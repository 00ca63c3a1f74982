package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/foldnet/fold"
	"github.com/katalvlaran/foldnet/unfold"
)

var netCmd = &cobra.Command{
	Use:   "net",
	Short: "Print the face map, the unfold tree and the net extent",
	Args:  cobra.NoArgs,
	RunE:  runNet,
}

func init() {
	rootCmd.AddCommand(netCmd)
}

func runNet(cmd *cobra.Command, args []string) error {
	s, err := buildShape()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Faces:       %d\n", len(s.Faces))
	fmt.Fprintf(out, "Adjacencies: %d\n", s.FaceMap().EdgeCount())
	fmt.Fprintf(out, "Root face:   %d (area %.4f)\n", s.Root(), s.Faces[s.Root()].Area())

	fmt.Fprintln(out, "\nUnfold tree:")
	for _, e := range fold.Edges(s.Unfold()) {
		a, _ := s.Crease(e.Parent, e.Child)
		fmt.Fprintf(out, "  %3d -> %-3d  angle %8.3f°  crease %.4f  carries %d\n",
			e.Parent, e.Child, a.OriginalAngle*180/math.Pi, a.Length, len(e.Subtree))
	}

	lo, hi, err := unfold.FindUnfoldSize(s)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nNet extent:  min (%.4f, %.4f, %.4f)  max (%.4f, %.4f, %.4f)\n",
		lo.X, lo.Y, lo.Z, hi.X, hi.Y, hi.Z)

	return nil
}
