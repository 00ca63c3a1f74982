package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/foldnet/netimage"
	"github.com/katalvlaran/foldnet/unfold"
)

var (
	dotTree  bool
	dotOut   string
	pngOut   string
	pngScale float64
)

var dotCmd = &cobra.Command{
	Use:   "dot",
	Short: "Write the face map or the unfold tree in Graphviz DOT format",
	Args:  cobra.NoArgs,
	RunE:  runDot,
}

var pngCmd = &cobra.Command{
	Use:   "png",
	Short: "Render the unfolded net to a PNG file",
	Args:  cobra.NoArgs,
	RunE:  runPNG,
}

func init() {
	rootCmd.AddCommand(dotCmd, pngCmd)

	dotCmd.Flags().BoolVarP(&dotTree, "tree", "t", false, "Write the unfold tree instead of the face map")
	dotCmd.Flags().StringVarP(&dotOut, "output", "o", "-", "Output file, - for stdout")

	pngCmd.Flags().StringVarP(&pngOut, "output", "o", "net.png", "Output file")
	pngCmd.Flags().Float64Var(&pngScale, "scale", 64, "Pixels per model unit")
}

func runDot(cmd *cobra.Command, args []string) error {
	s, err := buildShape()
	if err != nil {
		return err
	}
	g := s.FaceMap()
	if dotTree {
		g = s.Unfold()
	}

	var w io.Writer = cmd.OutOrStdout()
	if dotOut != "-" {
		f, err := os.Create(dotOut)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	return unfold.WriteDOT(w, g)
}

func runPNG(cmd *cobra.Command, args []string) error {
	s, err := buildShape()
	if err != nil {
		return err
	}
	f, err := os.Create(pngOut)
	if err != nil {
		return err
	}
	if err = netimage.Encode(f, s, pngScale); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", pngOut)

	return nil
}
