package unfold

import (
	"errors"
	"fmt"
	"io"

	dgraph "github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"

	"github.com/katalvlaran/foldnet/graph"
)

// WriteDOT writes g in Graphviz DOT format with one vertex per face, named
// by face index. A valid tree is written as a directed graph (parent→child),
// anything else as an undirected graph.
func WriteDOT(w io.Writer, g *graph.Graph[int]) error {
	if g == nil {
		return graph.ErrGraphNil
	}
	var out dgraph.Graph[int, int]
	if g.ValidateTree() == nil {
		out = dgraph.New(dgraph.IntHash, dgraph.Directed(), dgraph.Rooted())
	} else {
		out = dgraph.New(dgraph.IntHash)
	}

	for _, n := range g.Nodes() {
		if err := out.AddVertex(n.Data, dgraph.VertexAttribute("label", fmt.Sprintf("face %d", n.Data))); err != nil {
			return fmt.Errorf("unfold: dot: %w", err)
		}
	}
	for _, n := range g.Nodes() {
		for _, c := range n.Connections {
			err := out.AddEdge(n.Data, c.Data)
			if err != nil && !errors.Is(err, dgraph.ErrEdgeAlreadyExists) {
				return fmt.Errorf("unfold: dot: %w", err)
			}
		}
	}

	return draw.DOT(out, w)
}
