package unfold

import (
	"errors"
	"fmt"
	"math"
	"sort"

	dgraph "github.com/dominikbraun/graph"

	foldnet "github.com/katalvlaran/foldnet"
	"github.com/katalvlaran/foldnet/graph"
	"github.com/katalvlaran/foldnet/shape"
)

// lengthQuantum converts crease lengths to integer edge weights.
const lengthQuantum = 1e4

// Dual returns faceMap of s as an undirected weighted graph keyed by face
// index. Edge weights order creases by rest length first and by face pair
// second, so every weight is distinct and spanning trees are unique.
func Dual(s *shape.Shape) (dgraph.Graph[int, int], error) {
	n := len(s.Faces)
	d := dgraph.New(dgraph.IntHash, dgraph.Weighted())
	for i := range s.Faces {
		if err := d.AddVertex(i, dgraph.VertexAttribute("label", fmt.Sprintf("face %d", i))); err != nil {
			return nil, err
		}
	}
	for _, f := range s.Faces {
		for _, a := range f.Axes {
			if !a.Linked() || a.NeighborFace < f.ID {
				continue
			}
			pair := f.ID*n + a.NeighborFace
			w := int(math.Round(a.Length*lengthQuantum))*n*n + (n*n - 1 - pair)
			err := d.AddEdge(f.ID, a.NeighborFace, dgraph.EdgeWeight(w))
			if err != nil && !errors.Is(err, dgraph.ErrEdgeAlreadyExists) {
				return nil, err
			}
		}
	}

	return d, nil
}

// Widest returns the maximum spanning tree of the dual graph, rooted at the
// root face. Long creases stay attached, which tends to give compact nets.
func Widest(s *shape.Shape) (*graph.Graph[int], error) {
	if s == nil {
		return nil, fmt.Errorf("unfold: widest: %w", shape.ErrEmptyShape)
	}
	d, err := Dual(s)
	if err != nil {
		return nil, fmt.Errorf("unfold: widest: %w", err)
	}
	mst, err := dgraph.MaximumSpanningTree(d)
	if err != nil {
		return nil, fmt.Errorf("unfold: widest: %w", err)
	}
	adj, err := mst.AdjacencyMap()
	if err != nil {
		return nil, fmt.Errorf("unfold: widest: %w", err)
	}

	tree, err := rooted(adj, s.Root())
	if err != nil {
		return nil, err
	}
	if tree.Size() != s.FaceMap().Size() {
		return nil, fmt.Errorf("unfold: widest: %w: %d of %d faces",
			ErrIncompleteSpanningTree, tree.Size(), s.FaceMap().Size())
	}
	foldnet.Logger().Debug("unfold tree derived", "strategy", "widest", "faces", tree.Size())

	return tree, nil
}

// rooted orients an undirected adjacency map into a tree hanging from root,
// visiting neighbors in ascending order.
func rooted(adj map[int]map[int]dgraph.Edge[int], root int) (*graph.Graph[int], error) {
	tree := graph.New[int]()
	rn, err := tree.NewRootNode(root)
	if err != nil {
		return nil, err
	}
	seen := map[int]bool{root: true}
	queue := []*graph.Node[int]{rn}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		next := make([]int, 0, len(adj[cur.Data]))
		for k := range adj[cur.Data] {
			next = append(next, k)
		}
		sort.Ints(next)
		for _, k := range next {
			if seen[k] {
				continue
			}
			seen[k] = true
			child, err := tree.NewNode(cur, k, false)
			if err != nil {
				return nil, err
			}
			queue = append(queue, child)
		}
	}

	return tree, nil
}
