// Package foldnet computes and animates unfoldings of closed polyhedral
// meshes into flat nets, the way a cardboard box opens along its edges.
//
// What is inside?
//
//	crease/   - Axis: a crease line with tolerance-based equality and rotations
//	mesh/     - per-face vertex buffer with an immutable rest copy
//	graph/    - generic node/adjacency Graph[T] + depth/breadth tree walkers
//	shape/    - Face extraction, faceMap construction, transform/revert stack
//	fold/     - SEQUENTIAL and SYNCHRONIZED pose algorithms
//	unfold/   - spanning-tree strategies, net extents, dual-graph export
//	animator/ - per-shape playback state machine
//	solids/   - deterministic box, prism and platonic meshes
//	netimage/ - PNG raster of a fully unfolded net
//
// Data flows one way at setup:
//
//	mesh → Face/Axis extraction → faceMap → UnfoldTree → Animator
//
// and the Animator mutates face vertex positions in place every tick.
// The core performs no I/O; pushing vertices to a renderer is the caller's job.
//
// Quick example:
//
//	s, _ := shape.New(solids.UnitCube())
//	tree, _ := unfold.BreadthUnfold(s)
//	a := animator.New()
//	_ = a.AddAnimation(s, tree)
//	for i := 0; i < 900; i++ {
//		a.Update()
//	}
//
// Logging is silent by default; see SetLogger.
package foldnet
