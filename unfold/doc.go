// Package unfold derives unfold trees (spanning trees of a Shape's faceMap)
// and answers geometric queries about the fully unfolded net.
//
// Strategies:
//
//	Basic               - depth-first from the root face.
//	BreadthUnfold       - breadth-first from the root face.
//	RandomBasic         - Basic over shuffled neighbor lists.
//	RandomBreadthUnfold - BreadthUnfold over shuffled neighbor lists.
//	Widest              - maximum spanning tree weighted by crease length,
//	                      keeping the longest creases attached.
//
// Every strategy returns a tree rooted at the Shape's root face that holds
// every face exactly once, or an error wrapping ErrIncompleteSpanningTree.
//
// Randomness is injected through WithSeed or WithRand; the same seed always
// yields the same tree.
package unfold
