// Package fold poses a Shape along an unfold tree.
//
// Two algorithms are provided:
//
//	Sequential   - tree edges open one at a time in breadth-first order;
//	               progress selects the edge in flight and its fraction.
//	Synchronized - every tree edge opens by the same fraction at once.
//
// Both rotate, for each tree edge parent→child, the whole subtree rooted at
// child about the parent's crease, so faces further down the tree are carried
// along. Edges are processed root to leaf, which lets every edge pivot on the
// already-moved crease of its parent.
//
// Apply always starts from the rest pose; poses are never accumulated across
// calls.
package fold
