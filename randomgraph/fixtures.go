package randomgraph

import "github.com/katalvlaran/atrgraph/probmatrix"

// ReferenceSixVertexMatrix returns the 6-vertex graph used as the engine's
// pinned regression anchor (spec scenarios S6/S7). The pack does not retain
// the original example_1.tgf fixture file itself, so this matrix is
// reconstructed algebraically from the two post-PullEdge matrices preserved
// in Google_tests/grph_tests/graph/random/actions/PullEdgeTest.cpp
// (matrixAfterPull_4_5 and matrixAfterPull_0_4): both are independently
// derivable from this matrix via PullEdge(4,5) and PullEdge(0,4)
// respectively, which pins it down uniquely. Every present edge in this
// graph carries probability 0.5.
func ReferenceSixVertexMatrix() *probmatrix.Matrix {
	m := probmatrix.New(6)
	m.AddEdge(0, 1, 0.5)
	m.AddEdge(0, 2, 0.5)
	m.AddEdge(1, 3, 0.5)
	m.AddEdge(1, 4, 0.5)
	m.AddEdge(2, 4, 0.5)
	m.AddEdge(2, 5, 0.5)
	m.AddEdge(3, 4, 0.5)
	m.AddEdge(3, 5, 0.5)
	m.AddEdge(4, 5, 0.5)
	return m
}
