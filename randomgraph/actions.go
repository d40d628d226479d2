package randomgraph

import (
	"github.com/katalvlaran/atrgraph/degseq"
	"github.com/katalvlaran/atrgraph/probmatrix"
)

type mutationKind int

const (
	kindHanging mutationKind = iota
	kindEdge
	kindPull
	kindTrivialChain
)

// RollbackHandle undoes exactly one mutation on the Graph that produced
// it. It is single-use: a second Rollback call panics. Handles must be
// rolled back in LIFO order relative to any other outstanding handle on
// the same graph — nothing enforces this beyond caller discipline, matching
// the engine's single-threaded, stack-shaped recursion.
type RollbackHandle struct {
	graph    *Graph
	kind     mutationKind
	consumed bool

	// kindHanging
	prevRemovedVertexNum int

	// kindEdge
	removedEdge probmatrix.Edge
	edgeProb    probmatrix.Probability

	// kindPull
	prevDegrees             *degseq.DegreesVector
	remainingVertexNum      int
	removedEdgeValue        probmatrix.Probability
	remainingVertexSnapshot []probmatrix.EdgeNode

	// kindTrivialChain
	stEdgeValue     probmatrix.Probability
	chainFactor     float64
	middleVertexNum int
	head, tail      int
}

// Rollback undoes the mutation that produced this handle. Panics if
// already consumed.
func (h *RollbackHandle) Rollback() {
	if h.consumed {
		panic("randomgraph: RollbackHandle used more than once")
	}
	h.consumed = true

	g := h.graph
	switch h.kind {
	case kindHanging:
		g.matrix.RestoreLastVertex()
		g.renumberPairVertexes(g.lastVertex(), h.prevRemovedVertexNum)
		neighbor := g.findNeighbor(h.prevRemovedVertexNum)
		g.degrees.RestoreHangingVertexWithLowestIndex(neighbor)

	case kindEdge:
		g.matrix.RestoreEdge(h.removedEdge, h.edgeProb)
		g.degrees.RestoreEdge(h.removedEdge.Min(), h.removedEdge.Max())

	case kindPull:
		g.matrix.RestoreLastVertex()
		last := g.matrix.Dimension() - 1
		g.matrix.RenumberPair(h.prevRemovedVertexNum, last)
		g.matrix.ZeroLine(h.remainingVertexNum)
		g.matrix.ZeroColumn(h.remainingVertexNum)
		for _, edge := range h.remainingVertexSnapshot {
			g.addEdgeInternal(h.remainingVertexNum, edge.To, edge.P)
		}
		g.addEdgeInternal(h.prevRemovedVertexNum, h.remainingVertexNum, h.removedEdgeValue)
		g.degrees = h.prevDegrees

	case kindTrivialChain:
		g.degrees = h.prevDegrees
		g.matrix.RestoreLastVertex()
		g.renumberPairVertexes(g.lastVertex(), h.middleVertexNum)
		g.addEdgeInternal(h.head, h.tail, h.stEdgeValue)
	}
}
