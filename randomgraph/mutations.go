package randomgraph

import (
	"fmt"

	"github.com/katalvlaran/atrgraph/chainpath"
	"github.com/katalvlaran/atrgraph/degseq"
	"github.com/katalvlaran/atrgraph/probmatrix"
)

// RemoveHangingVertexWithLowestIndex removes the globally lowest-index
// degree-1 vertex, renumbering it to the last slot first so probmatrix's
// O(1) shrink applies. Returns a handle that restores it exactly, and the
// probability the removed edge carried.
func (g *Graph) RemoveHangingVertexWithLowestIndex() (*RollbackHandle, probmatrix.Probability, error) {
	v, err := g.degrees.HangingVertexWithLowestIndex()
	if err != nil {
		return nil, 0, fmt.Errorf("randomgraph: %w", ErrNoHangingVertex)
	}

	prevRemovedVertexNum := v
	g.renumberPairVertexes(v, g.lastVertex())

	last := g.lastVertex()
	neighbor := g.findNeighbor(last)

	g.degrees.RemoveHangingVertexWithLowestIndex(neighbor)
	_, p := g.matrix.RemoveHangingVertex(last, neighbor)

	h := &RollbackHandle{
		graph:                g,
		kind:                 kindHanging,
		prevRemovedVertexNum: prevRemovedVertexNum,
	}
	return h, p, nil
}

// RemoveRandomEdge deterministically removes the edge from the
// globally lowest-degree vertex to its highest-numbered neighbor.
func (g *Graph) RemoveRandomEdge() (*RollbackHandle, probmatrix.Edge, probmatrix.Probability) {
	v := g.degrees.VertexWithLowestDegree()
	neighbor := g.matrix.FindNeighborWithBiggestNumFor(v, nil)
	e := probmatrix.NewEdge(v, neighbor)

	p := g.matrix.RemoveEdge(e)
	g.degrees.RemoveEdge(e.Min(), e.Max())

	h := &RollbackHandle{
		graph:       g,
		kind:        kindEdge,
		removedEdge: e,
		edgeProb:    p,
	}
	return h, e, p
}

// PullEdge contracts the edge between remainingVertexNum and
// vertexToRemoveNum: remainingVertexNum survives, absorbing every other
// edge vertexToRemoveNum had (composing probabilities on any resulting
// parallel edge). Requires remainingVertexNum < vertexToRemoveNum —
// violating that ordering is a programmer error and panics.
func (g *Graph) PullEdge(remainingVertexNum, vertexToRemoveNum int) *RollbackHandle {
	if remainingVertexNum >= vertexToRemoveNum {
		panic("randomgraph: PullEdge requires remainingVertexNum < vertexToRemoveNum")
	}

	removedEdgeValue := g.matrix.At(vertexToRemoveNum, remainingVertexNum)
	g.removeEdgeInternal(remainingVertexNum, vertexToRemoveNum)

	snapshot := g.matrix.GetOutgoingEdges(remainingVertexNum)

	if vertexToRemoveNum != g.lastVertex() {
		g.matrix.RenumberPair(vertexToRemoveNum, g.lastVertex())
	}

	g.enrichWithEdges(remainingVertexNum, g.matrix.GetOutgoingEdges(g.lastVertex()))
	g.matrix.RemoveLastVertex()

	prevDegrees := g.degrees
	g.degrees = degseq.New(g.matrix)

	return &RollbackHandle{
		graph:                   g,
		kind:                    kindPull,
		prevDegrees:             prevDegrees,
		prevRemovedVertexNum:    vertexToRemoveNum,
		remainingVertexNum:      remainingVertexNum,
		removedEdgeValue:        removedEdgeValue,
		remainingVertexSnapshot: snapshot,
	}
}

func (g *Graph) enrichWithEdges(vertexToEnrich int, edges []probmatrix.EdgeNode) {
	for _, e := range edges {
		if g.matrix.IsConnected(vertexToEnrich, e.To) {
			g.matrix.ReplaceMultiEdge(vertexToEnrich, e.To, e.P)
		} else {
			g.matrix.AddEdge(vertexToEnrich, e.To, e.P)
		}
	}
}

// RemoveTrivialChain folds a chain of at most chainpath.TrivialChainVertexLength
// vertices into a single equivalent edge between its head and tail, then
// removes its sole interior vertex. Panics if chain is not trivial.
func (g *Graph) RemoveTrivialChain(chain *chainpath.Chain) *RollbackHandle {
	if !chain.IsTrivial() {
		panic("randomgraph: RemoveTrivialChain requires a trivial chain")
	}

	prevDegrees := g.degrees
	head, tail := chain.Head(), chain.Tail()
	stEdgeValue := g.matrix.At(head, tail)
	middle := chain.MiddleVertex()

	if !chain.IsCycle() {
		if stEdgeValue != 0 {
			g.matrix.ReplaceMultiEdge(head, tail, chain.ReducedValue())
		} else {
			g.addEdgeInternal(head, tail, chain.ReducedValue())
		}
	}

	g.renumberPairVertexes(middle, g.lastVertex())
	g.matrix.RemoveLastVertex()
	g.degrees = degseq.New(g.matrix)

	return &RollbackHandle{
		graph:           g,
		kind:            kindTrivialChain,
		prevDegrees:     prevDegrees,
		stEdgeValue:     stEdgeValue,
		chainFactor:     chain.Factor(),
		middleVertexNum: middle,
		head:            head,
		tail:            tail,
	}
}
