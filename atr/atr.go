package atr

import (
	"sort"

	"github.com/katalvlaran/atrgraph/chainpath"
	"github.com/katalvlaran/atrgraph/degseq"
	"github.com/katalvlaran/atrgraph/probmatrix"
	"github.com/katalvlaran/atrgraph/randomgraph"
)

// CalculateATR computes the exact All-Terminal Reliability of m. A copy of
// m is taken up front; the caller's matrix is never mutated.
func CalculateATR(m *probmatrix.Matrix) (float64, error) {
	g := randomgraph.New(m.Copy())

	if g.IsTree() {
		return g.TreeATR(), nil
	}

	component := g.ConnectedComponent()
	if len(component) != g.NumVertices() {
		return 0, nil
	}

	if g.IsCycle() {
		return g.CycleATR(), nil
	}

	if g.NumVertices() <= computableDimension {
		return calculateComputableDimensionGraph(g), nil
	}

	R, err := prepareForReduction(g)
	if err != nil {
		return 0, err
	}

	if g.NumVertices() <= computableDimension {
		return R * calculateComputableDimensionGraph(g), nil
	}

	return R * removeEdgeATRStep(g), nil
}

// findResolvingChain walks outward from the first degree-2 vertex in
// ascending vertex order, extending backward via the lowest-numbered
// neighbor and forward via the highest-numbered neighbor until each side
// hits a vertex whose degree isn't 2. Returns nil if the graph currently
// has no degree-2 vertex.
func findResolvingChain(g *randomgraph.Graph) *chainpath.Chain {
	begin := g.Degrees().FirstVertexWithDegreeTwo()
	if begin == degseq.NotFound {
		return nil
	}

	chain := []int{begin}
	sumInverseP := 0.0
	pProduct := 1.0

	prevVertex, curVertex := begin, begin
	for {
		next := g.Matrix().FindNeighborWithLowestNumFor(curVertex, map[int]bool{prevVertex: true})
		chain = append([]int{next}, chain...)
		prevVertex, curVertex = curVertex, next

		p := g.At(prevVertex, curVertex)
		sumInverseP += 1 / p
		pProduct *= p

		if g.VertexDegree(curVertex) != 2 {
			break
		}
	}

	prevVertex, curVertex = begin, begin
	for {
		next := g.Matrix().FindNeighborWithBiggestNumFor(curVertex, map[int]bool{prevVertex: true})
		chain = append(chain, next)
		prevVertex, curVertex = curVertex, next

		p := g.At(prevVertex, curVertex)
		sumInverseP += 1 / p
		pProduct *= p

		if g.VertexDegree(curVertex) != 2 {
			break
		}
	}

	return chainpath.New(chain, sumInverseP, pProduct, begin)
}

// removeEdgeATRStep removes the engine's deterministically chosen edge and
// recurses: if the edge was a bridge, the two halves it separates are
// independent and their reliabilities multiply together (scaled by the
// edge surviving); otherwise it recurses once assuming the edge failed and
// once assuming it survived (pulled into a single vertex), weighting each
// by the edge's probability.
func removeEdgeATRStep(g *randomgraph.Graph) float64 {
	edgeHandle, edge, p := g.RemoveRandomEdge()

	component := g.ConnectedComponent()
	isBridge := len(component) != g.NumVertices()

	var R float64
	if isBridge {
		R = p * calculateComponentATR(g, mapKeys(component)) *
			calculateComponentATR(g, g.InverseComponent(component))
	} else {
		R = (1 - p) * calculateInternalATR(g)

		pullHandle := g.PullEdge(edge.Min(), edge.Max())
		R += p * calculateInternalATR(g)
		pullHandle.Rollback()
	}

	edgeHandle.Rollback()
	return R
}

// prepareForReduction peels every hanging vertex, then repeatedly folds
// the resolving chain found from the lowest-ranked degree-2 vertex (see
// findResolvingChain), peeling any hanging vertex a fold leaves behind,
// until no chain remains or the graph is already small enough for a
// closed-form evaluation. Returns the cumulative probability factor
// contributed by everything it removed.
func prepareForReduction(g *randomgraph.Graph) (float64, error) {
	R := removeHangingVertexes(g)

	for g.NumVertices() > computableDimension {
		chain := findResolvingChain(g)
		if chain == nil {
			break
		}

		R *= g.ReduceChain(chain)
		R *= removeHangingVertexes(g)

		if g.ContainsHangingVertex() {
			return 0, ErrHangingVertexAfterReduction
		}
	}
	return R, nil
}

func removeHangingVertexes(g *randomgraph.Graph) float64 {
	R := 1.0
	for g.ContainsHangingVertex() {
		_, p, err := g.RemoveHangingVertexWithLowestIndex()
		if err != nil {
			break
		}
		R *= p
	}
	return R
}

// calculateComponentATR temporarily switches g to the subgraph induced by
// vertices, recurses, and restores g's original matrix/degree index
// afterward.
func calculateComponentATR(g *randomgraph.Graph, vertices []int) float64 {
	prevMatrix := g.Matrix()
	prevDegrees := g.Degrees()

	subMatrix := g.SubgraphAdjacencyMatrix(vertices)
	subDegrees := degseq.New(subMatrix)

	g.SetMatrixAndDegrees(subMatrix, subDegrees)
	R := calculateInternalATR(g)
	g.SetMatrixAndDegrees(prevMatrix, prevDegrees)

	return R
}

// calculateInternalATR is the recursive workhorse used once the graph is
// known connected: it falls back to the closed form once small enough,
// folds a trivial chain if it finds one, and otherwise factors on an edge.
// A non-trivial chain (two or more interior vertices) is left alone here —
// RemoveTrivialChain only handles a single interior vertex — and falls
// through to removeEdgeATRStep instead. This is reachable on valid input:
// a PullEdge contraction, or a prior RemoveTrivialChain fold re-adding a
// head-tail edge, can drop two adjacent vertices to degree 2 at once.
func calculateInternalATR(g *randomgraph.Graph) float64 {
	if g.NumVertices() <= computableDimension {
		return calculateComputableDimensionGraph(g)
	}

	chain := findResolvingChain(g)
	if chain != nil && chain.IsTrivial() {
		handle := g.RemoveTrivialChain(chain)
		R := chain.Factor() * calculateInternalATR(g)
		handle.Rollback()
		return R
	}

	return removeEdgeATRStep(g)
}

func mapKeys(m map[int]bool) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
