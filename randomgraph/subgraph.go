package randomgraph

import (
	"github.com/katalvlaran/atrgraph/chainpath"
	"github.com/katalvlaran/atrgraph/degseq"
	"github.com/katalvlaran/atrgraph/probmatrix"
)

// SubgraphAdjacencyMatrix builds a fresh, densely-renumbered matrix
// containing only the given vertices, preserving their relative
// probabilities. Used at a bridge split, where each side of the cut is
// recursed on independently.
func (g *Graph) SubgraphAdjacencyMatrix(vertices []int) *probmatrix.Matrix {
	mapping := make(map[int]int, len(vertices))
	for i, v := range vertices {
		mapping[v] = i
	}
	sub := probmatrix.New(len(vertices))
	for _, sv := range vertices {
		for _, gv := range vertices {
			sub.SetAt(g.matrix.At(sv, gv), mapping[sv], mapping[gv])
		}
	}
	return sub
}

// ReduceChain folds chain into the graph: a trivial chain is removed via
// RemoveTrivialChain (its rollback handle is deliberately discarded — this
// is the engine's one-way, pre-recursion reduction pass, which never rolls
// back); a longer chain rebuilds the matrix and degree index from scratch
// over the vertices outside the chain's interior. Returns the chain's
// contribution to the overall reliability product.
func (g *Graph) ReduceChain(chain *chainpath.Chain) float64 {
	if chain.IsTrivial() {
		g.RemoveTrivialChain(chain)
		return chain.Factor()
	}
	g.rebuildWithoutChain(chain)
	return chain.Factor()
}

func (g *Graph) rebuildWithoutChain(chain *chainpath.Chain) {
	toRemove := chain.VerticesToRemove()
	n := g.matrix.Dimension()

	remaining := make([]int, 0, n-len(toRemove))
	for v := 0; v < n; v++ {
		if !toRemove[v] {
			remaining = append(remaining, v)
		}
	}

	mapping := make(map[int]int, len(remaining))
	for i, v := range remaining {
		mapping[v] = i
	}

	sub := probmatrix.New(len(remaining))
	for _, sv := range remaining {
		for _, gv := range remaining {
			sub.SetAt(g.matrix.At(sv, gv), mapping[sv], mapping[gv])
		}
	}

	if !chain.IsCycle() {
		head, tail := chain.Head(), chain.Tail()
		ms, mt := mapping[head], mapping[tail]
		if g.matrix.At(head, tail) != 0 {
			sub.ReplaceMultiEdge(ms, mt, chain.ReducedValue())
		} else {
			sub.AddEdge(ms, mt, chain.ReducedValue())
		}
	}

	g.matrix = sub
	g.degrees = degseq.New(sub)
}
