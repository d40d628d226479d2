package randomgraph

import (
	"testing"

	"github.com/katalvlaran/atrgraph/probmatrix"
	"github.com/stretchr/testify/assert"
)

func TestSubgraphAdjacencyMatrix(t *testing.T) {
	m := probmatrix.New(5)
	m.AddEdge(0, 1, 0.5)
	m.AddEdge(1, 2, 0.5)
	m.AddEdge(3, 4, 0.7)
	g := New(m)

	sub := g.SubgraphAdjacencyMatrix([]int{0, 1, 2})
	assert.Equal(t, 3, sub.Dimension())
	assert.Equal(t, probmatrix.Probability(0.5), sub.At(0, 1))
	assert.Equal(t, probmatrix.Probability(0.5), sub.At(1, 2))
	assert.Zero(t, sub.At(0, 2))
}

func TestTreeATR(t *testing.T) {
	g := pathGraph()
	// 0-1-2-3, three independent edges at 0.5 each
	assert.InDelta(t, 0.125, g.TreeATR(), 1e-12)
	assert.True(t, g.IsTree())
}

func TestCycleATR(t *testing.T) {
	g := cycleGraph()
	assert.True(t, g.IsCycle())
	// all edges equal p: Π(p) * (1 + n*(1-p)/p)
	p := 0.5
	want := p * p * p * p * (1 + 4*(1-p)/p)
	assert.InDelta(t, want, g.CycleATR(), 1e-9)
}
