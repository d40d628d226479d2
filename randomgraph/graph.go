package randomgraph

import (
	"github.com/katalvlaran/atrgraph/degseq"
	"github.com/katalvlaran/atrgraph/probmatrix"
)

// Graph pairs a probability matrix with its degree-sorted index and keeps
// the two synchronized across every mutation.
type Graph struct {
	matrix  *probmatrix.Matrix
	degrees *degseq.DegreesVector
}

// New builds a Graph from an existing matrix, computing its degree index.
func New(m *probmatrix.Matrix) *Graph {
	return &Graph{matrix: m, degrees: degseq.New(m)}
}

// NumVertices returns the current vertex count.
func (g *Graph) NumVertices() int { return g.matrix.Dimension() }

// NumEdges returns the current edge count, derived from the degree sum.
func (g *Graph) NumEdges() int { return g.degrees.NumEdges() }

// VertexDegree returns vertexNum's current degree.
func (g *Graph) VertexDegree(vertexNum int) int { return g.degrees.Degree(vertexNum) }

// At returns the edge probability between two vertices.
func (g *Graph) At(i, j int) probmatrix.Probability { return g.matrix.At(i, j) }

// IsConnectedPair reports whether i and j are directly joined by an edge.
func (g *Graph) IsConnectedPair(i, j int) bool { return g.matrix.IsConnected(i, j) }

// Matrix exposes the underlying adjacency matrix, e.g. for the ATR engine's
// closed-form base cases.
func (g *Graph) Matrix() *probmatrix.Matrix { return g.matrix }

// Degrees exposes the underlying degree index.
func (g *Graph) Degrees() *degseq.DegreesVector { return g.degrees }

// ContainsHangingVertex reports whether some vertex has degree 1.
func (g *Graph) ContainsHangingVertex() bool { return g.degrees.ContainsHangingVertex() }

// ContainsChain reports whether some vertex has degree exactly 2.
func (g *Graph) ContainsChain() bool {
	return g.degrees.FirstVertexWithDegreeTwo() != degseq.NotFound
}

// IsTree reports whether the edge count equals vertices-1.
func (g *Graph) IsTree() bool {
	return g.degrees.NumEdges() == g.matrix.Dimension()-1
}

// IsCycle reports whether every vertex has degree 2. Only meaningful once
// the graph is known to be connected.
func (g *Graph) IsCycle() bool { return g.degrees.IsCycle() }

// TreeATR computes the reliability of a tree: the plain product of every
// present edge's probability.
func (g *Graph) TreeATR() float64 {
	product := 1.0
	n := g.matrix.Dimension()
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			if g.matrix.IsConnected(i, j) {
				product *= g.matrix.At(i, j)
			}
		}
	}
	return product
}

// CycleATR computes the reliability of a simple cycle in closed form:
// Π(p) * (1 + Σ(1-p)/p).
func (g *Graph) CycleATR() float64 {
	product := 1.0
	sum := 0.0
	n := g.matrix.Dimension()
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			if g.matrix.IsConnected(i, j) {
				p := g.matrix.At(i, j)
				product *= p
				sum += (1 - p) / p
			}
		}
	}
	return product * (1 + sum)
}

// SetMatrixAndDegrees swaps in a different matrix/degrees pair wholesale,
// used by the ATR engine to temporarily switch to a component's subgraph
// and back without copying call state.
func (g *Graph) SetMatrixAndDegrees(m *probmatrix.Matrix, d *degseq.DegreesVector) {
	g.matrix = m
	g.degrees = d
}

func (g *Graph) lastVertex() int { return g.matrix.Dimension() - 1 }

func (g *Graph) findNeighbor(v int) int {
	return g.matrix.FindNeighborWithLowestNumFor(v, nil)
}

func (g *Graph) addEdgeInternal(from, to int, value probmatrix.Probability) {
	g.matrix.AddEdge(from, to, value)
}

func (g *Graph) removeEdgeInternal(from, to int) {
	g.matrix.SetAt(0, from, to)
	g.matrix.SetAt(0, to, from)
}

func (g *Graph) renumberPairVertexes(v1, v2 int) {
	if v1 == v2 {
		return
	}
	g.matrix.RenumberPair(v1, v2)
	g.degrees.RenumberPair(v1, v2)
}
