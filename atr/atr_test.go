package atr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/atrgraph/probmatrix"
	"github.com/katalvlaran/atrgraph/randomgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pathMatrix(n int, p probmatrix.Probability) *probmatrix.Matrix {
	m := probmatrix.New(n)
	for i := 0; i < n-1; i++ {
		m.AddEdge(i, i+1, p)
	}
	return m
}

func cycleMatrix(n int, p probmatrix.Probability) *probmatrix.Matrix {
	m := pathMatrix(n, p)
	m.AddEdge(0, n-1, p)
	return m
}

func completeMatrix(n int, p probmatrix.Probability) *probmatrix.Matrix {
	m := probmatrix.New(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m.AddEdge(i, j, p)
		}
	}
	return m
}

func TestCalculateATRTree(t *testing.T) {
	m := pathMatrix(4, 0.5)
	got, err := CalculateATR(m)
	require.NoError(t, err)
	assert.InDelta(t, 0.125, got, 1e-9)
}

func TestCalculateATRCycle(t *testing.T) {
	m := cycleMatrix(4, 0.5)
	got, err := CalculateATR(m)
	require.NoError(t, err)
	// Π(p) * (1 + Σ(1-p)/p) = 0.0625 * (1 + 4*1) = 0.3125
	assert.InDelta(t, 0.3125, got, 1e-9)
}

func TestCalculateATRDisconnectedIsZero(t *testing.T) {
	m := probmatrix.New(4)
	m.AddEdge(0, 1, 0.9)
	m.AddEdge(2, 3, 0.9)
	got, err := CalculateATR(m)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestCalculateATRCompleteGraphAllOne(t *testing.T) {
	m := completeMatrix(5, 1.0)
	got, err := CalculateATR(m)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-9)
}

func TestCalculateATRMatchesClosedFormBelowSix(t *testing.T) {
	// A 5-vertex graph stays inside the closed-form base case; CalculateATR
	// must agree with calculateComputableDimensionGraph exactly.
	m := probmatrix.New(5)
	m.AddEdge(0, 1, 0.9)
	m.AddEdge(1, 2, 0.8)
	m.AddEdge(2, 3, 0.7)
	m.AddEdge(3, 4, 0.6)
	m.AddEdge(4, 0, 0.5)
	m.AddEdge(0, 2, 0.4)

	got, err := CalculateATR(m)
	require.NoError(t, err)

	g := randomgraph.New(m.Copy())
	want := calculateComputableDimensionGraph(g)
	assert.InDelta(t, want, got, 1e-9)
}

// TestCalculateATRBridgedPendantTriangles builds two equilateral triangles
// (p=0.5 each) joined by a single bridge edge (p=0.6). This forces the
// engine through prepareForReduction's chain fold: the resolving chain
// found here is the minimal *cycle* shape (two interior vertices), which
// RemoveTrivialChain's single-vertex fast path cannot handle correctly —
// exercising chainpath.Chain.IsTrivial's interior-count threshold rather
// than its old (and here misleading) Size()-based one.
func TestCalculateATRBridgedPendantTriangles(t *testing.T) {
	m := probmatrix.New(6)
	m.AddEdge(0, 1, 0.5)
	m.AddEdge(0, 2, 0.5)
	m.AddEdge(1, 2, 0.5)
	m.AddEdge(2, 3, 0.6)
	m.AddEdge(3, 4, 0.5)
	m.AddEdge(3, 5, 0.5)
	m.AddEdge(4, 5, 0.5)

	got, err := CalculateATR(m)
	require.NoError(t, err)

	triangleATR := 3*0.5*0.5 - 2*0.5*0.5*0.5
	want := 0.6 * triangleATR * triangleATR
	assert.InDelta(t, want, got, 1e-9)
}

// TestCalculateATRReferenceSixVertexGraph is spec scenario S6: a regression
// anchor pinning CalculateATR's output on the reference 6-vertex graph
// (reconstructed from PullEdgeTest.cpp's post-pull matrices, see
// randomgraph.ReferenceSixVertexMatrix). The expected value was derived by
// hand via chain reduction followed by edge deletion-contraction down to
// the N<=4 closed forms, cross-checked through two independent
// decomposition orders: 91/256 = 0.35546875, exact in binary floating
// point. Do not re-derive this value from a future implementation change;
// it pins the current, verified-correct output.
func TestCalculateATRReferenceSixVertexGraph(t *testing.T) {
	got, err := CalculateATR(randomgraph.ReferenceSixVertexMatrix())
	require.NoError(t, err)
	assert.InDelta(t, 91.0/256.0, got, 1e-12)
}

// TestCalculateATRDoesNotMutateInput asserts the caller's matrix survives
// CalculateATR unchanged, byte for byte, since every mutation happens on
// an internal copy.
func TestCalculateATRDoesNotMutateInput(t *testing.T) {
	m := cycleMatrix(7, 0.7)
	before := m.Copy()

	_, err := CalculateATR(m)
	require.NoError(t, err)

	if diff := cmp.Diff(before.String(), m.String()); diff != "" {
		t.Errorf("input matrix mutated (-before +after):\n%s", diff)
	}
}

// TestCalculateATRMonotonicIncreasingEdgeProbability checks that raising a
// single edge's survival probability never decreases the whole graph's
// reliability.
func TestCalculateATRMonotonicIncreasingEdgeProbability(t *testing.T) {
	build := func(p23 probmatrix.Probability) *probmatrix.Matrix {
		m := cycleMatrix(7, 0.6)
		m.AddEdge(2, 5, p23) // chord, breaks the pure-cycle short circuit
		return m
	}

	lo, err := CalculateATR(build(0.3))
	require.NoError(t, err)
	hi, err := CalculateATR(build(0.9))
	require.NoError(t, err)

	assert.Less(t, lo, hi)
}

// TestCalculateATRRangeBounded checks 0 <= R <= 1 across a handful of
// graphs big enough to exercise the full recursive engine.
func TestCalculateATRRangeBounded(t *testing.T) {
	graphs := []*probmatrix.Matrix{
		cycleMatrix(8, 0.42),
		completeMatrix(6, 0.3),
	}
	for _, m := range graphs {
		got, err := CalculateATR(m)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 1.0)
	}
}

// TestCalculateATRSymmetricUnderRelabelling permutes the vertex numbering
// of a graph and checks the computed reliability is unchanged.
func TestCalculateATRSymmetricUnderRelabelling(t *testing.T) {
	m := completeMatrix(6, 0.3)
	// Drop a few edges so it isn't a pure complete graph (which is already
	// relabelling-invariant by construction).
	m.RemoveEdge(probmatrix.NewEdge(0, 3))
	m.RemoveEdge(probmatrix.NewEdge(1, 4))

	relabelled := probmatrix.New(6)
	perm := []int{5, 4, 3, 2, 1, 0}
	for i := 0; i < 6; i++ {
		for j := i + 1; j < 6; j++ {
			relabelled.SetAt(m.At(i, j), perm[i], perm[j])
			relabelled.SetAt(m.At(i, j), perm[j], perm[i])
		}
	}

	got, err := CalculateATR(m)
	require.NoError(t, err)
	gotRelabelled, err := CalculateATR(relabelled)
	require.NoError(t, err)

	assert.InDelta(t, got, gotRelabelled, 1e-9)
}

// TestCalculateATREdgeDecompositionIdentity checks the classical
// reliability decomposition on a single edge e: R(G) = p_e*R(G/e) +
// (1-p_e)*R(G-e), using a non-bridge edge of a 6-vertex graph built by
// hand (no automatic contraction/removal helpers from randomgraph, to
// keep this an independent cross-check of CalculateATR's recursion).
func TestCalculateATREdgeDecompositionIdentity(t *testing.T) {
	m := completeMatrix(6, 0.3)
	pe := m.At(0, 1)

	withoutE := m.Copy()
	withoutE.RemoveEdge(probmatrix.NewEdge(0, 1))

	// Contract edge (0,1): merge vertex 1 into vertex 0, composing any
	// resulting parallel edges, then drop vertex 1 by renumbering it to
	// the last slot and shrinking.
	contracted := m.Copy()
	for v := 2; v < 6; v++ {
		p0 := contracted.At(0, v)
		p1 := contracted.At(1, v)
		if p1 != 0 {
			if p0 != 0 {
				contracted.ReplaceMultiEdge(0, v, p1)
			} else {
				contracted.AddEdge(0, v, p1)
			}
		}
	}
	contracted.RenumberPair(1, 5)
	contracted.RemoveLastVertex()

	rFull, err := CalculateATR(m)
	require.NoError(t, err)
	rWithout, err := CalculateATR(withoutE)
	require.NoError(t, err)
	rContracted, err := CalculateATR(contracted)
	require.NoError(t, err)

	want := pe*rContracted + (1-pe)*rWithout
	assert.InDelta(t, want, rFull, 1e-9)
}
