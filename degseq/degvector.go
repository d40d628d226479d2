package degseq

import (
	"fmt"

	"github.com/katalvlaran/atrgraph/probmatrix"
)

// DegreesVector is a degree-sorted index over a fixed set of vertices,
// maintained incrementally as the caller mutates the underlying graph.
type DegreesVector struct {
	begin, end int
	nodes      []degreeNode // sorted ascending by (degree, vertexNum)
	position   []int        // vertexNum -> index in nodes
}

// New builds a DegreesVector from m's current adjacency, one node per
// vertex in [0, m.Dimension()).
func New(m *probmatrix.Matrix) *DegreesVector {
	n := m.Dimension()
	dv := &DegreesVector{
		begin:    0,
		end:      n - 1,
		nodes:    make([]degreeNode, n),
		position: make([]int, n),
	}
	for v := 0; v < n; v++ {
		deg := 0
		for col := 0; col < n; col++ {
			if m.IsConnected(v, col) {
				deg++
			}
		}
		dv.nodes[v] = degreeNode{vertexNum: v, degree: deg}
	}
	dv.sortNodes()
	return dv
}

// sortNodes performs the initial ascending sort and rebuilds position; only
// used at construction, insertion sort is enough since inputs are tiny (the
// engine's graphs are bounded by spec.md's dense, small-N domain).
func (dv *DegreesVector) sortNodes() {
	for i := 1; i < len(dv.nodes); i++ {
		j := i
		for j > 0 && dv.nodes[j].less(dv.nodes[j-1]) {
			dv.nodes[j], dv.nodes[j-1] = dv.nodes[j-1], dv.nodes[j]
			j--
		}
	}
	for i, node := range dv.nodes {
		dv.position[node.vertexNum] = i
	}
}

// Len returns the number of vertices currently in the active window.
func (dv *DegreesVector) Len() int {
	if dv.end < dv.begin {
		return 0
	}
	return dv.end - dv.begin + 1
}

// Degree returns vertexNum's current degree.
func (dv *DegreesVector) Degree(vertexNum int) int {
	return dv.nodes[dv.position[vertexNum]].degree
}

// VertexWithLowestDegree returns the vertex at the start of the active
// window — the globally minimum-degree vertex.
func (dv *DegreesVector) VertexWithLowestDegree() int {
	return dv.nodes[dv.begin].vertexNum
}

// ContainsHangingVertex reports whether the window's minimum-degree vertex
// has degree exactly 1.
func (dv *DegreesVector) ContainsHangingVertex() bool {
	return dv.Len() > 0 && dv.nodes[dv.begin].degree == 1
}

// HangingVertexWithLowestIndex returns the window-start vertex if it is
// hanging (degree 1), else ErrNoHangingVertex.
func (dv *DegreesVector) HangingVertexWithLowestIndex() (int, error) {
	if !dv.ContainsHangingVertex() {
		return NotFound, ErrNoHangingVertex
	}
	return dv.nodes[dv.begin].vertexNum, nil
}

// FirstVertexWithDegreeTwo scans the window ascending and returns the first
// degree-2 vertex, or NotFound if the window's minimum degree already
// exceeds 2 (since the window is sorted, no degree-2 vertex can follow a
// higher one).
func (dv *DegreesVector) FirstVertexWithDegreeTwo() int {
	for i := dv.begin; i <= dv.end; i++ {
		switch {
		case dv.nodes[i].degree == 2:
			return dv.nodes[i].vertexNum
		case dv.nodes[i].degree > 2:
			return NotFound
		}
	}
	return NotFound
}

// IsCycle reports whether every vertex in the active window has degree 2.
// Equivalent to checking both window ends since the window is sorted.
func (dv *DegreesVector) IsCycle() bool {
	return dv.Len() > 0 &&
		dv.nodes[dv.begin].degree == 2 &&
		dv.nodes[dv.end].degree == 2
}

// NumEdges returns the edge count implied by the active window's degree
// sum (handshake lemma: sum of degrees / 2).
func (dv *DegreesVector) NumEdges() int {
	sum := 0
	for i := dv.begin; i <= dv.end; i++ {
		sum += dv.nodes[i].degree
	}
	return sum / 2
}

// RemoveHangingVertexWithLowestIndex retires the window-start vertex
// (assumed hanging; callers check ContainsHangingVertex first) and
// decrements neighborVertex's degree, re-sorting it leftward.
func (dv *DegreesVector) RemoveHangingVertexWithLowestIndex(neighborVertex int) {
	dv.begin++
	idx := dv.position[neighborVertex]
	dv.nodes[idx].degree--
	dv.siftLeft(idx)
}

// RestoreHangingVertexWithLowestIndex undoes
// RemoveHangingVertexWithLowestIndex: grows the window leftward and
// increments neighborVertex's degree, re-sorting it rightward.
func (dv *DegreesVector) RestoreHangingVertexWithLowestIndex(neighborVertex int) {
	dv.begin--
	idx := dv.position[neighborVertex]
	dv.nodes[idx].degree++
	dv.siftRight(idx)
}

// RemoveEdge decrements the degree of both endpoints and re-sorts each
// leftward.
func (dv *DegreesVector) RemoveEdge(from, to int) {
	fi := dv.position[from]
	dv.nodes[fi].degree--
	dv.siftLeft(fi)

	ti := dv.position[to]
	dv.nodes[ti].degree--
	dv.siftLeft(ti)
}

// RestoreEdge increments the degree of both endpoints and re-sorts each
// rightward.
func (dv *DegreesVector) RestoreEdge(from, to int) {
	fi := dv.position[from]
	dv.nodes[fi].degree++
	dv.siftRight(fi)

	ti := dv.position[to]
	dv.nodes[ti].degree++
	dv.siftRight(ti)
}

// RenumberPair swaps the vertex labels at vertexNum1 and vertexNum2,
// leaving their degree-sorted positions untouched — only the vertexNum
// fields and the reverse mapping change.
func (dv *DegreesVector) RenumberPair(vertexNum1, vertexNum2 int) {
	if vertexNum1 == vertexNum2 {
		return
	}
	i1, i2 := dv.position[vertexNum1], dv.position[vertexNum2]
	dv.nodes[i1].vertexNum = vertexNum2
	dv.nodes[i2].vertexNum = vertexNum1
	dv.position[vertexNum1], dv.position[vertexNum2] = dv.position[vertexNum2], dv.position[vertexNum1]
}

// siftLeft walks nodeIndex left across adjacent slots, swapping while the
// node at nodeIndex sorts strictly before its left neighbor, re-evaluating
// the node's own position after every swap so it can cross more than one
// equal-or-higher-ranked neighbor in a single call.
func (dv *DegreesVector) siftLeft(nodeIndex int) {
	cur := nodeIndex
	for cur-1 >= dv.begin && dv.nodes[cur].less(dv.nodes[cur-1]) {
		dv.swapNodes(cur, cur-1)
		cur--
	}
}

// siftRight is the mirror of siftLeft.
func (dv *DegreesVector) siftRight(nodeIndex int) {
	cur := nodeIndex
	for cur+1 <= dv.end && dv.nodes[cur].more(dv.nodes[cur+1]) {
		dv.swapNodes(cur, cur+1)
		cur++
	}
}

func (dv *DegreesVector) swapNodes(i, j int) {
	dv.position[dv.nodes[i].vertexNum], dv.position[dv.nodes[j].vertexNum] =
		dv.position[dv.nodes[j].vertexNum], dv.position[dv.nodes[i].vertexNum]
	dv.nodes[i], dv.nodes[j] = dv.nodes[j], dv.nodes[i]
}

// Copy returns a deep copy sharing no backing storage.
func (dv *DegreesVector) Copy() *DegreesVector {
	nodes := make([]degreeNode, len(dv.nodes))
	copy(nodes, dv.nodes)
	position := make([]int, len(dv.position))
	copy(position, dv.position)
	return &DegreesVector{begin: dv.begin, end: dv.end, nodes: nodes, position: position}
}

// IsEqual compares two vectors field-for-field, including hidden slots
// outside the active window (mirroring the original's isEqual, which
// compares the whole backing vector, not just the window).
func (dv *DegreesVector) IsEqual(other *DegreesVector) bool {
	if dv.begin != other.begin || dv.end != other.end {
		return false
	}
	if len(dv.position) != len(other.position) {
		return false
	}
	for i := range dv.position {
		if dv.position[i] != other.position[i] {
			return false
		}
	}
	if len(dv.nodes) != len(other.nodes) {
		return false
	}
	for i := range dv.nodes {
		if !dv.nodes[i].equal(other.nodes[i]) {
			return false
		}
	}
	return true
}

// String renders the sorted nodes and the vertex->index mapping.
func (dv *DegreesVector) String() string {
	s := "DegreesVector:\n"
	for _, n := range dv.nodes {
		s += fmt.Sprintf("%d %d\n", n.degree, n.vertexNum)
	}
	s += "MappingVector:\n"
	for v, idx := range dv.position {
		s += fmt.Sprintf("%d %d\n", v, idx)
	}
	s += "-------------\n"
	return s
}
