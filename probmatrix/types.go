package probmatrix

import "fmt"

// Probability is an edge-survival probability in [0,1]; 0 denotes absence.
type Probability = float64

// NotFound is the sentinel vertex index returned by neighbor scans when no
// matching vertex exists.
const NotFound = -1

// Edge is an unordered pair of distinct vertices, canonicalized so the
// smaller index is always first. Constructing one with from == to is a
// programmer error and panics, mirroring the original C++ Edge constructor.
type Edge struct {
	lo, hi int
}

// NewEdge canonicalizes (u, v) into an Edge with Min() <= Max().
// Panics if u == v.
func NewEdge(u, v int) Edge {
	if u == v {
		panic(fmt.Sprintf("probmatrix: invalid edge (from == to == %d)", u))
	}
	if u > v {
		u, v = v, u
	}
	return Edge{lo: u, hi: v}
}

// Min returns the smaller endpoint.
func (e Edge) Min() int { return e.lo }

// Max returns the larger endpoint.
func (e Edge) Max() int { return e.hi }

// EdgeNode is one entry of an outgoing-edge snapshot (see
// GetOutgoingEdges): the neighbor vertex and the probability on the edge
// to it.
type EdgeNode struct {
	To int
	P  Probability
}
