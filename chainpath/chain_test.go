package chainpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOpenChain(t *testing.T) {
	// chain 0-1-2-3, edges 0-1,1-2,2-3 all p=0.5
	c := New([]int{0, 1, 2, 3}, 6, 0.125, 1)
	assert.False(t, c.IsCycle())
	assert.Equal(t, 0, c.Head())
	assert.Equal(t, 3, c.Tail())
	assert.Equal(t, 4, c.Size())
	assert.InDelta(t, 0.125*(6-3+1), c.Factor(), 1e-12)
	assert.InDelta(t, 1.0/(6-3+1), c.ReducedValue(), 1e-12)
	toRemove := c.VerticesToRemove()
	assert.Len(t, toRemove, 2)
	assert.True(t, toRemove[1])
	assert.True(t, toRemove[2])
	assert.False(t, toRemove[0])
	assert.False(t, toRemove[3])
}

func TestNewCycleChain(t *testing.T) {
	// cycle 0-1-2-0 (walk returns to start): vertices [0,1,2,0]
	c := New([]int{0, 1, 2, 0}, 6, 0.125, 1)
	assert.True(t, c.IsCycle())
	assert.Equal(t, 3, c.Size())
	assert.Zero(t, c.ReducedValue())
}

func TestIsTrivial(t *testing.T) {
	short := New([]int{0, 1, 2}, 4, 0.25, 1)
	assert.True(t, short.IsTrivial())

	long := New([]int{0, 1, 2, 3, 4}, 8, 0.0625, 2)
	assert.False(t, long.IsTrivial())
}

func TestIsTrivialCycleNeedsTwoInteriorVertices(t *testing.T) {
	// A minimal cycle (triangle 0-1-2 hanging off cut vertex 0) has two
	// interior vertices (1 and 2), so it can't take the single-vertex
	// trivial fast path even though its Size() reads as small.
	triangle := New([]int{0, 1, 2, 0}, 6, 0.125, 1)
	assert.Len(t, triangle.VerticesToRemove(), 2)
	assert.False(t, triangle.IsTrivial())
}

func TestNewEmptyPanics(t *testing.T) {
	assert.Panics(t, func() { New(nil, 0, 0, 0) })
}

func TestMiddleVertex(t *testing.T) {
	c := New([]int{0, 1, 2, 3}, 6, 0.125, 2)
	assert.Equal(t, 2, c.MiddleVertex())
}

func TestString(t *testing.T) {
	c := New([]int{0, 1, 2, 3}, 6, 0.125, 1)
	assert.Contains(t, c.String(), "Chain")
}
