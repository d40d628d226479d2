// Package probmatrix provides a dense, capacity-fixed adjacency matrix of
// edge-survival probabilities for undirected graphs.
//
// Unlike a general-purpose linear-algebra matrix, probmatrix.Matrix has two
// dimensions: Capacity, fixed forever at construction (it defines the row
// stride of the flat backing slice), and a logical Dimension that can
// shrink and grow within that capacity. Shrinking hides the last row and
// column without clearing them; growing only restores previously-hidden
// rows. This makes vertex removal/restoration O(1) and makes it safe for
// callers (randomgraph's reversible mutations) to treat shrink+grow as a
// cheap, exact rollback primitive, provided they either zero the hidden
// cells or arrange for their stale contents to be semantically correct
// again on restore.
//
// The matrix is always square, symmetric for undirected use, and carries a
// zero diagonal. A zero entry means "no edge"; any other value in (0,1] is
// a survival probability.
//
// Bounds violations and dimension under/overflow are programmer errors:
// every such path panics rather than returning an error, matching the
// "panics are reserved for programmer errors" policy the engine follows
// throughout (see randomgraph and atr).
package probmatrix
