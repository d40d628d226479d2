// Package degseq maintains a degree-sorted index over a graph's vertices.
//
// A DegreesVector keeps every vertex ordered ascending by (degree, vertex
// number) inside an active window [begin, end], plus a mapping from vertex
// number to its current slot. Every degree change (hanging-vertex removal,
// edge removal/restoration) is followed by a sift that walks the changed
// node left or right until the ordering invariant holds again, swapping one
// adjacent pair at a time and updating the mapping as it goes.
//
// The window shrinks from the left when a hanging vertex is peeled off (it
// is logically retired, not deleted) and grows back on restore. This lines
// up with probmatrix's own logical shrink/grow so randomgraph can keep both
// structures in lockstep under rollback.
package degseq
