// Package tgf reads graphs in the Trivial Graph Format used by the
// engine's test fixtures and the atr CLI: a first line giving the vertex
// count, followed by whitespace-separated "u v p" triples (1-indexed
// vertex numbers, p an edge survival probability) that populate a
// probmatrix.Matrix symmetrically.
package tgf
