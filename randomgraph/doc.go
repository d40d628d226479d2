// Package randomgraph orchestrates probmatrix and degseq into a graph
// that supports four reversible mutations plus the subgraph-splitting
// operations the ATR engine needs at a bridge:
//
//   - RemoveHangingVertexWithLowestIndex: peel the globally
//     lowest-index degree-1 vertex.
//   - RemoveRandomEdge: deterministically pick the lowest-degree vertex's
//     highest-numbered neighbor and remove that edge.
//   - PullEdge: contract an edge, merging its dropped endpoint's other
//     edges onto the kept endpoint.
//   - RemoveTrivialChain: fold a short (<=3 vertex) degree-2 path into a
//     single equivalent edge.
//
// Every mutation returns a single *RollbackHandle tagged with which kind
// of mutation produced it, rather than a handle-type hierarchy — spec.md's
// resolution of the "one handle type vs. many" design question. A handle
// is single-use: Rollback panics if called twice.
//
// ReduceChain additionally exposes a one-way, non-reversible reduction for
// folding a long (non-trivial) chain into a smaller subgraph; it is only
// ever used in the engine's pre-recursion reduction pass, which never
// rolls back.
package randomgraph
