// Package atr computes the exact All-Terminal Reliability of an
// undirected graph with per-edge survival probabilities: the probability
// that every vertex remains mutually reachable given that each edge
// independently survives with its own probability.
//
// CalculateATR short-circuits trees and simple cycles, falls back to a
// closed-form polynomial for graphs of five vertices or fewer, and
// otherwise reduces the graph (peeling hanging vertices, folding degree-2
// chains) before recursing: pick an edge, recurse once with it removed and
// once with it contracted, weighted by its survival probability — except
// when the edge is a bridge, in which case the two components it splits
// the graph into are independent and the result is just their product.
//
// Every recursive step mutates a single shared randomgraph.Graph in place
// and rolls it back before returning, rather than copying the graph on
// each branch — the structural mirror of the reversible-mutation design in
// randomgraph.
package atr
