package randomgraph

import "errors"

// ErrNoHangingVertex is returned by RemoveHangingVertexWithLowestIndex when
// the graph currently has no degree-1 vertex.
var ErrNoHangingVertex = errors.New("randomgraph: no hanging vertex present")
