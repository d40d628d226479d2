package atr

import "errors"

// ErrHangingVertexAfterReduction signals a reduction-pass invariant break:
// a degree-1 vertex is still present after the pass has peeled the hanging
// vertices a chain fold left behind (folding a cycle chain lowers its cut
// vertex's degree by two, which can leave it hanging).
var ErrHangingVertexAfterReduction = errors.New("atr: hanging vertex appeared after chain reduction")
