package degseq

import "errors"

// ErrNoHangingVertex is returned when a caller asks for the lowest-index
// hanging vertex but the active window's minimum-degree vertex has degree
// other than 1.
var ErrNoHangingVertex = errors.New("degseq: no hanging vertex at window start")
