package tgf

import "errors"

// ErrEmptyInput is returned when the reader produces no lines at all.
var ErrEmptyInput = errors.New("tgf: empty input, expected a vertex count")

// ErrMalformedLine is returned when a line cannot be parsed as its
// expected "u v p" or vertex-count shape.
var ErrMalformedLine = errors.New("tgf: malformed line")

// ErrVertexOutOfRange is returned when an edge line names a vertex
// outside [1, N].
var ErrVertexOutOfRange = errors.New("tgf: vertex index out of range")
