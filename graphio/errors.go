package graphio

import "errors"

var (
	// ErrNilGraph is returned when a nil graph is passed to a writer.
	ErrNilGraph = errors.New("graphio: graph is nil")

	// ErrMalformed is returned when an edge-list file violates the format:
	// bad header, bad edge line, vertex out of range, or wrong edge count.
	ErrMalformed = errors.New("graphio: malformed edge list")

	// ErrBadFileName is returned when a name does not follow random_<size>_<density>.
	ErrBadFileName = errors.New("graphio: file name does not match random_<size>_<density>")
)
