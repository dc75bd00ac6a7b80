package loader

import "errors"

var (
	// ErrGraphNil indicates a nil *graph.Graph was passed to New.
	ErrGraphNil = errors.New("loader: graph is nil")
)
