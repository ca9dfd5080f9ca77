package app

import "errors"

// Driver error taxonomy. Each maps to exit code 1 in cmd/mazesolver.
var (
	// ErrUsage indicates the wrong number of positional arguments.
	ErrUsage = errors.New("usage")
	// ErrFileOpen indicates the input could not be read or an output
	// could not be written.
	ErrFileOpen = errors.New("cannot open file")
	// ErrUnknownMethod indicates a method other than "dfs" or "bfs".
	ErrUnknownMethod = errors.New("unknown method")
	// ErrInvalidPath indicates a strategy returned a route that is not a
	// well-formed walk between the markers.
	ErrInvalidPath = errors.New("app: solver produced an invalid path")
)
