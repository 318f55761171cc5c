package bulldag

import "errors"

// Graph-level failure taxonomy. Errors returned by graph operations wrap
// one of these sentinels, so callers can classify outcomes with errors.Is.
var (
	// ErrWouldCycle is returned when a submitted edge would close a
	// directed cycle, or when a non-empty graph has lost its root/leaf
	// structure and any insertion is conservatively rejected.
	ErrWouldCycle = errors.New("edge would close a cycle")

	// ErrNonExistentSource reports a lookup of an unknown source key.
	ErrNonExistentSource = errors.New("source vertex does not exist")

	// ErrNonExistentReference reports a lookup of an unknown reference key.
	ErrNonExistentReference = errors.New("reference vertex does not exist")

	// ErrNonExistentVertex reports a lookup of an unknown vertex key.
	ErrNonExistentVertex = errors.New("vertex does not exist")

	// ErrNoEdges reports an operation that needs at least one committed
	// vertex or edge, run against an empty graph.
	ErrNoEdges = errors.New("graph has no edges")
)
