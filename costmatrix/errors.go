package costmatrix

import "errors"

var (
	// ErrStartStateMissing is returned when an enumerated origin
	// (waypoint, heading) state does not resolve to a vertex of the
	// lattice graph.
	ErrStartStateMissing = errors.New("costmatrix: origin state is not a vertex of the graph")
)
