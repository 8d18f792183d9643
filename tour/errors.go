package tour

import "errors"

var (
	// ErrNoSolution is returned when Solve's greedy walk reaches a state
	// from which no state of any unvisited waypoint is reachable. The walk
	// does not backtrack, so it does not try other orderings first.
	ErrNoSolution = errors.New("tour: no feasible tour ordering exists")

	// ErrNoPath is returned when path reconstruction cannot recover a
	// lattice path between two consecutive tour states, fatal per the
	// specification (the cost matrix entry that selected this arc implied
	// reachability, so this indicates a graph/matrix inconsistency).
	ErrNoPath = errors.New("tour: no lattice path between consecutive tour states")
)
