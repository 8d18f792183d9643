package tour

import "github.com/arvo-robotics/wayplan/costmatrix"

// Options holds the tour solver's tunables. The specification describes the
// disjunction structure in terms of CP-SAT-style penalties (soft 1e8,
// hard-requirement 1e9); this implementation's greedy insertion treats any
// candidate at or above HardDisjunctionPenalty as infeasible rather than as a
// penalized-but-allowed choice, which is behaviorally equivalent for a
// single-vehicle, all-waypoints-mandatory instance (the hard disjunction
// always dominates).
type Options struct {
	// SoftDisjunctionPenalty documents the specification's soft-disjunction
	// value (1e8). Unused by the greedy heuristic directly; retained so a
	// future metaheuristic post-pass has the same constant available.
	SoftDisjunctionPenalty int64

	// HardDisjunctionPenalty is the "at least one" hard-requirement value
	// (1e9): Solve treats any candidate arc costing this much or more as
	// infeasible. It equals costmatrix.Options.Unreachable under default
	// settings.
	HardDisjunctionPenalty int64
}

// DefaultOptions returns the fixed ABI defaults: SoftDisjunctionPenalty=1e8,
// HardDisjunctionPenalty=1e9.
func DefaultOptions() Options {
	return Options{
		SoftDisjunctionPenalty: 100_000_000,
		HardDisjunctionPenalty: 1_000_000_000,
	}
}

// Tour is the result of Solve: the enumerated cost-matrix state indices in
// visit order, and the summed original (pre-open-tour-transform) cost of
// traversing them.
type Tour struct {
	// StateIndices holds, in visit order, the costmatrix.Matrix row/column
	// index of each chosen (waypoint, heading) state. StateIndices[0] is
	// always the depot's state.
	StateIndices []int

	// RawCost is the sum of m.At(prev, next) over consecutive StateIndices
	// pairs, using the original (untransformed) matrix.
	RawCost int64
}

// WaypointOrder returns the waypoint index visited at each step, derived
// from m.States[StateIndices[i]].Waypoint.
func (t Tour) WaypointOrder(m *costmatrix.Matrix) []int {
	order := make([]int, len(t.StateIndices))
	for i, k := range t.StateIndices {
		order[i] = m.States[k].Waypoint
	}

	return order
}

// Visit is one chosen (position, heading) state in the solved tour.
type Visit struct {
	X, Y, Theta float64
}

// Point2D is one (x, y) sample of a reconstructed path polyline.
type Point2D struct {
	X, Y float64
}

// Path is the result of Reconstruct: the concatenated lattice path between
// every consecutive pair of a Tour's states.
type Path struct {
	// NodeIDs is the full lattice vertex sequence, segments concatenated
	// without duplicating shared endpoints.
	NodeIDs []int32

	// Points is NodeIDs resolved to (x, y) world coordinates.
	Points []Point2D

	// Cost is the sum of edge costs across every segment (lattice units,
	// not yet scaled to meters; multiply by the grid's Resolution for a
	// meter-scale total).
	Cost float64
}
