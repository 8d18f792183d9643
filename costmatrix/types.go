package costmatrix

// Options holds the cost matrix builder's tunables, mirroring the
// specification's `compute_cost_matrix` default arguments.
type Options struct {
	// Scale multiplies a floating-point lattice distance before rounding
	// it to the nearest int64 matrix entry. Default 1000.
	Scale int64

	// Unreachable is the sentinel entry written for a (reachable-origin,
	// unreachable-target) pair. Default 1e9.
	Unreachable int64
}

// DefaultOptions returns the fixed ABI defaults: Scale=1000, Unreachable=1e9.
func DefaultOptions() Options {
	return Options{
		Scale:       1000,
		Unreachable: 1_000_000_000,
	}
}

// StateRef identifies one enumerated (waypoint, heading) state.
type StateRef struct {
	Waypoint int
	Heading  int
}

// Matrix is the dense M x M scaled-cost table produced by Compute, plus the
// state enumeration backing its rows and columns.
type Matrix struct {
	// States is S from the specification: States[k] is the (waypoint,
	// heading) pair occupying row/column k.
	States []StateRef

	// Index maps a StateRef back to its position in States.
	Index map[StateRef]int

	// Vertex holds the lattice vertex id each enumerated state resolved
	// to, aligned with States (Vertex[k] is States[k]'s vertex).
	Vertex []int32

	// Costs is the M x M row-major scaled-cost table: Costs[k*M+j] is the
	// cost from States[k] to States[j].
	Costs []int64

	// N is the number of rows/columns (M in the specification).
	N int

	opts Options
}

// At returns the scaled cost from row k to column j.
func (m *Matrix) At(k, j int) int64 {
	return m.Costs[k*m.N+j]
}

// Options returns the Options the matrix was built with.
func (m *Matrix) Options() Options {
	return m.opts
}
