package planner

import (
	"github.com/arvo-robotics/wayplan/costmatrix"
	"github.com/arvo-robotics/wayplan/lattice"
	"github.com/arvo-robotics/wayplan/tour"
)

// PrecomputeRequest is the input to Precompute: a flat row-major occupancy
// array plus the grid geometry needed to interpret it.
type PrecomputeRequest struct {
	Width, Height    int
	Resolution       float64
	OriginX, OriginY float64
	Map              []int
}

// OptimizeRequest is the input to Optimize: a waypoint list (element 0 is
// the depot) and the vehicle's fixed starting heading.
type OptimizeRequest struct {
	Resolution   float64
	StartHeading float64
	Waypoints    []lattice.Point
}

// ProgressSink receives progress updates from Precompute and Optimize.
// Implementations must be non-blocking; a panicking Update is recovered and
// logged rather than propagated into kernel code (see package progress).
type ProgressSink interface {
	Update(process string, percent float64, message string, err error)
}

// StateView is one (position, heading) visit in a solved tour, matching
// spec.md §4.4's solution_array entries.
type StateView struct {
	X, Y, Theta float64
}

// Point2D is one (x, y) sample of a reconstructed path polyline.
type Point2D struct {
	X, Y float64
}

// TourResult is Optimize's response shape, matching spec.md §4.4 exactly:
// a NoSolution failure is reported through Error rather than a Go error
// return, mirroring the reference implementation's {"error": "..."} shape.
type TourResult struct {
	Distance      float64
	WaypointOrder []int
	SolutionArray []StateView
	PathPoints    []Point2D
	Error         string
}

// Tunables collects every ABI-stable tunable parameter across the lattice,
// cost matrix, and tour stages in one struct, for callers who want the full
// fixed-default set without reaching into three packages.
type Tunables struct {
	Lattice    lattice.Config
	CostMatrix costmatrix.Options
	Tour       tour.Options
}

// DefaultTunables returns the fixed ABI defaults for every stage.
func DefaultTunables() Tunables {
	return Tunables{
		Lattice:    lattice.DefaultConfig(),
		CostMatrix: costmatrix.DefaultOptions(),
		Tour:       tour.DefaultOptions(),
	}
}
