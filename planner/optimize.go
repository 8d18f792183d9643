package planner

import (
	"errors"

	"github.com/arvo-robotics/wayplan/costmatrix"
	"github.com/arvo-robotics/wayplan/lattice"
	"github.com/arvo-robotics/wayplan/occgrid"
	"github.com/arvo-robotics/wayplan/progress"
	"github.com/arvo-robotics/wayplan/tour"
)

// Optimize solves an ordered tour over req's waypoints using the lattice
// graph g (built once by Precompute) and reconstructs its traversable path,
// per spec.md §4.3-§4.4.
//
// A NoSolution failure (tour.Solve's greedy walk cannot reach an unvisited
// waypoint) is
// reported through TourResult.Error rather than a Go error return, matching
// the reference implementation's response shape. Every other failure
// (StartStateMissing, NoPath) is returned as a Go error.
func Optimize(grid *occgrid.Grid, g *lattice.Graph, req OptimizeRequest) (TourResult, error) {
	return optimizeWith(grid, g, req, progress.NoOp, DefaultTunables())
}

// OptimizeWithOptions is Optimize plus explicit progress reporting and
// tunable overrides, for callers that need either.
func OptimizeWithOptions(grid *occgrid.Grid, g *lattice.Graph, req OptimizeRequest, sink ProgressSink, tunables Tunables) (TourResult, error) {
	return optimizeWith(grid, g, req, sink, tunables)
}

func optimizeWith(grid *occgrid.Grid, g *lattice.Graph, req OptimizeRequest, sink ProgressSink, tunables Tunables) (TourResult, error) {
	safe := progress.Safe(sink)

	headings := lattice.Headings(g.Config.NHeadings)
	startIdx := lattice.NearestHeadingIndex(headings, req.StartHeading)

	safe.Update("optimization", 25, "Building cost matrix", nil)
	m, err := costmatrix.Compute(g, req.Waypoints, headings, &startIdx, tunables.CostMatrix)
	if err != nil {
		safe.Update("optimization", 25, "cost matrix build failed", err)
		return TourResult{}, err
	}

	safe.Update("optimization", 60, "Solving tour", nil)
	t, err := tour.Solve(m, tunables.Tour)
	if err != nil {
		if errors.Is(err, tour.ErrNoSolution) {
			safe.Update("optimization", 60, "no solution found", err)
			return TourResult{Error: "No solution found"}, nil
		}
		return TourResult{}, err
	}

	safe.Update("optimization", 85, "Reconstructing path", nil)
	path, err := tour.Reconstruct(g, m, t)
	if err != nil {
		safe.Update("optimization", 85, "path reconstruction failed", err)
		return TourResult{}, err
	}
	safe.Update("optimization", 100, "Tour ready", nil)

	visits := tour.Visits(g, m, t)
	solutionArray := make([]StateView, len(visits))
	for i, v := range visits {
		solutionArray[i] = StateView{X: v.X, Y: v.Y, Theta: v.Theta}
	}

	pathPoints := make([]Point2D, len(path.Points))
	for i, p := range path.Points {
		pathPoints[i] = Point2D{X: p.X, Y: p.Y}
	}

	return TourResult{
		Distance:      path.Cost * grid.Resolution,
		WaypointOrder: t.WaypointOrder(m),
		SolutionArray: solutionArray,
		PathPoints:    pathPoints,
	}, nil
}
