package planner

import (
	"github.com/arvo-robotics/wayplan/lattice"
	"github.com/arvo-robotics/wayplan/occgrid"
	"github.com/arvo-robotics/wayplan/progress"
)

// Precompute loads req's occupancy map and builds the state-lattice graph
// over it once, per spec.md §4.1-§4.2. The returned Grid and Graph are both
// immutable and may be shared across any number of subsequent Optimize
// calls, including concurrently.
//
// Reports progress at 25% after the grid loads, 50% once lattice primitive
// templates are generated (from within lattice.Build), and 100% on return.
func Precompute(req PrecomputeRequest, sink ProgressSink) (*occgrid.Grid, *lattice.Graph, error) {
	safe := progress.Safe(sink)

	grid, err := occgrid.Load(req.Map, req.Width, req.Height, req.Resolution, req.OriginX, req.OriginY)
	if err != nil {
		safe.Update("precomputation", 0, "map load failed", err)
		return nil, nil, err
	}
	safe.Update("precomputation", 25, "Map loaded", nil)

	cfg := lattice.DefaultConfig()
	g, err := lattice.Build(grid, cfg, safe)
	if err != nil {
		safe.Update("precomputation", 50, "lattice build failed", err)
		return nil, nil, err
	}
	safe.Update("precomputation", 100, "Lattice ready", nil)

	return grid, g, nil
}
