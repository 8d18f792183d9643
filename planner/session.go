package planner

import (
	"sync"

	"github.com/arvo-robotics/wayplan/lattice"
	"github.com/arvo-robotics/wayplan/occgrid"
)

// Session is an optional convenience wrapper that stores one grid/graph
// pair behind a sync.RWMutex, in the same spirit as core.Graph's internal
// sync.RWMutex use. The lock guards only the stored pair: Session's
// Precompute and Optimize run the kernel functions outside it, so those
// calls are not serialized against each other. Mutual exclusion across
// {precompute, optimize, navigation} is the embedding system's
// responsibility.
type Session struct {
	mu    sync.RWMutex
	grid  *occgrid.Grid
	graph *lattice.Graph
}

// Precompute runs Precompute and stores its result on s, replacing any
// previously stored grid/graph.
func (s *Session) Precompute(req PrecomputeRequest, sink ProgressSink) error {
	grid, g, err := Precompute(req, sink)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.grid, s.graph = grid, g
	s.mu.Unlock()

	return nil
}

// Optimize runs Optimize against s's currently stored grid/graph. Multiple
// goroutines may call Optimize concurrently; it only takes a read lock.
func (s *Session) Optimize(req OptimizeRequest) (TourResult, error) {
	s.mu.RLock()
	grid, g := s.grid, s.graph
	s.mu.RUnlock()

	if grid == nil || g == nil {
		return TourResult{}, ErrNotPrecomputed
	}

	return Optimize(grid, g, req)
}
