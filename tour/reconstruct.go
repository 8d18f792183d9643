package tour

import (
	"github.com/arvo-robotics/wayplan/costmatrix"
	"github.com/arvo-robotics/wayplan/lattice"
)

// Reconstruct recovers the full lattice path for tour, rerunning
// single-source Dijkstra (via costmatrix.ShortestPath) between every
// consecutive pair of chosen states and concatenating the segments into one
// polyline, per spec.md §4.4's path-reconstruction step.
//
// Returns ErrNoPath if any segment has no path, which the specification
// treats as fatal to the request (the cost matrix having reported a finite
// cost for that arc implies this should not happen; surfacing it instead of
// panicking lets the caller report a clear error).
func Reconstruct(g *lattice.Graph, m *costmatrix.Matrix, t Tour) (Path, error) {
	var path Path

	for i := 1; i < len(t.StateIndices); i++ {
		from := m.Vertex[t.StateIndices[i-1]]
		to := m.Vertex[t.StateIndices[i]]

		nodes, cost, ok := costmatrix.ShortestPath(g, from, to)
		if !ok {
			return Path{}, ErrNoPath
		}

		if i > 1 {
			nodes = nodes[1:] // drop the duplicate shared endpoint
		}
		path.NodeIDs = append(path.NodeIDs, nodes...)
		path.Cost += cost
	}

	path.Points = make([]Point2D, len(path.NodeIDs))
	for i, v := range path.NodeIDs {
		s := g.State(v)
		path.Points[i] = Point2D{X: s.X, Y: s.Y}
	}

	return path, nil
}

// Visits converts t's state indices into (x, y, theta) visit records, the
// specification's solution_array.
func Visits(g *lattice.Graph, m *costmatrix.Matrix, t Tour) []Visit {
	visits := make([]Visit, len(t.StateIndices))
	for i, k := range t.StateIndices {
		s := g.State(m.Vertex[k])
		visits[i] = Visit{X: s.X, Y: s.Y, Theta: s.Heading}
	}

	return visits
}
