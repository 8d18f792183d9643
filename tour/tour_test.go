package tour_test

import (
	"math"
	"testing"

	"github.com/arvo-robotics/wayplan/costmatrix"
	"github.com/arvo-robotics/wayplan/lattice"
	"github.com/arvo-robotics/wayplan/occgrid"
	"github.com/arvo-robotics/wayplan/progress"
	"github.com/arvo-robotics/wayplan/tour"
	"github.com/stretchr/testify/require"
)

func openLattice(t *testing.T, w, h, nHeadings int) *lattice.Graph {
	t.Helper()
	data := make([]int, w*h)
	grid, err := occgrid.Load(data, w, h, 1, 0, 0)
	require.NoError(t, err)

	cfg := lattice.DefaultConfig()
	cfg.NHeadings = nHeadings
	cfg.NodeSpacing = 2

	g, err := lattice.Build(grid, cfg, progress.NoOp)
	require.NoError(t, err)
	return g
}

// nearestOnLattice finds the lattice vertex whose (x,y) is closest to the
// requested point, returning its exact State so it is guaranteed to be a
// vertex of g.
func nearestOnLattice(g *lattice.Graph, x, y float64) lattice.State {
	best := g.State(0)
	bestD := math.MaxFloat64
	for v := 0; v < g.NumVertices(); v++ {
		s := g.State(int32(v))
		d := math.Hypot(s.X-x, s.Y-y)
		if d < bestD {
			bestD, best = d, s
		}
	}
	return best
}

// TestSolve_DisjunctionFeasibility is invariant 7: a feasible tour chooses
// exactly one heading per non-start waypoint and exactly the fixed heading
// for the start.
func TestSolve_DisjunctionFeasibility(t *testing.T) {
	g := openLattice(t, 30, 30, 8)
	headings := lattice.Headings(8)

	w0 := nearestOnLattice(g, 4, 4)
	w1 := nearestOnLattice(g, 16, 16)
	waypoints := []lattice.Point{{X: w0.X, Y: w0.Y}, {X: w1.X, Y: w1.Y}}

	start := 0
	m, err := costmatrix.Compute(g, waypoints, headings, &start, costmatrix.DefaultOptions())
	require.NoError(t, err)

	tr, err := tour.Solve(m, tour.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, start, m.States[tr.StateIndices[0]].Heading)

	seen := make(map[int]bool)
	for _, k := range tr.StateIndices {
		w := m.States[k].Waypoint
		require.False(t, seen[w], "waypoint %d visited twice", w)
		seen[w] = true
	}
	require.Len(t, seen, len(waypoints))
}

// TestSolve_NeverRevisitsDepot checks that, although the open-tour
// transform makes every arc into a depot-waypoint state free, Solve never
// appends a second depot visit after the depot's own starting state.
func TestSolve_NeverRevisitsDepot(t *testing.T) {
	g := openLattice(t, 30, 30, 8)
	headings := lattice.Headings(8)

	w0 := nearestOnLattice(g, 4, 4)
	w1 := nearestOnLattice(g, 16, 16)
	waypoints := []lattice.Point{{X: w0.X, Y: w0.Y}, {X: w1.X, Y: w1.Y}}

	start := 0
	m, err := costmatrix.Compute(g, waypoints, headings, &start, costmatrix.DefaultOptions())
	require.NoError(t, err)

	tr, err := tour.Solve(m, tour.DefaultOptions())
	require.NoError(t, err)

	for _, k := range tr.StateIndices[1:] {
		require.NotEqual(t, 0, m.States[k].Waypoint, "solved tour must never revisit the depot waypoint")
	}
}

// TestSolve_FixedStartHeading is Scenario C.
func TestSolve_FixedStartHeading(t *testing.T) {
	g := openLattice(t, 24, 24, 8)
	headings := lattice.Headings(8)

	w0 := nearestOnLattice(g, 4, 4)
	w1 := nearestOnLattice(g, 16, 16)
	waypoints := []lattice.Point{{X: w0.X, Y: w0.Y}, {X: w1.X, Y: w1.Y}}

	start := lattice.NearestHeadingIndex(headings, 0.0)
	m, err := costmatrix.Compute(g, waypoints, headings, &start, costmatrix.DefaultOptions())
	require.NoError(t, err)

	tr, err := tour.Solve(m, tour.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, tr.WaypointOrder(m))
	require.Greater(t, tr.RawCost, int64(0))

	path, err := tour.Reconstruct(g, m, tr)
	require.NoError(t, err)
	require.NotEmpty(t, path.Points)
	require.InDelta(t, w0.X, path.Points[0].X, 1e-9)
	require.InDelta(t, w0.Y, path.Points[0].Y, 1e-9)
	last := path.Points[len(path.Points)-1]
	require.InDelta(t, w1.X, last.X, 1e-9)
	require.InDelta(t, w1.Y, last.Y, 1e-9)
}

// TestSolve_FourCornerTour is Scenario D: a permutation visiting each
// non-start waypoint exactly once, with distance within 5% of the
// brute-force optimum over waypoint order (heading choice is already
// optimized per-arc by the cost matrix construction).
func TestSolve_FourCornerTour(t *testing.T) {
	g := openLattice(t, 30, 30, 8)
	headings := lattice.Headings(8)

	corners := [][2]float64{{4, 4}, {4, 26}, {26, 26}, {26, 4}}
	waypoints := make([]lattice.Point, len(corners))
	for i, c := range corners {
		s := nearestOnLattice(g, c[0], c[1])
		waypoints[i] = lattice.Point{X: s.X, Y: s.Y}
	}

	start := lattice.NearestHeadingIndex(headings, math.Pi/2)
	m, err := costmatrix.Compute(g, waypoints, headings, &start, costmatrix.DefaultOptions())
	require.NoError(t, err)

	tr, err := tour.Solve(m, tour.DefaultOptions())
	require.NoError(t, err)

	order := tr.WaypointOrder(m)
	require.Equal(t, 0, order[0])
	seen := make(map[int]bool)
	for _, w := range order {
		seen[w] = true
	}
	require.Len(t, seen, len(waypoints))

	bruteCost := bruteForceOptimum(m)
	require.LessOrEqual(t, float64(tr.RawCost), 1.05*bruteCost)
}

// bruteForceOptimum enumerates every permutation of non-depot waypoints and,
// for each, picks the cheapest arc between consecutive waypoints' states
// (the same per-arc freedom the greedy heuristic has), returning the
// minimum total cost across all permutations.
func bruteForceOptimum(m *costmatrix.Matrix) float64 {
	numWaypoints := 0
	for _, s := range m.States {
		if s.Waypoint+1 > numWaypoints {
			numWaypoints = s.Waypoint + 1
		}
	}

	rest := make([]int, 0, numWaypoints-1)
	for w := 1; w < numWaypoints; w++ {
		rest = append(rest, w)
	}

	best := math.Inf(1)
	permute(rest, func(order []int) {
		cost := cheapestArcChain(m, order)
		if cost < best {
			best = cost
		}
	})

	return best
}

// cheapestArcChain sums the minimum-cost arc from the depot through each
// waypoint in order, allowing any heading at each step.
func cheapestArcChain(m *costmatrix.Matrix, order []int) float64 {
	statesByWaypoint := make(map[int][]int)
	for k, s := range m.States {
		statesByWaypoint[s.Waypoint] = append(statesByWaypoint[s.Waypoint], k)
	}

	current := []int{0} // depot's single state
	var total float64
	for _, w := range order {
		candidates := statesByWaypoint[w]
		bestCost := math.Inf(1)
		var bestTo int
		for _, from := range current {
			for _, to := range candidates {
				c := float64(m.At(from, to))
				if c < bestCost {
					bestCost, bestTo = c, to
				}
			}
		}
		total += bestCost
		current = []int{bestTo}
	}

	return total
}

// permute calls fn once per permutation of items (Heap's algorithm).
func permute(items []int, fn func([]int)) {
	n := len(items)
	items = append([]int(nil), items...)
	var generate func(k int)
	generate = func(k int) {
		if k == 1 {
			fn(items)
			return
		}
		for i := 0; i < k; i++ {
			generate(k - 1)
			if k%2 == 0 {
				items[i], items[k-1] = items[k-1], items[i]
			} else {
				items[0], items[k-1] = items[k-1], items[0]
			}
		}
	}
	generate(n)
}
