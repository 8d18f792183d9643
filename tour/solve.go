package tour

import "github.com/arvo-robotics/wayplan/costmatrix"

// Solve implements spec.md §4.4's solve_tour: the open-tour transform, the
// disjunction-per-waypoint constraint (each non-depot waypoint contributes
// exactly one of its states), and a deterministic greedy cheapest-arc
// insertion first-solution strategy.
//
// The depot (waypoint 0) must enumerate to exactly one state in m — the
// caller arranges this by passing a non-nil startHeadingIdx to
// costmatrix.Compute when building m.
func Solve(m *costmatrix.Matrix, opts Options) (Tour, error) {
	n := m.N
	transformed := openTourTransform(m)

	numWaypoints := 0
	for _, s := range m.States {
		if s.Waypoint+1 > numWaypoints {
			numWaypoints = s.Waypoint + 1
		}
	}

	waypointDone := make([]bool, numWaypoints)
	waypointDone[0] = true

	order := []int{0} // depot's state is always row/col 0 under canonical enumeration
	current := 0
	var rawCost int64

	for remaining := numWaypoints - 1; remaining > 0; remaining-- {
		bestState := -1
		var bestCost int64
		for j := 0; j < n; j++ {
			w := m.States[j].Waypoint
			if waypointDone[w] {
				continue
			}
			c := transformed[current*n+j]
			if bestState == -1 || c < bestCost {
				bestState, bestCost = j, c
			}
		}

		if bestState == -1 || bestCost >= opts.HardDisjunctionPenalty {
			return Tour{}, ErrNoSolution
		}

		order = append(order, bestState)
		waypointDone[m.States[bestState].Waypoint] = true
		rawCost += m.At(current, bestState)
		current = bestState
	}

	return Tour{StateIndices: order, RawCost: rawCost}, nil
}

// openTourTransform copies m's cost table and zeroes every column whose
// state belongs to waypoint 0, per spec.md §4.4: returning to the depot
// becomes free, so the greedy search is never discouraged from ending the
// route rather than looping back.
func openTourTransform(m *costmatrix.Matrix) []int64 {
	n := m.N
	out := make([]int64, len(m.Costs))
	copy(out, m.Costs)

	for j := 0; j < n; j++ {
		if m.States[j].Waypoint != 0 {
			continue
		}
		for k := 0; k < n; k++ {
			out[k*n+j] = 0
		}
	}

	return out
}
