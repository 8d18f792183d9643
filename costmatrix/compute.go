package costmatrix

import (
	"fmt"
	"math"

	"github.com/arvo-robotics/wayplan/lattice"
)

// Compute builds the dense cost matrix for waypoints over headings, per
// spec.md §4.3's state enumeration and matrix population rules.
//
// Waypoint 0 is the depot/start. If startHeadingIdx is non-nil, waypoint 0
// contributes exactly one state (startHeadingIdx into headings); otherwise
// it contributes one state per heading, same as every other waypoint.
//
// Compute allocates one engine and reuses its scratch arrays across all M
// single-source Dijkstra runs.
func Compute(
	g *lattice.Graph,
	waypoints []lattice.Point,
	headings []float64,
	startHeadingIdx *int,
	opts Options,
) (*Matrix, error) {
	states, index := enumerateStates(len(waypoints), len(headings), startHeadingIdx)
	m := len(states)

	vertex := make([]int32, m)
	for k, st := range states {
		wp := waypoints[st.Waypoint]
		h := headings[st.Heading]
		v, ok := g.VertexID(wp.X, wp.Y, h)
		if !ok {
			return nil, fmt.Errorf("%w: waypoint %d heading %d", ErrStartStateMissing, st.Waypoint, st.Heading)
		}
		vertex[k] = v
	}

	costs := make([]int64, m*m)
	eng := newEngine(g)

	for k := 0; k < m; k++ {
		dist := eng.run(vertex[k])
		for j := 0; j < m; j++ {
			if states[k].Waypoint == states[j].Waypoint {
				costs[k*m+j] = opts.Unreachable
				continue
			}
			d := dist[vertex[j]]
			if math.IsInf(d, 1) {
				costs[k*m+j] = opts.Unreachable
				continue
			}
			costs[k*m+j] = int64(math.Round(float64(opts.Scale) * d))
		}
	}

	return &Matrix{
		States: states,
		Index:  index,
		Vertex: vertex,
		Costs:  costs,
		N:      m,
		opts:   opts,
	}, nil
}

// enumerateStates builds S in the specification's exact order: waypoint 0
// first (either its fixed start heading alone, or every heading), then
// every subsequent waypoint's full heading set in heading-index order.
func enumerateStates(numWaypoints, numHeadings int, startHeadingIdx *int) ([]StateRef, map[StateRef]int) {
	var states []StateRef
	if startHeadingIdx != nil {
		states = append(states, StateRef{Waypoint: 0, Heading: *startHeadingIdx})
	} else {
		for h := 0; h < numHeadings; h++ {
			states = append(states, StateRef{Waypoint: 0, Heading: h})
		}
	}
	for w := 1; w < numWaypoints; w++ {
		for h := 0; h < numHeadings; h++ {
			states = append(states, StateRef{Waypoint: w, Heading: h})
		}
	}

	index := make(map[StateRef]int, len(states))
	for k, s := range states {
		index[s] = k
	}

	return states, index
}
