package lattice

import (
	"math"

	"github.com/arvo-robotics/wayplan/occgrid"
	"github.com/arvo-robotics/wayplan/progress"
)

// positionKey identifies a lattice position (ix, iy) independent of heading.
type positionKey struct {
	ix, iy int32
}

// Build constructs the state-lattice graph for grid under cfg, reporting
// progress through sink ("precomputation" process, 50% once primitive
// templates are generated and before they are applied; the grid-load 25%
// update and the terminal 100% update are the caller's responsibility, per
// the specification's progress contract).
//
// Complexity: O(V) vertex enumeration + O(V·6·samples) primitive
// application and collision checking, where V is the number of free lattice
// positions times NHeadings.
func Build(grid *occgrid.Grid, cfg Config, sink progress.Sink) (*Graph, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sink = progress.Safe(sink)

	headings := Headings(cfg.NHeadings)

	var (
		states []State
		index  = make(map[stateKey]int32)
		byPos  = make(map[positionKey][]int32) // heading-bin ascending
	)

	for ix := 0; float64(ix)*cfg.NodeSpacing < float64(grid.Width); ix++ {
		x := float64(ix) * cfg.NodeSpacing
		for iy := 0; float64(iy)*cfg.NodeSpacing < float64(grid.Height); iy++ {
			y := float64(iy) * cfg.NodeSpacing
			if !grid.FreeCell(roundToInt(x), roundToInt(y)) {
				continue
			}
			pk := positionKey{int32(ix), int32(iy)}
			for hb, h := range headings {
				id := int32(len(states))
				states = append(states, State{X: x, Y: y, Heading: h})
				index[stateKey{ix: int32(ix), iy: int32(iy), hb: int16(hb)}] = id
				byPos[pk] = append(byPos[pk], id)
			}
		}
	}

	templates := make([][6]template, cfg.NHeadings)
	for hb, h := range headings {
		templates[hb] = buildTemplates(cfg, h)
	}

	sink.Update("precomputation", 50, "Applying primitives...", nil)

	cache := newCollisionCache(grid)
	adjacency := make([][]Edge, len(states))

	for v := range states {
		s := states[v]
		hb := headingBinExact(headings, s.Heading)
		for _, tpl := range templates[hb] {
			edge, ok := tryApplyPrimitive(cfg, s, tpl, cache, byPos, states)
			if !ok {
				continue
			}
			adjacency[v] = append(adjacency[v], edge)
		}
	}

	g := &Graph{
		Config:      cfg,
		states:      states,
		nodeOffsets: make([]int32, len(states)+1),
		index:       index,
	}

	var total int32
	for v := range adjacency {
		g.nodeOffsets[v] = total
		total += int32(len(adjacency[v]))
	}
	g.nodeOffsets[len(states)] = total

	g.edges = make([]Edge, 0, total)
	for v := range adjacency {
		g.edges = append(g.edges, adjacency[v]...)
	}

	return g, nil
}

// tryApplyPrimitive translates tpl onto vertex s, collision-checks the
// sampled path, and — if clear — snaps the endpoint to an existing vertex
// within tolerance, returning the resulting edge.
func tryApplyPrimitive(
	cfg Config,
	s State,
	tpl template,
	cache *collisionCache,
	byPos map[positionKey][]int32,
	states []State,
) (Edge, bool) {
	actual := make([][2]float64, len(tpl.path))
	for i, p := range tpl.path {
		actual[i] = [2]float64{s.X + p[0], s.Y + p[1]}
	}
	endX := s.X + tpl.endX
	endY := s.Y + tpl.endY
	endHeading := tpl.endHeading

	if collides(cache, actual) {
		return Edge{}, false
	}

	target, ok := snapEndpoint(cfg, endX, endY, endHeading, byPos, states)
	if !ok {
		return Edge{}, false
	}

	cost := pathLength(actual)
	if tpl.kind.Reverse() {
		cost *= cfg.ReversePenaltyFactor
	}

	return Edge{To: target, Cost: cost, Kind: tpl.kind}, true
}

// snapEndpoint rounds (endX, endY) to the nearest even-lattice position and,
// among the vertices existing there (iterated in heading-bin ascending
// order), selects the one minimizing positional distance plus
// turning-radius-weighted angular distance. Returns false if no vertex
// exists at the snapped position or the winner's positional distance
// exceeds SnapToleranceRatio*NodeSpacing.
func snapEndpoint(
	cfg Config,
	endX, endY, endHeading float64,
	byPos map[positionKey][]int32,
	states []State,
) (int32, bool) {
	snappedIX := int32(math.Round(endX / cfg.NodeSpacing))
	snappedIY := int32(math.Round(endY / cfg.NodeSpacing))

	candidates := byPos[positionKey{snappedIX, snappedIY}]
	if len(candidates) == 0 {
		return 0, false
	}

	var (
		best   int32 = -1
		bestD  float64
		bestPD float64
	)
	for _, v := range candidates {
		st := states[v]
		dist := math.Hypot(st.X-endX, st.Y-endY)
		dth := angularDistance(st.Heading, endHeading)
		cost := dist + cfg.TurningRadius*dth
		if best == -1 || cost < bestD {
			best, bestD, bestPD = v, cost, dist
		}
	}

	if best == -1 || bestPD > cfg.SnapToleranceRatio*cfg.NodeSpacing {
		return 0, false
	}

	return best, true
}

// headingBinExact returns the index of heading within headings, assuming
// heading is one of its exact members (always true for a vertex's own
// State, which is always taken directly from Headings(n)). headings is not
// ordered by angle (the enumeration wraps at pi), so this is a linear scan.
func headingBinExact(headings []float64, heading float64) int {
	for i, h := range headings {
		if h == heading {
			return i
		}
	}

	return 0
}

func roundToInt(v float64) int {
	return int(math.Round(v))
}

// collisionCache memoizes per-cell collision queries over the lifetime of
// one Build call, per the specification's "direct bitmap of H·W bits"
// guidance.
type collisionCache struct {
	grid     *occgrid.Grid
	computed []bool
	blocked_ []bool
}

func newCollisionCache(grid *occgrid.Grid) *collisionCache {
	n := grid.Width * grid.Height
	return &collisionCache{grid: grid, computed: make([]bool, n), blocked_: make([]bool, n)}
}

// blocked reports whether the cell nearest (x, y) is out of bounds or
// occupied.
func (c *collisionCache) blocked(x, y float64) bool {
	ix, iy := roundToInt(x), roundToInt(y)
	if ix < 0 || ix >= c.grid.Width || iy < 0 || iy >= c.grid.Height {
		return true
	}
	idx := iy*c.grid.Width + ix
	if c.computed[idx] {
		return c.blocked_[idx]
	}
	v := !c.grid.FreeCell(ix, iy)
	c.computed[idx] = true
	c.blocked_[idx] = v

	return v
}

// collides checks path at max(1, len(path)/5)-step stride plus always the
// final point, per the specification's coarse collision-check stride.
func collides(cache *collisionCache, path [][2]float64) bool {
	n := len(path)
	step := n / 5
	if step < 1 {
		step = 1
	}
	for i := 0; i < n; i += step {
		if cache.blocked(path[i][0], path[i][1]) {
			return true
		}
	}

	return cache.blocked(path[n-1][0], path[n-1][1])
}
