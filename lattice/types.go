package lattice

// PrimitiveKind labels one of the six motion primitives a lattice edge was
// generated from.
type PrimitiveKind uint8

// The six motion primitives: straight, left arc, right arc, and their
// reverse (backward) counterparts.
const (
	Straight PrimitiveKind = iota
	Left
	Right
	StraightReverse
	LeftReverse
	RightReverse
)

// String renders the primitive's short label, matching the reference's
// {'S','L','R','B','LB','RB'} naming.
func (k PrimitiveKind) String() string {
	switch k {
	case Straight:
		return "S"
	case Left:
		return "L"
	case Right:
		return "R"
	case StraightReverse:
		return "B"
	case LeftReverse:
		return "LB"
	case RightReverse:
		return "RB"
	default:
		return "?"
	}
}

// Reverse reports whether k is one of the three reverse-travel primitives.
func (k PrimitiveKind) Reverse() bool {
	return k == StraightReverse || k == LeftReverse || k == RightReverse
}

// Point is a 2D lattice-aligned position (a multiple of Config.NodeSpacing
// on each axis).
type Point struct {
	X, Y float64
}

// State is a vehicle configuration (x, y, heading). Two states are equal
// iff all three fields match exactly: positions are always produced as
// integer multiples of NodeSpacing and Heading is always drawn from the
// fixed Headings(n) enumeration, so exact float equality is well-defined.
type State struct {
	X, Y    float64
	Heading float64
}

// Edge is one outgoing edge of a lattice vertex: a directed transition to
// vertex To via primitive Kind, costing Cost (Euclidean arc length, already
// scaled by ReversePenaltyFactor for reverse primitives).
type Edge struct {
	To   int32
	Cost float64
	Kind PrimitiveKind
}

// Config holds the lattice's tunable parameters. Every field here is part
// of the kernel's ABI (see the specification's tunable-parameters table);
// changing any of them and rebuilding produces a different (but still
// deterministic) graph.
type Config struct {
	// NodeSpacing is the number of grid cells between lattice vertices on
	// each axis. Default 2.
	NodeSpacing float64

	// NHeadings is the heading discretization (theta_bins). Default 16.
	NHeadings int

	// TurningRadius is the arc radius for Left/Right primitives, in cells.
	// Default 12.
	TurningRadius float64

	// PrimitiveLength is the sampled arc length of each primitive, in
	// cells. Default 4.
	PrimitiveLength float64

	// SamplesPerPrimitive is the number of points sampled along each
	// primitive's path. Default 20.
	SamplesPerPrimitive int

	// ReversePenaltyFactor multiplies the cost of reverse-travel edges.
	// Default 1.9.
	ReversePenaltyFactor float64

	// SnapToleranceRatio bounds endpoint-snap distance as a fraction of
	// NodeSpacing. Default 0.6.
	SnapToleranceRatio float64
}

// DefaultConfig returns the fixed ABI defaults from the tunable-parameters
// table: NodeSpacing=2, NHeadings=16, TurningRadius=12, PrimitiveLength=4,
// SamplesPerPrimitive=20, ReversePenaltyFactor=1.9, SnapToleranceRatio=0.6.
func DefaultConfig() Config {
	return Config{
		NodeSpacing:          2,
		NHeadings:            16,
		TurningRadius:        12,
		PrimitiveLength:      4,
		SamplesPerPrimitive:  20,
		ReversePenaltyFactor: 1.9,
		SnapToleranceRatio:   0.6,
	}
}

// Validate reports ErrInvalidConfig if any tunable is outside its valid
// domain (non-positive where a positive value is required, or
// SamplesPerPrimitive below 2).
func (c Config) Validate() error {
	if c.NodeSpacing <= 0 || c.NHeadings <= 0 || c.TurningRadius <= 0 ||
		c.PrimitiveLength <= 0 || c.SamplesPerPrimitive < 2 ||
		c.ReversePenaltyFactor <= 0 || c.SnapToleranceRatio <= 0 {
		return ErrInvalidConfig
	}

	return nil
}

// stateKey is the build-time hash-map key: integer cell coordinates plus a
// heading-bin index, per the design note that vertex identity is
// (i_x, i_y, heading_bin).
type stateKey struct {
	ix, iy int32
	hb     int16
}

// Graph is the state-lattice directed graph produced by Build. It is
// immutable: no exported method mutates it, so a single *Graph may be
// shared safely across concurrent callers.
type Graph struct {
	Config Config

	states      []State // dense vertex id -> State
	nodeOffsets []int32 // CSR row pointers, len = len(states)+1
	edges       []Edge  // CSR column/edge storage

	// index is a small read-only lookup retained after construction so
	// callers can resolve a (x, y, heading) waypoint state to its vertex
	// id without re-scanning states. It is never mutated after Build
	// returns.
	index map[stateKey]int32
}

// NumVertices returns the number of vertices in the graph.
func (g *Graph) NumVertices() int {
	return len(g.states)
}

// State returns the State stored at vertex id v.
func (g *Graph) State(v int32) State {
	return g.states[v]
}

// Edges returns the outgoing edges of vertex v. The returned slice is a
// read-only view into the graph's CSR storage; callers must not mutate it.
func (g *Graph) Edges(v int32) []Edge {
	return g.edges[g.nodeOffsets[v]:g.nodeOffsets[v+1]]
}

// VertexID resolves a (x, y, heading) state to its vertex id. ok is false
// if no vertex exists at that exact position/heading (e.g. the cell is
// occupied, out of bounds, or heading does not lie in the fixed
// enumeration this graph was built with).
func (g *Graph) VertexID(x, y, heading float64) (int32, bool) {
	key := stateKey{
		ix: roundToMultiple(x, g.Config.NodeSpacing),
		iy: roundToMultiple(y, g.Config.NodeSpacing),
		hb: headingBin(heading, g.Config.NHeadings),
	}
	v, ok := g.index[key]
	if !ok {
		return 0, false
	}
	// Guard against an approximate (ix, iy) collision with a mismatched
	// exact position or heading (possible only under caller-supplied
	// non-lattice-aligned coordinates).
	s := g.states[v]
	if s.X != x || s.Y != y || s.Heading != heading {
		return 0, false
	}

	return v, true
}
