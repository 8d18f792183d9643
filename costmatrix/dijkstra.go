package costmatrix

import (
	"container/heap"
	"math"

	"github.com/arvo-robotics/wayplan/lattice"
)

// engine is a reusable single-source Dijkstra runner over a *lattice.Graph's
// CSR adjacency, grounded on the teacher's lazy-decrease-key binary heap
// (package dijkstra) but keyed by dense int32 vertex id rather than string,
// and with every scratch slice pre-sized once and reused across many
// single-source runs from the same engine (each run call reinitializes the
// slices in place rather than reallocating), per the specification's resource-bounds
// guidance for repeated same-graph queries.
type engine struct {
	g       *lattice.Graph
	dist    []float64
	visited []bool
	pq      vertexPQ
}

func newEngine(g *lattice.Graph) *engine {
	n := g.NumVertices()
	return &engine{
		g:       g,
		dist:    make([]float64, n),
		visited: make([]bool, n),
		pq:      make(vertexPQ, 0, n),
	}
}

// run computes shortest distances from source to every vertex, returning a
// distance slice valid until the next call to run on the same engine.
func (e *engine) run(source int32) []float64 {
	n := len(e.dist)
	for i := 0; i < n; i++ {
		e.dist[i] = math.Inf(1)
		e.visited[i] = false
	}
	e.dist[source] = 0
	e.pq = e.pq[:0]
	heap.Push(&e.pq, vertexItem{id: source, dist: 0})

	for e.pq.Len() > 0 {
		item := heap.Pop(&e.pq).(vertexItem)
		u := item.id
		if e.visited[u] {
			continue
		}
		if item.dist > e.dist[u] {
			continue
		}
		e.visited[u] = true

		for _, edge := range e.g.Edges(u) {
			nd := e.dist[u] + edge.Cost
			if nd < e.dist[edge.To] {
				e.dist[edge.To] = nd
				heap.Push(&e.pq, vertexItem{id: edge.To, dist: nd})
			}
		}
	}

	return e.dist
}

// vertexItem is one heap entry: a candidate distance for vertex id.
type vertexItem struct {
	id   int32
	dist float64
}

// vertexPQ is a min-heap of vertexItem ordered by dist, mirroring the
// teacher's nodePQ (dijkstra/dijkstra.go) structurally but value-typed to
// avoid an allocation per push.
type vertexPQ []vertexItem

func (pq vertexPQ) Len() int            { return len(pq) }
func (pq vertexPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq vertexPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *vertexPQ) Push(x interface{}) { *pq = append(*pq, x.(vertexItem)) }
func (pq *vertexPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// ShortestPath runs single-source Dijkstra from "from" and returns the node
// sequence and total cost of the shortest path to "to", for reuse by
// tour.Reconstruct. ok is false if no path exists.
func ShortestPath(g *lattice.Graph, from, to int32) (path []int32, cost float64, ok bool) {
	n := g.NumVertices()
	dist := make([]float64, n)
	prev := make([]int32, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	dist[from] = 0

	pq := make(vertexPQ, 0, n)
	heap.Push(&pq, vertexItem{id: from, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(vertexItem)
		u := item.id
		if visited[u] {
			continue
		}
		if item.dist > dist[u] {
			continue
		}
		visited[u] = true
		if u == to {
			break
		}

		for _, edge := range g.Edges(u) {
			nd := dist[u] + edge.Cost
			if nd < dist[edge.To] {
				dist[edge.To] = nd
				prev[edge.To] = u
				heap.Push(&pq, vertexItem{id: edge.To, dist: nd})
			}
		}
	}

	if math.IsInf(dist[to], 1) {
		return nil, 0, false
	}

	// Walk predecessors back from "to" to "from", then reverse.
	var rev []int32
	for v := to; ; {
		rev = append(rev, v)
		if v == from {
			break
		}
		v = prev[v]
	}
	path = make([]int32, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return path, dist[to], true
}
