// Package costmatrix computes the per-(waypoint,heading) shortest-path cost
// matrix a tour solve operates on.
//
// What: one dense M x M scaled-integer matrix, where M is the number of
// enumerated (waypoint, heading) states, plus the index assigning each
// state to its matrix row/column.
//
// Why: the lattice graph (package lattice) is built once and reused across
// many optimize requests; each request needs only the shortest distance
// between the handful of waypoint states it names, not a full all-pairs
// table over the whole lattice. Compute runs one single-source Dijkstra per
// enumerated origin state and keeps its scratch arrays call-local, so
// concurrent Compute calls over the same *lattice.Graph never interfere.
//
// Complexity: O(M * (V + E) log V) time, O(V) scratch space reused across
// the M runs within one Compute call.
//
// Errors: ErrStartStateMissing if an enumerated origin state is not a
// vertex of the graph (waypoints are assumed to already lie on lattice
// positions; see lattice.Graph.VertexID).
package costmatrix
