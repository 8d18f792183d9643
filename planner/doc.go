// Package planner orchestrates the lattice-constrained waypoint tour
// kernel: Precompute builds a state-lattice graph once from an occupancy
// grid (occgrid + lattice), and Optimize solves an ordered tour and
// reconstructs its path over that graph for a given waypoint list
// (costmatrix + tour).
//
// The package is the kernel's entire external contract: an HTTP surface,
// WebSocket progress broadcast, worker pool, robot driver, map persistence
// layer, and front-end are all explicitly out of scope and talk to the
// kernel only through ProgressSink and the Precompute/Optimize signatures.
package planner
