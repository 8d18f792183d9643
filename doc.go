// Package wayplan plans an optimized ordered tour over a set of 2D
// waypoints on a gridded occupancy map, for a non-holonomic ground vehicle
// with a minimum turning radius that may travel forward or reverse.
//
// What is wayplan?
//
//	A synchronous, CPU-bound planning kernel that turns a flat occupancy
//	grid and a waypoint list into a traversable path of circular-arc and
//	straight-line motion primitives, minimizing total kinematic path
//	length subject to a fixed starting heading.
//
// Under the hood, the kernel is organized as four stages plus an
// orchestrator:
//
//	occgrid/    — flat occupancy array to boolean grid (map loading)
//	lattice/    — state-lattice graph via six motion-primitive templates,
//	              collision checking, and endpoint snapping
//	costmatrix/ — per-(waypoint,heading) shortest-path cost matrix
//	tour/       — open-tour ordering and path reconstruction
//	planner/    — Precompute/Optimize orchestration and the public API
//
// Quick shape:
//
//	grid, g, err := planner.Precompute(req, sink)
//	result, err := planner.Optimize(grid, g, optimizeReq)
//
// See SPEC_FULL.md / DESIGN.md for the full specification and design
// rationale.
package wayplan
