// Package occgrid converts a flat occupancy array into a 2D boolean
// obstacle grid with a fixed coordinate convention.
//
// What:
//
//   - Grid wraps an H×W boolean occupancy array plus a meters-per-cell
//     resolution and a world-frame origin.
//   - Load performs the vertical flip required to align the source array's
//     row 0 (top of image/world convention) with grid row 0 (origin of the
//     world frame).
//
// Why:
//
//   - Occupancy maps are conventionally serialized top-row-first, while the
//     lattice and path-planning geometry downstream assume row 0 sits at the
//     world origin. Flipping once here keeps every other package in a single
//     coordinate convention.
//
// Complexity:
//
//   - Load: O(W×H) time and memory.
//
// Errors:
//
//   - ErrInvalidMap: the flat array's length does not equal width*height.
package occgrid
