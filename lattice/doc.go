// Package lattice builds a state-lattice directed graph over a 2D occupancy
// grid for a non-holonomic vehicle with a fixed minimum turning radius.
//
// What:
//
//   - Graph is a directed graph of (x, y, heading) States, built once by Build
//     and read-only thereafter.
//   - Vertices are enumerated over free grid cells at node-spacing multiples,
//     crossed with a fixed set of evenly spaced headings.
//   - Edges are produced by applying six motion-primitive templates (straight,
//     left/right arc, and their reverse variants) per heading, discarding any
//     primitive whose sampled path collides with an obstacle or whose endpoint
//     fails to snap to an existing lattice vertex within tolerance.
//
// Representation:
//
//   - Vertices are dense int32 IDs; adjacency is stored CSR-style
//     (nodeOffsets + edges), per the resource-bounds guidance for large
//     sparse lattices. A hash map from (ix, iy, headingBin) to ID is filled
//     during construction and kept on the Graph afterwards as a read-only
//     index for state lookups (VertexID); Decode recomputes it from the
//     decoded states rather than reading it from the wire.
//
// Determinism:
//
//   - Build produces an edge-for-edge identical graph for identical inputs.
//     Ties in endpoint-snap selection are broken by heading-bin index order,
//     matching the iteration order vertices are generated in.
//
// Errors:
//
//   - ErrInvalidConfig: a tunable parameter is out of its valid domain.
package lattice
