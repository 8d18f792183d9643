package planner

import "errors"

var (
	// ErrNotPrecomputed is returned by Session.Optimize when no successful
	// Precompute call has stored a grid/graph yet.
	ErrNotPrecomputed = errors.New("planner: Session.Optimize called before a successful Precompute")
)
