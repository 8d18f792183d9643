package lattice

import "errors"

// Sentinel errors for lattice construction.
var (
	// ErrInvalidConfig indicates a tunable parameter is out of its valid domain
	// (e.g. a non-positive NodeSpacing or NHeadings).
	ErrInvalidConfig = errors.New("lattice: invalid configuration")
)
