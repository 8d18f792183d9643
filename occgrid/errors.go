package occgrid

import "errors"

// Sentinel errors for occgrid operations.
var (
	// ErrInvalidMap indicates the flat occupancy array's length does not
	// match width*height, or width/height are non-positive.
	ErrInvalidMap = errors.New("occgrid: map array length does not match width*height")
)
