package tour

import (
	"testing"

	"github.com/arvo-robotics/wayplan/costmatrix"
	"github.com/stretchr/testify/require"
)

// TestOpenTourTransform_ZeroesDepotColumns is invariant 8: every column
// whose state's waypoint index is 0 must be all zeros in the transformed
// matrix, regardless of the original matrix's values there.
func TestOpenTourTransform_ZeroesDepotColumns(t *testing.T) {
	states := []costmatrix.StateRef{
		{Waypoint: 0, Heading: 0},
		{Waypoint: 1, Heading: 0},
		{Waypoint: 1, Heading: 1},
	}
	n := len(states)
	costs := []int64{
		1000, 50, 60,
		40, 1000, 1000,
		30, 1000, 1000,
	}
	m := &costmatrix.Matrix{States: states, Costs: costs, N: n}

	transformed := openTourTransform(m)
	for k := 0; k < n; k++ {
		require.Equal(t, int64(0), transformed[k*n+0], "column 0 (waypoint 0) must be zeroed at row %d", k)
	}
	// Non-depot columns must be untouched.
	require.Equal(t, int64(50), transformed[0*n+1])
	require.Equal(t, int64(60), transformed[0*n+2])
}
