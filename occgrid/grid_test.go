package occgrid_test

import (
	"testing"

	"github.com/arvo-robotics/wayplan/occgrid"
	"github.com/stretchr/testify/require"
)

// TestLoad_InvalidLength verifies that a mismatched array length is rejected.
func TestLoad_InvalidLength(t *testing.T) {
	_, err := occgrid.Load([]int{0, 0, 0}, 2, 2, 0.05, 0, 0)
	require.ErrorIs(t, err, occgrid.ErrInvalidMap)
}

// TestLoad_FlipCorrectness is Scenario F from the specification: a 4x4 map
// with a single occupied cell at flat index 0 (source top-left) must appear
// as occupied at grid[3][0] after the vertical flip, not grid[0][0].
func TestLoad_FlipCorrectness(t *testing.T) {
	data := make([]int, 16)
	data[0] = 1 // source row 0 (top), column 0

	g, err := occgrid.Load(data, 4, 4, 1, 0, 0)
	require.NoError(t, err)

	require.False(t, g.Free(0, 3), "flipped occupied cell should be at grid row 3, col 0")
	require.True(t, g.Free(0, 0), "grid row 0 should be free: source bottom-left was 0")
}

// TestGrid_InBoundsAndFree exercises boundary behavior.
func TestGrid_InBoundsAndFree(t *testing.T) {
	data := make([]int, 9) // 3x3, all free
	g, err := occgrid.Load(data, 3, 3, 1, 0, 0)
	require.NoError(t, err)

	require.True(t, g.InBounds(0, 0))
	require.True(t, g.InBounds(2, 2))
	require.False(t, g.InBounds(3, 0))
	require.False(t, g.InBounds(-1, 0))
	require.True(t, g.Free(1, 1))
	require.False(t, g.FreeCell(3, 3))
}
