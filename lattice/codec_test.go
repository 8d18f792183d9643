package lattice_test

import (
	"bytes"
	"testing"

	"github.com/arvo-robotics/wayplan/lattice"
	"github.com/arvo-robotics/wayplan/progress"
	"github.com/stretchr/testify/require"
)

// TestCodec_RoundTrip verifies a built graph survives an Encode/Decode
// round trip byte-for-byte in structure (same vertices, same edges).
func TestCodec_RoundTrip(t *testing.T) {
	grid := emptyGrid(t, 16, 16)
	cfg := lattice.DefaultConfig()
	cfg.NHeadings = 8

	g, err := lattice.Build(grid, cfg, progress.NoOp)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, g.Encode(&buf))

	g2, err := lattice.Decode(&buf)
	require.NoError(t, err)

	require.Equal(t, g.NumVertices(), g2.NumVertices())
	for v := 0; v < g.NumVertices(); v++ {
		require.Equal(t, g.State(int32(v)), g2.State(int32(v)))
		require.Equal(t, g.Edges(int32(v)), g2.Edges(int32(v)))
	}
}

// TestCodec_RejectsBadVersion verifies Decode refuses an unrecognized
// leading version byte rather than attempting to gob-decode garbage.
func TestCodec_RejectsBadVersion(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0xFF})
	_, err := lattice.Decode(buf)
	require.Error(t, err)
}
