package lattice

import (
	"bufio"
	"encoding/gob"
	"fmt"
	"io"
)

// graphVersion is written as the first byte of every encoded graph. Decode
// rejects any other value, so a future incompatible wire change can be
// introduced without silently misreading an older graph.
const graphVersion byte = 1

// wireGraph mirrors Graph's unexported fields for gob encoding; gob cannot
// see unexported fields directly, so Encode/Decode copy through this type.
// The vertex-lookup index is deliberately not part of the wire format: its
// key type carries unexported fields gob cannot serialize faithfully, and
// it is cheap to recompute deterministically from States and Config (see
// rebuildIndex), so decoding recomputes it rather than trusting the wire.
type wireGraph struct {
	Config      Config
	States      []State
	NodeOffsets []int32
	Edges       []Edge
}

// Encode writes g to w as a versioned gob stream, per the specification's
// deterministic-serialization requirement (the same *Graph always encodes
// to the same bytes, since Build's output ordering is itself deterministic).
func (g *Graph) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.Write([]byte{graphVersion}); err != nil {
		return err
	}

	wg := wireGraph{
		Config:      g.Config,
		States:      g.states,
		NodeOffsets: g.nodeOffsets,
		Edges:       g.edges,
	}
	if err := gob.NewEncoder(bw).Encode(&wg); err != nil {
		return err
	}

	return bw.Flush()
}

// Decode reads a graph previously written by Encode.
func Decode(r io.Reader) (*Graph, error) {
	var version [1]byte
	if _, err := io.ReadFull(r, version[:]); err != nil {
		return nil, fmt.Errorf("lattice: reading version byte: %w", err)
	}
	if version[0] != graphVersion {
		return nil, fmt.Errorf("lattice: unsupported graph wire version %d", version[0])
	}

	var wg wireGraph
	if err := gob.NewDecoder(r).Decode(&wg); err != nil {
		return nil, fmt.Errorf("lattice: decoding graph: %w", err)
	}

	return &Graph{
		Config:      wg.Config,
		states:      wg.States,
		nodeOffsets: wg.NodeOffsets,
		edges:       wg.Edges,
		index:       rebuildIndex(wg.Config, wg.States),
	}, nil
}

// rebuildIndex recomputes the (ix, iy, heading-bin) -> vertex-id lookup from
// states, the same map Build populates during vertex enumeration.
func rebuildIndex(cfg Config, states []State) map[stateKey]int32 {
	idx := make(map[stateKey]int32, len(states))
	for v, s := range states {
		key := stateKey{
			ix: roundToMultiple(s.X, cfg.NodeSpacing),
			iy: roundToMultiple(s.Y, cfg.NodeSpacing),
			hb: headingBin(s.Heading, cfg.NHeadings),
		}
		idx[key] = int32(v)
	}

	return idx
}
