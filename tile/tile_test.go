package tile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTile_RoundTrip(t *testing.T) {
	nodes := []fixtureNode{
		{Lat: 48.2082, Lon: 16.3719, EdgeIndex: 0, EdgeCount: 1},
		{Lat: 48.2100, Lon: 16.3800, EdgeIndex: 1, EdgeCount: 0},
	}
	edges := []fixtureEdge{
		{EndLevel: 2, EndTileID: 42, EndNodeID: 1, FwdAccess: AccessBicycle, LengthMeters: 120, WeightedGrade: 7},
	}
	raw := buildFixtureTile(48.0, 16.0, nodes, edges)

	tl, err := parseTile(7, raw)
	require.NoError(t, err)
	require.Equal(t, uint32(7), tl.ID)
	require.Equal(t, uint32(2), tl.NodeCount)
	require.Equal(t, uint32(1), tl.EdgeCount)

	require.InDelta(t, 48.2082, tl.Nodes[0].Lat, 1e-6)
	require.InDelta(t, 16.3719, tl.Nodes[0].Lon, 1e-6)
	require.Equal(t, uint32(1), tl.Nodes[0].EdgeCount)
}

func TestParseTile_TooSmall(t *testing.T) {
	_, err := parseTile(1, make([]byte, 10))
	require.ErrorIs(t, err, ErrTileTooSmall)
}

func TestParseTile_TruncatedNodeArray(t *testing.T) {
	raw := buildFixtureTile(48.0, 16.0, []fixtureNode{{Lat: 48.1, Lon: 16.1}}, nil)
	raw = raw[:len(raw)-NodeSize] // chop off the one node record
	_, err := parseTile(1, raw)
	require.ErrorIs(t, err, ErrOffsetOutOfRange)
}
