package tile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestGetEdgeEnd_BitFieldCorrectness verifies the bit-field round-trip
// property: decoding (end_level, end_tile_id, end_node_id) and composing
// them back into a 46-bit endnode equals the raw packed value.
func TestGetEdgeEnd_BitFieldCorrectness(t *testing.T) {
	cases := []fixtureEdge{
		{EndLevel: 2, EndTileID: 4_194_303, EndNodeID: 2_097_151, FwdAccess: AccessBicycle | AccessCar},
		{EndLevel: 0, EndTileID: 0, EndNodeID: 0},
		{EndLevel: 7, EndTileID: 123456, EndNodeID: 654321, RevAccess: AccessPedestrian},
	}

	nodes := []fixtureNode{{Lat: 48.0, Lon: 16.0, EdgeIndex: 0, EdgeCount: uint32(len(cases))}}
	raw := buildFixtureTile(48.0, 16.0, nodes, cases)

	tl, err := parseTile(1, raw)
	require.NoError(t, err)

	for i, c := range cases {
		ee, ok := tl.GetEdgeEnd(uint32(i))
		require.True(t, ok)

		got := uint64(ee.EndLevel) | uint64(ee.EndTileID)<<edgeEndTileIDShift | uint64(ee.EndNodeID)<<edgeEndNodeIDShift
		want := uint64(c.EndLevel) | uint64(c.EndTileID)<<edgeEndTileIDShift | uint64(c.EndNodeID)<<edgeEndNodeIDShift

		require.Equal(t, want, got&((uint64(1)<<edgeEndNodeWidth)-1))
		require.Equal(t, want, got)
	}
}

func TestGetEdgeEnd_AccessUnion(t *testing.T) {
	edges := []fixtureEdge{
		{EndLevel: 2, FwdAccess: AccessBicycle, RevAccess: AccessCar},
	}
	raw := buildFixtureTile(48.0, 16.0, []fixtureNode{{EdgeCount: 1}}, edges)

	tl, err := parseTile(1, raw)
	require.NoError(t, err)

	ee, ok := tl.GetEdgeEnd(0)
	require.True(t, ok)
	require.True(t, ee.HasBicycle)
	require.True(t, ee.HasCar)
	require.False(t, ee.HasPedestrian)
}

func TestGetEdgeEnd_OutOfRange(t *testing.T) {
	raw := buildFixtureTile(48.0, 16.0, nil, nil)
	tl, err := parseTile(1, raw)
	require.NoError(t, err)

	_, ok := tl.GetEdgeEnd(0)
	require.False(t, ok)
}

func TestGetEdgeDetails_DefaultsApplied(t *testing.T) {
	edges := []fixtureEdge{
		{EndLevel: 2, Speed: 0, LaneCount: 0, WeightedGrade: 0},
	}
	raw := buildFixtureTile(48.0, 16.0, []fixtureNode{{EdgeCount: 1}}, edges)

	tl, err := parseTile(1, raw)
	require.NoError(t, err)

	ed, ok := tl.GetEdgeDetails(0)
	require.True(t, ok)
	require.EqualValues(t, edgeDefaultSpeed, ed.Speed)
	require.EqualValues(t, edgeDefaultLaneCnt, ed.LaneCount)
	require.EqualValues(t, edgeDefaultGrade, ed.WeightedGrade)
}

func TestGetEdgeDetails_FlagsAndLength(t *testing.T) {
	edges := []fixtureEdge{
		{
			EndLevel: 2, Speed: 22, Use: UseCycleway, LaneCount: 1, Classification: 4, Surface: 1,
			CycleLane: 2, BikeNetwork: true, UseSidepath: true, Dismount: false, Shoulder: true,
			LengthMeters: 340, WeightedGrade: 9,
		},
	}
	raw := buildFixtureTile(48.0, 16.0, []fixtureNode{{EdgeCount: 1}}, edges)

	tl, err := parseTile(1, raw)
	require.NoError(t, err)

	ed, ok := tl.GetEdgeDetails(0)
	require.True(t, ok)
	require.EqualValues(t, 22, ed.Speed)
	require.EqualValues(t, UseCycleway, ed.Use)
	require.EqualValues(t, 2, ed.CycleLane)
	require.True(t, ed.BikeNetwork)
	require.True(t, ed.UseSidepath)
	require.False(t, ed.Dismount)
	require.True(t, ed.Shoulder)
	require.EqualValues(t, 340, ed.LengthMeters)
	require.EqualValues(t, 9, ed.WeightedGrade)
}
