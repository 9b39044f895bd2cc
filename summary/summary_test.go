package summary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/juhonkan/cycloroute/search"
	"github.com/juhonkan/cycloroute/tile"
	"github.com/juhonkan/cycloroute/tiletest"
)

const testTileID = 42

func mkNode(edgeIndex, edgeCount uint32) tile.NodeSpec {
	return tile.NodeSpec{Lat: 48.0, Lon: 16.0, EdgeIndex: edgeIndex, EdgeCount: edgeCount}
}

func TestCompute_ClassifiesEachBucket(t *testing.T) {
	dir := t.TempDir()

	// 6 nodes in a chain: 0-cycleway->1-track(withCar? no, track always carfree)->2
	// -separated(laned,car)->3-road-with-car->4, plus a pushing hop 4->5.
	nodes := []tile.NodeSpec{
		mkNode(0, 1),
		mkNode(1, 1),
		mkNode(2, 1),
		mkNode(3, 1),
		mkNode(4, 1),
		mkNode(5, 0),
	}
	edges := []tile.EdgeSpec{
		{EndLevel: 2, EndTileID: testTileID, EndNodeID: 1, FwdAccess: tile.AccessBicycle, Use: tile.UseCycleway, LengthMeters: 100},
		{EndLevel: 2, EndTileID: testTileID, EndNodeID: 2, FwdAccess: tile.AccessBicycle | tile.AccessCar, Use: tile.UseTrack, LengthMeters: 50},
		{EndLevel: 2, EndTileID: testTileID, EndNodeID: 3, FwdAccess: tile.AccessBicycle | tile.AccessCar, Use: tile.UseRoad, CycleLane: 2, LengthMeters: 75},
		{EndLevel: 2, EndTileID: testTileID, EndNodeID: 4, FwdAccess: tile.AccessBicycle | tile.AccessCar, Use: tile.UseRoad, LengthMeters: 120},
		{EndLevel: 2, EndTileID: testTileID, EndNodeID: 5, FwdAccess: tile.AccessPedestrian, Use: tile.UseFootway, LengthMeters: 30},
	}
	require.NoError(t, tiletest.Write(dir, testTileID, 48.0, 16.0, nodes, edges))

	store := tile.NewStore(dir)
	path := make([]search.State, len(nodes))
	for i := range nodes {
		path[i] = search.State{TileID: testTileID, NodeID: uint32(i)}
	}

	res, err := Compute(store, path)
	require.NoError(t, err)
	require.Equal(t, 150.0, res.CarFreeMeters) // cycleway (100) + track (50)
	require.Equal(t, 75.0, res.SeparatedMeters)
	require.Equal(t, 120.0, res.WithCarsMeters)
	require.Equal(t, 30.0, res.PushingMeters)
}

func TestCompute_EmptyAndSingleStatePath(t *testing.T) {
	dir := t.TempDir()
	nodes := []tile.NodeSpec{mkNode(0, 0)}
	require.NoError(t, tiletest.Write(dir, testTileID, 48.0, 16.0, nodes, nil))
	store := tile.NewStore(dir)

	res, err := Compute(store, nil)
	require.NoError(t, err)
	require.Zero(t, res)

	res, err = Compute(store, []search.State{{TileID: testTileID, NodeID: 0}})
	require.NoError(t, err)
	require.Zero(t, res)
}

func TestCompute_NoMatchingEdgeIsError(t *testing.T) {
	dir := t.TempDir()
	nodes := []tile.NodeSpec{mkNode(0, 0), mkNode(0, 0)}
	require.NoError(t, tiletest.Write(dir, testTileID, 48.0, 16.0, nodes, nil))
	store := tile.NewStore(dir)

	path := []search.State{{TileID: testTileID, NodeID: 0}, {TileID: testTileID, NodeID: 1}}
	_, err := Compute(store, path)
	require.ErrorIs(t, err, ErrNoMatchingEdge)
}

func TestCompute_SummaryConservation(t *testing.T) {
	dir := t.TempDir()
	nodes := []tile.NodeSpec{mkNode(0, 1), mkNode(1, 1), mkNode(0, 0)}
	edges := []tile.EdgeSpec{
		{EndLevel: 2, EndTileID: testTileID, EndNodeID: 1, FwdAccess: tile.AccessBicycle, Use: tile.UseRoad, LengthMeters: 200},
		{EndLevel: 2, EndTileID: testTileID, EndNodeID: 2, FwdAccess: tile.AccessPedestrian, Use: tile.UseFootway, LengthMeters: 40},
	}
	require.NoError(t, tiletest.Write(dir, testTileID, 48.0, 16.0, nodes, edges))
	store := tile.NewStore(dir)

	path := []search.State{
		{TileID: testTileID, NodeID: 0},
		{TileID: testTileID, NodeID: 1},
		{TileID: testTileID, NodeID: 2},
	}
	res, err := Compute(store, path)
	require.NoError(t, err)

	total := res.CarFreeMeters + res.SeparatedMeters + res.WithCarsMeters + res.PushingMeters
	require.InDelta(t, 240.0, total, 1e-9)
}
