package router

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/juhonkan/cycloroute/costmodel"
	"github.com/juhonkan/cycloroute/search"
	"github.com/juhonkan/cycloroute/tile"
	"github.com/juhonkan/cycloroute/tiletest"
)

// testTileID is the level-2 tile containing (48.0, 16.0), the tile Query
// derives from the fixture coordinates: row 552 * 1440 + column 784.
const testTileID = 795664

// buildChainFixture writes a 3-node chain: a cycleway hop then a
// car-bearing road hop, both bike-accessible. There is no alternative
// route, so every query from node 0 to node 2 uses both hops.
func buildChainFixture(t *testing.T, dir string) []tile.NodeSpec {
	t.Helper()

	nodes := []tile.NodeSpec{
		{Lat: 48.0000, Lon: 16.0000, EdgeIndex: 0, EdgeCount: 1},
		{Lat: 48.0020, Lon: 16.0000, EdgeIndex: 1, EdgeCount: 2},
		{Lat: 48.0040, Lon: 16.0000, EdgeIndex: 3, EdgeCount: 1},
	}

	edges := []tile.EdgeSpec{
		// 0: node0 -> node1 via quiet cycleway
		{EndLevel: 2, EndTileID: testTileID, EndNodeID: 1, FwdAccess: tile.AccessBicycle, Use: tile.UseCycleway, LengthMeters: 220},
		// 1: node1 -> node0 (reverse)
		{EndLevel: 2, EndTileID: testTileID, EndNodeID: 0, FwdAccess: tile.AccessBicycle, Use: tile.UseCycleway, LengthMeters: 220},
		// 2: node1 -> node2 via a busy road
		{EndLevel: 2, EndTileID: testTileID, EndNodeID: 2, FwdAccess: tile.AccessBicycle | tile.AccessCar, Use: tile.UseRoad, LengthMeters: 220},
		// 3: node2 -> node1 (reverse)
		{EndLevel: 2, EndTileID: testTileID, EndNodeID: 1, FwdAccess: tile.AccessBicycle | tile.AccessCar, Use: tile.UseRoad, LengthMeters: 220},
		// 4: unused placeholder, owned by no node
		{EndLevel: 2, EndTileID: testTileID, EndNodeID: 1, FwdAccess: 0, LengthMeters: 1},
		// 5: unused placeholder, owned by no node
		{EndLevel: 2, EndTileID: testTileID, EndNodeID: 2, FwdAccess: 0, LengthMeters: 1},
	}

	require.NoError(t, tiletest.Write(dir, testTileID, 48.0, 16.0, nodes, edges))
	return nodes
}

func newTestRouter(dir string) *Router {
	return New(dir, WithSearchOptions(
		search.WithHeapCapacity(1000),
		search.WithVisitedCapacity(1009),
		search.WithMaxProbe(32),
		search.WithMaxPathLength(100),
	))
}

func defaultPrefs() Preferences {
	return Preferences{BicycleType: costmodel.Road, UseRoads: 0.25}
}

func TestQuery_SuccessfulRoute(t *testing.T) {
	dir := t.TempDir()
	nodes := buildChainFixture(t, dir)
	r := newTestRouter(dir)

	res, err := r.Query(nodes[0].Lat, nodes[0].Lon, nodes[2].Lat, nodes[2].Lon, defaultPrefs())
	require.NoError(t, err)
	require.Len(t, res.Coords, 3)
	require.InDelta(t, nodes[0].Lat, res.Coords[0].Lat, 1e-9)
	require.InDelta(t, nodes[2].Lat, res.Coords[2].Lat, 1e-9)

	total := res.Summary.CarFreeMeters + res.Summary.SeparatedMeters + res.Summary.WithCarsMeters + res.Summary.PushingMeters
	require.InDelta(t, 440.0, total, 1e-6)
	require.InDelta(t, 220.0, res.Summary.CarFreeMeters, 1e-6)
	require.InDelta(t, 220.0, res.Summary.WithCarsMeters, 1e-6)
}

func TestQuery_SameStartAndGoal(t *testing.T) {
	dir := t.TempDir()
	nodes := buildChainFixture(t, dir)
	r := newTestRouter(dir)

	res, err := r.Query(nodes[0].Lat, nodes[0].Lon, nodes[0].Lat, nodes[0].Lon, defaultPrefs())
	require.NoError(t, err)
	require.Len(t, res.Coords, 1)
	require.Zero(t, res.Summary)
}

func TestQuery_TileLoadFailure(t *testing.T) {
	dir := t.TempDir()
	buildChainFixture(t, dir)
	r := newTestRouter(dir)

	// Coordinates far outside the fixture tile's level-2 grid cell map to a
	// tile ID with no file on disk.
	_, err := r.Query(48.0, 16.0, 10.0, 100.0, defaultPrefs())
	require.ErrorIs(t, err, ErrTileLoadFailed)
}

func TestQuery_NoNearbyRoad(t *testing.T) {
	dir := t.TempDir()
	nodes := buildChainFixture(t, dir)
	r := newTestRouter(dir)

	// Same tile, but 0.2 degrees away (~22km) from every fixture node.
	_, err := r.Query(48.2000, 16.2000, nodes[2].Lat, nodes[2].Lon, defaultPrefs())
	require.ErrorIs(t, err, ErrNoNearbyRoad)
}

func TestQuery_NoPathWhenDisconnected(t *testing.T) {
	dir := t.TempDir()
	// Each node's only edge loops back to itself: both nodes can be snapped
	// to, but no edge connects them.
	nodes := []tile.NodeSpec{
		{Lat: 48.0000, Lon: 16.0000, EdgeIndex: 0, EdgeCount: 1},
		{Lat: 48.0010, Lon: 16.0010, EdgeIndex: 1, EdgeCount: 1},
	}
	edges := []tile.EdgeSpec{
		{EndLevel: 2, EndTileID: testTileID, EndNodeID: 0, FwdAccess: tile.AccessBicycle, LengthMeters: 10},
		{EndLevel: 2, EndTileID: testTileID, EndNodeID: 1, FwdAccess: tile.AccessBicycle, LengthMeters: 10},
	}
	require.NoError(t, tiletest.Write(dir, testTileID, 48.0, 16.0, nodes, edges))
	r := newTestRouter(dir)

	_, err := r.Query(nodes[0].Lat, nodes[0].Lon, nodes[1].Lat, nodes[1].Lon, defaultPrefs())
	require.ErrorIs(t, err, ErrNoPath)
}

func TestQuery_AvoidCarsPrefersCarFreeSummary(t *testing.T) {
	dir := t.TempDir()
	nodes := buildChainFixture(t, dir)
	r := newTestRouter(dir)

	prefs := defaultPrefs()
	prefs.AvoidCars = true

	res, err := r.Query(nodes[0].Lat, nodes[0].Lon, nodes[2].Lat, nodes[2].Lon, prefs)
	require.NoError(t, err)
	require.Greater(t, res.Summary.CarFreeMeters, 0.0)
}

func TestQuery_TraceSinkInvoked(t *testing.T) {
	dir := t.TempDir()
	nodes := buildChainFixture(t, dir)

	var calls int
	r := New(dir,
		WithTraceSink(func(string, ...interface{}) { calls++ }),
		WithSearchOptions(
			search.WithHeapCapacity(1000),
			search.WithVisitedCapacity(1009),
			search.WithMaxProbe(32),
			search.WithMaxPathLength(100),
		),
	)

	_, err := r.Query(nodes[0].Lat, nodes[0].Lon, nodes[2].Lat, nodes[2].Lon, defaultPrefs())
	require.NoError(t, err)
	require.Greater(t, calls, 0)
}
