package router

import (
	"errors"
	"fmt"

	"github.com/juhonkan/cycloroute/costmodel"
	"github.com/juhonkan/cycloroute/geo"
	"github.com/juhonkan/cycloroute/locate"
	"github.com/juhonkan/cycloroute/search"
	"github.com/juhonkan/cycloroute/summary"
	"github.com/juhonkan/cycloroute/tile"
)

// Router owns a tile store rooted at one tiles directory and serves Query
// calls against it.
type Router struct {
	store *tile.Store

	tileCacheCapacity int
	searchOpts        []search.Option
	trace             TraceSink
}

// New builds a Router over tilesDir.
func New(tilesDir string, opts ...Option) *Router {
	r := &Router{
		tileCacheCapacity: tile.DefaultCacheCapacity,
		trace:             noopTraceSink,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.store = tile.NewStore(tilesDir, r.storeOptions()...)

	return r
}

// Preferences are the per-query routing preferences accepted from the
// command line: bicycle type, and the three avoidance/preference knobs.
type Preferences struct {
	BicycleType  costmodel.BicycleType
	AvoidPushing bool
	AvoidCars    bool
	UseRoads     float64
}

// Coord is one point of a returned route, at the precision the CLI emits.
type Coord struct {
	Lat float64
	Lon float64
}

// Result is a successful Query's output.
type Result struct {
	Coords  []Coord
	Summary summary.Result
}

// Query finds the least-cost bicycle route between (fromLat,fromLon) and
// (toLat,toLon) under prefs, returning its coordinates and distance
// summary. See errors.go for the fatal-error taxonomy.
func (r *Router) Query(fromLat, fromLon, toLat, toLon float64, prefs Preferences) (Result, error) {
	fromTileID := geo.TileIDLevel2(fromLat, fromLon)
	toTileID := geo.TileIDLevel2(toLat, toLon)

	fromTile, ok := r.store.Load(fromTileID)
	if !ok {
		return Result{}, fmt.Errorf("%w: start tile %d", ErrTileLoadFailed, fromTileID)
	}
	toTile, ok := r.store.Load(toTileID)
	if !ok {
		return Result{}, fmt.Errorf("%w: end tile %d", ErrTileLoadFailed, toTileID)
	}

	fromNode, fromDist, err := locate.Nearest(fromTile, fromLat, fromLon)
	if err != nil || fromDist > maxNearbyRoadMeters {
		return Result{}, fmt.Errorf("%w: start", ErrNoNearbyRoad)
	}
	toNode, toDist, err := locate.Nearest(toTile, toLat, toLon)
	if err != nil || toDist > maxNearbyRoadMeters {
		return Result{}, fmt.Errorf("%w: end", ErrNoNearbyRoad)
	}

	r.trace("snapped start=(%.6f,%.6f)->tile=%d node=%d dist=%.1fm", fromLat, fromLon, fromTileID, fromNode, fromDist)
	r.trace("snapped end=(%.6f,%.6f)->tile=%d node=%d dist=%.1fm", toLat, toLon, toTileID, toNode, toDist)

	model := costmodel.NewModel(
		costmodel.WithBicycleType(prefs.BicycleType),
		costmodel.WithUseRoads(prefs.UseRoads),
		costmodel.WithAvoidCars(prefs.AvoidCars),
		costmodel.WithAvoidPushing(prefs.AvoidPushing),
	)
	searcher := search.New(r.store, model, r.searchOpts...)

	start := search.State{TileID: fromTileID, NodeID: fromNode}
	goal := search.State{TileID: toTileID, NodeID: toNode}

	res, err := searcher.Route(start, goal, fromLat, fromLon, toLat, toLon)
	if err != nil {
		if errors.Is(err, search.ErrNoPath) {
			return Result{}, ErrNoPath
		}
		return Result{}, err
	}

	r.trace("path found: %d states, cost=%.1f", len(res.Path), res.TotalCost)

	sum, err := summary.Compute(r.store, res.Path)
	if err != nil {
		return Result{}, err
	}

	coords := make([]Coord, len(res.Path))
	for i, s := range res.Path {
		t, ok := r.store.Load(s.TileID)
		if !ok {
			return Result{}, fmt.Errorf("%w: path tile %d", ErrTileLoadFailed, s.TileID)
		}
		n := t.Nodes[s.NodeID]
		coords[i] = Coord{Lat: n.Lat, Lon: n.Lon}
	}

	return Result{Coords: coords, Summary: sum}, nil
}
