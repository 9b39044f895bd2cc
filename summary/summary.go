package summary

import (
	"fmt"

	"github.com/juhonkan/cycloroute/search"
	"github.com/juhonkan/cycloroute/tile"
)

// Result holds the four distance buckets a path's edges are classified
// into, each in meters.
type Result struct {
	CarFreeMeters   float64
	SeparatedMeters float64
	WithCarsMeters  float64
	PushingMeters   float64
}

// Compute walks path, matching each consecutive pair to the edge in the
// first state's node whose endpoint equals the second, and accumulates its
// length into the matching bucket. A path of length 0 or 1
// (including the from==to case) returns a zero Result.
func Compute(store *tile.Store, path []search.State) (Result, error) {
	var r Result

	for i := 0; i < len(path)-1; i++ {
		cur, next := path[i], path[i+1]

		t, ok := store.Load(cur.TileID)
		if !ok {
			return Result{}, fmt.Errorf("%w: tile %d", ErrMissingTile, cur.TileID)
		}
		if cur.NodeID >= uint32(len(t.Nodes)) {
			return Result{}, fmt.Errorf("%w: node %d in tile %d", ErrInvalidNode, cur.NodeID, cur.TileID)
		}

		ee, ed, ok := findEdge(t, t.Nodes[cur.NodeID], next)
		if !ok {
			return Result{}, fmt.Errorf("%w: %v -> %v", ErrNoMatchingEdge, cur, next)
		}

		classify(&r, ee, ed)
	}

	return r, nil
}

func findEdge(t *tile.Tile, node tile.Node, next search.State) (tile.EdgeEnd, tile.EdgeDetails, bool) {
	for ei := node.EdgeIndex; ei < node.EdgeIndex+node.EdgeCount && ei < t.EdgeCount; ei++ {
		ee, ok := t.GetEdgeEnd(ei)
		if !ok || ee.EndTileID != next.TileID || ee.EndNodeID != next.NodeID {
			continue
		}

		ed, ok := t.GetEdgeDetails(ei)
		if !ok {
			continue
		}

		return ee, ed, true
	}

	return tile.EdgeEnd{}, tile.EdgeDetails{}, false
}

func classify(r *Result, ee tile.EdgeEnd, ed tile.EdgeDetails) {
	length := float64(ed.LengthMeters)

	switch {
	case !ee.HasBicycle && ee.HasPedestrian:
		r.PushingMeters += length
	case isCarFreeUse(ed.Use, ee.HasCar):
		r.CarFreeMeters += length
	case ed.CycleLane >= 2 && ee.HasCar:
		r.SeparatedMeters += length
	case ee.HasCar:
		r.WithCarsMeters += length
	default:
		r.CarFreeMeters += length
	}
}

// isCarFreeUse applies the two-clause car-free rule: dedicated
// cycling/walking infrastructure counts only without car access, while
// track/living-street/service-road count regardless of car access.
func isCarFreeUse(use uint8, hasCar bool) bool {
	switch use {
	case tile.UseCycleway, tile.UsePath, tile.UseFootway, tile.UseMountainBike:
		return !hasCar
	case tile.UseTrack, tile.UseLivingStreet, tile.UseServiceRoad:
		return true
	}
	return false
}
