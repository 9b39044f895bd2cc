package locate

import (
	"math"

	"github.com/juhonkan/cycloroute/geo"
	"github.com/juhonkan/cycloroute/tile"
)

// bikePreferenceRadiusMeters and bikePreferenceRatio gate when the
// bike-or-pedestrian-accessible nearest node is preferred over the
// strict geometric nearest.
const (
	bikePreferenceRadiusMeters = 500.0
	bikePreferenceRatio        = 2.0
)

// Nearest scans every node in t and returns the node id closest to
// (lat, lon), along with its distance in meters. Nodes with no outgoing
// edges are skipped entirely — they are dead ends with nowhere to route
// from or to. Among the remaining nodes, the closest one with at least
// one bike-or-pedestrian-accessible edge is returned instead whenever it
// lies within bikePreferenceRadiusMeters or within bikePreferenceRatio
// times the strict nearest's distance.
func Nearest(t *tile.Tile, lat, lon float64) (nodeID uint32, distanceMeters float64, err error) {
	if len(t.Nodes) == 0 {
		return 0, 0, ErrEmptyTile
	}

	bestIdx := uint32(0)
	bestDist := math.Inf(1)

	bestBikeIdx := uint32(0)
	bestBikeDist := math.Inf(1)
	haveBike := false

	for i, n := range t.Nodes {
		if n.EdgeCount == 0 {
			continue
		}

		d := geo.Haversine(lat, lon, n.Lat, n.Lon)
		if d < bestDist {
			bestDist = d
			bestIdx = uint32(i)
		}

		if hasBikeOrPedEdge(t, n) && d < bestBikeDist {
			bestBikeDist = d
			bestBikeIdx = uint32(i)
			haveBike = true
		}
	}

	if haveBike && (bestBikeDist < bikePreferenceRadiusMeters || bestBikeDist < bestDist*bikePreferenceRatio) {
		return bestBikeIdx, bestBikeDist, nil
	}

	return bestIdx, bestDist, nil
}

func hasBikeOrPedEdge(t *tile.Tile, n tile.Node) bool {
	for ei := n.EdgeIndex; ei < n.EdgeIndex+n.EdgeCount && ei < t.EdgeCount; ei++ {
		ee, ok := t.GetEdgeEnd(ei)
		if !ok {
			continue
		}
		if ee.HasBicycle || ee.HasPedestrian {
			return true
		}
	}
	return false
}
