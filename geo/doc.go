// Package geo provides the small set of geographic primitives the routing
// engine needs: great-circle distance, and the lat/lon ↔ level-2 tile-id
// arithmetic used to address the tiled road-network graph.
//
// Only level 2 of the tile hierarchy (0.25° cells) is ever addressed by the
// router; TileIDLevel2 addresses that level only. Levels 0 and 1 are
// named in Level and sized in TileDegrees for parity with the on-disk
// format, but no function here accepts them.
package geo
