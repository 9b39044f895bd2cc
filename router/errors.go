package router

import "errors"

var (
	// ErrTileLoadFailed is returned when the start or end coordinate's tile
	// cannot be loaded — a fatal I/O error. Missing tiles encountered
	// mid-traversal are instead silently skipped as absent neighbors; only
	// the start/end tiles are fatal.
	ErrTileLoadFailed = errors.New("router: start or end tile failed to load")

	// ErrNoNearbyRoad is returned when no graph node lies within 5 km of the
	// start or end coordinate.
	ErrNoNearbyRoad = errors.New("router: no road found near coordinate")

	// ErrNoPath is returned when the bidirectional search exhausts its
	// heaps or iteration cap before the two frontiers meet.
	ErrNoPath = errors.New("router: no path found")
)
