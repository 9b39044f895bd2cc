package summary

import "errors"

var (
	// ErrMissingTile is returned when a path state's tile cannot be loaded.
	ErrMissingTile = errors.New("summary: missing tile for path state")

	// ErrInvalidNode is returned when a path state's node id is out of
	// range for its tile.
	ErrInvalidNode = errors.New("summary: node id out of range")

	// ErrNoMatchingEdge is returned when no edge in a path state's node
	// leads to the next path state — a corrupt or non-adjacent path.
	ErrNoMatchingEdge = errors.New("summary: no edge connects consecutive path states")
)
