package locate

import "errors"

// ErrEmptyTile is returned by Nearest when the tile has no nodes at all.
var ErrEmptyTile = errors.New("locate: tile has no nodes")
