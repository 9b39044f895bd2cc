package tile

import "errors"

// Sentinel errors for tile decoding. Callers that hit ErrTileTooSmall or
// ErrOffsetOutOfRange for a *start or end* tile treat it as fatal; all
// other callers treat a failed load as an absent neighbor and skip the
// edge.
var (
	// ErrTileTooSmall indicates the decompressed buffer is shorter than
	// HeaderSize and cannot even hold a header.
	ErrTileTooSmall = errors.New("tile: buffer smaller than header size")

	// ErrOffsetOutOfRange indicates a computed node/edge offset falls
	// outside the decompressed buffer, implying a truncated or corrupt
	// tile.
	ErrOffsetOutOfRange = errors.New("tile: offset out of range")
)
