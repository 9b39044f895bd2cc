package search

import "errors"

var (
	// ErrNoPath is returned when both heaps exhaust (or the iteration cap is
	// hit) before the two frontiers meet.
	ErrNoPath = errors.New("search: no path found")

	// ErrInvalidStart is returned when start's tile or node cannot be
	// resolved at all — a fatal condition, unlike a missing neighbor tile
	// encountered mid-traversal, which is silently treated as absent.
	ErrInvalidStart = errors.New("search: invalid start state")

	// ErrInvalidGoal is the goal-state counterpart of ErrInvalidStart.
	ErrInvalidGoal = errors.New("search: invalid goal state")
)
