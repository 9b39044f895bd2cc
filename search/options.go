package search

// Scaling constants for the iteration cap: 30k iterations per kilometer of
// straight-line distance, clamped to [1e6, 6e6] so neither a short hop nor a
// continental query can starve or run away.
const (
	itersPerKm     = 30_000
	minIterCap     = 1_000_000
	maxIterCap     = 6_000_000
	defaultMaxPath = 100_000
)

// Option configures a Searcher at construction. The built-in defaults size
// the heaps and visited tables for production tile sets; tests override
// heap/visited capacity downward to keep fixture runs cheap.
type Option func(*Searcher)

// WithHeapCapacity overrides DefaultHeapCapacity for both frontiers.
func WithHeapCapacity(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.heapCapacity = n
		}
	}
}

// WithVisitedCapacity overrides DefaultVisitedCapacity for both frontiers.
func WithVisitedCapacity(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.visitedCapacity = n
		}
	}
}

// WithMaxProbe overrides DefaultMaxProbe.
func WithMaxProbe(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.maxProbe = n
		}
	}
}

// WithMaxPathLength bounds the number of states path reconstruction will
// walk, guarding against a corrupted parent chain forming a cycle.
func WithMaxPathLength(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.maxPath = n
		}
	}
}
