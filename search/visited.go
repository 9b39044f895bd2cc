package search

// DefaultVisitedCapacity is the fixed table size for a frontier's visited
// set: roughly 2 million slots, sized prime to spread hash collisions.
// 2_000_003 is prime.
const DefaultVisitedCapacity = 2_000_003

// DefaultMaxProbe bounds the linear-probe sequence on lookup/insert.
// Overflowing it silently drops the insertion — a defensive bound not
// expected to bind in steady state.
const DefaultMaxProbe = 2000

// visitedEntry is one slot of a visitedSet: the state it was last claimed
// for, its best-known g, and the parent pointer A* reconstruction walks.
// ParentState == State for a root entry (the frontier's own start/goal),
// which lets reconstruction detect the walk's end without overloading a
// zero-valued State as a sentinel.
type visitedEntry struct {
	valid         bool
	state         State
	g             float64
	parentState   State
	parentEdgeIdx uint32
}

// visitedSet is an open-addressed hash table over State with a fixed
// capacity and a bounded linear-probe sequence.
type visitedSet struct {
	capacity int
	maxProbe int
	entries  []visitedEntry
}

func newVisitedSet(capacity, maxProbe int) *visitedSet {
	return &visitedSet{
		capacity: capacity,
		maxProbe: maxProbe,
		entries:  make([]visitedEntry, capacity),
	}
}

// hashState computes an FNV-1a-style hash over the state's two u32 fields.
func hashState(s State) uint64 {
	const offsetBasis = 14695981039346656037
	const prime = 1099511628211

	h := uint64(offsetBasis)
	for _, word := range [2]uint32{s.TileID, s.NodeID} {
		for i := 0; i < 4; i++ {
			h ^= uint64(byte(word >> (uint(i) * 8)))
			h *= prime
		}
	}
	return h
}

// lookup returns the entry claimed for s, ok=false if no slot holds it
// within the probe bound.
func (v *visitedSet) lookup(s State) (visitedEntry, bool) {
	start := int(hashState(s) % uint64(v.capacity))
	for p := 0; p < v.maxProbe; p++ {
		slot := (start + p) % v.capacity
		e := v.entries[slot]
		if !e.valid {
			return visitedEntry{}, false
		}
		if e.state == s {
			return e, true
		}
	}
	return visitedEntry{}, false
}

// bestG reports the best known g for s, ok=false if unseen.
func (v *visitedSet) bestG(s State) (float64, bool) {
	e, ok := v.lookup(s)
	if !ok {
		return 0, false
	}
	return e.g, true
}

// update claims a slot for s (or improves its existing entry) with g and
// parent, overwriting only when g is strictly lower than the existing
// best. It returns false if the probe bound is exhausted before an empty
// or matching slot is found — the insertion is silently dropped, a
// defensive bound not expected to bind in steady state.
func (v *visitedSet) update(s State, g float64, parent State, parentEdgeIdx uint32) bool {
	start := int(hashState(s) % uint64(v.capacity))
	for p := 0; p < v.maxProbe; p++ {
		slot := (start + p) % v.capacity
		e := &v.entries[slot]
		if !e.valid {
			*e = visitedEntry{valid: true, state: s, g: g, parentState: parent, parentEdgeIdx: parentEdgeIdx}
			return true
		}
		if e.state == s {
			if g < e.g {
				e.g = g
				e.parentState = parent
				e.parentEdgeIdx = parentEdgeIdx
			}
			return true
		}
	}
	return false
}
