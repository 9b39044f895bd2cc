package search

import (
	"github.com/juhonkan/cycloroute/costmodel"
	"github.com/juhonkan/cycloroute/geo"
	"github.com/juhonkan/cycloroute/tile"
)

// Searcher runs bidirectional A* queries against a tile.Store using a
// costmodel.Model. It holds no per-query state; Route allocates a fresh
// pair of frontiers for each call, so the heavy buffers (heaps and visited
// tables) are owned exclusively by the query that allocates them and
// released when it returns.
type Searcher struct {
	store *tile.Store
	model *costmodel.Model

	heapCapacity    int
	visitedCapacity int
	maxProbe        int
	maxPath         int
}

// New builds a Searcher over store using model for edge costs.
func New(store *tile.Store, model *costmodel.Model, opts ...Option) *Searcher {
	s := &Searcher{
		store:           store,
		model:           model,
		heapCapacity:    DefaultHeapCapacity,
		visitedCapacity: DefaultVisitedCapacity,
		maxProbe:        DefaultMaxProbe,
		maxPath:         defaultMaxPath,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result is a found route: the sequence of states from start to goal and
// its total cost (not physical distance — see the summary package for
// per-category distances).
type Result struct {
	Path      []State
	TotalCost float64
}

// frontier is one direction's independent search: its own heap, its own
// visited table, and the coordinate it steers its heuristic towards.
type frontier struct {
	heap      *pqueue
	visited   *visitedSet
	targetLat float64
	targetLon float64
}

func newFrontier(heapCap, visitedCap, maxProbe int, targetLat, targetLon float64) *frontier {
	return &frontier{
		heap:      newPQueue(heapCap),
		visited:   newVisitedSet(visitedCap, maxProbe),
		targetLat: targetLat,
		targetLon: targetLon,
	}
}

// Route searches for the least-cost path between start and goal. Their
// coordinates are supplied alongside the states because the heuristic and
// iteration cap both need geodesic distance, and callers (the router
// package) already hold the query coordinates the states were snapped from.
// It returns ErrInvalidStart or ErrInvalidGoal if that state's tile cannot
// be loaded or its node id is out of range.
func (s *Searcher) Route(start, goal State, startLat, startLon, goalLat, goalLon float64) (Result, error) {
	if t, ok := s.store.Load(start.TileID); !ok || start.NodeID >= uint32(len(t.Nodes)) {
		return Result{}, ErrInvalidStart
	}
	if t, ok := s.store.Load(goal.TileID); !ok || goal.NodeID >= uint32(len(t.Nodes)) {
		return Result{}, ErrInvalidGoal
	}

	if start == goal {
		return Result{Path: []State{start}, TotalCost: 0}, nil
	}

	fwd := newFrontier(s.heapCapacity, s.visitedCapacity, s.maxProbe, goalLat, goalLon)
	bwd := newFrontier(s.heapCapacity, s.visitedCapacity, s.maxProbe, startLat, startLon)

	maxSpeed := 2.0 * s.model.DefaultSpeedKmh()
	initDist := geo.Haversine(startLat, startLon, goalLat, goalLon)
	h0 := initDist * geo.SpeedFactor(maxSpeed)

	fwd.visited.update(start, 0, start, 0)
	fwd.heap.push(heapEntry{F: h0, State: start, ParentState: start})

	bwd.visited.update(goal, 0, goal, 0)
	bwd.heap.push(heapEntry{F: h0, State: goal, ParentState: goal})

	iterCap := iterationCap(initDist)

	bestTotal := 0.0
	haveMeeting := false
	var meeting State

	for iters := 0; iters < iterCap; {
		if fwd.heap.Len() == 0 && bwd.heap.Len() == 0 {
			break
		}

		if fwd.heap.Len() > 0 {
			iters++
			if state, total, ok := s.step(fwd, bwd, maxSpeed); ok && (!haveMeeting || total < bestTotal) {
				bestTotal, meeting, haveMeeting = total, state, true
			}
		}

		if bwd.heap.Len() > 0 {
			iters++
			if state, total, ok := s.step(bwd, fwd, maxSpeed); ok && (!haveMeeting || total < bestTotal) {
				bestTotal, meeting, haveMeeting = total, state, true
			}
		}

		if haveMeeting {
			fMin, fOK := fwd.heap.peekF()
			bMin, bOK := bwd.heap.peekF()
			if !fOK || !bOK || fMin+bMin >= bestTotal {
				break
			}
		}
	}

	if !haveMeeting {
		return Result{}, ErrNoPath
	}

	path := reconstructPath(fwd, bwd, meeting, s.maxPath)
	return Result{Path: path, TotalCost: bestTotal}, nil
}

// step pops own's best entry, skips it if stale, checks for a meeting with
// opp's visited set, expands it, and reports any meeting-point candidate
// found (ok=false if the pop was empty or stale, or no meeting occurred).
func (s *Searcher) step(own, opp *frontier, maxSpeed float64) (State, float64, bool) {
	e, ok := own.heap.pop()
	if !ok {
		return State{}, 0, false
	}

	bestG, hasBest := own.visited.bestG(e.State)
	if hasBest && e.G > bestG {
		return State{}, 0, false
	}

	var meetingState State
	var meetingTotal float64
	foundMeeting := false
	if oppEntry, ok := opp.visited.lookup(e.State); ok {
		meetingState = e.State
		meetingTotal = e.G + oppEntry.g
		foundMeeting = true
	}

	s.expand(own, e, maxSpeed)

	return meetingState, meetingTotal, foundMeeting
}

// expand loads e.State's tile/node and pushes every admissible outgoing
// edge onto own's heap, updating own's visited set.
func (s *Searcher) expand(own *frontier, e heapEntry, maxSpeed float64) {
	t, ok := s.store.Load(e.State.TileID)
	if !ok || e.State.NodeID >= uint32(len(t.Nodes)) {
		return
	}

	node := t.Nodes[e.State.NodeID]
	worstSurface := s.model.WorstAllowedSurface()

	for ei := node.EdgeIndex; ei < node.EdgeIndex+node.EdgeCount && ei < t.EdgeCount; ei++ {
		ee, ok := t.GetEdgeEnd(ei)
		if !ok {
			continue
		}
		if ee.EndLevel != uint8(geo.Level2) {
			continue
		}
		if !ee.HasBicycle && !ee.HasPedestrian {
			continue
		}

		ed, ok := t.GetEdgeDetails(ei)
		if !ok {
			continue
		}
		if ed.Surface > worstSurface {
			continue
		}

		cost := s.model.Cost(ee, ed)
		if !ee.HasBicycle && ee.HasPedestrian {
			cost *= s.model.PushingFactor()
		}

		newG := e.G + cost
		neighbor := State{TileID: ee.EndTileID, NodeID: ee.EndNodeID}

		if bestG, ok := own.visited.bestG(neighbor); ok && newG >= bestG {
			continue
		}

		nt, ok := s.store.Load(neighbor.TileID)
		if !ok || neighbor.NodeID >= uint32(len(nt.Nodes)) {
			continue
		}
		nn := nt.Nodes[neighbor.NodeID]

		h := geo.Haversine(nn.Lat, nn.Lon, own.targetLat, own.targetLon) * geo.SpeedFactor(maxSpeed)

		own.heap.push(heapEntry{
			F:             newG + h,
			G:             newG,
			Dist:          e.Dist + float64(ed.LengthMeters),
			State:         neighbor,
			ParentState:   e.State,
			ParentEdgeIdx: ei,
		})
		own.visited.update(neighbor, newG, e.State, ei)
	}
}

// iterationCap scales with the initial straight-line distance: 30,000
// iterations per km, clamped to [1e6, 6e6].
func iterationCap(initDistMeters float64) int {
	n := int(initDistMeters / 1000.0 * itersPerKm)
	switch {
	case n < minIterCap:
		n = minIterCap
	case n > maxIterCap:
		n = maxIterCap
	}
	return n
}

// reconstructPath walks fwd's parents from meeting back to its root,
// reverses that, then walks bwd's parents from meeting's backward parent
// forward to its root, and concatenates the two halves.
func reconstructPath(fwd, bwd *frontier, meeting State, maxPath int) []State {
	fwdHalf := walkToRoot(fwd, meeting, maxPath)
	reverseStates(fwdHalf)

	var bwdHalf []State
	if e, ok := bwd.visited.lookup(meeting); ok && e.parentState != meeting {
		bwdHalf = walkToRoot(bwd, e.parentState, maxPath)
	}

	return append(fwdHalf, bwdHalf...)
}

// walkToRoot follows a frontier's parent chain starting at from (inclusive)
// until it reaches a root entry (parentState == state) or maxPath states
// have been collected.
func walkToRoot(f *frontier, from State, maxPath int) []State {
	path := make([]State, 0, 64)
	cur := from
	for i := 0; i < maxPath; i++ {
		path = append(path, cur)
		e, ok := f.visited.lookup(cur)
		if !ok || e.parentState == cur {
			break
		}
		cur = e.parentState
	}
	return path
}

func reverseStates(s []State) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
