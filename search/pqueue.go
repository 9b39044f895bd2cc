package search

import "container/heap"

// DefaultHeapCapacity is the fixed ceiling on a frontier's priority queue.
// Pushes beyond capacity are silently dropped — a defensive bound not
// expected to bind in steady state.
const DefaultHeapCapacity = 1_000_000

// heapEntry is one priority-queue entry: the search state, its tentative
// cost-so-far (g) and estimated total cost (f), the accumulated physical
// distance along the path, and the parent pointer used for reconstruction.
type heapEntry struct {
	F, G, Dist    float64
	State         State
	ParentState   State
	ParentEdgeIdx uint32
}

// pqueue is a binary min-heap of heapEntry ordered by F, with a fixed
// capacity. It implements container/heap.Interface; push/pop are exposed
// through the lower-case push/pop wrappers which enforce the capacity.
type pqueue struct {
	items    []heapEntry
	capacity int
}

func newPQueue(capacity int) *pqueue {
	return &pqueue{capacity: capacity}
}

func (q *pqueue) Len() int            { return len(q.items) }
func (q *pqueue) Less(i, j int) bool  { return q.items[i].F < q.items[j].F }
func (q *pqueue) Swap(i, j int)       { q.items[i], q.items[j] = q.items[j], q.items[i] }
func (q *pqueue) Push(x interface{})  { q.items = append(q.items, x.(heapEntry)) }
func (q *pqueue) Pop() interface{} {
	old := q.items
	n := len(old)
	it := old[n-1]
	q.items = old[:n-1]
	return it
}

// push adds e, returning false without modifying the queue if it is already
// at capacity.
func (q *pqueue) push(e heapEntry) bool {
	if len(q.items) >= q.capacity {
		return false
	}
	heap.Push(q, e)
	return true
}

// pop removes and returns the entry with the smallest F, ok=false if empty.
func (q *pqueue) pop() (heapEntry, bool) {
	if len(q.items) == 0 {
		return heapEntry{}, false
	}
	return heap.Pop(q).(heapEntry), true
}

// peekF reports the smallest F currently queued, ok=false if empty.
func (q *pqueue) peekF() (float64, bool) {
	if len(q.items) == 0 {
		return 0, false
	}
	return q.items[0].F, true
}
