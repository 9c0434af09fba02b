package frontier

import (
	"container/heap"
	"fmt"
	"math"
)

// Heap is an updatable min-heap over distinct elements of type T.
//
// The zero value is not usable; construct with New.
type Heap[T comparable] struct {
	queue  entryQueue[T]   // frontier ordered by (score, seq)
	index  map[T]*entry[T] // element → live frontier entry
	ledger map[T]float64   // element → most recently assigned score
	seq    uint64          // monotonically increasing SetScore counter
}

// entry is a frontier slot. pos is kept in sync by entryQueue.Swap/Push/Pop
// so that heap.Fix can be called without searching.
type entry[T comparable] struct {
	elem  T
	score float64
	seq   uint64
	pos   int
}

// New creates an empty Heap.
//
// Example:
//
//	h := frontier.New[string](frontier.WithCapacity(1024))
func New[T comparable](opts ...Option) *Heap[T] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Heap[T]{
		queue:  make(entryQueue[T], 0, cfg.Capacity),
		index:  make(map[T]*entry[T], cfg.Capacity),
		ledger: make(map[T]float64, cfg.Capacity),
	}
}

// SetScore queues target with the given score, or moves it if it is already queued.
// The ledger entry for target is overwritten unconditionally.
//
// Steps:
//  1. Reject NaN (ErrInvalidScore); the heap is left untouched.
//  2. Record score in the ledger.
//  3. If target is queued, update its entry in place and restore heap order with heap.Fix.
//  4. Otherwise push a fresh entry.
//
// Complexity: O(log n).
func (h *Heap[T]) SetScore(target T, score float64) error {
	if math.IsNaN(score) {
		return fmt.Errorf("%w: element %v", ErrInvalidScore, target)
	}

	h.seq++
	h.ledger[target] = score

	if e, ok := h.index[target]; ok {
		e.score = score
		e.seq = h.seq
		heap.Fix(&h.queue, e.pos)

		return nil
	}

	e := &entry[T]{elem: target, score: score, seq: h.seq}
	heap.Push(&h.queue, e)
	h.index[target] = e

	return nil
}

// Pop removes and returns the queued element with the minimum score.
// The element's ledger score is kept, so Score still reports it afterwards.
// Returns ErrEmptyHeap if nothing is queued.
//
// Complexity: O(log n).
func (h *Heap[T]) Pop() (T, error) {
	e, err := h.PopEntry()

	return e.Element, err
}

// PopEntry is Pop that also returns the score the element was queued under.
func (h *Heap[T]) PopEntry() (Entry[T], error) {
	if len(h.queue) == 0 {
		return Entry[T]{}, ErrEmptyHeap
	}
	e := heap.Pop(&h.queue).(*entry[T])
	delete(h.index, e.elem)

	return Entry[T]{Element: e.elem, Score: e.score}, nil
}

// Peek returns the minimum element and its score without removing it.
// Returns ErrEmptyHeap if nothing is queued.
//
// Complexity: O(1).
func (h *Heap[T]) Peek() (T, float64, error) {
	if len(h.queue) == 0 {
		var zero T
		return zero, 0, ErrEmptyHeap
	}
	top := h.queue[0]

	return top.elem, top.score, nil
}

// Score returns the most recently assigned score of target, whether or not
// target is still queued. Returns ErrNotFound if target was never scored.
func (h *Heap[T]) Score(target T) (float64, error) {
	s, ok := h.ledger[target]
	if !ok {
		return 0, fmt.Errorf("%w: element %v", ErrNotFound, target)
	}

	return s, nil
}

// Contains reports whether target is currently queued.
func (h *Heap[T]) Contains(target T) bool {
	_, ok := h.index[target]

	return ok
}

// Remove drops target from the frontier without touching its ledger score.
// Reports whether target was queued.
//
// Complexity: O(log n).
func (h *Heap[T]) Remove(target T) bool {
	e, ok := h.index[target]
	if !ok {
		return false
	}
	heap.Remove(&h.queue, e.pos)
	delete(h.index, target)

	return true
}

// Len returns the number of queued elements. Ledger-only elements are not counted.
func (h *Heap[T]) Len() int { return len(h.queue) }

// IsEmpty reports whether no element is queued.
func (h *Heap[T]) IsEmpty() bool { return len(h.queue) == 0 }

// LedgerLen returns the number of elements with a recorded score.
func (h *Heap[T]) LedgerLen() int { return len(h.ledger) }

// Reset empties both the frontier and the ledger, keeping allocated storage.
func (h *Heap[T]) Reset() {
	for i := range h.queue {
		h.queue[i] = nil
	}
	h.queue = h.queue[:0]
	clear(h.index)
	clear(h.ledger)
	h.seq = 0
}

// entryQueue implements heap.Interface over *entry, ordered by score then seq.
type entryQueue[T comparable] []*entry[T]

func (q entryQueue[T]) Len() int { return len(q) }

func (q entryQueue[T]) Less(i, j int) bool {
	if q[i].score != q[j].score {
		return q[i].score < q[j].score
	}

	return q[i].seq < q[j].seq
}

func (q entryQueue[T]) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].pos = i
	q[j].pos = j
}

// Push is called by heap.Push; x must be *entry[T].
func (q *entryQueue[T]) Push(x any) {
	e := x.(*entry[T])
	e.pos = len(*q)
	*q = append(*q, e)
}

// Pop is called by heap.Pop and heap.Remove; the vacated slot is cleared
// so the backing array does not retain the element.
func (q *entryQueue[T]) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.pos = -1
	*q = old[:n-1]

	return e
}
