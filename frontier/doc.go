// Package frontier provides an updatable min-heap: a priority queue keyed by
// caller-supplied elements whose scores can be changed after insertion.
//
// Overview:
//
//   - Heap[T] orders a set of distinct elements ("the frontier") by ascending score.
//   - SetScore inserts an element or moves an element that is already queued to its
//     new position (decrease-key and increase-key), in O(log n).
//   - Pop removes the element with the minimum score, in O(log n).
//   - Every score ever assigned is also written to a ledger that outlives frontier
//     membership: Score(x) still answers after x has been popped, until SetScore(x, ·)
//     overwrites it.
//
// This is the queue that shortest-path searches (Dijkstra, A*, waypoint planners)
// expect: a driver discovers or relaxes a node with SetScore, finalizes the next node
// with Pop, stops when IsEmpty reports true and reads best-known distances with Score.
//
// Implementation:
//
//   - An indexed binary heap built on container/heap. Each queued entry remembers its
//     slice index, and a map[T]*entry locates it in O(1), so an update is a single
//     heap.Fix instead of a linear scan.
//   - Equal scores are ordered by the sequence in which SetScore was called (earlier
//     first). Callers should not rely on this; only the non-decreasing order of popped
//     scores is part of the contract.
//
// Complexity:
//
//   - SetScore: O(log n)     Pop: O(log n)     Peek, Score, Len, Contains: O(1)
//   - Space:    O(n + m), n = frontier size, m = ledger size (elements ever scored).
//
// Error handling (sentinel errors, match with errors.Is):
//
//   - ErrEmptyHeap:    Pop or Peek on an empty frontier.
//   - ErrNotFound:     Score for an element that was never scored.
//   - ErrInvalidScore: SetScore with NaN. ±Inf are valid scores.
//   - ErrBadCapacity:  WithCapacity with a negative capacity (panics, like other
//     option constructors in this module).
//
// Lifetime:
//
//   - The ledger only grows. Create one Heap per search run and discard it afterwards,
//     or call Reset to reuse the allocated storage.
//
// Thread safety:
//
//   - A Heap is not safe for concurrent use. If several workers share one frontier
//     they must serialize access themselves; the usual pattern is one Heap per worker.
//   - An element's equality must not change while it is queued.
package frontier
