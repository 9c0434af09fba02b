// Package dijkstra provides Dijkstra's single-source shortest-path algorithm on
// core.Graph with non-negative float64 edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a source vertex to every
//     reachable vertex in O((V + E) log V).
//   - The frontier is a frontier.Heap[string] keyed by vertex ID. When a shorter
//     path to a queued vertex is found its key is lowered in place, so the queue
//     never holds stale duplicates and never exceeds V entries.
//   - Supports path reconstruction (WithReturnPath + PathTo), distance caps,
//     “impassable” edge thresholds, early exit at a target and context cancellation.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - ReturnPath: returns a predecessor map; PathTo turns it into a vertex sequence.
//   - MaxDistance: vertices farther than the cap are left at +Inf.
//   - InfEdgeThreshold: any edge with weight ≥ threshold is treated as a wall.
//   - Target: stops once the target is finalized (point-to-point queries).
//   - Ctx: polled before every extraction; a cancelled search returns ctx.Err().
//   - Undirected edges are followed in both directions; directed edges only forward.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V); each vertex is popped at most once and each
//     relaxation is one O(log V) insert or decrease-key.
//   - Space: O(V) for distances, predecessors and the frontier.
//
// API reference:
//
//	func Dijkstra(
//	    g *core.Graph,
//	    opts ...Option,
//	) (dist map[string]float64, prev map[string]string, err error)
//
//	func PathTo(prev map[string]string, source, target string) ([]string, error)
//
// Thread safety:
//
//   - core.Graph is safe for concurrent readers, so several Dijkstra runs may share
//     one graph. Each run owns its frontier; nothing is shared between runs.
package dijkstra
