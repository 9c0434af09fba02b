// Package core provides the thread-safe in-memory Graph that the search
// drivers in this module (dijkstra, navigation) walk.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted); weights are float64 so that
//     geometric step lengths (1, √2, …) can be stored without rounding
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge insertion via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Monotonic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Deterministic iteration:
//
//	Vertices() is sorted lexicographically, Edges() and Neighbors() by edge ID
//	(numeric order of the "eN" counter). Search drivers rely on this to make
//	tie-breaking reproducible between runs.
//
// Core Methods:
//
//	AddVertex(id string) error                                   // O(1)
//	HasVertex(id string) bool                                    // O(1)
//	Vertices() []string                                          // O(V·log V)
//	VertexCount() int                                            // O(1)
//	AddEdge(from, to string, weight float64) (edgeID string, err error) // O(1) amortized
//	Edges() []*Edge                                              // O(E·log E)
//	EdgeCount() int                                              // O(1)
//	Neighbors(id string) ([]*Edge, error)                        // O(d·log d)
//	NeighborIDs(id string) ([]string, error)                     // O(d·log d), unique
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrBadWeight           – non-zero weight on unweighted graph, or NaN weight
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
