// Package core provides the thread-safe in-memory Graph consumed by the
// centrality algorithms of this module.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Per-edge orientation overrides in “mixed” graphs (WithMixedEdges + WithEdgeDirected)
//   - Weighted vs. unweighted edges (WithWeighted); weights are float64
//   - Named numeric edge attributes (WithEdgeAttr), read back via Edge.Attr
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Attributes and weights:
//
//	On a weighted graph AddEdge mirrors the weight into Attrs[WeightAttr],
//	so attribute-driven consumers (betweenness.WithWeight("weight")) and
//	field-driven consumers (Edge.Weight) observe the same value.
//	Unweighted graphs carry no WeightAttr entry; consumers treat a missing
//	attribute as weight 1.
//
// Determinism:
//
//	Vertices(), Edges() and Neighbors() return results sorted by ID, so any
//	algorithm iterating them in order is reproducible run to run.
//
// Views:
//
//	InducedSubgraph(g, keep) returns a fresh graph restricted to a vertex set.
//
// Errors:
//
//	ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound, ErrBadWeight,
//	ErrLoopNotAllowed, ErrMultiEdgeNotAllowed, ErrMixedEdgesNotAllowed.
package core
