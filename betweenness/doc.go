// Package betweenness computes shortest-path betweenness centrality of the
// vertices (and edges) of weighted, directed or undirected graphs.
//
// Overview:
//
// The betweenness of v is the sum, over ordered pairs (s, t) with s ≠ v ≠ t,
// of the fraction of shortest s–t paths that pass through v. The package
// implements Brandes' algorithm: one Dijkstra-style exploration per source
// that counts shortest paths (σ) and records predecessors, followed by a
// reverse sweep that accumulates pair dependencies (δ).
//
// Entry points:
//
//   - Nodes / NodesContext   vertex betweenness, map[vertexID]score.
//   - Edges / EdgesContext   edge betweenness, map[EdgeKey]score.
//   - RandomPivots           default pivot selector for sampled estimates.
//
// Weights:
//
// Every traversed edge weight must be strictly positive and finite. Weights
// are resolved once, before any exploration, and a bad weight fails the whole
// call with ErrInvalidWeight. Unweighted runs give every edge weight 1.
//
// Ties:
//
// Two path lengths are equal when |a-b| ≤ Tolerance (default 0). Integer or
// otherwise exactly representable weights tie exactly; use WithTieTolerance
// when lengths are sums of inexact decimals such as 0.1 + 0.2.
//
// Sampling:
//
// WithSamples(k) replaces the all-sources sweep by k pivots chosen by the
// configured PivotSelector, then extrapolates by n/k. k == n with the default
// selector reproduces the exact result up to summation order.
//
// Concurrency:
//
// WithWorkers(n) splits the pivots into n contiguous chunks, each explored by
// its own goroutine with private scratch state. Partial vectors are summed in
// chunk order, so a fixed worker count yields bit-identical results.
// The input graph must not be mutated during a call.
//
// Complexity:
//
//   - Time:  O(k·(V + E)·log V) with k = number of pivots (V when exact).
//   - Space: O(V + E) per worker.
//
// Example:
//
//	g := core.NewGraph(core.WithWeighted())
//	_, _ = g.AddEdge("a", "b", 1)
//	_, _ = g.AddEdge("b", "c", 1)
//	bc, err := betweenness.Nodes(g)
//	// bc["b"] == 1 (normalized, n = 3)
package betweenness
