// Package centrality is an in-memory toolkit for measuring how much traffic
// passes through the vertices and edges of a graph: shortest-path
// betweenness centrality on weighted, directed or undirected graphs.
//
// 🚀 What is in the box?
//
//	• Core primitives: thread-safe string-keyed Graph with weights and named edge attributes
//	• Builders: deterministic path, cycle, star, wheel, complete, grid and G(n,p) topologies
//	• Betweenness: exact Brandes, k-pivot sampling, endpoints, edge betweenness,
//	  vertex subsets, tie tolerance, parallel workers, context cancellation
//	• lvlath-bc: a CLI that builds a topology, scores it and prints text, JSON,
//	  YAML, TOML or Prometheus exposition
//
// Everything is organized under subpackages:
//
//	core/         — Graph, Vertex, Edge types & thread-safe primitives
//	builder/      — deterministic topology constructors
//	betweenness/  — Brandes' algorithm (node & edge variants)
//	cmd/lvlath-bc — command-line front end (internal/cli, config, report, ctxlog)
//
// Quick ASCII example:
//
//	A───B───C
//
//	betweenness.Nodes(g) ⇒ A: 0, B: 1, C: 0
//
// See the examples in each subpackage for runnable snippets.
package centrality
