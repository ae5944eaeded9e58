// SPDX-License-Identifier: MIT
// Package: centrality/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors wrapped with context.

// Package builder assembles deterministic fixture topologies (paths, stars,
// cycles, complete graphs, wheels, grids and seeded random graphs) on top of
// core.Graph. Tests and the lvlath-bc CLI use it as a synthetic input source.
package builder

import (
	"fmt"

	"github.com/katalvlaran/centrality/core"
)

// Constructor applies a deterministic graph mutation using the resolved builderConfig.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w".
//
// Complexity: Σ cost of each constructor; wrapper overhead O(K).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addEdge inserts u→v with the configured weight policy and, for directed
// graphs, the reverse arc v→u with the same weight so topologies stay symmetric.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	var w float64
	if g.Weighted() {
		w = cfg.weightFn(cfg.rng)
	}
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}
	if g.Directed() && cfg.symmetric {
		if _, err := g.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, v, u, w, err)
		}
	}

	return nil
}

// addVertices inserts ids[i] = cfg.idFn(i+offset) for i in [0,n) and returns them.
func addVertices(g *core.Graph, cfg builderConfig, method string, n, offset int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i + offset)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}
