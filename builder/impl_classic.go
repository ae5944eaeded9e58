// SPDX-License-Identifier: MIT
// Package: centrality/builder
//
// impl_classic.go - Path, Cycle, Star, Wheel and Complete constructors.
//
// Contract (all constructors):
//   - Vertices are added via cfg.idFn in ascending index order.
//   - Edges are emitted in a stable, documented order.
//   - Weight policy: if g.Weighted() then cfg.weightFn(cfg.rng) else 0.
//   - Directed graphs receive both arcs per edge unless WithOneWay is set.

package builder

import (
	"fmt"

	"github.com/katalvlaran/centrality/core"
)

// Canonical constructor names used to prefix errors.
const (
	MethodPath     = "Path"
	MethodCycle    = "Cycle"
	MethodStar     = "Star"
	MethodWheel    = "Wheel"
	MethodComplete = "Complete"
)

// CenterVertexID is the fixed hub ID of Star and Wheel.
const CenterVertexID = "Center"

const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 1
)

// Path builds a simple path P_n: id(0)—id(1)—…—id(n-1), n ≥ 2.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, MethodPath, n, 0)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(g, cfg, MethodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds a simple cycle C_n, n ≥ 3: the path plus the closing edge id(n-1)—id(0).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, MethodCycle, n, 0)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addEdge(g, cfg, MethodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a star with hub CenterVertexID and n-1 leaves id(1)…id(n-1), n ≥ 2.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", MethodStar, CenterVertexID, err)
		}
		leaves, err := addVertices(g, cfg, MethodStar, n-1, 1)
		if err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err = addEdge(g, cfg, MethodStar, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel builds W_n = C_{n-1} over id(1)…id(n-1) plus spokes from CenterVertexID, n ≥ 4.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", MethodWheel, CenterVertexID, err)
		}
		rim, err := addVertices(g, cfg, MethodWheel, n-1, 1)
		if err != nil {
			return err
		}
		m := len(rim)
		for i := 0; i < m; i++ {
			if err = addEdge(g, cfg, MethodWheel, rim[i], rim[(i+1)%m]); err != nil {
				return err
			}
		}
		for _, v := range rim {
			if err = addEdge(g, cfg, MethodWheel, CenterVertexID, v); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n (n ≥ 1) emitting edges (i,j) for i<j in lexicographic index order.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, MethodComplete, n, 0)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(g, cfg, MethodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
