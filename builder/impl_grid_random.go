// SPDX-License-Identifier: MIT
// Package: centrality/builder
//
// impl_grid_random.go - Grid and RandomSparse constructors.
//
// Grid uses the fixed coordinate ID scheme "r,c" (row-major) regardless of idFn.
// RandomSparse draws each unordered pair (i<j) with probability p from cfg.rng
// in lexicographic pair order, so a fixed seed yields a fixed graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/centrality/core"
)

// Canonical constructor names used to prefix errors.
const (
	MethodGrid         = "Grid"
	MethodRandomSparse = "RandomSparse"
)

const (
	minGridDim         = 1
	minRandomNodes     = 1
	gridIDFmt          = "%d,%d"
	probabilityFloor   = 0.0
	probabilityCeiling = 1.0
)

// GridVertexID returns the ID Grid assigns to cell (r, c).
func GridVertexID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid builds a rows×cols 4-neighborhood grid: each cell links to its right and bottom neighbor.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		var r, c int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				id := GridVertexID(r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", MethodGrid, id, err)
				}
			}
		}

		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				u := GridVertexID(r, c)
				if c+1 < cols {
					if err := addEdge(g, cfg, MethodGrid, u, GridVertexID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, MethodGrid, u, GridVertexID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// RandomSparse builds an Erdős–Rényi G(n, p) graph. Requires WithSeed/WithRand.
// Isolated vertices are kept, so the result may be disconnected.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomSparse, n, minRandomNodes, ErrTooFewVertices)
		}
		if p < probabilityFloor || p > probabilityCeiling {
			return fmt.Errorf("%s: p=%g: %w", MethodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}
		ids, err := addVertices(g, cfg, MethodRandomSparse, n, 0)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err = addEdge(g, cfg, MethodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
