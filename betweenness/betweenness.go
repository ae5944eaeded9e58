package betweenness

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/centrality/core"
)

// Nodes computes vertex betweenness of g. See NodesContext.
func Nodes(g Graph, opts ...Option) (map[string]float64, error) {
	return NodesContext(context.Background(), g, opts...)
}

// NodesContext computes vertex betweenness of g, returning a score for every
// vertex (or every subset vertex when WithVertexSubset is set).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Subset entries must be vertices of g (ErrUnknownVertex).
//  3. Every traversed edge weight must be positive and finite (ErrInvalidWeight).
//  4. When sampling, 1 ≤ k ≤ n (ErrInvalidSampleSize) and the selector's
//     answer must be k distinct known vertices (ErrBadPivots).
//
// Cancellation of ctx is observed between pivots; the partial result is
// discarded and ctx.Err() is returned wrapped.
//
// Complexity:
//
//   - Time:  O(k·(V + E)·log V)
//   - Space: O(V + E) per worker
func NodesContext(ctx context.Context, g Graph, opts ...Option) (map[string]float64, error) {
	cfg, a, pivots, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}

	n := a.size()
	cb, err := sweep(ctx, a, &cfg, pivots, n, func(x *explorer, s int, part []float64) {
		if cfg.Endpoints {
			x.accumulateEndpoints(s, part)
		} else {
			x.accumulate(s, part)
		}
	})
	if err != nil {
		return nil, err
	}

	if scale, ok := nodeScale(n, cfg.Normalized, a.directed, cfg.Endpoints, sampleSize(&cfg)); ok {
		rescale(cb, scale)
	}

	out := make(map[string]float64, n)
	for i, id := range a.ids {
		out[id] = cb[i]
	}

	return out, nil
}

// prepare applies options, validates g and builds the arena and pivot list.
func prepare(g Graph, opts []Option) (Options, *arena, []int, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	if isNil(g) {
		return cfg, nil, nil, ErrNilGraph
	}

	a, err := buildArena(g, &cfg)
	if err != nil {
		return cfg, nil, nil, err
	}

	pivots, err := selectPivots(g, a, &cfg)
	if err != nil {
		return cfg, nil, nil, err
	}

	return cfg, a, pivots, nil
}

// isNil catches both a nil interface and a typed nil *core.Graph.
func isNil(g Graph) bool {
	if g == nil {
		return true
	}
	cg, ok := g.(*core.Graph)

	return ok && cg == nil
}

// sampleSize returns k for sampled runs and 0 for exact ones.
func sampleSize(cfg *Options) int {
	if cfg.Sampled {
		return cfg.K
	}
	return 0
}

// sweep explores every pivot and accumulates into a vector of the given
// width. Pivots are split into cfg.Workers contiguous chunks; each chunk gets
// its own explorer and partial vector, and partials are summed in chunk order.
func sweep(
	ctx context.Context,
	a *arena,
	cfg *Options,
	pivots []int,
	width int,
	visit func(x *explorer, s int, part []float64),
) ([]float64, error) {
	chunks := splitPivots(pivots, cfg.Workers)
	parts := make([][]float64, len(chunks))

	eg, ctx := errgroup.WithContext(ctx)
	for c := range chunks {
		eg.Go(func() error {
			x := newExplorer(a, cfg.Tolerance)
			part := make([]float64, width)
			for _, s := range chunks[c] {
				if err := ctx.Err(); err != nil {
					return err
				}
				x.run(s)
				visit(x, s, part)
			}
			parts[c] = part

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("betweenness: %w", err)
	}

	total := make([]float64, width)
	for _, part := range parts {
		for i, v := range part {
			total[i] += v
		}
	}

	return total, nil
}

// splitPivots cuts pivots into at most workers contiguous, near-equal chunks.
func splitPivots(pivots []int, workers int) [][]int {
	if len(pivots) == 0 {
		return nil
	}
	if workers > len(pivots) {
		workers = len(pivots)
	}
	size := (len(pivots) + workers - 1) / workers

	chunks := make([][]int, 0, workers)
	for lo := 0; lo < len(pivots); lo += size {
		hi := min(lo+size, len(pivots))
		chunks = append(chunks, pivots[lo:hi])
	}

	return chunks
}
