package betweenness

import (
	"fmt"
	"math/rand"
)

// defaultPivotSeed is used when callers pass seed == 0.
const defaultPivotSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ defaultPivotSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultPivotSeed
	}
	return rand.New(rand.NewSource(seed))
}

// RandomPivots returns the default selector: k vertices drawn uniformly
// without replacement by a partial Fisher–Yates shuffle seeded with seed.
// The same seed and vertex list always yield the same pivots.
//
// Complexity: O(V) time and space.
func RandomPivots(seed int64) PivotSelector {
	return func(_ Graph, vertices []string, k int) ([]string, error) {
		n := len(vertices)
		if k <= 0 || k > n {
			return nil, fmt.Errorf("%w: k=%d, n=%d", ErrInvalidSampleSize, k, n)
		}

		pool := append([]string(nil), vertices...)
		r := rngFromSeed(seed)
		var i, j int
		for i = 0; i < k; i++ {
			j = i + r.Intn(n-i)
			pool[i], pool[j] = pool[j], pool[i]
		}

		return pool[:k], nil
	}
}

// selectPivots returns the sources of a run: every arena vertex when exact,
// otherwise the selector's answer validated and mapped to dense indices.
func selectPivots(g Graph, a *arena, cfg *Options) ([]int, error) {
	n := a.size()
	if !cfg.Sampled {
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}
		return all, nil
	}
	if cfg.K <= 0 || cfg.K > n {
		return nil, fmt.Errorf("%w: k=%d, n=%d", ErrInvalidSampleSize, cfg.K, n)
	}

	sel := cfg.Selector
	if sel == nil {
		sel = RandomPivots(cfg.Seed)
	}
	chosen, err := sel(g, append([]string(nil), a.ids...), cfg.K)
	if err != nil {
		return nil, fmt.Errorf("betweenness: pivot selection: %w", err)
	}
	if len(chosen) != cfg.K {
		return nil, fmt.Errorf("%w: got %d pivots, want %d", ErrBadPivots, len(chosen), cfg.K)
	}

	out := make([]int, 0, cfg.K)
	seen := make(map[int]struct{}, cfg.K)
	for _, id := range chosen {
		idx, ok := a.index[id]
		if !ok {
			return nil, fmt.Errorf("%w: unknown vertex %q", ErrBadPivots, id)
		}
		if _, dup := seen[idx]; dup {
			return nil, fmt.Errorf("%w: duplicate vertex %q", ErrBadPivots, id)
		}
		seen[idx] = struct{}{}
		out = append(out, idx)
	}

	return out, nil
}
