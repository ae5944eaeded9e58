package betweenness

import "context"

// Edges computes edge betweenness of g. See EdgesContext.
func Edges(g Graph, opts ...Option) (map[EdgeKey]float64, error) {
	return EdgesContext(context.Background(), g, opts...)
}

// EdgesContext computes, for every edge, the sum over ordered pairs (s, t)
// of the fraction of shortest s–t paths that traverse it.
//
// Keys of undirected edges are ordered (From < To). Parallel edges between
// the same pair share one key and their scores are summed. Self-loops are
// reported with score 0. WithEndpoints has no effect here.
//
// Rescaling: normalized ⇒ 1/(n(n-1)) for n > 1; unnormalized undirected ⇒ 0.5;
// sampled runs are further multiplied by n/k.
//
// Validation, cancellation and complexity match NodesContext.
func EdgesContext(ctx context.Context, g Graph, opts ...Option) (map[EdgeKey]float64, error) {
	cfg, a, pivots, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}

	ceb, err := sweep(ctx, a, &cfg, pivots, len(a.slots), func(x *explorer, _ int, part []float64) {
		x.accumulateEdges(part)
	})
	if err != nil {
		return nil, err
	}

	if scale, ok := edgeScale(a.size(), cfg.Normalized, a.directed, sampleSize(&cfg)); ok {
		rescale(ceb, scale)
	}

	out := make(map[EdgeKey]float64, len(a.slots))
	for i, key := range a.slots {
		out[key] = ceb[i]
	}

	return out, nil
}
