package betweenness

// nodeScale selects the multiplier applied to node betweenness.
// ok is false when no rescaling applies.
//
// Normalized:
//
//	endpoints:  1/(n(n-1))      for n ≥ 2
//	otherwise:  1/((n-1)(n-2))  for n > 2
//
// Unnormalized: 0.5 for undirected graphs (each pair was counted from both ends).
//
// When k pivots were sampled, a selected scale is further multiplied by n/k.
func nodeScale(n int, normalized, directed, endpoints bool, k int) (scale float64, ok bool) {
	switch {
	case normalized && endpoints:
		if n < 2 {
			return 0, false
		}
		scale = 1 / (float64(n) * float64(n-1))
	case normalized:
		if n <= 2 {
			return 0, false
		}
		scale = 1 / (float64(n-1) * float64(n-2))
	case !directed:
		scale = 0.5
	default:
		return 0, false
	}

	return sampleFactor(scale, n, k), true
}

// edgeScale selects the multiplier applied to edge betweenness.
//
// Normalized: 1/(n(n-1)) for n > 1. Unnormalized undirected: 0.5.
func edgeScale(n int, normalized, directed bool, k int) (scale float64, ok bool) {
	switch {
	case normalized:
		if n <= 1 {
			return 0, false
		}
		scale = 1 / (float64(n) * float64(n-1))
	case !directed:
		scale = 0.5
	default:
		return 0, false
	}

	return sampleFactor(scale, n, k), true
}

// sampleFactor extrapolates a k-pivot estimate to all n sources. k == 0 means exact.
func sampleFactor(scale float64, n, k int) float64 {
	if k > 0 {
		scale *= float64(n) / float64(k)
	}
	return scale
}

// rescale multiplies every value in place.
func rescale(values []float64, scale float64) {
	for i := range values {
		values[i] *= scale
	}
}
