package betweenness

// accumulate adds the dependencies of source s to cb, walking x.order in
// reverse (non-increasing distance). The source itself receives nothing.
//
//	δ[v] += σ[v]/σ[w] · (1 + δ[w])   for every predecessor v of w
//	cb[w] += δ[w]                    for w ≠ s
func (x *explorer) accumulate(s int, cb []float64) {
	var (
		i, w  int
		coeff float64
	)
	for i = len(x.order) - 1; i >= 0; i-- {
		w = x.order[i]
		coeff = (1 + x.delta[w]) / x.sigma[w]
		for _, p := range x.pred[w] {
			x.delta[p.from] += x.sigma[p.from] * coeff
		}
		if w != s {
			cb[w] += x.delta[w]
		}
	}
}

// accumulateEndpoints is accumulate with path endpoints counted: the source
// gains one per reachable target and every target gains one for its own path.
func (x *explorer) accumulateEndpoints(s int, cb []float64) {
	cb[s] += float64(len(x.order) - 1)

	var (
		i, w  int
		coeff float64
	)
	for i = len(x.order) - 1; i >= 0; i-- {
		w = x.order[i]
		coeff = (1 + x.delta[w]) / x.sigma[w]
		for _, p := range x.pred[w] {
			x.delta[p.from] += x.sigma[p.from] * coeff
		}
		if w != s {
			cb[w] += x.delta[w] + 1
		}
	}
}

// accumulateEdges adds the edge dependencies of the current source to ceb,
// indexed by arena edge slot.
//
//	c = σ[v]/σ[w] · (1 + δ[w]);  ceb[(v,w)] += c;  δ[v] += c
func (x *explorer) accumulateEdges(ceb []float64) {
	var (
		i, w     int
		coeff, c float64
	)
	for i = len(x.order) - 1; i >= 0; i-- {
		w = x.order[i]
		coeff = (1 + x.delta[w]) / x.sigma[w]
		for _, p := range x.pred[w] {
			c = x.sigma[p.from] * coeff
			ceb[p.slot] += c
			x.delta[p.from] += c
		}
	}
}
