package betweenness

import (
	"container/heap"
	"math"
)

// link is one shortest-path predecessor: the vertex and the edge slot used.
type link struct {
	from int
	slot int
}

// explorer runs the single-source phase of Brandes' algorithm: a Dijkstra
// variant that, besides distances, records every shortest-path predecessor
// and counts shortest paths. One explorer is owned by one goroutine and is
// reused across pivots; reset only touches vertices reached by the last run.
type explorer struct {
	a   *arena
	tol float64

	order   []int     // vertices in non-decreasing distance order (finalization order)
	pred    [][]link  // shortest-path predecessors per vertex
	sigma   []float64 // number of shortest paths from the source
	dist    []float64 // final distance, valid once final[v]
	best    []float64 // best tentative distance, valid once seen[v]
	seen    []bool    // a tentative distance exists
	final   []bool    // the vertex has been popped and finalized
	delta   []float64 // dependency scratch for accumulation
	touched []int     // every vertex with seen == true

	pq    entryPQ
	seq   uint64
	queue []int // FIFO for unit-weight runs
}

// newExplorer allocates per-vertex state sized to the arena.
func newExplorer(a *arena, tol float64) *explorer {
	n := a.size()
	return &explorer{
		a:       a,
		tol:     tol,
		order:   make([]int, 0, n),
		pred:    make([][]link, n),
		sigma:   make([]float64, n),
		dist:    make([]float64, n),
		best:    make([]float64, n),
		seen:    make([]bool, n),
		final:   make([]bool, n),
		delta:   make([]float64, n),
		touched: make([]int, 0, n),
		pq:      make(entryPQ, 0, n),
		queue:   make([]int, 0, n),
	}
}

// reset clears the state left by the previous source.
func (x *explorer) reset() {
	for _, v := range x.touched {
		x.pred[v] = x.pred[v][:0]
		x.sigma[v] = 0
		x.dist[v] = 0
		x.best[v] = 0
		x.seen[v] = false
		x.final[v] = false
		x.delta[v] = 0
	}
	x.touched = x.touched[:0]
	x.order = x.order[:0]
	x.pq = x.pq[:0]
	x.seq = 0
	x.queue = x.queue[:0]
}

// run explores from source s. Afterwards order lists every vertex reachable
// from s in non-decreasing distance, sigma[v] counts shortest s–v paths and
// pred[v] lists their last hops (with multiplicity for parallel edges).
//
// Equal-distance heap entries pop in insertion order (seq), so the whole run
// is deterministic for a fixed arena.
//
// Unit-weight arenas are explored breadth-first (see runUnit); the result is
// identical, only the priority queue is skipped. A tolerance of one or more
// merges distinct hop counts and forces the weighted path.
//
// Complexity: O((V + E) log E) time with lazy deletion, O(V + E) space.
func (x *explorer) run(s int) {
	if x.a.unit && x.tol < 1 {
		x.runUnit(s)
		return
	}
	x.runWeighted(s)
}

// runWeighted is the Dijkstra variant used for arbitrary positive weights.
func (x *explorer) runWeighted(s int) {
	x.reset()

	x.seen[s] = true
	x.touched = append(x.touched, s)
	heap.Push(&x.pq, entry{dist: 0, seq: x.nextSeq(), pred: link{from: s, slot: -1}, node: s})

	var (
		it   entry
		v, w int
		cand float64
	)
	for x.pq.Len() > 0 {
		it = heap.Pop(&x.pq).(entry)
		v = it.node
		if x.final[v] {
			continue // stale entry
		}

		// The seed counts as one path. Every other vertex inherits the paths
		// of the predecessor that discovered it; tied predecessors were added
		// during relaxation.
		if v == s {
			x.sigma[s] = 1
		} else {
			x.sigma[v] += x.sigma[it.pred.from]
		}
		x.final[v] = true
		x.dist[v] = it.dist
		x.order = append(x.order, v)

		for _, e := range x.a.adj[v] {
			w = e.to
			if x.final[w] {
				continue
			}
			cand = it.dist + e.w
			switch {
			case x.seen[w] && math.Abs(cand-x.best[w]) <= x.tol:
				x.sigma[w] += x.sigma[v]
				x.pred[w] = append(x.pred[w], link{from: v, slot: e.slot})
			case !x.seen[w] || cand < x.best[w]:
				if !x.seen[w] {
					x.seen[w] = true
					x.touched = append(x.touched, w)
				}
				x.best[w] = cand
				x.sigma[w] = 0
				x.pred[w] = append(x.pred[w][:0], link{from: v, slot: e.slot})
				heap.Push(&x.pq, entry{dist: cand, seq: x.nextSeq(), pred: link{from: v, slot: e.slot}, node: w})
			}
		}
	}
}

// runUnit is the breadth-first variant for arenas where every arc weighs 1.
// Vertices are finalized in FIFO order, which equals the (dist, seq) pop
// order of runWeighted, so order, sigma and pred come out the same.
//
// Complexity: O(V + E).
func (x *explorer) runUnit(s int) {
	x.reset()

	x.seen[s] = true
	x.final[s] = true
	x.sigma[s] = 1
	x.touched = append(x.touched, s)
	x.queue = append(x.queue, s)

	var v, w int
	for head := 0; head < len(x.queue); head++ {
		v = x.queue[head]
		x.order = append(x.order, v)
		for _, e := range x.a.adj[v] {
			w = e.to
			if !x.seen[w] {
				x.seen[w] = true
				x.final[w] = true
				x.dist[w] = x.dist[v] + 1
				x.touched = append(x.touched, w)
				x.queue = append(x.queue, w)
			}
			if x.dist[w] == x.dist[v]+1 {
				x.sigma[w] += x.sigma[v]
				x.pred[w] = append(x.pred[w], link{from: v, slot: e.slot})
			}
		}
	}
}

func (x *explorer) nextSeq() uint64 {
	x.seq++
	return x.seq
}

// entry is a heap item: a tentative distance for node, discovered via pred.
type entry struct {
	dist float64
	seq  uint64
	pred link
	node int
}

// entryPQ is a min-heap of entries ordered by (dist, seq).
// Superseded entries stay in the heap and are skipped when popped.
type entryPQ []entry

func (pq entryPQ) Len() int { return len(pq) }

func (pq entryPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
