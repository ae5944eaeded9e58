package betweenness

import (
	"fmt"
	"math"
	"sort"
)

// arc is one traversable direction of an edge in the arena.
type arc struct {
	to   int     // dense index of the head vertex
	w    float64 // validated, strictly positive weight
	slot int     // edge-betweenness slot; both directions of an undirected edge share it
}

// arena is a dense, read-only snapshot of the graph taken once per run.
// Workers share it without locking.
type arena struct {
	ids      []string       // dense index → vertex ID
	index    map[string]int // vertex ID → dense index
	adj      [][]arc        // outgoing arcs per vertex
	directed bool           // orientation of the source graph
	unit     bool           // every arc weighs exactly 1 (breadth-first exploration suffices)
	slots    []EdgeKey      // slot → exported edge key
	pairSlot map[[2]int]int // (v, w) → slot, for edge accumulation
}

// buildArena indexes the vertices (or the subset) of g and resolves every
// traversable edge weight through cfg. It fails fast with ErrInvalidWeight
// on the first edge that is not strictly positive and finite.
//
// Self-loops never lie on a shortest path; they are recorded as zero-valued
// edge slots but never relaxed. Edges leaving the subset are dropped.
//
// Complexity: O(V + E) map operations plus the cost of g.Neighbors.
func buildArena(g Graph, cfg *Options) (*arena, error) {
	ids, err := arenaVertices(g, cfg.Subset)
	if err != nil {
		return nil, err
	}

	a := &arena{
		ids:      ids,
		index:    make(map[string]int, len(ids)),
		adj:      make([][]arc, len(ids)),
		directed: g.Directed(),
		pairSlot: make(map[[2]int]int),
		unit:     true,
	}
	var i int
	var id string
	for i, id = range ids {
		a.index[id] = i
	}

	for i, id = range ids {
		edges, err := g.Neighbors(id)
		if err != nil {
			return nil, fmt.Errorf("betweenness: neighbors of %q: %w", id, err)
		}
		for _, e := range edges {
			j, ok := a.index[e.Other(id)]
			if !ok {
				continue
			}
			if j == i {
				a.slotFor(i, i, e.Directed)
				continue
			}
			w := cfg.weightOf(e)
			if !(w > 0) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("%w: edge %s %s→%s weight=%g", ErrInvalidWeight, e.ID, e.From, e.To, w)
			}
			if w != 1 {
				a.unit = false
			}
			a.adj[i] = append(a.adj[i], arc{to: j, w: w, slot: a.slotFor(i, j, e.Directed)})
		}
	}

	return a, nil
}

// arenaVertices returns the vertex IDs to index: the whole graph, or the
// deduplicated subset validated against it.
func arenaVertices(g Graph, subset []string) ([]string, error) {
	all := g.Vertices()
	if subset == nil {
		return all, nil
	}

	known := make(map[string]struct{}, len(all))
	for _, id := range all {
		known[id] = struct{}{}
	}
	seen := make(map[string]struct{}, len(subset))
	ids := make([]string, 0, len(subset))
	for _, id := range subset {
		if _, ok := known[id]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, id)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids, nil
}

// slotFor returns the edge slot of (v, w), allocating it on first sight.
// Undirected arcs are keyed by their ordered pair so both directions share a slot.
// Parallel edges between the same pair share a slot as well.
func (a *arena) slotFor(v, w int, directedEdge bool) int {
	key := [2]int{v, w}
	if !directedEdge && a.ids[w] < a.ids[v] {
		key = [2]int{w, v}
	}
	if s, ok := a.pairSlot[key]; ok {
		return s
	}
	s := len(a.slots)
	a.pairSlot[key] = s
	a.slots = append(a.slots, EdgeKey{From: a.ids[key[0]], To: a.ids[key[1]]})

	return s
}

// size returns the number of indexed vertices.
func (a *arena) size() int { return len(a.ids) }
