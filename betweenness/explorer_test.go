package betweenness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/centrality/builder"
	"github.com/katalvlaran/centrality/core"
)

// mustArena builds an arena over g with the given options applied.
func mustArena(t *testing.T, g Graph, opts ...Option) (*arena, Options) {
	t.Helper()
	cfg := DefaultOptions()
	for _, o := range opts {
		o(&cfg)
	}
	a, err := buildArena(g, &cfg)
	require.NoError(t, err)

	return a, cfg
}

func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"s", "a"}, {"s", "b"}, {"a", "t"}, {"b", "t"}} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}
	return g
}

func TestExplorer_CountsShortestPaths(t *testing.T) {
	a, cfg := mustArena(t, diamond(t))
	x := newExplorer(a, cfg.Tolerance)

	s, tt := a.index["s"], a.index["t"]
	x.run(s)

	assert.Len(t, x.order, 4)
	assert.Equal(t, s, x.order[0], "seed pops first")
	assert.Equal(t, tt, x.order[3], "farthest vertex pops last")
	assert.Equal(t, 1.0, x.sigma[s])
	assert.Equal(t, 1.0, x.sigma[a.index["a"]])
	assert.Equal(t, 2.0, x.sigma[tt])
	assert.Equal(t, 2.0, x.dist[tt])
	assert.Len(t, x.pred[tt], 2)
	assert.Empty(t, x.pred[s])
}

func TestExplorer_ReuseAcrossSources(t *testing.T) {
	a, cfg := mustArena(t, diamond(t))
	x := newExplorer(a, cfg.Tolerance)

	x.run(a.index["s"])
	x.run(a.index["a"])

	// From a: s and t at distance 1, b at distance 2 via both s and t.
	b := a.index["b"]
	assert.Equal(t, 1.0, x.sigma[a.index["a"]])
	assert.Equal(t, 2.0, x.sigma[b])
	assert.Equal(t, 2.0, x.dist[b])
	assert.Len(t, x.order, 4)
}

func TestExplorer_UnreachableVerticesStayOut(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("z"))

	a, cfg := mustArena(t, g)
	x := newExplorer(a, cfg.Tolerance)
	x.run(a.index["b"])

	assert.Equal(t, []int{a.index["b"]}, x.order)
	assert.Zero(t, x.sigma[a.index["a"]])
}

func TestExplorer_UnitMatchesWeighted(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(4)}, builder.RandomSparse(40, 0.12))
	require.NoError(t, err)
	a, cfg := mustArena(t, g)
	require.True(t, a.unit)

	bfs := newExplorer(a, cfg.Tolerance)
	dij := newExplorer(a, cfg.Tolerance)
	for s := 0; s < a.size(); s++ {
		bfs.runUnit(s)
		dij.runWeighted(s)

		require.Equal(t, dij.order, bfs.order, "source %d", s)
		for _, v := range dij.order {
			assert.Equal(t, dij.sigma[v], bfs.sigma[v])
			assert.Equal(t, dij.dist[v], bfs.dist[v])
			assert.Equal(t, dij.pred[v], bfs.pred[v])
		}
	}
}

func TestExplorer_TieTolerance(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("a", "b", 0.1)
	_, _ = g.AddEdge("b", "c", 0.2)
	_, _ = g.AddEdge("a", "c", 0.3)

	// 0.1 + 0.2 > 0.3 in float64, so exact comparison sees a single path.
	exact, cfg := mustArena(t, g, WithWeight(core.WeightAttr))
	require.False(t, exact.unit)
	x := newExplorer(exact, cfg.Tolerance)
	x.run(exact.index["a"])
	assert.Equal(t, 1.0, x.sigma[exact.index["c"]])

	loose, cfg := mustArena(t, g, WithWeight(core.WeightAttr), WithTieTolerance(1e-9))
	y := newExplorer(loose, cfg.Tolerance)
	y.run(loose.index["a"])
	assert.Equal(t, 2.0, y.sigma[loose.index["c"]])
}

func TestArena_WeightValidation(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("a", "b", 2)
	_, _ = g.AddEdge("b", "c", 0)

	cfg := DefaultOptions()
	WithWeight(core.WeightAttr)(&cfg)
	_, err := buildArena(g, &cfg)
	require.ErrorIs(t, err, ErrInvalidWeight)

	// Unweighted runs ignore stored weights.
	plain := DefaultOptions()
	a, err := buildArena(g, &plain)
	require.NoError(t, err)
	for _, arcs := range a.adj {
		for _, e := range arcs {
			assert.Equal(t, 1.0, e.w)
		}
	}
}

func TestArena_UndirectedSlotsShared(t *testing.T) {
	a, _ := mustArena(t, diamond(t))

	assert.Len(t, a.slots, 4)
	for _, k := range a.slots {
		assert.Less(t, k.From, k.To)
	}
}

func TestAccumulate_Diamond(t *testing.T) {
	a, cfg := mustArena(t, diamond(t))
	x := newExplorer(a, cfg.Tolerance)
	cb := make([]float64, a.size())

	s := a.index["s"]
	x.run(s)
	x.accumulate(s, cb)

	// Pair (s,t) splits evenly across a and b.
	assert.InDelta(t, 0.5, cb[a.index["a"]], 1e-12)
	assert.InDelta(t, 0.5, cb[a.index["b"]], 1e-12)
	assert.Zero(t, cb[s])
	assert.Zero(t, cb[a.index["t"]])
}

func TestAccumulateEdges_Diamond(t *testing.T) {
	a, cfg := mustArena(t, diamond(t))
	x := newExplorer(a, cfg.Tolerance)
	ceb := make([]float64, len(a.slots))

	x.run(a.index["s"])
	x.accumulateEdges(ceb)

	// s reaches a, b (one path each) and t (two paths): each s-edge carries 1.5, each t-edge 0.5.
	for i, k := range a.slots {
		if k.From == "s" || k.To == "s" {
			assert.InDelta(t, 1.5, ceb[i], 1e-12, k.String())
		} else {
			assert.InDelta(t, 0.5, ceb[i], 1e-12, k.String())
		}
	}
}

func TestNodeScale(t *testing.T) {
	tests := []struct {
		name                           string
		n                              int
		normalized, directed, endpoint bool
		k                              int
		want                           float64
		ok                             bool
	}{
		{"normalized", 5, true, false, false, 0, 1.0 / 12, true},
		{"normalized tiny", 2, true, false, false, 0, 0, false},
		{"normalized endpoints", 4, true, true, true, 0, 1.0 / 12, true},
		{"normalized endpoints single", 1, true, false, true, 0, 0, false},
		{"raw undirected", 5, false, false, false, 0, 0.5, true},
		{"raw directed", 5, false, true, false, 0, 0, false},
		{"sampled", 10, true, false, false, 5, 2.0 / 72, true},
		{"sampled raw undirected", 10, false, false, false, 2, 2.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := nodeScale(tt.n, tt.normalized, tt.directed, tt.endpoint, tt.k)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-15)
		})
	}
}

func TestEdgeScale(t *testing.T) {
	got, ok := edgeScale(4, true, true, 0)
	assert.True(t, ok)
	assert.InDelta(t, 1.0/12, got, 1e-15)

	_, ok = edgeScale(1, true, false, 0)
	assert.False(t, ok)

	got, ok = edgeScale(4, false, false, 2)
	assert.True(t, ok)
	assert.InDelta(t, 1.0, got, 1e-15)

	_, ok = edgeScale(4, false, true, 0)
	assert.False(t, ok)
}

func TestSplitPivots(t *testing.T) {
	pivots := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	assert.Equal(t, [][]int{{0, 1, 2, 3}, {4, 5, 6, 7}, {8, 9}}, splitPivots(pivots, 3))
	assert.Equal(t, [][]int{pivots}, splitPivots(pivots, 1))
	assert.Len(t, splitPivots(pivots[:2], 8), 2)
	assert.Nil(t, splitPivots(nil, 4))
}
