package core_test

import (
	"testing"

	"github.com/katalvlaran/centrality/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEdge_Validation(t *testing.T) {
	tests := []struct {
		name    string
		opts    []core.GraphOption
		from    string
		to      string
		weight  float64
		eopts   []core.EdgeOption
		wantErr error
	}{
		{"empty from", nil, "", "B", 0, nil, core.ErrEmptyVertexID},
		{"weight on unweighted", nil, "A", "B", 3, nil, core.ErrBadWeight},
		{"loop disabled", nil, "A", "A", 0, nil, core.ErrLoopNotAllowed},
		{"override without mixed", nil, "A", "B", 0,
			[]core.EdgeOption{core.WithEdgeDirected(true)}, core.ErrMixedEdgesNotAllowed},
		{"attribute without mixed is fine", nil, "A", "B", 0,
			[]core.EdgeOption{core.WithEdgeAttr("length", 4)}, nil},
		{"override in mixed mode", []core.GraphOption{core.WithMixedEdges()}, "A", "B", 0,
			[]core.EdgeOption{core.WithEdgeDirected(true)}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := core.NewGraph(tt.opts...)
			_, err := g.AddEdge(tt.from, tt.to, tt.weight, tt.eopts...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAddEdge_MultiEdgeRejected(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	_, err = g.AddEdge("A", "B", 0)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	// The mirrored direction of an undirected edge is the same slot.
	_, err = g.AddEdge("B", "A", 0)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestAddEdge_WeightMirroredIntoAttrs(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	eid, err := g.AddEdge("A", "B", 2.5, core.WithEdgeAttr("time", 7))
	require.NoError(t, err)

	e, err := g.GetEdge(eid)
	require.NoError(t, err)
	w, ok := e.Attr(core.WeightAttr)
	require.True(t, ok)
	assert.Equal(t, 2.5, w)
	tm, ok := e.Attr("time")
	require.True(t, ok)
	assert.Equal(t, 7.0, tm)

	// Unweighted graphs carry no weight attribute.
	u := core.NewGraph()
	eid, err = u.AddEdge("A", "B", 0)
	require.NoError(t, err)
	e, err = u.GetEdge(eid)
	require.NoError(t, err)
	_, ok = e.Attr(core.WeightAttr)
	assert.False(t, ok)
}

func TestNeighbors_DirectedAndUndirected(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("C", "A", 0)

	nbs, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, nbs)

	u := core.NewGraph()
	_, _ = u.AddEdge("A", "B", 0)
	_, _ = u.AddEdge("C", "A", 0)
	nbs, err = u.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, nbs)

	edges, err := u.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.Equal(t, "C", edges[1].Other("A"))

	_, err = u.Neighbors("Z")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = u.Neighbors("")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestVerticesSortedAndRemove(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("c", "a", 0)
	_, _ = g.AddEdge("a", "b", 0)
	assert.Equal(t, []string{"a", "b", "c"}, g.Vertices())
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())

	require.NoError(t, g.RemoveVertex("a"))
	assert.Equal(t, []string{"b", "c"}, g.Vertices())
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.HasEdge("c", "a"))
	require.ErrorIs(t, g.RemoveVertex("a"), core.ErrVertexNotFound)
}

func TestRemoveEdgeAndDegree(t *testing.T) {
	g := core.NewGraph(core.WithMixedEdges(), core.WithLoops())
	eid, _ := g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("C", "A", 0, core.WithEdgeDirected(true))
	_, _ = g.AddEdge("A", "A", 0)

	in, out, und, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 1, in)
	assert.Equal(t, 0, out)
	assert.Equal(t, 3, und)

	require.NoError(t, g.RemoveEdge(eid))
	assert.False(t, g.HasEdge("B", "A"))
	require.ErrorIs(t, g.RemoveEdge(eid), core.ErrEdgeNotFound)
}
