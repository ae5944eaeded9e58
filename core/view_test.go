package core_test

import (
	"testing"

	"github.com/katalvlaran/centrality/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInducedSubgraph(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1, core.WithEdgeAttr("time", 3))
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("C", "D", 3)

	sub := core.InducedSubgraph(g, map[string]bool{"A": true, "B": true, "C": true})
	assert.Equal(t, []string{"A", "B", "C"}, sub.Vertices())
	assert.Equal(t, 2, sub.EdgeCount())
	assert.True(t, sub.Weighted())
	assert.False(t, sub.HasEdge("C", "D"))

	// Attributes are copied, not shared.
	edges, err := sub.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, edges, 1)
	edges[0].Attrs["time"] = 99
	orig, err := g.Neighbors("A")
	require.NoError(t, err)
	tm, _ := orig[0].Attr("time")
	assert.Equal(t, 3.0, tm)

	// New edges on the view do not collide with carried IDs.
	eid, err := sub.AddEdge("A", "C", 5)
	require.NoError(t, err)
	_, err = g.GetEdge(eid)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}
