package blockgraph_test

import (
	"testing"

	"github.com/katalvlaran/dedupath/blockgraph"
	"github.com/katalvlaran/dedupath/labelalgebra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCliqueAndPathGraph_SameComponents(t *testing.T) {
	v := labelalgebra.LabelVector{0, 0, 0, 1, 1}

	clique, err := blockgraph.CliqueGraph(v)
	require.NoError(t, err)
	path, err := blockgraph.PathGraph(v)
	require.NoError(t, err)

	cliqueLabels := blockgraph.FromGraph(clique, blockgraph.Clique).Labels()
	pathLabels := blockgraph.FromGraph(path, blockgraph.Path).Labels()

	assert.Equal(t, cliqueLabels[0], cliqueLabels[1])
	assert.Equal(t, pathLabels[0], pathLabels[1])
	assert.Equal(t, cliqueLabels[0] == cliqueLabels[3], pathLabels[0] == pathLabels[3])

	// Path graph must use far fewer edges for a dense group.
	assert.True(t, path.HasEdge(0, 1) || path.HasEdge(1, 0))
	assert.True(t, clique.HasEdge(0, 2))
	assert.False(t, path.HasEdge(0, 2))
}

func TestBlockGraph_RoundTrip(t *testing.T) {
	v := labelalgebra.LabelVector{0, 0, 1, 1, 2}
	bg := blockgraph.FromLabels(v, blockgraph.Clique)

	g, err := bg.Graph()
	require.NoError(t, err)
	assert.True(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(0, 2))

	bg2 := blockgraph.FromGraph(g, blockgraph.Clique)
	got := bg2.Labels()
	assert.Equal(t, got[0], got[1])
	assert.NotEqual(t, got[0], got[2])
	assert.Equal(t, got[2], got[3])
	assert.NotEqual(t, got[2], got[4])
}

func TestIntersection_IsAND(t *testing.T) {
	// Rule A groups {0,1,2}; rule B groups {0,1} and {2,3}.
	a := labelalgebra.LabelVector{0, 0, 0, 1}
	b := labelalgebra.LabelVector{0, 0, 1, 1}

	ga, err := blockgraph.CliqueGraph(a)
	require.NoError(t, err)
	gb, err := blockgraph.CliqueGraph(b)
	require.NoError(t, err)

	inter, err := blockgraph.Intersection(ga, gb)
	require.NoError(t, err)

	labels := blockgraph.FromGraph(inter, blockgraph.Clique).Labels()
	assert.Equal(t, labels[0], labels[1], "0,1 agree on both rules")
	assert.NotEqual(t, labels[1], labels[2], "2 disagrees with 1 on rule B")
	assert.NotEqual(t, labels[2], labels[3], "2,3 disagree on rule A")
}

func TestUnion_IsOR(t *testing.T) {
	a := labelalgebra.LabelVector{0, 1, 2} // nothing matches on rule A
	b := labelalgebra.LabelVector{0, 0, 1} // 0,1 match on rule B

	pa, err := blockgraph.PathGraph(a)
	require.NoError(t, err)
	pb, err := blockgraph.PathGraph(b)
	require.NoError(t, err)

	union, err := blockgraph.Union(pa, pb)
	require.NoError(t, err)

	labels := blockgraph.FromGraph(union, blockgraph.Path).Labels()
	assert.Equal(t, labels[0], labels[1])
	assert.NotEqual(t, labels[1], labels[2])
}

func TestAbsorption_ANDWithSelfIsSelf(t *testing.T) {
	v := labelalgebra.LabelVector{0, 0, 1, 1, 2}
	g, err := blockgraph.CliqueGraph(v)
	require.NoError(t, err)

	inter, err := blockgraph.Intersection(g, g)
	require.NoError(t, err)
	got := blockgraph.FromGraph(inter, blockgraph.Clique).Labels()
	want := blockgraph.FromGraph(g, blockgraph.Clique).Labels()
	assert.Equal(t, want[0] == want[1], got[0] == got[1])
	assert.Equal(t, want[2] == want[3], got[2] == got[3])
	assert.Equal(t, want[0] == want[4], got[0] == got[4])
}
