package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nileshpatra/gubbins/builder"
	"github.com/nileshpatra/gubbins/core"
)

// edgeCount sums the neighbor-list lengths for every vertex in g.
func edgeCount(t *testing.T, g *core.Graph) int {
	t.Helper()
	total := 0
	for _, id := range g.Vertices() {
		nbrs, err := g.Neighbors(id)
		require.NoError(t, err)
		total += len(nbrs)
	}
	return total
}

func TestStar_Topology(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Star(4))
	require.NoError(t, err)
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 3, edgeCount(t, g))

	nbrs, err := g.Neighbors("Center")
	require.NoError(t, err)
	require.Len(t, nbrs, 3)
}

func TestStar_TooFew(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Star(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestPath_Topology(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Path(4))
	require.NoError(t, err)
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 3, edgeCount(t, g))

	nbrs, err := g.Neighbors("0")
	require.NoError(t, err)
	require.Len(t, nbrs, 1)
	require.Equal(t, "1", nbrs[0].To)
}

func TestPath_TooFew(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Path(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestCycle_Topology(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Cycle(5))
	require.NoError(t, err)
	require.Equal(t, 5, g.VertexCount())
	require.Equal(t, 5, edgeCount(t, g))

	nbrs, err := g.Neighbors("4")
	require.NoError(t, err)
	require.Len(t, nbrs, 1)
	require.Equal(t, "0", nbrs[0].To)
}

func TestCycle_TooFew(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Cycle(2))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestComplete_Topology(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Complete(4))
	require.NoError(t, err)
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 6, edgeCount(t, g))
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuildGraph_CustomIDScheme(t *testing.T) {
	idFn := func(i int) string { return "taxon" + string(rune('A'+i)) }
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithIDScheme(idFn)}, builder.Path(3))
	require.NoError(t, err)
	require.True(t, g.HasVertex("taxonA"))
	require.True(t, g.HasVertex("taxonB"))
	require.True(t, g.HasVertex("taxonC"))
}

func TestBuildGraph_CustomWeightFn(t *testing.T) {
	wfn := func(i int) float64 { return float64(i) + 0.5 }
	gopts := []core.GraphOption{core.WithWeighted()}
	g, err := builder.BuildGraph(gopts, []builder.BuilderOption{builder.WithWeightFn(wfn)}, builder.Path(3))
	require.NoError(t, err)

	nbrs, err := g.Neighbors("0")
	require.NoError(t, err)
	require.Len(t, nbrs, 1)
	require.Equal(t, 0.5, nbrs[0].Weight)
}
