package builder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/bulldag/internal/config"
)

func TestBuild(t *testing.T) {
	t.Run("declared vertices and edges", func(t *testing.T) {
		model := &config.Model{
			Vertices: []*config.VertexDef{
				{Name: "build", Data: cty.StringVal("compile")},
				{Name: "test", Data: cty.NullVal(cty.DynamicPseudoType)},
			},
			Edges: []*config.EdgeDef{
				{Source: "build", Reference: "test"},
			},
		}

		res, err := Build(context.Background(), model)
		require.NoError(t, err)

		g := res.Graph
		assert.Empty(t, res.Dropped)
		assert.Equal(t, 2, g.Len())
		assert.Equal(t, 1, g.NumEdges())

		v, ok := g.GetVertex("build")
		require.True(t, ok)
		assert.Equal(t, "compile", v.Data())
		assert.True(t, v.IsReference("test"))
	})

	t.Run("undeclared endpoints are auto-created", func(t *testing.T) {
		model := &config.Model{
			Edges: []*config.EdgeDef{
				{Source: "a", Reference: "b"},
				{Source: "b", Reference: "c"},
			},
		}

		res, err := Build(context.Background(), model)
		require.NoError(t, err)
		assert.Equal(t, 3, res.Graph.Len())
		assert.Equal(t, 2, res.Graph.NumEdges())

		v, ok := res.Graph.GetVertex("c")
		require.True(t, ok)
		assert.Equal(t, "", v.Data())
	})

	t.Run("cycle-closing edges are dropped and reported", func(t *testing.T) {
		model := &config.Model{
			Edges: []*config.EdgeDef{
				{Source: "a", Reference: "b"},
				{Source: "b", Reference: "c"},
				{Source: "c", Reference: "a"},
			},
		}

		res, err := Build(context.Background(), model)
		require.NoError(t, err)
		assert.Equal(t, 2, res.Graph.NumEdges())
		require.Len(t, res.Dropped, 1)
		assert.Equal(t, config.EdgeDef{Source: "c", Reference: "a"}, res.Dropped[0])
	})

	t.Run("non-string payloads are converted", func(t *testing.T) {
		model := &config.Model{
			Vertices: []*config.VertexDef{
				{Name: "n", Data: cty.NumberIntVal(42)},
				{Name: "b", Data: cty.True},
			},
		}

		res, err := Build(context.Background(), model)
		require.NoError(t, err)

		n, ok := res.Graph.GetVertex("n")
		require.True(t, ok)
		assert.Equal(t, "42", n.Data())
		b, ok := res.Graph.GetVertex("b")
		require.True(t, ok)
		assert.Equal(t, "true", b.Data())
	})

	t.Run("unconvertible payload is an error", func(t *testing.T) {
		model := &config.Model{
			Vertices: []*config.VertexDef{
				{Name: "bad", Data: cty.ListVal([]cty.Value{cty.StringVal("x")})},
			},
		}

		_, err := Build(context.Background(), model)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `vertex "bad"`)
	})

	t.Run("later declaration wins by name", func(t *testing.T) {
		model := &config.Model{
			Vertices: []*config.VertexDef{
				{Name: "v", Data: cty.StringVal("first")},
				{Name: "v", Data: cty.StringVal("second")},
			},
		}

		res, err := Build(context.Background(), model)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Graph.Len())
		v, ok := res.Graph.GetVertex("v")
		require.True(t, ok)
		assert.Equal(t, "second", v.Data())
	})

	t.Run("empty model builds an empty graph", func(t *testing.T) {
		res, err := Build(context.Background(), &config.Model{})
		require.NoError(t, err)
		assert.True(t, res.Graph.IsEmpty())
	})
}
