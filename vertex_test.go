package bulldag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVertex(t *testing.T) {
	v := NewVertex(5, "source")
	assert.Equal(t, 5, v.Data())
	assert.Equal(t, "source", v.Index())
	assert.Zero(t, v.NumSources())
	assert.Zero(t, v.NumReferences())
}

func TestVertexAddEdge(t *testing.T) {
	t.Run("outgoing edge records a reference", func(t *testing.T) {
		v := NewVertex(5, "source")
		v.AddEdge(NewEdge("source", "reference"))
		assert.Equal(t, 1, v.NumReferences())
		assert.True(t, v.IsReference("reference"))
		assert.Zero(t, v.NumSources())
	})

	t.Run("incoming edge records a source", func(t *testing.T) {
		v := NewVertex(5, "source")
		v.AddEdge(NewEdge("sources_source", "source"))
		assert.Equal(t, 1, v.NumSources())
		assert.True(t, v.IsSource("sources_source"))
		assert.Zero(t, v.NumReferences())
	})

	t.Run("foreign edge is a no-op", func(t *testing.T) {
		v := NewVertex(5, "source")
		v.AddEdge(NewEdge("a", "b"))
		assert.Zero(t, v.NumSources())
		assert.Zero(t, v.NumReferences())
	})

	t.Run("self-loop edge satisfies both endpoint checks", func(t *testing.T) {
		// The checks are independent; policy against self-loops lives in
		// the graph, not in the vertex.
		v := NewVertex(5, "source")
		v.AddEdge(NewEdge("source", "source"))
		assert.True(t, v.IsSource("source"))
		assert.True(t, v.IsReference("source"))
	})

	t.Run("absorption is idempotent", func(t *testing.T) {
		v := NewVertex(5, "source")
		e := NewEdge("source", "reference")
		v.AddEdge(e)
		v.AddEdge(e)
		assert.Equal(t, 1, v.NumReferences())
	})
}

func TestVertexClone(t *testing.T) {
	v := NewVertex(5, "source")
	v.AddEdge(NewEdge("source", "reference"))

	c := v.Clone()
	require.Equal(t, v.Data(), c.Data())
	require.Equal(t, v.Index(), c.Index())
	assert.ElementsMatch(t, v.References(), c.References())

	c.AddEdge(NewEdge("source", "other"))
	assert.Equal(t, 1, v.NumReferences())
	assert.Equal(t, 2, c.NumReferences())
}

func TestEdge(t *testing.T) {
	e := NewEdge("source", "reference")
	assert.Equal(t, "source", e.Source())
	assert.Equal(t, "reference", e.Reference())

	t.Run("equality is structural", func(t *testing.T) {
		assert.Equal(t, e, NewEdge("source", "reference"))
		assert.NotEqual(t, e, NewEdge("reference", "source"))
	})

	t.Run("EdgeOf projects vertex keys", func(t *testing.T) {
		v1 := NewVertex(5, "source")
		v2 := NewVertex(4, "reference")
		assert.Equal(t, e, EdgeOf(v1, v2))
		assert.Zero(t, v1.NumReferences(), "projection must not touch the vertices")
	})
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "source", DirectionSource.String())
	assert.Equal(t, "reference", DirectionReference.String())
}
