package hclgraph

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestLoadFile(t *testing.T) {
	l := NewLoader()
	model, err := l.Load(context.Background(), filepath.Join("testdata", "pipeline.hcl"))
	require.NoError(t, err)

	require.Len(t, model.Vertices, 3)
	require.Len(t, model.Edges, 3)

	assert.Equal(t, "build", model.Vertices[0].Name)
	assert.Equal(t, cty.StringVal("compile the tree"), model.Vertices[0].Data)

	// A vertex block without a data attribute gets a null payload.
	assert.Equal(t, "package", model.Vertices[2].Name)
	assert.True(t, model.Vertices[2].Data.IsNull())

	assert.Equal(t, "build", model.Edges[0].Source)
	assert.Equal(t, "test", model.Edges[0].Reference)
	// Edges may reference names that no vertex block declares.
	assert.Equal(t, "publish", model.Edges[2].Reference)
}

func TestLoadDirectory(t *testing.T) {
	l := NewLoader()
	model, err := l.Load(context.Background(), filepath.Join("testdata", "split"))
	require.NoError(t, err)

	assert.Len(t, model.Vertices, 2)
	assert.Len(t, model.Edges, 2)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing path", func(t *testing.T) {
		l := NewLoader()
		_, err := l.Load(context.Background(), filepath.Join("testdata", "does-not-exist.hcl"))
		assert.Error(t, err)
	})

	t.Run("malformed HCL", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "broken.hcl")
		require.NoError(t, os.WriteFile(path, []byte("vertex \"a\" {\n"), 0o600))

		l := NewLoader()
		_, err := l.Load(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse")
	})

	t.Run("unevaluable data expression", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "vars.hcl")
		require.NoError(t, os.WriteFile(path, []byte("vertex \"a\" {\n  data = var.undefined\n}\n"), 0o600))

		l := NewLoader()
		_, err := l.Load(context.Background(), path)
		assert.Error(t, err)
	})

	t.Run("empty directory yields empty model", func(t *testing.T) {
		l := NewLoader()
		model, err := l.Load(context.Background(), t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, model.Vertices)
		assert.Empty(t, model.Edges)
	})
}
