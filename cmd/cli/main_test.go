package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/bulldag/internal/cli"
)

func writeGraph(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestRun_PrintsTopologicalOrder(t *testing.T) {
	t.Parallel()

	// Arrange
	path := writeGraph(t, `
edge "fetch" "compile" {}
edge "compile" "link" {}
`)
	out := &bytes.Buffer{}
	errW := &bytes.Buffer{}

	// Act
	err := run(out, errW, []string{"-log-level", "error", path})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "fetch\ncompile\nlink\n", out.String())
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	// Arrange
	out := &bytes.Buffer{}
	errW := &bytes.Buffer{}

	// Act
	err := run(out, errW, []string{"-h"})

	// Assert
	require.NoError(t, err)
	assert.Contains(t, errW.String(), "Usage:")
	assert.Empty(t, out.String())
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// Act
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-no-such-flag"})

	// Assert
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestRun_MissingGraph(t *testing.T) {
	t.Parallel()

	// Act
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-log-level", "error", "does-not-exist.hcl"})

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load graph definition")
}
