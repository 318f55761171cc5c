package hclgraph

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/bulldag/internal/config"
	"github.com/vk/bulldag/internal/ctxlog"
	"github.com/vk/bulldag/internal/fsutil"
)

// Loader parses HCL graph definition files into the config model.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a Loader with a fresh HCL parser.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load reads the definition at path, which may be a single .hcl file or a
// directory searched recursively, and consolidates everything found into
// one Model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("loading graph definition", "path", path)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph path %s: %w", path, err)
	}

	files := []string{path}
	if info.IsDir() {
		files, err = fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to find definition files in %s: %w", path, err)
		}
		if len(files) == 0 {
			logger.Warn("no .hcl definition files found, returning empty model", "path", path)
		}
	}

	model := &config.Model{}
	seen := make(map[string]bool)
	for _, file := range files {
		if err := l.loadFile(ctx, file, model, seen); err != nil {
			return nil, err
		}
	}

	logger.Debug("graph definition loaded", "vertices", len(model.Vertices), "edges", len(model.Edges))
	return model, nil
}

// loadFile parses one file and appends its declarations to the model.
func (l *Loader) loadFile(ctx context.Context, path string, model *config.Model, seen map[string]bool) error {
	logger := ctxlog.FromContext(ctx)

	hclFile, diags := l.parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var parsed hclGraphFile
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &parsed); diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	for _, v := range parsed.Vertices {
		if seen[v.Name] {
			logger.Warn("duplicate vertex declaration, later one wins", "name", v.Name, "file", path)
		}
		seen[v.Name] = true

		data := cty.NullVal(cty.DynamicPseudoType)
		if v.Data != nil {
			val, diags := v.Data.Value(nil)
			if diags.HasErrors() {
				return fmt.Errorf("invalid data for vertex %q in %s: %w", v.Name, path, diags)
			}
			data = val
		}
		model.Vertices = append(model.Vertices, &config.VertexDef{Name: v.Name, Data: data})
	}

	for _, e := range parsed.Edges {
		model.Edges = append(model.Edges, &config.EdgeDef{Source: e.Source, Reference: e.Reference})
	}

	return nil
}
