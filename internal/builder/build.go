package builder

import (
	"context"
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/bulldag"
	"github.com/vk/bulldag/internal/config"
	"github.com/vk/bulldag/internal/ctxlog"
)

// Result carries the built graph along with the per-edge rejections, so
// callers get explicit feedback on every dropped submission.
type Result struct {
	Graph   *bulldag.BullDag[string, string]
	Dropped []config.EdgeDef
}

// Build constructs the graph from a config model. First pass: declared
// vertices, in declaration order, later declarations overwriting earlier
// ones by name. Second pass: edges, with vertices auto-created for
// endpoints that were never declared.
func Build(ctx context.Context, model *config.Model) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	g := bulldag.New[string, string]()
	g.SetLogger(logger)

	for _, def := range model.Vertices {
		data, err := payloadString(def.Data)
		if err != nil {
			return nil, fmt.Errorf("vertex %q: %w", def.Name, err)
		}
		g.AddVertex(bulldag.NewVertex(data, def.Name))
	}
	logger.Debug("vertex declarations applied", "count", len(model.Vertices))

	res := &Result{Graph: g}
	for _, e := range model.Edges {
		src := vertexFor(g, e.Source)
		ref := vertexFor(g, e.Reference)
		if err := g.AddEdge(src, ref); err != nil {
			logger.Warn("dropping edge from definition",
				"source", e.Source, "reference", e.Reference, "error", err)
			res.Dropped = append(res.Dropped, *e)
		}
	}

	logger.Debug("graph build complete",
		"vertices", g.Len(), "edges", g.NumEdges(), "dropped", len(res.Dropped))
	return res, nil
}

// vertexFor resolves an edge endpoint: the stored vertex when the name is
// already known, otherwise a fresh empty-payload vertex for the graph to
// auto-create on commit.
func vertexFor(g *bulldag.BullDag[string, string], name string) *bulldag.Vertex[string, string] {
	if v, ok := g.GetVertex(name); ok {
		return v
	}
	return bulldag.NewVertex("", name)
}

// payloadString renders a definition's data value as the stored payload.
// Null and unknown values become the empty string; everything else must be
// convertible to a string.
func payloadString(v cty.Value) (string, error) {
	if v.IsNull() || !v.IsKnown() {
		return "", nil
	}
	s, err := convert.Convert(v, cty.String)
	if err != nil {
		return "", fmt.Errorf("data is not representable as a string: %w", err)
	}
	return s.AsString(), nil
}
