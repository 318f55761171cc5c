package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/vk/bulldag"
	"github.com/vk/bulldag/internal/builder"
	"github.com/vk/bulldag/internal/ctxlog"
)

// Run loads the graph definition, builds the container, and produces the
// requested output: an ancestor/descendant trace, a msgpack snapshot, or
// (by default) the topological order.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	model, err := a.loader.Load(ctx, a.config.GraphPath)
	if err != nil {
		return fmt.Errorf("failed to load graph definition: %w", err)
	}

	res, err := builder.Build(ctx, model)
	if err != nil {
		return fmt.Errorf("failed to build graph: %w", err)
	}
	g := res.Graph
	a.logger.Info("graph built",
		"vertices", g.Len(), "edges", g.NumEdges(),
		"roots", g.NumRoots(), "leaves", g.NumLeaves(),
		"dropped_edges", len(res.Dropped))

	switch {
	case a.config.TraceVertex != "":
		return a.printTrace(g)
	case a.config.SnapshotPath != "":
		return a.writeSnapshot(g)
	default:
		return a.printTopologicalOrder(g)
	}
}

func (a *App) printTrace(g *bulldag.BullDag[string, string]) error {
	if _, ok := g.GetVertex(a.config.TraceVertex); !ok {
		return fmt.Errorf("cannot trace %q: %w", a.config.TraceVertex, bulldag.ErrNonExistentVertex)
	}

	direction := bulldag.DirectionSource
	if a.config.TraceDirection == TraceReferences {
		direction = bulldag.DirectionReference
	}

	for _, ix := range g.Trace(a.config.TraceVertex, direction) {
		fmt.Fprintln(a.outW, ix)
	}
	return nil
}

func (a *App) writeSnapshot(g *bulldag.BullDag[string, string]) error {
	data, err := g.Snapshot()
	if err != nil {
		return fmt.Errorf("failed to serialize graph: %w", err)
	}
	if err := os.WriteFile(a.config.SnapshotPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	a.logger.Info("snapshot written", "path", a.config.SnapshotPath, "bytes", len(data))
	return nil
}

func (a *App) printTopologicalOrder(g *bulldag.BullDag[string, string]) error {
	order, err := g.TopologicalSort()
	if errors.Is(err, bulldag.ErrNoEdges) {
		a.logger.Warn("graph definition is empty, nothing to order")
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot order graph: %w", err)
	}

	for _, ix := range order {
		fmt.Fprintln(a.outW, ix)
	}
	return nil
}
