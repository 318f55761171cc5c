package bulldag

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
)

// BullDag is the DAG container. It exclusively owns all vertex and edge
// state: vertices handed in through AddVertex or AddEdge are cloned before
// storage, and the root/leaf key sets are kept consistent with the vertices'
// neighbor sets on every committed mutation.
//
// The zero value is not usable; construct with New.
type BullDag[T any, Ix Index] struct {
	vertices map[Ix]*Vertex[T, Ix]
	edges    map[Edge[Ix]]struct{}
	roots    map[Ix]struct{}
	leaves   map[Ix]struct{}
	logger   *slog.Logger
}

// EdgePair is one (source, reference) submission for batch insertion.
type EdgePair[T any, Ix Index] struct {
	Source    *Vertex[T, Ix]
	Reference *Vertex[T, Ix]
}

// New creates an empty graph.
func New[T any, Ix Index]() *BullDag[T, Ix] {
	return &BullDag[T, Ix]{
		vertices: make(map[Ix]*Vertex[T, Ix]),
		edges:    make(map[Edge[Ix]]struct{}),
		roots:    make(map[Ix]struct{}),
		leaves:   make(map[Ix]struct{}),
	}
}

// SetLogger directs the graph's debug logging (dropped edges) to the given
// logger. Without it the graph logs through slog.Default.
func (g *BullDag[T, Ix]) SetLogger(logger *slog.Logger) {
	g.logger = logger
}

func (g *BullDag[T, Ix]) log() *slog.Logger {
	if g.logger != nil {
		return g.logger
	}
	return slog.Default()
}

// AddEdge submits the directed edge source -> reference. Both vertices are
// auto-created from the given ones if their keys are not present yet.
//
// The submission is checked against the committed graph first: if the edge
// would close a cycle the graph is left completely untouched and a wrapped
// ErrWouldCycle is returned. On success the edge is fully committed - both
// endpoint vertices updated, the edge set extended, and root/leaf
// membership re-evaluated. Resubmitting a committed edge is a nil no-op.
func (g *BullDag[T, Ix]) AddEdge(source, reference *Vertex[T, Ix]) error {
	e := EdgeOf(source, reference)
	if _, ok := g.edges[e]; ok {
		return nil
	}

	if err := g.checkCycles(e); err != nil {
		g.log().Debug("dropping edge submission",
			"source", fmt.Sprint(e.source),
			"reference", fmt.Sprint(e.reference),
			"error", err,
		)
		return err
	}

	g.absorb(source, e)
	g.absorb(reference, e)
	g.edges[e] = struct{}{}
	return nil
}

// absorb commits one endpoint of an accepted edge: the stored vertex (or a
// clone of the submitted one, on first sight) takes the edge into its
// neighbor sets and has its root/leaf membership re-evaluated.
func (g *BullDag[T, Ix]) absorb(v *Vertex[T, Ix], e Edge[Ix]) {
	stored, ok := g.vertices[v.index]
	if !ok {
		stored = v.Clone()
		g.vertices[stored.index] = stored
	}
	stored.AddEdge(e)
	g.reclassify(stored)
}

// ExtendFromEdges submits every pair in order. Rejected pairs are skipped
// without disturbing the pairs around them; their errors are joined into
// the return value, so a nil result means every edge was committed.
func (g *BullDag[T, Ix]) ExtendFromEdges(pairs []EdgePair[T, Ix]) error {
	var errs []error
	for _, p := range pairs {
		if err := g.AddEdge(p.Source, p.Reference); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// AddVertex stores a clone of the vertex, overwriting any vertex already
// stored under the same key, and classifies it into the root and leaf sets
// by the emptiness of its neighbor sets.
func (g *BullDag[T, Ix]) AddVertex(v *Vertex[T, Ix]) {
	stored := v.Clone()
	g.vertices[stored.index] = stored
	g.reclassify(stored)
}

// AddVertices stores a clone of every given vertex.
func (g *BullDag[T, Ix]) AddVertices(vertices []*Vertex[T, Ix]) {
	for _, v := range vertices {
		g.AddVertex(v)
	}
}

// reclassify syncs the root and leaf sets with the vertex's neighbor sets,
// in both directions, so the membership invariant holds unconditionally.
func (g *BullDag[T, Ix]) reclassify(v *Vertex[T, Ix]) {
	if len(v.sources) == 0 {
		g.roots[v.index] = struct{}{}
	} else {
		delete(g.roots, v.index)
	}
	if len(v.references) == 0 {
		g.leaves[v.index] = struct{}{}
	} else {
		delete(g.leaves, v.index)
	}
}

// GetVertex returns the vertex stored under target. The returned vertex is
// a read view into graph-owned state: calling AddEdge on it directly
// bypasses cycle checking and root/leaf bookkeeping.
func (g *BullDag[T, Ix]) GetVertex(target Ix) (*Vertex[T, Ix], bool) {
	v, ok := g.vertices[target]
	return v, ok
}

// Vertices returns all stored vertices, in no particular order. The same
// read-view caveat as GetVertex applies.
func (g *BullDag[T, Ix]) Vertices() []*Vertex[T, Ix] {
	out := make([]*Vertex[T, Ix], 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, v)
	}
	return out
}

// Roots returns a snapshot of the keys with no sources, in no particular
// order.
func (g *BullDag[T, Ix]) Roots() []Ix {
	out := make([]Ix, 0, len(g.roots))
	for ix := range g.roots {
		out = append(out, ix)
	}
	return out
}

// Leaves returns a snapshot of the keys with no references, in no
// particular order.
func (g *BullDag[T, Ix]) Leaves() []Ix {
	out := make([]Ix, 0, len(g.leaves))
	for ix := range g.leaves {
		out = append(out, ix)
	}
	return out
}

// Edges returns a snapshot of every committed edge, in no particular order.
func (g *BullDag[T, Ix]) Edges() []Edge[Ix] {
	out := make([]Edge[Ix], 0, len(g.edges))
	for e := range g.edges {
		out = append(out, e)
	}
	return out
}

// Len returns the number of vertices.
func (g *BullDag[T, Ix]) Len() int {
	return len(g.vertices)
}

// IsEmpty reports whether the graph holds no vertices.
func (g *BullDag[T, Ix]) IsEmpty() bool {
	return g.Len() == 0
}

// NumEdges returns the number of committed edges.
func (g *BullDag[T, Ix]) NumEdges() int {
	return len(g.edges)
}

// NumRoots returns the number of vertices with no sources.
func (g *BullDag[T, Ix]) NumRoots() int {
	return len(g.roots)
}

// NumLeaves returns the number of vertices with no references.
func (g *BullDag[T, Ix]) NumLeaves() int {
	return len(g.leaves)
}

// checkCycles decides whether committing e would break acyclicity,
// evaluated entirely against the pre-insertion graph.
func (g *BullDag[T, Ix]) checkCycles(e Edge[Ix]) error {
	// A self-loop is the trivial cycle.
	if e.source == e.reference {
		return fmt.Errorf("self-referential edge on %v: %w", e.source, ErrWouldCycle)
	}

	// A non-empty graph with no roots or no leaves has already lost its
	// acyclic structure somewhere; refuse to build on it.
	if !g.IsEmpty() && (len(g.roots) == 0 || len(g.leaves) == 0) {
		return fmt.Errorf("graph has no %s: %w", g.missingExtreme(), ErrWouldCycle)
	}

	if ancestors := g.Trace(e.source, DirectionSource); slices.Contains(ancestors, e.reference) {
		return fmt.Errorf("%v is an ancestor of %v: %w", e.reference, e.source, ErrWouldCycle)
	}
	if descendants := g.Trace(e.reference, DirectionReference); slices.Contains(descendants, e.source) {
		return fmt.Errorf("%v is a descendant of %v: %w", e.source, e.reference, ErrWouldCycle)
	}
	return nil
}

func (g *BullDag[T, Ix]) missingExtreme() string {
	if len(g.roots) == 0 {
		return "roots"
	}
	return "leaves"
}
