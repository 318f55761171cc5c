package bulldag

import (
	"fmt"
	"slices"
)

// TopologicalSort returns a linearization of the graph's partial order:
// every vertex appears before all vertices reachable from it along
// reference edges. Ties among independent branches follow set iteration
// order and are therefore unspecified; callers needing a reproducible
// order must impose their own secondary sort.
//
// An empty graph returns ErrNoEdges. A non-empty graph with no roots or no
// leaves cannot be linearized and returns a wrapped ErrWouldCycle; neither
// state is reachable through the public mutation API.
func (g *BullDag[T, Ix]) TopologicalSort() ([]Ix, error) {
	if g.IsEmpty() {
		return nil, ErrNoEdges
	}
	if len(g.roots) == 0 || len(g.leaves) == 0 {
		return nil, fmt.Errorf("graph has no %s: %w", g.missingExtreme(), ErrWouldCycle)
	}

	// Post-order depth-first from every root along the reference
	// direction, then reversed: each vertex lands after everything it
	// points to, so the reversal puts it before all of them.
	out := make([]Ix, 0, len(g.vertices))
	seen := make(map[Ix]struct{}, len(g.vertices))
	for root := range g.roots {
		g.walk(root, DirectionReference, seen, &out)
	}
	slices.Reverse(out)
	return out, nil
}
