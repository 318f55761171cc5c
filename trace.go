package bulldag

// Trace returns every key reachable from target by walking committed edges
// in the given direction, inclusive of target itself. Keys come out in
// post-order: a key appears only after everything beyond it in the walk
// direction, so target is always last. The order among independent
// branches is unspecified.
//
// A target with no stored vertex traces to just itself.
func (g *BullDag[T, Ix]) Trace(target Ix, direction Direction) []Ix {
	out := make([]Ix, 0, len(g.vertices))
	seen := make(map[Ix]struct{}, len(g.vertices))
	g.walk(target, direction, seen, &out)
	return out
}

// walkFrame is one suspended vertex in the iterative depth-first walk:
// the vertex key plus the neighbors not yet descended into.
type walkFrame[Ix Index] struct {
	key  Ix
	next []Ix
}

// walk performs an iterative post-order depth-first traversal from start,
// appending each newly seen key to out after all of its neighbors in the
// walk direction have been appended. An explicit frame stack stands in for
// recursion so arbitrarily deep graphs cannot exhaust the goroutine stack.
func (g *BullDag[T, Ix]) walk(start Ix, direction Direction, seen map[Ix]struct{}, out *[]Ix) {
	if _, ok := seen[start]; ok {
		return
	}
	seen[start] = struct{}{}

	stack := []walkFrame[Ix]{{key: start, next: g.neighbors(start, direction)}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if len(top.next) > 0 {
			n := top.next[0]
			top.next = top.next[1:]
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			stack = append(stack, walkFrame[Ix]{key: n, next: g.neighbors(n, direction)})
			continue
		}
		*out = append(*out, top.key)
		stack = stack[:len(stack)-1]
	}
}

// neighbors reads the committed neighbor set of target for one direction.
// Stored neighbor sets mirror the committed edge set exactly, since both
// are only ever updated together inside an accepted AddEdge.
func (g *BullDag[T, Ix]) neighbors(target Ix, direction Direction) []Ix {
	vtx, ok := g.vertices[target]
	if !ok {
		return nil
	}
	if direction == DirectionSource {
		return vtx.Sources()
	}
	return vtx.References()
}
