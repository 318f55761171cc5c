package bulldag

// Direction selects which side of a vertex's edges a traversal follows.
type Direction int

const (
	// DirectionSource walks incoming edges, toward ancestors.
	DirectionSource Direction = iota
	// DirectionReference walks outgoing edges, toward descendants.
	DirectionReference
)

func (d Direction) String() string {
	switch d {
	case DirectionSource:
		return "source"
	case DirectionReference:
		return "reference"
	default:
		return "unknown"
	}
}

// Vertex is the data-bearing unit of the graph. It holds an opaque payload,
// an identifying key, and the keys of its direct neighbors on both sides:
// sources point into this vertex, references are pointed to by it. Neighbor
// sets only ever grow, and they grow only through AddEdge.
type Vertex[T any, Ix Index] struct {
	data       T
	index      Ix
	sources    map[Ix]struct{}
	references map[Ix]struct{}
}

// NewVertex creates a vertex with the given payload and key and empty
// neighbor sets.
func NewVertex[T any, Ix Index](data T, index Ix) *Vertex[T, Ix] {
	return &Vertex[T, Ix]{
		data:       data,
		index:      index,
		sources:    make(map[Ix]struct{}),
		references: make(map[Ix]struct{}),
	}
}

// AddEdge absorbs an edge into the vertex's neighbor sets. An edge that
// originates here records its reference endpoint as a reference; an edge
// that terminates here records its source endpoint as a source. The two
// checks are independent. Edges that do not touch this vertex are ignored.
//
// Calling this on a vertex already stored in a graph bypasses the graph's
// root/leaf bookkeeping and cycle checking; submit edges through
// BullDag.AddEdge instead.
func (v *Vertex[T, Ix]) AddEdge(e Edge[Ix]) {
	if e.source == v.index {
		v.references[e.reference] = struct{}{}
	}
	if e.reference == v.index {
		v.sources[e.source] = struct{}{}
	}
}

// Data returns the vertex payload.
func (v *Vertex[T, Ix]) Data() T {
	return v.data
}

// Index returns the vertex key.
func (v *Vertex[T, Ix]) Index() Ix {
	return v.index
}

// Sources returns the keys of the vertices pointing into this one, in no
// particular order.
func (v *Vertex[T, Ix]) Sources() []Ix {
	out := make([]Ix, 0, len(v.sources))
	for ix := range v.sources {
		out = append(out, ix)
	}
	return out
}

// References returns the keys of the vertices this one points to, in no
// particular order.
func (v *Vertex[T, Ix]) References() []Ix {
	out := make([]Ix, 0, len(v.references))
	for ix := range v.references {
		out = append(out, ix)
	}
	return out
}

// IsSource reports whether target is a direct ancestor of this vertex.
func (v *Vertex[T, Ix]) IsSource(target Ix) bool {
	_, ok := v.sources[target]
	return ok
}

// IsReference reports whether target is a direct descendant of this vertex.
func (v *Vertex[T, Ix]) IsReference(target Ix) bool {
	_, ok := v.references[target]
	return ok
}

// NumSources returns the number of direct ancestors.
func (v *Vertex[T, Ix]) NumSources() int {
	return len(v.sources)
}

// NumReferences returns the number of direct descendants.
func (v *Vertex[T, Ix]) NumReferences() int {
	return len(v.references)
}

// Clone returns a deep copy of the vertex. The payload itself is copied by
// value; pointers inside T remain shared.
func (v *Vertex[T, Ix]) Clone() *Vertex[T, Ix] {
	c := &Vertex[T, Ix]{
		data:       v.data,
		index:      v.index,
		sources:    make(map[Ix]struct{}, len(v.sources)),
		references: make(map[Ix]struct{}, len(v.references)),
	}
	for ix := range v.sources {
		c.sources[ix] = struct{}{}
	}
	for ix := range v.references {
		c.references[ix] = struct{}{}
	}
	return c
}
