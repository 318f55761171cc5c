package bulldag

// Edge is an immutable ordered pair of vertex keys representing one
// directed arc from source to reference. Edge is a comparable value type:
// two edges are equal iff both endpoints match, which lets the graph keep
// its edge set as map keys.
type Edge[Ix Index] struct {
	source    Ix
	reference Ix
}

// NewEdge creates the directed edge source -> reference.
func NewEdge[Ix Index](source, reference Ix) Edge[Ix] {
	return Edge[Ix]{source: source, reference: reference}
}

// EdgeOf derives the edge connecting two vertices, source first. This is a
// pure projection of the vertices' keys, not a graph operation.
func EdgeOf[T any, Ix Index](source, reference *Vertex[T, Ix]) Edge[Ix] {
	return NewEdge(source.Index(), reference.Index())
}

// Source returns the origin endpoint of the edge.
func (e Edge[Ix]) Source() Ix {
	return e.source
}

// Reference returns the destination endpoint of the edge.
func (e Edge[Ix]) Reference() Ix {
	return e.reference
}
