package bulldag

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// The snapshot format is a plain tree of maps, lists and scalars encoded
// with msgpack. It is a transparent data dump for embedding applications
// that want to checkpoint a graph; it carries no versioning guarantees.

type vertexRecord[T any, Ix Index] struct {
	Index      Ix   `msgpack:"index"`
	Data       T    `msgpack:"data"`
	Sources    []Ix `msgpack:"sources"`
	References []Ix `msgpack:"references"`
}

type edgeRecord[Ix Index] struct {
	Source    Ix `msgpack:"source"`
	Reference Ix `msgpack:"reference"`
}

type graphRecord[T any, Ix Index] struct {
	Vertices []vertexRecord[T, Ix] `msgpack:"vertices"`
	Edges    []edgeRecord[Ix]      `msgpack:"edges"`
}

// Snapshot serializes the whole graph. Root and leaf sets are derived
// state and are not written; Restore recomputes them.
func (g *BullDag[T, Ix]) Snapshot() ([]byte, error) {
	rec := graphRecord[T, Ix]{
		Vertices: make([]vertexRecord[T, Ix], 0, len(g.vertices)),
		Edges:    make([]edgeRecord[Ix], 0, len(g.edges)),
	}
	for _, v := range g.vertices {
		rec.Vertices = append(rec.Vertices, vertexRecord[T, Ix]{
			Index:      v.index,
			Data:       v.data,
			Sources:    v.Sources(),
			References: v.References(),
		})
	}
	for e := range g.edges {
		rec.Edges = append(rec.Edges, edgeRecord[Ix]{Source: e.source, Reference: e.reference})
	}

	data, err := msgpack.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode graph snapshot: %w", err)
	}
	return data, nil
}

// Restore rebuilds a graph from a Snapshot dump. Vertex neighbor sets and
// the edge set are taken from the dump; root and leaf membership is
// recomputed from the neighbor sets rather than trusted.
func Restore[T any, Ix Index](data []byte) (*BullDag[T, Ix], error) {
	var rec graphRecord[T, Ix]
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode graph snapshot: %w", err)
	}

	g := New[T, Ix]()
	for _, vr := range rec.Vertices {
		v := NewVertex(vr.Data, vr.Index)
		for _, s := range vr.Sources {
			v.sources[s] = struct{}{}
		}
		for _, r := range vr.References {
			v.references[r] = struct{}{}
		}
		g.vertices[v.index] = v
		g.reclassify(v)
	}
	for _, er := range rec.Edges {
		g.edges[NewEdge(er.Source, er.Reference)] = struct{}{}
	}
	return g, nil
}
