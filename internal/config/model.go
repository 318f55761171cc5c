package config

import "github.com/zclconf/go-cty/cty"

// Model is the unified representation of a graph definition: the declared
// vertices and the directed edges between them. Slices preserve source
// order so build logging stays reproducible.
type Model struct {
	Vertices []*VertexDef
	Edges    []*EdgeDef
}

// VertexDef declares one vertex: a unique name and an optional payload
// value. Vertices only ever referenced by edges need no declaration; the
// builder creates them with a null payload.
type VertexDef struct {
	Name string
	Data cty.Value
}

// EdgeDef declares one directed edge from Source to Reference, both by
// vertex name.
type EdgeDef struct {
	Source    string
	Reference string
}
