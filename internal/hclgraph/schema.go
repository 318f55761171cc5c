package hclgraph

import "github.com/hashicorp/hcl/v2"

// hclVertex represents a `vertex` block from a definition file.
type hclVertex struct {
	Name string         `hcl:"name,label"`
	Data hcl.Expression `hcl:"data,optional"`
}

// hclEdge represents an `edge` block: two labels, source then reference.
type hclEdge struct {
	Source    string `hcl:"source,label"`
	Reference string `hcl:"reference,label"`
}

// hclGraphFile is the top-level structure of one definition file.
type hclGraphFile struct {
	Vertices []*hclVertex `hcl:"vertex,block"`
	Edges    []*hclEdge   `hcl:"edge,block"`
}
