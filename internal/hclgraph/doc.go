// Package hclgraph loads graph definitions written in HCL and translates
// them into the format-agnostic config model.
//
// A definition file declares vertices and directed edges:
//
//	vertex "build" {
//	  data = "compile the tree"
//	}
//
//	vertex "test" {}
//
//	edge "build" "test" {}
//
// Definitions may be split across any number of .hcl files; loading a
// directory consolidates every file found under it into one model.
package hclgraph
