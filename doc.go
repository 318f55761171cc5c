// Package bulldag provides a generic, insert-only, in-memory directed
// acyclic graph.
//
// A BullDag owns a set of typed payload vertices connected by directional
// edges and guarantees the structure never contains a cycle: every edge
// submission is checked against the committed graph and rejected edges
// leave the graph untouched. The container maintains the derived root and
// leaf key sets incrementally and offers ancestor/descendant tracing and a
// topological ordering over the committed edge set.
//
// The container is synchronous and single-threaded. Embedding applications
// that share one graph across goroutines must supply their own
// synchronization around it; the walker subpackage shows the intended
// pattern for concurrent consumption of an already-built graph.
package bulldag
