// Package walker runs a callback over every vertex of a BullDag with a
// worker pool, visiting a vertex only after all of its sources have been
// visited. It is the scheduling companion to the container: the graph
// stays single-threaded and is only read, while the walker keeps its own
// per-vertex dependency counters.
package walker
