// Package builder turns a loaded config model into a populated DAG
// container. Edge submissions that would close a cycle are dropped with a
// warning and reported per edge in the build result; everything else in
// the definition is still committed.
package builder
