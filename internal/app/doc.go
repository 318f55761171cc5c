// Package app wires the CLI pipeline together: configuration, logging,
// loading a graph definition, building the container, and producing the
// requested output (topological order, trace, or snapshot).
package app
