// Package config holds the format-agnostic model of a graph definition.
// Loaders (today only HCL) translate their source format into this model,
// and the builder consumes it without knowing where it came from.
package config
