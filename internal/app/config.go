package app

import (
	"errors"
	"fmt"
)

// Trace directions accepted on the command line.
const (
	TraceSources    = "sources"
	TraceReferences = "references"
)

// Config holds everything an App instance needs to run.
type Config struct {
	GraphPath string // .hcl file or directory of .hcl files

	TraceVertex    string // when set, print a trace instead of the topological order
	TraceDirection string // "sources" or "references"
	SnapshotPath   string // when set, write a msgpack snapshot instead of printing

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and applies defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.GraphPath == "" {
		return nil, errors.New("GraphPath is a required configuration field and cannot be empty")
	}

	if cfg.TraceDirection == "" {
		cfg.TraceDirection = TraceSources
	}
	if cfg.TraceDirection != TraceSources && cfg.TraceDirection != TraceReferences {
		return nil, fmt.Errorf("invalid trace direction %q: must be %q or %q",
			cfg.TraceDirection, TraceSources, TraceReferences)
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "json"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return &cfg, nil
}
