package builder

import (
	"fmt"

	"github.com/algowalk/steptrace/core"
)

// Constructor applies one deterministic graph mutation using the resolved
// config. Implementations validate parameters early, return sentinel errors,
// emit nodes and edges in a stable documented order, and never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with the given graph options, resolves the
// builder options once, and applies the constructors in order. The first
// failure aborts; no partial cleanup is attempted.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("builder: nil constructor at index %d: %w", i, ErrBuildFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("builder: %w", err)
		}
	}
	return g, nil
}
