package builder

import (
	"fmt"

	"github.com/nileshpatra/gubbins/core"
)

// Constructor applies one deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early and return only
// sentinel errors; they never panic.
type Constructor func(g *core.Graph, cfg *builderConfig) error

// BuildGraph creates a new core.Graph with the given graph options,
// resolves bopts into a config, and applies each constructor in order.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	return g, nil
}
