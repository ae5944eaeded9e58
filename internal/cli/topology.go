package cli

import (
	"fmt"

	"github.com/katalvlaran/centrality/builder"
	"github.com/katalvlaran/centrality/core"
	"github.com/katalvlaran/centrality/internal/config"
)

// buildTopology generates the configured graph with the builder package.
func buildTopology(t config.Topology) (*core.Graph, error) {
	var con builder.Constructor
	switch t.Kind {
	case config.KindPath:
		con = builder.Path(t.N)
	case config.KindCycle:
		con = builder.Cycle(t.N)
	case config.KindStar:
		con = builder.Star(t.N)
	case config.KindWheel:
		con = builder.Wheel(t.N)
	case config.KindComplete:
		con = builder.Complete(t.N)
	case config.KindGrid:
		con = builder.Grid(t.Rows, t.Cols)
	case config.KindRandom:
		con = builder.RandomSparse(t.N, t.Density)
	default:
		return nil, fmt.Errorf("%w: topology.kind %q", config.ErrInvalidConfig, t.Kind)
	}

	var gopts []core.GraphOption
	if t.Directed {
		gopts = append(gopts, core.WithDirected(true))
	}
	bopts := []builder.BuilderOption{builder.WithSeed(t.Seed)}
	if t.Weighted {
		gopts = append(gopts, core.WithWeighted())
		bopts = append(bopts, builder.WithWeightFn(builder.IntegerWeightFn(t.MinWeight, t.MaxWeight)))
	}

	return builder.BuildGraph(gopts, bopts, con)
}
