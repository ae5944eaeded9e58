package cli

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/centrality/betweenness"
	"github.com/katalvlaran/centrality/core"
	"github.com/katalvlaran/centrality/internal/config"
	"github.com/katalvlaran/centrality/internal/ctxlog"
	"github.com/katalvlaran/centrality/internal/report"
)

func newNodesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nodes",
		Short: "Rank vertices by betweenness centrality",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCommand(cmd, report.KindNodes)
		},
	}
	cmd.Flags().Bool("watch", false, "re-run whenever the config file changes")
	return cmd
}

func newEdgesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edges",
		Short: "Rank edges by betweenness centrality",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCommand(cmd, report.KindEdges)
		},
	}
	cmd.Flags().Bool("watch", false, "re-run whenever the config file changes")
	return cmd
}

// runCommand loads config, installs the logger and computes once, or keeps
// recomputing on config changes when --watch is set.
func runCommand(cmd *cobra.Command, kind string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := ctxlog.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	ctx := ctxlog.WithLogger(cmd.Context(), logger)

	if err = compute(ctx, cmd.OutOrStdout(), cfg, kind); err != nil {
		return err
	}
	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		return watchConfig(ctx, cmd.OutOrStdout(), kind)
	}

	return nil
}

// compute builds the configured topology, scores it and writes the report.
func compute(ctx context.Context, w io.Writer, cfg config.Config, kind string) error {
	log := ctxlog.FromContext(ctx)

	g, err := buildTopology(cfg.Topology)
	if err != nil {
		return err
	}
	log.Debug("topology built",
		"kind", cfg.Topology.Kind, "vertices", g.VertexCount(), "edges", g.EdgeCount(),
		"directed", cfg.Topology.Directed, "weighted", cfg.Topology.Weighted)

	table := report.Table{
		Kind:       kind,
		Topology:   cfg.Topology.Kind,
		Vertices:   g.VertexCount(),
		Edges:      g.EdgeCount(),
		Normalized: cfg.Centrality.Normalized,
		Samples:    cfg.Centrality.K,
	}

	start := time.Now()
	opts := centralityOptions(cfg)
	switch kind {
	case report.KindEdges:
		scores, err := betweenness.EdgesContext(ctx, g, opts...)
		if err != nil {
			return err
		}
		table.Rows = report.EdgeRows(scores)
	default:
		scores, err := betweenness.NodesContext(ctx, g, opts...)
		if err != nil {
			return err
		}
		table.Rows = report.NodeRows(scores)
	}
	log.Info("betweenness computed",
		"kind", kind, "topology", cfg.Topology.Kind,
		"vertices", table.Vertices, "edges", table.Edges,
		"pivots", pivotCount(cfg, table.Vertices), "workers", cfg.Centrality.Workers,
		"elapsed", time.Since(start))

	table.Top(cfg.Output.Top)

	return report.Write(w, cfg.Output.Format, table)
}

// centralityOptions translates the config into betweenness options.
// Weighted topologies read the built-in weight attribute unless another is named.
func centralityOptions(cfg config.Config) []betweenness.Option {
	c := cfg.Centrality
	opts := []betweenness.Option{
		betweenness.WithNormalized(c.Normalized),
		betweenness.WithEndpoints(c.Endpoints),
		betweenness.WithWorkers(c.Workers),
		betweenness.WithTieTolerance(c.Tolerance),
	}

	weight := c.Weight
	if weight == "" && cfg.Topology.Weighted {
		weight = core.WeightAttr
	}
	if weight != "" {
		opts = append(opts, betweenness.WithWeight(weight))
	}
	if c.K > 0 {
		opts = append(opts, betweenness.WithSamples(c.K), betweenness.WithSeed(c.Seed))
	}
	if len(c.Subset) > 0 {
		opts = append(opts, betweenness.WithVertexSubset(c.Subset...))
	}

	return opts
}

func pivotCount(cfg config.Config, n int) int {
	if cfg.Centrality.K > 0 {
		return cfg.Centrality.K
	}
	if len(cfg.Centrality.Subset) > 0 {
		return len(cfg.Centrality.Subset)
	}
	return n
}

// watchConfig recomputes on every write to the config file until ctx is done.
// Runs are serialized; a failing run is logged and the watch continues.
func watchConfig(ctx context.Context, w io.Writer, kind string) error {
	if viper.ConfigFileUsed() == "" {
		return fmt.Errorf("--watch requires a config file")
	}
	log := ctxlog.FromContext(ctx)

	var mu sync.Mutex
	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		mu.Lock()
		defer mu.Unlock()

		log.Info("config changed", "file", e.Name, "op", e.Op.String())
		cfg, err := config.Load()
		if err != nil {
			log.Error("reload failed", "err", err)
			return
		}
		if err = compute(ctx, w, cfg, kind); err != nil {
			log.Error("recompute failed", "err", err)
		}
	})
	viper.WatchConfig()
	log.Info("watching config", "file", viper.ConfigFileUsed())

	<-ctx.Done()
	return nil
}
