// Package cli wires the lvlath-bc cobra commands: generate a topology,
// score it with betweenness centrality and print a ranked report.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/centrality/internal/config"
)

// Version is overridden at link time with -ldflags "-X .../internal/cli.Version=…".
var Version = "dev"

// flagKeys maps persistent flags onto viper keys.
var flagKeys = map[string]string{
	"topology":   "topology.kind",
	"n":          "topology.n",
	"rows":       "topology.rows",
	"cols":       "topology.cols",
	"density":    "topology.density",
	"graph-seed": "topology.seed",
	"directed":   "topology.directed",
	"weighted":   "topology.weighted",
	"min-weight": "topology.min_weight",
	"max-weight": "topology.max_weight",
	"normalized": "centrality.normalized",
	"endpoints":  "centrality.endpoints",
	"k":          "centrality.k",
	"seed":       "centrality.seed",
	"weight":     "centrality.weight",
	"workers":    "centrality.workers",
	"tolerance":  "centrality.tolerance",
	"subset":     "centrality.subset",
	"format":     "output.format",
	"top":        "output.top",
	"log-level":  "log_level",
}

// NewRootCommand builds a fresh command tree bound to the global viper instance.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "lvlath-bc",
		Short:         "Shortest-path betweenness centrality for generated graphs",
		Long:          "lvlath-bc builds a graph topology, scores its vertices or edges with Brandes' betweenness centrality and prints a ranked report.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			for name, key := range flagKeys {
				if err := viper.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
					return fmt.Errorf("binding --%s: %w", name, err)
				}
			}
			cfgFile, _ := cmd.Flags().GetString("config")
			return config.Init(cfgFile)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default .lvlath-bc.yaml or .toml)")
	pf.String("topology", config.KindRandom, "graph kind: path|cycle|star|wheel|complete|grid|random")
	pf.Int("n", 50, "vertex count for path/cycle/star/wheel/complete/random")
	pf.Int("rows", 5, "grid rows")
	pf.Int("cols", 5, "grid columns")
	pf.Float64("density", 0.1, "edge probability for random graphs")
	pf.Int64("graph-seed", 1, "seed for random topology and weights")
	pf.Bool("directed", false, "build a directed graph (both arcs per edge)")
	pf.Bool("weighted", false, "assign integer weights in [min-weight, max-weight]")
	pf.Int("min-weight", 1, "smallest generated edge weight")
	pf.Int("max-weight", 10, "largest generated edge weight")
	pf.Bool("normalized", true, "apply normalizing scale factors")
	pf.Bool("endpoints", false, "count path endpoints")
	pf.Int("k", 0, "sample k pivots (0 = exact)")
	pf.Int64("seed", 0, "pivot sampling seed")
	pf.String("weight", "", "edge attribute holding weights (default \"weight\" on weighted graphs)")
	pf.Int("workers", 1, "goroutines sharing the pivots")
	pf.Float64("tolerance", 0, "distance difference treated as a tie")
	pf.StringSlice("subset", nil, "restrict the computation to these vertex IDs")
	pf.String("format", config.FormatText, "output format: text|json|yaml|toml|prom")
	pf.Int("top", 0, "print only the top N rows (0 = all)")
	pf.String("log-level", "info", "log level: debug|info|warn|error")

	root.AddCommand(newNodesCommand(), newEdgesCommand(), newVersionCommand())

	return root
}

// Execute runs the command tree and exits 1 on error.
func Execute(ctx context.Context) {
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lvlath-bc version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "lvlath-bc %s\n", Version)
			return err
		},
	}
}
