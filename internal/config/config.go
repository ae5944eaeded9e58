// Package config loads the lvlath-bc run configuration from defaults, an
// optional YAML or TOML file, LVLATH_BC_* environment variables and bound flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/centrality/internal/ctxlog"
	"github.com/katalvlaran/centrality/internal/report"
)

// EnvPrefix is prepended to every environment override, e.g. LVLATH_BC_TOPOLOGY_N.
const EnvPrefix = "LVLATH_BC"

// Topology kinds understood by the CLI.
const (
	KindPath     = "path"
	KindCycle    = "cycle"
	KindStar     = "star"
	KindWheel    = "wheel"
	KindComplete = "complete"
	KindGrid     = "grid"
	KindRandom   = "random"
)

// Output formats, re-exported from the report package.
const (
	FormatText = report.FormatText
	FormatJSON = report.FormatJSON
	FormatYAML = report.FormatYAML
	FormatTOML = report.FormatTOML
	FormatProm = report.FormatProm
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Topology describes the generated input graph.
type Topology struct {
	Kind      string  `mapstructure:"kind"`
	N         int     `mapstructure:"n"`
	Rows      int     `mapstructure:"rows"`
	Cols      int     `mapstructure:"cols"`
	Density   float64 `mapstructure:"density"`
	Seed      int64   `mapstructure:"seed"`
	Directed  bool    `mapstructure:"directed"`
	Weighted  bool    `mapstructure:"weighted"`
	MinWeight int     `mapstructure:"min_weight"`
	MaxWeight int     `mapstructure:"max_weight"`
}

// Centrality mirrors the betweenness options.
type Centrality struct {
	Normalized bool     `mapstructure:"normalized"`
	Endpoints  bool     `mapstructure:"endpoints"`
	K          int      `mapstructure:"k"`
	Seed       int64    `mapstructure:"seed"`
	Weight     string   `mapstructure:"weight"`
	Workers    int      `mapstructure:"workers"`
	Tolerance  float64  `mapstructure:"tolerance"`
	Subset     []string `mapstructure:"subset"`
}

// Output selects the report encoding and how many rows to keep (0 = all).
type Output struct {
	Format string `mapstructure:"format"`
	Top    int    `mapstructure:"top"`
}

// Config holds all runtime configuration for one lvlath-bc invocation.
type Config struct {
	Topology   Topology   `mapstructure:"topology"`
	Centrality Centrality `mapstructure:"centrality"`
	Output     Output     `mapstructure:"output"`
	LogLevel   string     `mapstructure:"log_level"`
}

// Init points viper at cfgFile, or searches .lvlath-bc.{yaml,toml} in the
// working and home directories, and enables environment overrides.
// A missing default config file is not an error.
func Init(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".lvlath-bc")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: reading %s: %w", cfgFile, err)
	}

	return nil
}

// SetDefaults registers built-in defaults for every key.
func SetDefaults() {
	viper.SetDefault("topology.kind", KindRandom)
	viper.SetDefault("topology.n", 50)
	viper.SetDefault("topology.rows", 5)
	viper.SetDefault("topology.cols", 5)
	viper.SetDefault("topology.density", 0.1)
	viper.SetDefault("topology.seed", 1)
	viper.SetDefault("topology.directed", false)
	viper.SetDefault("topology.weighted", false)
	viper.SetDefault("topology.min_weight", 1)
	viper.SetDefault("topology.max_weight", 10)

	viper.SetDefault("centrality.normalized", true)
	viper.SetDefault("centrality.endpoints", false)
	viper.SetDefault("centrality.k", 0)
	viper.SetDefault("centrality.seed", 0)
	viper.SetDefault("centrality.weight", "")
	viper.SetDefault("centrality.workers", 1)
	viper.SetDefault("centrality.tolerance", 0.0)
	viper.SetDefault("centrality.subset", []string{})

	viper.SetDefault("output.format", FormatText)
	viper.SetDefault("output.top", 0)

	viper.SetDefault("log_level", "info")
}

// Load applies defaults, decodes the merged viper state and validates it.
func Load() (Config, error) {
	SetDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decoding: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects values no command can run with.
func (c Config) Validate() error {
	switch c.Topology.Kind {
	case KindPath, KindCycle, KindStar, KindWheel, KindComplete, KindGrid, KindRandom:
	default:
		return fmt.Errorf("%w: topology.kind %q", ErrInvalidConfig, c.Topology.Kind)
	}
	if c.Topology.Kind == KindRandom && (c.Topology.Density < 0 || c.Topology.Density > 1) {
		return fmt.Errorf("%w: topology.density %g not in [0,1]", ErrInvalidConfig, c.Topology.Density)
	}
	if c.Topology.Weighted && (c.Topology.MinWeight < 1 || c.Topology.MaxWeight < c.Topology.MinWeight) {
		return fmt.Errorf("%w: weights need 1 ≤ min_weight ≤ max_weight, got %d..%d",
			ErrInvalidConfig, c.Topology.MinWeight, c.Topology.MaxWeight)
	}

	if c.Centrality.K < 0 {
		return fmt.Errorf("%w: centrality.k %d < 0", ErrInvalidConfig, c.Centrality.K)
	}
	if c.Centrality.Workers < 1 {
		return fmt.Errorf("%w: centrality.workers %d < 1", ErrInvalidConfig, c.Centrality.Workers)
	}
	if !(c.Centrality.Tolerance >= 0) {
		return fmt.Errorf("%w: centrality.tolerance %g < 0", ErrInvalidConfig, c.Centrality.Tolerance)
	}

	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML, FormatTOML, FormatProm:
	default:
		return fmt.Errorf("%w: output.format %q", ErrInvalidConfig, c.Output.Format)
	}
	if c.Output.Top < 0 {
		return fmt.Errorf("%w: output.top %d < 0", ErrInvalidConfig, c.Output.Top)
	}

	if _, err := ctxlog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}
