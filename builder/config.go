// SPDX-License-Identifier: MIT
// Package: centrality/builder
//
// config.go — internal configuration, deterministic defaults and options.
//
// Deterministic defaults:
//   • idFn      = decimalID  ("0","1","2",...)
//   • rng       = nil        (pure/deterministic unless seeded)
//   • weightFn  = DefaultWeightFn (constant 1)
//   • symmetric = true       (directed graphs get both arcs per topology edge)
//
// Option constructors VALIDATE and PANIC on meaningless inputs.
// Algorithms themselves MUST NOT panic.

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn      func(int) string
	rng       *rand.Rand
	weightFn  WeightFn
	symmetric bool
}

// BuilderOption customizes constructors by mutating a builderConfig before construction.
type BuilderOption func(*builderConfig)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      decimalID,
		weightFn:  DefaultWeightFn,
		symmetric: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// decimalID renders an index as a base-10 string ("0","1","2",...).
func decimalID(i int) string {
	return strconv.Itoa(i)
}

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithIDPrefix is shorthand for WithIDScheme(prefix + decimal index), e.g. "v0","v1".
func WithIDPrefix(prefix string) BuilderOption {
	return WithIDScheme(func(i int) string { return prefix + strconv.Itoa(i) })
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithWeightFn overrides the per-edge weight generator (weighted graphs only).
// Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithOneWay makes directed graphs receive a single arc per topology edge
// (u→v in emission order) instead of the symmetric pair.
func WithOneWay() BuilderOption {
	return func(c *builderConfig) {
		c.symmetric = false
	}
}
