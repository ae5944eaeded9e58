// Package betweenness defines core types, sentinel errors and configuration
// options for shortest-path betweenness centrality (Brandes' algorithm).
//
// Options:
//
//	– Normalized:  apply the normalizing scale factors (default true).
//	– Endpoints:   count a path's source and target toward their own scores (default false).
//	– Samples:     estimate from k pivots instead of all sources (default: exact).
//	– Selector:    pivot-selection hook; RandomPivots(Seed) when unset.
//	– Weight:      named edge attribute or accessor; absent ⇒ every edge weighs 1.
//	– Tolerance:   distance difference still treated as a tie (default 0, exact).
//	– Workers:     goroutines sharing the pivot list (default 1).
//	– Subset:      restrict sources, targets and traversal to a vertex set.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the graph is nil.
//	– ErrInvalidWeight     if a traversed edge weighs ≤ 0, NaN or ±Inf.
//	– ErrInvalidSampleSize if k ≤ 0 or k > number of vertices.
//	– ErrBadPivots         if the pivot selector returns an invalid set.
//	– ErrUnknownVertex     if the subset names a vertex missing from the graph.
package betweenness

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/centrality/core"
)

// Sentinel errors returned by the betweenness implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("betweenness: graph is nil")

	// ErrInvalidWeight indicates an edge weight that is not strictly positive and finite.
	ErrInvalidWeight = errors.New("betweenness: edge weight must be positive and finite")

	// ErrInvalidSampleSize indicates k ≤ 0 or k greater than the vertex count.
	ErrInvalidSampleSize = errors.New("betweenness: sample size out of range")

	// ErrBadPivots indicates a selector result with the wrong size, duplicates or unknown vertices.
	ErrBadPivots = errors.New("betweenness: invalid pivot set")

	// ErrUnknownVertex indicates a subset entry that is not a vertex of the graph.
	ErrUnknownVertex = errors.New("betweenness: vertex not found in graph")
)

// Graph is the read-only view the algorithm needs from its graph collaborator.
// *core.Graph satisfies it.
//
//   - Vertices returns every vertex ID; the order fixes the pivot order of exact runs.
//   - Directed reports the graph's orientation, which selects the rescaling regime.
//   - Neighbors returns the outgoing (directed) or incident (undirected) edges of id.
type Graph interface {
	Vertices() []string
	Directed() bool
	Neighbors(id string) ([]*core.Edge, error)
}

// WeightFunc returns the traversal cost of an edge.
type WeightFunc func(e *core.Edge) float64

// PivotSelector chooses k distinct pivots among vertices. It is the external
// sampling hook: the core only validates its answer.
type PivotSelector func(g Graph, vertices []string, k int) ([]string, error)

// EdgeKey identifies an edge in edge-betweenness results. For undirected
// graphs From < To lexicographically.
type EdgeKey struct {
	From string
	To   string
}

// String renders the key as "From→To".
func (k EdgeKey) String() string {
	return fmt.Sprintf("%s→%s", k.From, k.To)
}

// Options configures a betweenness run.
type Options struct {
	Normalized bool          // apply normalizing scale factors
	Endpoints  bool          // include path endpoints
	Sampled    bool          // true once WithSamples was applied
	K          int           // number of pivots when Sampled
	Seed       int64         // forwarded to the default RandomPivots selector
	Selector   PivotSelector // pivot selection hook; nil ⇒ RandomPivots(Seed)
	WeightAttr string        // edge attribute holding the weight; "" ⇒ unweighted
	Weight     WeightFunc    // explicit accessor; wins over WeightAttr
	Tolerance  float64       // tie tolerance on distances
	Workers    int           // goroutines sharing the pivot list
	Subset     []string      // restrict the computation to these vertices
}

// Option represents a functional option for configuring a run.
type Option func(*Options)

// DefaultOptions returns exact, normalized, unweighted, single-worker options.
func DefaultOptions() Options {
	return Options{
		Normalized: true,
		Workers:    1,
	}
}

// WithNormalized toggles the normalizing scale factors.
func WithNormalized(normalized bool) Option {
	return func(o *Options) {
		o.Normalized = normalized
	}
}

// WithEndpoints toggles counting path endpoints toward their own betweenness.
func WithEndpoints(endpoints bool) Option {
	return func(o *Options) {
		o.Endpoints = endpoints
	}
}

// WithSamples estimates betweenness from k pivots. k is validated against
// the vertex count when the run starts (ErrInvalidSampleSize).
func WithSamples(k int) Option {
	return func(o *Options) {
		o.Sampled = true
		o.K = k
	}
}

// WithSeed sets the seed forwarded to the default RandomPivots selector.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithPivotSelector installs a custom sampling policy. Panics on nil.
func WithPivotSelector(sel PivotSelector) Option {
	if sel == nil {
		panic("betweenness: WithPivotSelector(nil)")
	}
	return func(o *Options) {
		o.Selector = sel
	}
}

// WithWeight reads edge weights from the named attribute (see core.Edge.Attr).
// Edges without the attribute weigh 1. An empty name means unweighted.
func WithWeight(attr string) Option {
	return func(o *Options) {
		o.WeightAttr = attr
	}
}

// WithWeightFunc supplies an arbitrary weight accessor. Panics on nil.
func WithWeightFunc(fn WeightFunc) Option {
	if fn == nil {
		panic("betweenness: WithWeightFunc(nil)")
	}
	return func(o *Options) {
		o.Weight = fn
	}
}

// WithTieTolerance treats two distances within eps as equal when counting
// shortest paths. Panics if eps is negative or NaN.
func WithTieTolerance(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) {
		panic(fmt.Sprintf("betweenness: WithTieTolerance(%g) must be ≥ 0", eps))
	}
	return func(o *Options) {
		o.Tolerance = eps
	}
}

// WithWorkers spreads pivots across n goroutines. Panics if n < 1.
//
// Results are deterministic for a fixed n. Different n may differ in the last
// bits because partial sums are added in a different order.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("betweenness: WithWorkers(%d) must be ≥ 1", n))
	}
	return func(o *Options) {
		o.Workers = n
	}
}

// WithVertexSubset restricts sources, targets and traversal to ids.
// Edges leaving the subset are ignored and rescaling uses len(subset).
func WithVertexSubset(ids ...string) Option {
	return func(o *Options) {
		o.Subset = append([]string(nil), ids...)
	}
}

// weightOf resolves the configured accessor for one edge.
func (o *Options) weightOf(e *core.Edge) float64 {
	if o.Weight != nil {
		return o.Weight(e)
	}
	if o.WeightAttr == "" {
		return 1
	}
	if w, ok := e.Attr(o.WeightAttr); ok {
		return w
	}

	return 1
}
