// SPDX-License-Identifier: MIT
// Package: centrality/builder
//
// errors.go — sentinel errors for the builder package.
//
// Callers MUST use errors.Is(err, ErrX) to branch on semantics; constructors
// attach method context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a structurally invalid build request (e.g. nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
