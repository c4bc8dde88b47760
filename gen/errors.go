// SPDX-License-Identifier: MIT
// Package gen: sentinel errors. Callers branch with errors.Is; constructors
// attach context via %w. No constructor panics at runtime — validation
// panics are confined to WithX option builders.

package gen

import "errors"

// ErrTooFewNodes indicates that a node-count parameter is smaller than the
// allowed minimum for the requested topology.
var ErrTooFewNodes = errors.New("gen: parameter too small")

// ErrBadWidth indicates a non-positive attribute width f.
var ErrBadWidth = errors.New("gen: attribute width out of range")

// ErrInvalidProbability indicates that an edge probability is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("gen: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// seeded RNG (WithSeed or WithRand) and none was configured.
var ErrNeedRandSource = errors.New("gen: rng is required")
