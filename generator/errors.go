// SPDX-License-Identifier: MIT
// Package: polygen/generator
//
// errors.go — sentinel errors for the generator package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`:
//       fmt.Errorf("%s: delta=%d must be > 0: %w", methodGenerate, delta, ErrInvalidArgument)
//   • Algorithms MUST NOT panic on caller input; panics are confined to
//     option constructor functions (WithX...) receiving meaningless values.
//
// Priority (tie-break when several validations fail):
//   • ErrNeedRandSource     — missing RNG handle (programmer error at the call site).
//   • ErrInvalidArgument    — δ, coefficient range, sizes.
//   • ErrInfeasible         — a valid-looking but unsatisfiable (m, target) pair.
//   • ErrInvariantViolation — only after assembly, never for bad input.

package generator

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a caller-facing input error: δ ≤ 0, a coefficient
// range that cannot produce a nonzero value, or an infeasible size combination.
// It is never retried internally.
var ErrInvalidArgument = errors.New("generator: invalid argument")

// ErrInfeasible indicates a row-total target smaller than the monomial count
// (every monomial needs total degree ≥ 1). It wraps ErrInvalidArgument, so both
// errors.Is(err, ErrInfeasible) and errors.Is(err, ErrInvalidArgument) hold.
var ErrInfeasible = fmt.Errorf("generator: infeasible target: %w", ErrInvalidArgument)

// ErrNeedRandSource indicates that a sampling step received a nil *rand.Rand.
var ErrNeedRandSource = errors.New("generator: rng is required")

// ErrInvariantViolation marks an internal consistency failure, e.g. the computed
// baseline differs from δ after repair. It signals a bug, not a user error;
// Generate never returns an Instance together with this error.
var ErrInvariantViolation = errors.New("generator: internal invariant violated")
