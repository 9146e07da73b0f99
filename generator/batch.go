// SPDX-License-Identifier: MIT
// Package: polygen/generator
//
// batch.go — many instances from one parent stream.
//
// Member i draws from its own stream seeded with deriveSeed(parent.Int63(), i),
// derived in index order before member i is built. The child seed is recorded
// on the member, so Generate(δᵢ, WithSeed(*inst.Seed), opts...) replays it alone.

package generator

import "fmt"

// GenerateBatch generates one instance per entry of deltas.
// All deltas and the coefficient window are validated before any sampling;
// the first failure aborts the batch.
func GenerateBatch(deltas []int, opts ...Option) ([]*Instance, error) {
	cfg := newConfig(opts...)
	for i, d := range deltas {
		if err := cfg.validate(d); err != nil {
			return nil, fmt.Errorf("%s: index %d: %w", methodGenerateBatch, i, err)
		}
	}

	parent := cfg.resolveRand()
	out := make([]*Instance, len(deltas))
	for i, d := range deltas {
		child, seed := deriveRand(parent, uint64(i))
		inst, err := assemble(d, cfg, child, &seed)
		if err != nil {
			return nil, fmt.Errorf("%s: index %d: %w", methodGenerateBatch, i, err)
		}
		out[i] = inst
	}

	return out, nil
}
