// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/polygen/generator"
)

// topCombinations bounds the "most common" listing.
const topCombinations = 5

func (a *app) runSizes(args []string) error {
	fs := a.newFlagSet("sizes")
	delta := fs.Int("delta", 0, "difficulty parameter δ")
	runs := fs.Int("runs", 20, "number of seeds (0..runs-1)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !isSet(fs, "delta") {
		return fmt.Errorf("%w: sizes: -delta is required", errUsage)
	}
	if *runs < 1 {
		return fmt.Errorf("%w: sizes: -runs %d must be >= 1", errUsage, *runs)
	}

	seeds := make([]int64, *runs)
	for i := range seeds {
		seeds[i] = int64(i)
	}
	buckets, err := generator.SweepSizes(*delta, seeds)
	if err != nil {
		return err
	}

	mLo, mHi, nLo, nHi := buckets[0].M, buckets[0].M, buckets[0].N, buckets[0].N
	for _, b := range buckets {
		mLo, mHi = min(mLo, b.M), max(mHi, b.M)
		nLo, nHi = min(nLo, b.N), max(nHi, b.N)
	}

	w := a.stdout
	fmt.Fprintf(w, "Analyzing (m, n) choices for δ = %d over %d runs:\n", *delta, *runs)
	fmt.Fprintf(w, "Unique (m, n) combinations: %d\n", len(buckets))
	fmt.Fprintf(w, "Range of m values: %d to %d\n", mLo, mHi)
	fmt.Fprintf(w, "Range of n values: %d to %d\n", nLo, nHi)
	fmt.Fprintf(w, "Most common combinations:\n")
	for _, b := range buckets[:min(topCombinations, len(buckets))] {
		fmt.Fprintf(w, "  (m=%d, n=%d): %d times\n", b.M, b.N, b.Count)
	}

	return nil
}
