// SPDX-License-Identifier: MIT
// Package: polygen/generator
//
// repair.go — ConstraintEnforcer: unique rows and covered columns, row sums fixed.
//
// Canonical procedure:
//   1. Duplicate pass (rows in ascending order). A row whose pattern occurs more
//      than once gets up to `attempts` randomized unit transfers p→q:
//        • q: a uniformly chosen zero column if any exist, otherwise one of the
//          (attempt+1) least-covered columns (ties by index), so early attempts
//          aim at the weakest columns and later ones widen the search;
//        • p: a uniformly chosen positive column of the row, p ≠ q.
//      The first transfer whose resulting pattern is absent from the multiset is
//      kept. When the budget runs out an exhaustive scan over (p, q) pairs in
//      ascending order takes the first unique result. If none exists the row is
//      left as is (tolerated, counted in the report).
//   2. Zero-column pass (columns in ascending order, repeated while it makes
//      progress, at most n+1 rounds). For each still-empty column j every
//      (row, donor) pair is ranked by: keeps rows unique > keeps the donor
//      column covered > larger donor mass > lower row, lower column. The best
//      move is applied; if it created a duplicate, one corrective transfer in
//      that row tries to re-break it without emptying column j.
//
// Invariants:
//   - Every mutation is a matrix.Dense.Transfer on a clone of the input: one
//     unit within one row.
//   - Row sums, hence the baseline, never change.
//   - Work is bounded: O(m·attempts + m·n²) for pass 1, O((n+1)·n·m·n) for pass 2.
//
// Determinism:
//   - Randomness is consumed only in pass 1, in row order, from the call's stream.

package generator

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/polygen/matrix"
)

// RepairReport summarizes what the repair phase did and what it could not fix.
// A report with DuplicateRows == 0 and ZeroColumns == 0 is Complete.
type RepairReport struct {
	RandomMoves     int // duplicate fixes found by randomized transfers
	ExhaustiveMoves int // duplicate fixes found by the exhaustive scan
	ZeroColumnMoves int // transfers into empty columns
	CorrectiveMoves int // follow-up transfers re-breaking a duplicate
	DuplicateRows   int // rows still sharing a pattern with another row
	ZeroColumns     int // columns still entirely zero
}

// Moves returns the total number of unit transfers applied.
func (r RepairReport) Moves() int {
	return r.RandomMoves + r.ExhaustiveMoves + r.ZeroColumnMoves + r.CorrectiveMoves
}

// Complete reports whether every structural constraint holds after repair.
func (r RepairReport) Complete() bool {
	return r.DuplicateRows == 0 && r.ZeroColumns == 0
}

// Repair returns a repaired copy of k; k itself is not modified.
// Repair never fails on structurally impossible inputs: it returns the best
// matrix found and reports the leftovers. Errors are returned for nil inputs,
// a negative attempt budget, or a rejected transfer (ErrInvariantViolation).
func Repair(k *matrix.Dense, rng *rand.Rand, attempts int) (*matrix.Dense, RepairReport, error) {
	if err := matrix.ValidateNotNil(k); err != nil {
		return nil, RepairReport{}, fmt.Errorf("%s: %w", methodRepair, err)
	}
	if rng == nil {
		return nil, RepairReport{}, fmt.Errorf("%s: %w", methodRepair, ErrNeedRandSource)
	}
	if attempts < 0 {
		return nil, RepairReport{}, fmt.Errorf("%s: attempts=%d < 0: %w", methodRepair, attempts, ErrInvalidArgument)
	}

	r := newRepairer(k, rng, attempts)
	if err := r.breakDuplicates(); err != nil {
		return nil, RepairReport{}, fmt.Errorf("%s: %w: %w", methodRepair, ErrInvariantViolation, err)
	}
	if err := r.fillZeroColumns(); err != nil {
		return nil, RepairReport{}, fmt.Errorf("%s: %w: %w", methodRepair, ErrInvariantViolation, err)
	}
	r.report.DuplicateRows = r.k.DuplicateRows()
	r.report.ZeroColumns = len(r.k.ZeroColumns())

	return r.k, r.report, nil
}

// repairer holds the mutable working state of one Repair call.
type repairer struct {
	k        *matrix.Dense   // working clone; mutated only through Transfer
	rows     [][]int         // row-major view of k, refreshed after each transfer
	n        int             // column count
	seen     matrix.Multiset // pattern → occurrences
	cols     []int           // per-column sums
	rng      *rand.Rand
	attempts int
	report   RepairReport
}

func newRepairer(k *matrix.Dense, rng *rand.Rand, attempts int) *repairer {
	work := k.Clone()

	return &repairer{
		k:        work,
		rows:     work.ToRows(),
		n:        k.Cols(),
		seen:     k.Patterns(),
		cols:     k.ColSums(),
		rng:      rng,
		attempts: attempts,
	}
}

// moved returns a copy of row i with one unit moved p→q.
func (r *repairer) moved(i, p, q int) []int {
	cand := make([]int, r.n)
	copy(cand, r.rows[i])
	cand[p]--
	cand[q]++

	return cand
}

// apply commits the transfer p→q in row i and updates the bookkeeping.
func (r *repairer) apply(i, p, q int) error {
	old := matrix.KeyOf(r.rows[i])
	if err := r.k.Transfer(i, p, q); err != nil {
		return err
	}
	row, err := r.k.Row(i)
	if err != nil {
		return err
	}
	r.rows[i] = row
	r.seen.Replace(old, matrix.KeyOf(row))
	r.cols[p]--
	r.cols[q]++

	return nil
}

// uniqueAfter reports whether moving p→q in row i yields an unseen pattern.
func (r *repairer) uniqueAfter(i, p, q int) bool {
	return r.seen.Count(matrix.KeyOf(r.moved(i, p, q))) == 0
}

// isDuplicate reports whether row i currently shares its pattern.
func (r *repairer) isDuplicate(i int) bool {
	return r.seen.Count(matrix.KeyOf(r.rows[i])) > 1
}

// ---------- pass 1: duplicates ----------

func (r *repairer) breakDuplicates() error {
	for i := range r.rows {
		if !r.isDuplicate(i) {
			continue
		}
		ok, err := r.randomBreak(i)
		if err != nil {
			return err
		}
		if ok {
			r.report.RandomMoves++
			continue
		}
		if ok, err = r.exhaustiveBreak(i); err != nil {
			return err
		}
		if ok {
			r.report.ExhaustiveMoves++
		}
		// otherwise tolerated: uniqueness may be combinatorially impossible
	}

	return nil
}

// randomBreak tries up to r.attempts randomized transfers on row i.
func (r *repairer) randomBreak(i int) (bool, error) {
	var attempt int
	for attempt = 0; attempt < r.attempts; attempt++ {
		q := r.pickTarget(attempt)
		p := r.pickDonor(i, q)
		if p < 0 {
			continue
		}
		if r.uniqueAfter(i, p, q) {
			return true, r.apply(i, p, q)
		}
	}

	return false, nil
}

// pickTarget favours empty columns, then the least-covered ones.
func (r *repairer) pickTarget(attempt int) int {
	var zeros []int
	for j, s := range r.cols {
		if s == 0 {
			zeros = append(zeros, j)
		}
	}
	if len(zeros) > 0 {
		return zeros[r.rng.Intn(len(zeros))]
	}

	order := r.coverageOrder()
	window := min(len(order), attempt+1)

	return order[r.rng.Intn(window)]
}

// pickDonor returns a uniformly chosen positive column of row i other than q, or -1.
func (r *repairer) pickDonor(i, q int) int {
	donors := make([]int, 0, r.n)
	for p, v := range r.rows[i] {
		if v > 0 && p != q {
			donors = append(donors, p)
		}
	}
	if len(donors) == 0 {
		return -1
	}

	return donors[r.rng.Intn(len(donors))]
}

// coverageOrder lists columns by ascending coverage, ties by index.
func (r *repairer) coverageOrder() []int {
	order := make([]int, r.n)
	for j := range order {
		order[j] = j
	}
	sort.SliceStable(order, func(a, b int) bool {
		return r.cols[order[a]] < r.cols[order[b]]
	})

	return order
}

// exhaustiveBreak scans every (p, q) pair of row i in ascending order.
func (r *repairer) exhaustiveBreak(i int) (bool, error) {
	var p, q int
	for p = 0; p < r.n; p++ {
		if r.rows[i][p] == 0 {
			continue
		}
		for q = 0; q < r.n; q++ {
			if q == p {
				continue
			}
			if r.uniqueAfter(i, p, q) {
				return true, r.apply(i, p, q)
			}
		}
	}

	return false, nil
}

// ---------- pass 2: zero columns ----------

func (r *repairer) fillZeroColumns() error {
	var round int
	for round = 0; round <= r.n; round++ {
		progressed := false
		for j := range r.cols {
			if r.cols[j] != 0 {
				continue
			}
			ok, err := r.fillColumn(j)
			if err != nil {
				return err
			}
			progressed = progressed || ok
		}
		if !progressed {
			return nil
		}
	}

	return nil
}

// zeroMove is a candidate transfer into an empty column.
type zeroMove struct {
	row, donor int
	unique     bool // resulting pattern unseen
	keepsCover bool // donor column stays non-empty
	mass       int  // donor cell value before the move
}

// better ranks candidates: unique > keepsCover > mass; earlier (row, donor) wins ties.
func (a zeroMove) better(b zeroMove) bool {
	if a.unique != b.unique {
		return a.unique
	}
	if a.keepsCover != b.keepsCover {
		return a.keepsCover
	}

	return a.mass > b.mass
}

// fillColumn moves one unit into empty column j. Reports whether a move happened.
func (r *repairer) fillColumn(j int) (bool, error) {
	var (
		best  zeroMove
		found bool
		i, p  int
	)
	for i = range r.rows {
		for p = 0; p < r.n; p++ {
			if p == j || r.rows[i][p] == 0 {
				continue
			}
			cand := zeroMove{
				row:        i,
				donor:      p,
				unique:     r.uniqueAfter(i, p, j),
				keepsCover: r.cols[p] > 1,
				mass:       r.rows[i][p],
			}
			if !found || cand.better(best) {
				best, found = cand, true
			}
		}
	}
	if !found {
		return false, nil
	}

	if err := r.apply(best.row, best.donor, j); err != nil {
		return false, err
	}
	r.report.ZeroColumnMoves++
	if !best.unique {
		if err := r.correct(best.row, j); err != nil {
			return false, err
		}
	}

	return true, nil
}

// correct re-breaks a duplicate just created in row i by a zero-column move
// into column j. Targets are tried least-covered first (excluding j); donors
// that keep their column covered are preferred over ones that would empty it.
func (r *repairer) correct(i, j int) error {
	if !r.isDuplicate(i) {
		return nil
	}
	order := r.coverageOrder()
	for _, needCover := range []bool{true, false} {
		for _, q := range order {
			if q == j {
				continue
			}
			for p := 0; p < r.n; p++ {
				if p == q || p == j || r.rows[i][p] == 0 {
					continue
				}
				if needCover && r.cols[p] <= 1 {
					continue
				}
				if r.uniqueAfter(i, p, q) {
					r.report.CorrectiveMoves++
					return r.apply(i, p, q)
				}
			}
		}
	}

	return nil
}
