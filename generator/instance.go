// SPDX-License-Identifier: MIT
// Package: polygen/generator
//
// instance.go — InstanceAssembler: one generation call end to end.
//
// Pipeline (fixed order, one stream):
//   1. validate δ and the coefficient window (no randomness consumed on failure);
//   2. ChooseSizes → (m, n);
//   3. SampleRowTotals(m, δ+m) → E;
//   4. DistributeExponents(Eᵢ, n) for i = 1..m, row by row, into K;
//   5. Repair(K) → K', RepairReport;
//   6. verify: rowSums(K') == E and Baseline(K') == δ, else ErrInvariantViolation;
//   7. coefficients c₁..cₘ, each checked nonzero and inside the window;
//   8. render the expression and derive the content ID.
//
// Contract:
//   - The returned Instance is never mutated by this package after return and
//     shares no storage with any other call.
//   - An invariant failure returns (nil, err); a silently wrong Instance is never
//     produced.

package generator

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/polygen/matrix"
	"github.com/katalvlaran/polygen/render"
)

// instanceNamespace scopes content-derived instance IDs.
var instanceNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/katalvlaran/polygen/instance"))

// Instance is the result of one generation call.
type Instance struct {
	ID           uuid.UUID          // UUIDv5 over (δ, m, n, K, c); equal content ⇒ equal ID
	Delta        int                // requested difficulty δ
	M, N         int                // monomial and variable counts
	Seed         *int64             // seed of the stream, nil when the caller supplied the stream or none
	RowTotals    []int              // E₁..Eₘ, Σ = δ + m
	Matrix       *matrix.Dense      // repaired exponent matrix K
	Coefficients []float64          // c₁..cₘ, nonzero, within the requested window
	Range        CoefficientRange   // window the coefficients were drawn from
	Baseline     int                // Σ max(0, Eᵢ − 1), equals Delta
	Repair       RepairReport       // what the repair phase did and left unresolved
	Polynomial   *render.Polynomial // symbolic view of Σ cᵢ·Π xⱼ^Kᵢⱼ
}

// Generate builds one instance whose baseline equals delta exactly.
//
// Errors:
//   - ErrInvalidArgument: delta ≤ 0, or a coefficient window that cannot yield
//     a nonzero value or whose span is not finite (in integer mode: no nonzero
//     integer inside it, or a bound of magnitude 2^62 or more).
//   - ErrInvariantViolation: internal consistency check failed (a bug).
//
// Determinism: Generate(δ, WithSeed(s), opts...) is bit-for-bit reproducible.
func Generate(delta int, opts ...Option) (*Instance, error) {
	cfg := newConfig(opts...)
	if err := cfg.validate(delta); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	inst, err := assemble(delta, cfg, cfg.resolveRand(), cfg.seed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	return inst, nil
}

// validate checks the caller-facing inputs before any randomness is consumed.
func (c genConfig) validate(delta int) error {
	if delta <= 0 {
		return fmt.Errorf("delta=%d must be > 0: %w", delta, ErrInvalidArgument)
	}
	if c.integer {
		return c.coeffs.validateInteger()
	}

	return c.coeffs.Validate()
}

// assemble runs the pipeline on rng. seed is recorded as is.
func assemble(delta int, cfg genConfig, rng *rand.Rand, seed *int64) (*Instance, error) {
	m, n, err := chooseSizes(delta, rng, cfg.scales)
	if err != nil {
		return nil, err
	}

	totals, err := SampleRowTotals(rng, m, delta+m)
	if err != nil {
		return nil, err
	}

	k, err := matrix.NewDense(m, n)
	if err != nil {
		return nil, err
	}
	var i int
	for i = 0; i < m; i++ {
		exps, err := DistributeExponents(rng, totals[i], n)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if err = k.SetRow(i, exps); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}

	repaired, report, err := Repair(k, rng, cfg.attempts)
	if err != nil {
		return nil, err
	}

	if err = verifyBaseline(repaired, totals, delta); err != nil {
		return nil, err
	}

	var coeffs []float64
	if cfg.integer {
		coeffs, err = GenerateIntegerCoefficients(rng, m, cfg.coeffs)
	} else {
		coeffs, err = GenerateCoefficients(rng, m, cfg.coeffs)
	}
	if err != nil {
		return nil, err
	}
	if err = verifyCoefficients(coeffs, m, cfg.coeffs); err != nil {
		return nil, err
	}

	poly, err := render.NewPolynomial(repaired, coeffs)
	if err != nil {
		return nil, err
	}

	inst := &Instance{
		Delta:        delta,
		M:            m,
		N:            n,
		Seed:         copySeed(seed),
		RowTotals:    totals,
		Matrix:       repaired,
		Coefficients: coeffs,
		Range:        cfg.coeffs,
		Baseline:     Baseline(repaired),
		Repair:       report,
		Polynomial:   poly,
	}
	inst.ID = contentID(inst)

	return inst, nil
}

// verifyBaseline asserts that repair kept every row total and that the baseline hit δ.
func verifyBaseline(k *matrix.Dense, totals []int, delta int) error {
	if err := matrix.ValidateRowSums(k, totals); err != nil {
		return fmt.Errorf("%s: %w: %w", methodAssembleVerify, ErrInvariantViolation, err)
	}
	if b := Baseline(k); b != delta {
		return fmt.Errorf("%s: baseline %d != delta %d: %w", methodAssembleVerify, b, delta, ErrInvariantViolation)
	}

	return nil
}

func copySeed(seed *int64) *int64 {
	if seed == nil {
		return nil
	}
	s := *seed

	return &s
}

// contentID hashes a canonical text encoding of the instance content.
func contentID(inst *Instance) uuid.UUID {
	var sb strings.Builder
	sb.WriteString("delta=")
	sb.WriteString(strconv.Itoa(inst.Delta))
	sb.WriteString(";m=")
	sb.WriteString(strconv.Itoa(inst.M))
	sb.WriteString(";n=")
	sb.WriteString(strconv.Itoa(inst.N))
	sb.WriteString(";K=")
	for i, row := range inst.Matrix.ToRows() {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(string(matrix.KeyOf(row)))
	}
	sb.WriteString(";c=")
	for i, c := range inst.Coefficients {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
	}

	return uuid.NewSHA1(instanceNamespace, []byte(sb.String()))
}

// Expression returns the plain-text polynomial, e.g. "3*x1**2*x2 - x3".
func (inst *Instance) Expression() string {
	return inst.Polynomial.String()
}

// Verify re-checks the structural contract of a finished instance:
// Σ Eᵢ = δ + m, row sums of K equal E, baseline equals δ, and every
// coefficient is nonzero and inside Range. Unresolved repair leftovers
// (duplicates, zero columns) are not errors; see Repair.Complete.
func (inst *Instance) Verify() error {
	if inst == nil || inst.Matrix == nil {
		return fmt.Errorf("%s: %w", methodAssembleVerify, matrix.ErrNilMatrix)
	}
	sum := 0
	for _, e := range inst.RowTotals {
		if e < 1 {
			return fmt.Errorf("%s: row total %d < 1: %w", methodAssembleVerify, e, ErrInvariantViolation)
		}
		sum += e
	}
	if sum != inst.Delta+inst.M {
		return fmt.Errorf("%s: Σ row totals %d != δ+m = %d: %w",
			methodAssembleVerify, sum, inst.Delta+inst.M, ErrInvariantViolation)
	}
	if err := verifyBaseline(inst.Matrix, inst.RowTotals, inst.Delta); err != nil {
		return err
	}
	if err := verifyCoefficients(inst.Coefficients, inst.M, inst.Range); err != nil {
		return err
	}

	return nil
}

// instanceJSON is the wire layout of MarshalJSON.
type instanceJSON struct {
	ID           string             `json:"id"`
	Delta        int                `json:"delta"`
	M            int                `json:"m"`
	N            int                `json:"n"`
	Seed         *int64             `json:"seed,omitempty"`
	RowTotals    []int              `json:"row_totals"`
	Matrix       [][]int            `json:"matrix"`
	Coefficients []float64          `json:"coefficients"`
	Baseline     int                `json:"baseline"`
	Polynomial   *render.Polynomial `json:"polynomial"`
	Repair       repairJSON         `json:"repair"`
	Profile      Profile            `json:"profile"`
}

type repairJSON struct {
	Moves         int  `json:"moves"`
	DuplicateRows int  `json:"duplicate_rows"`
	ZeroColumns   int  `json:"zero_columns"`
	Complete      bool `json:"complete"`
}

// MarshalJSON encodes the instance with its matrix as nested rows.
func (inst *Instance) MarshalJSON() ([]byte, error) {
	return json.Marshal(instanceJSON{
		ID:           inst.ID.String(),
		Delta:        inst.Delta,
		M:            inst.M,
		N:            inst.N,
		Seed:         inst.Seed,
		RowTotals:    inst.RowTotals,
		Matrix:       inst.Matrix.ToRows(),
		Coefficients: inst.Coefficients,
		Baseline:     inst.Baseline,
		Polynomial:   inst.Polynomial,
		Repair: repairJSON{
			Moves:         inst.Repair.Moves(),
			DuplicateRows: inst.Repair.DuplicateRows,
			ZeroColumns:   inst.Repair.ZeroColumns,
			Complete:      inst.Repair.Complete(),
		},
		Profile: inst.Profile(),
	})
}
