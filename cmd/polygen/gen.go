// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/polygen/generator"
	"github.com/katalvlaran/polygen/internal/config"
	"github.com/katalvlaran/polygen/render"
)

// genFlags are the generation knobs shared by gen and batch.
type genFlags struct {
	seed     *int64
	label    *string
	coeffMin *float64
	coeffMax *float64
	integer  *bool
	attempts *int
	format   *string
	verbose  *bool
}

func (a *app) bindGenFlags(fs *flag.FlagSet) *genFlags {
	return &genFlags{
		seed:     fs.Int64("seed", 0, "random seed for reproducibility"),
		label:    fs.String("label", "", "derive the seed from a label"),
		coeffMin: fs.Float64("coeff-min", a.cfg.CoeffMin, "minimum coefficient value"),
		coeffMax: fs.Float64("coeff-max", a.cfg.CoeffMax, "maximum coefficient value"),
		integer:  fs.Bool("int", a.cfg.IntegerCoeffs, "draw integer coefficients"),
		attempts: fs.Int("attempts", a.cfg.RepairAttempts, "randomized repair moves per duplicate row"),
		format:   fs.String("format", a.cfg.Format, "output format: text|json"),
		verbose:  fs.Bool("v", false, "verbose output"),
	}
}

// options turns parsed flags into generator options. The returned seed is nil
// when the run is unseeded.
func (g *genFlags) options(fs *flag.FlagSet) ([]generator.Option, *int64, error) {
	if *g.format != config.FormatText && *g.format != config.FormatJSON {
		return nil, nil, fmt.Errorf("%w: -format %q: want text or json", errUsage, *g.format)
	}
	if *g.attempts < 0 {
		return nil, nil, fmt.Errorf("%w: -attempts %d must be >= 0", errUsage, *g.attempts)
	}

	opts := []generator.Option{
		generator.WithCoefficientRange(*g.coeffMin, *g.coeffMax),
		generator.WithRepairAttempts(*g.attempts),
	}
	if *g.integer {
		opts = append(opts, generator.WithIntegerCoefficients())
	}

	var seed *int64
	switch {
	case isSet(fs, "seed"):
		s := *g.seed
		seed = &s
	case *g.label != "":
		s := generator.SeedFromLabel(*g.label)
		seed = &s
	}
	if seed != nil {
		opts = append(opts, generator.WithSeed(*seed))
	}

	return opts, seed, nil
}

func (a *app) runGen(args []string) error {
	fs := a.newFlagSet("gen")
	delta := fs.Int("delta", 0, "difficulty parameter δ (target baseline)")
	chart := fs.String("chart", "", "write an HTML degree profile to this file")
	gf := a.bindGenFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !isSet(fs, "delta") {
		return fmt.Errorf("%w: gen: -delta is required", errUsage)
	}
	if err := a.initLogger(*gf.verbose); err != nil {
		return err
	}
	defer func() { _ = a.log.Sync() }()

	opts, seed, err := gf.options(fs)
	if err != nil {
		return err
	}
	a.log.Debug("generating polynomial", zap.Int("delta", *delta), zap.Int64p("seed", seed))

	inst, err := generator.Generate(*delta, opts...)
	if err != nil {
		return err
	}
	a.logInstance(inst)

	if *chart != "" {
		if err = writeChart(*chart, inst); err != nil {
			return err
		}
		a.log.Info("degree chart written", zap.String("path", *chart))
	}

	if *gf.format == config.FormatJSON {
		return writeJSON(a.stdout, inst)
	}
	printInstance(a.stdout, inst, *gf.verbose)

	return nil
}

// logInstance reports the generation steps at debug level and an incomplete
// repair as a warning.
func (a *app) logInstance(inst *generator.Instance) {
	a.log.Debug("sizes chosen", zap.Int("m", inst.M), zap.Int("n", inst.N))
	a.log.Debug("row totals sampled", zap.Ints("totals", inst.RowTotals), zap.Int("sum", inst.Delta+inst.M))
	a.log.Debug("repair finished",
		zap.Int("random_moves", inst.Repair.RandomMoves),
		zap.Int("exhaustive_moves", inst.Repair.ExhaustiveMoves),
		zap.Int("zero_column_moves", inst.Repair.ZeroColumnMoves),
		zap.Int("corrective_moves", inst.Repair.CorrectiveMoves),
	)
	if !inst.Repair.Complete() {
		a.log.Warn("repair incomplete: uniqueness or column coverage not achievable",
			zap.Int("delta", inst.Delta),
			zap.Int("duplicate_rows", inst.Repair.DuplicateRows),
			zap.Int("zero_columns", inst.Repair.ZeroColumns),
		)
	}
}

func writeChart(path string, inst *generator.Instance) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: chart: %w", errUsage, err)
	}
	defer f.Close()

	title := fmt.Sprintf("δ=%d", inst.Delta)
	if err = render.WriteDegreeChart(f, title, inst.Matrix); err != nil {
		return fmt.Errorf("chart: %w", err)
	}

	return f.Close()
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)

	return err
}
