// SPDX-License-Identifier: MIT

// Command polygen generates polynomial instances with an exact baseline δ.
//
//	polygen gen   -delta 10 [-seed 42 | -label name] [-coeff-min -10] [-coeff-max 10] [-int] [-format text|json] [-chart out.html] [-v]
//	polygen sizes -delta 30 [-runs 20]
//	polygen batch -deltas 5,15,30 [-seed 7] [-format text|json]
//
// Exit codes: 0 success, 1 invalid argument or usage, 2 internal invariant violation.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/polygen/generator"
	"github.com/katalvlaran/polygen/internal/config"
	"github.com/katalvlaran/polygen/internal/logger"
)

const (
	exitOK        = 0
	exitInvalid   = 1
	exitInvariant = 2
)

var errUsage = errors.New("usage")

const usageText = `usage: polygen <gen|sizes|batch> [options]

Subcommands:
  gen      Generate one polynomial whose baseline equals -delta
           Flags:
             -delta     <int>     difficulty δ > 0 (required)
             -seed      <int>     random seed for reproducibility
             -label     <string>  derive the seed from a label (ignored with -seed)
             -coeff-min <float>   minimum coefficient (default: -10, POLYGEN_COEFF_MIN)
             -coeff-max <float>   maximum coefficient (default: 10, POLYGEN_COEFF_MAX)
             -int                 integer coefficients (POLYGEN_INTEGER_COEFFS)
             -attempts  <int>     randomized repair moves per duplicate row (default: 100)
             -format    <text|json>
             -chart     <file>    write an HTML degree profile
             -v                   verbose: algorithm steps, row degrees, profile

  sizes    Histogram of (m, n) choices for -delta over seeds 0..runs-1

  batch    Generate one instance per entry of -deltas (comma separated)

Environment: POLYGEN_COEFF_MIN, POLYGEN_COEFF_MAX, POLYGEN_REPAIR_ATTEMPTS,
POLYGEN_INTEGER_COEFFS, POLYGEN_FORMAT, POLYGEN_LOG_LEVEL.`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// app carries what every subcommand shares.
type app struct {
	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer
	log    *zap.Logger
}

// run dispatches a subcommand and maps its error to an exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprintln(stderr, usageText)
		return exitInvalid
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitInvalid
	}
	a := &app{cfg: cfg, stdout: stdout, stderr: stderr}

	switch args[0] {
	case "gen":
		err = a.runGen(args[1:])
	case "sizes":
		err = a.runSizes(args[1:])
	case "batch":
		err = a.runBatch(args[1:])
	case "help", "-h", "-help", "--help":
		fmt.Fprintln(stdout, usageText)
		return exitOK
	default:
		fmt.Fprintf(stderr, "unknown subcommand %q\n\n%s\n", args[0], usageText)
		return exitInvalid
	}

	return a.exitCode(err)
}

func (a *app) exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	case errors.Is(err, generator.ErrInvariantViolation):
		a.logError(err)
		fmt.Fprintf(a.stderr, "Internal error: %v\n", err)
		return exitInvariant
	default:
		a.logError(err)
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return exitInvalid
	}
}

func (a *app) logError(err error) {
	if a.log != nil {
		a.log.Error("command failed", zap.Error(err))
		_ = a.log.Sync()
	}
}

// initLogger builds the stderr logger once flags are known.
func (a *app) initLogger(verbose bool) error {
	log, err := logger.New(a.stderr, a.cfg.LogLevel, verbose)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	a.log = log

	return nil
}

// newFlagSet returns a ContinueOnError set printing to stderr.
func (a *app) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)

	return fs
}

// isSet reports whether the named flag was passed explicitly.
func isSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})

	return found
}
