// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/polygen/generator"
	"github.com/katalvlaran/polygen/internal/config"
)

func (a *app) runBatch(args []string) error {
	fs := a.newFlagSet("batch")
	rawDeltas := fs.String("deltas", "", "comma-separated difficulties, e.g. 5,15,30")
	gf := a.bindGenFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	deltas, err := parseDeltas(*rawDeltas)
	if err != nil {
		return err
	}
	if err = a.initLogger(*gf.verbose); err != nil {
		return err
	}
	defer func() { _ = a.log.Sync() }()

	opts, _, err := gf.options(fs)
	if err != nil {
		return err
	}
	batch, err := generator.GenerateBatch(deltas, opts...)
	if err != nil {
		return err
	}
	for _, inst := range batch {
		a.logInstance(inst)
	}
	a.log.Debug("batch generated", zap.Int("instances", len(batch)))

	if *gf.format == config.FormatJSON {
		return writeJSON(a.stdout, batch)
	}
	for _, inst := range batch {
		printSummary(a.stdout, inst)
	}

	return nil
}

// parseDeltas reads "5, 15,30" into [5 15 30].
func parseDeltas(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: batch: -deltas is required", errUsage)
	}
	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: batch: bad delta %q", errUsage, p)
		}
		out = append(out, v)
	}

	return out, nil
}
