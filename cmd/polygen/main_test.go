// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"POLYGEN_COEFF_MIN", "POLYGEN_COEFF_MAX", "POLYGEN_REPAIR_ATTEMPTS",
		"POLYGEN_INTEGER_COEFFS", "POLYGEN_FORMAT", "POLYGEN_LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
}

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestGen_Basic(t *testing.T) {
	clearEnv(t)
	code, out, _ := runCLI(t, "gen", "-delta", "10")
	require.Equal(t, exitOK, code)
	for _, want := range []string{
		"δ (difficulty parameter): 10",
		"Chosen (m, n):",
		"Exponent matrix K",
		"Coefficients:",
		"Symbolic polynomial:",
		"P(x) = ",
		"Baseline Kbase(P): 10",
		"✓ Baseline matches target δ = 10",
	} {
		require.Contains(t, out, want)
	}
}

func TestGen_SeedReproducible(t *testing.T) {
	clearEnv(t)
	code1, out1, _ := runCLI(t, "gen", "-delta", "15", "-seed", "42")
	code2, out2, _ := runCLI(t, "gen", "-delta", "15", "-seed", "42")
	require.Equal(t, exitOK, code1)
	require.Equal(t, exitOK, code2)
	require.Equal(t, out1, out2)
	require.Contains(t, out1, "Seed: 42")

	_, out3, _ := runCLI(t, "gen", "-delta", "15", "-label", "run-a")
	_, out4, _ := runCLI(t, "gen", "-delta", "15", "-label", "run-a")
	require.Equal(t, out3, out4)
}

func TestGen_Verbose(t *testing.T) {
	clearEnv(t)
	code, out, errOut := runCLI(t, "gen", "-delta", "10", "-v")
	require.Equal(t, exitOK, code)
	require.Contains(t, out, "Algorithm steps:")
	require.Contains(t, out, "Row degrees")
	require.Contains(t, out, "Constraint contributions")
	require.Contains(t, out, "Total: 10 = 10")
	require.Contains(t, errOut, "sizes chosen")
}

func TestGen_CustomCoefficients(t *testing.T) {
	clearEnv(t)
	code, out, _ := runCLI(t, "gen", "-delta", "5", "-coeff-min", "1", "-coeff-max", "3", "-int", "-format", "json")
	require.Equal(t, exitOK, code)

	var decoded struct {
		Baseline     int       `json:"baseline"`
		Coefficients []float64 `json:"coefficients"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Equal(t, 5, decoded.Baseline)
	for _, c := range decoded.Coefficients {
		require.Contains(t, []float64{1, 2, 3}, c)
	}
}

func TestGen_EnvironmentDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("POLYGEN_FORMAT", "json")
	code, out, _ := runCLI(t, "gen", "-delta", "4", "-seed", "1")
	require.Equal(t, exitOK, code)
	require.True(t, json.Valid([]byte(out)))

	t.Setenv("POLYGEN_FORMAT", "xml")
	code, _, errOut := runCLI(t, "gen", "-delta", "4")
	require.Equal(t, exitInvalid, code)
	require.Contains(t, errOut, "POLYGEN_FORMAT")
}

func TestGen_Chart(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "profile.html")
	code, _, _ := runCLI(t, "gen", "-delta", "12", "-seed", "3", "-chart", path)
	require.Equal(t, exitOK, code)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), "<html")
}

func TestGen_InvalidArguments(t *testing.T) {
	clearEnv(t)
	cases := [][]string{
		{"gen", "-delta", "0"},
		{"gen", "-delta", "-3"},
		{"gen", "-delta", "5", "-coeff-min", "0", "-coeff-max", "0"},
		{"gen"},
		{"gen", "-delta", "5", "-attempts", "-1"},
		{"gen", "-delta", "notanint"},
	}
	for _, args := range cases {
		code, _, errOut := runCLI(t, args...)
		require.Equal(t, exitInvalid, code, strings.Join(args, " "))
		require.NotEmpty(t, errOut)
	}

	_, _, errOut := runCLI(t, "gen", "-delta", "0")
	require.Contains(t, errOut, "Error:")
}

func TestSizes(t *testing.T) {
	clearEnv(t)
	code, out, _ := runCLI(t, "sizes", "-delta", "30", "-runs", "20")
	require.Equal(t, exitOK, code)
	require.Contains(t, out, "Analyzing (m, n) choices for δ = 30 over 20 runs:")
	require.Contains(t, out, "Most common combinations:")

	code, _, _ = runCLI(t, "sizes", "-delta", "30", "-runs", "0")
	require.Equal(t, exitInvalid, code)
}

func TestBatch(t *testing.T) {
	clearEnv(t)
	code, out, _ := runCLI(t, "batch", "-deltas", "5, 15,30", "-seed", "7")
	require.Equal(t, exitOK, code)
	require.Contains(t, out, "baseline=5,")
	require.Contains(t, out, "baseline=15,")
	require.Contains(t, out, "baseline=30,")

	code, out, _ = runCLI(t, "batch", "-deltas", "5,6", "-seed", "7", "-format", "json")
	require.Equal(t, exitOK, code)
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 2)

	code, _, _ = runCLI(t, "batch", "-deltas", "5,x")
	require.Equal(t, exitInvalid, code)
	code, _, _ = runCLI(t, "batch", "-deltas", "5,0")
	require.Equal(t, exitInvalid, code)
}

func TestUsage(t *testing.T) {
	clearEnv(t)
	code, _, errOut := runCLI(t)
	require.Equal(t, exitInvalid, code)
	require.Contains(t, errOut, "usage: polygen")

	code, _, _ = runCLI(t, "frobnicate")
	require.Equal(t, exitInvalid, code)

	code, out, _ := runCLI(t, "help")
	require.Equal(t, exitOK, code)
	require.Contains(t, out, "Subcommands:")

	code, _, _ = runCLI(t, "gen", "-h")
	require.Equal(t, exitOK, code)
}

func TestParseDeltas(t *testing.T) {
	got, err := parseDeltas(" 1,2 , 3")
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, got)

	_, err = parseDeltas("")
	require.ErrorIs(t, err, errUsage)
}
