// SPDX-License-Identifier: MIT

package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polygen/internal/config"
)

var envKeys = []string{
	"POLYGEN_COEFF_MIN", "POLYGEN_COEFF_MAX", "POLYGEN_REPAIR_ATTEMPTS",
	"POLYGEN_INTEGER_COEFFS", "POLYGEN_FORMAT", "POLYGEN_LOG_LEVEL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("POLYGEN_COEFF_MIN", "1")
	t.Setenv("POLYGEN_COEFF_MAX", "3.5")
	t.Setenv("POLYGEN_REPAIR_ATTEMPTS", "7")
	t.Setenv("POLYGEN_INTEGER_COEFFS", "true")
	t.Setenv("POLYGEN_FORMAT", "JSON")
	t.Setenv("POLYGEN_LOG_LEVEL", "Debug")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, &config.Config{
		CoeffMin:       1,
		CoeffMax:       3.5,
		RepairAttempts: 7,
		IntegerCoeffs:  true,
		Format:         config.FormatJSON,
		LogLevel:       "debug",
	}, cfg)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("POLYGEN_COEFF_MAX", "ten")
	t.Setenv("POLYGEN_FORMAT", "yaml")
	t.Setenv("POLYGEN_REPAIR_ATTEMPTS", "-2")

	_, err := config.Load()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	require.Contains(t, err.Error(), "POLYGEN_COEFF_MAX")
	require.Contains(t, err.Error(), "POLYGEN_FORMAT")
	require.Contains(t, err.Error(), "POLYGEN_REPAIR_ATTEMPTS")
}
