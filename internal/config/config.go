// SPDX-License-Identifier: MIT

// Package config resolves CLI defaults from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/polygen/generator"
)

// Output formats understood by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalidConfig indicates an environment value that cannot be parsed.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds the defaults the CLI flags start from.
type Config struct {
	CoeffMin       float64 // POLYGEN_COEFF_MIN
	CoeffMax       float64 // POLYGEN_COEFF_MAX
	RepairAttempts int     // POLYGEN_REPAIR_ATTEMPTS
	IntegerCoeffs  bool    // POLYGEN_INTEGER_COEFFS
	Format         string  // POLYGEN_FORMAT: text | json
	LogLevel       string  // POLYGEN_LOG_LEVEL: debug | info | warn | error
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		CoeffMin:       generator.DefaultCoeffLo,
		CoeffMax:       generator.DefaultCoeffHi,
		RepairAttempts: generator.DefaultRepairAttempts,
		Format:         FormatText,
		LogLevel:       "warn",
	}
}

// Load reads configuration from environment variables on top of Default.
// All malformed variables are reported together.
func Load() (*Config, error) {
	def := Default()
	var errs []error

	cfg := &Config{
		CoeffMin:       getFloat("POLYGEN_COEFF_MIN", def.CoeffMin, &errs),
		CoeffMax:       getFloat("POLYGEN_COEFF_MAX", def.CoeffMax, &errs),
		RepairAttempts: getInt("POLYGEN_REPAIR_ATTEMPTS", def.RepairAttempts, &errs),
		IntegerCoeffs:  getBool("POLYGEN_INTEGER_COEFFS", def.IntegerCoeffs, &errs),
		Format:         strings.ToLower(getEnv("POLYGEN_FORMAT", def.Format)),
		LogLevel:       strings.ToLower(getEnv("POLYGEN_LOG_LEVEL", def.LogLevel)),
	}
	if cfg.Format != FormatText && cfg.Format != FormatJSON {
		errs = append(errs, fmt.Errorf("POLYGEN_FORMAT=%q: want %s or %s: %w", cfg.Format, FormatText, FormatJSON, ErrInvalidConfig))
	}
	if cfg.RepairAttempts < 0 {
		errs = append(errs, fmt.Errorf("POLYGEN_REPAIR_ATTEMPTS=%d: must be >= 0: %w", cfg.RepairAttempts, ErrInvalidConfig))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getFloat(key string, defaultValue float64, errs *[]error) float64 {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s=%q: %w", key, raw, ErrInvalidConfig))
		return defaultValue
	}
	return v
}

func getInt(key string, defaultValue int, errs *[]error) int {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s=%q: %w", key, raw, ErrInvalidConfig))
		return defaultValue
	}
	return v
}

func getBool(key string, defaultValue bool, errs *[]error) bool {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s=%q: %w", key, raw, ErrInvalidConfig))
		return defaultValue
	}
	return v
}
