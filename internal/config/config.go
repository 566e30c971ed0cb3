// Package config reads solver settings from the environment.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ironsheep/maze-solver/internal/maze"
)

// Environment variable names.
const (
	EnvLogLevel   = "MAZE_LOG_LEVEL"
	EnvRowsToScan = "MAZE_ROWS_TO_SCAN"
	EnvThreshold  = "MAZE_THRESHOLD"
	EnvMaxSteps   = "MAZE_MAX_STEPS"
)

// Config holds the process-wide defaults. CLI flags and MCP tool arguments
// override them per call.
type Config struct {
	LogLevel   zerolog.Level
	RowsToScan int
	Threshold  int
	MaxSteps   int
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{
		LogLevel:   zerolog.InfoLevel,
		RowsToScan: maze.DefaultRowsToScan,
	}
}

// Load reads the MAZE_* variables on top of Default.
// An unparsable or out-of-range value is an error naming the variable.
func Load() (Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		lvl, err := zerolog.ParseLevel(strings.ToLower(v))
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = lvl
	}

	var err error
	if cfg.RowsToScan, err = intVar(EnvRowsToScan, cfg.RowsToScan, 1, math.MaxInt); err != nil {
		return cfg, err
	}
	if cfg.Threshold, err = intVar(EnvThreshold, cfg.Threshold, 0, 255); err != nil {
		return cfg, err
	}
	if cfg.MaxSteps, err = intVar(EnvMaxSteps, cfg.MaxSteps, 0, math.MaxInt); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// intVar parses an integer variable within [min, max], returning def when unset.
func intVar(name string, def, min, max int) (int, error) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", name, err)
	}
	if n < min || n > max {
		return def, fmt.Errorf("%s: %d out of range [%d, %d]", name, n, min, max)
	}
	return n, nil
}
