// Package config holds the run configuration: where puzzle inputs live,
// how verbose logging is, and the per-day tuning parameters.
package config

import (
	_ "embed"
	"fmt"
	"path/filepath"
)

//go:embed defaults/aoc.yaml
var defaultYAML []byte

// EnvInputDir overrides Config.InputDir when set.
const EnvInputDir = "AOC24_INPUT_DIR"

// Config is the top-level configuration file.
type Config struct {
	InputDir string            `yaml:"input_dir"`
	LogLevel string            `yaml:"log_level"`
	Days     map[int]DayParams `yaml:"days"`
}

// DayParams are integer knobs for one day (grid size, thresholds, ...).
type DayParams map[string]int

// Int returns the value stored under key, or def when it is absent.
// Safe on a nil map.
func (p DayParams) Int(key string, def int) int {
	if v, ok := p[key]; ok {
		return v
	}
	return def
}

// DefaultConfig returns the hardcoded configuration used when no YAML can
// be read.
func DefaultConfig() Config {
	return Config{
		InputDir: "inputs",
		LogLevel: "info",
		Days: map[int]DayParams{
			18: {"size": 70, "bytes": 1024},
			20: {"min_saving": 100},
		},
	}
}

// Params returns the parameters configured for day (nil if none).
func (c Config) Params(day int) DayParams {
	return c.Days[day]
}

// InputPath returns the input file for day: <InputDir>/day_NN.txt.
func (c Config) InputPath(day int) string {
	return filepath.Join(c.InputDir, fmt.Sprintf("day_%02d.txt", day))
}

// ApplyEnv overrides fields from the environment. lookup is usually
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if dir, ok := lookup(EnvInputDir); ok && dir != "" {
		c.InputDir = dir
	}
}
