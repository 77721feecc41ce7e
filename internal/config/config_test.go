package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultYAMLMatchesHardcoded(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal(defaultYAML, &cfg))
	assert.Equal(t, DefaultConfig(), cfg.withDefaults())
}

func TestLoad_CustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aoc.yaml")
	data := []byte("input_dir: /puzzles\ndays:\n  18:\n    size: 6\n  99:\n    k: 1\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/puzzles", cfg.InputDir)
	assert.Equal(t, "info", cfg.LogLevel)
	// Overridden key, inherited key, untouched day, new day.
	assert.Equal(t, 6, cfg.Params(18).Int("size", 0))
	assert.Equal(t, 1024, cfg.Params(18).Int("bytes", 0))
	assert.Equal(t, 100, cfg.Params(20).Int("min_saving", 0))
	assert.Equal(t, 1, cfg.Params(99).Int("k", 0))
}

func TestLoad_CustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("days: [1, 2"), 0o644))
	_, err = Load(bad)
	require.Error(t, err)
}

func TestDayParams_NilSafe(t *testing.T) {
	var p DayParams
	assert.Equal(t, 7, p.Int("anything", 7))
	assert.Nil(t, Config{}.Params(4))
}

func TestInputPathAndEnv(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join("inputs", "day_04.txt"), cfg.InputPath(4))

	cfg.ApplyEnv(func(key string) (string, bool) {
		if key == EnvInputDir {
			return "/srv/aoc", true
		}
		return "", false
	})
	assert.Equal(t, filepath.Join("/srv/aoc", "day_16.txt"), cfg.InputPath(16))

	cfg.ApplyEnv(func(string) (string, bool) { return "", true })
	assert.Equal(t, "/srv/aoc", cfg.InputDir)
}
