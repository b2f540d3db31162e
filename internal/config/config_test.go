package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.InDelta(t, 105, cfg.Pitch.LengthMeters, 1e-9)
	assert.Equal(t, []int{13, 14, 15}, cfg.Passing.KeyPassValues)
	assert.Equal(t, []int{16}, cfg.Passing.AssistValues)
	assert.Contains(t, cfg.Passing.ProgExclusions, "Throw-in")
	assert.Contains(t, cfg.Sequences.ShotTypes, "Attempt Saved")
	assert.Contains(t, cfg.Sequences.LossTypes, "Dispossessed")
	assert.Contains(t, cfg.Sequences.RestartTriggers, "Corner Awarded")
	assert.InDelta(t, 15, cfg.Sequences.BuildupStartX, 1e-9)
	assert.InDelta(t, 66.67, cfg.Sequences.BuildupMaxX, 1e-9)
	assert.Equal(t, 35, cfg.Sequences.MaxPasses)
	assert.Equal(t, 50, cfg.Sequences.SetPieceMaxPasses)
	assert.InDelta(t, 40, cfg.Defense.PPDAZoneX, 1e-9)
	assert.InDelta(t, 60, cfg.Defense.PPDAPassZoneX, 1e-9)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestScaleX(t *testing.T) {
	p := PitchConfig{LengthMeters: 105}
	assert.InDelta(t, 38.095, p.ScaleX(40), 0.001)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"pitch:\n  length_meters: 100\ndefense:\n  ppda_zone_x: 45\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.InDelta(t, 100, cfg.Pitch.LengthMeters, 1e-9)
	assert.InDelta(t, 45, cfg.Defense.PPDAZoneX, 1e-9)
	// Untouched keys keep their defaults.
	assert.InDelta(t, 68, cfg.Pitch.WidthMeters, 1e-9)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("OPTAMETRICS_LOGGING_LEVEL", "debug")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
}
