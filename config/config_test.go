package config

import (
	"os"
	"path/filepath"
	"testing"

	"battleships/game"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"game": { "difficulty": "hard", "seed": 99 },
		"db": { "driver": "postgres", "host": "10.0.0.1" }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(cfg), 0644))

	s, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "hard", s.Game.Difficulty)
	assert.Equal(t, int64(99), s.Game.Seed)
	assert.Equal(t, "postgres", s.DB.Driver)
	assert.Equal(t, "10.0.0.1", s.DB.Host)
	assert.Equal(t, "5432", s.DB.Port, "unset keys keep defaults")
	assert.Equal(t, filepath.Join(dir, FileName), Used())
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	s, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "./logs", s.LogsDir)
	assert.Equal(t, "", s.CatalogPath)
	assert.Equal(t, int64(1), s.Game.Seed)
	assert.Equal(t, "normal", s.Game.Difficulty)
	assert.Equal(t, 1.0, s.Game.ScrollSpeed)
	assert.False(t, s.Game.PlayerAutoEngage)
	assert.Equal(t, 2000, s.Game.ParticleCap)
	assert.Equal(t, "sandbox", s.Game.StartMode)
	assert.Equal(t, 1280, s.Window.Width)
	assert.Equal(t, 720, s.Window.Height)
	assert.True(t, s.Audio.Enabled)
	assert.Equal(t, 0.5, s.Audio.Volume)
	assert.Equal(t, "sqlite", s.DB.Driver)
	assert.Equal(t, "./battleships.db", s.DB.Path)
	assert.Equal(t, "", Used())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("BATTLESHIPS_GAME_DIFFICULTY", "easy")

	s, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "easy", s.Game.Difficulty)
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"logLevel":`), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestSettings_SimConfig(t *testing.T) {
	t.Cleanup(viper.Reset)

	s, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, game.DefaultConfig(), s.SimConfig())

	s.Game.Difficulty = "hard"
	s.Game.Seed = 7
	s.Game.ScrollSpeed = 0
	s.Window.Width = 1920
	s.Window.Height = 1080
	cfg := s.SimConfig()
	assert.Equal(t, game.DifficultyHard, cfg.Difficulty)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 1.0, cfg.ScrollSpeed, "non-positive scroll speed keeps the default")
	assert.Equal(t, 1920, cfg.ScreenWidth)
}
