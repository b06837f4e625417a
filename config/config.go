// Package config loads battleships.cfg.json and environment overrides through viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"battleships/game"

	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory
const FileName = "battleships.cfg.json"

// WindowConfig holds window settings
type WindowConfig struct {
	Width  int    `json:"width" mapstructure:"width"`
	Height int    `json:"height" mapstructure:"height"`
	Title  string `json:"title" mapstructure:"title"`
}

// AudioConfig holds sound settings
type AudioConfig struct {
	Enabled bool    `json:"enabled" mapstructure:"enabled"`
	Volume  float64 `json:"volume" mapstructure:"volume"`
}

// DBConfig selects and configures the persistence backend
type DBConfig struct {
	// Driver is "sqlite" or "postgres"; postgres falls back to sqlite on failure
	Driver   string `json:"driver" mapstructure:"driver"`
	Path     string `json:"path" mapstructure:"path"`
	Host     string `json:"host" mapstructure:"host"`
	Port     string `json:"port" mapstructure:"port"`
	Username string `json:"username" mapstructure:"username"`
	Password string `json:"password" mapstructure:"password"`
	Database string `json:"database" mapstructure:"database"`
}

// GameConfig holds simulation settings
type GameConfig struct {
	Seed             int64   `json:"seed" mapstructure:"seed"`
	Difficulty       string  `json:"difficulty" mapstructure:"difficulty"`
	ScrollSpeed      float64 `json:"scrollSpeed" mapstructure:"scrollSpeed"`
	PlayerAutoEngage bool    `json:"playerAutoEngage" mapstructure:"playerAutoEngage"`
	ParticleCap      int     `json:"particleCap" mapstructure:"particleCap"`
	StartMode        string  `json:"startMode" mapstructure:"startMode"`
}

// Settings is the typed view of the whole config file
type Settings struct {
	LogLevel string `json:"logLevel" mapstructure:"logLevel"`
	LogsDir  string `json:"logsDir" mapstructure:"logsDir"`

	// CatalogPath points at a sprite catalog JSON; empty uses the builtin parts
	CatalogPath string `json:"catalogPath" mapstructure:"catalogPath"`
	// AIScript points at a JavaScript target selector; empty uses nearest-enemy
	AIScript string `json:"aiScript" mapstructure:"aiScript"`
	// ProfilesDir receives CPU profiles captured on frame spikes; empty disables it
	ProfilesDir string `json:"profilesDir" mapstructure:"profilesDir"`

	Game   GameConfig   `json:"game" mapstructure:"game"`
	Window WindowConfig `json:"window" mapstructure:"window"`
	Audio  AudioConfig  `json:"audio" mapstructure:"audio"`
	DB     DBConfig     `json:"db" mapstructure:"db"`
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./logs")
	viper.SetDefault("catalogPath", "")
	viper.SetDefault("aiScript", "")
	viper.SetDefault("profilesDir", "")

	viper.SetDefault("game.seed", 1)
	viper.SetDefault("game.difficulty", "normal")
	viper.SetDefault("game.scrollSpeed", 1.0)
	viper.SetDefault("game.playerAutoEngage", false)
	viper.SetDefault("game.particleCap", 2000)
	viper.SetDefault("game.startMode", "sandbox")

	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 720)
	viper.SetDefault("window.title", "Battleships")

	viper.SetDefault("audio.enabled", true)
	viper.SetDefault("audio.volume", 0.5)

	viper.SetDefault("db.driver", "sqlite")
	viper.SetDefault("db.path", "./battleships.db")
	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", "5432")
	viper.SetDefault("db.username", "postgres")
	viper.SetDefault("db.password", "postgres")
	viper.SetDefault("db.database", "battleships")
}

// Load reads the config file from configDir on top of the defaults.
// A missing file is not an error; environment variables prefixed with
// BATTLESHIPS_ override both (BATTLESHIPS_GAME_DIFFICULTY=hard).
func Load(configDir string) (Settings, error) {
	setDefaults()

	viper.SetConfigName(FileName)
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)

	viper.SetEnvPrefix("BATTLESHIPS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	return s, nil
}

// Used returns the config file viper read, or "" when running on defaults
func Used() string {
	return viper.ConfigFileUsed()
}

// SimConfig maps the settings onto the simulation config
func (s Settings) SimConfig() game.Config {
	cfg := game.DefaultConfig()
	if s.Window.Width > 0 && s.Window.Height > 0 {
		cfg.ScreenWidth = s.Window.Width
		cfg.ScreenHeight = s.Window.Height
	}
	cfg.Seed = s.Game.Seed
	cfg.Difficulty = game.ParseDifficulty(s.Game.Difficulty)
	if s.Game.ScrollSpeed > 0 {
		cfg.ScrollSpeed = s.Game.ScrollSpeed
	}
	if s.Game.ParticleCap > 0 {
		cfg.ParticleCap = s.Game.ParticleCap
	}
	cfg.PlayerAutoEngage = s.Game.PlayerAutoEngage
	return cfg
}
