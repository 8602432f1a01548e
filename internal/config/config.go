// Package config loads reelsim settings from YAML.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/reelsim/internal/game/fishing"
	"github.com/udisondev/reelsim/internal/session"
	"github.com/udisondev/reelsim/internal/world"
)

// DefaultPath is where the host looks for its config file.
const DefaultPath = "config/reelsim.yaml"

// PathEnv overrides DefaultPath.
const PathEnv = "REELSIM_CONFIG"

// Config holds all reelsim settings.
type Config struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
	LogFile  string `yaml:"log_file"`  // terminal host logs here, not to the screen

	// Seed drives every random draw. 0 picks a clock seed at startup.
	Seed      uint32  `yaml:"seed"`
	StartHour float64 `yaml:"start_hour"`

	Player string `yaml:"player"`

	Database DatabaseConfig `yaml:"database"`

	Encounter fishing.Tuning      `yaml:"encounter"`
	Catch     fishing.CatchTuning `yaml:"catch"`
	Session   session.Config      `yaml:"session"`
	World     world.Config        `yaml:"world"`

	FrameInterval    time.Duration `yaml:"frame_interval"`    // host frame pacing
	AutosaveInterval time.Duration `yaml:"autosave_interval"` // progress snapshot period
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Default returns Config with the shipped balance.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFile:   "reelsim.log",
		StartHour: 8,
		Player:    "Captain",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "reelsim",
			Password: "reelsim",
			DBName:   "reelsim",
			SSLMode:  "disable",
		},
		Encounter:        fishing.DefaultTuning(),
		Catch:            fishing.DefaultCatchTuning(),
		Session:          session.DefaultConfig(),
		World:            world.DefaultConfig(),
		FrameInterval:    time.Second / 60,
		AutosaveInterval: 30 * time.Second,
	}
}

// Load reads config from a YAML file on top of Default.
// If the file doesn't exist, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}

// Path returns the config path, honouring PathEnv.
func Path() string {
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}
	return DefaultPath
}

// Validate rejects settings the simulation can't run with.
func (c Config) Validate() error {
	if c.StartHour < 0 || c.StartHour >= 24 {
		return fmt.Errorf("start_hour %v outside [0, 24)", c.StartHour)
	}
	if c.Encounter.SnapTension <= c.Encounter.SlackTension {
		return fmt.Errorf("encounter.snap_tension %v must exceed slack_tension %v",
			c.Encounter.SnapTension, c.Encounter.SlackTension)
	}
	if c.Encounter.JerkMin > c.Encounter.JerkMax || c.Encounter.InitialJerkMin > c.Encounter.InitialJerkMax {
		return fmt.Errorf("encounter jerk window min exceeds max")
	}
	if c.Session.CastRadius <= 0 {
		return fmt.Errorf("session.cast_radius must be positive")
	}
	if c.World.DayLength <= 0 {
		return fmt.Errorf("world.day_length must be positive")
	}
	if c.World.RespawnMin > c.World.RespawnMax || c.World.PingIntervalMin > c.World.PingIntervalMax {
		return fmt.Errorf("world interval min exceeds max")
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("frame_interval must be positive")
	}
	return nil
}

// SessionConfig combines session rules with the encounter and catch tuning.
func (c Config) SessionConfig() session.Config {
	sc := c.Session
	sc.Encounter = c.Encounter
	sc.Catch = c.Catch
	return sc
}

// SlogLevel parses LogLevel; unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
