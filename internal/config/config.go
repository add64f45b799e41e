// Package config loads the opsboard configuration: a TOML file created
// with defaults on first run, then overridden by OPSBOARD_* environment
// variables.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "opsboard.db"
	DefaultLogName        = "opsboard.log"
)

type Keymap struct {
	Board     string `toml:"board"`
	List      string `toml:"list"`
	Calendar  string `toml:"calendar"`
	Search    string `toml:"search"`
	Palette   string `toml:"palette"`
	Prev      string `toml:"prev"`
	Next      string `toml:"next"`
	Today     string `toml:"today"`
	DayMode   string `toml:"day_mode"`
	WeekMode  string `toml:"week_mode"`
	MonthMode string `toml:"month_mode"`
	Help      string `toml:"help"`
	Quit      string `toml:"quit"`
}

type Config struct {
	DBPath      string `toml:"db_path"`
	LogPath     string `toml:"log_path"`
	LogLevel    string `toml:"log_level"`
	DefaultView string `toml:"default_view"`
	DefaultMode string `toml:"default_mode"`
	Keys        Keymap `toml:"keys"`
}

// LoadOrCreate reads the config file, writing one with defaults if it
// does not exist yet, then applies environment overrides.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return fromEnv(cfg), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBName
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return fromEnv(cfg), nil
}

func fromEnv(cfg Config) Config {
	if v := strings.TrimSpace(os.Getenv("OPSBOARD_DB_PATH")); v != "" {
		cfg.DBPath = v
	}
	if v := strings.TrimSpace(os.Getenv("OPSBOARD_LOG_PATH")); v != "" {
		cfg.LogPath = v
	}
	if v := strings.TrimSpace(os.Getenv("OPSBOARD_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("OPSBOARD_DEFAULT_VIEW")); v != "" {
		cfg.DefaultView = v
	}
	if v := strings.TrimSpace(os.Getenv("OPSBOARD_DEFAULT_MODE")); v != "" {
		cfg.DefaultMode = v
	}
	return cfg
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		DBPath:      DefaultDBName,
		LogPath:     DefaultLogName,
		LogLevel:    "info",
		DefaultView: "board",
		DefaultMode: "month",
		Keys: Keymap{
			Board:     "1",
			List:      "2",
			Calendar:  "3",
			Search:    "/",
			Palette:   ":",
			Prev:      "h",
			Next:      "l",
			Today:     "t",
			DayMode:   "d",
			WeekMode:  "w",
			MonthMode: "m",
			Help:      "?",
			Quit:      "q",
		},
	}
}
