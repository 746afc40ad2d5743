package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Config is the persisted config file schema.
type Config struct {
	Theme        string            `toml:"theme"`
	LogPath      string            `toml:"log_path"`
	LogLevel     string            `toml:"log_level"`
	SummaryWidth int               `toml:"summary_width"`
	Palette      map[string]string `toml:"palette,omitempty"`
	Source       string            `toml:"-"`
}

// Environment overrides, applied after the file.
const (
	EnvTheme   = "PERMIT_THEME"
	EnvLogPath = "PERMIT_LOG_PATH"
)

func Default() Config {
	return Config{
		Theme:        "dark",
		LogLevel:     "info",
		SummaryWidth: 80,
	}
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".permit", "config.toml")
}

// Load reads path (or DefaultPath when empty). A missing file is not an error; defaults and environment overrides
// still apply.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, errors.New("config path is empty and $HOME is not set")
	}
	cfg.Source = path

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(cfg), nil
		}
		return cfg, err
	}

	if err := decode(content, &cfg); err != nil {
		return cfg, err
	}
	return applyEnv(cfg), nil
}

func applyEnv(cfg Config) Config {
	if env := strings.TrimSpace(os.Getenv(EnvTheme)); env != "" {
		cfg.Theme = env
	}
	if env := strings.TrimSpace(os.Getenv(EnvLogPath)); env != "" {
		cfg.LogPath = env
	}
	return cfg
}
