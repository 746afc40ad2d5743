package config

import (
	"strconv"
	"strings"
)

const palettePrefix = "palette."

// ApplyKVOverrides applies free-form -c key=value overrides.
func ApplyKVOverrides(cfg Config, overrides []string) Config {
	if len(overrides) == 0 {
		return cfg
	}
	for _, raw := range overrides {
		parts := strings.SplitN(raw, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		switch {
		case key == "theme":
			cfg.Theme = val
		case key == "log_path":
			cfg.LogPath = val
		case key == "log_level":
			cfg.LogLevel = val
		case key == "summary_width":
			if n, err := strconv.Atoi(val); err == nil && n > 0 {
				cfg.SummaryWidth = n
			}
		case strings.HasPrefix(key, palettePrefix) && len(key) > len(palettePrefix):
			palette := make(map[string]string, len(cfg.Palette)+1)
			for k, v := range cfg.Palette {
				palette[k] = v
			}
			palette[strings.TrimPrefix(key, palettePrefix)] = val
			cfg.Palette = palette
		}
	}
	return cfg
}
