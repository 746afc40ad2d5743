package config

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

func decode(content []byte, cfg *Config) error {
	if err := toml.Unmarshal(content, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}
