package config

import (
	"fmt"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
)

type Config struct {
	// ToolPath is an explicit path to the exiftool binary. When empty the
	// binary is resolved on the search path.
	ToolPath string `env:"EXIFEDIT_TOOL"`
	// Backup keeps exiftool's "_original" file next to edited images.
	Backup  bool `env:"EXIFEDIT_BACKUP"`
	Verbose bool `env:"EXIFEDIT_VERBOSE"`
}

// Load reads .env (if present) and parses environment variables into a
// Config. A leading ~ in the tool path is expanded.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ToolPath != "" {
		expanded, err := homedir.Expand(cfg.ToolPath)
		if err != nil {
			return Config{}, fmt.Errorf("expand tool path: %w", err)
		}
		cfg.ToolPath = expanded
	}
	return cfg, nil
}
