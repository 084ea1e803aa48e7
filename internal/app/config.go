package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	PackPath string   // hcl pack files
	Builtins []string // built-in mission type names seeding the dry-run catalog

	LogFormat string
	LogLevel  string
	MaxTicks  int
}

// defaultMaxTicks bounds the dry-run tick loop. Load plus catalog handover
// needs four ticks; the headroom covers hosts gating startup.
const defaultMaxTicks = 16

func NewConfig(cfg Config) (*Config, error) {
	if cfg.PackPath == "" {
		return nil, errors.New("PackPath is a required configuration field and cannot be empty")
	}
	if cfg.MaxTicks <= 0 {
		cfg.MaxTicks = defaultMaxTicks
	}

	return &cfg, nil
}
