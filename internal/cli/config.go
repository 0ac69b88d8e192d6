package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/jozzs/svgcast/pkg/svg"
)

// Config holds user defaults loaded from the config file. Flags override
// these values; the zero fields fall back to the built-in defaults.
type Config struct {
	Unit     string `toml:"unit"`
	Decimals int    `toml:"decimals"`
	NoCache  bool   `toml:"no_cache"`
	Listen   string `toml:"listen"`
}

// defaultConfig returns the built-in defaults used when no config file
// exists or a field is unset.
func defaultConfig() *Config {
	return &Config{
		Unit:     svg.DefaultUnit,
		Decimals: svg.DefaultDecimals,
		Listen:   ":8080",
	}
}

// LoadConfig reads the config file and merges it over the built-in
// defaults. A missing or unreadable file yields the defaults; the CLI
// works without any configuration.
func LoadConfig() *Config {
	cfg := defaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	var file Config
	if _, err := toml.Decode(string(data), &file); err != nil {
		return cfg
	}

	if file.Unit != "" {
		cfg.Unit = file.Unit
	}
	if file.Decimals != 0 {
		cfg.Decimals = file.Decimals
	}
	if file.Listen != "" {
		cfg.Listen = file.Listen
	}
	cfg.NoCache = file.NoCache
	return cfg
}
