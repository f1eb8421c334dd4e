package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls the demo crawler.
type Config struct {
	Title      string `yaml:"title"`
	MapWidth   int    `yaml:"map_width"`
	MapHeight  int    `yaml:"map_height"`
	Monsters   int    `yaml:"monsters"`
	WanderSeed int64  `yaml:"wander_seed"`
	Debug      bool   `yaml:"debug"`
}

func defaultConfig() Config {
	return Config{
		Title:      "crawl",
		MapWidth:   60,
		MapHeight:  20,
		Monsters:   3,
		WanderSeed: 1,
	}
}

// loadConfig overlays the file at path onto the defaults. A missing file
// is not an error; a malformed or invalid one is.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	if cfg.MapWidth <= 0 || cfg.MapHeight <= 0 {
		return cfg, fmt.Errorf("%s: map dimensions must be positive, got %dx%d", path, cfg.MapWidth, cfg.MapHeight)
	}
	if cfg.Monsters < 0 {
		return cfg, fmt.Errorf("%s: monsters must not be negative, got %d", path, cfg.Monsters)
	}
	return cfg, nil
}
