package main

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

type BenchConfig struct {
	Sizes []int `yaml:"sizes"`
	Seed  int64 `yaml:"seed"`

	// BenchTime is passed to the -test.benchtime flag, e.g. "1s" or "100x".
	BenchTime string `yaml:"benchtime"`

	// Ascending benchmarks a CMaxTree with a reversed order instead of a MaxTree.
	Ascending bool `yaml:"ascending"`
}

type Config struct {
	Bench BenchConfig `yaml:"bench"`
}

func defaultConfig() Config {
	return Config{
		Bench: BenchConfig{
			Sizes:     []int{1 << 10, 1 << 14, 1 << 17},
			Seed:      0,
			BenchTime: "1s",
		},
	}
}

// LoadConfig reads the YAML file at path on top of the defaults. An empty path
// or a missing file gives the defaults.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig()
	if path == "" {
		return &config, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &config, nil
	} else if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err = yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if len(config.Bench.Sizes) == 0 {
		return nil, fmt.Errorf("config %s: bench.sizes is empty", path)
	}
	if slices.Min(config.Bench.Sizes) <= 0 {
		return nil, fmt.Errorf("config %s: bench.sizes must be positive", path)
	}
	return &config, nil
}
