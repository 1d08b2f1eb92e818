package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//
// Settings, read from an optional YAML file.  Command line flags are
// applied on top by main.  A nil Color means "color if stdout is a
// terminal"
//

type config struct {
	Debug                 bool    `yaml:"debug"`
	Stats                 bool    `yaml:"stats"`
	Color                 *bool   `yaml:"color"`
	FrustrationMultiplier float64 `yaml:"frustration_multiplier"`
	PointlessTimer        bool    `yaml:"pointless_timer"`
	RandomCrash           bool    `yaml:"random_crash"`
	LegacyTruthiness      bool    `yaml:"legacy_truthiness"`
	ProgressWidthMax      int     `yaml:"progress_width_max"`
	MaxSteps              int64   `yaml:"max_steps"`
}

func defaultConfig() config {

	return config{
		FrustrationMultiplier: 1,
		PointlessTimer:        true,
		RandomCrash:           true,
	}
}

//
// Load a config file.  A missing file is only an error if the user
// named it explicitly
//

func loadConfig(path string, explicit bool) (config, error) {

	cfg := defaultConfig()

	file, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	return decodeConfig(file, path)
}

func decodeConfig(rd io.Reader, path string) (config, error) {

	cfg := defaultConfig()

	decoder := yaml.NewDecoder(rd)
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return defaultConfig(), nil
		}
		return defaultConfig(), fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return defaultConfig(), fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

func (c *config) validate() error {

	if c.FrustrationMultiplier < 0 {
		return fmt.Errorf("frustration_multiplier must not be negative (got %g)",
			c.FrustrationMultiplier)
	}

	if c.ProgressWidthMax < 0 {
		return fmt.Errorf("progress_width_max must not be negative (got %d)",
			c.ProgressWidthMax)
	}

	if c.MaxSteps < 0 {
		return fmt.Errorf("max_steps must not be negative (got %d)", c.MaxSteps)
	}

	return nil
}
