package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type Symbols struct {
	Success string `yaml:"success"`
	Failure string `yaml:"failure"`
}

type Config struct {
	Color   bool    `yaml:"color"`
	Verbose bool    `yaml:"verbose"`
	Explain bool    `yaml:"explain"`
	Prompt  string  `yaml:"prompt"`
	Symbols Symbols `yaml:"symbols"`
}

func Default() *Config {
	return &Config{
		Color:  true,
		Prompt: "> ",
		Symbols: Symbols{
			Success: "✅",
			Failure: "❌",
		},
	}
}

// Read loads a YAML config file on top of the defaults.
func Read(fileName string) (*Config, error) {
	b, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return cfg, nil
}

func Parse(b []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if cfg.Symbols.Success == "" {
		cfg.Symbols.Success = Default().Symbols.Success
	}
	if cfg.Symbols.Failure == "" {
		cfg.Symbols.Failure = Default().Symbols.Failure
	}
	return cfg, nil
}
