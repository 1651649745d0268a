package main

import (
	"log/slog"
	"os"
	"slices"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/KimNorgaard/go-sjson"
)

var colorModes = []string{"auto", "always", "never"}

// Config holds the settings that can be kept in a YAML file.
type Config struct {
	Color         string `yaml:"color"`
	LogLevel      string `yaml:"log_level"`
	Indent        *int   `yaml:"indent"`
	NaiveComments bool   `yaml:"naive_comments"`
}

// NewConfig returns a Config with default values.
func NewConfig() *Config {
	return &Config{
		Color:    "auto",
		LogLevel: "info",
	}
}

// LoadConfig reads a YAML config file. Settings missing from the file keep
// their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %s", path)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if !slices.Contains(colorModes, c.Color) {
		return errors.Errorf("invalid color mode %q, want one of auto, always, never", c.Color)
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	if c.Indent != nil && *c.Indent < 0 {
		return errors.Errorf("invalid indent %d, must not be negative", *c.Indent)
	}
	return nil
}

func (c *Config) level() slog.Level {
	var l slog.Level
	_ = l.UnmarshalText([]byte(c.LogLevel))
	return l
}

// options returns the library options for reading and writing documents.
func (c *Config) options() []sjson.Option {
	var opts []sjson.Option
	if c.Indent != nil {
		opts = append(opts, sjson.Indent(*c.Indent))
	}
	if c.NaiveComments {
		opts = append(opts, sjson.NaiveComments())
	}
	return opts
}
