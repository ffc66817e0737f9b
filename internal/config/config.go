package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	yaml "gopkg.in/yaml.v3"

	"figma-px/internal/convert"
)

//go:embed config.yaml
var defaultConfig []byte

type (
	DefaultsConfig struct {
		BaseSizePx float64 `yaml:"base_size_px"`
		Metric     string  `yaml:"metric"`
	}

	HistoryConfig struct {
		Limit int    `yaml:"limit"`
		Dir   string `yaml:"dir"`
	}

	Config struct {
		Version  int            `yaml:"version"`
		Defaults DefaultsConfig `yaml:"defaults"`
		History  HistoryConfig  `yaml:"history"`
		Logging  LoggingConfig  `yaml:"logging"`
	}
)

// Default returns the embedded configuration.
func Default() (*Config, error) {
	return unmarshalConfig(defaultConfig, &Config{})
}

// Load reads the configuration file at path on top of the embedded defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, fmt.Errorf("unable to load default configuration: %w", err)
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read configuration file '%s': %w", path, err)
	}
	if cfg, err = unmarshalConfig(data, cfg); err != nil {
		return nil, fmt.Errorf("unable to process configuration file '%s': %w", path, err)
	}
	return cfg, nil
}

// Dump returns the configuration as YAML.
func Dump(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("unable to encode configuration: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("unable to encode configuration: %w", err)
	}
	return buf.Bytes(), nil
}

// DefaultData returns the embedded configuration file as is, comments included.
func DefaultData() []byte {
	out := make([]byte, len(defaultConfig))
	copy(out, defaultConfig)
	return out
}

// Metric returns the parsed default metric.
func (c *Config) Metric() convert.Metric {
	m, _ := convert.ParseMetric(c.Defaults.Metric)
	return m
}

// Validate checks loaded values.
func (c *Config) Validate() error {
	if c.Version != 1 {
		return fmt.Errorf("unsupported configuration version %d", c.Version)
	}
	if c.Defaults.BaseSizePx < 0 {
		return fmt.Errorf("defaults.base_size_px must not be negative, got %v", c.Defaults.BaseSizePx)
	}
	if _, err := convert.ParseMetric(c.Defaults.Metric); err != nil {
		return fmt.Errorf("defaults.metric: %w", err)
	}
	if c.History.Limit < 1 {
		return fmt.Errorf("history.limit must be at least 1, got %d", c.History.Limit)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

func unmarshalConfig(data []byte, cfg *Config) (*Config, error) {
	// only fields defined above are accepted
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
