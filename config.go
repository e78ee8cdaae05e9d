package stepreport

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig reports a config document that decoded but cannot be
// used to address a reporting service.
var ErrInvalidConfig = errors.New("invalid config")

// Config addresses the reporting service a run's step results are sent
// to. Attributes are attached to the launch as key-value tags.
type Config struct {
	Endpoint   string            `yaml:"endpoint"`
	Project    string            `yaml:"project"`
	Launch     string            `yaml:"launch"`
	Attributes map[string]string `yaml:"attributes"`
}

// ReadConfig decodes a YAML config document. Endpoint and project are
// required; a missing launch name defaults to the project name.
func ReadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Endpoint == "" {
		return Config{}, fmt.Errorf("%w: endpoint is required", ErrInvalidConfig)
	}
	if cfg.Project == "" {
		return Config{}, fmt.Errorf("%w: project is required", ErrInvalidConfig)
	}
	if cfg.Launch == "" {
		cfg.Launch = cfg.Project
	}
	return cfg, nil
}

// LoadConfig reads a YAML config file from disk.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return ReadConfig(f)
}
