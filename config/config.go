// SPDX-License-Identifier: MIT

// Package config loads the YAML run configuration of the ringnet command.
//
// Example:
//
//	input:
//	  path: tracts.csv
//	  label_column: GEOID
//	dimensions:
//	  - column: Education
//	    weight: 0.21
//	  - column: Housing
//	    weight: 0.14
//	window_size: 0.05
//	workers: 4
//	output:
//	  graph: network.json
//	  format: json
//	  partition: partition.csv
//	log_level: info
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output formats accepted by Output.Format.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Config is the top-level run configuration.
type Config struct {
	Input      InputConfig       `yaml:"input"`
	Dimensions []DimensionConfig `yaml:"dimensions"`
	WindowSize float64           `yaml:"window_size"`
	Workers    int               `yaml:"workers"`
	Output     OutputConfig      `yaml:"output"`
	LogLevel   string            `yaml:"log_level"`
}

// InputConfig locates the CSV table.
type InputConfig struct {
	Path        string `yaml:"path"`
	LabelColumn string `yaml:"label_column"`
}

// DimensionConfig binds a CSV column to its dimension weight.
type DimensionConfig struct {
	Column string  `yaml:"column"`
	Weight float64 `yaml:"weight"`
}

// OutputConfig says where results go. Empty Graph means stdout.
type OutputConfig struct {
	Graph     string `yaml:"graph"`
	Format    string `yaml:"format"`
	Partition string `yaml:"partition"`
}

// Default returns the configuration used before any file or flag is applied.
func Default() Config {
	return Config{
		Workers:  1,
		Output:   OutputConfig{Format: FormatJSON},
		LogLevel: "info",
	}
}

// Load reads and parses the YAML file at path over Default.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(raw)
}

// Parse decodes YAML over Default. Unknown keys are rejected.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	// io.EOF means an empty document, which leaves Default in place.
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}

	return cfg, nil
}

// Validate checks the fields needed to run the pipeline.
func (c Config) Validate() error {
	if c.Input.Path == "" {
		return fmt.Errorf("%w: input.path is required", ErrInvalidConfig)
	}
	if len(c.Dimensions) == 0 {
		return fmt.Errorf("%w: at least one dimension is required", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(c.Dimensions))
	for i, d := range c.Dimensions {
		if d.Column == "" {
			return fmt.Errorf("%w: dimensions[%d].column is empty", ErrInvalidConfig, i)
		}
		if seen[d.Column] {
			return fmt.Errorf("%w: dimensions[%d].column %q repeated", ErrInvalidConfig, i, d.Column)
		}
		seen[d.Column] = true
		if !(d.Weight > 0) || math.IsInf(d.Weight, 0) {
			return fmt.Errorf("%w: dimensions[%d].weight must be > 0, got %v", ErrInvalidConfig, i, d.Weight)
		}
	}
	if !(c.WindowSize > 0) || math.IsInf(c.WindowSize, 0) {
		return fmt.Errorf("%w: window_size must be > 0, got %v", ErrInvalidConfig, c.WindowSize)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	}
	switch c.Output.Format {
	case FormatJSON, FormatCSV:
	default:
		return fmt.Errorf("%w: output.format must be %q or %q, got %q", ErrInvalidConfig, FormatJSON, FormatCSV, c.Output.Format)
	}

	return nil
}

// Columns returns the dimension column names in order.
func (c Config) Columns() []string {
	out := make([]string, len(c.Dimensions))
	for i, d := range c.Dimensions {
		out[i] = d.Column
	}

	return out
}

// Weights returns the dimension weights in order.
func (c Config) Weights() []float64 {
	out := make([]float64, len(c.Dimensions))
	for i, d := range c.Dimensions {
		out[i] = d.Weight
	}

	return out
}
