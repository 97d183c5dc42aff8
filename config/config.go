// SPDX-License-Identifier: MIT

// Package config loads solver settings from a YAML file.
//
// Example file:
//
//	method: gauss-seidel
//	threads: 4
//	max_iterations: 200
//	tolerance: 1e-8
//	history: atomic        # optional, per-method default when empty
//	timeout: 30s           # optional, 0 disables
//	log:
//	  level: debug
//	  json: false
//
// Absent keys keep their Default values; unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/relax/history"
	"github.com/katalvlaran/relax/logging"
	"github.com/katalvlaran/relax/solver"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the file representation of solver and logging settings.
type Config struct {
	Method        string        `yaml:"method"`
	Threads       int           `yaml:"threads"`
	MaxIterations int           `yaml:"max_iterations"`
	Tolerance     float64       `yaml:"tolerance"`
	History       string        `yaml:"history,omitempty"`
	Timeout       time.Duration `yaml:"timeout,omitempty"`
	Log           Log           `yaml:"log"`
}

// Log configures the command-line logger.
type Log struct {
	Level   string `yaml:"level"`
	JSON    bool   `yaml:"json"`
	NoColor bool   `yaml:"no_color,omitempty"`
}

// Default mirrors the solver defaults.
func Default() Config {
	return Config{
		Method:        solver.Jacobi.String(),
		Threads:       solver.DefaultThreads,
		MaxIterations: solver.DefaultMaxIterations,
		Tolerance:     solver.DefaultTolerance,
		Log:           Log{Level: "info"},
	}
}

// Parse decodes data over Default and validates the result.
// Empty input yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports every invalid field at once, each wrapping ErrInvalid.
func (c Config) Validate() error {
	var errs []error
	if _, err := solver.ParseMethod(c.Method); err != nil {
		errs = append(errs, fmt.Errorf("%w: method %q", ErrInvalid, c.Method))
	}
	if c.Threads < 1 || c.Threads > solver.MaxThreads {
		errs = append(errs, fmt.Errorf("%w: threads %d not in [1, %d]", ErrInvalid, c.Threads, solver.MaxThreads))
	}
	if c.MaxIterations < 1 {
		errs = append(errs, fmt.Errorf("%w: max_iterations %d < 1", ErrInvalid, c.MaxIterations))
	}
	if math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) || c.Tolerance <= 0 {
		errs = append(errs, fmt.Errorf("%w: tolerance %v must be finite and > 0", ErrInvalid, c.Tolerance))
	}
	if c.History != "" {
		if _, err := history.ParseKind(c.History); err != nil {
			errs = append(errs, fmt.Errorf("%w: history %q", ErrInvalid, c.History))
		}
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("%w: timeout %s < 0", ErrInvalid, c.Timeout))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level))
	}

	return errors.Join(errs...)
}

// SolverOptions converts a valid Config into solver options.
// The history option is only set when History is not empty.
func (c Config) SolverOptions() ([]solver.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	m, _ := solver.ParseMethod(c.Method)
	opts := []solver.Option{
		solver.WithMethod(m),
		solver.WithThreads(c.Threads),
		solver.WithMaxIterations(c.MaxIterations),
		solver.WithTolerance(c.Tolerance),
	}
	if c.History != "" {
		k, _ := history.ParseKind(c.History)
		opts = append(opts, solver.WithHistory(k))
	}

	return opts, nil
}

// Logging converts the log section into a logging.Config writing to w.
func (c Config) Logging(w io.Writer) (logging.Config, error) {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return logging.Config{}, fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}

	return logging.Config{Level: level, JSON: c.Log.JSON, NoColor: c.Log.NoColor, Writer: w}, nil
}

// Marshal renders c as YAML in the same layout Parse accepts.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
