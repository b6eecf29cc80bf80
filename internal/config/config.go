// SPDX-License-Identifier: MIT

// Package config holds the run configuration of the netinfer CLI: a YAML
// file decoded strictly over documented defaults, then overridden by flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/netinfer/basis"
	"github.com/katalvlaran/netinfer/dynamics"
	"github.com/katalvlaran/netinfer/matrix"
	"github.com/katalvlaran/netinfer/reconstruct"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Defaults.
const (
	DefaultDataDir   = "Data"
	DefaultModel     = "generic"
	DefaultOrder     = 6
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config is the full run configuration.
type Config struct {
	DataDir       string        `yaml:"data_dir"`
	Model         string        `yaml:"model"`
	Basis         basis.Kind    `yaml:"basis"`
	Order         int           `yaml:"order"`
	Units         []int         `yaml:"units"`
	Threshold     float64       `yaml:"threshold"`
	Rcond         float64       `yaml:"rcond"`
	Workers       int           `yaml:"workers"` // 0 → GOMAXPROCS
	ExcludeTarget bool          `yaml:"exclude_target"`
	Timeout       time.Duration `yaml:"timeout"` // 0 → none
	Log           LogConfig     `yaml:"log"`
	MetricsOut    string        `yaml:"metrics_out"` // Prometheus textfile; empty disables
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Default returns a configuration that validates as is.
func Default() Config {
	return Config{
		DataDir:   DefaultDataDir,
		Model:     DefaultModel,
		Basis:     basis.Polynomial,
		Order:     DefaultOrder,
		Units:     []int{0},
		Threshold: reconstruct.DefaultThreshold,
		Rcond:     matrix.DefaultRcond,
		Log:       LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

// Load decodes the YAML file at path over Default. An empty path returns
// the defaults. Unknown keys are rejected. The result is not validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads one YAML document over Default with strict field checking.
// An empty document yields the defaults.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Validate checks every field and reports the first offending one.
func (c *Config) Validate() error {
	if _, err := dynamics.Lookup(c.Model); err != nil {
		return fmt.Errorf("%w: model: %w", ErrInvalid, err)
	}
	if !c.Basis.Valid() {
		return fmt.Errorf("%w: basis %s", ErrInvalid, c.Basis)
	}
	if c.Order < 1 {
		return fmt.Errorf("%w: order=%d must be >= 1", ErrInvalid, c.Order)
	}
	if len(c.Units) == 0 {
		return fmt.Errorf("%w: units must not be empty", ErrInvalid)
	}
	for _, u := range c.Units {
		if u < 0 {
			return fmt.Errorf("%w: unit %d is negative", ErrInvalid, u)
		}
	}
	if math.IsNaN(c.Threshold) || math.IsInf(c.Threshold, 0) || c.Threshold < 0 {
		return fmt.Errorf("%w: threshold=%g", ErrInvalid, c.Threshold)
	}
	if math.IsNaN(c.Rcond) || math.IsInf(c.Rcond, 0) || c.Rcond < 0 {
		return fmt.Errorf("%w: rcond=%g", ErrInvalid, c.Rcond)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers=%d", ErrInvalid, c.Workers)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout=%s", ErrInvalid, c.Timeout)
	}
	if _, err := c.Log.level(); err != nil {
		return err
	}
	if f := strings.ToLower(c.Log.Format); f != "text" && f != "json" {
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalid, c.Log.Format)
	}

	return nil
}

// Options maps the selector settings onto reconstruct options.
func (c *Config) Options() []reconstruct.Option {
	opts := []reconstruct.Option{
		reconstruct.WithThreshold(c.Threshold),
		reconstruct.WithRcond(c.Rcond),
		reconstruct.WithWorkers(c.Workers),
	}
	if c.ExcludeTarget {
		opts = append(opts, reconstruct.WithExcludeTarget())
	}

	return opts
}

func (l LogConfig) level() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: log.level %q", ErrInvalid, l.Level)
	}
}

// NewLogger builds a text or JSON slog logger writing to w. Unknown levels
// fall back to info; Validate reports them.
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	lvl, _ := l.level()
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	if strings.EqualFold(l.Format, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h)
}
