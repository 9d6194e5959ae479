// Package config holds the build configuration shared by the lm commands.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ieee0824/ngramlm/language"
)

// Config describes one model build. Fields missing from a YAML file keep
// their Default() values.
type Config struct {
	Input     string `yaml:"input"`     // corpus path
	Counts    string `yaml:"counts"`    // SQLite count store used instead of Input
	Smoothing string `yaml:"smoothing"` // none, laplace or turing
	Backoff   bool   `yaml:"backoff"`   // emit backoff weights
	Cutoff    int    `yaml:"cutoff"`    // keep sentences with more tokens than this
	Workers   int    `yaml:"workers"`   // counting shards
	NFC       bool   `yaml:"nfc"`       // compose corpus lines to NFC
	Log10     bool   `yaml:"log10"`     // write log10 instead of natural log
	Precision int    `yaml:"precision"` // fixed decimals, 0 = shortest exact form
	OutDir    string `yaml:"outdir"`    // directory receiving the model file
}

// Default returns the configuration used when nothing is specified.
func Default() Config {
	return Config{
		Smoothing: string(language.SmoothingNone),
		Cutoff:    language.DefaultCutoff,
		Workers:   1,
		OutDir:    ".",
	}
}

// Load reads a YAML configuration file on top of Default().
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports configuration errors. An unknown smoothing flavor wraps
// language.ErrUnsupportedSmoothing.
func (c Config) Validate() error {
	if _, err := language.ParseSmoothing(c.Smoothing); err != nil {
		return err
	}
	if c.Input == "" && c.Counts == "" {
		return errors.New("no input: set an input corpus or a count store")
	}
	if c.Cutoff < 0 {
		return fmt.Errorf("cutoff must be >= 0, got %d", c.Cutoff)
	}
	if c.Precision < 0 {
		return fmt.Errorf("precision must be >= 0, got %d", c.Precision)
	}
	return nil
}

// ARPAOptions returns the serializer options for this configuration.
func (c Config) ARPAOptions() language.ARPAOptions {
	opts := language.ARPAOptions{Backoff: c.Backoff, Precision: c.Precision}
	if c.Log10 {
		opts.Base = language.Base10
	}
	return opts
}

// OutputPath is where the model for this configuration is written.
func (c Config) OutputPath() string {
	dir := c.OutDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, OutputName(c.Smoothing, c.Backoff))
}

// OutputName names a model file after the smoothing and backoff settings
// that produced it, e.g. lm_smoothing-none_backoff-yes.txt.
func OutputName(smoothing string, backoff bool) string {
	bo := "no"
	if backoff {
		bo = "yes"
	}
	return "lm_smoothing-" + smoothing + "_backoff-" + bo + ".txt"
}
