// Package config loads galois settings with viper.
//
// Precedence, lowest first: built-in defaults, galois.toml (working
// directory or an explicit path), GALOIS_* environment variables
// (GALOIS_LATTICE_ALGORITHM for lattice.algorithm), command-line flags bound
// by the caller.
package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// FileName is the config file looked up in the working directory.
const FileName = "galois.toml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "GALOIS"

// Lattice algorithm names.
const (
	AlgorithmNaive  = "naive"
	AlgorithmExtent = "extent"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config is the resolved configuration.
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Lattice   LatticeConfig   `mapstructure:"lattice"`
	Enumerate EnumerateConfig `mapstructure:"enumerate"`
	Output    OutputConfig    `mapstructure:"output"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// LatticeConfig selects and bounds the cover builder.
type LatticeConfig struct {
	Algorithm   string `mapstructure:"algorithm"`
	Trie        bool   `mapstructure:"trie"`
	MaxConcepts int    `mapstructure:"max_concepts"`
}

// EnumerateConfig tunes concept enumeration.
type EnumerateConfig struct {
	// Workers > 1 selects the parallel driver.
	Workers int `mapstructure:"workers"`
}

// OutputConfig selects the report encoding.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("lattice.algorithm", AlgorithmExtent)
	v.SetDefault("lattice.trie", false)
	v.SetDefault("lattice.max_concepts", 20000)
	v.SetDefault("enumerate.workers", 1)
	v.SetDefault("output.format", FormatJSON)
}

// New returns a viper instance with defaults, environment binding and, when
// present, the config file. An explicit path must exist; the default
// galois.toml is optional.
func New(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if path == "" {
		if _, err := os.Stat(FileName); err != nil {
			return v, nil
		}
		path = FileName
	}
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.WithHint(errors.Wrapf(err, "config: read %s", path),
			"check the TOML syntax or pass --config with another file")
	}

	return v, nil
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects values no command can act on.
func (c *Config) Validate() error {
	switch c.Lattice.Algorithm {
	case AlgorithmNaive, AlgorithmExtent:
	default:
		return errors.WithHintf(errors.Newf("config: unknown lattice.algorithm %q", c.Lattice.Algorithm),
			"use %q or %q", AlgorithmNaive, AlgorithmExtent)
	}
	if c.Lattice.MaxConcepts < 0 {
		return errors.Newf("config: lattice.max_concepts must be >= 0, got %d", c.Lattice.MaxConcepts)
	}
	if c.Enumerate.Workers < 1 {
		return errors.Newf("config: enumerate.workers must be >= 1, got %d", c.Enumerate.Workers)
	}
	switch c.Output.Format {
	case FormatJSON, FormatYAML:
	default:
		return errors.WithHintf(errors.Newf("config: unknown output.format %q", c.Output.Format),
			"use %q or %q", FormatJSON, FormatYAML)
	}

	return nil
}
