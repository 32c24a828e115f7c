// Package config loads runner settings from defaults, an optional aoc.yaml
// or aoc.toml in the working directory, AOC_* environment variables and
// command-line flags, in increasing precedence.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/aoclive/aoc/internal/errors"
)

// Config is the runner configuration.
type Config struct {
	// Inputs is the directory holding day_NN.txt puzzle inputs.
	Inputs string `mapstructure:"inputs"`
	// Samples enables checking embedded samples before the real input.
	Samples bool `mapstructure:"samples"`
	// Parallel bounds how many days run at once with --all.
	Parallel int  `mapstructure:"parallel"`
	Verbose  int  `mapstructure:"verbose"`
	JSON     bool `mapstructure:"json"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("inputs", "inputs")
	v.SetDefault("samples", true)
	v.SetDefault("parallel", 4)
	v.SetDefault("verbose", 0)
	v.SetDefault("json", false)
}

// New returns a viper instance with defaults, environment binding and the
// optional project config file already read.
func New() (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix("AOC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("aoc")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading aoc config")
		}
	}
	return v, nil
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate reports settings the runner cannot work with.
func (c *Config) Validate() error {
	if c.Inputs == "" {
		return errors.New("inputs directory must not be empty")
	}
	if c.Parallel < 1 {
		return errors.Newf("parallel must be at least 1, got %d", c.Parallel)
	}
	if c.Verbose < 0 {
		return errors.Newf("verbose must not be negative, got %d", c.Verbose)
	}
	return nil
}
