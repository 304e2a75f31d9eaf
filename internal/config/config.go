// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the rpncalc command configuration from defaults, an
// optional TOML file, RPNCALC_ environment variables and command line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ianlewis/rpncalc/generator"
)

// Configuration keys.
const (
	KeyLogLevel             = "log.level"
	KeyGeneratorMaxOperands = "generator.max_operands"
	KeyGeneratorMaxDepth    = "generator.max_depth"
	KeyGeneratorMaxNumber   = "generator.max_number"
	KeyGeneratorFixedDigits = "generator.fixed_digits"
	KeyGeneratorSeed        = "generator.seed"
)

// FlagConfig names the flag holding an explicit config file path.
const FlagConfig = "config"

// flagKeys maps flag names to the keys they override.
var flagKeys = map[string]string{
	"log-level":    KeyLogLevel,
	"max-operands": KeyGeneratorMaxOperands,
	"max-depth":    KeyGeneratorMaxDepth,
	"max-number":   KeyGeneratorMaxNumber,
	"fixed-digits": KeyGeneratorFixedDigits,
	"seed":         KeyGeneratorSeed,
}

// ErrConfig is returned for configuration that cannot be loaded or used.
var ErrConfig = errors.New("invalid configuration")

// Config is the complete command configuration.
type Config struct {
	Log       Log       `mapstructure:"log"`
	Generator Generator `mapstructure:"generator"`
}

// Log configures logging.
type Log struct {
	// Level is a zerolog level name. Empty means info.
	Level string `mapstructure:"level"`
}

// ZerologLevel parses Level.
func (l Log) ZerologLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(l.Level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: log level: %w", ErrConfig, err)
	}
	if level == zerolog.NoLevel {
		return zerolog.InfoLevel, nil
	}
	return level, nil
}

// Generator configures the formula generator.
type Generator struct {
	MaxOperands int     `mapstructure:"max_operands"`
	MaxDepth    int     `mapstructure:"max_depth"`
	MaxNumber   float64 `mapstructure:"max_number"`
	FixedDigits int     `mapstructure:"fixed_digits"`

	// Seed seeds the generator. Zero means a random seed.
	Seed uint64 `mapstructure:"seed"`
}

// Options returns the generator options for g.
func (g Generator) Options() []generator.Option {
	opts := []generator.Option{
		generator.WithMaxOperands(g.MaxOperands),
		generator.WithMaxDepth(g.MaxDepth),
		generator.WithMaxNumber(g.MaxNumber),
		generator.WithFixedDigits(g.FixedDigits),
	}
	if g.Seed != 0 {
		opts = append(opts, generator.WithSource(rand.NewPCG(g.Seed, g.Seed)))
	}
	return opts
}

// SetDefaults sets the default value of every key and where the config file
// is searched for.
func SetDefaults(v *viper.Viper) {
	v.SetConfigName("rpncalc")
	v.AddConfigPath(".")
	v.SetConfigType("toml")

	v.SetEnvPrefix("RPNCALC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyLogLevel, "info")

	v.SetDefault(KeyGeneratorMaxOperands, generator.DefaultMaxOperands)
	v.SetDefault(KeyGeneratorMaxDepth, generator.DefaultMaxDepth)
	v.SetDefault(KeyGeneratorMaxNumber, generator.DefaultMaxNumber)
	v.SetDefault(KeyGeneratorFixedDigits, generator.DefaultFixedDigits)
	v.SetDefault(KeyGeneratorSeed, 0)
}

// AddFlags defines the configuration flags on fs.
func AddFlags(fs *pflag.FlagSet) {
	fs.String(FlagConfig, "", "config file (default ./rpncalc.toml)")
	fs.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	fs.Int("max-operands", generator.DefaultMaxOperands, "generator: most operands in one group")
	fs.Int("max-depth", generator.DefaultMaxDepth, "generator: deepest nesting of groups")
	fs.Float64("max-number", generator.DefaultMaxNumber, "generator: upper bound of numbers")
	fs.Int("fixed-digits", generator.DefaultFixedDigits, "generator: decimal places of numbers")
	fs.Uint64("seed", 0, "generator: random seed (0 for a random seed)")
}

// BindFlags binds the flags defined by [AddFlags] to their keys.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %q: %w", name, err)
		}
	}
	return nil
}

// Load reads the config file into v and decodes and validates the result.
// A missing config file is only an error if path is set.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: reading config: %w", ErrConfig, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("%w: decoding config: %w", ErrConfig, err)
	}

	if _, err := c.Log.ZerologLevel(); err != nil {
		return nil, err
	}
	if _, err := generator.New(c.Generator.Options()...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return &c, nil
}
