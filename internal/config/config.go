// Package config loads CLI configuration from an optional YAML file,
// DEGREES_* environment variables, and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. DEGREES_SEED.
const EnvPrefix = "DEGREES"

// Config holds all application configuration.
type Config struct {
	Dataset        string    `mapstructure:"dataset"`
	Seed           int64     `mapstructure:"seed"`
	DegreeSamples  int       `mapstructure:"degree_samples"`
	DistanceTrials int       `mapstructure:"distance_trials"`
	EdgeLengths    bool      `mapstructure:"edge_lengths"`
	SkipDiameter   bool      `mapstructure:"skip_diameter"`
	Log            LogConfig `mapstructure:"log"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// setDefaults mirrors the reference analysis of facebook_combined.txt.
func setDefaults(v *viper.Viper) {
	v.SetDefault("dataset", "facebook_combined.txt")
	v.SetDefault("seed", 0)
	v.SetDefault("degree_samples", 500)
	v.SetDefault("distance_trials", 3000)
	v.SetDefault("edge_lengths", false)
	v.SetDefault("skip_diameter", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Validate reports every invalid setting, joined.
func (c *Config) Validate() error {
	var errs []error
	if c.Dataset == "" {
		errs = append(errs, errors.New("dataset path is empty"))
	}
	if c.DegreeSamples < 0 {
		errs = append(errs, fmt.Errorf("degree_samples %d is negative", c.DegreeSamples))
	}
	if c.DistanceTrials < 0 {
		errs = append(errs, fmt.Errorf("distance_trials %d is negative", c.DistanceTrials))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q is not text or json", c.Log.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// SlogLevel parses Level ("debug", "info", "warn", "error").
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level %q: %w", l.Level, err)
	}
	return lvl, nil
}

// NewLogger builds a logger writing to stderr in the configured format.
func (l LogConfig) NewLogger() *slog.Logger {
	lvl, _ := l.SlogLevel()
	hopts := &slog.HandlerOptions{Level: lvl}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, hopts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, hopts))
}

// Load reads configuration from path (skipped when empty), the environment,
// and flags. Flag names use dashes; they map onto keys with underscores.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag --%s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// flagKeys maps CLI flag names onto configuration keys.
var flagKeys = map[string]string{
	"dataset":         "dataset",
	"seed":            "seed",
	"degree-samples":  "degree_samples",
	"distance-trials": "distance_trials",
	"edge-lengths":    "edge_lengths",
	"skip-diameter":   "skip_diameter",
	"log-level":       "log.level",
	"log-format":      "log.format",
}
