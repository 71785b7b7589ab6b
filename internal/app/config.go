package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"falling-sand/internal/sims/sand"
)

// Config holds everything a driver needs to run a sandbox.
type Config struct {
	Sand sand.Config `yaml:",inline"`

	TPS      int    `yaml:"tps"`
	HUDWidth int    `yaml:"hud_width"`
	LogLevel string `yaml:"log_level"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sand:     sand.DefaultConfig(),
		TPS:      60,
		HUDWidth: 220,
		LogLevel: "info",
	}
}

// LoadConfig reads a YAML file on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate rejects values no driver can run with.
func (c *Config) Validate() error {
	if err := c.Sand.Validate(); err != nil {
		return err
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps %d must be positive: %w", c.TPS, sand.ErrInvalidConfig)
	}
	if c.HUDWidth < 0 {
		return fmt.Errorf("hud width %d is negative: %w", c.HUDWidth, sand.ErrInvalidConfig)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Sand.ViewportW, "width", c.Sand.ViewportW, "viewport width in pixels")
	fs.IntVar(&c.Sand.ViewportH, "height", c.Sand.ViewportH, "viewport height in pixels")
	fs.IntVar(&c.Sand.CellSize, "cell-size", c.Sand.CellSize, "particle size in pixels")
	fs.Float64Var(&c.Sand.Gravity, "gravity", c.Sand.Gravity, "velocity gained per tick")
	fs.IntVar(&c.Sand.Kernel, "kernel", c.Sand.Kernel, "odd side length of the brush")
	fs.Float64Var(&c.Sand.Density, "density", c.Sand.Density, "chance that a brush cell is painted")
	fs.Int64Var(&c.Sand.Seed, "seed", c.Sand.Seed, "seed for the random stream")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}

// ApplyFlags copies the flags explicitly set on fs onto c. It lets a config
// file provide the base values while the command line still wins.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	own := pflag.NewFlagSet("config", pflag.ContinueOnError)
	c.Bind(own)
	var errs []error
	fs.Visit(func(f *pflag.Flag) {
		if own.Lookup(f.Name) == nil {
			return
		}
		if err := own.Set(f.Name, f.Value.String()); err != nil {
			errs = append(errs, fmt.Errorf("flag --%s: %w", f.Name, err))
		}
	})
	return errors.Join(errs...)
}

// Resolve builds the effective configuration: defaults, then the optional
// YAML file at path, then explicitly set flags from fs.
func Resolve(fs *pflag.FlagSet, path string) (*Config, error) {
	cfg := NewConfig()
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyFlags(fs); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
