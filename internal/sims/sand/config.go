package sand

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("invalid sand config")

// Config controls the sandbox viewport, physics and brush.
type Config struct {
	// ViewportW and ViewportH are the drawing area in pixels. The grid has
	// ViewportW/CellSize columns and ViewportH/CellSize rows.
	ViewportW int `yaml:"viewport_w"`
	ViewportH int `yaml:"viewport_h"`
	CellSize  int `yaml:"cell_size"`

	Gravity float64 `yaml:"gravity"`

	// Kernel is the odd side length of the square painted per spawn.
	Kernel  int     `yaml:"kernel"`
	Density float64 `yaml:"density"`

	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		ViewportW: 600,
		ViewportH: 500,
		CellSize:  2,
		Gravity:   0.01,
		Kernel:    3,
		Density:   0.75,
		Seed:      1,
	}
}

// Dimensions returns the grid size implied by the viewport and cell size.
func (c Config) Dimensions() (cols, rows int) {
	if c.CellSize <= 0 {
		return 0, 0
	}
	cols, rows = c.ViewportW/c.CellSize, c.ViewportH/c.CellSize
	return max(cols, 0), max(rows, 0)
}

// Validate reports configuration values the sandbox cannot run with.
func (c Config) Validate() error {
	switch {
	case c.ViewportW < 0 || c.ViewportH < 0:
		return fmt.Errorf("viewport %dx%d is negative: %w", c.ViewportW, c.ViewportH, ErrInvalidConfig)
	case c.CellSize < 1:
		return fmt.Errorf("cell size %d must be at least 1: %w", c.CellSize, ErrInvalidConfig)
	case c.Gravity < 0:
		return fmt.Errorf("gravity %g is negative: %w", c.Gravity, ErrInvalidConfig)
	case c.Kernel < 1 || c.Kernel%2 == 0:
		return fmt.Errorf("kernel %d must be a positive odd number: %w", c.Kernel, ErrInvalidConfig)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("density %g is outside [0, 1]: %w", c.Density, ErrInvalidConfig)
	}
	return nil
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["viewport_w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.ViewportW = parsed
		}
	}
	if v, ok := cfg["viewport_h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.ViewportH = parsed
		}
	}
	if v, ok := cfg["cell_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["gravity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Gravity = parsed
		}
	}
	if v, ok := cfg["kernel"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 && parsed%2 == 1 {
			c.Kernel = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// ToMap is the inverse of FromMap.
func (c Config) ToMap() map[string]string {
	return map[string]string{
		"viewport_w": strconv.Itoa(c.ViewportW),
		"viewport_h": strconv.Itoa(c.ViewportH),
		"cell_size":  strconv.Itoa(c.CellSize),
		"gravity":    strconv.FormatFloat(c.Gravity, 'f', -1, 64),
		"kernel":     strconv.Itoa(c.Kernel),
		"density":    strconv.FormatFloat(c.Density, 'f', -1, 64),
		"seed":       strconv.FormatInt(c.Seed, 10),
	}
}
