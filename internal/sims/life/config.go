package life

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig reports a grid configuration that cannot be built.
var ErrInvalidConfig = errors.New("life: invalid configuration")

// Config holds parameters for the Life grid.
type Config struct {
	Width    int           `yaml:"width"`
	Height   int           `yaml:"height"`
	Interval time.Duration `yaml:"interval"`
	Density  float64       `yaml:"density"`
	Seed     int64         `yaml:"seed"`
	Pattern  string        `yaml:"pattern"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Width:    160,
		Height:   120,
		Interval: 100 * time.Millisecond,
		Density:  0.25,
		Seed:     42,
	}
}

// Validate checks that the configuration describes a buildable grid.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Interval < 0 {
		return fmt.Errorf("%w: negative step interval %s", ErrInvalidConfig, c.Interval)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("%w: density %.3f outside [0,1]", ErrInvalidConfig, c.Density)
	}
	if c.Pattern != "" {
		if _, err := Lookup(c.Pattern); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}
