package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"lifefb/internal/render"
	"lifefb/internal/sims/life"
)

// ErrInvalidConfig reports settings the loop cannot run with.
var ErrInvalidConfig = errors.New("app: invalid configuration")

// Config represents the settings of one run. Flags override values loaded
// from a YAML file, which override the defaults.
type Config struct {
	Backend       string        `yaml:"backend"`
	Title         string        `yaml:"title"`
	FrameInterval time.Duration `yaml:"frame_interval"`
	MaxFrames     int           `yaml:"max_frames"`
	PatternFile   string        `yaml:"pattern_file"`
	LogFile       string        `yaml:"log_file"`
	Summary       bool          `yaml:"summary"`
	Progress      bool          `yaml:"progress"`

	Grid   life.Config   `yaml:"grid"`
	Render render.Config `yaml:"render"`
}

// DefaultConfig returns a Config populated with sensible defaults. The
// default backend is the terminal, so the board is sized one pixel per cell
// to fit an 80x24 terminal with its status row.
func DefaultConfig() *Config {
	cfg := &Config{
		Backend:       "term",
		Title:         "Game of Life",
		FrameInterval: 16 * time.Millisecond,
		Summary:       true,
		Progress:      true,
		Grid:          life.DefaultConfig(),
		Render:        render.DefaultConfig(),
	}
	cfg.Grid.Width, cfg.Grid.Height = 80, 44
	cfg.Render.TileSize = 1
	return cfg
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// WriteYAML writes the configuration in the format Load reads.
func (c *Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.Backend, "backend", c.Backend, "surface backend (see `lifefb backends`)")
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.DurationVar(&c.FrameInterval, "frame-interval", c.FrameInterval, "minimum time between frames (0 = uncapped)")
	fs.IntVar(&c.MaxFrames, "frames", c.MaxFrames, "stop after this many frames (0 = run until closed)")
	fs.StringVar(&c.PatternFile, "pattern-file", c.PatternFile, "plaintext .cells pattern to load and register")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "write diagnostics to this file")
	fs.BoolVar(&c.Summary, "summary", c.Summary, "print a population report when the run ends")
	fs.BoolVar(&c.Progress, "progress", c.Progress, "show a progress bar for bounded headless runs")

	fs.IntVar(&c.Grid.Width, "width", c.Grid.Width, "grid width in cells")
	fs.IntVar(&c.Grid.Height, "height", c.Grid.Height, "grid height in cells")
	fs.DurationVar(&c.Grid.Interval, "interval", c.Grid.Interval, "time between generations")
	fs.Float64Var(&c.Grid.Density, "density", c.Grid.Density, "probability of a live cell when seeding")
	fs.Int64Var(&c.Grid.Seed, "seed", c.Grid.Seed, "seed for random fills")
	fs.StringVar(&c.Grid.Pattern, "pattern", c.Grid.Pattern, "start from a named pattern instead of a random fill")

	fs.IntVar(&c.Render.TileSize, "tile", c.Render.TileSize, "pixels per cell side")
	fs.StringVar((*string)(&c.Render.Mode), "mode", string(c.Render.Mode), "live cell colouring: flat or gradient")
	fs.StringVar(&c.Render.Background, "background", c.Render.Background, "dead cell colour")
	fs.StringVar(&c.Render.Alive, "alive", c.Render.Alive, "live cell colour in flat mode")
	fs.Float64Var(&c.Render.ShiftRate, "shift-rate", c.Render.ShiftRate, "gradient hue rotation in degrees per second")
	fs.BoolVar(&c.Render.Blend, "blend", c.Render.Blend, "interpolate colours between generations")
	fs.BoolVar(&c.Render.ShowCursor, "cursor", c.Render.ShowCursor, "draw the edit cursor")
}

// ApplyChanged copies the flags the user set explicitly on fs into c, so a
// config file can sit between the defaults and the command line.
func (c *Config) ApplyChanged(fs *pflag.FlagSet) error {
	target := pflag.NewFlagSet("apply", pflag.ContinueOnError)
	c.Bind(target)
	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil || target.Lookup(f.Name) == nil {
			return
		}
		if setErr := target.Set(f.Name, f.Value.String()); setErr != nil {
			err = fmt.Errorf("flag --%s: %w", f.Name, setErr)
		}
	})
	return err
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Backend == "" {
		return fmt.Errorf("%w: no backend", ErrInvalidConfig)
	}
	if c.FrameInterval < 0 {
		return fmt.Errorf("%w: negative frame interval", ErrInvalidConfig)
	}
	if c.MaxFrames < 0 {
		return fmt.Errorf("%w: negative frame limit", ErrInvalidConfig)
	}
	if err := c.Grid.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Render.TileSize <= 0 {
		return fmt.Errorf("%w: tile size must be positive", ErrInvalidConfig)
	}
	switch c.Render.Mode {
	case render.ModeFlat, render.ModeGradient:
	default:
		return fmt.Errorf("%w: unknown render mode %q", ErrInvalidConfig, c.Render.Mode)
	}
	return nil
}

// PixelSize returns the framebuffer dimensions needed for the grid.
func (c *Config) PixelSize() (int, int) {
	return c.Grid.Width * c.Render.TileSize, c.Grid.Height * c.Render.TileSize
}
