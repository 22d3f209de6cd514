package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"

	"lifefb/internal/render"
)

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	src := "backend: headless\ngrid:\n  width: 40\n  interval: 250ms\nrender:\n  mode: flat\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Backend != "headless" || cfg.Grid.Width != 40 || cfg.Grid.Interval != 250*time.Millisecond {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Grid.Height != DefaultConfig().Grid.Height || cfg.Render.TileSize != DefaultConfig().Render.TileSize {
		t.Fatalf("defaults lost: %+v", cfg)
	}
	if cfg.Render.Mode != render.ModeFlat {
		t.Fatalf("mode = %q", cfg.Render.Mode)
	}
}

func TestLoadReportsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.HasPrefix(err.Error(), path) {
		t.Fatalf("expected error prefixed with the path, got %v", err)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Grid.Pattern = "acorn"
	var buf bytes.Buffer
	if err := cfg.WriteYAML(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "interval: 100ms") {
		t.Fatalf("durations not written as text:\n%s", buf.String())
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if back.Grid != cfg.Grid || back.Render != cfg.Render {
		t.Fatalf("saved config differs: %+v", back)
	}
}

func TestApplyChangedOnlyCopiesSetFlags(t *testing.T) {
	flags := DefaultConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Bind(fs)
	if err := fs.Parse([]string{"--width=12", "--mode=flat", "--blend"}); err != nil {
		t.Fatal(err)
	}

	fromFile := DefaultConfig()
	fromFile.Grid.Height = 99
	fromFile.Grid.Width = 77
	if err := fromFile.ApplyChanged(fs); err != nil {
		t.Fatal(err)
	}
	if fromFile.Grid.Width != 12 || fromFile.Grid.Height != 99 {
		t.Fatalf("width/height = %d/%d", fromFile.Grid.Width, fromFile.Grid.Height)
	}
	if fromFile.Render.Mode != render.ModeFlat || !fromFile.Render.Blend {
		t.Fatalf("render flags not applied: %+v", fromFile.Render)
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	cases := map[string]func(*Config){
		"backend": func(c *Config) { c.Backend = "" },
		"frames":  func(c *Config) { c.MaxFrames = -1 },
		"cap":     func(c *Config) { c.FrameInterval = -time.Second },
		"tile":    func(c *Config) { c.Render.TileSize = 0 },
		"mode":    func(c *Config) { c.Render.Mode = "sepia" },
		"density": func(c *Config) { c.Grid.Density = 2 },
		"pattern": func(c *Config) { c.Grid.Pattern = "no-such-pattern" },
	}
	for name, mutate := range cases {
		cfg := DefaultConfig()
		mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: expected ErrInvalidConfig, got %v", name, err)
		}
	}
}

func TestPixelSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Grid.Width, cfg.Grid.Height, cfg.Render.TileSize = 10, 4, 3
	if w, h := cfg.PixelSize(); w != 30 || h != 12 {
		t.Fatalf("pixel size = %dx%d", w, h)
	}
}

func TestDefaultsFitStandardTerminal(t *testing.T) {
	cfg := DefaultConfig()
	w, h := cfg.PixelSize()
	// Two pixels per terminal row, plus the status row.
	if w > 80 || (h+1)/2+1 > 24 {
		t.Fatalf("default %dx%d pixels do not fit an 80x24 terminal", w, h)
	}
	if cfg.Backend != "term" {
		t.Fatalf("backend = %q", cfg.Backend)
	}
}
