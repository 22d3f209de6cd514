package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cheggaaa/pb/v3"

	"lifefb/internal/framebuffer"
	"lifefb/internal/render"
	"lifefb/internal/sims/life"
	"lifefb/internal/ui"
)

// Build creates the grid and renderer described by cfg and binds them to fb.
func Build(cfg *Config, fb *framebuffer.Framebuffer, opts ...Option) (*Loop, error) {
	grid, err := life.NewWithConfig(cfg.Grid)
	if err != nil {
		return nil, err
	}
	renderer, err := render.New(cfg.Render, grid.Size())
	if err != nil {
		return nil, err
	}
	base := []Option{WithFrameInterval(cfg.FrameInterval), WithMaxFrames(cfg.MaxFrames)}
	return NewLoop(fb, grid, renderer, cfg.Grid, append(base, opts...)...)
}

// Run opens the configured surface, runs the loop until it stops, and
// releases the surface. Progress output goes to progress when non-nil.
func Run(ctx context.Context, cfg *Config, logger *log.Logger, progress io.Writer) (*ui.Stats, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if cfg.PatternFile != "" {
		p, err := life.LoadPatternFile(cfg.PatternFile)
		if err != nil {
			return nil, err
		}
		if cfg.Grid.Pattern == "" {
			cfg.Grid.Pattern = p.Name
		}
		logger.Printf("loaded pattern %q from %s", p.Name, cfg.PatternFile)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w, h := cfg.PixelSize()
	fb, err := framebuffer.Open(cfg.Backend, cfg.Title, w, h, framebuffer.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	defer fb.Close()

	opts := []Option{WithLogger(logger)}
	var bar *pb.ProgressBar
	if progress != nil && cfg.Progress && cfg.MaxFrames > 0 {
		bar = pb.New(cfg.MaxFrames).SetWriter(progress).Start()
		opts = append(opts, WithProgress(func(n int) { bar.SetCurrent(int64(n)) }))
	}

	loop, err := Build(cfg, fb, opts...)
	if err != nil {
		return nil, err
	}
	logger.Printf("running %dx%d grid on %s (%dx%d px)", cfg.Grid.Width, cfg.Grid.Height, cfg.Backend, w, h)
	err = loop.Run(ctx)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return loop.Stats(), fmt.Errorf("%s: %w", cfg.Backend, err)
	}
	return loop.Stats(), nil
}

// OpenLog returns a logger writing to path, or to stderr when path is empty.
func OpenLog(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(os.Stderr, "lifefb: ", log.LstdFlags), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return log.New(f, "lifefb: ", log.LstdFlags), f, nil
}
