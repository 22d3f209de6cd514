package app

import (
	"context"
	"io"
	"log"
	"time"

	"lifefb/internal/framebuffer"
	"lifefb/internal/render"
)

// DrawFractal clears fb to bg and draws the recursive squares centred on the
// buffer, starting at half the shorter side.
func DrawFractal(fb *framebuffer.Framebuffer, steps int, bg, fg framebuffer.Color) {
	fb.Fill(bg)
	w, h := fb.Width(), fb.Height()
	render.Fractal(fb, steps, w/2, h/2, min(w, h)/2, fg)
}

// RunFractal shows the fractal demo on the configured surface until Escape,
// a close request, the frame limit or ctx ends it.
func RunFractal(ctx context.Context, cfg *Config, steps int, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	bg, err := render.ParseColor(cfg.Render.Background)
	if err != nil {
		return err
	}
	fg, err := render.ParseColor(cfg.Render.Alive)
	if err != nil {
		return err
	}

	w, h := cfg.PixelSize()
	fb, err := framebuffer.Open(cfg.Backend, cfg.Title, w, h, framebuffer.WithLogger(logger))
	if err != nil {
		return err
	}
	defer fb.Close()

	DrawFractal(fb, steps, bg, fg)
	fb.RegisterListener(framebuffer.KeyEscape, fb.Stop)
	fb.SetStatus("fractal  Esc to quit")

	frames := 0
	frame := func() bool {
		if ctx.Err() != nil {
			fb.Stop()
			return false
		}
		fb.PollAndDispatch()
		if !fb.IsRunning() {
			return false
		}
		fb.Present()
		frames++
		if cfg.MaxFrames > 0 && frames >= cfg.MaxFrames {
			fb.Stop()
		}
		return fb.IsRunning()
	}
	if d, ok := fb.Driver(); ok {
		return d.Drive(frame)
	}
	for frame() {
		if cfg.FrameInterval > 0 {
			time.Sleep(cfg.FrameInterval)
		}
	}
	return nil
}
