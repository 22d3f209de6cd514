package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"lifefb/internal/core"
	"lifefb/internal/framebuffer"
	"lifefb/internal/render"
	"lifefb/internal/sims/life"
	"lifefb/internal/ui"
)

const (
	minInterval = 10 * time.Millisecond
	maxInterval = 5 * time.Second

	historySamples = 512
)

// Loop drives one framebuffer and one grid: poll input, advance the grid when
// its interval has elapsed, paint, present.
type Loop struct {
	fb       *framebuffer.Framebuffer
	grid     *life.Grid
	cursor   *life.Cursor
	renderer *render.Renderer
	stats    *ui.Stats
	gridCfg  life.Config
	logger   *log.Logger

	clock    func() time.Time
	sleep    func(time.Duration)
	progress func(frames int)

	frameInterval time.Duration
	maxFrames     int

	paused   bool
	stepOnce bool
	frames   int
}

// Option configures a Loop.
type Option func(*Loop)

// WithClock replaces time.Now.
func WithClock(clock func() time.Time) Option {
	return func(l *Loop) { l.clock = clock }
}

// WithSleep replaces time.Sleep for the frame cap.
func WithSleep(sleep func(time.Duration)) Option {
	return func(l *Loop) { l.sleep = sleep }
}

// WithLogger sets the destination for loop diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithProgress registers a callback invoked after every frame.
func WithProgress(fn func(frames int)) Option {
	return func(l *Loop) { l.progress = fn }
}

// WithFrameInterval caps the frame rate of self-driven surfaces.
func WithFrameInterval(d time.Duration) Option {
	return func(l *Loop) { l.frameInterval = d }
}

// WithMaxFrames stops the loop after n frames. Zero means no limit.
func WithMaxFrames(n int) Option {
	return func(l *Loop) { l.maxFrames = n }
}

// NewLoop wires a grid and renderer to fb and installs the key bindings.
// gridCfg is the configuration reseeding returns to. The framebuffer must be
// large enough for every tile of the grid.
func NewLoop(fb *framebuffer.Framebuffer, grid *life.Grid, renderer *render.Renderer, gridCfg life.Config, opts ...Option) (*Loop, error) {
	size, tile := grid.Size(), renderer.TileSize()
	if fb.Width() < size.W*tile || fb.Height() < size.H*tile {
		return nil, fmt.Errorf("%w: %dx%d grid at tile %d needs %dx%d pixels, framebuffer is %dx%d",
			ErrInvalidConfig, size.W, size.H, tile, size.W*tile, size.H*tile, fb.Width(), fb.Height())
	}
	l := &Loop{
		fb:       fb,
		grid:     grid,
		cursor:   life.NewCursor(grid.Size()),
		renderer: renderer,
		stats:    ui.NewStats(historySamples),
		gridCfg:  gridCfg,
		logger:   log.New(io.Discard, "", 0),
		clock:    time.Now,
		sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.bindKeys()
	return l, nil
}

// Grid returns the simulated grid.
func (l *Loop) Grid() *life.Grid { return l.grid }

// Cursor returns the edit cursor.
func (l *Loop) Cursor() *life.Cursor { return l.cursor }

// Renderer returns the renderer used for painting.
func (l *Loop) Renderer() *render.Renderer { return l.renderer }

// Stats returns the counters collected so far.
func (l *Loop) Stats() *ui.Stats { return l.stats }

// Paused reports whether automatic stepping is suspended.
func (l *Loop) Paused() bool { return l.paused }

// Frames returns the number of frames rendered.
func (l *Loop) Frames() int { return l.frames }

// Start arms the step timer and the gradient clock at now. The grid's last
// update time becomes now even though no generation has been computed.
func (l *Loop) Start(now time.Time) {
	l.grid.Start(now)
	l.renderer.Start(now)
	l.stats.Start(now)
	l.stats.Record(l.grid.Generation(), l.grid.Population())
}

// Status describes the current loop state.
func (l *Loop) Status() ui.Status {
	return ui.Status{
		Generation: l.grid.Generation(),
		Population: l.grid.Population(),
		Interval:   l.grid.Interval(),
		Paused:     l.paused,
		Gradient:   l.renderer.Mode() == render.ModeGradient,
		Blend:      l.renderer.Blend(),
		Cursor:     l.cursor.Position(),
	}
}

// Frame runs one iteration and reports whether the loop should continue.
func (l *Loop) Frame() bool {
	l.fb.PollAndDispatch()
	if !l.fb.IsRunning() {
		return false
	}
	now := l.clock()
	if !l.paused || l.stepOnce {
		if l.grid.Step(now) {
			l.stepOnce = false
			l.stats.Record(l.grid.Generation(), l.grid.Population())
		}
	}
	pos := l.cursor.Position()
	l.renderer.Paint(l.fb, l.grid, &pos, now)
	l.fb.SetStatus(l.Status().String())
	l.fb.Present()

	l.frames++
	l.stats.Frame()
	if l.progress != nil {
		l.progress(l.frames)
	}
	if l.maxFrames > 0 && l.frames >= l.maxFrames {
		l.fb.Stop()
	}
	return l.fb.IsRunning()
}

// Run starts the loop and blocks until the framebuffer stops or ctx is done.
// Surfaces that own the main loop are driven through their Driver.
func (l *Loop) Run(ctx context.Context) error {
	l.Start(l.clock())
	defer func() { l.stats.Stop(l.clock()) }()

	frame := func() bool {
		if ctx.Err() != nil {
			l.fb.Stop()
			return false
		}
		return l.Frame()
	}
	if d, ok := l.fb.Driver(); ok {
		return d.Drive(frame)
	}
	for {
		begin := l.clock()
		if !frame() {
			return nil
		}
		if l.frameInterval > 0 {
			if rest := l.frameInterval - l.clock().Sub(begin); rest > 0 {
				l.sleep(rest)
			}
		}
	}
}

// reseed restarts the grid from the configured pattern or a random fill and
// re-arms its timer, so the next generation follows one interval later.
func (l *Loop) reseed(seed int64) {
	if err := l.grid.Reset(l.gridCfg, seed); err != nil {
		l.logger.Printf("reseed: %v", err)
		return
	}
	l.grid.Start(l.clock())
	l.stats.Record(l.grid.Generation(), l.grid.Population())
}

func (l *Loop) clear() {
	l.grid.Clear()
	l.stats.Record(l.grid.Generation(), l.grid.Population())
}

func (l *Loop) scaleInterval(factor float64) {
	d := time.Duration(float64(l.grid.Interval()) * factor)
	l.grid.SetInterval(core.Clamp(d, minInterval, maxInterval))
}
