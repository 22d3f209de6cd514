package framebuffer

import (
	"fmt"
	"io"
	"log"
)

// Framebuffer owns the pixel buffer and keyboard dispatch for one surface.
type Framebuffer struct {
	title         string
	width, height int

	surface   Surface
	pixels    []Color
	listeners map[Keycode]func()
	events    []Event

	running bool
	closed  bool
	logger  *log.Logger
}

// Option customises a Framebuffer.
type Option func(*Framebuffer)

// WithLogger routes framebuffer diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(fb *Framebuffer) {
		if l != nil {
			fb.logger = l
		}
	}
}

// WithTitle records the window title.
func WithTitle(title string) Option {
	return func(fb *Framebuffer) { fb.title = title }
}

// Open creates a visible surface with the named backend and wraps it.
// Failures are returned as *SurfaceError.
func Open(backend, title string, width, height int, opts ...Option) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, NewSurfaceError(backend, "open", fmt.Errorf("invalid size %dx%d", width, height))
	}
	s, err := openSurface(backend, title, width, height)
	if err != nil {
		return nil, err
	}
	opts = append([]Option{WithTitle(title)}, opts...)
	return New(s, width, height, opts...), nil
}

// New wraps an already opened surface of width×height pixels.
func New(s Surface, width, height int, opts ...Option) *Framebuffer {
	fb := &Framebuffer{
		width:     width,
		height:    height,
		surface:   s,
		pixels:    make([]Color, width*height),
		listeners: map[Keycode]func(){},
		running:   true,
		logger:    log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(fb)
	}
	return fb
}

// Title returns the window title.
func (fb *Framebuffer) Title() string { return fb.title }

// Width returns the pixel width.
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the pixel height.
func (fb *Framebuffer) Height() int { return fb.height }

// Pixels exposes the backing buffer in row-major order.
func (fb *Framebuffer) Pixels() []Color { return fb.pixels }

// WritePixel stores c at (x, y). Coordinates outside the buffer are a
// programming error and panic.
func (fb *Framebuffer) WritePixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		panic(fmt.Sprintf("framebuffer: pixel (%d,%d) outside %dx%d", x, y, fb.width, fb.height))
	}
	fb.pixels[y*fb.width+x] = c & colorMask
}

// Pixel returns the colour stored at (x, y).
func (fb *Framebuffer) Pixel(x, y int) Color {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		panic(fmt.Sprintf("framebuffer: pixel (%d,%d) outside %dx%d", x, y, fb.width, fb.height))
	}
	return fb.pixels[y*fb.width+x]
}

// Fill sets every pixel to c.
func (fb *Framebuffer) Fill(c Color) {
	c &= colorMask
	for i := range fb.pixels {
		fb.pixels[i] = c
	}
}

// RegisterListener installs fn as the handler for keycode, replacing any
// previous handler. Handlers run synchronously during PollAndDispatch and must
// not block.
func (fb *Framebuffer) RegisterListener(keycode Keycode, fn func()) {
	if fn == nil {
		delete(fb.listeners, keycode)
		return
	}
	fb.listeners[keycode] = fn
}

// ClearListeners removes every handler.
func (fb *Framebuffer) ClearListeners() {
	clear(fb.listeners)
}

// PollAndDispatch drains pending surface events without blocking, invoking
// the listener of every key-down that has one. A quit event stops the
// framebuffer; events after it in the same batch are still dispatched.
func (fb *Framebuffer) PollAndDispatch() {
	if fb.closed {
		return
	}
	fb.events = fb.surface.PollEvents(fb.events[:0])
	for _, ev := range fb.events {
		switch ev.Kind {
		case Quit:
			fb.Stop()
		case KeyDown:
			if fn, ok := fb.listeners[ev.Key]; ok {
				fn()
			}
		}
	}
}

// Present copies the pixel buffer to the visible surface. A failing blit
// stops the framebuffer instead of returning an error.
func (fb *Framebuffer) Present() {
	if fb.closed || !fb.running {
		return
	}
	if err := fb.surface.Present(fb.pixels); err != nil {
		fb.logger.Printf("%v: %v; stopping", ErrPresent, err)
		fb.running = false
	}
}

// SetStatus shows a line of text on surfaces that support it.
func (fb *Framebuffer) SetStatus(text string) {
	if s, ok := fb.surface.(StatusSetter); ok && !fb.closed {
		s.SetStatus(text)
	}
}

// Driver returns the surface's own loop driver, if it has one.
func (fb *Framebuffer) Driver() (Driver, bool) {
	d, ok := fb.surface.(Driver)
	return d, ok
}

// IsRunning reports whether the loop should keep going.
func (fb *Framebuffer) IsRunning() bool { return fb.running }

// Stop requests the loop to end. It is idempotent.
func (fb *Framebuffer) Stop() { fb.running = false }

// Close stops the framebuffer and releases the surface. Only the first call
// reaches the surface.
func (fb *Framebuffer) Close() error {
	fb.running = false
	if fb.closed {
		return nil
	}
	fb.closed = true
	return fb.surface.Close()
}
