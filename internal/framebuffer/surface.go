package framebuffer

import (
	"errors"
	"fmt"
	"sort"
)

// EventKind distinguishes surface events.
type EventKind uint8

const (
	// KeyDown reports a key press carrying a virtual-key code.
	KeyDown EventKind = iota + 1
	// Quit reports a close request from the user or the window system.
	Quit
)

// Event is a single input event drained from a surface.
type Event struct {
	Kind EventKind
	Key  Keycode
}

// Surface is the native window or terminal a Framebuffer draws into.
type Surface interface {
	// PollEvents appends every event that arrived since the previous call to
	// dst and returns it. It never blocks.
	PollEvents(dst []Event) []Event
	// Present copies the row-major pixel buffer to the visible output.
	Present(pixels []Color) error
	// Close releases native resources.
	Close() error
}

// Driver is implemented by surfaces whose library insists on owning the main
// loop. Drive calls frame once per library tick until it returns false.
type Driver interface {
	Drive(frame func() bool) error
}

// StatusSetter is implemented by surfaces that can show a line of text next
// to the pixels.
type StatusSetter interface {
	SetStatus(text string)
}

// Opener creates a visible surface of exactly width×height pixels.
type Opener func(title string, width, height int) (Surface, error)

var backends = map[string]Opener{}

// Register adds a backend opener under the provided name.
func Register(name string, open Opener) {
	if name == "" || open == nil {
		return
	}
	backends[name] = open
}

// Backends lists registered backend names in alphabetical order.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func openSurface(backend, title string, width, height int) (Surface, error) {
	open, ok := backends[backend]
	if !ok {
		return nil, NewSurfaceError(backend, "open", fmt.Errorf("%w %q", ErrUnknownBackend, backend))
	}
	s, err := open(title, width, height)
	if err != nil {
		var se *SurfaceError
		if errors.As(err, &se) {
			return nil, se
		}
		return nil, NewSurfaceError(backend, "open", err)
	}
	return s, nil
}
