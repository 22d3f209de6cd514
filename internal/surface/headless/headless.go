// Package headless provides an in-memory surface that records presented
// frames and replays scripted input.
package headless

import (
	"errors"
	"slices"

	"lifefb/internal/framebuffer"
)

// Name is the backend name used with framebuffer.Open.
const Name = "headless"

// ErrInjected is returned by Present once a configured failure triggers.
var ErrInjected = errors.New("headless: injected present failure")

// Surface is an invisible framebuffer surface.
type Surface struct {
	width, height int

	queue  []framebuffer.Event
	frames int
	last   []framebuffer.Color
	status string
	closed int

	failAfter int
}

// New returns a surface of width×height pixels.
func New(width, height int) *Surface {
	return &Surface{width: width, height: height, failAfter: -1}
}

// Press queues key-down events for the next poll.
func (s *Surface) Press(keys ...framebuffer.Keycode) {
	for _, k := range keys {
		s.queue = append(s.queue, framebuffer.Event{Kind: framebuffer.KeyDown, Key: k})
	}
}

// RequestQuit queues a close request.
func (s *Surface) RequestQuit() {
	s.queue = append(s.queue, framebuffer.Event{Kind: framebuffer.Quit})
}

// FailPresentAfter makes every present after the first n fail. A negative n
// disables failures.
func (s *Surface) FailPresentAfter(n int) { s.failAfter = n }

// PollEvents drains the queued events.
func (s *Surface) PollEvents(dst []framebuffer.Event) []framebuffer.Event {
	dst = append(dst, s.queue...)
	s.queue = s.queue[:0]
	return dst
}

// Present records a copy of the frame.
func (s *Surface) Present(pixels []framebuffer.Color) error {
	if s.failAfter >= 0 && s.frames >= s.failAfter {
		return ErrInjected
	}
	s.frames++
	s.last = append(s.last[:0], pixels...)
	return nil
}

// SetStatus records the status line.
func (s *Surface) SetStatus(text string) { s.status = text }

// Close counts releases.
func (s *Surface) Close() error {
	s.closed++
	return nil
}

// Frames returns how many frames were presented successfully.
func (s *Surface) Frames() int { return s.frames }

// LastFrame returns a copy of the most recent presented frame.
func (s *Surface) LastFrame() []framebuffer.Color { return slices.Clone(s.last) }

// Status returns the last status line.
func (s *Surface) Status() string { return s.status }

// Closed returns how many times Close was called.
func (s *Surface) Closed() int { return s.closed }

// Size returns the surface dimensions.
func (s *Surface) Size() (int, int) { return s.width, s.height }

func init() {
	framebuffer.Register(Name, func(_ string, width, height int) (framebuffer.Surface, error) {
		return New(width, height), nil
	})
}
