//go:build sdl

// Package sdl presents the framebuffer through an SDL2 window surface.
package sdl

import (
	"encoding/binary"
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"lifefb/internal/framebuffer"
)

// Name is the backend name used with framebuffer.Open.
const Name = "sdl"

// Surface blits pixels into the window's own surface. SDL must be driven from
// the thread that initialised it.
type Surface struct {
	title  string
	width  int
	height int

	window  *sdl.Window
	surface *sdl.Surface
}

func init() {
	runtime.LockOSThread()
	framebuffer.Register(Name, Open)
}

// Open initialises SDL video and creates a window of width×height pixels.
func Open(title string, width, height int) (framebuffer.Surface, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, err
	}
	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, err
	}
	surface, err := window.GetSurface()
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, err
	}
	if bpp := surface.Format.BytesPerPixel; bpp != 4 {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("unsupported window format: %d bytes per pixel", bpp)
	}
	return &Surface{title: title, width: width, height: height, window: window, surface: surface}, nil
}

// PollEvents drains SDL's queue without blocking.
func (s *Surface) PollEvents(dst []framebuffer.Event) []framebuffer.Event {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch e := ev.(type) {
		case *sdl.QuitEvent:
			dst = append(dst, framebuffer.Event{Kind: framebuffer.Quit})
		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN {
				continue
			}
			if k, ok := translateKey(e.Keysym.Sym); ok {
				dst = append(dst, framebuffer.Event{Kind: framebuffer.KeyDown, Key: k})
			}
		}
	}
	return dst
}

func translateKey(k sdl.Keycode) (framebuffer.Keycode, bool) {
	switch {
	case k >= sdl.K_a && k <= sdl.K_z:
		return framebuffer.KeyLetter(rune(k)), true
	case k >= sdl.K_0 && k <= sdl.K_9:
		return framebuffer.KeyDigit(int(k - sdl.K_0)), true
	}
	switch k {
	case sdl.K_ESCAPE:
		return framebuffer.KeyEscape, true
	case sdl.K_RETURN, sdl.K_KP_ENTER:
		return framebuffer.KeyEnter, true
	case sdl.K_SPACE:
		return framebuffer.KeySpace, true
	case sdl.K_LEFT:
		return framebuffer.KeyArrowLeft, true
	case sdl.K_RIGHT:
		return framebuffer.KeyArrowRight, true
	case sdl.K_UP:
		return framebuffer.KeyArrowUp, true
	case sdl.K_DOWN:
		return framebuffer.KeyArrowDown, true
	case sdl.K_PLUS, sdl.K_EQUALS, sdl.K_KP_PLUS:
		return framebuffer.KeyPlus, true
	case sdl.K_MINUS, sdl.K_KP_MINUS:
		return framebuffer.KeyMinus, true
	case sdl.K_BACKSPACE:
		return framebuffer.KeyBackspace, true
	case sdl.K_TAB:
		return framebuffer.KeyTab, true
	}
	return 0, false
}

// Present copies pixels into the window surface and shows it. A failed update
// is reported so the framebuffer stops.
func (s *Surface) Present(pixels []framebuffer.Color) error {
	if s.surface.MustLock() {
		if err := s.surface.Lock(); err != nil {
			return err
		}
	}
	dst := s.surface.Pixels()
	pitch := int(s.surface.Pitch)
	w := min(s.width, int(s.surface.W))
	h := min(s.height, int(s.surface.H))
	for y := 0; y < h; y++ {
		row := dst[y*pitch:]
		src := pixels[y*s.width : y*s.width+w]
		for x, c := range src {
			r, g, b := c.RGB()
			binary.NativeEndian.PutUint32(row[x*4:], sdl.MapRGB(s.surface.Format, r, g, b))
		}
	}
	if s.surface.MustLock() {
		s.surface.Unlock()
	}
	return s.window.UpdateSurface()
}

// SetStatus shows the status in the window title.
func (s *Surface) SetStatus(text string) {
	if text == "" {
		s.window.SetTitle(s.title)
		return
	}
	s.window.SetTitle(s.title + " | " + text)
}

// Close destroys the window and shuts SDL down.
func (s *Surface) Close() error {
	err := s.window.Destroy()
	sdl.Quit()
	return err
}
