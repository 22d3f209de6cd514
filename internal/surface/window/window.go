//go:build ebiten

// Package window opens a desktop window with ebiten. Ebiten owns the main
// loop, so the surface implements framebuffer.Driver: every ebiten tick runs
// one frame of the caller's loop.
package window

import (
	"errors"
	"strings"

	"lifefb/internal/framebuffer"
	"lifefb/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Name is the backend name used with framebuffer.Open.
const Name = "window"

// Surface adapts the framebuffer to the ebiten.Game interface.
type Surface struct {
	width, height int

	img *ebiten.Image
	buf []byte
	hud *ui.HUD

	keys    []ebiten.Key
	pending []framebuffer.Event
	frame   func() bool
}

// Open configures the ebiten window. The window appears when Drive starts.
func Open(title string, width, height int) (framebuffer.Surface, error) {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(60)
	return &Surface{
		width:  width,
		height: height,
		buf:    make([]byte, 4*width*height),
		hud:    ui.NewHUD(),
	}, nil
}

// Drive runs ebiten until frame returns false or the window is closed.
func (s *Surface) Drive(frame func() bool) error {
	s.frame = frame
	if err := ebiten.RunGame(s); err != nil && !errors.Is(err, ebiten.Termination) {
		return framebuffer.NewSurfaceError(Name, "run", err)
	}
	return nil
}

// Update collects input and runs one frame.
func (s *Surface) Update() error {
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		if code, ok := translateKey(k); ok {
			s.pending = append(s.pending, framebuffer.Event{Kind: framebuffer.KeyDown, Key: code})
		}
	}
	if ebiten.IsWindowBeingClosed() {
		s.pending = append(s.pending, framebuffer.Event{Kind: framebuffer.Quit})
	}
	if s.frame == nil || !s.frame() {
		return ebiten.Termination
	}
	return nil
}

func translateKey(k ebiten.Key) (framebuffer.Keycode, bool) {
	switch k {
	case ebiten.KeyEscape:
		return framebuffer.KeyEscape, true
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return framebuffer.KeyEnter, true
	case ebiten.KeySpace:
		return framebuffer.KeySpace, true
	case ebiten.KeyTab:
		return framebuffer.KeyTab, true
	case ebiten.KeyBackspace:
		return framebuffer.KeyBackspace, true
	case ebiten.KeyArrowLeft:
		return framebuffer.KeyArrowLeft, true
	case ebiten.KeyArrowUp:
		return framebuffer.KeyArrowUp, true
	case ebiten.KeyArrowRight:
		return framebuffer.KeyArrowRight, true
	case ebiten.KeyArrowDown:
		return framebuffer.KeyArrowDown, true
	case ebiten.KeyEqual, ebiten.KeyNumpadAdd:
		return framebuffer.KeyPlus, true
	case ebiten.KeyMinus, ebiten.KeyNumpadSubtract:
		return framebuffer.KeyMinus, true
	}
	name := k.String()
	if len(name) == 1 && name[0] >= 'A' && name[0] <= 'Z' {
		return framebuffer.KeyLetter(rune(name[0])), true
	}
	if d, ok := strings.CutPrefix(name, "Digit"); ok && len(d) == 1 {
		return framebuffer.Keycode(d[0]), true
	}
	return 0, false
}

// PollEvents drains input gathered by Update.
func (s *Surface) PollEvents(dst []framebuffer.Event) []framebuffer.Event {
	dst = append(dst, s.pending...)
	s.pending = s.pending[:0]
	return dst
}

// Present uploads the pixels into the window image.
func (s *Surface) Present(pixels []framebuffer.Color) error {
	if s.img == nil {
		s.img = ebiten.NewImage(s.width, s.height)
	}
	fillRGBA(s.buf, pixels)
	s.img.WritePixels(s.buf)
	return nil
}

func fillRGBA(buf []byte, pixels []framebuffer.Color) {
	for i, c := range pixels {
		base := i * 4
		r, g, b := c.RGB()
		buf[base+0] = r
		buf[base+1] = g
		buf[base+2] = b
		buf[base+3] = 0xff
	}
}

// Draw renders the latest frame and the HUD.
func (s *Surface) Draw(screen *ebiten.Image) {
	if s.img != nil {
		screen.DrawImage(s.img, nil)
	}
	s.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (s *Surface) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.width, s.height
}

// SetStatus updates the HUD text.
func (s *Surface) SetStatus(text string) { s.hud.SetText(text) }

// Close releases the window image.
func (s *Surface) Close() error {
	if s.img != nil {
		s.img.Dispose()
		s.img = nil
	}
	return nil
}

func init() {
	framebuffer.Register(Name, Open)
}
