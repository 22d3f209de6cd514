// Package term draws the framebuffer into a terminal with tcell. Every
// character cell shows two vertically stacked pixels using an upper half
// block: the foreground colour is the upper pixel, the background the lower.
package term

import (
	"errors"
	"fmt"

	"lifefb/internal/framebuffer"

	"github.com/gdamore/tcell/v2"
)

// Name is the backend name used with framebuffer.Open.
const Name = "term"

const halfBlock = '▀'

// ErrTooSmall reports a terminal that cannot show the requested pixels and the
// status row.
var ErrTooSmall = errors.New("terminal too small")

// Surface is a tcell-backed framebuffer surface.
type Surface struct {
	screen        tcell.Screen
	width, height int
	status        string
}

// Open creates a surface on the controlling terminal.
func Open(title string, width, height int) (framebuffer.Surface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, framebuffer.NewSurfaceError(Name, "new screen", err)
	}
	return newSurface(screen, width, height)
}

func newSurface(screen tcell.Screen, width, height int) (*Surface, error) {
	if err := screen.Init(); err != nil {
		return nil, framebuffer.NewSurfaceError(Name, "init", err)
	}
	s := &Surface{screen: screen, width: width, height: height}
	if cols, rows := screen.Size(); width > cols || s.Rows()+1 > rows {
		screen.Fini()
		return nil, framebuffer.NewSurfaceError(Name, "open", fmt.Errorf(
			"%w: %dx%d pixels need %d columns and %d rows, terminal has %dx%d; lower --tile, --width or --height",
			ErrTooSmall, width, height, width, s.Rows()+1, cols, rows))
	}
	screen.HideCursor()
	screen.Clear()
	return s, nil
}

// Rows returns the number of terminal rows used for pixels.
func (s *Surface) Rows() int { return (s.height + 1) / 2 }

// PollEvents drains tcell's queue without blocking.
func (s *Surface) PollEvents(dst []framebuffer.Event) []framebuffer.Event {
	for s.screen.HasPendingEvent() {
		switch ev := s.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				dst = append(dst, framebuffer.Event{Kind: framebuffer.Quit})
				continue
			}
			if k, ok := translateKey(ev); ok {
				dst = append(dst, framebuffer.Event{Kind: framebuffer.KeyDown, Key: k})
			}
		case *tcell.EventResize:
			s.screen.Sync()
		case nil:
			// Screen finalised underneath us.
			dst = append(dst, framebuffer.Event{Kind: framebuffer.Quit})
			return dst
		}
	}
	return dst
}

func translateKey(ev *tcell.EventKey) (framebuffer.Keycode, bool) {
	switch ev.Key() {
	case tcell.KeyEscape:
		return framebuffer.KeyEscape, true
	case tcell.KeyEnter:
		return framebuffer.KeyEnter, true
	case tcell.KeyTab:
		return framebuffer.KeyTab, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return framebuffer.KeyBackspace, true
	case tcell.KeyLeft:
		return framebuffer.KeyArrowLeft, true
	case tcell.KeyUp:
		return framebuffer.KeyArrowUp, true
	case tcell.KeyRight:
		return framebuffer.KeyArrowRight, true
	case tcell.KeyDown:
		return framebuffer.KeyArrowDown, true
	case tcell.KeyRune:
		return framebuffer.KeyFromRune(ev.Rune())
	}
	return 0, false
}

// Present redraws the pixel rows and the status line, then flushes.
func (s *Surface) Present(pixels []framebuffer.Color) error {
	w := s.width
	for row := 0; row < s.Rows(); row++ {
		top := pixels[2*row*w : 2*row*w+w]
		var bottom []framebuffer.Color
		if 2*row+1 < s.height {
			bottom = pixels[(2*row+1)*w : (2*row+1)*w+w]
		}
		for x := 0; x < w; x++ {
			bg := framebuffer.Black
			if bottom != nil {
				bg = bottom[x]
			}
			style := tcell.StyleDefault.Foreground(toTcell(top[x])).Background(toTcell(bg))
			s.screen.SetContent(x, row, halfBlock, nil, style)
		}
	}
	s.drawStatus()
	s.screen.Show()
	return nil
}

func (s *Surface) drawStatus() {
	row := s.Rows()
	cols, rows := s.screen.Size()
	if row >= rows {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)
	x := 0
	for _, r := range s.status {
		if x >= cols {
			break
		}
		s.screen.SetContent(x, row, r, nil, style)
		x++
	}
	for ; x < cols; x++ {
		s.screen.SetContent(x, row, ' ', nil, style)
	}
}

func toTcell(c framebuffer.Color) tcell.Color {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// SetStatus sets the text shown below the pixels.
func (s *Surface) SetStatus(text string) { s.status = text }

// Close restores the terminal.
func (s *Surface) Close() error {
	s.screen.Fini()
	return nil
}

func init() {
	framebuffer.Register(Name, Open)
}
