// Package bubble runs the framebuffer inside a bubbletea program. Bubbletea owns
// the main loop, so the surface implements framebuffer.Driver and runs one
// frame per tick message.
package bubble

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lifefb/internal/framebuffer"
	"lifefb/internal/render"
)

// Name is the backend name used with framebuffer.Open.
const Name = "tea"

// DefaultTick is the spacing of frame messages.
const DefaultTick = 16 * time.Millisecond

// Surface renders pixels as lipgloss-styled half blocks.
type Surface struct {
	width, height int
	tick          time.Duration

	pending []framebuffer.Event
	view    string
	status  string

	styles      map[[2]framebuffer.Color]lipgloss.Style
	statusStyle lipgloss.Style
	options     []tea.ProgramOption
}

// Open creates a surface that will take over the terminal when driven.
func Open(_ string, width, height int) (framebuffer.Surface, error) {
	return New(width, height, tea.WithAltScreen()), nil
}

// New returns a surface of width×height pixels. Options are passed to the
// bubbletea program.
func New(width, height int, opts ...tea.ProgramOption) *Surface {
	return &Surface{
		width:       width,
		height:      height,
		tick:        DefaultTick,
		styles:      map[[2]framebuffer.Color]lipgloss.Style{},
		statusStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#a0a0a0")),
		options:     opts,
	}
}

type tickMsg time.Time

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type model struct {
	s     *Surface
	frame func() bool
}

func (m model) Init() tea.Cmd { return tick(m.s.tick) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.s.enqueue(msg)
	case tickMsg:
		if !m.frame() {
			return m, tea.Quit
		}
		return m, tick(m.s.tick)
	}
	return m, nil
}

func (m model) View() string { return m.s.view }

// Drive runs the bubbletea program until frame returns false.
func (s *Surface) Drive(frame func() bool) error {
	p := tea.NewProgram(model{s: s, frame: frame}, s.options...)
	_, err := p.Run()
	return err
}

func (s *Surface) enqueue(msg tea.KeyMsg) {
	if msg.Type == tea.KeyCtrlC {
		s.pending = append(s.pending, framebuffer.Event{Kind: framebuffer.Quit})
		return
	}
	if k, ok := translateKey(msg); ok {
		s.pending = append(s.pending, framebuffer.Event{Kind: framebuffer.KeyDown, Key: k})
	}
}

func translateKey(msg tea.KeyMsg) (framebuffer.Keycode, bool) {
	switch msg.Type {
	case tea.KeyEsc:
		return framebuffer.KeyEscape, true
	case tea.KeyEnter:
		return framebuffer.KeyEnter, true
	case tea.KeySpace:
		return framebuffer.KeySpace, true
	case tea.KeyTab:
		return framebuffer.KeyTab, true
	case tea.KeyBackspace:
		return framebuffer.KeyBackspace, true
	case tea.KeyUp:
		return framebuffer.KeyArrowUp, true
	case tea.KeyDown:
		return framebuffer.KeyArrowDown, true
	case tea.KeyLeft:
		return framebuffer.KeyArrowLeft, true
	case tea.KeyRight:
		return framebuffer.KeyArrowRight, true
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return framebuffer.KeyFromRune(msg.Runes[0])
		}
	}
	return 0, false
}

// PollEvents drains keys received since the previous frame.
func (s *Surface) PollEvents(dst []framebuffer.Event) []framebuffer.Event {
	dst = append(dst, s.pending...)
	s.pending = s.pending[:0]
	return dst
}

// Present rebuilds the view string from the pixels.
func (s *Surface) Present(pixels []framebuffer.Color) error {
	var sb strings.Builder
	w := s.width
	for y := 0; y < s.height; y += 2 {
		for x := 0; x < w; x++ {
			top := pixels[y*w+x]
			bottom := framebuffer.Black
			if y+1 < s.height {
				bottom = pixels[(y+1)*w+x]
			}
			sb.WriteString(s.style(top, bottom).Render("▀"))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(s.statusStyle.Render(s.status))
	s.view = sb.String()
	return nil
}

func (s *Surface) style(fg, bg framebuffer.Color) lipgloss.Style {
	key := [2]framebuffer.Color{fg, bg}
	st, ok := s.styles[key]
	if !ok {
		st = lipgloss.NewStyle().
			Foreground(lipgloss.Color(render.FormatColor(fg))).
			Background(lipgloss.Color(render.FormatColor(bg)))
		s.styles[key] = st
	}
	return st
}

// View returns the last rendered frame.
func (s *Surface) View() string { return s.view }

// SetStatus sets the line rendered under the pixels.
func (s *Surface) SetStatus(text string) { s.status = text }

// Close is a no-op; the program restores the terminal when it exits.
func (s *Surface) Close() error { return nil }

func init() {
	framebuffer.Register(Name, Open)
}
