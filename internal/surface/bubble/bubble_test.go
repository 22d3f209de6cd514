package bubble

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"lifefb/internal/framebuffer"
)

func TestKeyMessagesBecomeEvents(t *testing.T) {
	s := New(2, 2)
	m := model{s: s, frame: func() bool { return true }}
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	got := s.PollEvents(nil)
	want := []framebuffer.Event{
		{Kind: framebuffer.KeyDown, Key: framebuffer.KeyEscape},
		{Kind: framebuffer.KeyDown, Key: framebuffer.KeyLetter('G')},
		{Kind: framebuffer.KeyDown, Key: framebuffer.KeyArrowLeft},
		{Kind: framebuffer.Quit},
	}
	if len(got) != len(want) {
		t.Fatalf("events = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d = %v, expected %v", i, got[i], want[i])
		}
	}
	if len(s.PollEvents(nil)) != 0 {
		t.Fatal("pending keys not drained")
	}
}

func TestTickRunsFrameUntilStopped(t *testing.T) {
	s := New(1, 1)
	frames := 0
	m := model{s: s, frame: func() bool {
		frames++
		return frames < 2
	}}
	if _, cmd := m.Update(tickMsg{}); cmd == nil {
		t.Fatal("running frame should schedule another tick")
	}
	_, cmd := m.Update(tickMsg{})
	if cmd == nil {
		t.Fatal("stopped frame should return tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("stopped frame did not quit the program")
	}
}

func TestPresentBuildsRows(t *testing.T) {
	s := New(3, 3)
	s.SetStatus("paused")
	if err := s.Present(make([]framebuffer.Color, 9)); err != nil {
		t.Fatal(err)
	}
	view := s.View()
	if got := strings.Count(view, "▀"); got != 6 {
		t.Fatalf("view has %d half blocks, expected 6", got)
	}
	if !strings.HasSuffix(view, "paused") {
		t.Fatalf("status missing from view: %q", view)
	}
	if len(s.styles) != 1 {
		t.Fatalf("expected one cached style for a black frame, got %d", len(s.styles))
	}
}
