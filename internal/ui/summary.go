package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// Stats accumulates per-run counters and a bounded population history.
type Stats struct {
	capacity int
	history  []float64

	Frames int
	// Generations is the number of generations computed over the whole run.
	// It keeps counting across reseeds and clears.
	Generations uint64
	Peak        int

	lastGen uint64
	started time.Time
	ended   time.Time
}

// NewStats keeps at most capacity population samples.
func NewStats(capacity int) *Stats {
	if capacity <= 0 {
		capacity = 1
	}
	return &Stats{capacity: capacity}
}

// Start marks the beginning of the run.
func (s *Stats) Start(now time.Time) { s.started = now }

// Stop marks the end of the run.
func (s *Stats) Stop(now time.Time) { s.ended = now }

// Frame counts one rendered frame.
func (s *Stats) Frame() { s.Frames++ }

// Record stores the population at the grid's generation counter. A counter
// lower than the previous one means the grid was reseeded or cleared; the
// run total is kept and counting resumes from the new value.
func (s *Stats) Record(generation uint64, population int) {
	if generation > s.lastGen {
		s.Generations += generation - s.lastGen
	}
	s.lastGen = generation
	if population > s.Peak {
		s.Peak = population
	}
	if len(s.history) == s.capacity {
		copy(s.history, s.history[1:])
		s.history = s.history[:len(s.history)-1]
	}
	s.history = append(s.history, float64(population))
}

// History returns the retained population samples, oldest first.
func (s *Stats) History() []float64 { return s.history }

// Elapsed returns the run duration.
func (s *Stats) Elapsed() time.Duration {
	if s.started.IsZero() || s.ended.Before(s.started) {
		return 0
	}
	return s.ended.Sub(s.started)
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff00ff"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Summary renders the end-of-run report with a population graph of at most
// width columns.
func (s *Stats) Summary(width int) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("lifefb run"))
	sb.WriteByte('\n')
	row := func(label, value string) {
		sb.WriteString(labelStyle.Render(fmt.Sprintf("%-12s", label)))
		sb.WriteString(value)
		sb.WriteByte('\n')
	}
	elapsed := s.Elapsed()
	row("frames", fmt.Sprintf("%d", s.Frames))
	row("generations", fmt.Sprintf("%d", s.Generations))
	row("peak", fmt.Sprintf("%d", s.Peak))
	row("elapsed", elapsed.Round(time.Millisecond).String())
	if elapsed > 0 {
		row("fps", fmt.Sprintf("%.1f", float64(s.Frames)/elapsed.Seconds()))
	}
	if len(s.history) > 1 {
		sb.WriteByte('\n')
		sb.WriteString(asciigraph.Plot(s.history,
			asciigraph.Height(8),
			asciigraph.Width(max(width-12, 10)),
			asciigraph.Precision(0),
			asciigraph.Caption("population"),
		))
	}
	return boxStyle.Render(strings.TrimRight(sb.String(), "\n"))
}
