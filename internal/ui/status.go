package ui

import (
	"fmt"
	"strings"
	"time"

	"lifefb/internal/core"
)

// Status is a snapshot of the loop state shown while running.
type Status struct {
	Generation uint64
	Population int
	Interval   time.Duration
	Paused     bool
	Gradient   bool
	Blend      bool
	Cursor     core.Cell
}

func (s Status) String() string {
	parts := []string{
		fmt.Sprintf("gen %d", s.Generation),
		fmt.Sprintf("pop %d", s.Population),
		fmt.Sprintf("every %s", s.Interval),
	}
	if s.Gradient {
		parts = append(parts, "gradient")
	}
	if s.Blend {
		parts = append(parts, "blend")
	}
	parts = append(parts, fmt.Sprintf("@%d,%d", s.Cursor.X, s.Cursor.Y))
	if s.Paused {
		parts = append(parts, "[paused]")
	}
	return strings.Join(parts, "  ")
}
