package life

import "lifefb/internal/core"

// Direction selects a cursor movement.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Cursor marks the cell edited by interactive toggles. Its position is
// always inside the board it was created for.
type Cursor struct {
	x, y int
	size core.Size
}

// NewCursor returns a cursor centred on a board of the given size.
func NewCursor(size core.Size) *Cursor {
	c := &Cursor{size: size}
	c.MoveTo(size.W/2, size.H/2)
	return c
}

// Position returns the current cell.
func (c *Cursor) Position() core.Cell { return core.Cell{X: c.x, Y: c.y} }

// MoveTo places the cursor at (x, y), clamped to the board.
func (c *Cursor) MoveTo(x, y int) {
	c.x = core.Clamp(x, 0, c.size.W-1)
	c.y = core.Clamp(y, 0, c.size.H-1)
}

// Move shifts the cursor by one cell; moves past an edge are ignored.
func (c *Cursor) Move(d Direction) {
	switch d {
	case Up:
		c.MoveTo(c.x, c.y-1)
	case Down:
		c.MoveTo(c.x, c.y+1)
	case Left:
		c.MoveTo(c.x-1, c.y)
	case Right:
		c.MoveTo(c.x+1, c.y)
	}
}

// ToggleUnder flips the cell under the cursor on g.
func (c *Cursor) ToggleUnder(g *Grid) { g.Toggle(c.x, c.y) }
