package core

import "fmt"

// BoolGrid stores a 2D grid of boolean cells in row-major order.
type BoolGrid struct {
	W, H int
	data []bool
}

// NewBoolGrid allocates a grid with the given dimensions.
func NewBoolGrid(w, h int) *BoolGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	size := Size{W: w, H: h}
	return &BoolGrid{W: w, H: h, data: make([]bool, size.Area())}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *BoolGrid) Cells() []bool { return g.data }

// Size returns the grid dimensions.
func (g *BoolGrid) Size() Size { return Size{W: g.W, H: g.H} }

// Index returns the linear slice index for coordinates (x, y). It panics when
// the coordinates fall outside the grid.
func (g *BoolGrid) Index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", x, y, g.W, g.H))
	}
	return y*g.W + x
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *BoolGrid) InBounds(x, y int) bool {
	return g.Size().Contains(x, y)
}

// Get returns the value at (x, y).
func (g *BoolGrid) Get(x, y int) bool { return g.data[g.Index(x, y)] }

// Set stores v at (x, y).
func (g *BoolGrid) Set(x, y int, v bool) { g.data[g.Index(x, y)] = v }

// Count returns the number of true cells.
func (g *BoolGrid) Count() int {
	n := 0
	for _, v := range g.data {
		if v {
			n++
		}
	}
	return n
}

// Clear fills the grid with false.
func (g *BoolGrid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}
