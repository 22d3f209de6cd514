package life

import (
	"time"

	"lifefb/internal/core"
)

// Grid implements Conway's Game of Life on a bounded (non-wrapping) board.
// Two buffers alternate roles: one holds the current generation, the other
// receives the next one during Step and afterwards keeps the previous
// generation for cross-frame interpolation.
type Grid struct {
	w, h int
	buf  [2]*core.BoolGrid
	cur  int

	gate       *core.Gate
	generation uint64
}

// New returns an empty grid with the provided dimensions and step interval.
func New(w, h int, interval time.Duration) *Grid {
	a := core.NewBoolGrid(w, h)
	b := core.NewBoolGrid(a.W, a.H)
	return &Grid{
		w:    a.W,
		h:    a.H,
		buf:  [2]*core.BoolGrid{a, b},
		gate: core.NewGate(interval),
	}
}

// NewWithConfig builds a grid from cfg and seeds it, either from the named
// pattern or randomly with cfg.Density.
func NewWithConfig(cfg Config) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := New(cfg.Width, cfg.Height, cfg.Interval)
	if err := g.Reset(cfg, cfg.Seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return g.buf[g.cur].Size() }

// Cells exposes the current generation in row-major order.
func (g *Grid) Cells() []bool { return g.buf[g.cur].Cells() }

// PreviousCells exposes the buffer not currently authoritative.
func (g *Grid) PreviousCells() []bool { return g.buf[1-g.cur].Cells() }

// Alive reports the state of (x, y) in the current generation.
func (g *Grid) Alive(x, y int) bool { return g.buf[g.cur].Get(x, y) }

// Previous reports the state of (x, y) in the generation before the last step.
func (g *Grid) Previous(x, y int) bool { return g.buf[1-g.cur].Get(x, y) }

// Set forces the state of (x, y) in the current generation.
func (g *Grid) Set(x, y int, alive bool) { g.buf[g.cur].Set(x, y, alive) }

// Toggle flips (x, y) in the current generation. The step timer is untouched.
func (g *Grid) Toggle(x, y int) {
	cells := g.buf[g.cur]
	i := cells.Index(x, y)
	cells.Cells()[i] = !cells.Cells()[i]
}

// Clear kills every cell in both buffers and rewinds the generation counter.
func (g *Grid) Clear() {
	g.buf[0].Clear()
	g.buf[1].Clear()
	g.generation = 0
}

// Seed overwrites the current generation: each cell is alive with independent
// probability p.
func (g *Grid) Seed(rng *core.RNG, p float64) {
	rng.FillChance(g.Cells(), p)
	g.settle()
}

// Generate seeds the grid from a fresh RNG with the given seed.
func (g *Grid) Generate(seed int64, p float64) {
	g.Seed(core.NewRNG(seed), p)
}

// Load clears the board and places the pattern with its top-left corner at
// (ox, oy). Cells falling outside the board are dropped.
func (g *Grid) Load(p Pattern, ox, oy int) {
	cur := g.buf[g.cur]
	cur.Clear()
	for _, c := range p.Cells {
		x, y := ox+c.X, oy+c.Y
		if cur.InBounds(x, y) {
			cur.Set(x, y, true)
		}
	}
	g.settle()
}

// LoadCentered places the pattern in the middle of the board.
func (g *Grid) LoadCentered(p Pattern) {
	g.Load(p, (g.w-p.Size.W)/2, (g.h-p.Size.H)/2)
}

// Reset reseeds according to cfg: a named pattern when set, otherwise random
// cells with cfg.Density.
func (g *Grid) Reset(cfg Config, seed int64) error {
	if cfg.Pattern == "" {
		g.Generate(seed, cfg.Density)
		return nil
	}
	p, err := Lookup(cfg.Pattern)
	if err != nil {
		return err
	}
	g.LoadCentered(p)
	return nil
}

// settle makes both buffers agree after an out-of-band rewrite so that the
// interpolated view does not fade from stale cells.
func (g *Grid) settle() {
	copy(g.PreviousCells(), g.Cells())
	g.generation = 0
}

// NeighborCount returns the number of live cells among the eight neighbours
// of (x, y). Positions beyond the edges are not counted.
func (g *Grid) NeighborCount(x, y int) int {
	cur := g.buf[g.cur]
	cur.Index(x, y)
	return neighbors(cur.Cells(), g.w, g.h, x, y)
}

func neighbors(cells []bool, w, h, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= h {
			continue
		}
		row := ny * w
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= w {
				continue
			}
			if cells[row+nx] {
				n++
			}
		}
	}
	return n
}

// Step advances the simulation by one generation if the step interval has
// elapsed since the previous step. It reports whether a generation was
// computed; calls inside the interval leave the board untouched.
func (g *Grid) Step(now time.Time) bool {
	if !g.gate.Ready(now) {
		return false
	}
	w, h := g.w, g.h
	cur := g.buf[g.cur].Cells()
	nxt := g.buf[1-g.cur].Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			n := neighbors(cur, w, h, x, y)
			nxt[idx] = n == 3 || (cur[idx] && n == 2)
		}
	}
	g.cur = 1 - g.cur
	g.gate.Mark(now)
	g.generation++
	return true
}

// Start arms the step timer so that the first generation is computed one
// interval after now rather than immediately. It records now as the last
// update time although no step was applied; LastUpdate and Elapsed report
// the arming time until the first Step succeeds.
func (g *Grid) Start(now time.Time) { g.gate.Mark(now) }

// Interval returns the minimum time between generations.
func (g *Grid) Interval() time.Duration { return g.gate.Interval() }

// SetInterval changes the minimum time between generations.
func (g *Grid) SetInterval(d time.Duration) { g.gate.SetInterval(d) }

// LastUpdate returns when the last generation was computed.
func (g *Grid) LastUpdate() time.Time { return g.gate.Last() }

// Elapsed returns the time since the last generation.
func (g *Grid) Elapsed(now time.Time) time.Duration { return g.gate.Elapsed(now) }

// BlendFactor returns min(1, elapsed/interval), the weight of the current
// generation when interpolating against the previous one.
func (g *Grid) BlendFactor(now time.Time) float64 { return g.gate.Progress(now) }

// Generation returns the number of steps taken since the last reseed.
func (g *Grid) Generation() uint64 { return g.generation }

// Population returns the number of live cells in the current generation.
func (g *Grid) Population() int { return g.buf[g.cur].Count() }
