package render

import (
	"errors"
	"fmt"
	"time"

	"lifefb/internal/core"
	"lifefb/internal/framebuffer"
)

// Mode selects how live cells are coloured.
type Mode string

const (
	// ModeFlat paints every live cell with the same colour.
	ModeFlat Mode = "flat"
	// ModeGradient paints live cells with a hue that depends on position and
	// rotates over time.
	ModeGradient Mode = "gradient"
)

// ErrInvalidConfig reports unusable render settings.
var ErrInvalidConfig = errors.New("render: invalid configuration")

// Config holds the render settings.
type Config struct {
	TileSize   int     `yaml:"tile_size"`
	Mode       Mode    `yaml:"mode"`
	Background string  `yaml:"background"`
	Alive      string  `yaml:"alive"`
	Cursor     string  `yaml:"cursor"`
	ShiftRate  float64 `yaml:"shift_rate"`
	Blend      bool    `yaml:"blend"`
	ShowCursor bool    `yaml:"show_cursor"`
}

// DefaultConfig returns the standard render settings.
func DefaultConfig() Config {
	return Config{
		TileSize:   5,
		Mode:       ModeGradient,
		Background: "#000000",
		Alive:      "#ffffff",
		Cursor:     "#ff4040",
		ShiftRate:  30,
		ShowCursor: true,
	}
}

// Board is the view of the simulation a Renderer needs.
type Board interface {
	Size() core.Size
	Cells() []bool
	PreviousCells() []bool
	BlendFactor(now time.Time) float64
}

// Renderer maps cell state to colours and paints tiles.
type Renderer struct {
	tile  int
	mode  Mode
	size  core.Size
	shift float64
	blend bool

	showCursor bool

	background framebuffer.Color
	alive      framebuffer.Color
	cursor     framebuffer.Color

	epoch time.Time
}

// New constructs a Renderer for a board of the given size.
func New(cfg Config, size core.Size) (*Renderer, error) {
	if cfg.TileSize <= 0 {
		return nil, fmt.Errorf("%w: tile size %d", ErrInvalidConfig, cfg.TileSize)
	}
	switch cfg.Mode {
	case ModeFlat, ModeGradient:
	case "":
		cfg.Mode = ModeFlat
	default:
		return nil, fmt.Errorf("%w: mode %q", ErrInvalidConfig, cfg.Mode)
	}
	r := &Renderer{
		tile:       cfg.TileSize,
		mode:       cfg.Mode,
		size:       size,
		shift:      cfg.ShiftRate,
		blend:      cfg.Blend,
		showCursor: cfg.ShowCursor,
		background: framebuffer.Black,
		alive:      framebuffer.White,
		cursor:     framebuffer.RGB(0xff, 0x40, 0x40),
	}
	for _, c := range []struct {
		dst *framebuffer.Color
		src string
	}{{&r.background, cfg.Background}, {&r.alive, cfg.Alive}, {&r.cursor, cfg.Cursor}} {
		if c.src == "" {
			continue
		}
		v, err := ParseColor(c.src)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		*c.dst = v
	}
	return r, nil
}

// TileSize returns the side of one cell in pixels.
func (r *Renderer) TileSize() int { return r.tile }

// Mode returns the active colouring mode.
func (r *Renderer) Mode() Mode { return r.mode }

// Blend reports whether cross-frame interpolation is on.
func (r *Renderer) Blend() bool { return r.blend }

// ToggleGradient switches between flat and gradient colouring.
func (r *Renderer) ToggleGradient() {
	if r.mode == ModeGradient {
		r.mode = ModeFlat
		return
	}
	r.mode = ModeGradient
}

// ToggleBlend switches cross-frame interpolation on or off.
func (r *Renderer) ToggleBlend() { r.blend = !r.blend }

// Start sets the instant from which gradient time is measured.
func (r *Renderer) Start(now time.Time) { r.epoch = now }

// ColorFor returns the colour of cell (x, y) at time t since Start.
func (r *Renderer) ColorFor(alive bool, x, y int, t time.Duration) framebuffer.Color {
	if !alive {
		return r.background
	}
	if r.mode != ModeGradient {
		return r.alive
	}
	nx := float64(x) / float64(max(r.size.W, 1))
	ny := float64(y) / float64(max(r.size.H, 1))
	hue := (nx+ny)*180 + t.Seconds()*r.shift
	return framebuffer.RGB(HSVToRGB(hue, 1, 1))
}

// Paint renders every cell of b into dst, followed by the cursor outline
// when cursor is non-nil and cursors are enabled. Board state is only read.
func (r *Renderer) Paint(dst Target, b Board, cursor *core.Cell, now time.Time) {
	size := b.Size()
	cur := b.Cells()
	prev := b.PreviousCells()
	var t time.Duration
	if !r.epoch.IsZero() {
		t = now.Sub(r.epoch)
	}
	factor := 1.0
	if r.blend {
		factor = b.BlendFactor(now)
	}
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			i := y*size.W + x
			c := r.ColorFor(cur[i], x, y, t)
			if factor < 1 && prev[i] != cur[i] {
				c = Lerp(r.ColorFor(prev[i], x, y, t), c, factor)
			}
			RenderTile(dst, c, x, y, r.tile)
		}
	}
	if cursor != nil && r.showCursor {
		outlineTile(dst, r.cursor, cursor.X, cursor.Y, r.tile)
	}
}
