//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding = 4
	hudHeight  = 18
)

// HUD renders a one-line status band along the bottom of the window.
type HUD struct {
	text  string
	band  *ebiten.Image
	width int
}

// NewHUD constructs an empty HUD.
func NewHUD() *HUD {
	return &HUD{}
}

// SetText replaces the status line.
func (h *HUD) SetText(s string) {
	if h == nil {
		return
	}
	h.text = s
}

// Draw paints the band and text anchored to the bottom edge of screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.text == "" {
		return
	}
	w := screen.Bounds().Dx()
	sh := screen.Bounds().Dy()
	if w <= 0 || sh < hudHeight {
		return
	}
	if h.band == nil || h.width != w {
		h.band = ebiten.NewImage(w, hudHeight)
		h.band.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
		h.width = w
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(sh-hudHeight))
	screen.DrawImage(h.band, op)

	face := basicfont.Face7x13
	text.Draw(screen, h.text, face, hudPadding, sh-hudPadding-1, color.RGBA{R: 220, G: 220, B: 230, A: 255})
}
