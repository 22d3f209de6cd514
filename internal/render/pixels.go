package render

import "lifefb/internal/framebuffer"

// Target is the pixel sink a renderer paints into.
type Target interface {
	Width() int
	Height() int
	WritePixel(x, y int, c framebuffer.Color)
}

// RenderTile fills the tileSize×tileSize block of cell (x, y) with c. The
// block must lie inside the target.
func RenderTile(dst Target, c framebuffer.Color, x, y, tileSize int) {
	px, py := x*tileSize, y*tileSize
	for j := 0; j < tileSize; j++ {
		for i := 0; i < tileSize; i++ {
			dst.WritePixel(px+i, py+j, c)
		}
	}
}

// outlineTile draws the one-pixel border of cell (x, y).
func outlineTile(dst Target, c framebuffer.Color, x, y, tileSize int) {
	if tileSize < 3 {
		RenderTile(dst, c, x, y, tileSize)
		return
	}
	px, py := x*tileSize, y*tileSize
	last := tileSize - 1
	for i := 0; i < tileSize; i++ {
		dst.WritePixel(px+i, py, c)
		dst.WritePixel(px+i, py+last, c)
		dst.WritePixel(px, py+i, c)
		dst.WritePixel(px+last, py+i, c)
	}
}

// fillRect fills a w×h rectangle at (x, y), clipped to the target.
func fillRect(dst Target, c framebuffer.Color, x, y, w, h int) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, dst.Width()), min(y+h, dst.Height())
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			dst.WritePixel(px, py, c)
		}
	}
}

// Fractal draws a filled square of side size centred on (cx, cy) and then
// recurses steps-1 times into half-size squares centred on its corners.
// Anything outside the target is clipped.
func Fractal(dst Target, steps, cx, cy, size int, c framebuffer.Color) {
	if steps <= 0 || size <= 0 {
		return
	}
	half := size / 2
	fillRect(dst, c, cx-half, cy-half, size, size)
	for _, d := range [4][2]int{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
		Fractal(dst, steps-1, cx+d[0]*half, cy+d[1]*half, half, c)
	}
}
