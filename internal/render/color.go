package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"lifefb/internal/framebuffer"
)

// HSVToRGB converts a hue in degrees (any range, taken modulo 360) with
// saturation and value in [0, 1] to 8-bit channels using the six-sector
// formula.
func HSVToRGB(h, s, v float64) (r, g, b uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return colorful.Hsv(h, clamp01(s), clamp01(v)).RGB255()
}

// Lerp blends linearly from a to b by t in [0, 1], channel by channel.
func Lerp(a, b framebuffer.Color, t float64) framebuffer.Color {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	out := toColorful(a).BlendRgb(toColorful(b), t).Clamped()
	return framebuffer.RGB(out.RGB255())
}

// ParseColor reads "#rrggbb", "rrggbb" or the short "#rgb" form.
func ParseColor(s string) (framebuffer.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("render: colour %q: %w", s, err)
	}
	return framebuffer.RGB(c.RGB255()), nil
}

// FormatColor renders c as "#rrggbb".
func FormatColor(c framebuffer.Color) string {
	return toColorful(c).Hex()
}

func toColorful(c framebuffer.Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
