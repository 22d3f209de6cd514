package framebuffer

// Color is a packed 0x00RRGGBB pixel. The top byte is ignored.
type Color uint32

// RGB packs the channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB unpacks the channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

const colorMask = 0x00ffffff

// Common colours.
const (
	Black Color = 0x000000
	White Color = 0xffffff
)
