package physics

import "image/color"

// Color is an RGB colour with channels in [0, 1].
type Color struct {
	R, G, B float64
}

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// RGBA implements color.Color so renderers can take a body colour directly.
func (c Color) RGBA() (r, g, b, a uint32) {
	return channel(c.R), channel(c.G), channel(c.B), 0xffff
}

func channel(f float64) uint32 {
	return uint32(Clamp(f, 0, 1)*0xffff + 0.5)
}

var _ color.Color = Color{}
