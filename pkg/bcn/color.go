package bcn

import (
	"fmt"
	"image/color"
)

// Color is a decoded pixel with float32 components. LDR formats produce
// values in [0,1]; BC6H produces half-float magnitudes, which may exceed 1
// and, in signed mode, be negative. Formats without an alpha channel report
// A=1, except BC4/BC5 which leave unused channels at 0.
type Color struct {
	R, G, B, A float32
}

// NRGBA converts the color to 8-bit non-premultiplied RGBA, clamping each
// component to [0,1].
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// NRGBA64 converts the color to 16-bit non-premultiplied RGBA, clamping
// each component to [0,1]. Useful for HDR content where 8 bits would band.
func (c Color) NRGBA64() color.NRGBA64 {
	return color.NRGBA64{
		R: uint16(clamp01(c.R)*65535 + 0.5),
		G: uint16(clamp01(c.G)*65535 + 0.5),
		B: uint16(clamp01(c.B)*65535 + 0.5),
		A: uint16(clamp01(c.A)*65535 + 0.5),
	}
}

// String returns a human-readable color representation.
func (c Color) String() string {
	return fmt.Sprintf("RGBA(%.4f, %.4f, %.4f, %.4f)", c.R, c.G, c.B, c.A)
}

// Hex returns the clamped color as a hex string (#RRGGBBAA).
func (c Color) Hex() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
