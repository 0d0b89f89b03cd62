package bcn

// BC1 (DXT1) block layout: two little-endian RGB565 endpoints followed by
// four bytes of 2-bit palette indices, one byte per row, low pair first.
// Whether the block is opaque four-color or three-color-plus-transparent is
// decided once per block by comparing the raw endpoint words.

// DecodeBC1Pixel decodes the pixel at local (x, y) of the 8-byte BC1 block
// starting at offset.
func DecodeBC1Pixel(data []byte, offset, x, y int) Color {
	c0 := uint16(data[offset]) | uint16(data[offset+1])<<8
	c1 := uint16(data[offset+2]) | uint16(data[offset+3])<<8
	code := int(data[offset+4+y]>>(2*x)) & 3

	r0, g0, b0 := rgb565(c0)
	r1, g1, b1 := rgb565(c1)

	if c0 > c1 {
		// Four-color opaque mode.
		switch code {
		case 0:
			return Color{r0, g0, b0, 1}
		case 1:
			return Color{r1, g1, b1, 1}
		case 2:
			return Color{(2*r0 + r1) / 3, (2*g0 + g1) / 3, (2*b0 + b1) / 3, 1}
		default:
			return Color{(r0 + 2*r1) / 3, (g0 + 2*g1) / 3, (b0 + 2*b1) / 3, 1}
		}
	}

	// Three-color mode; code 3 is transparent black.
	switch code {
	case 0:
		return Color{r0, g0, b0, 1}
	case 1:
		return Color{r1, g1, b1, 1}
	case 2:
		return Color{(r0 + r1) / 2, (g0 + g1) / 2, (b0 + b1) / 2, 1}
	default:
		return Color{0, 0, 0, 0}
	}
}

// rgb565 splits a packed RGB565 word into normalized float channels.
func rgb565(c uint16) (r, g, b float32) {
	r = float32(c>>11&0x1F) / 31
	g = float32(c>>5&0x3F) / 63
	b = float32(c&0x1F) / 31
	return
}
