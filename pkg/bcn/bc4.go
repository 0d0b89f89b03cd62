package bcn

// BC4 block layout: two 8-bit endpoints, then sixteen 3-bit palette indices
// packed LSB-first into six bytes. The endpoint comparison selects between
// an 8-value interpolated palette and a 6-value palette whose last two
// codes are the literal extremes 0.0 and 1.0. BC5 is two such planes in one
// 16-byte block; the same plane layout also serves as BC3's alpha half.

// DecodeBC4Pixel decodes the pixel at local (x, y) of the 8-byte BC4 block
// starting at offset. The decoded value lands in the R channel; G, B and A
// are 0.
func DecodeBC4Pixel(data []byte, offset, x, y int) Color {
	return Color{R: bc4Plane(data, offset, x, y)}
}

// DecodeBC5Pixel decodes the pixel at local (x, y) of the 16-byte BC5
// block starting at offset. The first 8-byte plane fills R, the second G;
// B and A are 0.
func DecodeBC5Pixel(data []byte, offset, x, y int) Color {
	return Color{
		R: bc4Plane(data, offset, x, y),
		G: bc4Plane(data, offset+8, x, y),
	}
}

func bc4Plane(data []byte, offset, x, y int) float32 {
	e0 := data[offset]
	e1 := data[offset+1]

	var indices uint64
	for i := 0; i < 6; i++ {
		indices |= uint64(data[offset+2+i]) << (8 * i)
	}
	code := int(indices>>(3*(4*y+x))) & 7

	f0 := float32(e0) / 255
	f1 := float32(e1) / 255

	switch code {
	case 0:
		return f0
	case 1:
		return f1
	}
	if e0 > e1 {
		// 8-value palette: codes 2..7 step from e0 toward e1 in sevenths.
		return (float32(8-code)*f0 + float32(code-1)*f1) / 7
	}
	// 6-value palette with literal extremes.
	switch code {
	case 6:
		return 0
	case 7:
		return 1
	default:
		return (float32(6-code)*f0 + float32(code-1)*f1) / 5
	}
}
