package bcn

// DecodeBC3Pixel decodes the pixel at local (x, y) of the 16-byte BC3
// (DXT5) block starting at offset. The first 8 bytes hold an alpha plane
// with the BC4 layout; the second 8 bytes hold a DXT1 color half whose
// alpha is replaced by the decoded alpha plane value.
func DecodeBC3Pixel(data []byte, offset, x, y int) Color {
	c := DecodeBC1Pixel(data, offset+8, x, y)
	c.A = bc4Plane(data, offset, x, y)
	return c
}
