package bcn

import "testing"

func TestDecodeBC3(t *testing.T) {
	// Alpha half: e0=255, e1=0, pixel 1 selects e1. Color half: solid white.
	var alphaIdx [16]int
	alphaIdx[1] = 1
	alpha := bc4Block(255, 0, alphaIdx)
	color := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00}
	block := append(alpha, color...)

	c := DecodeBC3Pixel(block, 0, 0, 0)
	if !colorsClose(c, Color{1, 1, 1, 1}) {
		t.Errorf("pixel 0: expected opaque white, got %v", c)
	}

	c = DecodeBC3Pixel(block, 0, 1, 0)
	if !colorsClose(c, Color{1, 1, 1, 0}) {
		t.Errorf("pixel 1: expected transparent white, got %v", c)
	}
}

func TestDecodeBC3AlphaGradient(t *testing.T) {
	// The alpha plane follows the single-channel palette rules, including
	// the interpolated codes.
	var alphaIdx [16]int
	for i := 0; i < 8; i++ {
		alphaIdx[i] = i
	}
	alpha := bc4Block(255, 0, alphaIdx)
	color := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00}
	block := append(alpha, color...)

	expected := []float32{1, 0, 6.0 / 7, 5.0 / 7, 4.0 / 7, 3.0 / 7, 2.0 / 7, 1.0 / 7}
	for i, want := range expected {
		c := DecodeBC3Pixel(block, 0, i%4, i/4)
		if diff := c.A - want; diff > 1e-5 || diff < -1e-5 {
			t.Errorf("code %d: expected A=%g, got %g", i, want, c.A)
		}
		if c.R != 1 || c.G != 1 || c.B != 1 {
			t.Errorf("code %d: color half should stay white, got %v", i, c)
		}
	}
}

func TestDecodeBC3ColorAlphaIndependence(t *testing.T) {
	// The color half's own alpha decision (three-color mode code 3) must
	// not leak through; alpha comes only from the alpha plane.
	var alphaIdx [16]int
	alpha := bc4Block(255, 255, alphaIdx)
	// c0 <= c1 three-color mode, all indices 3 (transparent in BC1)
	color := []byte{0x1F, 0x00, 0x00, 0xF8, 0xFF, 0xFF, 0xFF, 0xFF}
	block := append(alpha, color...)

	c := DecodeBC3Pixel(block, 0, 0, 0)
	if c.A != 1 {
		t.Errorf("expected alpha from alpha plane (1), got %g", c.A)
	}
	if c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("expected black color from code 3, got %v", c)
	}
}
