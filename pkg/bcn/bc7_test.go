package bcn

import "testing"

// blockWriter packs bit fields LSB-first into a 16-byte block, mirroring
// the layout the decoders read.
type blockWriter struct {
	data [16]byte
	pos  int
}

func (w *blockWriter) put(v uint64, n int) {
	for i := 0; i < n; i++ {
		if v>>i&1 == 1 {
			w.data[w.pos>>3] |= 1 << (w.pos & 7)
		}
		w.pos++
	}
}

func TestDecodeBC7ReservedMode(t *testing.T) {
	// Eight leading zero bits mean no mode; such blocks decode to
	// transparent black.
	block := make([]byte, 16)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c := DecodeBC7Pixel(block, 0, x, y)
			if c != (Color{}) {
				t.Errorf("(%d,%d): expected transparent black, got %v", x, y, c)
			}
		}
	}
}

func TestDecodeBC7Mode6(t *testing.T) {
	// Mode 6: one subset, 7-bit RGBA endpoints, unique parity bits, 4-bit
	// indices. Both endpoints store 50; parity 0 and 1 widen them to 100
	// and 101.
	var w blockWriter
	w.put(0b1000000, 7) // unary mode code for mode 6
	for i := 0; i < 8; i++ {
		w.put(50, 7) // R0 R1 G0 G1 B0 B1 A0 A1
	}
	w.put(0, 1) // parity e0
	w.put(1, 1) // parity e1
	w.put(0, 3) // anchor pixel 0 index
	for i := 1; i < 15; i++ {
		w.put(0, 4)
	}
	w.put(15, 4) // pixel 15 selects e1

	c := DecodeBC7Pixel(w.data[:], 0, 0, 0)
	want := Color{100.0 / 255, 100.0 / 255, 100.0 / 255, 100.0 / 255}
	if !colorsClose(c, want) {
		t.Errorf("pixel 0: expected %v, got %v", want, c)
	}

	c = DecodeBC7Pixel(w.data[:], 0, 3, 3)
	want = Color{101.0 / 255, 101.0 / 255, 101.0 / 255, 101.0 / 255}
	if !colorsClose(c, want) {
		t.Errorf("pixel 15: expected %v, got %v", want, c)
	}
}

func TestDecodeBC7Mode5Rotation(t *testing.T) {
	// Mode 5: one subset, 2 rotation bits, 7-bit color, 8-bit alpha, two
	// 2-bit index planes. Rotation 1 swaps R and A after interpolation.
	var w blockWriter
	w.put(0b100000, 6) // unary mode code for mode 5
	w.put(1, 2)        // rotation = 1
	w.put(127, 7)      // R0
	w.put(127, 7)      // R1
	w.put(0, 7)        // G0
	w.put(0, 7)        // G1
	w.put(0, 7)        // B0
	w.put(0, 7)        // B1
	w.put(0, 8)        // A0
	w.put(0, 8)        // A1
	// Both index planes all zero: 31 bits each

	c := DecodeBC7Pixel(w.data[:], 0, 2, 1)
	// Color plane produced R=255 (7-bit 127 unquantized), alpha plane 0;
	// rotation moves the red value into alpha.
	if !colorsClose(c, Color{0, 0, 0, 1}) {
		t.Errorf("expected rotated (0,0,0,1), got %v", c)
	}
}

func TestDecodeBC7Mode1TwoSubsets(t *testing.T) {
	// Mode 1: two subsets, 6-bit endpoints, one shared parity bit per
	// subset, 3-bit indices. All four endpoints store 21; parity 1 widens
	// them to 43, which unquantizes to 86. Every pixel then decodes the
	// same regardless of partition.
	var w blockWriter
	w.put(0b10, 2) // unary mode code for mode 1
	w.put(0, 6)    // partition 0
	for i := 0; i < 12; i++ {
		w.put(21, 6) // all color endpoints
	}
	w.put(1, 1) // shared parity subset 0
	w.put(1, 1) // shared parity subset 1
	// Index bits all zero

	want := Color{86.0 / 255, 86.0 / 255, 86.0 / 255, 1}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c := DecodeBC7Pixel(w.data[:], 0, x, y)
			if !colorsClose(c, want) {
				t.Errorf("(%d,%d): expected %v, got %v", x, y, want, c)
			}
		}
	}
}

func TestDecodeBC7OpaqueModesFullAlpha(t *testing.T) {
	// Modes without alpha endpoints must report A=1 exactly.
	var w blockWriter
	w.put(0b10, 2)
	w.put(13, 6)
	for i := 0; i < 12; i++ {
		w.put(uint64(i*5), 6)
	}

	c := DecodeBC7Pixel(w.data[:], 0, 1, 2)
	if c.A != 1 {
		t.Errorf("expected A=1, got %g", c.A)
	}
}
