package bcn

import "testing"

func TestColorNRGBA(t *testing.T) {
	tests := []struct {
		c          Color
		r, g, b, a uint8
	}{
		{Color{0, 0, 0, 0}, 0, 0, 0, 0},
		{Color{1, 1, 1, 1}, 255, 255, 255, 255},
		{Color{0.5, 0.25, 0.75, 1}, 128, 64, 191, 255},
		// Out-of-range HDR values clamp
		{Color{65504, -2, 0.5, 1}, 255, 0, 128, 255},
	}

	for _, tt := range tests {
		n := tt.c.NRGBA()
		if n.R != tt.r || n.G != tt.g || n.B != tt.b || n.A != tt.a {
			t.Errorf("%v: expected (%d,%d,%d,%d), got (%d,%d,%d,%d)",
				tt.c, tt.r, tt.g, tt.b, tt.a, n.R, n.G, n.B, n.A)
		}
	}
}

func TestColorNRGBA64(t *testing.T) {
	n := Color{1, 0, 0.5, 1}.NRGBA64()
	if n.R != 0xFFFF {
		t.Errorf("R: expected 0xFFFF, got 0x%04X", n.R)
	}
	if n.G != 0 {
		t.Errorf("G: expected 0, got 0x%04X", n.G)
	}
	if n.B != 32768 {
		t.Errorf("B: expected 32768, got %d", n.B)
	}
	if n.A != 0xFFFF {
		t.Errorf("A: expected 0xFFFF, got 0x%04X", n.A)
	}
}

func TestColorHex(t *testing.T) {
	if got := (Color{1, 0, 0, 1}).Hex(); got != "#FF0000FF" {
		t.Errorf("expected #FF0000FF, got %s", got)
	}
	if got := (Color{0, 0, 0, 0}).Hex(); got != "#00000000" {
		t.Errorf("expected #00000000, got %s", got)
	}
}
