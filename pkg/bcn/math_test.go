package bcn

import (
	"math"
	"testing"
)

func TestInterpolate(t *testing.T) {
	tests := []struct {
		e0, e1, weight int
		expected       int
	}{
		{0, 0, 0, 0},
		{0, 255, 0, 0},
		{0, 255, 64, 255},
		{0, 255, 32, 128},
		{255, 0, 64, 0},
		{100, 101, 0, 100},
		{100, 101, 64, 101},
		{100, 101, 21, 100},
		{0, 0xFFFF, 64, 0xFFFF},
	}

	for _, tt := range tests {
		got := interpolate(tt.e0, tt.e1, tt.weight)
		if got != tt.expected {
			t.Errorf("interpolate(%d, %d, %d): expected %d, got %d",
				tt.e0, tt.e1, tt.weight, tt.expected, got)
		}
	}
}

func TestUnquantize(t *testing.T) {
	tests := []struct {
		v, bits  int
		expected int
	}{
		{0, 5, 0},
		{0x1F, 5, 255},
		{1, 5, 8},
		{0x10, 5, 0x84},
		{0, 7, 0},
		{127, 7, 255},
		{64, 7, 129},
		{100, 8, 100},
		{255, 8, 255},
	}

	for _, tt := range tests {
		got := unquantize(tt.v, tt.bits)
		if got != tt.expected {
			t.Errorf("unquantize(%d, %d): expected %d, got %d",
				tt.v, tt.bits, tt.expected, got)
		}
	}
}

func TestSignExtend(t *testing.T) {
	tests := []struct {
		v, bits  int
		expected int
	}{
		{0, 5, 0},
		{0x0F, 5, 15},
		{0x10, 5, -16},
		{0x1F, 5, -1},
		{0x3FF, 10, -1},
		{0x1FF, 10, 511},
		{0x200, 10, -512},
	}

	for _, tt := range tests {
		got := signExtend(tt.v, tt.bits)
		if got != tt.expected {
			t.Errorf("signExtend(0x%x, %d): expected %d, got %d",
				tt.v, tt.bits, tt.expected, got)
		}
	}
}

func TestHalfToFloat(t *testing.T) {
	tests := []struct {
		h        uint16
		expected float32
	}{
		{0x0000, 0},
		{0x3C00, 1},
		{0x4000, 2},
		{0xC000, -2},
		{0x3800, 0.5},
		{0x7BFF, 65504}, // largest finite half
		{0x0400, 6.103515625e-05},
		{0x0001, 5.960464477539063e-08}, // smallest subnormal
	}

	for _, tt := range tests {
		got := halfToFloat(tt.h)
		if got != tt.expected {
			t.Errorf("halfToFloat(0x%04x): expected %g, got %g", tt.h, tt.expected, got)
		}
	}

	if !math.Signbit(float64(halfToFloat(0x8000))) {
		t.Error("expected negative zero for 0x8000")
	}
	if !math.IsInf(float64(halfToFloat(0x7C00)), 1) {
		t.Error("expected +Inf for 0x7C00")
	}
	if !math.IsInf(float64(halfToFloat(0xFC00)), -1) {
		t.Error("expected -Inf for 0xFC00")
	}
	if !math.IsNaN(float64(halfToFloat(0x7C01))) {
		t.Error("expected NaN for 0x7C01")
	}
}

func TestBitReader(t *testing.T) {
	data := []byte{0b10110100, 0b01101101, 0xFF}

	t.Run("Sequential", func(t *testing.T) {
		br := newBitReader(data, 0)
		if got := br.read(3); got != 0b100 {
			t.Errorf("first 3 bits: expected 0b100, got %#b", got)
		}
		if got := br.read(5); got != 0b10110 {
			t.Errorf("next 5 bits: expected 0b10110, got %#b", got)
		}
	})

	t.Run("CrossesByteBoundary", func(t *testing.T) {
		br := newBitReader(data, 0)
		br.skip(6)
		// Bits 6..11: 1,0 from byte 0, then 1,0,1,1 from byte 1
		if got := br.read(6); got != 0b110110 {
			t.Errorf("expected 0b110110, got %#b", got)
		}
	})

	t.Run("Reversed", func(t *testing.T) {
		br := newBitReader(data, 0)
		// First three bits LSB-first are 0,0,1; reversed packing gives 0b001
		if got := br.readReversed(3); got != 0b001 {
			t.Errorf("expected 0b001, got %#b", got)
		}
	})

	t.Run("BaseOffset", func(t *testing.T) {
		br := newBitReader(data, 2)
		if got := br.read(8); got != 0xFF {
			t.Errorf("expected 0xFF, got %#x", got)
		}
	})

	t.Run("ZeroWidth", func(t *testing.T) {
		br := newBitReader(data, 0)
		if got := br.read(0); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
		if br.pos != 0 {
			t.Errorf("zero-width read moved position to %d", br.pos)
		}
	})
}
