package bcn

import "math"

// interpolate blends two endpoint components with a 0..64 palette weight
// using the fixed-point rounding the BC formats specify.
func interpolate(e0, e1, weight int) int {
	return (e0*(64-weight) + e1*weight + 32) >> 6
}

// unquantize expands an n-bit endpoint component to 8 bits by shifting it
// up and replicating its top bits into the vacated low bits. Components
// already 8 bits wide pass through unchanged.
func unquantize(v, bits int) int {
	if bits >= 8 {
		return v
	}
	return v<<(8-bits) | v>>(2*bits-8)
}

// signExtend interprets v as a two's-complement integer bits wide and
// returns its value in native width.
func signExtend(v, bits int) int {
	shift := 32 - uint(bits)
	return int(int32(uint32(v)<<shift) >> shift)
}

// halfToFloat converts an IEEE-754 binary16 bit pattern to float32.
func halfToFloat(h uint16) float32 {
	sign := uint32(h&0x8000) << 16
	exp := uint32(h>>10) & 0x1F
	frac := uint32(h & 0x03FF)

	switch exp {
	case 0:
		if frac == 0 {
			return math.Float32frombits(sign)
		}
		// Subnormal: normalize the fraction into a float32 normal.
		e := int32(-14)
		for frac&0x0400 == 0 {
			frac <<= 1
			e--
		}
		frac &= 0x03FF
		return math.Float32frombits(sign | uint32(e+127)<<23 | frac<<13)
	case 0x1F:
		if frac == 0 {
			return math.Float32frombits(sign | 0x7F800000) // Inf
		}
		return math.Float32frombits(sign | 0x7F800000 | frac<<13) // NaN
	default:
		return math.Float32frombits(sign | (exp-15+127)<<23 | frac<<13)
	}
}
