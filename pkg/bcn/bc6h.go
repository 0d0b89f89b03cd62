package bcn

// BC6H stores HDR color in one 16-byte block per 4x4 tile, in one of 14
// modes. Two-bit prefixes 00 and 01 select the two most common modes; all
// other modes use 5-bit prefixes. Endpoints are quantized toward a 15-bit
// half-float-oriented range; most modes delta-encode the secondary
// endpoints against the first, and several scatter a value's high-order
// bits across non-contiguous block positions. Each mode's field map below
// is a literal transcription of the format's bit layout: entry order is
// stream order, and deviation from it is a decoding bug.

type bc6hField struct {
	ep    uint8 // endpoint: 0..3 for w, x, y, z
	ch    uint8 // channel: 0 r, 1 g, 2 b
	shift uint8 // destination bit position
	width uint8
	rev   bool // high bits stored MSB-first (12- and 16-bit modes)
}

type bc6hMode struct {
	subsets   int
	epBits    int
	deltaBits [3]int
	transform bool
	fields    []bc6hField
}

// Field constructors keep the layout tables compact.
func bf(ep, ch, shift, width uint8) bc6hField {
	return bc6hField{ep: ep, ch: ch, shift: shift, width: width}
}

func bfr(ep, ch, shift, width uint8) bc6hField {
	return bc6hField{ep: ep, ch: ch, shift: shift, width: width, rev: true}
}

const (
	chR = 0
	chG = 1
	chB = 2
)

var bc6hModes = [14]bc6hMode{
	// Mode prefix 00: 10-bit endpoints, 5.5.5 deltas, two subsets.
	{subsets: 2, epBits: 10, deltaBits: [3]int{5, 5, 5}, transform: true, fields: []bc6hField{
		bf(2, chG, 4, 1), bf(2, chB, 4, 1), bf(3, chB, 4, 1),
		bf(0, chR, 0, 10), bf(0, chG, 0, 10), bf(0, chB, 0, 10),
		bf(1, chR, 0, 5), bf(3, chG, 4, 1), bf(2, chG, 0, 4),
		bf(1, chG, 0, 5), bf(3, chB, 0, 1), bf(3, chG, 0, 4),
		bf(1, chB, 0, 5), bf(3, chB, 1, 1), bf(2, chB, 0, 4),
		bf(2, chR, 0, 5), bf(3, chB, 2, 1), bf(3, chR, 0, 5), bf(3, chB, 3, 1),
	}},
	// Mode prefix 01: 7-bit endpoints, 6.6.6 deltas, two subsets.
	{subsets: 2, epBits: 7, deltaBits: [3]int{6, 6, 6}, transform: true, fields: []bc6hField{
		bf(2, chG, 5, 1), bf(3, chG, 4, 1), bf(3, chG, 5, 1),
		bf(0, chR, 0, 7), bf(3, chB, 0, 1), bf(3, chB, 1, 1), bf(2, chB, 4, 1),
		bf(0, chG, 0, 7), bf(2, chB, 5, 1), bf(3, chB, 2, 1), bf(2, chG, 4, 1),
		bf(0, chB, 0, 7), bf(3, chB, 3, 1), bf(3, chB, 5, 1), bf(3, chB, 4, 1),
		bf(1, chR, 0, 6), bf(2, chG, 0, 4), bf(1, chG, 0, 6), bf(3, chG, 0, 4),
		bf(1, chB, 0, 6), bf(2, chB, 0, 4), bf(2, chR, 0, 6), bf(3, chR, 0, 6),
	}},
	// Mode 00010: 11-bit endpoints, 5.4.4 deltas.
	{subsets: 2, epBits: 11, deltaBits: [3]int{5, 4, 4}, transform: true, fields: []bc6hField{
		bf(0, chR, 0, 10), bf(0, chG, 0, 10), bf(0, chB, 0, 10),
		bf(1, chR, 0, 5), bf(0, chR, 10, 1), bf(2, chG, 0, 4),
		bf(1, chG, 0, 4), bf(0, chG, 10, 1), bf(3, chB, 0, 1), bf(3, chG, 0, 4),
		bf(1, chB, 0, 4), bf(0, chB, 10, 1), bf(3, chB, 1, 1), bf(2, chB, 0, 4),
		bf(2, chR, 0, 5), bf(3, chB, 2, 1), bf(3, chR, 0, 5), bf(3, chB, 3, 1),
	}},
	// Mode 00110: 11-bit endpoints, 4.5.4 deltas.
	{subsets: 2, epBits: 11, deltaBits: [3]int{4, 5, 4}, transform: true, fields: []bc6hField{
		bf(0, chR, 0, 10), bf(0, chG, 0, 10), bf(0, chB, 0, 10),
		bf(1, chR, 0, 4), bf(0, chR, 10, 1), bf(3, chG, 4, 1), bf(2, chG, 0, 4),
		bf(1, chG, 0, 5), bf(0, chG, 10, 1), bf(3, chG, 0, 4),
		bf(1, chB, 0, 4), bf(0, chB, 10, 1), bf(3, chB, 1, 1), bf(2, chB, 0, 4),
		bf(2, chR, 0, 4), bf(3, chB, 0, 1), bf(3, chB, 2, 1),
		bf(3, chR, 0, 4), bf(2, chG, 4, 1), bf(3, chB, 3, 1),
	}},
	// Mode 01010: 11-bit endpoints, 4.4.5 deltas.
	{subsets: 2, epBits: 11, deltaBits: [3]int{4, 4, 5}, transform: true, fields: []bc6hField{
		bf(0, chR, 0, 10), bf(0, chG, 0, 10), bf(0, chB, 0, 10),
		bf(1, chR, 0, 4), bf(0, chR, 10, 1), bf(2, chB, 4, 1), bf(2, chG, 0, 4),
		bf(1, chG, 0, 4), bf(0, chG, 10, 1), bf(3, chB, 0, 1), bf(3, chG, 0, 4),
		bf(1, chB, 0, 5), bf(0, chB, 10, 1), bf(2, chB, 0, 4),
		bf(2, chR, 0, 4), bf(3, chB, 1, 1), bf(3, chB, 2, 1),
		bf(3, chR, 0, 4), bf(3, chB, 4, 1), bf(3, chB, 3, 1),
	}},
	// Mode 01110: 9-bit endpoints, 5.5.5 deltas.
	{subsets: 2, epBits: 9, deltaBits: [3]int{5, 5, 5}, transform: true, fields: []bc6hField{
		bf(0, chR, 0, 9), bf(2, chB, 4, 1), bf(0, chG, 0, 9), bf(2, chG, 4, 1),
		bf(0, chB, 0, 9), bf(3, chB, 4, 1),
		bf(1, chR, 0, 5), bf(3, chG, 4, 1), bf(2, chG, 0, 4),
		bf(1, chG, 0, 5), bf(3, chB, 0, 1), bf(3, chG, 0, 4),
		bf(1, chB, 0, 5), bf(3, chB, 1, 1), bf(2, chB, 0, 4),
		bf(2, chR, 0, 5), bf(3, chB, 2, 1), bf(3, chR, 0, 5), bf(3, chB, 3, 1),
	}},
	// Mode 10010: 8-bit endpoints, 6.5.5 deltas.
	{subsets: 2, epBits: 8, deltaBits: [3]int{6, 5, 5}, transform: true, fields: []bc6hField{
		bf(0, chR, 0, 8), bf(3, chG, 4, 1), bf(2, chB, 4, 1),
		bf(0, chG, 0, 8), bf(3, chB, 2, 1), bf(2, chG, 4, 1),
		bf(0, chB, 0, 8), bf(3, chB, 3, 1), bf(3, chB, 4, 1),
		bf(1, chR, 0, 6), bf(2, chG, 0, 4),
		bf(1, chG, 0, 5), bf(3, chB, 0, 1), bf(3, chG, 0, 4),
		bf(1, chB, 0, 5), bf(3, chB, 1, 1), bf(2, chB, 0, 4),
		bf(2, chR, 0, 6), bf(3, chR, 0, 6),
	}},
	// Mode 10110: 8-bit endpoints, 5.6.5 deltas.
	{subsets: 2, epBits: 8, deltaBits: [3]int{5, 6, 5}, transform: true, fields: []bc6hField{
		bf(0, chR, 0, 8), bf(3, chB, 0, 1), bf(2, chB, 4, 1),
		bf(0, chG, 0, 8), bf(2, chG, 5, 1), bf(2, chG, 4, 1),
		bf(0, chB, 0, 8), bf(3, chG, 5, 1), bf(3, chB, 4, 1),
		bf(1, chR, 0, 5), bf(3, chG, 4, 1), bf(2, chG, 0, 4),
		bf(1, chG, 0, 6), bf(3, chG, 0, 4),
		bf(1, chB, 0, 5), bf(3, chB, 1, 1), bf(2, chB, 0, 4),
		bf(2, chR, 0, 5), bf(3, chB, 2, 1), bf(3, chR, 0, 5), bf(3, chB, 3, 1),
	}},
	// Mode 11010: 8-bit endpoints, 5.5.6 deltas.
	{subsets: 2, epBits: 8, deltaBits: [3]int{5, 5, 6}, transform: true, fields: []bc6hField{
		bf(0, chR, 0, 8), bf(3, chB, 1, 1), bf(2, chB, 4, 1),
		bf(0, chG, 0, 8), bf(2, chB, 5, 1), bf(2, chG, 4, 1),
		bf(0, chB, 0, 8), bf(3, chB, 5, 1), bf(3, chB, 4, 1),
		bf(1, chR, 0, 5), bf(3, chG, 4, 1), bf(2, chG, 0, 4),
		bf(1, chG, 0, 5), bf(3, chB, 0, 1), bf(3, chG, 0, 4),
		bf(1, chB, 0, 6), bf(2, chB, 0, 4),
		bf(2, chR, 0, 5), bf(3, chB, 2, 1), bf(3, chR, 0, 5), bf(3, chB, 3, 1),
	}},
	// Mode 11110: 6-bit endpoints stored directly, no transform.
	{subsets: 2, epBits: 6, deltaBits: [3]int{6, 6, 6}, fields: []bc6hField{
		bf(0, chR, 0, 6), bf(3, chG, 4, 1), bf(3, chB, 0, 1), bf(3, chB, 1, 1), bf(2, chB, 4, 1),
		bf(0, chG, 0, 6), bf(2, chG, 5, 1), bf(2, chB, 5, 1), bf(3, chB, 2, 1), bf(2, chG, 4, 1),
		bf(0, chB, 0, 6), bf(3, chG, 5, 1), bf(3, chB, 3, 1), bf(3, chB, 5, 1), bf(3, chB, 4, 1),
		bf(1, chR, 0, 6), bf(2, chG, 0, 4), bf(1, chG, 0, 6), bf(3, chG, 0, 4),
		bf(1, chB, 0, 6), bf(2, chB, 0, 4), bf(2, chR, 0, 6), bf(3, chR, 0, 6),
	}},
	// Mode 00011: one subset, direct 10-bit endpoints.
	{subsets: 1, epBits: 10, fields: []bc6hField{
		bf(0, chR, 0, 10), bf(0, chG, 0, 10), bf(0, chB, 0, 10),
		bf(1, chR, 0, 10), bf(1, chG, 0, 10), bf(1, chB, 0, 10),
	}},
	// Mode 00111: one subset, 11-bit endpoints, 9-bit deltas.
	{subsets: 1, epBits: 11, deltaBits: [3]int{9, 9, 9}, transform: true, fields: []bc6hField{
		bf(0, chR, 0, 10), bf(0, chG, 0, 10), bf(0, chB, 0, 10),
		bf(1, chR, 0, 9), bf(0, chR, 10, 1),
		bf(1, chG, 0, 9), bf(0, chG, 10, 1),
		bf(1, chB, 0, 9), bf(0, chB, 10, 1),
	}},
	// Mode 01011: one subset, 12-bit endpoints, 8-bit deltas. The extra
	// high-order base bits are stored MSB-first.
	{subsets: 1, epBits: 12, deltaBits: [3]int{8, 8, 8}, transform: true, fields: []bc6hField{
		bf(0, chR, 0, 10), bf(0, chG, 0, 10), bf(0, chB, 0, 10),
		bf(1, chR, 0, 8), bfr(0, chR, 10, 2),
		bf(1, chG, 0, 8), bfr(0, chG, 10, 2),
		bf(1, chB, 0, 8), bfr(0, chB, 10, 2),
	}},
	// Mode 01111: one subset, 16-bit endpoints, 4-bit deltas, high bits
	// MSB-first.
	{subsets: 1, epBits: 16, deltaBits: [3]int{4, 4, 4}, transform: true, fields: []bc6hField{
		bf(0, chR, 0, 10), bf(0, chG, 0, 10), bf(0, chB, 0, 10),
		bf(1, chR, 0, 4), bfr(0, chR, 10, 6),
		bf(1, chG, 0, 4), bfr(0, chG, 10, 6),
		bf(1, chB, 0, 4), bfr(0, chB, 10, 6),
	}},
}

// bc6hModeFor consumes the mode prefix and returns the matching
// descriptor, or nil for the reserved codes.
func bc6hModeFor(br *bitReader) *bc6hMode {
	prefix := br.read(2)
	if prefix < 2 {
		return &bc6hModes[prefix]
	}
	code := prefix | br.read(3)<<2
	switch code {
	case 0x02:
		return &bc6hModes[2]
	case 0x06:
		return &bc6hModes[3]
	case 0x0A:
		return &bc6hModes[4]
	case 0x0E:
		return &bc6hModes[5]
	case 0x12:
		return &bc6hModes[6]
	case 0x16:
		return &bc6hModes[7]
	case 0x1A:
		return &bc6hModes[8]
	case 0x1E:
		return &bc6hModes[9]
	case 0x03:
		return &bc6hModes[10]
	case 0x07:
		return &bc6hModes[11]
	case 0x0B:
		return &bc6hModes[12]
	case 0x0F:
		return &bc6hModes[13]
	}
	return nil
}

// DecodeBC6HPixel decodes the pixel at local (x, y) of the 16-byte BC6H
// block starting at offset. signed selects the SF16 variant. Blocks with a
// reserved mode prefix decode to opaque black, matching reference decoder
// behavior. Channel values are half-float magnitudes, not clamped to [0,1];
// alpha is always 1.
func DecodeBC6HPixel(data []byte, offset, x, y int, signed bool) Color {
	br := newBitReader(data, offset)
	m := bc6hModeFor(&br)
	if m == nil {
		return Color{0, 0, 0, 1}
	}

	var e [4][3]int
	for _, f := range m.fields {
		var v uint32
		if f.rev {
			v = br.readReversed(int(f.width))
		} else {
			v = br.read(int(f.width))
		}
		e[f.ep][f.ch] |= int(v) << f.shift
	}

	partition := 0
	if m.subsets == 2 {
		partition = int(br.read(5))
	}

	epb := m.epBits
	mask := 1<<epb - 1
	if signed {
		for ch := 0; ch < 3; ch++ {
			e[0][ch] = signExtend(e[0][ch], epb)
		}
	}
	numEP := 2 * m.subsets
	if m.transform {
		for i := 1; i < numEP; i++ {
			for ch := 0; ch < 3; ch++ {
				d := signExtend(e[i][ch], m.deltaBits[ch])
				v := (e[0][ch] + d) & mask
				if signed {
					v = signExtend(v, epb)
				}
				e[i][ch] = v
			}
		}
	} else if signed {
		for i := 1; i < numEP; i++ {
			for ch := 0; ch < 3; ch++ {
				e[i][ch] = signExtend(e[i][ch], epb)
			}
		}
	}

	var unq [4][3]int
	for i := 0; i < numEP; i++ {
		for ch := 0; ch < 3; ch++ {
			unq[i][ch] = bc6hUnquantize(e[i][ch], epb, signed)
		}
	}

	pixel := 4*y + x
	subset := 0
	if m.subsets == 2 {
		subset = int(partitions2[partition][pixel])
	}

	idxBits := 4
	if m.subsets == 2 {
		idxBits = 3
	}
	index := 0
	for i := 0; i <= pixel; i++ {
		n := idxBits
		if bc6hAnchor(m.subsets, partition, i) {
			n--
		}
		index = int(br.read(n))
	}

	var w int
	if idxBits == 3 {
		w = weights3[index]
	} else {
		w = weights4[index]
	}

	lo, hi := &unq[2*subset], &unq[2*subset+1]
	return Color{
		R: bc6hFinish(interpolate(lo[0], hi[0], w), signed),
		G: bc6hFinish(interpolate(lo[1], hi[1], w), signed),
		B: bc6hFinish(interpolate(lo[2], hi[2], w), signed),
		A: 1,
	}
}

func bc6hAnchor(subsets, partition, pixel int) bool {
	if pixel == 0 {
		return true
	}
	return subsets == 2 && pixel == int(anchors2[partition])
}

// bc6hUnquantize expands a stored endpoint component toward the 15/16-bit
// range the interpolator works in.
func bc6hUnquantize(v, bits int, signed bool) int {
	if !signed {
		switch {
		case bits >= 15:
			return v
		case v == 0:
			return 0
		case v == 1<<bits-1:
			return 0xFFFF
		default:
			return (v<<15 + 0x4000) >> (bits - 1)
		}
	}
	if bits >= 16 {
		return v
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var unq int
	switch {
	case v == 0:
		unq = 0
	case v >= 1<<(bits-1)-1:
		unq = 0x7FFF
	default:
		unq = (v<<15 + 0x4000) >> (bits - 1)
	}
	if neg {
		return -unq
	}
	return unq
}

// bc6hFinish rescales an interpolated component into a half-float bit
// pattern and converts it to float32.
func bc6hFinish(v int, signed bool) float32 {
	if !signed {
		return halfToFloat(uint16(v * 31 >> 6))
	}
	if v < 0 {
		return halfToFloat(0x8000 | uint16(-v*31>>5))
	}
	return halfToFloat(uint16(v * 31 >> 5))
}
