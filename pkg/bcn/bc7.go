package bcn

// BC7 packs one 16-byte block per 4x4 tile using one of eight modes. The
// mode is unary-coded at the start of the block: the count of leading zero
// bits. Endpoint fields follow in channel-major, subset-major order, then
// parity bits, then the packed index planes.

const (
	bc7PBitsNone = iota
	bc7PBitsShared
	bc7PBitsUnique
)

type bc7Mode struct {
	subsets       int
	partitionBits int
	rotationBits  int
	indexSelBits  int
	colorBits     int
	alphaBits     int
	pBits         int
	indexBits     int
	indexBits2    int // second index plane (modes 4 and 5)
}

var bc7Modes = [8]bc7Mode{
	{subsets: 3, partitionBits: 4, colorBits: 4, pBits: bc7PBitsUnique, indexBits: 3},
	{subsets: 2, partitionBits: 6, colorBits: 6, pBits: bc7PBitsShared, indexBits: 3},
	{subsets: 3, partitionBits: 6, colorBits: 5, indexBits: 2},
	{subsets: 2, partitionBits: 6, colorBits: 7, pBits: bc7PBitsUnique, indexBits: 2},
	{subsets: 1, rotationBits: 2, indexSelBits: 1, colorBits: 5, alphaBits: 6, indexBits: 2, indexBits2: 3},
	{subsets: 1, rotationBits: 2, colorBits: 7, alphaBits: 8, indexBits: 2, indexBits2: 2},
	{subsets: 1, colorBits: 7, alphaBits: 7, pBits: bc7PBitsUnique, indexBits: 4},
	{subsets: 2, partitionBits: 6, colorBits: 5, alphaBits: 5, pBits: bc7PBitsUnique, indexBits: 2},
}

// DecodeBC7Pixel decodes the pixel at local (x, y) of the 16-byte BC7
// block starting at offset. A block whose first eight bits are all zero has
// no assigned mode and decodes to transparent black, matching reference
// decoder behavior for malformed data.
func DecodeBC7Pixel(data []byte, offset, x, y int) Color {
	br := newBitReader(data, offset)

	mode := 0
	for mode < 8 && br.read(1) == 0 {
		mode++
	}
	if mode == 8 {
		return Color{}
	}
	m := &bc7Modes[mode]

	partition := int(br.read(m.partitionBits))
	rotation := int(br.read(m.rotationBits))
	indexSel := int(br.read(m.indexSelBits))

	numEP := 2 * m.subsets
	var ep [6][4]int
	for ch := 0; ch < 3; ch++ {
		for e := 0; e < numEP; e++ {
			ep[e][ch] = int(br.read(m.colorBits))
		}
	}
	if m.alphaBits > 0 {
		for e := 0; e < numEP; e++ {
			ep[e][3] = int(br.read(m.alphaBits))
		}
	}

	// Parity bits widen each stored endpoint by one low-order bit.
	colorBits, alphaBits := m.colorBits, m.alphaBits
	switch m.pBits {
	case bc7PBitsUnique:
		for e := 0; e < numEP; e++ {
			p := int(br.read(1))
			for ch := 0; ch < 4; ch++ {
				ep[e][ch] = ep[e][ch]<<1 | p
			}
		}
	case bc7PBitsShared:
		for s := 0; s < m.subsets; s++ {
			p := int(br.read(1))
			for ch := 0; ch < 4; ch++ {
				ep[2*s][ch] = ep[2*s][ch]<<1 | p
				ep[2*s+1][ch] = ep[2*s+1][ch]<<1 | p
			}
		}
	}
	if m.pBits != bc7PBitsNone {
		colorBits++
		if m.alphaBits > 0 {
			alphaBits++
		}
	}

	for e := 0; e < numEP; e++ {
		for ch := 0; ch < 3; ch++ {
			ep[e][ch] = unquantize(ep[e][ch], colorBits)
		}
		if m.alphaBits > 0 {
			ep[e][3] = unquantize(ep[e][3], alphaBits)
		} else {
			ep[e][3] = 255
		}
	}

	pixel := 4*y + x
	idx1 := bc7Indices(&br, m.indexBits, m.subsets, partition, pixel, false)
	idx2 := idx1
	bits2 := m.indexBits
	if m.indexBits2 > 0 {
		idx2 = bc7Indices(&br, m.indexBits2, m.subsets, partition, pixel, true)
		bits2 = m.indexBits2
	}

	// Plane 1 drives color and plane 2 alpha; mode 4's index-selection bit
	// swaps the two.
	colorIdx, colorIdxBits := idx1, m.indexBits
	alphaIdx, alphaIdxBits := idx2, bits2
	if indexSel == 1 {
		colorIdx, colorIdxBits, alphaIdx, alphaIdxBits = alphaIdx, alphaIdxBits, colorIdx, colorIdxBits
	}

	subset := 0
	switch m.subsets {
	case 2:
		subset = int(partitions2[partition][pixel])
	case 3:
		subset = int(partitions3[partition][pixel])
	}

	wc := paletteWeight(colorIdx, colorIdxBits)
	wa := paletteWeight(alphaIdx, alphaIdxBits)
	lo, hi := &ep[2*subset], &ep[2*subset+1]

	r := interpolate(lo[0], hi[0], wc)
	g := interpolate(lo[1], hi[1], wc)
	b := interpolate(lo[2], hi[2], wc)
	a := interpolate(lo[3], hi[3], wa)

	switch rotation {
	case 1:
		r, a = a, r
	case 2:
		g, a = a, g
	case 3:
		b, a = a, b
	}

	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
}

// bc7Indices walks one packed index plane and returns the index of the
// requested pixel. Anchor pixels store one fewer bit with an implied zero
// top bit; the second plane of modes 4 and 5 is single-subset, so only
// pixel 0 is shortened there.
func bc7Indices(br *bitReader, baseBits, subsets, partition, pixel int, secondPlane bool) int {
	idx := 0
	for i := 0; i <= pixel; i++ {
		n := baseBits
		if secondPlane {
			if i == 0 {
				n--
			}
		} else if bc7Anchor(subsets, partition, i) {
			n--
		}
		idx = int(br.read(n))
	}
	if !secondPlane && pixel < 15 {
		// Skip the remainder so a second plane starts at the right bit.
		for i := pixel + 1; i < 16; i++ {
			n := baseBits
			if bc7Anchor(subsets, partition, i) {
				n--
			}
			br.skip(n)
		}
	}
	return idx
}

func bc7Anchor(subsets, partition, pixel int) bool {
	if pixel == 0 {
		return true
	}
	switch subsets {
	case 2:
		return pixel == int(anchors2[partition])
	case 3:
		return pixel == int(anchors3a[partition]) || pixel == int(anchors3b[partition])
	}
	return false
}

func paletteWeight(idx, bits int) int {
	switch bits {
	case 2:
		return weights2[idx]
	case 3:
		return weights3[idx]
	default:
		return weights4[idx]
	}
}
