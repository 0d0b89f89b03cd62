package bcn

// bitReader extracts LSB-first bit fields from one compressed block. Bit
// position p maps to byte base+(p>>3), bit p&7 within that byte; multi-bit
// reads accumulate across byte boundaries. The reader is a small value type
// constructed fresh for each decode call and never shared. Reads past the
// nominal block size are a caller bug, not a checked condition.
type bitReader struct {
	data []byte
	base int // byte offset of the block's first byte
	pos  int // bit position relative to base
}

func newBitReader(data []byte, base int) bitReader {
	return bitReader{data: data, base: base}
}

// read returns the next n bits (n <= 32) as an unsigned integer and
// advances the position.
func (br *bitReader) read(n int) uint32 {
	var v uint32
	for got := 0; got < n; {
		byteIdx := br.base + br.pos>>3
		bitIdx := br.pos & 7
		take := 8 - bitIdx
		if take > n-got {
			take = n - got
		}
		bits := uint32(br.data[byteIdx]>>bitIdx) & (1<<take - 1)
		v |= bits << got
		got += take
		br.pos += take
	}
	return v
}

// readReversed returns the next n bits with the first bit read landing in
// the most significant position. BC6H's 12- and 16-bit endpoint modes store
// the extra high-order bits in this reversed order.
func (br *bitReader) readReversed(n int) uint32 {
	var v uint32
	for i := 0; i < n; i++ {
		v = v<<1 | br.read(1)
	}
	return v
}

// skip advances the position by n bits without reading.
func (br *bitReader) skip(n int) {
	br.pos += n
}
