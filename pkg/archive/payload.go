package archive

import (
	"bytes"
	"fmt"
	"io"
)

// IsPayload reports whether data starts with a compressed payload header.
func IsPayload(data []byte) bool {
	return len(data) >= HeaderSize && bytes.Equal(data[0:4], Magic[:])
}

// MaybeDecompress returns the decompressed content if data is a compressed
// payload, or data unchanged if it is not. Callers can feed either raw or
// compressed texture files through the same path.
func MaybeDecompress(data []byte) ([]byte, error) {
	if !IsPayload(data) {
		return data, nil
	}

	out, err := ReadAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}
	return out, nil
}

// Compress wraps data in a compressed payload and returns the result.
func Compress(data []byte, opts ...WriterOption) ([]byte, error) {
	var buf seekBuffer
	if err := Encode(&buf, data, opts...); err != nil {
		return nil, err
	}
	return buf.data, nil
}

// seekBuffer is an in-memory io.WriteSeeker. Encode seeks back over the
// placeholder header after the compressed size is known.
type seekBuffer struct {
	data []byte
	pos  int64
}

func (b *seekBuffer) Write(p []byte) (int, error) {
	for int64(len(b.data)) < b.pos {
		b.data = append(b.data, 0)
	}
	n := copy(b.data[b.pos:], p)
	if n < len(p) {
		b.data = append(b.data, p[n:]...)
		n = len(p)
	}
	b.pos += int64(n)
	return n, nil
}

func (b *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = b.pos + offset
	case io.SeekEnd:
		pos = int64(len(b.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}
	if pos < 0 {
		return 0, fmt.Errorf("negative position: %d", pos)
	}
	b.pos = pos
	return pos, nil
}
