// Package bcn decodes individual pixels from GPU block-compressed texture
// data (BC1/DXT1, BC3/DXT5, BC4, BC5, BC6H, BC7) without expanding whole
// surfaces.
//
// Every decoder reads exactly one 8- or 16-byte block at the given byte
// offset and returns the color of one of its sixteen pixels. Callers are
// responsible for block addressing: the offset must point at the first byte
// of a complete block and the local coordinates must be in [0,3]. The
// decoders do not bounds-check the buffer beyond what slice indexing
// enforces; see pkg/texture for mip-chain addressing.
//
// All decoders are pure functions over immutable inputs. They allocate
// nothing and keep no state between calls, so they may be called
// concurrently from any number of goroutines against the same buffer.
package bcn
