package texture

import (
	"fmt"
	"image"

	"github.com/goopsie/bcpix/pkg/bcn"
)

// Sampler decodes individual pixels from a tightly packed BC mip chain.
// It never expands whole surfaces; each PixelAt call decodes exactly one
// block's worth of bits for the requested pixel.
type Sampler struct {
	data      []byte
	width     uint32
	height    uint32
	mipLevels uint32
	format    uint32

	// mipOffsets[i] is the byte offset of mip level i within data.
	mipOffsets []uint32
}

// NewSampler wraps a raw mip chain. The data must be exactly the packed
// size implied by the dimensions, mip count, and format.
func NewSampler(data []byte, width, height, mipLevels, format uint32) (*Sampler, error) {
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}
	if mipLevels == 0 {
		mipLevels = 1
	}
	if !IsBlockCompressed(format) {
		return nil, fmt.Errorf("not a block-compressed format: %s", FormatName(format))
	}

	need := ChainSize(width, height, mipLevels, format)
	if uint32(len(data)) < need {
		return nil, fmt.Errorf("mip chain too short: have %d bytes, need %d", len(data), need)
	}

	offsets := make([]uint32, mipLevels)
	var off uint32
	for i := uint32(0); i < mipLevels; i++ {
		offsets[i] = off
		off += MipSize(mipDim(width, i), mipDim(height, i), format)
	}

	return &Sampler{
		data:       data,
		width:      width,
		height:     height,
		mipLevels:  mipLevels,
		format:     format,
		mipOffsets: offsets,
	}, nil
}

// Width returns the base level width in pixels.
func (s *Sampler) Width() uint32 { return s.width }

// Height returns the base level height in pixels.
func (s *Sampler) Height() uint32 { return s.height }

// MipLevels returns the number of mip levels in the chain.
func (s *Sampler) MipLevels() uint32 { return s.mipLevels }

// Format returns the DXGI format of the chain.
func (s *Sampler) Format() uint32 { return s.format }

// MipDimensions returns the pixel dimensions of a mip level.
func (s *Sampler) MipDimensions(mip uint32) (width, height uint32, err error) {
	if mip >= s.mipLevels {
		return 0, 0, fmt.Errorf("mip level %d out of range (have %d)", mip, s.mipLevels)
	}
	return mipDim(s.width, mip), mipDim(s.height, mip), nil
}

// BlockAt returns the byte offset of the compressed block covering pixel
// (x, y) of a mip level, plus the pixel's coordinates within that block.
func (s *Sampler) BlockAt(x, y, mip uint32) (offset uint32, bx, by int, err error) {
	w, h, err := s.MipDimensions(mip)
	if err != nil {
		return 0, 0, 0, err
	}
	if x >= w || y >= h {
		return 0, 0, 0, fmt.Errorf("pixel (%d,%d) outside %dx%d mip %d", x, y, w, h, mip)
	}

	blocksWide := (w + 3) / 4
	blockIndex := (y/4)*blocksWide + x/4
	offset = s.mipOffsets[mip] + blockIndex*BlockBytes(s.format)
	return offset, int(x % 4), int(y % 4), nil
}

// PixelAt decodes a single pixel from a mip level.
func (s *Sampler) PixelAt(x, y, mip uint32) (bcn.Color, error) {
	offset, bx, by, err := s.BlockAt(x, y, mip)
	if err != nil {
		return bcn.Color{}, err
	}

	off := int(offset)
	switch s.format {
	case DXGI_FORMAT_BC1_UNORM, DXGI_FORMAT_BC1_UNORM_SRGB:
		return bcn.DecodeBC1Pixel(s.data, off, bx, by), nil
	case DXGI_FORMAT_BC3_UNORM, DXGI_FORMAT_BC3_UNORM_SRGB:
		return bcn.DecodeBC3Pixel(s.data, off, bx, by), nil
	case DXGI_FORMAT_BC4_UNORM, DXGI_FORMAT_BC4_SNORM:
		return bcn.DecodeBC4Pixel(s.data, off, bx, by), nil
	case DXGI_FORMAT_BC5_UNORM, DXGI_FORMAT_BC5_SNORM:
		return bcn.DecodeBC5Pixel(s.data, off, bx, by), nil
	case DXGI_FORMAT_BC6H_UF16:
		return bcn.DecodeBC6HPixel(s.data, off, bx, by, false), nil
	case DXGI_FORMAT_BC6H_SF16:
		return bcn.DecodeBC6HPixel(s.data, off, bx, by, true), nil
	case DXGI_FORMAT_BC7_UNORM, DXGI_FORMAT_BC7_UNORM_SRGB:
		return bcn.DecodeBC7Pixel(s.data, off, bx, by), nil
	default:
		return bcn.Color{}, fmt.Errorf("no decoder for format %s", FormatName(s.format))
	}
}

// DecodeImage expands one mip level to an 8-bit image. BC6H content is
// decoded through DecodeImage64 instead when full precision matters.
func (s *Sampler) DecodeImage(mip uint32) (*image.NRGBA, error) {
	w, h, err := s.MipDimensions(mip)
	if err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, int(w), int(h)))
	for y := uint32(0); y < h; y++ {
		for x := uint32(0); x < w; x++ {
			c, err := s.PixelAt(x, y, mip)
			if err != nil {
				return nil, err
			}
			img.SetNRGBA(int(x), int(y), c.NRGBA())
		}
	}
	return img, nil
}

// DecodeImage64 expands one mip level to a 16-bit image. Useful for BC6H
// output, where 8 bits per channel loses most of the HDR range.
func (s *Sampler) DecodeImage64(mip uint32) (*image.NRGBA64, error) {
	w, h, err := s.MipDimensions(mip)
	if err != nil {
		return nil, err
	}

	img := image.NewNRGBA64(image.Rect(0, 0, int(w), int(h)))
	for y := uint32(0); y < h; y++ {
		for x := uint32(0); x < w; x++ {
			c, err := s.PixelAt(x, y, mip)
			if err != nil {
				return nil, err
			}
			img.SetNRGBA64(int(x), int(y), c.NRGBA64())
		}
	}
	return img, nil
}
