package texture

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// DDSHeader represents the main DDS file header (124 bytes plus magic).
type DDSHeader struct {
	Magic             uint32 // Must be "DDS "
	Size              uint32 // Size of structure (124)
	Flags             uint32 // Flags to indicate valid fields
	Height            uint32 // Height of surface
	Width             uint32 // Width of surface
	PitchOrLinearSize uint32 // Bytes per scan line or total bytes
	Depth             uint32 // Depth of volume texture
	MipMapCount       uint32 // Number of mipmap levels
	Reserved1         [11]uint32
	PixelFormat       DDSPixelFormat
	Caps              uint32
	Caps2             uint32
	Caps3             uint32
	Caps4             uint32
	Reserved2         uint32
}

// DDSPixelFormat describes the pixel format (32 bytes).
type DDSPixelFormat struct {
	Size        uint32  // Size of structure (32)
	Flags       uint32  // Pixel format flags
	FourCC      [4]byte // FourCC code (e.g., "DXT1")
	RGBBitCount uint32
	RBitMask    uint32
	GBitMask    uint32
	BBitMask    uint32
	ABitMask    uint32
}

// DDSDX10Header is the extended header for DX10+ formats (20 bytes).
type DDSDX10Header struct {
	DXGIFormat        uint32
	ResourceDimension uint32
	MiscFlag          uint32
	ArraySize         uint32
	MiscFlags2        uint32
}

// DDSInfo describes a parsed DDS container.
type DDSInfo struct {
	Width      uint32
	Height     uint32
	MipLevels  uint32
	Format     uint32 // DXGI format
	DataOffset uint32 // Offset to first mip level
	DataSize   uint32 // Size of the full mip chain
}

// ParseDDS reads a DDS header and resolves the texture's DXGI format.
// Legacy FourCC headers are mapped onto their DX10 equivalents.
func ParseDDS(r io.Reader) (*DDSInfo, error) {
	var header DDSHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	if header.Magic != DDS_MAGIC {
		return nil, fmt.Errorf("invalid DDS magic: 0x%08x", header.Magic)
	}

	info := &DDSInfo{
		Width:     header.Width,
		Height:    header.Height,
		MipLevels: header.MipMapCount,
	}

	if info.MipLevels == 0 {
		info.MipLevels = 1
	}

	// Check for DX10 extended header
	fourCC := string(header.PixelFormat.FourCC[:])
	if fourCC == "DX10" {
		var dx10 DDSDX10Header
		if err := binary.Read(r, binary.LittleEndian, &dx10); err != nil {
			return nil, fmt.Errorf("read DX10 header: %w", err)
		}
		info.Format = dx10.DXGIFormat
		info.DataOffset = 128 + 20 // DDS header + DX10 header
	} else {
		// Legacy format
		info.DataOffset = 128
		switch fourCC {
		case "DXT1":
			info.Format = DXGI_FORMAT_BC1_UNORM
		case "DXT3":
			info.Format = DXGI_FORMAT_BC2_UNORM
		case "DXT5":
			info.Format = DXGI_FORMAT_BC3_UNORM
		case "ATI1", "BC4U":
			info.Format = DXGI_FORMAT_BC4_UNORM
		case "ATI2", "BC5U":
			info.Format = DXGI_FORMAT_BC5_UNORM
		default:
			return nil, fmt.Errorf("unsupported fourCC: %s", fourCC)
		}
	}

	if !IsBlockCompressed(info.Format) {
		return nil, fmt.Errorf("unsupported DXGI format: %s", FormatName(info.Format))
	}

	info.DataSize = ChainSize(info.Width, info.Height, info.MipLevels, info.Format)

	return info, nil
}

// LoadDDS parses a DDS container and returns a sampler over its mip chain.
func LoadDDS(data []byte) (*Sampler, error) {
	if len(data) < 128 {
		return nil, fmt.Errorf("file too small for DDS header: %d bytes", len(data))
	}

	info, err := ParseDDS(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	if uint32(len(data)) < info.DataOffset+info.DataSize {
		return nil, fmt.Errorf("truncated DDS data: have %d bytes, need %d",
			len(data), info.DataOffset+info.DataSize)
	}

	return NewSampler(data[info.DataOffset:info.DataOffset+info.DataSize],
		info.Width, info.Height, info.MipLevels, info.Format)
}
