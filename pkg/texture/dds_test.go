package texture

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestParseDDSWithDX10Header(t *testing.T) {
	meta := &TextureMetadata{
		Width:       8,
		Height:      8,
		MipLevels:   1,
		DXGIFormat:  DXGI_FORMAT_BC7_UNORM,
		RawFileSize: 4 * 16,
		ArraySize:   1,
	}
	raw := make([]byte, meta.RawFileSize)

	ddsData, err := ConvertRawBCToDDS(raw, meta)
	if err != nil {
		t.Fatalf("Failed to build DDS: %v", err)
	}

	info, err := ParseDDS(bytes.NewReader(ddsData))
	if err != nil {
		t.Fatalf("Failed to parse DDS: %v", err)
	}

	if info.Width != 8 || info.Height != 8 {
		t.Errorf("Expected 8x8, got %dx%d", info.Width, info.Height)
	}
	if info.Format != DXGI_FORMAT_BC7_UNORM {
		t.Errorf("Expected BC7_UNORM, got %s", FormatName(info.Format))
	}
	if info.DataOffset != 148 {
		t.Errorf("Expected data offset 148, got %d", info.DataOffset)
	}
	if info.DataSize != 4*16 {
		t.Errorf("Expected data size %d, got %d", 4*16, info.DataSize)
	}
}

// legacyDDSHeader builds a 128-byte pre-DX10 header with the given FourCC.
func legacyDDSHeader(fourCC string, width, height uint32) []byte {
	header := make([]byte, 128)
	binary.LittleEndian.PutUint32(header[0:4], DDS_MAGIC)
	binary.LittleEndian.PutUint32(header[4:8], DDS_HEADER_SIZE)
	binary.LittleEndian.PutUint32(header[12:16], height)
	binary.LittleEndian.PutUint32(header[16:20], width)
	binary.LittleEndian.PutUint32(header[76:80], DDS_PIXELFORMAT_SIZE)
	binary.LittleEndian.PutUint32(header[80:84], DDS_FOURCC)
	copy(header[84:88], fourCC)
	return header
}

func TestParseDDSLegacyFourCC(t *testing.T) {
	tests := []struct {
		fourCC string
		format uint32
	}{
		{"DXT1", DXGI_FORMAT_BC1_UNORM},
		{"DXT3", DXGI_FORMAT_BC2_UNORM},
		{"DXT5", DXGI_FORMAT_BC3_UNORM},
		{"ATI1", DXGI_FORMAT_BC4_UNORM},
		{"BC4U", DXGI_FORMAT_BC4_UNORM},
		{"ATI2", DXGI_FORMAT_BC5_UNORM},
		{"BC5U", DXGI_FORMAT_BC5_UNORM},
	}

	for _, tt := range tests {
		header := legacyDDSHeader(tt.fourCC, 4, 4)
		info, err := ParseDDS(bytes.NewReader(header))
		if err != nil {
			t.Errorf("%s: %v", tt.fourCC, err)
			continue
		}
		if info.Format != tt.format {
			t.Errorf("%s: expected %s, got %s",
				tt.fourCC, FormatName(tt.format), FormatName(info.Format))
		}
		if info.DataOffset != 128 {
			t.Errorf("%s: expected data offset 128, got %d", tt.fourCC, info.DataOffset)
		}
	}
}

func TestParseDDSRejectsBadInput(t *testing.T) {
	// Wrong magic
	header := legacyDDSHeader("DXT1", 4, 4)
	binary.LittleEndian.PutUint32(header[0:4], 0xDEADBEEF)
	if _, err := ParseDDS(bytes.NewReader(header)); err == nil {
		t.Error("Expected error for bad magic, got nil")
	}

	// Unknown FourCC
	header = legacyDDSHeader("XXXX", 4, 4)
	if _, err := ParseDDS(bytes.NewReader(header)); err == nil {
		t.Error("Expected error for unknown fourCC, got nil")
	}
}

func TestLoadDDS(t *testing.T) {
	header := legacyDDSHeader("DXT1", 8, 4)
	data := append(header, whiteBC1Block...)
	data = append(data, blackBC1Block...)

	s, err := LoadDDS(data)
	if err != nil {
		t.Fatalf("Failed to load DDS: %v", err)
	}

	c, err := s.PixelAt(2, 2, 0)
	if err != nil {
		t.Fatalf("PixelAt: %v", err)
	}
	if c.R != 1 || c.A != 1 {
		t.Errorf("Expected opaque white, got %v", c)
	}

	c, err = s.PixelAt(6, 1, 0)
	if err != nil {
		t.Fatalf("PixelAt: %v", err)
	}
	if c.R != 0 {
		t.Errorf("Expected black, got %v", c)
	}
}

func TestLoadDDSTruncated(t *testing.T) {
	header := legacyDDSHeader("DXT1", 8, 8)
	// 8x8 needs 4 blocks; provide only 1
	data := append(header, whiteBC1Block...)

	if _, err := LoadDDS(data); err == nil {
		t.Error("Expected error for truncated data, got nil")
	}
}
