// texpix - Per-pixel BC texture inspector
//
// Reads DDS files and raw BC payloads (with sidecar metadata), decoding
// individual pixels or whole mip levels without ever expanding blocks it
// was not asked about. Inputs may additionally be zstd-compressed; the
// payload header is detected and stripped transparently.
//
// Supported formats:
//   - BC1 (DXT1): RGB, 1-bit alpha
//   - BC3 (DXT5): RGBA
//   - BC4/BC5:    One- and two-channel
//   - BC6H:       HDR float, signed and unsigned
//   - BC7:        High-quality RGBA, all 8 modes
//
// Usage:
//
//	texpix info input.dds                   # Show texture info
//	texpix sample input.dds x y [mip]       # Decode one pixel
//	texpix decode input.dds output.png [mip]
//	texpix pack input.dds output.zst        # Compress to payload
package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strconv"

	"github.com/goopsie/bcpix/pkg/archive"
	"github.com/goopsie/bcpix/pkg/texture"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "info":
		if len(os.Args) != 3 {
			fmt.Fprintf(os.Stderr, "Usage: texpix info input.dds\n")
			os.Exit(1)
		}
		if err := showInfo(os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "sample":
		if len(os.Args) != 5 && len(os.Args) != 6 {
			fmt.Fprintf(os.Stderr, "Usage: texpix sample input.dds x y [mip]\n")
			os.Exit(1)
		}
		if err := samplePixel(os.Args[2], os.Args[3:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "decode":
		if len(os.Args) != 4 && len(os.Args) != 5 {
			fmt.Fprintf(os.Stderr, "Usage: texpix decode input.dds output.png [mip]\n")
			os.Exit(1)
		}
		mip := uint32(0)
		if len(os.Args) == 5 {
			v, err := strconv.ParseUint(os.Args[4], 10, 32)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: invalid mip %q\n", os.Args[4])
				os.Exit(1)
			}
			mip = uint32(v)
		}
		if err := decodeToPNG(os.Args[2], os.Args[3], mip); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Decoded %s → %s\n", os.Args[2], os.Args[3])

	case "pack":
		if len(os.Args) != 4 {
			fmt.Fprintf(os.Stderr, "Usage: texpix pack input.dds output.zst\n")
			os.Exit(1)
		}
		if err := packFile(os.Args[2], os.Args[3]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Packed %s → %s\n", os.Args[2], os.Args[3])

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("texpix - Per-pixel BC texture inspector")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  texpix info <input>                    # Show texture info")
	fmt.Println("  texpix sample <input> <x> <y> [mip]    # Decode one pixel")
	fmt.Println("  texpix decode <input> <out.png> [mip]  # Decode a mip level to PNG")
	fmt.Println("  texpix pack <input> <out.zst>          # Compress to payload")
	fmt.Println()
	fmt.Println("Inputs may be DDS files, raw BC payloads with a .meta sidecar,")
	fmt.Println("or zstd-compressed versions of either.")
}

// loadSampler opens a texture input of any supported shape. Raw payloads
// need a sidecar <input>.meta file carrying the 256-byte descriptor.
func loadSampler(path string) (*texture.Sampler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}

	data, err = archive.MaybeDecompress(data)
	if err != nil {
		return nil, err
	}

	if len(data) >= 4 && string(data[0:4]) == "DDS " {
		return texture.LoadDDS(data)
	}

	metaFile, err := os.Open(path + ".meta")
	if err != nil {
		return nil, fmt.Errorf("not a DDS file and no metadata sidecar: %w", err)
	}
	defer metaFile.Close()

	meta, err := texture.ParseMetadata(metaFile)
	if err != nil {
		return nil, err
	}

	return texture.NewSampler(data, meta.Width, meta.Height, meta.MipLevels, meta.DXGIFormat)
}

func showInfo(inputPath string) error {
	s, err := loadSampler(inputPath)
	if err != nil {
		return err
	}

	fmt.Printf("File:      %s\n", inputPath)
	fmt.Printf("Format:    %s\n", texture.FormatName(s.Format()))
	fmt.Printf("Size:      %dx%d\n", s.Width(), s.Height())
	fmt.Printf("Mips:      %d\n", s.MipLevels())
	fmt.Printf("Data size: %d bytes\n",
		texture.ChainSize(s.Width(), s.Height(), s.MipLevels(), s.Format()))
	return nil
}

func samplePixel(inputPath string, args []string) error {
	s, err := loadSampler(inputPath)
	if err != nil {
		return err
	}

	x, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid x %q", args[0])
	}
	y, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid y %q", args[1])
	}
	mip := uint64(0)
	if len(args) == 3 {
		mip, err = strconv.ParseUint(args[2], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid mip %q", args[2])
		}
	}

	c, err := s.PixelAt(uint32(x), uint32(y), uint32(mip))
	if err != nil {
		return err
	}

	fmt.Printf("(%d,%d) mip %d: %s  %s\n", x, y, mip, c, c.Hex())
	return nil
}

func decodeToPNG(inputPath, outputPath string, mip uint32) error {
	s, err := loadSampler(inputPath)
	if err != nil {
		return err
	}

	// BC6H carries HDR content; 16 bits per channel keeps some headroom
	var img image.Image
	switch s.Format() {
	case texture.DXGI_FORMAT_BC6H_UF16, texture.DXGI_FORMAT_BC6H_SF16:
		img, err = s.DecodeImage64(mip)
	default:
		img, err = s.DecodeImage(mip)
	}
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer outFile.Close()

	if err := png.Encode(outFile, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}

	return nil
}

func packFile(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}

	if archive.IsPayload(data) {
		return fmt.Errorf("%s is already compressed", inputPath)
	}

	compressed, err := archive.Compress(data)
	if err != nil {
		return fmt.Errorf("compress: %w", err)
	}

	if err := os.WriteFile(outputPath, compressed, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	fmt.Printf("Compressed %d → %d bytes (%.1f%%)\n",
		len(data), len(compressed), float64(len(compressed))*100/float64(len(data)))
	return nil
}
