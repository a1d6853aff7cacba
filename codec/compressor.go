package codec

import (
	"fmt"
	"image"
	"image/png"
	"io"
)

// PNGCompressor encodes images as PNGs with a fixed compression level.
//
//	var img image.Image
//	c := PNGCompressor(png.BestCompression)
//	err := c.Encode(w, img)
type PNGCompressor png.CompressionLevel

// CompressionLevel returns the png.CompressionLevel.
func (comp PNGCompressor) CompressionLevel() png.CompressionLevel {
	return png.CompressionLevel(comp)
}

// Encode encodes img as a PNG with comp.CompressionLevel() as the compression
// level and writes the result into w.
func (comp PNGCompressor) Encode(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: comp.CompressionLevel()}
	if err := enc.Encode(w, img); err != nil {
		return fmt.Errorf("encode as png with compression level %d: %w", comp.CompressionLevel(), err)
	}
	return nil
}
