// Package codec decodes images into editable rasters and encodes them again.
package codec

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/disintegration/imaging"
)

// ErrInvalidImage is returned when data cannot be decoded as an image.
var ErrInvalidImage = errors.New("invalid image")

// Decode decodes an image from r and returns it as a non-premultiplied RGBA
// raster together with the format name reported by image.Decode. The returned
// raster is always a fresh copy whose bounds start at (0, 0).
func Decode(r io.Reader) (*image.NRGBA, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}
	return imaging.Clone(img), format, nil
}
