// Package raster overwrites rectangular regions of decoded images.
package raster

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/modernice/pngfill/color"
	"github.com/modernice/pngfill/rect"
)

// ErrOutOfBounds is returned when the start corner of a rectangle lies
// outside of the image.
var ErrOutOfBounds = errors.New("rectangle out of bounds")

// Fill overwrites the red, green and blue channels of every pixel of img that
// lies within r with c. Alpha channels are left untouched. Coordinates are
// relative to img.Bounds().Min.
//
// The bottom and right edges of r are clamped to the image. The top-left
// corner is not: Fill returns ErrOutOfBounds if it is negative or lies beyond
// the clamped bottom-right corner.
func Fill(img *image.NRGBA, r rect.Rect, c color.RGB) error {
	b := img.Bounds()
	bottom := math.Min(r.Bottom, float64(b.Dy()-1))
	right := math.Min(r.Right, float64(b.Dx()-1))

	if r.Top < 0 || r.Top > bottom || r.Left < 0 || r.Left > right {
		return fmt.Errorf("fill (%v, %v) to (%v, %v) in %dx%d image: %w", r.Left, r.Top, r.Right, r.Bottom, b.Dx(), b.Dy(), ErrOutOfBounds)
	}

	x0, x1 := int(math.Ceil(r.Left)), int(math.Floor(right))
	y0, y1 := int(math.Ceil(r.Top)), int(math.Floor(bottom))

	for y := y0; y <= y1; y++ {
		row := img.Pix[img.PixOffset(b.Min.X+x0, b.Min.Y+y):]
		for i := 0; i <= (x1-x0)*4; i += 4 {
			row[i] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
		}
	}

	return nil
}
