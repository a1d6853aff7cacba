package imggen

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
)

// ColoredRectangle creates a rectangle with the given dimensions and color.
func ColoredRectangle(width, height int, c color.Color) (*image.NRGBA, *bytes.Buffer) {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, c)
		}
	}
	return img, Encode(img)
}

// Pattern creates an image with the given dimensions where every pixel
// differs from its neighbours, including in the alpha channel. Pattern always
// returns the same pixels for the same dimensions.
func Pattern(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x),
				G: uint8(y),
				B: uint8(x + y),
				A: uint8(128 + (x*7+y*3)%128),
			})
		}
	}
	return img
}

// PatternPNG returns Pattern(width, height) and its PNG encoding.
func PatternPNG(width, height int) (*image.NRGBA, *bytes.Buffer) {
	img := Pattern(width, height)
	return img, Encode(img)
}

// Encode encodes img as a PNG.
func Encode(img image.Image) *bytes.Buffer {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(fmt.Errorf("encode png: %w", err))
	}
	return &buf
}
