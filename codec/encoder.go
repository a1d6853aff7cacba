package codec

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"sync"
)

var (
	// ErrUnknownFormat is returned when trying to encode an image whose format
	// is not registered in an Encoder.
	ErrUnknownFormat = errors.New("unknown format")
)

// DefaultFormat is the format used when no format is specified.
const DefaultFormat = "png"

// FormatEncoder encodes images of a specific format (JPEG, PNG etc.).
type FormatEncoder interface {
	// Encode encodes the provided Image and writes the result into the
	// specified Writer.
	Encode(io.Writer, image.Image) error
}

// Func allows functions to be used as FormatEncoders.
type Func func(io.Writer, image.Image) error

// Encode returns fn(w, img).
func (fn Func) Encode(w io.Writer, img image.Image) error {
	return fn(w, img)
}

// Encoder is a multi-format image encoder.
type Encoder interface {
	// Encode encodes an image using the appropriate FormatEncoder for the
	// specified format.
	Encode(io.Writer, image.Image, string) error

	// ContentType returns the MIME type of images encoded in the given format.
	ContentType(string) string
}

type encoder struct {
	mux      sync.RWMutex
	encoders map[string]FormatEncoder
	types    map[string]string
}

// EncoderOption is an Encoder option.
type EncoderOption func(*encoder)

// WithFormat returns an EncoderOption that registers a FormatEncoder for the
// given image format and MIME type.
//
// Format must be the same as would be returned by image.Decode.
func WithFormat(format, contentType string, enc FormatEncoder) EncoderOption {
	return func(e *encoder) {
		e.encoders[format] = enc
		e.types[format] = contentType
	}
}

// WithPNGCompression returns an EncoderOption that replaces the PNG encoder
// with one that uses the given compression level.
func WithPNGCompression(level png.CompressionLevel) EncoderOption {
	return WithFormat("png", "image/png", PNGCompressor(level))
}

// NewEncoder returns a new Encoder with default support for PNGs, JPEGs and
// GIFs. Requesting an empty format selects the PNG encoder.
func NewEncoder(opts ...EncoderOption) Encoder {
	return newEncoder(opts...)
}

func newEncoder(opts ...EncoderOption) *encoder {
	enc := encoder{
		encoders: map[string]FormatEncoder{
			"png":  Func(PNGEncoder),
			"jpeg": Func(JPEGEncoder),
			"gif":  Func(GIFEncoder),
		},
		types: map[string]string{
			"png":  "image/png",
			"jpeg": "image/jpeg",
			"gif":  "image/gif",
		},
	}
	for _, opt := range opts {
		opt(&enc)
	}
	return &enc
}

// JPEGEncoder encodes images using jpeg.Encode with maximum quality.
func JPEGEncoder(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
}

// GIFEncoder encodes images using gif.Encode with default options.
func GIFEncoder(w io.Writer, img image.Image) error {
	return gif.Encode(w, img, nil)
}

// PNGEncoder encodes images using png.Encode with the default compression.
func PNGEncoder(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// Encode encodes the provided Image using the encoder registered for the
// specified format. Encode returns ErrUnknownFormat if no encoder is
// registered for the format.
func (enc *encoder) Encode(w io.Writer, img image.Image, format string) error {
	fenc, err := enc.get(format)
	if err != nil {
		return fmt.Errorf("get %q encoder: %w", format, err)
	}

	if err := fenc.Encode(w, img); err != nil {
		return fmt.Errorf("%q encoder: %w", format, err)
	}

	return nil
}

func (enc *encoder) ContentType(format string) string {
	enc.mux.RLock()
	defer enc.mux.RUnlock()
	if t, ok := enc.types[normalizeFormat(format)]; ok {
		return t
	}
	return "application/octet-stream"
}

func (enc *encoder) get(format string) (FormatEncoder, error) {
	enc.mux.RLock()
	defer enc.mux.RUnlock()
	if fenc, ok := enc.encoders[normalizeFormat(format)]; ok {
		return fenc, nil
	}
	return nil, ErrUnknownFormat
}

func normalizeFormat(format string) string {
	switch format {
	case "":
		return DefaultFormat
	case "jpg":
		return "jpeg"
	}
	return format
}
