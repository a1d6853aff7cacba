package pngfill

import (
	"fmt"
	"io"
	"os"

	"github.com/modernice/pngfill/codec"
	"github.com/modernice/pngfill/color"
	"github.com/modernice/pngfill/rect"
	"github.com/modernice/pngfill/storage"
	"github.com/sirupsen/logrus"
)

// Output selects how a filled image is delivered.
type Output string

const (
	// OutputStream returns the encoded image as an io.ReadCloser. Unknown
	// Output values behave like OutputStream.
	OutputStream = Output("")

	// OutputBuffer returns the encoded image as a byte slice.
	OutputBuffer = Output("buffer")

	// OutputFile writes the encoded image to Options.Path.
	OutputFile = Output("file")

	// OutputStorage writes the encoded image to Options.Path on the storage
	// disk Options.Disk of the Filler's Storage.
	OutputStorage = Output("storage")
)

// Options configure a single fill.
type Options struct {
	// Rect is the rectangle to fill. Required.
	Rect *rect.Spec `json:"rect"`

	// Output selects how the result is delivered. Defaults to OutputStream.
	Output Output `json:"output,omitempty"`

	// Color is a color name or hex color. Defaults to black.
	Color string `json:"color,omitempty"`

	// Path is the destination of OutputFile and OutputStorage.
	Path string `json:"path,omitempty"`

	// Disk is the storage disk of OutputStorage.
	Disk string `json:"disk,omitempty"`

	// Format is the encoding of the result. Defaults to "png".
	Format string `json:"format,omitempty"`
}

func checkOptions(opts *Options) error {
	if opts == nil {
		return fmt.Errorf("%w: missing options", ErrArgument)
	}
	if opts.Rect == nil {
		return fmt.Errorf("%w: missing rect", ErrArgument)
	}
	return nil
}

func (opts Options) format() string {
	if opts.Format == "" {
		return codec.DefaultFormat
	}
	return opts.Format
}

// Option is a Filler option.
type Option func(*Filler)

// WithLogger returns an Option that sets the logger of a Filler. By default a
// Filler does not log.
func WithLogger(l logrus.FieldLogger) Option {
	return func(f *Filler) {
		f.logger = l
	}
}

// WithEncoder returns an Option that sets the Encoder used to encode filled
// images. Defaults to codec.NewEncoder().
func WithEncoder(enc codec.Encoder) Option {
	return func(f *Filler) {
		f.encoder = enc
	}
}

// WithColorParser returns an Option that sets the Parser used to resolve
// colors. Defaults to color.Default.
func WithColorParser(p color.Parser) Option {
	return func(f *Filler) {
		f.colors = p
	}
}

// WithStorage returns an Option that sets the Storage used by OutputStorage.
func WithStorage(s storage.Storage) Option {
	return func(f *Filler) {
		f.storage = s
	}
}

// WithFileMode returns an Option that sets the permissions of files created
// by OutputFile. Defaults to 0644.
func WithFileMode(mode os.FileMode) Option {
	return func(f *Filler) {
		f.fileMode = mode
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
