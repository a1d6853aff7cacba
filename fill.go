// Package pngfill fills rectangular regions of images with a solid color.
//
//	err := pngfill.Fill(ctx, pngfill.File("in.png"), &pngfill.Options{
//		Rect:   &rect.Spec{Top: rect.Value(100), Left: rect.Value(200), Width: rect.Value(200), Height: rect.Value(100)},
//		Output: pngfill.OutputFile,
//		Path:   "out.png",
//	}, func(res pngfill.Result, err error) {
//		// ...
//	})
//
// Fill validates its arguments before starting any work and returns an
// ErrArgument error if they are incomplete; the callback is not called in
// that case. All other failures are passed to the callback.
package pngfill

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/modernice/pngfill/codec"
	"github.com/modernice/pngfill/color"
	"github.com/modernice/pngfill/raster"
	"github.com/modernice/pngfill/rect"
	"github.com/modernice/pngfill/storage"
	"github.com/sirupsen/logrus"
)

// Result is the result of a fill. Depending on the Output, either Buffer or
// Stream is set, or neither for OutputFile and OutputStorage.
type Result struct {
	// Buffer is the encoded image (OutputBuffer).
	Buffer []byte

	// Stream streams the encoded image (OutputStream). Callers must read it
	// until EOF or close it.
	Stream io.ReadCloser

	// ContentType is the MIME type of the encoded image.
	ContentType string
}

// Filler fills rectangles of images and delivers the re-encoded results.
// A Filler is safe for concurrent use.
type Filler struct {
	encoder  codec.Encoder
	colors   color.Parser
	storage  storage.Storage
	logger   logrus.FieldLogger
	fileMode os.FileMode
}

// New returns a Filler, configured by opts.
func New(opts ...Option) *Filler {
	f := Filler{fileMode: 0644}
	for _, opt := range opts {
		opt(&f)
	}
	if f.encoder == nil {
		f.encoder = codec.NewEncoder()
	}
	if f.colors == nil {
		f.colors = color.Default
	}
	if f.logger == nil {
		f.logger = discardLogger()
	}
	return &f
}

var defaultFiller = New()

// Fill calls Fill on a Filler with default options.
func Fill(ctx context.Context, src Source, opts *Options, done func(Result, error)) error {
	return defaultFiller.Fill(ctx, src, opts, done)
}

// Run calls Run on a Filler with default options.
func Run(ctx context.Context, src Source, opts *Options) (Result, error) {
	return defaultFiller.Run(ctx, src, opts)
}

// Fill fills the rectangle opts.Rect of the image provided by src in the
// background and calls done exactly once with the Result or the error.
//
// Fill returns an ErrArgument error without calling done if src, opts,
// opts.Rect or done is nil.
func (f *Filler) Fill(ctx context.Context, src Source, opts *Options, done func(Result, error)) error {
	if done == nil {
		return fmt.Errorf("%w: missing callback", ErrArgument)
	}
	if err := checkArguments(src, opts); err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}

	o := copyOptions(*opts)
	go func() {
		done(f.run(ctx, src, o))
	}()

	return nil
}

// Run fills the rectangle opts.Rect of the image provided by src and returns
// the Result. Run checks its arguments the same way Fill does.
func (f *Filler) Run(ctx context.Context, src Source, opts *Options) (Result, error) {
	if err := checkArguments(src, opts); err != nil {
		return Result{}, err
	}

	if ctx == nil {
		ctx = context.Background()
	}

	return f.run(ctx, src, copyOptions(*opts))
}

func checkArguments(src Source, opts *Options) error {
	if src == nil {
		return fmt.Errorf("%w: missing source", ErrArgument)
	}
	return checkOptions(opts)
}

func copyOptions(opts Options) Options {
	spec := *opts.Rect
	opts.Rect = &spec
	return opts
}

func (f *Filler) run(ctx context.Context, src Source, opts Options) (Result, error) {
	start := time.Now()
	log := f.logger.WithFields(logrus.Fields{
		"fill":   uuid.New(),
		"output": opts.Output,
	})

	res, err := f.process(ctx, log, src, opts)
	if err != nil {
		log.WithError(err).Warn("Fill failed.")
		return Result{}, err
	}

	log.WithField("duration", time.Since(start)).Info("Fill done.")

	return res, nil
}

func (f *Filler) process(ctx context.Context, log logrus.FieldLogger, src Source, opts Options) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("fill canceled: %w", err)
	}

	log.Debug("Decoding source ...")
	img, err := decode(ctx, src)
	if err != nil {
		return Result{}, err
	}

	r, ok := rect.Normalize(*opts.Rect)
	if !ok {
		return Result{}, fmt.Errorf("%w: cannot resolve coordinates of %s", ErrRect, describe(*opts.Rect))
	}

	c, err := color.Resolve(f.colors, opts.Color)
	if err != nil {
		return Result{}, fmt.Errorf("%w: resolve color: %w", ErrArgument, err)
	}

	log.WithFields(logrus.Fields{"rect": r, "color": c}).Debug("Filling rectangle ...")
	if err := raster.Fill(img, r, c); err != nil {
		return Result{}, err
	}

	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("fill canceled: %w", err)
	}

	log.Debug("Delivering result ...")
	return f.deliver(ctx, img, opts)
}

func decode(ctx context.Context, src Source) (*image.NRGBA, error) {
	r, err := src.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: open source: %w", ErrIO, err)
	}
	defer r.Close()

	img, _, err := codec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return img, nil
}

func describe(spec rect.Spec) string {
	field := func(v *float64) string {
		if v == nil {
			return "-"
		}
		return fmt.Sprint(*v)
	}
	return fmt.Sprintf(
		"{top: %s, left: %s, bottom: %s, right: %s, width: %s, height: %s}",
		field(spec.Top), field(spec.Left), field(spec.Bottom), field(spec.Right), field(spec.Width), field(spec.Height),
	)
}
