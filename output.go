package pngfill

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/modernice/pngfill/storage"
)

func (f *Filler) deliver(ctx context.Context, img image.Image, opts Options) (Result, error) {
	format := opts.format()
	res := Result{ContentType: f.encoder.ContentType(format)}

	switch opts.Output {
	case OutputFile:
		if opts.Path == "" {
			return Result{}, fmt.Errorf("%w: missing output path", ErrArgument)
		}
		b, err := f.encode(img, format)
		if err != nil {
			return Result{}, err
		}
		if err := os.WriteFile(opts.Path, b, f.fileMode); err != nil {
			return Result{}, fmt.Errorf("%w: write %q: %w", ErrIO, opts.Path, err)
		}
		return res, nil

	case OutputBuffer:
		b, err := f.encode(img, format)
		if err != nil {
			return Result{}, err
		}
		res.Buffer = b
		return res, nil

	case OutputStorage:
		if f.storage == nil {
			return Result{}, fmt.Errorf("%w: no storage configured", ErrArgument)
		}
		loc := storage.Location{Disk: opts.Disk, Path: opts.Path}
		if err := loc.Validate(); err != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrArgument, err)
		}
		b, err := f.encode(img, format)
		if err != nil {
			return Result{}, err
		}
		if err := storage.Write(ctx, f.storage, loc, b); err != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrIO, err)
		}
		return res, nil
	}

	pr, pw := io.Pipe()
	go func() {
		pw.CloseWithError(f.encoder.Encode(pw, img, format))
	}()
	res.Stream = pr

	return res, nil
}

func (f *Filler) encode(img image.Image, format string) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.encoder.Encode(&buf, img, format); err != nil {
		return nil, fmt.Errorf("%w: encode %q: %w", ErrIO, format, err)
	}
	return buf.Bytes(), nil
}
