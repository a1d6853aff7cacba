package pngfill

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/modernice/pngfill/storage"
)

// Source provides the encoded image that is filled.
type Source interface {
	// Open opens the encoded image for reading.
	Open(context.Context) (io.ReadCloser, error)
}

// SourceFunc allows functions to be used as Sources.
type SourceFunc func(context.Context) (io.ReadCloser, error)

// Open returns fn(ctx).
func (fn SourceFunc) Open(ctx context.Context) (io.ReadCloser, error) {
	return fn(ctx)
}

// File returns a Source that reads the image file at path. File returns nil
// for an empty path.
func File(path string) Source {
	if path == "" {
		return nil
	}
	return SourceFunc(func(context.Context) (io.ReadCloser, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %q: %w", path, err)
		}
		return f, nil
	})
}

// Reader returns a Source that reads the image from r. The Source does not
// close r. Reader returns nil for a nil Reader.
func Reader(r io.Reader) Source {
	if r == nil {
		return nil
	}
	return SourceFunc(func(context.Context) (io.ReadCloser, error) {
		return io.NopCloser(r), nil
	})
}

// Bytes returns a Source that reads the image from b. Bytes returns nil for a
// nil slice.
func Bytes(b []byte) Source {
	if b == nil {
		return nil
	}
	return SourceFunc(func(context.Context) (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(b)), nil
	})
}

// Stored returns a Source that reads the image at loc from s. Stored returns
// nil for a nil Storage.
func Stored(s storage.Storage, loc storage.Location) Source {
	if s == nil {
		return nil
	}
	return SourceFunc(func(ctx context.Context) (io.ReadCloser, error) {
		b, err := storage.Read(ctx, s, loc)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(bytes.NewReader(b)), nil
	})
}
