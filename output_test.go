package pngfill_test

import (
	"bytes"
	"context"
	"errors"
	stdimage "image"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/modernice/pngfill"
	"github.com/modernice/pngfill/codec"
	"github.com/modernice/pngfill/internal/imggen"
	"github.com/modernice/pngfill/storage"
	"github.com/modernice/pngfill/storage/mock_storage"
)

func bufferResult(t *testing.T, src []byte) []byte {
	t.Helper()
	res, err := pngfill.Run(context.Background(), pngfill.Bytes(src), &pngfill.Options{
		Rect:   exampleSpec(),
		Output: pngfill.OutputBuffer,
	})
	if err != nil {
		t.Fatalf("Run failed with %q", err)
	}
	return res.Buffer
}

func TestFill_outputFile(t *testing.T) {
	_, buf := imggen.PatternPNG(exampleWidth, exampleHeight)
	want := bufferResult(t, buf.Bytes())

	path := filepath.Join(t.TempDir(), "out.png")
	res, err := fill(t, pngfill.Bytes(buf.Bytes()), &pngfill.Options{
		Rect:   exampleSpec(),
		Output: pngfill.OutputFile,
		Path:   path,
	})
	if err != nil {
		t.Fatalf("fill failed with %q", err)
	}

	if res.Buffer != nil || res.Stream != nil {
		t.Fatalf("file output should not return data; got %+v", res)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output file: %v", err)
	}

	if !bytes.Equal(b, want) {
		t.Fatal("written file should equal the buffer output")
	}
}

func TestFill_outputFile_fromFile(t *testing.T) {
	dir := t.TempDir()
	_, buf := imggen.PatternPNG(exampleWidth, exampleHeight)
	want := bufferResult(t, buf.Bytes())

	in := filepath.Join(dir, "in.png")
	if err := os.WriteFile(in, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write source file: %v", err)
	}

	out := filepath.Join(dir, "out.png")
	if _, err := fill(t, pngfill.File(in), &pngfill.Options{
		Rect:   exampleSpec(),
		Output: pngfill.OutputFile,
		Path:   out,
	}); err != nil {
		t.Fatalf("fill failed with %q", err)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output file: %v", err)
	}

	if !bytes.Equal(b, want) {
		t.Fatal("written file should equal the buffer output")
	}
}

func TestFill_outputFile_missingPath(t *testing.T) {
	_, buf := imggen.PatternPNG(exampleWidth, exampleHeight)

	res, err := fill(t, pngfill.Reader(buf), &pngfill.Options{
		Rect:   exampleSpec(),
		Output: pngfill.OutputFile,
	})
	if !errors.Is(err, pngfill.ErrArgument) {
		t.Fatalf("fill should fail with %q; got %v", pngfill.ErrArgument, err)
	}

	if res.Buffer != nil || res.Stream != nil || res.ContentType != "" {
		t.Fatalf("Result should be empty on error; got %+v", res)
	}
}

func TestFill_outputFile_encodeErrorKeepsFile(t *testing.T) {
	_, buf := imggen.PatternPNG(10, 10)

	path := filepath.Join(t.TempDir(), "out.png")
	if err := os.WriteFile(path, []byte("existing image"), 0644); err != nil {
		t.Fatalf("write existing file: %v", err)
	}

	_, err := fill(t, pngfill.Reader(buf), &pngfill.Options{
		Rect:   &rectSmall,
		Output: pngfill.OutputFile,
		Path:   path,
		Format: "bmp",
	})
	if !errors.Is(err, pngfill.ErrIO) || !errors.Is(err, codec.ErrUnknownFormat) {
		t.Fatalf("fill should fail with %q; got %v", codec.ErrUnknownFormat, err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read existing file: %v", err)
	}

	if string(b) != "existing image" {
		t.Fatalf("existing file should not be modified by a failed fill; contains %q", b)
	}
}

func TestFill_outputFile_writeError(t *testing.T) {
	_, buf := imggen.PatternPNG(exampleWidth, exampleHeight)

	_, err := fill(t, pngfill.Reader(buf), &pngfill.Options{
		Rect:   exampleSpec(),
		Output: pngfill.OutputFile,
		Path:   filepath.Join(t.TempDir(), "missing", "out.png"),
	})
	if !errors.Is(err, pngfill.ErrIO) {
		t.Fatalf("fill should fail with %q; got %v", pngfill.ErrIO, err)
	}
}

func TestFill_outputStream(t *testing.T) {
	_, buf := imggen.PatternPNG(exampleWidth, exampleHeight)
	want := bufferResult(t, buf.Bytes())

	for _, output := range []pngfill.Output{pngfill.OutputStream, "unknown"} {
		t.Run(string(output), func(t *testing.T) {
			res, err := fill(t, pngfill.Bytes(buf.Bytes()), &pngfill.Options{
				Rect:   exampleSpec(),
				Output: output,
			})
			if err != nil {
				t.Fatalf("fill failed with %q", err)
			}

			if res.Stream == nil {
				t.Fatal("stream output should return a Stream")
			}
			defer res.Stream.Close()

			if b := readAll(t, res.Stream); !bytes.Equal(b, want) {
				t.Fatal("streamed image should equal the buffer output")
			}
		})
	}
}

func TestFill_outputStream_encodeError(t *testing.T) {
	_, buf := imggen.PatternPNG(10, 10)

	res, err := fill(t, pngfill.Reader(buf), &pngfill.Options{
		Rect:   &rectSmall,
		Format: "bmp",
	})
	if err != nil {
		t.Fatalf("fill failed with %q", err)
	}
	defer res.Stream.Close()

	buf.Reset()
	if _, err := buf.ReadFrom(res.Stream); !errors.Is(err, codec.ErrUnknownFormat) {
		t.Fatalf("reading the stream should fail with %q; got %v", codec.ErrUnknownFormat, err)
	}
}

func TestFill_outputBuffer_format(t *testing.T) {
	_, buf := imggen.PatternPNG(exampleWidth, exampleHeight)

	res, err := fill(t, pngfill.Reader(buf), &pngfill.Options{
		Rect:   exampleSpec(),
		Output: pngfill.OutputBuffer,
		Format: "jpeg",
	})
	if err != nil {
		t.Fatalf("fill failed with %q", err)
	}

	if res.ContentType != "image/jpeg" {
		t.Fatalf("ContentType should be %q; is %q", "image/jpeg", res.ContentType)
	}

	if _, format, err := stdimage.Decode(bytes.NewReader(res.Buffer)); err != nil || format != "jpeg" {
		t.Fatalf("result should be a jpeg; got format %q (%v)", format, err)
	}
}

func TestFill_outputBuffer_unknownFormat(t *testing.T) {
	_, buf := imggen.PatternPNG(10, 10)

	_, err := fill(t, pngfill.Reader(buf), &pngfill.Options{
		Rect:   &rectSmall,
		Output: pngfill.OutputBuffer,
		Format: "bmp",
	})
	if !errors.Is(err, pngfill.ErrIO) || !errors.Is(err, codec.ErrUnknownFormat) {
		t.Fatalf("fill should fail with %q; got %v", codec.ErrUnknownFormat, err)
	}
}

func TestFill_outputStorage(t *testing.T) {
	ctx := context.Background()
	_, buf := imggen.PatternPNG(exampleWidth, exampleHeight)
	want := bufferResult(t, buf.Bytes())

	disk := storage.MemoryDisk()
	if err := disk.Put(ctx, "/in.png", buf.Bytes()); err != nil {
		t.Fatalf("put source image: %v", err)
	}
	s := storage.Disks{"images": disk}

	filler := pngfill.New(pngfill.WithStorage(s))
	if _, err := filler.Run(ctx, pngfill.Stored(s, storage.Location{Disk: "images", Path: "/in.png"}), &pngfill.Options{
		Rect:   exampleSpec(),
		Output: pngfill.OutputStorage,
		Disk:   "images",
		Path:   "/out.png",
	}); err != nil {
		t.Fatalf("Run failed with %q", err)
	}

	b, err := disk.Get(ctx, "/out.png")
	if err != nil {
		t.Fatalf("get filled image: %v", err)
	}

	if !bytes.Equal(b, want) {
		t.Fatal("stored image should equal the buffer output")
	}
}

func TestFill_outputStorage_putError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, buf := imggen.PatternPNG(10, 10)

	disk := mock_storage.NewMockDisk(ctrl)
	mockError := errors.New("mock error")
	disk.EXPECT().Put(gomock.Any(), "/out.png", gomock.Any()).Return(mockError)

	filler := pngfill.New(pngfill.WithStorage(storage.Disks{"images": disk}))
	_, err := filler.Run(context.Background(), pngfill.Reader(buf), &pngfill.Options{
		Rect:   &rectSmall,
		Output: pngfill.OutputStorage,
		Disk:   "images",
		Path:   "/out.png",
	})
	if !errors.Is(err, pngfill.ErrIO) || !errors.Is(err, mockError) {
		t.Fatalf("Run should fail with %q; got %v", mockError, err)
	}
}

func TestFill_outputStorage_unconfigured(t *testing.T) {
	_, buf := imggen.PatternPNG(10, 10)
	src := pngfill.Bytes(buf.Bytes())

	if _, err := pngfill.Run(context.Background(), src, &pngfill.Options{
		Rect:   &rectSmall,
		Output: pngfill.OutputStorage,
		Disk:   "images",
		Path:   "/out.png",
	}); !errors.Is(err, pngfill.ErrArgument) {
		t.Fatalf("Run should fail with %q without a Storage; got %v", pngfill.ErrArgument, err)
	}

	filler := pngfill.New(pngfill.WithStorage(storage.Disks{}))
	if _, err := filler.Run(context.Background(), src, &pngfill.Options{
		Rect:   &rectSmall,
		Output: pngfill.OutputStorage,
		Path:   "/out.png",
	}); !errors.Is(err, pngfill.ErrArgument) || !errors.Is(err, storage.ErrIncompleteLocation) {
		t.Fatalf("Run should fail with %q without a disk; got %v", storage.ErrIncompleteLocation, err)
	}

	if _, err := filler.Run(context.Background(), src, &pngfill.Options{
		Rect:   &rectSmall,
		Output: pngfill.OutputStorage,
		Disk:   "images",
		Path:   "/out.png",
	}); !errors.Is(err, storage.ErrUnconfiguredDisk) {
		t.Fatalf("Run should fail with %q for an unconfigured disk; got %v", storage.ErrUnconfiguredDisk, err)
	}
}

func TestStored_fileNotFound(t *testing.T) {
	s := storage.Disks{"images": storage.MemoryDisk()}

	_, err := pngfill.Run(context.Background(), pngfill.Stored(s, storage.Location{Disk: "images", Path: "/missing.png"}), &pngfill.Options{Rect: &rectSmall})
	if !errors.Is(err, pngfill.ErrIO) || !errors.Is(err, storage.ErrFileNotFound) {
		t.Fatalf("Run should fail with %q; got %v", storage.ErrFileNotFound, err)
	}
}
