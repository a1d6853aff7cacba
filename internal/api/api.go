// Package api maps fill errors to HTTP responses.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/render"
	"github.com/modernice/pngfill"
	"github.com/modernice/pngfill/codec"
	"github.com/modernice/pngfill/storage"
)

// Error kinds reported in the "kind" field of error responses.
const (
	KindInvalidRequest = "invalid_request"
	KindInvalidImage   = "invalid_image"
	KindNotFound       = "not_found"
	KindOutOfBounds    = "out_of_bounds"
	KindInternal       = "internal"
)

// RequestError is a malformed request. Its message is returned to the client.
type RequestError struct {
	Message string
	Err     error
}

// BadRequest returns a RequestError with a formatted message that wraps err.
func BadRequest(err error, format string, v ...any) error {
	return &RequestError{Message: fmt.Sprintf(format, v...), Err: err}
}

func (err *RequestError) Error() string {
	if err.Err == nil {
		return err.Message
	}
	return fmt.Sprintf("%s: %v", err.Message, err.Err)
}

func (err *RequestError) Unwrap() error {
	return err.Err
}

// Status returns the HTTP status code for err.
func Status(err error) int {
	switch Kind(err) {
	case KindInvalidRequest:
		return http.StatusBadRequest
	case KindInvalidImage:
		return http.StatusUnsupportedMediaType
	case KindNotFound:
		return http.StatusNotFound
	case KindOutOfBounds:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// Kind returns the error kind of err.
func Kind(err error) string {
	var reqErr *RequestError
	switch {
	case errors.As(err, &reqErr):
		return KindInvalidRequest
	case errors.Is(err, codec.ErrInvalidImage):
		return KindInvalidImage
	case errors.Is(err, storage.ErrFileNotFound), errors.Is(err, storage.ErrUnconfiguredDisk):
		return KindNotFound
	case errors.Is(err, pngfill.ErrBounds):
		return KindOutOfBounds
	case errors.Is(err, pngfill.ErrArgument), errors.Is(err, pngfill.ErrRect), errors.Is(err, codec.ErrUnknownFormat):
		return KindInvalidRequest
	}
	return KindInternal
}

// Error writes err as a JSON error response with the status returned by
// Status:
//
//	api.Error(w, r, fmt.Errorf("read image: %w", storage.ErrFileNotFound))
//	// 404 {"error": "read image: file not found", "kind": "not_found"}
//
// Internal errors are reported without their message.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	kind := Kind(err)
	msg := http.StatusText(http.StatusInternalServerError)
	if kind != KindInternal {
		msg = err.Error()
	}

	render.Status(r, Status(err))
	render.JSON(w, r, map[string]string{"error": msg, "kind": kind})
}

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

// Image writes an encoded image response.
func Image(w http.ResponseWriter, contentType string, b []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(b)))
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// Decode decodes the JSON request body in r into v. A malformed body is
// reported as a RequestError.
func Decode(r io.Reader, v any) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return BadRequest(err, "malformed JSON body")
	}
	return nil
}
