// Package fillserver serves image fills over HTTP.
package fillserver

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/modernice/pngfill"
	"github.com/modernice/pngfill/fillserver/routes"
	"github.com/modernice/pngfill/internal/api"
	"github.com/modernice/pngfill/rect"
	"github.com/modernice/pngfill/storage"
	"github.com/sirupsen/logrus"
)

// Server is the fill server.
type Server struct {
	router chi.Router

	filler  *pngfill.Filler
	storage storage.Storage
	logger  logrus.FieldLogger
	routes  []routes.Option
}

// Option is a server option.
type Option func(*Server)

// WithStorage returns an Option that enables filling images that are stored
// on the disks of s.
func WithStorage(s storage.Storage) Option {
	return func(srv *Server) {
		srv.storage = s
	}
}

// WithLogger returns an Option that logs every request to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(srv *Server) {
		srv.logger = l
	}
}

// WithRoutes returns an Option that disables routes or adds middleware to
// them.
//
//	srv := fillserver.New(filler, fillserver.WithRoutes(routes.Disable(routes.FillImage)))
func WithRoutes(opts ...routes.Option) Option {
	return func(srv *Server) {
		srv.routes = append(srv.routes, opts...)
	}
}

// New returns the fill server. The FillStored route is only installed when a
// Storage is configured:
//
//	filler := pngfill.New()
//	srv := fillserver.New(filler, fillserver.WithStorage(store))
//	http.ListenAndServe(":8000", srv)
func New(filler *pngfill.Filler, opts ...Option) *Server {
	s := Server{
		router: chi.NewRouter(),
		filler: filler,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.filler == nil {
		s.filler = pngfill.New()
	}
	s.init()
	return &s
}

func (s *Server) init() {
	if s.logger != nil {
		s.router.Use(s.logRequests)
	}

	r := routes.New(s.routes...)
	r.Install(s.router, routes.FillImage, http.HandlerFunc(s.fillImage))
	if s.storage != nil {
		r.Install(s.router, routes.FillStored, http.HandlerFunc(s.fillStored))
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   ww.Status(),
			"bytes":    ww.BytesWritten(),
			"duration": time.Since(start),
		}).Info("Request handled.")
	})
}

func (s *Server) fillImage(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("image")
	if err != nil {
		api.Error(w, r, api.BadRequest(err, "missing image"))
		return
	}
	defer file.Close()

	spec, err := parseRect(r)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	res, err := s.filler.Run(r.Context(), pngfill.Reader(file), &pngfill.Options{
		Rect:   &spec,
		Output: pngfill.OutputBuffer,
		Color:  r.FormValue("color"),
		Format: r.FormValue("format"),
	})
	if err != nil {
		api.Error(w, r, fmt.Errorf("fill image: %w", err))
		return
	}

	api.Image(w, res.ContentType, res.Buffer)
}

func parseRect(r *http.Request) (rect.Spec, error) {
	var spec rect.Spec
	fields := []struct {
		name string
		dst  **float64
	}{
		{"top", &spec.Top},
		{"left", &spec.Left},
		{"bottom", &spec.Bottom},
		{"right", &spec.Right},
		{"width", &spec.Width},
		{"height", &spec.Height},
	}

	for _, f := range fields {
		raw := r.FormValue(f.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return spec, api.BadRequest(err, "invalid %q coordinate %q", f.name, raw)
		}
		*f.dst = rect.Value(v)
	}

	return spec, nil
}

type storedFillRequest struct {
	Path   string     `json:"path"`
	Target string     `json:"target"`
	Rect   *rect.Spec `json:"rect"`
	Color  string     `json:"color"`
	Format string     `json:"format"`
}

// locations returns the source and target locations of the request. The
// target defaults to the source.
func (req storedFillRequest) locations(disk string) (src, target storage.Location) {
	src = storage.Location{Disk: disk, Path: req.Path}
	target = src
	if req.Target != "" {
		target.Path = req.Target
	}
	return
}

type storedFillResponse struct {
	storage.Location
	Size int `json:"size"`
}

func (s *Server) fillStored(w http.ResponseWriter, r *http.Request) {
	var req storedFillRequest
	if err := api.Decode(r.Body, &req); err != nil {
		api.Error(w, r, err)
		return
	}

	if req.Rect == nil {
		api.Error(w, r, api.BadRequest(nil, "missing rect"))
		return
	}

	src, target := req.locations(chi.URLParam(r, "Disk"))
	if err := src.Validate(); err != nil {
		api.Error(w, r, api.BadRequest(err, "invalid image location"))
		return
	}

	res, err := s.filler.Run(r.Context(), pngfill.Stored(s.storage, src), &pngfill.Options{
		Rect:   req.Rect,
		Output: pngfill.OutputBuffer,
		Color:  req.Color,
		Format: req.Format,
	})
	if err != nil {
		api.Error(w, r, fmt.Errorf("fill %s: %w", src, err))
		return
	}

	if err := storage.Write(r.Context(), s.storage, target, res.Buffer); err != nil {
		api.Error(w, r, fmt.Errorf("store filled image: %w", err))
		return
	}

	api.JSON(w, r, http.StatusCreated, storedFillResponse{
		Location: target,
		Size:     len(res.Buffer),
	})
}
