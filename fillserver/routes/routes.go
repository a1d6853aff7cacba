// Package routes configures which routes a fill server installs and which
// middleware wraps them.
package routes

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// All matches every route.
var All = route("*", "*")

// Fill routes
var (
	FillImage  = route("POST", "/")
	FillStored = route("POST", "/disks/{Disk}/fill")
)

// Route is an HTTP method and a chi route pattern.
type Route struct {
	Method string
	Path   string
}

func (r Route) String() string {
	return fmt.Sprintf("%s %s", r.Method, r.Path)
}

// Routes is the route configuration of a server.
type Routes struct {
	disabled   []Route
	middleware map[Route][]func(http.Handler) http.Handler
}

// Option is a Routes option.
type Option func(*Routes)

// Disable returns an Option that disables the given routes.
func Disable(routes ...Route) Option {
	return func(r *Routes) {
		r.disabled = append(r.disabled, routes...)
	}
}

// Middleware returns an Option that wraps the handler of route with
// middleware. Middleware registered for All wraps every route.
func Middleware(route Route, middleware ...func(http.Handler) http.Handler) Option {
	return func(r *Routes) {
		r.middleware[route] = append(r.middleware[route], middleware...)
	}
}

// New returns the Routes, configured by opts.
func New(opts ...Option) Routes {
	r := Routes{middleware: make(map[Route][]func(http.Handler) http.Handler)}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r Routes) Disabled(route Route) bool {
	for _, d := range r.disabled {
		if route == d || d == All {
			return true
		}
	}
	return false
}

func (r Routes) Middleware(route Route) []func(http.Handler) http.Handler {
	out := make([]func(http.Handler) http.Handler, 0, len(r.middleware[All])+len(r.middleware[route]))
	out = append(out, r.middleware[All]...)
	if route != All {
		out = append(out, r.middleware[route]...)
	}
	return out
}

// Install registers h for route on router unless route is disabled.
func (r Routes) Install(router chi.Router, route Route, h http.Handler) {
	if !r.Disabled(route) {
		router.With(r.Middleware(route)...).Method(route.Method, route.Path, h)
	}
}

func route(method, path string) Route {
	return Route{Method: method, Path: path}
}
