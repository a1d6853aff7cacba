// Package color resolves color names and hex strings into RGB triples.
package color

//go:generate mockgen -source=color.go -destination=./mock_color/color.go

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var (
	// ErrInvalidColor is returned when a color string cannot be parsed.
	ErrInvalidColor = errors.New("invalid color")

	// Black is the color used when no color is specified.
	Black = RGB{}
)

// RGB is an opaque color.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Parser parses color strings.
type Parser interface {
	// Parse parses the provided color string into an RGB color.
	Parse(string) (RGB, error)
}

// ParserFunc allows functions to be used as Parsers.
type ParserFunc func(string) (RGB, error)

// Parse returns fn(s).
func (fn ParserFunc) Parse(s string) (RGB, error) {
	return fn(s)
}

// Default is the Parser used when no other Parser is configured. Default
// accepts SVG 1.1 color names ("red", "cornflowerblue") and hex colors in the
// forms RGB, RRGGBB and RRGGBBAA, with or without a leading "#". The alpha
// component of RRGGBBAA colors is ignored.
var Default Parser = ParserFunc(Parse)

// Resolve resolves the color string s using p. An empty string resolves to
// Black without calling p.
func Resolve(p Parser, s string) (RGB, error) {
	if s == "" {
		return Black, nil
	}

	if p == nil {
		p = Default
	}

	c, err := p.Parse(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse %q: %w", s, err)
	}

	return c, nil
}

// Parse parses a color name or hex color.
func Parse(s string) (RGB, error) {
	name := strings.ToLower(strings.TrimSpace(s))

	if c, ok := colornames.Map[name]; ok {
		return RGB{R: c.R, G: c.G, B: c.B}, nil
	}

	return parseHex(strings.TrimPrefix(name, "#"))
}

func parseHex(hex string) (RGB, error) {
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	case 8:
		hex = hex[:6]
	default:
		return RGB{}, ErrInvalidColor
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, ErrInvalidColor
	}

	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}
