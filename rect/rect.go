// Package rect resolves rectangle descriptions into canonical coordinates.
package rect

import "math"

// Spec describes a rectangle either by two corners (Top, Left, Bottom, Right)
// or by a corner and an extent (Top, Left, Width, Height). Nil fields are
// absent. Bottom and Right take precedence over Height and Width.
type Spec struct {
	Top    *float64 `json:"top,omitempty"`
	Left   *float64 `json:"left,omitempty"`
	Bottom *float64 `json:"bottom,omitempty"`
	Right  *float64 `json:"right,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
}

// Value returns a pointer to v. Use it to fill in Spec fields:
//
//	spec := rect.Spec{Top: rect.Value(100), Left: rect.Value(200), Width: rect.Value(50)}
func Value(v float64) *float64 {
	return &v
}

// Rect is a rectangle in absolute pixel coordinates. Bottom and Right are
// inclusive. A Rect is only built by Normalize.
type Rect struct {
	Top    float64
	Left   float64
	Bottom float64
	Right  float64
}

// Normalize resolves spec into a Rect. Bottom defaults to Top+Height and Right
// defaults to Left+Width. Normalize returns false if any of the resolved
// fields is absent or not a finite number.
//
// Normalize does not check that Top <= Bottom or Left <= Right.
func Normalize(spec Spec) (Rect, bool) {
	bottom := spec.Bottom
	if bottom == nil {
		bottom = sum(spec.Top, spec.Height)
	}

	right := spec.Right
	if right == nil {
		right = sum(spec.Left, spec.Width)
	}

	fields := [4]*float64{spec.Top, spec.Left, bottom, right}
	for _, f := range fields {
		if f == nil || math.IsNaN(*f) || math.IsInf(*f, 0) {
			return Rect{}, false
		}
	}

	return Rect{
		Top:    *spec.Top,
		Left:   *spec.Left,
		Bottom: *bottom,
		Right:  *right,
	}, true
}

func sum(a, b *float64) *float64 {
	if a == nil || b == nil {
		return nil
	}
	return Value(*a + *b)
}
