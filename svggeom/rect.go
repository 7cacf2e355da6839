package svggeom

import "math"

// Units selects the coordinate system of filter and primitive
// attributes.
type Units byte

// SVG bounds parameter constants
const (
	ObjectBoundingBox Units = iota
	UserSpaceOnUse
)

// Rect is a float axis-aligned rectangle, half-open like svgpix.IRect.
// The zero value is an (explicitly) empty rectangle.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// RectXYWH builds a rectangle from an origin and a size.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{X0: x, Y0: y, X1: x + w, Y1: y + h}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool { return r.X1 <= r.X0 || r.Y1 <= r.Y0 }

// W returns the width of the rectangle, or 0 if empty.
func (r Rect) W() float64 { return math.Max(0, r.X1-r.X0) }

// H returns the height of the rectangle, or 0 if empty.
func (r Rect) H() float64 { return math.Max(0, r.Y1-r.Y0) }

// Union returns the smallest rectangle containing both r and s.
// An empty rectangle does not contribute.
func (r Rect) Union(s Rect) Rect {
	if r.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return r
	}
	return Rect{
		X0: math.Min(r.X0, s.X0), Y0: math.Min(r.Y0, s.Y0),
		X1: math.Max(r.X1, s.X1), Y1: math.Max(r.Y1, s.Y1),
	}
}

// Intersect returns the largest rectangle contained in both r and s.
// Disjoint rectangles yield the (empty) zero Rect.
func (r Rect) Intersect(s Rect) Rect {
	out := Rect{
		X0: math.Max(r.X0, s.X0), Y0: math.Max(r.Y0, s.Y0),
		X1: math.Min(r.X1, s.X1), Y1: math.Min(r.Y1, s.Y1),
	}
	if out.IsEmpty() {
		return Rect{}
	}
	return out
}
