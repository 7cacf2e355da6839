// Provides the coordinate-space primitives shared by the filter
// pipeline and its callers: affine transforms, float rectangles,
// curve extents and the bounding-box combinator used for
// objectBoundingBox sizing.
package svggeom

import (
	"errors"
	"math"
)

// Matrix2D is an affine transform, mapping
// x' = A*x + C*y + E ; y' = B*x + D*y + F
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the identity transform.
var Identity = Matrix2D{A: 1, D: 1}

var errSingular = errors.New("non invertible matrix")

// Mult returns t composed with s, applying s first.
func (t Matrix2D) Mult(s Matrix2D) Matrix2D {
	return Matrix2D{
		A: t.A*s.A + t.C*s.B,
		B: t.B*s.A + t.D*s.B,
		C: t.A*s.C + t.C*s.D,
		D: t.B*s.C + t.D*s.D,
		E: t.A*s.E + t.C*s.F + t.E,
		F: t.B*s.E + t.D*s.F + t.F,
	}
}

// Translate composes a translation by (x, y).
func (t Matrix2D) Translate(x, y float64) Matrix2D {
	return t.Mult(Matrix2D{A: 1, D: 1, E: x, F: y})
}

// Scale composes a scaling by (x, y).
func (t Matrix2D) Scale(x, y float64) Matrix2D {
	return t.Mult(Matrix2D{A: x, D: y})
}

// Rotate composes a rotation by `a` radians.
func (t Matrix2D) Rotate(a float64) Matrix2D {
	cos, sin := math.Cos(a), math.Sin(a)
	return t.Mult(Matrix2D{A: cos, B: sin, C: -sin, D: cos})
}

// SkewX composes a skew along the x axis by `a` radians.
func (t Matrix2D) SkewX(a float64) Matrix2D {
	return t.Mult(Matrix2D{A: 1, D: 1, C: math.Tan(a)})
}

// SkewY composes a skew along the y axis by `a` radians.
func (t Matrix2D) SkewY(a float64) Matrix2D {
	return t.Mult(Matrix2D{A: 1, D: 1, B: math.Tan(a)})
}

// Invert returns the inverse transform, or an error
// when the matrix is singular.
func (t Matrix2D) Invert() (Matrix2D, error) {
	det := t.A*t.D - t.B*t.C
	if det == 0 {
		return Matrix2D{}, errSingular
	}
	return Matrix2D{
		A: t.D / det,
		B: -t.B / det,
		C: -t.C / det,
		D: t.A / det,
		E: (t.C*t.F - t.D*t.E) / det,
		F: (t.B*t.E - t.A*t.F) / det,
	}, nil
}

// TransformPoint applies the transform to the point (x, y).
func (t Matrix2D) TransformPoint(x, y float64) (float64, float64) {
	return t.A*x + t.C*y + t.E, t.B*x + t.D*y + t.F
}

// TransformVector applies only the linear part of the transform,
// ignoring translation. Used for distances and offsets.
func (t Matrix2D) TransformVector(x, y float64) (float64, float64) {
	return t.A*x + t.C*y, t.B*x + t.D*y
}

// TransformRect returns the axis-aligned hull of the
// transformed corners of r. An empty rectangle stays empty.
func (t Matrix2D) TransformRect(r Rect) Rect {
	if r.IsEmpty() {
		return Rect{}
	}
	x0, y0 := t.TransformPoint(r.X0, r.Y0)
	x1, y1 := t.TransformPoint(r.X1, r.Y0)
	x2, y2 := t.TransformPoint(r.X0, r.Y1)
	x3, y3 := t.TransformPoint(r.X1, r.Y1)
	return Rect{
		X0: math.Min(math.Min(x0, x1), math.Min(x2, x3)),
		Y0: math.Min(math.Min(y0, y1), math.Min(y2, y3)),
		X1: math.Max(math.Max(x0, x1), math.Max(x2, x3)),
		Y1: math.Max(math.Max(y0, y1), math.Max(y2, y3)),
	}
}
