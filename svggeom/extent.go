package svggeom

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Computes the exact extent of path segments, needed to build the
// geometric BoundingBox of an element before filters sized with
// objectBoundingBox units can be laid out. Curve extents are found by
// evaluating the curve at the roots of its derivative.

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

type segment interface {
	// the t values zeroing the derivative, per axis
	criticalPoints() (tX, tY []float64)
	// the point at time t
	evaluate(t float64) (x, y float64)
}

type line [2]fixed.Point26_6

func (l line) criticalPoints() (tX, tY []float64) { return nil, nil }

func (l line) evaluate(t float64) (x, y float64) {
	p0x, p0y := fixedTof(l[0])
	p1x, p1y := fixedTof(l[1])
	return (p1x-p0x)*t + p0x, (p1y-p0y)*t + p0y
}

type quadBezier [3]fixed.Point26_6

// quadratic polynomial
// x = At^2 + Bt + C
// where
// A = p0 + p2 - 2p1
// B = 2(p1 - p0)
// C = p0
func bezierQuad(p0, p1, p2, t float64) float64 {
	return (p0+p2-2*p1)*t*t + 2*(p1-p0)*t + p0
}

// derivative as at + b where a,b :
func quadraticDerivative(p0, p1, p2 float64) (a, b float64) {
	return 2 * (p2 - p1 - (p1 - p0)), 2 * (p1 - p0)
}

func linearRoots(a, b float64) []float64 {
	if a == 0 {
		return nil
	}
	return []float64{-b / a}
}

func (cu quadBezier) criticalPoints() (tX, tY []float64) {
	p0x, p0y := fixedTof(cu[0])
	p1x, p1y := fixedTof(cu[1])
	p2x, p2y := fixedTof(cu[2])

	aX, bX := quadraticDerivative(p0x, p1x, p2x)
	aY, bY := quadraticDerivative(p0y, p1y, p2y)

	return linearRoots(aX, bX), linearRoots(aY, bY)
}

func (cu quadBezier) evaluate(t float64) (x, y float64) {
	p0x, p0y := fixedTof(cu[0])
	p1x, p1y := fixedTof(cu[1])
	p2x, p2y := fixedTof(cu[2])
	return bezierQuad(p0x, p1x, p2x, t), bezierQuad(p0y, p1y, p2y, t)
}

type cubicBezier [4]fixed.Point26_6

// cubic polynomial
// x = At^3 + Bt^2 + Ct + D
// where A,B,C,D:
// A = p3 - 3p2 + 3p1 - p0
// B = 3p2 - 6p1 + 3p0
// C = 3p1 - 3p0
// D = p0
func bezierCubic(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		p0
}

// the derivative of the cubic, taken as at^2 + bt + c
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		// degenerates to bt + c
		return linearRoots(b, c)
	}
	d := b*b - 4*a*c
	if d < 0 {
		return nil
	}
	if d == 0 {
		return []float64{-b / (2 * a)}
	}
	sq := math.Sqrt(d)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

func (cu cubicBezier) criticalPoints() (tX, tY []float64) {
	p0x, p0y := fixedTof(cu[0])
	p1x, p1y := fixedTof(cu[1])
	p2x, p2y := fixedTof(cu[2])
	p3x, p3y := fixedTof(cu[3])

	aX, bX, cX := cubicDerivative(p0x, p1x, p2x, p3x)
	aY, bY, cY := cubicDerivative(p0y, p1y, p2y, p3y)

	return quadraticRoots(aX, bX, cX), quadraticRoots(aY, bY, cY)
}

func (cu cubicBezier) evaluate(t float64) (x, y float64) {
	p0x, p0y := fixedTof(cu[0])
	p1x, p1y := fixedTof(cu[1])
	p2x, p2y := fixedTof(cu[2])
	p3x, p3y := fixedTof(cu[3])
	return bezierCubic(p0x, p1x, p2x, p3x, t), bezierCubic(p0y, p1y, p2y, p3y, t)
}

func segmentExtent(s segment) Rect {
	resX, resY := s.criticalPoints()

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	// the end points always bound the curve along with
	// the critical points that fall inside [0,1]
	for _, t := range append(append(resX, 0, 1), resY...) {
		if !(0 <= t && t <= 1) {
			continue
		}
		x, y := s.evaluate(t)
		minX, minY = math.Min(x, minX), math.Min(y, minY)
		maxX, maxY = math.Max(x, maxX), math.Max(y, maxY)
	}
	return Rect{X0: minX, Y0: minY, X1: maxX, Y1: maxY}
}

// LineExtent returns the extent of the segment from a to b.
func LineExtent(a, b fixed.Point26_6) Rect { return segmentExtent(line{a, b}) }

// QuadExtent returns the exact extent of a quadratic bezier curve.
func QuadExtent(a, b, c fixed.Point26_6) Rect { return segmentExtent(quadBezier{a, b, c}) }

// CubicExtent returns the exact extent of a cubic bezier curve.
func CubicExtent(a, b, c, d fixed.Point26_6) Rect { return segmentExtent(cubicBezier{a, b, c, d}) }
