package svggeom

import (
	"math"
	"testing"

	"golang.org/x/image/math/fixed"
)

func fp(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

func rectNear(a, b Rect, tol float64) bool {
	return math.Abs(a.X0-b.X0) < tol && math.Abs(a.Y0-b.Y0) < tol &&
		math.Abs(a.X1-b.X1) < tol && math.Abs(a.Y1-b.Y1) < tol
}

func TestLineExtent(t *testing.T) {
	got := LineExtent(fp(10, 2), fp(4, 8))
	want := Rect{X0: 4, Y0: 2, X1: 10, Y1: 8}
	if !rectNear(got, want, 1e-9) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestQuadExtent(t *testing.T) {
	// symmetric arch: the apex sits midway to the control point
	got := QuadExtent(fp(0, 20), fp(20, 0), fp(40, 20))
	want := Rect{X0: 0, Y0: 10, X1: 40, Y1: 20}
	if !rectNear(got, want, 1e-6) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCubicExtent(t *testing.T) {
	// symmetric cubic arch: extremum at t=1/2, y = (p0+3p1+3p2+p3)/8
	got := CubicExtent(fp(0, 16), fp(8, 0), fp(24, 0), fp(32, 16))
	want := Rect{X0: 0, Y0: 4, X1: 32, Y1: 16}
	if !rectNear(got, want, 1e-6) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCubicExtentOvershoot(t *testing.T) {
	// control points pull the curve beyond its endpoints in x
	got := CubicExtent(fp(0, 0), fp(40, 0), fp(40, 10), fp(0, 10))
	if got.X1 <= 0 || got.X1 >= 40 {
		t.Errorf("x overshoot must lie strictly between endpoints and controls: %v", got)
	}
	if math.Abs(got.X1-30) > 1e-6 {
		t.Errorf("symmetric overshoot peaks at 30, got %v", got.X1)
	}
}
