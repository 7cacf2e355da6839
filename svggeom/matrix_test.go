package svggeom

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestMatrixInvert(t *testing.T) {
	m := Identity.Translate(3, -7).Scale(2, 0.5).Rotate(math.Pi / 5)
	inv, err := m.Invert()
	if err != nil {
		t.Fatal(err)
	}
	id := m.Mult(inv)
	if !near(id.A, 1) || !near(id.B, 0) || !near(id.C, 0) ||
		!near(id.D, 1) || !near(id.E, 0) || !near(id.F, 0) {
		t.Errorf("m * m^-1 = %v, want identity", id)
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	if _, err := (Matrix2D{}).Invert(); err == nil {
		t.Error("expected error inverting the zero matrix")
	}
}

func TestTransformPointVector(t *testing.T) {
	m := Identity.Translate(10, 20).Scale(2, 3)
	x, y := m.TransformPoint(1, 1)
	if !near(x, 12) || !near(y, 23) {
		t.Errorf("point: got (%f,%f)", x, y)
	}
	// vectors ignore translation
	x, y = m.TransformVector(1, 1)
	if !near(x, 2) || !near(y, 3) {
		t.Errorf("vector: got (%f,%f)", x, y)
	}
}

func TestTransformRect(t *testing.T) {
	m := Identity.Rotate(math.Pi / 2)
	r := m.TransformRect(Rect{X0: 0, Y0: 0, X1: 2, Y1: 1})
	if !near(r.X0, -1) || !near(r.Y0, 0) || !near(r.X1, 0) || !near(r.Y1, 2) {
		t.Errorf("rotated rect: got %v", r)
	}
}
