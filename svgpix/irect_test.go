package svgpix

import "testing"

func TestIRectOps(t *testing.T) {
	a := Rect(0, 0, 10, 10)
	b := Rect(5, 5, 15, 15)

	if got := a.Intersect(b); got != Rect(5, 5, 10, 10) {
		t.Errorf("intersect: got %v", got)
	}
	if got := a.Union(b); got != Rect(0, 0, 15, 15) {
		t.Errorf("union: got %v", got)
	}
	if got := a.Intersect(Rect(20, 20, 30, 30)); !got.IsEmpty() {
		t.Errorf("disjoint intersect must be empty, got %v", got)
	}

	empty := IRect{}
	if got := a.Union(empty); got != a {
		t.Errorf("empty must not contribute to union, got %v", got)
	}

	if got := a.Translate(3, -2); got != Rect(3, -2, 13, 8) {
		t.Errorf("translate: got %v", got)
	}
	if !a.Contains(0, 0) || a.Contains(10, 10) {
		t.Error("half-open containment is wrong")
	}
	if a.Dx() != 10 || a.Dy() != 10 {
		t.Errorf("size: got %dx%d", a.Dx(), a.Dy())
	}
}
