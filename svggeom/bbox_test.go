package svggeom

import "testing"

func TestBBoxInsertVirginSrc(t *testing.T) {
	b := NewBoundingBox(Identity).WithRect(Rect{X0: 0, Y0: 0, X1: 4, Y1: 4})
	b.Insert(NewBoundingBox(Identity))
	if b.Rect == nil || *b.Rect != (Rect{X0: 0, Y0: 0, X1: 4, Y1: 4}) {
		t.Errorf("virgin src must not change dst: %v", b.Rect)
	}
}

func TestBBoxInsertIntoVirgin(t *testing.T) {
	b := NewBoundingBox(Identity)
	b.Insert(NewBoundingBox(Identity).WithRect(Rect{X0: 1, Y0: 2, X1: 3, Y1: 4}))
	if b.Rect == nil || *b.Rect != (Rect{X0: 1, Y0: 2, X1: 3, Y1: 4}) {
		t.Errorf("virgin dst must adopt src: %v", b.Rect)
	}
}

func TestBBoxInsertUnion(t *testing.T) {
	b := NewBoundingBox(Identity).WithRect(Rect{X0: 0, Y0: 0, X1: 2, Y1: 2})
	b.Insert(NewBoundingBox(Identity).WithRect(Rect{X0: 5, Y0: 5, X1: 6, Y1: 6}))
	if *b.Rect != (Rect{X0: 0, Y0: 0, X1: 6, Y1: 6}) {
		t.Errorf("union: got %v", *b.Rect)
	}
}

func TestBBoxInsertMapsSpaces(t *testing.T) {
	// src lives in a doubled space: its rect must be scaled into dst's
	b := NewBoundingBox(Identity)
	src := NewBoundingBox(Identity.Scale(2, 2)).WithRect(Rect{X0: 1, Y0: 1, X1: 2, Y1: 2})
	b.Insert(src)
	if *b.Rect != (Rect{X0: 2, Y0: 2, X1: 4, Y1: 4}) {
		t.Errorf("mapped insert: got %v", *b.Rect)
	}
}

func TestBBoxClipDisjoint(t *testing.T) {
	b := NewBoundingBox(Identity).WithRect(Rect{X0: 0, Y0: 0, X1: 2, Y1: 2})
	b.Clip(NewBoundingBox(Identity).WithRect(Rect{X0: 10, Y0: 10, X1: 12, Y1: 12}))
	if b.Rect == nil {
		t.Fatal("clipped box must stay explicit, not revert to virgin")
	}
	if !b.Rect.IsEmpty() {
		t.Errorf("disjoint clip must be empty: %v", *b.Rect)
	}
}

func TestBBoxClipOverlap(t *testing.T) {
	b := NewBoundingBox(Identity).WithRect(Rect{X0: 0, Y0: 0, X1: 4, Y1: 4})
	b.Clip(NewBoundingBox(Identity).WithRect(Rect{X0: 2, Y0: 2, X1: 8, Y1: 8}))
	if *b.Rect != (Rect{X0: 2, Y0: 2, X1: 4, Y1: 4}) {
		t.Errorf("clip: got %v", *b.Rect)
	}
}

func TestBBoxSingularTarget(t *testing.T) {
	b := BoundingBox{Transform: Matrix2D{}}
	b.Insert(NewBoundingBox(Identity).WithRect(Rect{X0: 0, Y0: 0, X1: 1, Y1: 1}))
	if b.Rect != nil {
		t.Error("collapsed target space must ignore contributions")
	}
}
