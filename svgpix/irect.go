package svgpix

// IRect is an integer axis-aligned rectangle, half-open:
// a point (x,y) is inside when X0 <= x < X1 and Y0 <= y < Y1.
// It may be empty (X1 <= X0 or Y1 <= Y0).
type IRect struct {
	X0, Y0, X1, Y1 int
}

// Rect is shorthand for IRect{x0, y0, x1, y1}.
func Rect(x0, y0, x1, y1 int) IRect { return IRect{X0: x0, Y0: y0, X1: x1, Y1: y1} }

// IsEmpty reports whether the rectangle contains no point.
func (r IRect) IsEmpty() bool { return r.X1 <= r.X0 || r.Y1 <= r.Y0 }

// Dx returns the width of the rectangle, or 0 if empty.
func (r IRect) Dx() int {
	if r.X1 <= r.X0 {
		return 0
	}
	return r.X1 - r.X0
}

// Dy returns the height of the rectangle, or 0 if empty.
func (r IRect) Dy() int {
	if r.Y1 <= r.Y0 {
		return 0
	}
	return r.Y1 - r.Y0
}

// Contains reports whether (x,y) is inside the rectangle.
func (r IRect) Contains(x, y int) bool {
	return r.X0 <= x && x < r.X1 && r.Y0 <= y && y < r.Y1
}

// Intersect returns the largest rectangle contained in both r and s.
// The result may be empty.
func (r IRect) Intersect(s IRect) IRect {
	out := IRect{X0: max(r.X0, s.X0), Y0: max(r.Y0, s.Y0), X1: min(r.X1, s.X1), Y1: min(r.Y1, s.Y1)}
	if out.IsEmpty() {
		return IRect{}
	}
	return out
}

// Union returns the smallest rectangle containing both r and s.
// An empty rectangle does not contribute.
func (r IRect) Union(s IRect) IRect {
	if r.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return r
	}
	return IRect{X0: min(r.X0, s.X0), Y0: min(r.Y0, s.Y0), X1: max(r.X1, s.X1), Y1: max(r.Y1, s.Y1)}
}

// Translate returns the rectangle shifted by (dx, dy).
func (r IRect) Translate(dx, dy int) IRect {
	return IRect{X0: r.X0 + dx, Y0: r.Y0 + dy, X1: r.X1 + dx, Y1: r.Y1 + dy}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
