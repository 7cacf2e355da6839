package svggeom

// BoundingBox tracks the extent of an element during layout, in the
// coordinate space given by its transform. Rect is the geometric
// (pre-stroke) extent and InkRect additionally covers stroke and
// paint. A nil field means "no contribution yet", which is distinct
// from an explicitly empty rectangle: an element with no geometry at
// all must not contribute a degenerate box that would later be used
// as a scale denominator for objectBoundingBox sizing.
type BoundingBox struct {
	Transform Matrix2D
	Rect      *Rect
	InkRect   *Rect
}

// NewBoundingBox returns a virgin bounding box in the given space.
func NewBoundingBox(transform Matrix2D) BoundingBox {
	return BoundingBox{Transform: transform}
}

// WithRect returns a copy of b with both extents set to r.
func (b BoundingBox) WithRect(r Rect) BoundingBox {
	ink := r
	b.Rect, b.InkRect = &r, &ink
	return b
}

// WithInkRect returns a copy of b with only the ink extent set.
func (b BoundingBox) WithInkRect(r Rect) BoundingBox {
	b.InkRect = &r
	return b
}

// Insert grows b to cover src, mapping src into b's coordinate space.
// A virgin src leaves b unchanged.
func (b *BoundingBox) Insert(src BoundingBox) { b.combine(src, false) }

// Clip restricts b to the extent of src, mapping src into b's
// coordinate space. Clipping two disjoint boxes yields an explicitly
// empty rectangle, not a virgin one: the box was touched, then
// clipped to nothing.
func (b *BoundingBox) Clip(src BoundingBox) { b.combine(src, true) }

func (b *BoundingBox) combine(src BoundingBox, clip bool) {
	if src.Rect == nil && src.InkRect == nil {
		return
	}
	inverse, err := b.Transform.Invert()
	if err != nil {
		// the target space is collapsed: nothing meaningful to combine
		return
	}
	xform := inverse.Mult(src.Transform)
	b.Rect = combineRects(b.Rect, src.Rect, xform, clip)
	b.InkRect = combineRects(b.InkRect, src.InkRect, xform, clip)
}

func combineRects(dst, src *Rect, xform Matrix2D, clip bool) *Rect {
	if src == nil {
		return dst
	}
	mapped := xform.TransformRect(*src)
	if dst == nil {
		return &mapped
	}
	var out Rect
	if clip {
		out = dst.Intersect(mapped)
	} else {
		out = dst.Union(mapped)
	}
	return &out
}
