package svgfilter

import (
	"github.com/benoitkugler/svgfilters/svggeom"
	"github.com/benoitkugler/svgfilters/svgpix"
)

// Filter is one parsed filter chain: a region and the primitives to
// evaluate in document order.
type Filter struct {
	Units          svggeom.Units // filter region units (objectBoundingBox by default)
	PrimitiveUnits svggeom.Units // primitive attribute units (userSpaceOnUse by default)

	// filter region, in filter units; nil fields take the SVG
	// defaults -10%, -10%, 120%, 120%
	X, Y, Width, Height *Length

	Primitives []Primitive
}

// NewFilter returns an empty filter with the SVG default units.
func NewFilter() *Filter {
	return &Filter{Units: svggeom.ObjectBoundingBox, PrimitiveUnits: svggeom.UserSpaceOnUse}
}

// filter region defaults, as objectBoundingBox fractions
var (
	defaultRegionX = Length{Value: -10, U: Perc}
	defaultRegionW = Length{Value: 120, U: Perc}
)

// Region computes the filter region in device space, clipped to the
// canvas. bbox is the element extent in user space, required when the
// region is objectBoundingBox-relative (the default).
func (f *Filter) Region(bbox *svggeom.Rect, paffine svggeom.Matrix2D, canvas svgpix.IRect, opts RenderOptions) (svgpix.IRect, error) {
	dpi := opts.DPI
	if dpi <= 0 {
		dpi = DefaultOptions.DPI
	}
	x, y, w, h := defaultRegionX, defaultRegionX, defaultRegionW, defaultRegionW
	if f.X != nil {
		x = *f.X
	}
	if f.Y != nil {
		y = *f.Y
	}
	if f.Width != nil {
		w = *f.Width
	}
	if f.Height != nil {
		h = *f.Height
	}

	var user svggeom.Rect
	if f.Units == svggeom.ObjectBoundingBox {
		if bbox == nil {
			return svgpix.IRect{}, invalidUnits("objectBoundingBox filter region on an element without bounding box")
		}
		user = svggeom.RectXYWH(
			bbox.X0+x.resolve(dpi, 1)*bbox.W(),
			bbox.Y0+y.resolve(dpi, 1)*bbox.H(),
			w.resolve(dpi, 1)*bbox.W(),
			h.resolve(dpi, 1)*bbox.H(),
		)
	} else {
		inverse, err := paffine.Invert()
		if err != nil {
			return svgpix.IRect{}, invalidUnits("non invertible transform")
		}
		ref := inverse.TransformRect(rectFromIRect(canvas))
		user = svggeom.RectXYWH(
			x.resolve(dpi, ref.W()),
			y.resolve(dpi, ref.H()),
			w.resolve(dpi, ref.W()),
			h.resolve(dpi, ref.H()),
		)
	}
	return outerIRect(paffine.TransformRect(user)).Intersect(canvas), nil
}

// Render evaluates the primitives in document order. Any primitive
// error aborts the whole chain: per the filter-effects model the
// caller must then render the element as empty, not unfiltered.
// The final output is converted back to sRGB for display.
func (f *Filter) Render(ctx *FilterContext) (FilterOutput, error) {
	if err := ctx.limits.EnterNested(); err != nil {
		return FilterOutput{}, err
	}
	defer ctx.limits.LeaveNested()

	ctx.primitiveUnits = f.PrimitiveUnits

	for i := range f.Primitives {
		p := &f.Primitives[i]
		out, err := p.Render(ctx)
		if err != nil {
			return FilterOutput{}, err
		}
		ctx.store(p.Result, out)
	}

	if ctx.last == nil {
		// a filter with no primitives yields transparent black
		out, err := ctx.transparent()
		if err != nil {
			return FilterOutput{}, err
		}
		return FilterOutput{Surface: out.Surface, Bounds: svgpix.IRect{}}, nil
	}
	return ctx.convertOutput(*ctx.last, ColorSRGB)
}

// Apply is the one-call entry point: it computes the filter region,
// seeds a context and renders the chain. bbox may be nil for elements
// without geometry, failing only if some attribute actually requires it.
func (f *Filter) Apply(source *svgpix.SharedSurface, paffine svggeom.Matrix2D, bbox *svggeom.Rect, opts RenderOptions) (FilterOutput, error) {
	region, err := f.Region(bbox, paffine, source.Bounds(), opts)
	if err != nil {
		return FilterOutput{}, err
	}
	ctx := NewContext(source, paffine, region, opts)
	if bbox != nil {
		ctx.SetObjectBoundingBox(*bbox)
	}
	return f.Render(ctx)
}
