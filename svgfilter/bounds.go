package svgfilter

import (
	"math"

	"github.com/benoitkugler/svgfilters/svggeom"
	"github.com/benoitkugler/svgfilters/svgpix"
)

// Subregion resolution: a primitive's declared x/y/width/height (each
// independently optional) is combined with the union of its resolved
// inputs' bounds, then clipped by the filter region. The filter region
// is the outer clamp; the input union is the default extent when
// nothing is declared; a primitive without inputs defaults to the
// whole region.

type boundsBuilder struct {
	ctx       *FilterContext
	inputs    svgpix.IRect
	hasInputs bool
}

func newBoundsBuilder(ctx *FilterContext) boundsBuilder {
	return boundsBuilder{ctx: ctx}
}

func (b *boundsBuilder) addInput(out FilterOutput) {
	b.inputs = b.inputs.Union(out.Bounds)
	b.hasInputs = true
}

// build computes the final integer clipped subregion of the
// primitive. An empty result is valid: the primitive then produces an
// empty output rather than erroring.
func (b *boundsBuilder) build(p *Primitive) (svgpix.IRect, error) {
	ctx := b.ctx
	base := ctx.region
	if b.hasInputs {
		base = b.inputs
	}
	if p.X == nil && p.Y == nil && p.Width == nil && p.Height == nil {
		return base.Intersect(ctx.region), nil
	}

	inverse, err := ctx.paffine.Invert()
	if err != nil {
		return svgpix.IRect{}, invalidUnits("non invertible transform")
	}
	user := inverse.TransformRect(rectFromIRect(base))
	regionUser := inverse.TransformRect(rectFromIRect(ctx.region))

	if p.X != nil {
		w := user.W()
		x, err := b.resolveCoord(*p.X, regionUser.W(), horizontal)
		if err != nil {
			return svgpix.IRect{}, err
		}
		user.X0, user.X1 = x, x+w
	}
	if p.Y != nil {
		h := user.H()
		y, err := b.resolveCoord(*p.Y, regionUser.H(), vertical)
		if err != nil {
			return svgpix.IRect{}, err
		}
		user.Y0, user.Y1 = y, y+h
	}
	if p.Width != nil {
		w, err := b.resolveExtent(*p.Width, regionUser.W(), horizontal)
		if err != nil {
			return svgpix.IRect{}, err
		}
		user.X1 = user.X0 + w
	}
	if p.Height != nil {
		h, err := b.resolveExtent(*p.Height, regionUser.H(), vertical)
		if err != nil {
			return svgpix.IRect{}, err
		}
		user.Y1 = user.Y0 + h
	}

	return outerIRect(ctx.paffine.TransformRect(user)).Intersect(ctx.region), nil
}

type axis uint8

const (
	horizontal axis = iota
	vertical
)

// resolveCoord maps a declared x or y to user space. In
// objectBoundingBox units values are fractions of the element extent.
func (b *boundsBuilder) resolveCoord(l Length, ref float64, ax axis) (float64, error) {
	ctx := b.ctx
	if ctx.primitiveUnits == svggeom.ObjectBoundingBox {
		if ctx.bbox == nil {
			return 0, invalidUnits("objectBoundingBox units on an element without bounding box")
		}
		if ax == horizontal {
			return ctx.bbox.X0 + l.resolve(ctx.dpi, 1)*ctx.bbox.W(), nil
		}
		return ctx.bbox.Y0 + l.resolve(ctx.dpi, 1)*ctx.bbox.H(), nil
	}
	return l.resolve(ctx.dpi, ref), nil
}

// resolveExtent maps a declared width or height to user space.
func (b *boundsBuilder) resolveExtent(l Length, ref float64, ax axis) (float64, error) {
	ctx := b.ctx
	if ctx.primitiveUnits == svggeom.ObjectBoundingBox {
		if ctx.bbox == nil {
			return 0, invalidUnits("objectBoundingBox units on an element without bounding box")
		}
		if ax == horizontal {
			return l.resolve(ctx.dpi, 1) * ctx.bbox.W(), nil
		}
		return l.resolve(ctx.dpi, 1) * ctx.bbox.H(), nil
	}
	return l.resolve(ctx.dpi, ref), nil
}

func rectFromIRect(r svgpix.IRect) svggeom.Rect {
	return svggeom.Rect{X0: float64(r.X0), Y0: float64(r.Y0), X1: float64(r.X1), Y1: float64(r.Y1)}
}

// outerIRect returns the smallest integer rectangle covering r.
func outerIRect(r svggeom.Rect) svgpix.IRect {
	if r.IsEmpty() {
		return svgpix.IRect{}
	}
	return svgpix.Rect(
		int(math.Floor(r.X0)), int(math.Floor(r.Y0)),
		int(math.Ceil(r.X1)), int(math.Ceil(r.Y1)),
	)
}
