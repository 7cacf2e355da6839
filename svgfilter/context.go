// Evaluates SVG filter-effect chains on raster surfaces.
// A FilterContext is seeded with the source graphic of a filtered
// element; primitives are rendered in document order, each producing a
// named FilterOutput consumed by later primitives.
package svgfilter

import (
	"image/color"

	"github.com/benoitkugler/svgfilters/svggeom"
	"github.com/benoitkugler/svgfilters/svgpix"
)

// RenderOptions is threaded explicitly through each render call:
// there are no process-wide mutable defaults.
type RenderOptions struct {
	DPI    float64 // used to resolve absolute length units
	Limits Limits
}

// DefaultOptions uses the usual CSS pixel density.
var DefaultOptions = RenderOptions{DPI: 96, Limits: DefaultLimits}

// FilterOutput is the result of one primitive: the surface it painted
// and the region it actually affected.
type FilterOutput struct {
	Surface *svgpix.SharedSurface
	Bounds  svgpix.IRect
}

// FilterContext holds the state of one filter chain evaluation.
type FilterContext struct {
	paffine        svggeom.Matrix2D
	region         svgpix.IRect
	bbox           *svggeom.Rect // element bounding box, user space; nil when the element has no geometry
	primitiveUnits svggeom.Units

	source          *svgpix.SharedSurface
	sourceAlpha     *svgpix.SharedSurface // derived lazily
	background      *svgpix.SharedSurface
	backgroundAlpha *svgpix.SharedSurface
	fillPaint       *svgpix.SharedSurface
	strokePaint     *svgpix.SharedSurface

	currentColor color.NRGBA

	results map[string]FilterOutput
	last    *FilterOutput

	limits *LimitTracker
	dpi    float64
}

// NewContext seeds a filter chain evaluation. source is the rendered
// SourceGraphic (sRGB, premultiplied), paffine the transform from
// user space to device space and region the filter region in device
// space. The current color defaults to opaque black.
func NewContext(source *svgpix.SharedSurface, paffine svggeom.Matrix2D, region svgpix.IRect, opts RenderOptions) *FilterContext {
	dpi := opts.DPI
	if dpi <= 0 {
		dpi = DefaultOptions.DPI
	}
	return &FilterContext{
		paffine:        paffine,
		region:         region.Intersect(source.Bounds()),
		primitiveUnits: svggeom.UserSpaceOnUse,
		source:         source,
		currentColor:   color.NRGBA{A: 0xff},
		results:        make(map[string]FilterOutput),
		limits:         NewLimitTracker(opts.Limits),
		dpi:            dpi,
	}
}

// SetObjectBoundingBox provides the element extent required to resolve
// objectBoundingBox-relative attributes.
func (ctx *FilterContext) SetObjectBoundingBox(bbox svggeom.Rect) { ctx.bbox = &bbox }

// SetCurrentColor provides the cascaded `color` value, resolved
// against by flood-color and drop shadow color.
func (ctx *FilterContext) SetCurrentColor(c color.NRGBA) { ctx.currentColor = c }

// SetBackground provides the optional BackgroundImage standard input.
func (ctx *FilterContext) SetBackground(s *svgpix.SharedSurface) { ctx.background = s }

// SetFillPaint provides the optional FillPaint standard input.
func (ctx *FilterContext) SetFillPaint(s *svgpix.SharedSurface) { ctx.fillPaint = s }

// SetStrokePaint provides the optional StrokePaint standard input.
func (ctx *FilterContext) SetStrokePaint(s *svgpix.SharedSurface) { ctx.strokePaint = s }

// Limits exposes the per-render counters, shared with the tree walker
// resolving url(#...) references.
func (ctx *FilterContext) Limits() *LimitTracker { return ctx.limits }

// Region returns the filter region in device space.
func (ctx *FilterContext) Region() svgpix.IRect { return ctx.region }

// newSurface allocates a canvas-sized surface: every intermediate
// result spans the source graphic so that bounds of different
// primitives live in one device space.
func (ctx *FilterContext) newSurface(kind svgpix.SurfaceType) (*svgpix.ExclusiveSurface, error) {
	out, err := svgpix.NewExclusiveSurface(ctx.source.Width(), ctx.source.Height(), kind)
	if err != nil {
		return nil, backendError(err)
	}
	return out, nil
}

func (ctx *FilterContext) store(name string, out FilterOutput) {
	if name != "" {
		ctx.results[name] = out
	}
	ctx.last = &out
}

// transparent returns an empty canvas-sized input, used for the
// optional standard inputs that were not provided.
func (ctx *FilterContext) transparent() (FilterOutput, error) {
	s, err := ctx.newSurface(svgpix.SRGB)
	if err != nil {
		return FilterOutput{}, err
	}
	return FilterOutput{Surface: s.Share(), Bounds: ctx.region}, nil
}

// resolveRaw maps an `in` reference to a previously produced output,
// without color-space conversion. standard reports whether the input
// is one of the six standard inputs (or the implicit default), as
// opposed to a named prior result: feTile needs the distinction.
func (ctx *FilterContext) resolveRaw(ref InputRef) (out FilterOutput, standard bool, err error) {
	switch ref.Kind {
	case InUnspecified:
		// SourceGraphic for the first primitive of a chain, the
		// previous result afterwards
		if ctx.last != nil {
			return *ctx.last, false, nil
		}
		return FilterOutput{Surface: ctx.source, Bounds: ctx.region}, true, nil
	case InSourceGraphic:
		return FilterOutput{Surface: ctx.source, Bounds: ctx.region}, true, nil
	case InSourceAlpha:
		if ctx.sourceAlpha == nil {
			ctx.sourceAlpha, err = ctx.source.ExtractAlpha()
			if err != nil {
				return FilterOutput{}, false, backendError(err)
			}
		}
		return FilterOutput{Surface: ctx.sourceAlpha, Bounds: ctx.region}, true, nil
	case InBackgroundImage:
		if ctx.background == nil {
			out, err = ctx.transparent()
			return out, true, err
		}
		return FilterOutput{Surface: ctx.background, Bounds: ctx.region}, true, nil
	case InBackgroundAlpha:
		if ctx.background == nil {
			out, err = ctx.transparent()
			return out, true, err
		}
		if ctx.backgroundAlpha == nil {
			ctx.backgroundAlpha, err = ctx.background.ExtractAlpha()
			if err != nil {
				return FilterOutput{}, false, backendError(err)
			}
		}
		return FilterOutput{Surface: ctx.backgroundAlpha, Bounds: ctx.region}, true, nil
	case InFillPaint:
		if ctx.fillPaint == nil {
			out, err = ctx.transparent()
			return out, true, err
		}
		return FilterOutput{Surface: ctx.fillPaint, Bounds: ctx.region}, true, nil
	case InStrokePaint:
		if ctx.strokePaint == nil {
			out, err = ctx.transparent()
			return out, true, err
		}
		return FilterOutput{Surface: ctx.strokePaint, Bounds: ctx.region}, true, nil
	case InResult:
		// named results are references, subject to the render budget
		if err = ctx.limits.CountReference(); err != nil {
			return FilterOutput{}, false, err
		}
		prev, ok := ctx.results[ref.Name]
		if !ok {
			return FilterOutput{}, false, invalidInput("no filter result named %q", ref.Name)
		}
		return prev, false, nil
	default:
		panic("svgfilter: unknown input kind")
	}
}

// resolveInput resolves an input and converts its surface to the
// color space the consuming primitive operates in. ColorAuto skips
// the conversion, as do AlphaOnly surfaces which carry no color.
func (ctx *FilterContext) resolveInput(ref InputRef, space ColorSpace) (FilterOutput, error) {
	out, _, err := ctx.resolveRaw(ref)
	if err != nil {
		return FilterOutput{}, err
	}
	return ctx.convertOutput(out, space)
}

func (ctx *FilterContext) convertOutput(out FilterOutput, space ColorSpace) (FilterOutput, error) {
	if space == ColorAuto || out.Surface.Type() == svgpix.AlphaOnly {
		return out, nil
	}
	converted, err := out.Surface.Convert(space.surfaceType())
	if err != nil {
		return FilterOutput{}, backendError(err)
	}
	return FilterOutput{Surface: converted, Bounds: out.Bounds}, nil
}
