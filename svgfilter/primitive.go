package svgfilter

import (
	"image/color"
	"math"

	"github.com/benoitkugler/svgfilters/svgpix"
)

// InputKind enumerates the sources an `in` attribute can name.
type InputKind uint8

const (
	InUnspecified InputKind = iota
	InSourceGraphic
	InSourceAlpha
	InBackgroundImage
	InBackgroundAlpha
	InFillPaint
	InStrokePaint
	InResult // a previous primitive result, by name
)

// InputRef is a parsed `in` (or `in2`) attribute.
type InputRef struct {
	Kind InputKind
	Name string // only for InResult
}

// ParseInput maps the raw attribute value to an input reference.
// Any non-standard, non-empty string names a previous result.
func ParseInput(v string) InputRef {
	switch v {
	case "":
		return InputRef{Kind: InUnspecified}
	case "SourceGraphic":
		return InputRef{Kind: InSourceGraphic}
	case "SourceAlpha":
		return InputRef{Kind: InSourceAlpha}
	case "BackgroundImage":
		return InputRef{Kind: InBackgroundImage}
	case "BackgroundAlpha":
		return InputRef{Kind: InBackgroundAlpha}
	case "FillPaint":
		return InputRef{Kind: InFillPaint}
	case "StrokePaint":
		return InputRef{Kind: InStrokePaint}
	default:
		return InputRef{Kind: InResult, Name: v}
	}
}

// ColorSpace is the working color space of a primitive, from the
// color-interpolation-filters property. ColorAuto means the choice is
// irrelevant for the operation (offset, tile) and conversion is skipped.
type ColorSpace uint8

const (
	ColorAuto ColorSpace = iota
	ColorSRGB
	ColorLinearRGB
)

func (c ColorSpace) surfaceType() svgpix.SurfaceType {
	switch c {
	case ColorSRGB:
		return svgpix.SRGB
	case ColorLinearRGB:
		return svgpix.LinearRGB
	default:
		panic("svgfilter: no surface type for ColorAuto")
	}
}

// Effect is the closed set of filter primitive operations. Dispatch
// happens by type switch in Primitive.Render, in one place, so that
// covering a new operation is a compile-visible change.
type Effect interface {
	isEffect()
}

// Flood fills the subregion with flood-color at flood-opacity,
// ignoring all inputs.
type Flood struct {
	Color          color.NRGBA
	IsCurrentColor bool
	Opacity        float64
}

// Offset translates its input by (Dx, Dy) user-space units.
type Offset struct {
	Dx, Dy float64
}

// Tile repeats the bounded output of a previous primitive over the
// subregion.
type Tile struct{}

// GaussianBlur blurs its input, approximated by three box blurs.
type GaussianBlur struct {
	StdX, StdY float64
}

// CompositeOp selects the per-pixel combination rule of Composite.
type CompositeOp uint8

const (
	OpOver CompositeOp = iota
	OpIn
	OpOut
	OpAtop
	OpXor
	OpArithmetic
)

// Composite combines two inputs with a Porter-Duff operator, or with
// the four-coefficient arithmetic extension.
type Composite struct {
	Operator       CompositeOp
	K1, K2, K3, K4 float64 // only for OpArithmetic
	In2            InputRef
}

// Merge stacks its inputs in order, each composited over the previous
// ones.
type Merge struct {
	Inputs []InputRef
}

// DropShadow is a composite primitive: an alpha-only blur of the
// offset input, recolored, with the original merged on top.
type DropShadow struct {
	Dx, Dy         float64
	StdX, StdY     float64
	Color          color.NRGBA
	IsCurrentColor bool
	Opacity        float64
}

func (Flood) isEffect()        {}
func (Offset) isEffect()       {}
func (Tile) isEffect()         {}
func (GaussianBlur) isEffect() {}
func (Composite) isEffect()    {}
func (Merge) isEffect()        {}
func (DropShadow) isEffect()   {}

// Primitive carries the attributes shared by all filter primitives:
// the declared subregion (each coordinate independently optional), the
// result name, the resolved input and the working color space.
type Primitive struct {
	In                 InputRef
	X, Y               *Length
	Width, Height      *Length
	Result             string
	ColorInterpolation ColorSpace // resolved: ColorSRGB or ColorLinearRGB

	Effect Effect
}

// space returns the color space the primitive operates in. Offset and
// tile only move pixels around: interpolation is irrelevant and they
// must not trigger conversions.
func (p *Primitive) space() ColorSpace {
	switch p.Effect.(type) {
	case Offset, Tile:
		return ColorAuto
	default:
		if p.ColorInterpolation == ColorAuto {
			return ColorLinearRGB
		}
		return p.ColorInterpolation
	}
}

// Render resolves the primitive inputs and produces its output. An
// empty effective subregion is not an error: the output is simply
// empty. Errors abort the whole chain.
func (p *Primitive) Render(ctx *FilterContext) (FilterOutput, error) {
	switch k := p.Effect.(type) {
	case Flood:
		return p.renderFlood(ctx, k)
	case Offset:
		return p.renderOffset(ctx, k)
	case Tile:
		return p.renderTile(ctx)
	case GaussianBlur:
		return p.renderGaussianBlur(ctx, k)
	case Composite:
		return p.renderComposite(ctx, k)
	case Merge:
		return p.renderMerge(ctx, k)
	case DropShadow:
		return p.renderDropShadow(ctx, k)
	default:
		panic("svgfilter: unknown filter primitive")
	}
}

// resolveColor linearizes the given flood or shadow color when the
// primitive works in linearRGB, and substitutes the cascaded color.
func resolveColor(ctx *FilterContext, c color.NRGBA, isCurrent bool, opacity float64, space ColorSpace) svgpix.Pixel {
	if isCurrent {
		c = ctx.currentColor
	}
	a := float64(c.A) / 255 * clamp01(opacity)
	p := svgpix.Pixel{R: c.R, G: c.G, B: c.B, A: uint8(a*255 + 0.5)}
	if space == ColorLinearRGB {
		p = svgpix.Pixel{R: svgpix.Linearize(p.R), G: svgpix.Linearize(p.G), B: svgpix.Linearize(p.B), A: p.A}
	}
	return p.Premultiply()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// deviceOffset maps a user-space offset through the linear part of
// paffine, rounded to whole pixels.
func (ctx *FilterContext) deviceOffset(dx, dy float64) (int, int) {
	ox, oy := ctx.paffine.TransformVector(dx, dy)
	return int(math.Round(ox)), int(math.Round(oy))
}

// deviceStdDeviation scales a user-space standard deviation by the
// axis scale factors of paffine.
func (ctx *FilterContext) deviceStdDeviation(sx, sy float64) (float64, float64) {
	m := ctx.paffine
	return sx * math.Hypot(m.A, m.B), sy * math.Hypot(m.C, m.D)
}
