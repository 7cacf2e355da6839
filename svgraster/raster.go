// Implements a raster backend producing pixel surfaces,
// by wrapping rasterx.
package svgraster

import (
	"image"
	"image/color"
	"math"

	"github.com/benoitkugler/svgfilters/svggeom"
	"github.com/benoitkugler/svgfilters/svgpix"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Canvas rasterizes paths into an RGBA image and keeps track of
// the ink extent of everything drawn so far. The image may then be
// handed over as a filter source surface.
type Canvas struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance

	img *image.RGBA

	last      fixed.Point26_6
	extent    svggeom.Rect
	hasExtent bool
}

// NewCanvas returns a canvas of the given size, backed by a
// ScannerGV instance. In addition to rasterizing lines,
// it can also rasterize quadratic and cubic bezier curves.
func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	return &Canvas{
		dasher: rasterx.NewDasher(width, height, scanner),
		filler: rasterx.NewFiller(width, height, scanner),
		img:    img,
	}
}

func (cv *Canvas) Clear() {
	cv.dasher.Clear()
	cv.filler.Clear()
}

func (cv *Canvas) SetWinding(useNonZeroWinding bool) {
	cv.dasher.SetWinding(useNonZeroWinding)
	cv.filler.SetWinding(useNonZeroWinding)
}

// SetColor sets the paint used by both Fill and Stroke.
// The filler and the dasher share one scanner.
func (cv *Canvas) SetColor(c color.Color) {
	cv.filler.Scanner.SetColor(c)
}

// SetStroke sets the parameters of the stroking rasterizer.
func (cv *Canvas) SetStroke(width, miterLimit fixed.Int26_6, capL, capT rasterx.CapFunc,
	gp rasterx.GapFunc, jm rasterx.JoinMode, dash []float64, dashOffset float64) {
	cv.dasher.SetStroke(width, miterLimit, capL, capT, gp, jm, dash, dashOffset)
}

// grow accumulates raw coordinate spans. Degenerate rects from
// axis aligned segments still contribute, so Rect.Union does not fit.
func (cv *Canvas) grow(r svggeom.Rect) {
	if !cv.hasExtent {
		cv.extent = r
		cv.hasExtent = true
		return
	}
	cv.extent.X0 = math.Min(cv.extent.X0, r.X0)
	cv.extent.Y0 = math.Min(cv.extent.Y0, r.Y0)
	cv.extent.X1 = math.Max(cv.extent.X1, r.X1)
	cv.extent.Y1 = math.Max(cv.extent.Y1, r.Y1)
}

func (cv *Canvas) Start(a fixed.Point26_6) {
	cv.filler.Start(a)
	cv.dasher.Start(a)
	cv.last = a
}

func (cv *Canvas) Line(b fixed.Point26_6) {
	cv.filler.Line(b)
	cv.dasher.Line(b)
	cv.grow(svggeom.LineExtent(cv.last, b))
	cv.last = b
}

func (cv *Canvas) QuadBezier(b, c fixed.Point26_6) {
	cv.filler.QuadBezier(b, c)
	cv.dasher.QuadBezier(b, c)
	cv.grow(svggeom.QuadExtent(cv.last, b, c))
	cv.last = c
}

func (cv *Canvas) CubeBezier(b, c, d fixed.Point26_6) {
	cv.filler.CubeBezier(b, c, d)
	cv.dasher.CubeBezier(b, c, d)
	cv.grow(svggeom.CubicExtent(cv.last, b, c, d))
	cv.last = d
}

func (cv *Canvas) Stop(closeLoop bool) {
	cv.filler.Stop(closeLoop)
	cv.dasher.Stop(closeLoop)
}

func (cv *Canvas) Fill() {
	cv.filler.Draw()
	cv.filler.Clear()
}

func (cv *Canvas) Stroke() {
	cv.dasher.Draw()
	cv.dasher.Clear()
}

// PathExtent returns the union of the extents of the curves
// drawn so far, in user space. A canvas with no drawing yet
// returns an empty rectangle.
func (cv *Canvas) PathExtent() svggeom.Rect {
	if !cv.hasExtent {
		return svggeom.Rect{}
	}
	return cv.extent
}

// BoundingBox returns the drawn extent as an object bounding box
// under the given user space transform, suitable for resolving
// objectBoundingBox units.
func (cv *Canvas) BoundingBox(transform svggeom.Matrix2D) svggeom.BoundingBox {
	bbox := svggeom.NewBoundingBox(transform)
	if cv.hasExtent {
		bbox = bbox.WithRect(cv.extent)
	}
	return bbox
}

// Image exposes the backing image, for direct drawing or encoding.
func (cv *Canvas) Image() *image.RGBA { return cv.img }

// Surface hands the backing pixels over as an exclusive surface of
// the given kind. The canvas must not be drawn to afterwards.
func (cv *Canvas) Surface(kind svgpix.SurfaceType) (*svgpix.ExclusiveSurface, error) {
	if cv.img == nil {
		panic("svgraster: use of Canvas after Surface")
	}
	img := cv.img
	cv.img = nil
	return svgpix.FromImage(img, kind)
}
