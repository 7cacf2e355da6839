package svgpix

import (
	"errors"
	"fmt"
	"image"
)

// Surfaces hold premultiplied pixel data. An ExclusiveSurface is the
// unique owner of its buffer while it is being built; the one-way Share
// transition yields an immutable SharedSurface that may be read from
// many places (including concurrently) but never written again.

// SurfaceType tags the color-space and channel semantics of a surface.
// Operating on surfaces of mismatched types is a programming error and
// panics, it is never a recoverable condition.
type SurfaceType uint8

const (
	SRGB SurfaceType = iota
	LinearRGB
	AlphaOnly
)

func (t SurfaceType) String() string {
	switch t {
	case SRGB:
		return "sRGB"
	case LinearRGB:
		return "linearRGB"
	case AlphaOnly:
		return "alphaOnly"
	default:
		return "<unknown SurfaceType>"
	}
}

// surfaces larger than this are rejected at creation: a malicious
// document must not be able to trigger pathological allocations
const maxDimension = 32767

// ErrInvalidSize is returned when surface dimensions are out of range.
var ErrInvalidSize = errors.New("invalid surface dimensions")

// ExclusiveSurface owns a raster buffer exclusively: it is mutable,
// and no other view of the pixel data exists until Share is called.
type ExclusiveSurface struct {
	width, height int
	stride        int
	kind          SurfaceType
	data          []uint8 // nil after Share
}

// NewExclusiveSurface returns a zero-filled (fully transparent) surface.
// Dimensions outside (0, 32767] yield an error, never an abort.
func NewExclusiveSurface(width, height int, kind SurfaceType) (*ExclusiveSurface, error) {
	if width <= 0 || height <= 0 || width > maxDimension || height > maxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &ExclusiveSurface{
		width:  width,
		height: height,
		stride: width * 4,
		kind:   kind,
		data:   make([]uint8, width*height*4),
	}, nil
}

// FromImage wraps a just-rendered image into an exclusive surface,
// transferring ownership of the pixel buffer: the caller must not
// keep using img afterwards. image.RGBA stores premultiplied pixels,
// matching the surface convention.
func FromImage(img *image.RGBA, kind SurfaceType) (*ExclusiveSurface, error) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w <= 0 || h <= 0 || w > maxDimension || h > maxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	return &ExclusiveSurface{
		width:  w,
		height: h,
		stride: img.Stride,
		kind:   kind,
		data:   img.Pix,
	}, nil
}

func (s *ExclusiveSurface) checkAlive() {
	if s.data == nil {
		panic("svgpix: use of ExclusiveSurface after Share")
	}
}

// Width returns the width of the surface, fixed at creation.
func (s *ExclusiveSurface) Width() int { return s.width }

// Height returns the height of the surface, fixed at creation.
func (s *ExclusiveSurface) Height() int { return s.height }

// Type returns the color-space tag of the surface.
func (s *ExclusiveSurface) Type() SurfaceType { return s.kind }

// Bounds returns the surface extent as a rectangle anchored at the origin.
func (s *ExclusiveSurface) Bounds() IRect { return Rect(0, 0, s.width, s.height) }

// Pixel returns the premultiplied pixel at (x,y), or a transparent
// pixel when outside the surface. All stride arithmetic is confined
// to this accessor and SetPixel.
func (s *ExclusiveSurface) Pixel(x, y int) Pixel {
	s.checkAlive()
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Pixel{}
	}
	i := y*s.stride + x*4
	return Pixel{R: s.data[i], G: s.data[i+1], B: s.data[i+2], A: s.data[i+3]}
}

// SetPixel writes the premultiplied pixel at (x,y).
// Writes outside the surface are dropped.
func (s *ExclusiveSurface) SetPixel(x, y int, p Pixel) {
	s.checkAlive()
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := y*s.stride + x*4
	s.data[i] = p.R
	s.data[i+1] = p.G
	s.data[i+2] = p.B
	s.data[i+3] = p.A
}

// Share consumes the exclusive handle and returns the immutable view.
// Any use of s after this call panics: there is no window where a
// writer and readers alias the same buffer.
func (s *ExclusiveSurface) Share() *SharedSurface {
	s.checkAlive()
	out := &SharedSurface{width: s.width, height: s.height, stride: s.stride, kind: s.kind, data: s.data}
	s.data = nil
	return out
}

// SharedSurface is an immutable view of pixel data. It is cheap to
// clone and safe for concurrent readers: once shared, the pixel data
// is never mutated.
type SharedSurface struct {
	width, height int
	stride        int
	kind          SurfaceType
	data          []uint8
}

// Width returns the width of the surface.
func (s *SharedSurface) Width() int { return s.width }

// Height returns the height of the surface.
func (s *SharedSurface) Height() int { return s.height }

// Type returns the color-space tag of the surface.
func (s *SharedSurface) Type() SurfaceType { return s.kind }

// Bounds returns the surface extent as a rectangle anchored at the origin.
func (s *SharedSurface) Bounds() IRect { return Rect(0, 0, s.width, s.height) }

// Clone returns a new handle on the same immutable pixel data.
func (s *SharedSurface) Clone() *SharedSurface {
	out := *s
	return &out
}

// Pixel returns the premultiplied pixel at (x,y), or a transparent
// pixel when outside the surface.
func (s *SharedSurface) Pixel(x, y int) Pixel {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Pixel{}
	}
	i := y*s.stride + x*4
	return Pixel{R: s.data[i], G: s.data[i+1], B: s.data[i+2], A: s.data[i+3]}
}

// Row returns the raw RGBA bytes of one row, for bulk read loops.
// The slice aliases the immutable pixel data and must not be written.
func (s *SharedSurface) Row(y int) []uint8 {
	if y < 0 || y >= s.height {
		return nil
	}
	return s.data[y*s.stride : y*s.stride+s.width*4]
}

// ToImage copies the surface into a new image.RGBA.
func (s *SharedSurface) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	for y := 0; y < s.height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+s.width*4], s.Row(y))
	}
	return img
}

// Convert returns a copy of the surface in the given color space,
// going through the lookup tables on unpremultiplied channels.
// Converting to the same space returns a cheap alias.
// AlphaOnly surfaces have no color channels to convert: requesting a
// color-space change on one is a programming error.
func (s *SharedSurface) Convert(to SurfaceType) (*SharedSurface, error) {
	if s.kind == to {
		return s.Clone(), nil
	}
	if s.kind == AlphaOnly || to == AlphaOnly {
		panic("svgpix: color-space conversion on an AlphaOnly surface")
	}
	table := &linearizeTable
	if to == SRGB {
		table = &unlinearizeTable
	}
	out, err := NewExclusiveSurface(s.width, s.height, to)
	if err != nil {
		return nil, err
	}
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			p := s.Pixel(x, y).Unpremultiply()
			out.SetPixel(x, y, mapChannels(p, table).Premultiply())
		}
	}
	return out.Share(), nil
}

// ExtractAlpha returns an AlphaOnly surface holding only the alpha
// channel of s, with the color channels zeroed. Used for SourceAlpha
// and for shadow masks.
func (s *SharedSurface) ExtractAlpha() (*SharedSurface, error) {
	out, err := NewExclusiveSurface(s.width, s.height, AlphaOnly)
	if err != nil {
		return nil, err
	}
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			out.SetPixel(x, y, Pixel{A: s.Pixel(x, y).A})
		}
	}
	return out.Share(), nil
}
