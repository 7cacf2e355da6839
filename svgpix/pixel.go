// Provides the raster primitives used by the filter pipeline:
// 8-bit pixels (premultiplied or not), sRGB <-> linearRGB lookup tables,
// integer rectangles, and the shared/exclusive surface ownership model.
package svgpix

import "image/color"

// Pixel is a 4-channel, 8 bits per channel color value.
// Depending on the context it holds either unpremultiplied channels
// (independant r,g,b) or premultiplied ones (r,g,b scaled by a/255).
// The two conventions must never be mixed silently: all blur and
// compositing math expects premultiplied values.
type Pixel struct {
	R, G, B, A uint8
}

// Premultiply scales the color channels by alpha,
// rounding to the nearest value.
func (p Pixel) Premultiply() Pixel {
	a := uint32(p.A)
	return Pixel{
		R: uint8((uint32(p.R)*a + 127) / 255),
		G: uint8((uint32(p.G)*a + 127) / 255),
		B: uint8((uint32(p.B)*a + 127) / 255),
		A: p.A,
	}
}

// Unpremultiply reverses Premultiply. A fully transparent
// pixel yields {0,0,0,0} rather than dividing by zero.
func (p Pixel) Unpremultiply() Pixel {
	if p.A == 0 {
		return Pixel{}
	}
	a := uint32(p.A)
	un := func(c uint8) uint8 {
		v := (uint32(c)*255 + a/2) / a
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}
	return Pixel{R: un(p.R), G: un(p.G), B: un(p.B), A: p.A}
}

// Diff returns the per-channel absolute difference between p and q.
// Only used by test and diagnostic tooling, not the render path.
func (p Pixel) Diff(q Pixel) Pixel {
	d := func(a, b uint8) uint8 {
		if a > b {
			return a - b
		}
		return b - a
	}
	return Pixel{R: d(p.R, q.R), G: d(p.G, q.G), B: d(p.B, q.B), A: d(p.A, q.A)}
}

// Luminance returns the luminance-to-alpha mask value of an
// unpremultiplied pixel, using the coefficients of the SVG
// feColorMatrix luminanceToAlpha operation.
func (p Pixel) Luminance() uint8 {
	l := 0.2125*float64(p.R) + 0.7154*float64(p.G) + 0.0721*float64(p.B)
	return uint8(l + 0.5)
}

// FromColor converts a color.Color to an unpremultiplied Pixel.
func FromColor(c color.Color) Pixel {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{R: nc.R, G: nc.G, B: nc.B, A: nc.A}
}

// Color returns the unpremultiplied pixel as a color.NRGBA.
func (p Pixel) Color() color.NRGBA {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}
