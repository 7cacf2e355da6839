package svgpix

import "math"

// Conversion between the sRGB transfer curve and linear RGB,
// precomputed as 256-entry tables for O(1) per pixel lookups.

var (
	linearizeTable   [256]uint8
	unlinearizeTable [256]uint8
)

func init() {
	for i := range linearizeTable {
		c := float64(i) / 255
		linearizeTable[i] = quantize(linearize(c))
		unlinearizeTable[i] = quantize(unlinearize(c))
	}
}

// s is an sRGB encoded channel value in [0,1]
func linearize(s float64) float64 {
	if s <= 12.92*0.0031308 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// algebraic inverse of linearize
func unlinearize(l float64) float64 {
	if l <= 0.0031308 {
		return 12.92 * l
	}
	return 1.055*math.Pow(l, 1/2.4) - 0.055
}

// round to nearest on the [0,255] quantization
func quantize(c float64) uint8 {
	v := math.Round(c * 255)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Linearize maps one sRGB channel value to linear RGB.
func Linearize(c uint8) uint8 { return linearizeTable[c] }

// Unlinearize maps one linear RGB channel value back to sRGB.
func Unlinearize(c uint8) uint8 { return unlinearizeTable[c] }

// convert the color channels of an unpremultiplied pixel
func mapChannels(p Pixel, table *[256]uint8) Pixel {
	return Pixel{R: table[p.R], G: table[p.G], B: table[p.B], A: p.A}
}
