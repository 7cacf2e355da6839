package svgfilter

import (
	"math"

	"github.com/benoitkugler/svgfilters/svgpix"
)

// Separable box blur: a 1-D sliding-window average run horizontally
// then vertically (or the other way around), in O(width*height) total
// regardless of the kernel size. Positions outside the bounds are
// clamped to the nearest valid row or column so that blurring does not
// darken opaque content near the edges. Operates on premultiplied
// pixel data; an AlphaOnly surface restricts the math to the alpha
// channel.

// one 1-D pass: a kernel of `size` input pixels, `center` of which
// lie before the output position
type blurPass struct {
	size, center int
}

// BoxBlur blurs the bounds region of `in` with box kernels of width kx
// and height ky, applying the pass along the larger dimension first.
// Blurred output is transparent outside bounds; a kernel of size one or
// less is a no-op and returns the input surface unchanged, outside
// content included.
func BoxBlur(in *svgpix.SharedSurface, bounds svgpix.IRect, kx, ky int) (*svgpix.SharedSurface, error) {
	hp := []blurPass{{size: kx, center: kx / 2}}
	vp := []blurPass{{size: ky, center: ky / 2}}
	if bounds.Dx() >= bounds.Dy() {
		return blurBothAxes(in, bounds, hp, vp, false)
	}
	return blurBothAxes(in, bounds, vp, hp, true)
}

// gaussianBlur approximates a Gaussian of the given standard
// deviations with three successive box blurs per axis, using the
// kernel sizes of the SVG filter-effects specification.
func gaussianBlur(in *svgpix.SharedSurface, bounds svgpix.IRect, sx, sy float64) (*svgpix.SharedSurface, error) {
	hp := gaussianPasses(sx)
	vp := gaussianPasses(sy)
	if bounds.Dx() >= bounds.Dy() {
		return blurBothAxes(in, bounds, hp, vp, false)
	}
	return blurBothAxes(in, bounds, vp, hp, true)
}

// d = floor(s * 3/4 * sqrt(2*pi) + 0.5); for odd d three box blurs of
// size d centered on the output pixel; for even d two blurs of size d
// centered on the pixel boundaries on either side and one of size d+1
// centered on the pixel.
// wider than twice the largest surface dimension: beyond that, edge
// replication makes the window contents independent of the exact size
const maxKernelSize = 1 << 16

func gaussianPasses(sigma float64) []blurPass {
	f := math.Floor(sigma*3*math.Sqrt(2*math.Pi)/4 + 0.5)
	if f > maxKernelSize {
		f = maxKernelSize
	}
	d := int(f)
	if d <= 1 {
		return nil
	}
	if d%2 == 1 {
		c := d / 2
		return []blurPass{{d, c}, {d, c}, {d, c}}
	}
	return []blurPass{{d, d / 2}, {d, d/2 - 1}, {d + 1, d / 2}}
}

// blurBothAxes runs the first passes along one axis then the second
// ones along the other. vertical flips the direction of the first
// group; both orders are supported so callers can start with the
// cheaper dimension.
func blurBothAxes(in *svgpix.SharedSurface, bounds svgpix.IRect, first, second []blurPass, vertical bool) (*svgpix.SharedSurface, error) {
	cur := in
	var err error
	for _, p := range first {
		cur, err = blurPass1D(cur, bounds, p, vertical)
		if err != nil {
			return nil, err
		}
	}
	for _, p := range second {
		cur, err = blurPass1D(cur, bounds, p, !vertical)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}

// blurPass1D applies one sliding-window pass. The whole row (or
// column) is summed once into a prefix table, making each output pixel
// O(1) including the clamped edge replication.
func blurPass1D(in *svgpix.SharedSurface, bounds svgpix.IRect, pass blurPass, vertical bool) (*svgpix.SharedSurface, error) {
	if pass.size <= 1 || bounds.IsEmpty() {
		return in, nil
	}
	out, err := svgpix.NewExclusiveSurface(in.Width(), in.Height(), in.Type())
	if err != nil {
		return nil, backendError(err)
	}

	n := bounds.Dx()
	lines := bounds.Dy()
	if vertical {
		n, lines = lines, n
	}
	alphaOnly := in.Type() == svgpix.AlphaOnly

	at := func(line, i int) svgpix.Pixel {
		if vertical {
			return in.Pixel(bounds.X0+line, bounds.Y0+i)
		}
		return in.Pixel(bounds.X0+i, bounds.Y0+line)
	}
	set := func(line, i int, p svgpix.Pixel) {
		if vertical {
			out.SetPixel(bounds.X0+line, bounds.Y0+i, p)
		} else {
			out.SetPixel(bounds.X0+i, bounds.Y0+line, p)
		}
	}

	// prefix[c][i+1] holds the sum of channel c over the first i+1 pixels
	var prefix [4][]uint32
	for c := range prefix {
		prefix[c] = make([]uint32, n+1)
	}

	size, center := pass.size, pass.center
	// a window wider than twice the span sees the same replicated head
	// and tail pixels whatever its exact size; shrinking it keeps the
	// channel sums within uint32 range
	if limit := 2*n + 1; size > limit {
		center = limit/2 + (center - size/2)
		size = limit
	}
	half := uint32(size / 2)
	usize := uint32(size)

	for line := 0; line < lines; line++ {
		for i := 0; i < n; i++ {
			p := at(line, i)
			prefix[0][i+1] = prefix[0][i] + uint32(p.R)
			prefix[1][i+1] = prefix[1][i] + uint32(p.G)
			prefix[2][i+1] = prefix[2][i] + uint32(p.B)
			prefix[3][i+1] = prefix[3][i] + uint32(p.A)
		}
		head := at(line, 0)
		tail := at(line, n-1)
		headCh := [4]uint32{uint32(head.R), uint32(head.G), uint32(head.B), uint32(head.A)}
		tailCh := [4]uint32{uint32(tail.R), uint32(tail.G), uint32(tail.B), uint32(tail.A)}

		for i := 0; i < n; i++ {
			lo := i - center
			hi := lo + size - 1

			// window pixels clamped below 0 replicate the first pixel,
			// those past n-1 replicate the last one
			leftCount, rightCount := 0, 0
			if lo < 0 {
				leftCount = -lo
				if hi < 0 {
					leftCount = size
				}
			}
			if hi > n-1 {
				rightCount = hi - (n - 1)
				if lo > n-1 {
					rightCount = size
				}
			}
			midLo, midHi := maxInt(lo, 0), minInt(hi, n-1)

			var px svgpix.Pixel
			chans := [4]*uint8{&px.R, &px.G, &px.B, &px.A}
			for c := 0; c < 4; c++ {
				if alphaOnly && c != 3 {
					continue
				}
				sum := uint32(leftCount)*headCh[c] + uint32(rightCount)*tailCh[c]
				if midLo <= midHi {
					sum += prefix[c][midHi+1] - prefix[c][midLo]
				}
				*chans[c] = uint8((sum + half) / usize)
			}
			set(line, i, px)
		}
	}
	return out.Share(), nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
