package svgfilter

import (
	"testing"

	"github.com/benoitkugler/svgfilters/svgpix"
)

func fillSurface(t *testing.T, w, h int, kind svgpix.SurfaceType, p svgpix.Pixel) *svgpix.SharedSurface {
	t.Helper()
	s, err := svgpix.NewExclusiveSurface(w, h, kind)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.SetPixel(x, y, p)
		}
	}
	return s.Share()
}

func TestBoxBlurSizeOneIsIdentity(t *testing.T) {
	s, _ := svgpix.NewExclusiveSurface(5, 5, svgpix.SRGB)
	s.SetPixel(2, 2, svgpix.Pixel{R: 33, A: 33})
	in := s.Share()
	out, err := BoxBlur(in, in.Bounds(), 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got := out.Pixel(2, 2); got != (svgpix.Pixel{R: 33, A: 33}) {
		t.Errorf("got %v", got)
	}
}

func TestBoxBlurSizeOneKeepsInput(t *testing.T) {
	s, _ := svgpix.NewExclusiveSurface(6, 6, svgpix.SRGB)
	s.SetPixel(0, 0, svgpix.Pixel{B: 77, A: 77})
	in := s.Share()
	out, err := BoxBlur(in, svgpix.Rect(2, 2, 6, 6), 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Error("a degenerate kernel must hand the input surface back")
	}
	if got := out.Pixel(0, 0); got != (svgpix.Pixel{B: 77, A: 77}) {
		t.Errorf("content outside the bounds: got %v", got)
	}
}

func TestBoxBlurHugeKernelUniform(t *testing.T) {
	fill := svgpix.Pixel{R: 200, G: 100, B: 50, A: 255}
	in := fillSurface(t, 4, 4, svgpix.SRGB, fill)
	// kernels far wider than the surface clamp to the span instead of
	// overflowing the window sums
	out, err := BoxBlur(in, in.Bounds(), 100_000_000, 100_000_000)
	if err != nil {
		t.Fatal(err)
	}
	for _, pos := range [][2]int{{0, 0}, {2, 1}, {3, 3}} {
		if got := out.Pixel(pos[0], pos[1]); got != fill {
			t.Errorf("(%d,%d): got %v, want %v", pos[0], pos[1], got, fill)
		}
	}
}

func TestBoxBlurImpulseSymmetry(t *testing.T) {
	s, _ := svgpix.NewExclusiveSurface(9, 9, svgpix.SRGB)
	s.SetPixel(4, 4, svgpix.Pixel{A: 255})
	in := s.Share()

	out, err := BoxBlur(in, in.Bounds(), 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	// a centered odd kernel spreads the impulse symmetrically
	if out.Pixel(3, 4).A != out.Pixel(5, 4).A {
		t.Errorf("horizontal asymmetry: %d vs %d", out.Pixel(3, 4).A, out.Pixel(5, 4).A)
	}
	if out.Pixel(4, 3).A != out.Pixel(4, 5).A {
		t.Errorf("vertical asymmetry: %d vs %d", out.Pixel(4, 3).A, out.Pixel(4, 5).A)
	}
	// 255/9 per covered pixel
	if got := out.Pixel(4, 4).A; got < 27 || got > 29 {
		t.Errorf("center: got %d, want about 28", got)
	}
	if got := out.Pixel(7, 4).A; got != 0 {
		t.Errorf("outside the kernel support: got %d", got)
	}
}

func TestBoxBlurUniform(t *testing.T) {
	fill := svgpix.Pixel{R: 40, G: 80, B: 120, A: 255}
	in := fillSurface(t, 12, 7, svgpix.SRGB, fill)
	out, err := BoxBlur(in, in.Bounds(), 5, 5)
	if err != nil {
		t.Fatal(err)
	}
	// edge replication keeps a uniform region exactly uniform
	for _, pos := range [][2]int{{0, 0}, {11, 6}, {5, 3}} {
		if got := out.Pixel(pos[0], pos[1]); got != fill {
			t.Errorf("(%d,%d): got %v", pos[0], pos[1], got)
		}
	}
}

func TestBoxBlurAlphaOnly(t *testing.T) {
	s, _ := svgpix.NewExclusiveSurface(7, 7, svgpix.AlphaOnly)
	s.SetPixel(3, 3, svgpix.Pixel{A: 255})
	in := s.Share()
	out, err := BoxBlur(in, in.Bounds(), 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	got := out.Pixel(3, 3)
	if got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("color channels of an alpha mask must stay zero: %v", got)
	}
	if got.A == 0 {
		t.Error("alpha must spread")
	}
	if out.Type() != svgpix.AlphaOnly {
		t.Errorf("type: got %v", out.Type())
	}
}

func TestBoxBlurRespectsBounds(t *testing.T) {
	fill := svgpix.Pixel{G: 200, A: 255}
	in := fillSurface(t, 10, 10, svgpix.SRGB, fill)
	out, err := BoxBlur(in, svgpix.Rect(2, 2, 8, 8), 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got := out.Pixel(5, 5); got != fill {
		t.Errorf("inside: got %v", got)
	}
	if got := out.Pixel(0, 0); got != (svgpix.Pixel{}) {
		t.Errorf("outside the bounds must stay transparent: %v", got)
	}
}

func TestGaussianPasses(t *testing.T) {
	if p := gaussianPasses(0); p != nil {
		t.Errorf("sigma 0: got %v", p)
	}
	// sigma 2 gives d=4: two offset passes and one of d+1
	p := gaussianPasses(2)
	if len(p) != 3 {
		t.Fatalf("got %d passes", len(p))
	}
	if p[0].size != 4 || p[1].size != 4 || p[2].size != 5 {
		t.Errorf("sizes: got %v", p)
	}
	// odd d: three identical centered passes
	p = gaussianPasses(1.6)
	if p[0].size%2 != 1 || p[0] != p[1] || p[1] != p[2] {
		t.Errorf("odd kernel passes: got %v", p)
	}
	// absurd deviations clamp instead of overflowing the pass size
	for _, b := range gaussianPasses(1e18) {
		if b.size < 2 || b.size > maxKernelSize+1 {
			t.Errorf("unclamped pass size %d", b.size)
		}
	}
}
