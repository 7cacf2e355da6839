package svgpix

import (
	"math"
	"testing"
)

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

func TestPremultiplyRoundTrip(t *testing.T) {
	for _, a := range []uint8{1, 7, 51, 128, 200, 254, 255} {
		// rounding loses at most half a quantum in each direction,
		// scaled back up by 255/a on the way out
		tolerance := 255/(2*int(a)) + 1
		for c := 0; c < 256; c += 3 {
			p := Pixel{R: uint8(c), G: uint8(255 - c), B: uint8(c / 2), A: a}
			q := p.Premultiply().Unpremultiply()
			if q.A != a {
				t.Fatalf("alpha changed: %d -> %d", a, q.A)
			}
			if absDiff(q.R, p.R) > tolerance || absDiff(q.G, p.G) > tolerance {
				t.Errorf("drift beyond %d: a=%d %v -> %v", tolerance, a, p, q)
			}
		}
	}
}

func TestPremultiplyOpaqueExact(t *testing.T) {
	for c := 0; c < 256; c++ {
		p := Pixel{R: uint8(c), G: uint8(c), B: uint8(c), A: 255}
		if got := p.Premultiply(); got != p {
			t.Fatalf("opaque premultiply must be identity: %v -> %v", p, got)
		}
	}
}

func TestPremultiplyZeroAlpha(t *testing.T) {
	p := Pixel{R: 10, G: 20, B: 30, A: 0}
	if got := p.Premultiply(); got != (Pixel{}) {
		t.Errorf("expected zero pixel, got %v", got)
	}
	if got := p.Unpremultiply(); got != (Pixel{}) {
		t.Errorf("expected zero pixel, got %v", got)
	}
}

func TestPremultiplyBounds(t *testing.T) {
	// premultiplied channels never exceed alpha
	for a := 0; a < 256; a += 5 {
		for c := 0; c < 256; c += 7 {
			p := Pixel{R: uint8(c), A: uint8(a)}.Premultiply()
			if p.R > p.A {
				t.Fatalf("channel %d exceeds alpha %d", p.R, p.A)
			}
		}
	}
}

func TestLinearizeRoundTrip(t *testing.T) {
	// the float curves must invert each other within one quantum
	for c := 0; c < 256; c++ {
		s := float64(c) / 255
		back := unlinearize(linearize(s))
		if math.Abs(back-s) > 1.0/255 {
			t.Errorf("channel %d: got %f back, want %f", c, back, s)
		}
	}
}

func TestLinearizeTables(t *testing.T) {
	if Linearize(0) != 0 || Linearize(255) != 255 {
		t.Error("linearize must fix endpoints")
	}
	if Unlinearize(0) != 0 || Unlinearize(255) != 255 {
		t.Error("unlinearize must fix endpoints")
	}
	// monotonicity
	for c := 1; c < 256; c++ {
		if Linearize(uint8(c)) < Linearize(uint8(c-1)) {
			t.Fatalf("linearize not monotone at %d", c)
		}
		if Unlinearize(uint8(c)) < Unlinearize(uint8(c-1)) {
			t.Fatalf("unlinearize not monotone at %d", c)
		}
	}
}

func TestLuminance(t *testing.T) {
	if got := (Pixel{R: 255, G: 255, B: 255, A: 255}).Luminance(); got != 255 {
		t.Errorf("white luminance: got %d", got)
	}
	if got := (Pixel{A: 255}).Luminance(); got != 0 {
		t.Errorf("black luminance: got %d", got)
	}
	lum := (Pixel{G: 255}).Luminance()
	if lum < 180 || lum > 185 {
		t.Errorf("green luminance out of range: %d", lum)
	}
}
