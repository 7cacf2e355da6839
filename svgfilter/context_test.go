package svgfilter

import (
	"errors"
	"testing"

	"github.com/benoitkugler/svgfilters/svggeom"
	"github.com/benoitkugler/svgfilters/svgpix"
)

func TestResolveUnspecifiedDefaults(t *testing.T) {
	src := newSource(t, 6, 6)
	src.SetPixel(2, 2, svgpix.Pixel{R: 9, A: 9})
	ctx := newContext(t, src)

	// before any primitive, the implicit input is SourceGraphic
	out, standard, err := ctx.resolveRaw(InputRef{Kind: InUnspecified})
	if err != nil {
		t.Fatal(err)
	}
	if !standard {
		t.Error("implicit SourceGraphic is a standard input")
	}
	if got := out.Surface.Pixel(2, 2); got != (svgpix.Pixel{R: 9, A: 9}) {
		t.Errorf("got %v", got)
	}

	// afterwards, it is the previous result
	prev := FilterOutput{Surface: out.Surface, Bounds: svgpix.Rect(1, 1, 2, 2)}
	ctx.store("", prev)
	out, standard, err = ctx.resolveRaw(InputRef{Kind: InUnspecified})
	if err != nil {
		t.Fatal(err)
	}
	if standard {
		t.Error("a previous result is not a standard input")
	}
	if out.Bounds != prev.Bounds {
		t.Errorf("got %v", out.Bounds)
	}
}

func TestResolveSourceAlpha(t *testing.T) {
	src := newSource(t, 4, 4)
	src.SetPixel(1, 1, svgpix.Pixel{R: 80, G: 80, B: 80, A: 160})
	ctx := newContext(t, src)

	out, _, err := ctx.resolveRaw(InputRef{Kind: InSourceAlpha})
	if err != nil {
		t.Fatal(err)
	}
	if out.Surface.Type() != svgpix.AlphaOnly {
		t.Fatalf("type: got %v", out.Surface.Type())
	}
	if got := out.Surface.Pixel(1, 1); got != (svgpix.Pixel{A: 160}) {
		t.Errorf("got %v", got)
	}

	// the derived surface is cached
	again, _, _ := ctx.resolveRaw(InputRef{Kind: InSourceAlpha})
	if again.Surface != out.Surface {
		t.Error("SourceAlpha must be derived once")
	}
}

func TestResolveMissingOptionalInputs(t *testing.T) {
	ctx := newContext(t, newSource(t, 4, 4))
	for _, kind := range []InputKind{InBackgroundImage, InBackgroundAlpha, InFillPaint, InStrokePaint} {
		out, standard, err := ctx.resolveRaw(InputRef{Kind: kind})
		if err != nil {
			t.Fatal(err)
		}
		if !standard {
			t.Errorf("kind %d must be standard", kind)
		}
		if got := out.Surface.Pixel(1, 1); got != (svgpix.Pixel{}) {
			t.Errorf("kind %d: expected transparent, got %v", kind, got)
		}
	}
}

func TestResolveProvidedBackground(t *testing.T) {
	bg := newSource(t, 4, 4)
	bg.SetPixel(0, 0, svgpix.Pixel{B: 50, A: 50})
	ctx := newContext(t, newSource(t, 4, 4))
	ctx.SetBackground(bg.Share())

	out, _, err := ctx.resolveRaw(InputRef{Kind: InBackgroundImage})
	if err != nil {
		t.Fatal(err)
	}
	if got := out.Surface.Pixel(0, 0); got != (svgpix.Pixel{B: 50, A: 50}) {
		t.Errorf("got %v", got)
	}

	alpha, _, err := ctx.resolveRaw(InputRef{Kind: InBackgroundAlpha})
	if err != nil {
		t.Fatal(err)
	}
	if got := alpha.Surface.Pixel(0, 0); got != (svgpix.Pixel{A: 50}) {
		t.Errorf("alpha: got %v", got)
	}
}

func TestResolveMissingNamedResult(t *testing.T) {
	ctx := newContext(t, newSource(t, 4, 4))
	_, _, err := ctx.resolveRaw(InputRef{Kind: InResult, Name: "nope"})
	var fe FilterError
	if !errors.As(err, &fe) || fe.Kind != InvalidInput {
		t.Errorf("expected an InvalidInput error, got %v", err)
	}
}

func TestReferenceBudget(t *testing.T) {
	src := newSource(t, 4, 4).Share()
	opts := RenderOptions{DPI: 96, Limits: Limits{MaxReferences: 3, MaxNesting: 50}}
	ctx := NewContext(src, svggeom.Identity, src.Bounds(), opts)
	ctx.store("r", FilterOutput{Surface: ctx.source, Bounds: ctx.region})

	ref := InputRef{Kind: InResult, Name: "r"}
	for i := 0; i < 3; i++ {
		if _, _, err := ctx.resolveRaw(ref); err != nil {
			t.Fatalf("lookup %d: %v", i, err)
		}
	}
	_, _, err := ctx.resolveRaw(ref)
	var le LimitError
	if !errors.As(err, &le) {
		t.Errorf("expected a LimitError, got %v", err)
	}
}

func TestNestingBudget(t *testing.T) {
	tracker := NewLimitTracker(Limits{MaxNesting: 2})
	if err := tracker.EnterNested(); err != nil {
		t.Fatal(err)
	}
	if err := tracker.EnterNested(); err != nil {
		t.Fatal(err)
	}
	err := tracker.EnterNested()
	var le LimitError
	if !errors.As(err, &le) {
		t.Fatalf("expected a LimitError, got %v", err)
	}
	tracker.LeaveNested()
	if err := tracker.EnterNested(); err != nil {
		t.Errorf("leaving must free a level: %v", err)
	}
}

func TestZeroLimitsFallBack(t *testing.T) {
	tracker := NewLimitTracker(Limits{})
	if tracker.limits != DefaultLimits {
		t.Errorf("got %+v", tracker.limits)
	}
}
