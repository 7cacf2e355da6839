package svgfilter

import "github.com/benoitkugler/svgfilters/svgpix"

// feDropShadow expands internally to an alpha-only gaussian blur of
// the input, offset and recolored with the shadow color, with the
// original input merged back on top.
func (p *Primitive) renderDropShadow(ctx *FilterContext, k DropShadow) (FilterOutput, error) {
	if k.StdX < 0 || k.StdY < 0 {
		return FilterOutput{}, invalidUnits("negative stdDeviation")
	}
	space := p.space()
	in, err := ctx.resolveInput(p.In, space)
	if err != nil {
		return FilterOutput{}, err
	}
	builder := newBoundsBuilder(ctx)
	builder.addInput(in)
	bounds, err := builder.build(p)
	if err != nil {
		return FilterOutput{}, err
	}

	// the shadow mask only needs the alpha channel: skip the color math
	mask, err := in.Surface.ExtractAlpha()
	if err != nil {
		return FilterOutput{}, backendError(err)
	}
	sx, sy := ctx.deviceStdDeviation(k.StdX, k.StdY)
	mask, err = gaussianBlur(mask, bounds, sx, sy)
	if err != nil {
		return FilterOutput{}, err
	}

	dx, dy := ctx.deviceOffset(k.Dx, k.Dy)
	shadowColor := resolveColor(ctx, k.Color, k.IsCurrentColor, k.Opacity, space)

	out, err := ctx.newSurface(space.surfaceType())
	if err != nil {
		return FilterOutput{}, err
	}
	for y := bounds.Y0; y < bounds.Y1; y++ {
		for x := bounds.X0; x < bounds.X1; x++ {
			if !bounds.Contains(x-dx, y-dy) {
				continue
			}
			a := uint32(mask.Pixel(x-dx, y-dy).A)
			out.SetPixel(x, y, svgpix.Pixel{
				R: uint8((uint32(shadowColor.R)*a + 127) / 255),
				G: uint8((uint32(shadowColor.G)*a + 127) / 255),
				B: uint8((uint32(shadowColor.B)*a + 127) / 255),
				A: uint8((uint32(shadowColor.A)*a + 127) / 255),
			})
		}
	}
	// original on top of its shadow
	compositeOver(out, in.Surface, bounds.Intersect(in.Bounds))

	return FilterOutput{Surface: out.Share(), Bounds: bounds}, nil
}
