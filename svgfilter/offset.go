package svgfilter

func (p *Primitive) renderOffset(ctx *FilterContext, k Offset) (FilterOutput, error) {
	// color-interpolation-filters is irrelevant here: pixels only move
	in, err := ctx.resolveInput(p.In, ColorAuto)
	if err != nil {
		return FilterOutput{}, err
	}
	builder := newBoundsBuilder(ctx)
	builder.addInput(in)
	bounds, err := builder.build(p)
	if err != nil {
		return FilterOutput{}, err
	}

	dx, dy := ctx.deviceOffset(k.Dx, k.Dy)

	out, err := ctx.newSurface(in.Surface.Type())
	if err != nil {
		return FilterOutput{}, err
	}
	// pixels shifted out of the input bounds are dropped, the vacated
	// area stays transparent
	for y := bounds.Y0; y < bounds.Y1; y++ {
		for x := bounds.X0; x < bounds.X1; x++ {
			if !in.Bounds.Contains(x-dx, y-dy) {
				continue
			}
			out.SetPixel(x, y, in.Surface.Pixel(x-dx, y-dy))
		}
	}
	return FilterOutput{Surface: out.Share(), Bounds: bounds}, nil
}
