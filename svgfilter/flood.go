package svgfilter

func (p *Primitive) renderFlood(ctx *FilterContext, k Flood) (FilterOutput, error) {
	// flood ignores all inputs: the default extent is the filter region
	builder := newBoundsBuilder(ctx)
	bounds, err := builder.build(p)
	if err != nil {
		return FilterOutput{}, err
	}

	space := p.space()
	out, err := ctx.newSurface(space.surfaceType())
	if err != nil {
		return FilterOutput{}, err
	}
	px := resolveColor(ctx, k.Color, k.IsCurrentColor, k.Opacity, space)
	for y := bounds.Y0; y < bounds.Y1; y++ {
		for x := bounds.X0; x < bounds.X1; x++ {
			out.SetPixel(x, y, px)
		}
	}
	return FilterOutput{Surface: out.Share(), Bounds: bounds}, nil
}
