package svgfilter

func (p *Primitive) renderGaussianBlur(ctx *FilterContext, k GaussianBlur) (FilterOutput, error) {
	if k.StdX < 0 || k.StdY < 0 {
		return FilterOutput{}, invalidUnits("negative stdDeviation")
	}
	in, err := ctx.resolveInput(p.In, p.space())
	if err != nil {
		return FilterOutput{}, err
	}
	builder := newBoundsBuilder(ctx)
	builder.addInput(in)
	bounds, err := builder.build(p)
	if err != nil {
		return FilterOutput{}, err
	}

	sx, sy := ctx.deviceStdDeviation(k.StdX, k.StdY)
	blurred, err := gaussianBlur(in.Surface, bounds, sx, sy)
	if err != nil {
		return FilterOutput{}, err
	}
	return FilterOutput{Surface: blurred, Bounds: bounds}, nil
}
