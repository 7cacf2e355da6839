package svgfilter

func (p *Primitive) renderMerge(ctx *FilterContext, k Merge) (FilterOutput, error) {
	space := p.space()
	inputs := make([]FilterOutput, len(k.Inputs))
	builder := newBoundsBuilder(ctx)
	for i, ref := range k.Inputs {
		in, err := ctx.resolveInput(ref, space)
		if err != nil {
			return FilterOutput{}, err
		}
		inputs[i] = in
		builder.addInput(in)
	}
	bounds, err := builder.build(p)
	if err != nil {
		return FilterOutput{}, err
	}

	out, err := ctx.newSurface(space.surfaceType())
	if err != nil {
		return FilterOutput{}, err
	}
	// document order: the first node ends up at the bottom of the stack
	for _, in := range inputs {
		compositeOver(out, in.Surface, bounds.Intersect(in.Bounds))
	}
	return FilterOutput{Surface: out.Share(), Bounds: bounds}, nil
}
