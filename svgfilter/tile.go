package svgfilter

func (p *Primitive) renderTile(ctx *FilterContext) (FilterOutput, error) {
	in, standard, err := ctx.resolveRaw(p.In)
	if err != nil {
		return FilterOutput{}, err
	}
	// a standard input carries no bounded prior tile; nothing sensible
	// to repeat, so the input passes through unchanged
	if standard || in.Bounds.IsEmpty() {
		return in, nil
	}

	// the tile fills its subregion: inputs do not shrink the default
	builder := newBoundsBuilder(ctx)
	bounds, err := builder.build(p)
	if err != nil {
		return FilterOutput{}, err
	}

	tile := in.Bounds
	tw, th := tile.Dx(), tile.Dy()

	out, err := ctx.newSurface(in.Surface.Type())
	if err != nil {
		return FilterOutput{}, err
	}
	for y := bounds.Y0; y < bounds.Y1; y++ {
		ty := tile.Y0 + mod(y-tile.Y0, th)
		for x := bounds.X0; x < bounds.X1; x++ {
			tx := tile.X0 + mod(x-tile.X0, tw)
			out.SetPixel(x, y, in.Surface.Pixel(tx, ty))
		}
	}
	return FilterOutput{Surface: out.Share(), Bounds: bounds}, nil
}

// mod is the positive remainder
func mod(v, m int) int {
	v %= m
	if v < 0 {
		v += m
	}
	return v
}
