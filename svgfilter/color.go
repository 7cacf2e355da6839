package svgfilter

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// parsing of flood-color style values

var colorNames = map[string]color.NRGBA{
	"black":   {0x00, 0x00, 0x00, 0xff},
	"silver":  {0xc0, 0xc0, 0xc0, 0xff},
	"gray":    {0x80, 0x80, 0x80, 0xff},
	"grey":    {0x80, 0x80, 0x80, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"maroon":  {0x80, 0x00, 0x00, 0xff},
	"red":     {0xff, 0x00, 0x00, 0xff},
	"purple":  {0x80, 0x00, 0x80, 0xff},
	"fuchsia": {0xff, 0x00, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"green":   {0x00, 0x80, 0x00, 0xff},
	"lime":    {0x00, 0xff, 0x00, 0xff},
	"olive":   {0x80, 0x80, 0x00, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"navy":    {0x00, 0x00, 0x80, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"teal":    {0x00, 0x80, 0x80, 0xff},
	"aqua":    {0x00, 0xff, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"orange":  {0xff, 0xa5, 0x00, 0xff},
}

var errBadColor = errors.New("invalid color value")

// parseSVGColor reads hexadecimal, rgb()/rgba(), named and
// currentColor values. currentColor is resolved at render time against
// the cascaded `color` property.
func parseSVGColor(v string) (c color.NRGBA, isCurrent bool, err error) {
	v = strings.TrimSpace(v)
	if v == "currentColor" {
		return color.NRGBA{}, true, nil
	}
	if named, ok := colorNames[strings.ToLower(v)]; ok {
		return named, false, nil
	}
	if strings.HasPrefix(v, "#") {
		c, err = parseHexColor(v[1:])
		return c, false, err
	}
	if strings.HasPrefix(v, "rgb(") || strings.HasPrefix(v, "rgba(") {
		c, err = parseRGBColor(v)
		return c, false, err
	}
	return color.NRGBA{}, false, fmt.Errorf("%w: %q", errBadColor, v)
}

func parseHexColor(hex string) (color.NRGBA, error) {
	var r, g, b uint64
	var err error
	switch len(hex) {
	case 3:
		r, err = strconv.ParseUint(strings.Repeat(hex[0:1], 2), 16, 8)
		if err == nil {
			g, err = strconv.ParseUint(strings.Repeat(hex[1:2], 2), 16, 8)
		}
		if err == nil {
			b, err = strconv.ParseUint(strings.Repeat(hex[2:3], 2), 16, 8)
		}
	case 6:
		r, err = strconv.ParseUint(hex[0:2], 16, 8)
		if err == nil {
			g, err = strconv.ParseUint(hex[2:4], 16, 8)
		}
		if err == nil {
			b, err = strconv.ParseUint(hex[4:6], 16, 8)
		}
	default:
		err = fmt.Errorf("%w: #%s", errBadColor, hex)
	}
	if err != nil {
		return color.NRGBA{}, err
	}
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}, nil
}

func parseRGBColor(v string) (color.NRGBA, error) {
	open := strings.Index(v, "(")
	if !strings.HasSuffix(v, ")") {
		return color.NRGBA{}, fmt.Errorf("%w: %q", errBadColor, v)
	}
	fields := splitOnCommaOrSpace(v[open+1 : len(v)-1])
	if len(fields) != 3 && len(fields) != 4 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", errBadColor, v)
	}
	var chans [3]uint8
	for i, f := range fields[:3] {
		if strings.HasSuffix(f, "%") {
			p, err := parseFloat(strings.TrimSuffix(f, "%"), 64)
			if err != nil {
				return color.NRGBA{}, err
			}
			chans[i] = uint8(clamp01(p/100)*255 + 0.5)
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return color.NRGBA{}, err
		}
		if n < 0 {
			n = 0
		}
		if n > 255 {
			n = 255
		}
		chans[i] = uint8(n)
	}
	a := uint8(0xff)
	if len(fields) == 4 {
		f, err := parseFloat(fields[3], 64)
		if err != nil {
			return color.NRGBA{}, err
		}
		a = uint8(clamp01(f)*255 + 0.5)
	}
	return color.NRGBA{R: chans[0], G: chans[1], B: chans[2], A: a}, nil
}
