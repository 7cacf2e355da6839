package svgfilter

import (
	"encoding/xml"
	"errors"
	"image/color"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgfilters/svggeom"
	"golang.org/x/net/html/charset"
)

// Parsing of a <filter> element fragment into a Filter. This is the
// set_attributes phase of the primitive contract: raw attribute
// strings become typed fields, independently of any rendering state.

// ErrorMode determines if the parser ignores, errors out, or logs a
// warning when it finds an element it does not handle.
type ErrorMode uint8

const (
	IgnoreErrorMode ErrorMode = iota
	WarnErrorMode
	StrictErrorMode
)

type filterCursor struct {
	filter    *Filter
	errorMode ErrorMode
	mergeIdx  int // index of the open feMerge, or -1
}

type feFunc func(c *filterCursor, attrs []xml.Attr) error

var feFuncs = map[string]feFunc{
	"feFlood":        feFloodF,
	"feOffset":       feOffsetF,
	"feTile":         feTileF,
	"feGaussianBlur": feGaussianBlurF,
	"feComposite":    feCompositeF,
	"feMerge":        feMergeF,
	"feMergeNode":    feMergeNodeF,
	"feDropShadow":   feDropShadowF,
}

func parseFloat(s string, bitSize int) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), bitSize)
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' '
		})
}

// ReadFilterStream parses one <filter> element from the given reader.
// errMode determines how unsupported filter primitives are treated.
func ReadFilterStream(stream io.Reader, errMode ErrorMode) (*Filter, error) {
	cursor := &filterCursor{filter: NewFilter(), mergeIdx: -1}
	cursor.errorMode = errMode
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenFilter := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenFilter {
					return nil, errors.New("invalid svg xml filter")
				}
				break
			}
			return cursor.filter, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			if se.Name.Local == "filter" {
				seenFilter = true
				if err = cursor.readFilterAttrs(se.Attr); err != nil {
					return cursor.filter, err
				}
				continue
			}
			if !seenFilter {
				continue
			}
			if err = cursor.readStartElement(se); err != nil {
				return cursor.filter, err
			}
		case xml.EndElement:
			if se.Name.Local == "feMerge" {
				cursor.mergeIdx = -1
			}
			if se.Name.Local == "filter" && seenFilter {
				return cursor.filter, nil
			}
		}
	}
	return cursor.filter, nil
}

func (c *filterCursor) readStartElement(se xml.StartElement) error {
	ff, ok := feFuncs[se.Name.Local]
	if !ok {
		errStr := "Cannot process filter element " + se.Name.Local
		if c.errorMode == StrictErrorMode {
			return errors.New(errStr)
		} else if c.errorMode == WarnErrorMode {
			log.Println(errStr)
		}
		return nil
	}
	if se.Name.Local != "feMergeNode" && se.Name.Local != "feMerge" {
		c.mergeIdx = -1
	}
	return ff(c, se.Attr)
}

func (c *filterCursor) readFilterAttrs(attrs []xml.Attr) error {
	f := c.filter
	for _, attr := range attrs {
		var err error
		switch attr.Name.Local {
		case "x":
			f.X, err = parseLengthPtr(attr.Value)
		case "y":
			f.Y, err = parseLengthPtr(attr.Value)
		case "width":
			f.Width, err = parseLengthPtr(attr.Value)
		case "height":
			f.Height, err = parseLengthPtr(attr.Value)
		case "filterUnits":
			f.Units, err = parseUnits(attr.Value)
		case "primitiveUnits":
			f.PrimitiveUnits, err = parseUnits(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func parseLengthPtr(v string) (*Length, error) {
	l, err := parseLength(v)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func parseUnits(v string) (svggeom.Units, error) {
	switch v {
	case "userSpaceOnUse":
		return svggeom.UserSpaceOnUse, nil
	case "objectBoundingBox":
		return svggeom.ObjectBoundingBox, nil
	default:
		return 0, errors.New("invalid units " + v)
	}
}

// parseCommonAttrs fills the attributes shared by all primitives.
// Unknown attributes are left to the kind-specific parsers.
func parseCommonAttrs(p *Primitive, attrs []xml.Attr) error {
	for _, attr := range attrs {
		var err error
		switch attr.Name.Local {
		case "x":
			p.X, err = parseLengthPtr(attr.Value)
		case "y":
			p.Y, err = parseLengthPtr(attr.Value)
		case "width":
			p.Width, err = parseLengthPtr(attr.Value)
		case "height":
			p.Height, err = parseLengthPtr(attr.Value)
		case "in":
			p.In = ParseInput(attr.Value)
		case "result":
			p.Result = attr.Value
		case "color-interpolation-filters":
			switch attr.Value {
			case "sRGB":
				p.ColorInterpolation = ColorSRGB
			case "linearRGB", "auto":
				p.ColorInterpolation = ColorLinearRGB
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *filterCursor) push(p Primitive) {
	c.filter.Primitives = append(c.filter.Primitives, p)
}

func feFloodF(c *filterCursor, attrs []xml.Attr) error {
	var p Primitive
	if err := parseCommonAttrs(&p, attrs); err != nil {
		return err
	}
	k := Flood{Color: color.NRGBA{A: 255}, Opacity: 1}
	for _, attr := range attrs {
		var err error
		switch attr.Name.Local {
		case "flood-color":
			k.Color, k.IsCurrentColor, err = parseSVGColor(attr.Value)
		case "flood-opacity":
			k.Opacity, err = parseFloat(attr.Value, 64)
		}
		if err != nil {
			return err
		}
	}
	p.Effect = k
	c.push(p)
	return nil
}

func feOffsetF(c *filterCursor, attrs []xml.Attr) error {
	var p Primitive
	if err := parseCommonAttrs(&p, attrs); err != nil {
		return err
	}
	var k Offset
	for _, attr := range attrs {
		var err error
		switch attr.Name.Local {
		case "dx":
			k.Dx, err = parseFloat(attr.Value, 64)
		case "dy":
			k.Dy, err = parseFloat(attr.Value, 64)
		}
		if err != nil {
			return err
		}
	}
	p.Effect = k
	c.push(p)
	return nil
}

func feTileF(c *filterCursor, attrs []xml.Attr) error {
	var p Primitive
	if err := parseCommonAttrs(&p, attrs); err != nil {
		return err
	}
	p.Effect = Tile{}
	c.push(p)
	return nil
}

// parseStdDeviation reads "x" or "x y"; negative values are a parse
// error, the primitive never renders.
func parseStdDeviation(v string) (sx, sy float64, err error) {
	fields := splitOnCommaOrSpace(v)
	switch len(fields) {
	case 1:
		sx, err = parseFloat(fields[0], 64)
		sy = sx
	case 2:
		sx, err = parseFloat(fields[0], 64)
		if err == nil {
			sy, err = parseFloat(fields[1], 64)
		}
	default:
		return 0, 0, errors.New("invalid stdDeviation " + v)
	}
	if err != nil {
		return 0, 0, err
	}
	if sx < 0 || sy < 0 {
		return 0, 0, errors.New("negative stdDeviation " + v)
	}
	return sx, sy, nil
}

func feGaussianBlurF(c *filterCursor, attrs []xml.Attr) error {
	var p Primitive
	if err := parseCommonAttrs(&p, attrs); err != nil {
		return err
	}
	var k GaussianBlur
	for _, attr := range attrs {
		var err error
		switch attr.Name.Local {
		case "stdDeviation":
			k.StdX, k.StdY, err = parseStdDeviation(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	p.Effect = k
	c.push(p)
	return nil
}

func feCompositeF(c *filterCursor, attrs []xml.Attr) error {
	var p Primitive
	if err := parseCommonAttrs(&p, attrs); err != nil {
		return err
	}
	k := Composite{Operator: OpOver}
	for _, attr := range attrs {
		var err error
		switch attr.Name.Local {
		case "in2":
			k.In2 = ParseInput(attr.Value)
		case "operator":
			switch attr.Value {
			case "over":
				k.Operator = OpOver
			case "in":
				k.Operator = OpIn
			case "out":
				k.Operator = OpOut
			case "atop":
				k.Operator = OpAtop
			case "xor":
				k.Operator = OpXor
			case "arithmetic":
				k.Operator = OpArithmetic
			default:
				err = errors.New("invalid composite operator " + attr.Value)
			}
		case "k1":
			k.K1, err = parseFloat(attr.Value, 64)
		case "k2":
			k.K2, err = parseFloat(attr.Value, 64)
		case "k3":
			k.K3, err = parseFloat(attr.Value, 64)
		case "k4":
			k.K4, err = parseFloat(attr.Value, 64)
		}
		if err != nil {
			return err
		}
	}
	p.Effect = k
	c.push(p)
	return nil
}

func feMergeF(c *filterCursor, attrs []xml.Attr) error {
	var p Primitive
	if err := parseCommonAttrs(&p, attrs); err != nil {
		return err
	}
	p.Effect = Merge{}
	c.push(p)
	c.mergeIdx = len(c.filter.Primitives) - 1
	return nil
}

func feMergeNodeF(c *filterCursor, attrs []xml.Attr) error {
	if c.mergeIdx < 0 {
		return errors.New("feMergeNode outside of feMerge")
	}
	var in InputRef
	for _, attr := range attrs {
		if attr.Name.Local == "in" {
			in = ParseInput(attr.Value)
		}
	}
	merge := c.filter.Primitives[c.mergeIdx].Effect.(Merge)
	merge.Inputs = append(merge.Inputs, in)
	c.filter.Primitives[c.mergeIdx].Effect = merge
	return nil
}

func feDropShadowF(c *filterCursor, attrs []xml.Attr) error {
	var p Primitive
	if err := parseCommonAttrs(&p, attrs); err != nil {
		return err
	}
	// defaults per the filter-effects specification
	k := DropShadow{Dx: 2, Dy: 2, StdX: 2, StdY: 2, Color: color.NRGBA{A: 255}, Opacity: 1}
	for _, attr := range attrs {
		var err error
		switch attr.Name.Local {
		case "dx":
			k.Dx, err = parseFloat(attr.Value, 64)
		case "dy":
			k.Dy, err = parseFloat(attr.Value, 64)
		case "stdDeviation":
			k.StdX, k.StdY, err = parseStdDeviation(attr.Value)
		case "flood-color":
			k.Color, k.IsCurrentColor, err = parseSVGColor(attr.Value)
		case "flood-opacity":
			k.Opacity, err = parseFloat(attr.Value, 64)
		}
		if err != nil {
			return err
		}
	}
	p.Effect = k
	c.push(p)
	return nil
}
