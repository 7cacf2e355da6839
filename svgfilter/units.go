package svgfilter

import (
	"strconv"
	"strings"
)

// Unit is the unit of a parsed length attribute.
type Unit uint8

const (
	Px Unit = iota // includes unitless numbers
	Perc
	In
	Cm
	Mm
	Pt
	Pc
)

// Length is a numeric attribute kept with its unit: absolute units
// need the DPI of the render call to resolve, percentages a reference
// extent.
type Length struct {
	Value float64
	U     Unit
}

// parseLength reads a number with an optional unit suffix.
func parseLength(v string) (Length, error) {
	v = strings.TrimSpace(v)
	u := Px
	switch {
	case strings.HasSuffix(v, "%"):
		u, v = Perc, strings.TrimSuffix(v, "%")
	case strings.HasSuffix(v, "in"):
		u, v = In, strings.TrimSuffix(v, "in")
	case strings.HasSuffix(v, "cm"):
		u, v = Cm, strings.TrimSuffix(v, "cm")
	case strings.HasSuffix(v, "mm"):
		u, v = Mm, strings.TrimSuffix(v, "mm")
	case strings.HasSuffix(v, "pt"):
		u, v = Pt, strings.TrimSuffix(v, "pt")
	case strings.HasSuffix(v, "pc"):
		u, v = Pc, strings.TrimSuffix(v, "pc")
	case strings.HasSuffix(v, "px"):
		v = strings.TrimSuffix(v, "px")
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return Length{}, err
	}
	return Length{Value: f, U: u}, nil
}

// resolve returns the length in user units. ref is the extent
// percentages are relative to; for objectBoundingBox attributes the
// caller passes ref=1 and scales by the bounding box afterwards.
func (l Length) resolve(dpi, ref float64) float64 {
	switch l.U {
	case Perc:
		return l.Value / 100 * ref
	case In:
		return l.Value * dpi
	case Cm:
		return l.Value * dpi / 2.54
	case Mm:
		return l.Value * dpi / 25.4
	case Pt:
		return l.Value * dpi / 72
	case Pc:
		return l.Value * dpi / 6
	default:
		return l.Value
	}
}
