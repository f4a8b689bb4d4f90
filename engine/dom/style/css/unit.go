package css

import (
	"strconv"

	"github.com/npillmayer/ivy/core/dimen"
)

// UnitKind tells what a length is measured in.
type UnitKind uint8

// Unit kinds. All kinds but Absolute need context information to be converted
// to pixels.
const (
	Absolute                   UnitKind = iota // pixels
	RelativeToParentFontSize                   // em
	RelativeToParentFontHeight                 // ex
	RelativeToGlyph0Width                      // ch
	RelativeToRootFontSize                     // rem
	RelativeToLineHeight                       // lh
)

var unitSuffix = [...]string{"px", "em", "ex", "ch", "rem", "lh"}

var relativeUnits = map[string]UnitKind{
	"em":  RelativeToParentFontSize,
	"ex":  RelativeToParentFontHeight,
	"ch":  RelativeToGlyph0Width,
	"rem": RelativeToRootFontSize,
	"lh":  RelativeToLineHeight,
}

// Unit is a unit together with a magnitude. The zero value is 0px.
type Unit struct {
	Kind      UnitKind
	Magnitude float64
}

// IsAbsolute is true for units measured in pixels.
func (u Unit) IsAbsolute() bool {
	return u.Kind == Absolute
}

func (u Unit) String() string {
	suffix := "?"
	if int(u.Kind) < len(unitSuffix) {
		suffix = unitSuffix[u.Kind]
	}
	return strconv.FormatFloat(u.Magnitude, 'f', -1, 64) + suffix
}

// Dimension is a CSS length. Absolute lengths are always stored in pixels,
// relative lengths keep the number as written.
type Dimension struct {
	Number float64
	Unit   Unit
}

// Px creates an absolute dimension of x pixels.
func Px(x float64) Dimension {
	return Dimension{Number: x, Unit: Unit{Kind: Absolute, Magnitude: x}}
}

// Relative creates a dimension relative to some font or line property.
func Relative(x float64, kind UnitKind) Dimension {
	return Dimension{Number: x, Unit: Unit{Kind: kind, Magnitude: x}}
}

func (d Dimension) String() string {
	return d.Unit.String()
}

// ParseDimension parses a CSS length, e.g. "12px", "1.5em" or "10mm".
// Absolute units are converted to pixels, 1in being 96px.
//
// It will never return an error: an unknown unit is interpreted as pixels,
// and a string without a parsable number results in 0px. Both cases are
// reported to the tracer.
func ParseDimension(s string) Dimension {
	n, unit, err := dimen.Split(s)
	if err != nil {
		tracer().Infof("cannot parse dimension %q, using 0px", s)
		return Px(0)
	}
	if scale, ok := dimen.Scale(unit); ok {
		return Px(float64(dimen.Dimen(n) * scale))
	}
	if kind, ok := relativeUnits[unit]; ok {
		return Relative(n, kind)
	}
	tracer().Infof("unknown unit %q in dimension %q, using px", unit, s)
	return Px(n)
}
