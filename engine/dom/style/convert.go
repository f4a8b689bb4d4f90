package style

import (
	"image/color"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// Color interprets a property as a CSS color. Any syntax understood by
// browsers is accepted: named colors, hex notation, rgb(), hsl() and
// friends. Transparency is preserved in the alpha channel.
func (p Property) Color() (color.RGBA, error) {
	c, err := csscolorparser.Parse(strings.TrimSpace(string(p)))
	if err != nil {
		tracer().Debugf("cannot parse %q as color: %v", p, err)
		return color.RGBA{}, err
	}
	r, g, b, a := c.RGBA255()
	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}
