package css

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/npillmayer/ivy/core/option"
)

// Margin sides, in CSS order.
const (
	Top = iota
	Right
	Bottom
	Left
)

var sideNames = [4]string{"top", "right", "bottom", "left"}

// Declaration is the resolved style of a rule or a style attribute.
//
// The zero value is the default declaration: display block, position static,
// everything else unset. Declarations are plain values; copying a Declaration
// yields an independent declaration.
type Declaration struct {
	Display         Display
	Position        Position
	Color           option.T[color.RGBA]
	BackgroundColor option.T[color.RGBA]
	FontFamily      option.T[FontFamily]
	Margin          [4]option.T[Dimension] // top, right, bottom, left
}

// String renders d in CSS syntax. Unset properties are omitted.
func (d Declaration) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "display: %s; position: %s;", d.Display, d.Position)
	if c, ok := d.Color.Get(); ok {
		fmt.Fprintf(&b, " color: %s;", hexColor(c))
	}
	if c, ok := d.BackgroundColor.Get(); ok {
		fmt.Fprintf(&b, " background-color: %s;", hexColor(c))
	}
	if f, ok := d.FontFamily.Get(); ok {
		fmt.Fprintf(&b, " font-family: %s;", f)
	}
	for i, m := range d.Margin {
		if dim, ok := m.Get(); ok {
			fmt.Fprintf(&b, " margin-%s: %s;", sideNames[i], dim)
		}
	}
	return b.String()
}

func hexColor(c color.RGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// --- Global style ----------------------------------------------------------

// Rule is a selector together with its declaration. Selectors are kept
// as written.
type Rule struct {
	Selector string
	Decl     Declaration
}

// GlobalStyle is an ordered collection of rules, as read from a stylesheet.
// Rules are neither merged nor de-duplicated.
type GlobalStyle struct {
	Rules []Rule
}

// Add appends a rule.
func (gs *GlobalStyle) Add(selector string, decl Declaration) {
	gs.Rules = append(gs.Rules, Rule{Selector: selector, Decl: decl})
}

// Len returns the number of rules.
func (gs GlobalStyle) Len() int {
	return len(gs.Rules)
}

// Lookup returns the declarations of all rules with a selector equal to
// selector, in stylesheet order.
func (gs GlobalStyle) Lookup(selector string) []Declaration {
	var decls []Declaration
	for _, r := range gs.Rules {
		if r.Selector == selector {
			decls = append(decls, r.Decl)
		}
	}
	return decls
}

func (gs GlobalStyle) String() string {
	var b strings.Builder
	for _, r := range gs.Rules {
		fmt.Fprintf(&b, "%s { %s }\n", r.Selector, r.Decl)
	}
	return b.String()
}
