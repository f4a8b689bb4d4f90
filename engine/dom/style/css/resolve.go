package css

import (
	"image/color"

	"github.com/npillmayer/ivy/core/option"
	"github.com/npillmayer/ivy/engine/dom/style"
)

// themeColors are the keywords a default stylesheet may use in place of
// colors. They are replaced by the colors of the current theme.
var themeColors = map[string]string{
	"ThemeTextColor":                 "black",
	"ThemePageBackgroundColor":       "white",
	"ThemeButtonBorderColor":         "gray",
	"ThemeInputPlaceholderTextColor": "gray",
	"ThemeButtonBackgroundColor":     "lightgray",
	"ThemeButtonTextColor":           "black",
	"ThemeLinkColor":                 "lightblue",
	"ThemeVisitedColor":              "purple",
	"ThemeActiveColor":               "blue",
	"ThemeMarkBackgroundColor":       "lightgray",
	"ThemeMarkTextColor":             "yellow",
	"ThemeFieldsetBorderColor":       "black",
}

// ThemeKeywords returns the names of all theme keywords, mapped to
// the color they stand for.
func ThemeKeywords() map[string]string {
	m := make(map[string]string, len(themeColors))
	for k, v := range themeColors {
		m[k] = v
	}
	return m
}

type resolver func(decl *Declaration, key string, value style.Property)

var resolvers map[string]resolver

func init() {
	resolvers = map[string]resolver{
		"display":          resolveDisplay,
		"position":         resolvePosition,
		"color":            resolveColor,
		"background-color": resolveColor,
		"font-family":      resolveFontFamily,
		"margin":           resolveMargin,
		"margin-top":       resolveMarginSide,
		"margin-right":     resolveMarginSide,
		"margin-bottom":    resolveMarginSide,
		"margin-left":      resolveMarginSide,
	}
}

// KnownProperties returns the names of all properties the resolver
// understands.
func KnownProperties() []string {
	keys := make([]string, 0, len(resolvers))
	for k := range resolvers {
		keys = append(keys, k)
	}
	return keys
}

// resolve sets property key of decl from a raw value.
func resolve(decl *Declaration, key string, value string, mode Mode) {
	if mode == ModeDefault {
		if c, ok := themeColors[value]; ok {
			tracer().Debugf("theme keyword %s => %s", value, c)
			value = c
		}
	}
	tracer().Debugf("resolving %s: %s", key, value)
	if r, ok := resolvers[key]; ok {
		r(decl, key, style.Property(value))
		return
	}
	tracer().Infof("unhandled CSS property %q", key)
}

func resolveDisplay(decl *Declaration, key string, value style.Property) {
	d, ok := ParseDisplay(value.String())
	if !ok {
		tracer().Infof("unknown display %q, using %s", value, d)
	}
	decl.Display = d
}

func resolvePosition(decl *Declaration, key string, value style.Property) {
	p, ok := ParsePosition(value.String())
	if !ok {
		tracer().Infof("unknown position %q, using %s", value, p)
	}
	decl.Position = p
}

func resolveColor(decl *Declaration, key string, value style.Property) {
	c := option.None[color.RGBA]()
	if rgba, err := value.Color(); err == nil {
		c = option.Some(rgba)
	} else {
		tracer().Infof("%s: cannot interpret %q as a color", key, value)
	}
	if key == "color" {
		decl.Color = c
	} else {
		decl.BackgroundColor = c
	}
}

func resolveFontFamily(decl *Declaration, key string, value style.Property) {
	decl.FontFamily = option.Some(ParseFontFamily(value.String()))
}

// resolveMargin assigns the values of a margin shorthand to the sides in
// order top, right, bottom, left. Sides without a value are unset.
func resolveMargin(decl *Declaration, key string, value style.Property) {
	kvs, _ := style.SplitCompoundProperty(key, value)
	decl.Margin = [4]option.T[Dimension]{}
	for _, kv := range kvs {
		decl.Margin[style.DirectionIndex(kv.Key)] = option.Some(ParseDimension(kv.Value.String()))
	}
}

func resolveMarginSide(decl *Declaration, key string, value style.Property) {
	if side := style.DirectionIndex(key); side >= 0 {
		decl.Margin[side] = option.Some(ParseDimension(value.String()))
	}
}
