package css

import "strings"

// ParseInline parses the value of an HTML style attribute, e.g.
//
//	position: absolute; color: red
//
// Pairs are separated by ';', names and values by the first ':' of a pair.
// If a property is given more than once, the last value wins.
func ParseInline(text string) Declaration {
	decl := Declaration{}
	for _, pair := range strings.Split(Normalize(text), ";") {
		key, value, _ := strings.Cut(pair, ":")
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if key == "" && value == "" {
			continue
		}
		resolve(&decl, key, value, ModeStylesheet)
	}
	return decl
}
