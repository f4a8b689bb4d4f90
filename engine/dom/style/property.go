/*
Package style holds raw style properties, as they appear in stylesheets
and style attributes, before they are resolved to typed values.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package style

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'ivy.css'.
func tracer() tracing.Trace {
	return tracing.Select("ivy.css")
}

// Property is a raw value for a CSS property. For example, with
//
//	color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient conversion functions.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return strings.TrimSpace(string(p)) == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

func (kv KeyValue) String() string {
	return fmt.Sprintf("%s: %s", kv.Key, kv.Value)
}

// SplitCompoundProperty splits up a shortcut property into its directional
// components, e.g.
//
//	margin: 1px 2px 3px
//
// will result in
//
//	margin-top: 1px
//	margin-right: 2px
//	margin-bottom: 3px
//
// Values are assigned to the directions top, right, bottom and left in
// order of appearance. Directions without a value are not part of the
// result; values in excess of four are dropped.
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	fields := strings.Fields(string(value))
	switch key {
	case "margin":
		return splitCompound4("margin", "", fourDirs, fields), nil
	case "padding":
		return splitCompound4("padding", "", fourDirs, fields), nil
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

func splitCompound4(pre string, suf string, dirs [4]string, fields []string) []KeyValue {
	if len(fields) > 4 {
		tracer().Infof("%s has %d values, dropping all but 4", pre, len(fields))
		fields = fields[:4]
	}
	r := make([]KeyValue, len(fields))
	for i, f := range fields {
		r[i] = KeyValue{p(pre, suf, dirs[i]), Property(f)}
	}
	return r
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}

// DirectionIndex returns the index of a direction suffix ("top", "right",
// "bottom", "left") of a directional property, or -1.
func DirectionIndex(key string) int {
	for i, dir := range fourDirs {
		if strings.HasSuffix(key, "-"+dir) {
			return i
		}
	}
	return -1
}

func p(prefix string, suffix string, tag string) string {
	if suffix == "" {
		return prefix + "-" + tag
	}
	if prefix == "" {
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}
