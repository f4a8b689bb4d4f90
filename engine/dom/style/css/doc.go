/*
Package css implements a small stylesheet engine.

Stylesheet text is first normalized (comments removed, runs of whitespace
collapsed) and then scanned by a hand-written state machine, which reads
selectors and property/value pairs and resolves the values into a typed
Declaration. The following properties are understood:

	display, position, color, background-color, font-family,
	margin, margin-top, margin-right, margin-bottom, margin-left

Everything else is reported to the tracer and otherwise ignored. Parsing never
fails; malformed input results in properties staying unset or falling back to
their defaults.

Stylesheets come in three flavours:

	ParseStylesheet(text)        // author stylesheets, e.g. from <style> elements
	ParseDefaultStylesheet(text) // the built-in stylesheet, may use theme keywords
	ParseInline(text)            // style="…" attributes of HTML elements

Selectors are kept as plain text. Matching selectors against elements,
specificity, cascading and inheritance are not part of this package.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'ivy.css'.
func tracer() tracing.Trace {
	return tracing.Select("ivy.css")
}
