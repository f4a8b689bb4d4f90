/*
Package layout produces a layout tree from an HTML parse tree.

# Overview

The layout tree mirrors the structure of a document: every element becomes a
layout node carrying its tag name, its attributes and the declaration parsed
from its style attribute. Text is kept in synthetic text nodes, with white
space collapsed, and measured using glyph metrics.

Nodes live in an arena and reference each other by index, so parents and
children may be modified without aliasing. The tree always has exactly one
root, named "html"; an <html> element of the document overwrites the root
rather than being appended to it.

Placing nodes on a canvas is delegated to a Positioner. The only positioner
provided here places every node at the origin; flow layout is left to
other implementations of interface Positioner.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ivy.layout'.
func tracer() tracing.Trace {
	return tracing.Select("ivy.layout")
}
