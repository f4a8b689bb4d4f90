package layout

import (
	"github.com/npillmayer/ivy/core/dimen"
	"github.com/npillmayer/ivy/core/font"
)

// TextMetrics measures glyphs. *font.Manager implements it.
type TextMetrics interface {
	GlyphMetrics(r rune, px float64, family string) font.Metrics
}

var _ TextMetrics = (*font.Manager)(nil)

// Positioner places a node of a tree on the canvas. It is called once for
// every node, in document order, after the node has been added to the tree
// and its text has been measured. Ancestors and preceding siblings already
// have their positions.
type Positioner interface {
	Position(t *Tree, id NodeID) dimen.Point
}

// OriginPositioner places every node at the origin.
type OriginPositioner struct{}

// Position is part of interface Positioner.
func (OriginPositioner) Position(*Tree, NodeID) dimen.Point {
	return dimen.Origin
}

// PositionerFunc adapts a function to interface Positioner.
type PositionerFunc func(t *Tree, id NodeID) dimen.Point

// Position is part of interface Positioner.
func (f PositionerFunc) Position(t *Tree, id NodeID) dimen.Point {
	return f(t, id)
}
