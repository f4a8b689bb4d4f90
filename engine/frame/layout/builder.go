package layout

import (
	"errors"
	"strings"

	"github.com/npillmayer/ivy/core/dimen"
	"github.com/npillmayer/ivy/engine/dom/style/css"
	"golang.org/x/net/html"
)

// DefaultFontSize is the size in pixels at which text is measured.
const DefaultFontSize = 14.0

// ErrNoDocument is returned by Compute if it is called without a document.
var ErrNoDocument = errors.New("no document to lay out")

// Options control the construction of a layout tree.
type Options struct {
	KeepText      bool              // create text nodes
	KeepBlankText bool              // create text nodes consisting of white space only
	FontSize      float64           // font size in pixels for measuring text
	Positioner    Positioner        // places nodes; nil places at the origin
	Stylesheets   []css.GlobalStyle // author stylesheets, stored with the tree
}

// DefaultOptions returns the options used for rendering pages.
func DefaultOptions() Options {
	return Options{
		KeepText:   true,
		FontSize:   DefaultFontSize,
		Positioner: OriginPositioner{},
	}
}

// handledAttributes are interpreted by the builder. Other attributes are
// stored verbatim.
var handledAttributes = map[string]bool{
	"style": true,
	"id":    true,
	"class": true,
}

type builder struct {
	tree    *Tree
	metrics TextMetrics
	opts    Options
}

// Compute walks an HTML document and builds the layout tree for it.
// The document's <html> element becomes the root of the tree; elements
// outside of it are appended to the root.
// metrics may be nil, in which case text is not measured.
func Compute(doc *html.Node, metrics TextMetrics, opts Options) (*Tree, error) {
	if doc == nil {
		return nil, ErrNoDocument
	}
	if opts.Positioner == nil {
		opts.Positioner = OriginPositioner{}
	}
	if opts.FontSize <= 0 {
		opts.FontSize = DefaultFontSize
	}
	b := &builder{tree: NewTree(), metrics: metrics, opts: opts}
	b.tree.DefaultStyle = css.DefaultStyle()
	b.tree.AuthorStyles = append(b.tree.AuthorStyles, opts.Stylesheets...)
	b.tree.Node(b.tree.Root()).Pos = opts.Positioner.Position(b.tree, b.tree.Root())
	b.walk(doc, b.tree.Root())
	tracer().Debugf("layout tree has %d nodes", b.tree.Len())
	return b.tree, nil
}

func (b *builder) walk(h *html.Node, parent NodeID) {
	switch h.Type {
	case html.ElementNode:
		parent = b.element(h, parent)
	case html.TextNode:
		b.text(h, parent)
		return
	default: // document, doctype, comments: children attach to parent
	}
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		b.walk(c, parent)
	}
}

func (b *builder) element(h *html.Node, parent NodeID) NodeID {
	n := Node{
		Kind:       ElementNode,
		TagName:    h.Data,
		Attributes: make(map[string]string, len(h.Attr)),
	}
	for _, a := range h.Attr {
		n.Attributes[a.Key] = a.Val
		switch a.Key {
		case "style":
			n.Style = css.ParseInline(a.Val)
		case "id":
			n.ID = a.Val
		}
		if !handledAttributes[a.Key] {
			tracer().Infof("unhandled attribute %s=%q on <%s>", a.Key, a.Val, h.Data)
		}
	}
	var id NodeID
	if h.Data == "html" {
		id = b.tree.Root()
		*b.tree.Node(id) = n
	} else {
		id = b.tree.AppendChild(parent, n)
	}
	b.tree.Node(id).Pos = b.opts.Positioner.Position(b.tree, id)
	return id
}

func (b *builder) text(h *html.Node, parent NodeID) {
	if !b.opts.KeepText {
		return
	}
	n := newTextNode(h.Data)
	if !b.opts.KeepBlankText && strings.TrimSpace(n.Text) == "" {
		return
	}
	family := ""
	if p := b.tree.Node(parent); p != nil {
		if ff, ok := p.Style.FontFamily.Get(); ok {
			family = ff.String()
		}
	}
	n.Size.X = b.measure(n.Text, family)
	id := b.tree.AppendChild(parent, n)
	b.tree.Node(id).Pos = b.opts.Positioner.Position(b.tree, id)
}

// measure sums the glyph widths and advances of all runes of text.
func (b *builder) measure(text string, family string) dimen.Dimen {
	if b.metrics == nil {
		return 0
	}
	w := 0.0
	for _, r := range text {
		m := b.metrics.GlyphMetrics(r, b.opts.FontSize, family)
		w += m.Width + m.Advance
	}
	return dimen.Dimen(w)
}
