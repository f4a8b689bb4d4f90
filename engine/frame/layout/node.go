package layout

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/npillmayer/ivy/core/dimen"
	"github.com/npillmayer/ivy/engine/dom/style/css"
	"github.com/npillmayer/uax/grapheme"
	"golang.org/x/text/unicode/norm"
)

// NodeKind tells elements and text apart.
type NodeKind uint8

// Kinds of layout nodes
const (
	ElementNode NodeKind = iota
	TextNode
)

// Node is a node of a layout tree.
type Node struct {
	Kind       NodeKind
	TagName    string            // empty for text nodes
	Attributes map[string]string // copy of the element's attributes
	ID         string            // value of the id attribute
	Style      css.Declaration   // declaration from the style attribute
	Text       string            // text of a text node, white space collapsed
	Pos        dimen.Point       // position on the canvas
	Size       dimen.Point       // extent; only the width of text is measured
}

// RootNode returns a fresh root node.
func RootNode() Node {
	return Node{TagName: "html", Attributes: map[string]string{}}
}

func newTextNode(text string) Node {
	return Node{Kind: TextNode, Text: CollapseWhiteSpace(text)}
}

// IsText is true for text nodes.
func (n *Node) IsText() bool {
	return n.Kind == TextNode
}

// CollapseWhiteSpace replaces every run of white space in s by a single
// blank. The result is in Unicode normalization form NFC.
func CollapseWhiteSpace(s string) string {
	var b strings.Builder
	blank := false
	for _, r := range norm.NFC.String(s) {
		if unicode.IsSpace(r) {
			if !blank {
				b.WriteByte(' ')
			}
			blank = true
			continue
		}
		b.WriteRune(r)
		blank = false
	}
	return b.String()
}

// String returns a one-line debug representation of n.
func (n *Node) String() string {
	if n.IsText() {
		return fmt.Sprintf("%q w=%s", shortText(n.Text, 32), n.Size.X)
	}
	var b strings.Builder
	b.WriteString("<" + n.TagName)
	keys := make([]string, 0, len(n.Attributes))
	for k := range n.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%q", k, n.Attributes[k])
	}
	fmt.Fprintf(&b, "> @%s { %s }", n.Pos, n.Style)
	return b.String()
}

// shortText cuts text after max grapheme clusters.
func shortText(text string, max int) string {
	gstr := grapheme.StringFromString(text)
	if gstr.Len() <= max {
		return text
	}
	var b strings.Builder
	for i := 0; i < max; i++ {
		b.WriteString(gstr.Nth(i))
	}
	b.WriteString("…")
	return b.String()
}

func init() {
	grapheme.SetupGraphemeClasses()
}
