/*
Package html reads HTML documents.

Parsing is done by golang.org/x/net/html, which implements the HTML5 parsing
algorithm and therefore accepts any input, however malformed. This package
adds helpers for finding the style information embedded into a document.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package html

import (
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/ivy/core"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces to tracing key 'ivy.html'.
func tracer() tracing.Trace {
	return tracing.Select("ivy.html")
}

// Parse reads an HTML document. The document node returned is the root of
// the parse tree; it usually has a doctype and an <html> element as children.
func Parse(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		tracer().Errorf("unable to parse HTML: %v", err)
		return nil, core.WrapError(err, core.EFORMAT, "cannot parse HTML document")
	}
	return doc, nil
}

// ParseString reads an HTML document from a string.
func ParseString(s string) (*html.Node, error) {
	return Parse(strings.NewReader(s))
}

var (
	styleElements   = cascadia.MustCompile("style")
	stylesheetLinks = cascadia.MustCompile(`link[rel="stylesheet"][href]`)
	titleElement    = cascadia.MustCompile("head title")
	styleSources    = cascadia.MustCompile(`style, link[rel="stylesheet"][href]`)
)

// StyleSources returns the text content of all <style> elements of a
// document, in document order.
func StyleSources(doc *html.Node) []string {
	if doc == nil {
		return nil
	}
	var sources []string
	for _, n := range styleElements.MatchAll(doc) {
		sources = append(sources, TextContent(n))
	}
	tracer().Debugf("document has %d style elements", len(sources))
	return sources
}

// StylesheetLinks returns the href values of all <link rel="stylesheet">
// elements of a document, in document order.
func StylesheetLinks(doc *html.Node) []string {
	if doc == nil {
		return nil
	}
	var hrefs []string
	for _, n := range stylesheetLinks.MatchAll(doc) {
		hrefs = append(hrefs, Attr(n, "href"))
	}
	return hrefs
}

// StyleSource is a stylesheet of a document: either the text of a <style>
// element or the href of a linked stylesheet.
type StyleSource struct {
	Text string // content of a <style> element
	Href string // link target; empty for <style> elements
}

// IsLink is true for linked stylesheets.
func (src StyleSource) IsLink() bool {
	return src.Href != ""
}

// StyleSourcesInOrder returns <style> elements and stylesheet links of a
// document, in document order.
func StyleSourcesInOrder(doc *html.Node) []StyleSource {
	if doc == nil {
		return nil
	}
	var sources []StyleSource
	for _, n := range styleSources.MatchAll(doc) {
		if n.Data == "style" {
			sources = append(sources, StyleSource{Text: TextContent(n)})
		} else if href := strings.TrimSpace(Attr(n, "href")); href != "" {
			sources = append(sources, StyleSource{Href: href})
		}
	}
	return sources
}

// Title returns the document title, if any.
func Title(doc *html.Node) string {
	if doc == nil {
		return ""
	}
	if t := titleElement.MatchFirst(doc); t != nil {
		return strings.TrimSpace(TextContent(t))
	}
	return ""
}

// Attr returns the value of attribute key of node n, or "".
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// TextContent concatenates the text of all text nodes below n.
func TextContent(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			collect(ch)
		}
	}
	collect(n)
	return b.String()
}
