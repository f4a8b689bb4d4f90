/*
Package page loads web pages and computes their layout.

A Page pulls an HTML document from a URL, parses it, collects the document's
stylesheets and builds a layout tree for it. Loading is measured with timers.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package page

import (
	"context"
	"net/url"
	"time"

	"github.com/npillmayer/ivy/core"
	"github.com/npillmayer/ivy/core/font"
	"github.com/npillmayer/ivy/core/locate/resources"
	"github.com/npillmayer/ivy/engine/dom/style/css"
	"github.com/npillmayer/ivy/engine/frame/layout"
	htmlinput "github.com/npillmayer/ivy/input/html"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'ivy.page'.
func tracer() tracing.Trace {
	return tracing.Select("ivy.page")
}

// Timers hold the durations of the steps of loading a page.
type Timers struct {
	Pull   time.Duration // pulling the document from its location
	Parse  time.Duration // parsing the document and its stylesheets
	Layout time.Duration // computing the most recent layout
	Total  time.Duration // loading the page, including the first layout
}

// Page is the context for loading and laying out a single document.
type Page struct {
	URL         *url.URL
	Timers      Timers
	Document    *html.Node        // nil until the page is loaded
	Layout      *layout.Tree      // nil until the page is loaded
	Stylesheets []css.GlobalStyle // author stylesheets, in document order
	Puller      *resources.Puller
	Fonts       *font.Manager
	Options     layout.Options
}

// New creates a page for a document located at rawurl. Strings without a
// scheme are taken as paths in the local file system. If fonts is nil, a
// font manager with the built-in fonts is used.
func New(rawurl string, fonts *font.Manager) (*Page, error) {
	u, err := resources.ParseURL(rawurl)
	if err != nil {
		return nil, err
	}
	if fonts == nil {
		fonts = font.NewManager()
	}
	return &Page{
		URL:     u,
		Puller:  resources.NewPuller(),
		Fonts:   fonts,
		Options: layout.DefaultOptions(),
	}, nil
}

// Load pulls and parses the page and computes its layout.
func (p *Page) Load(ctx context.Context) error {
	start := time.Now()
	data, err := p.Puller.PullString(ctx, p.URL)
	if err != nil {
		return err
	}
	p.Timers.Pull = time.Since(start)
	tracer().Infof("pulled %s in %v", p.URL, p.Timers.Pull)
	//
	parseStart := time.Now()
	if p.Document, err = htmlinput.ParseString(data); err != nil {
		return err
	}
	p.Stylesheets = p.loadStylesheets(ctx)
	p.Timers.Parse = time.Since(parseStart)
	tracer().Infof("parsed %q in %v", htmlinput.Title(p.Document), p.Timers.Parse)
	//
	if err = p.RecomputeLayout(); err != nil {
		return err
	}
	p.Timers.Total = time.Since(start)
	tracer().Infof("loaded page in %v", p.Timers.Total)
	return nil
}

// loadStylesheets collects the contents of <style> elements and of linked
// stylesheets, in document order. Linked stylesheets are pulled
// concurrently; those which cannot be pulled are skipped. Pages which are
// not local files may only link to remote stylesheets.
func (p *Page) loadStylesheets(ctx context.Context) []css.GlobalStyle {
	linkPuller := *p.Puller
	linkPuller.AllowLocalFS = p.Puller.AllowLocalFS && p.URL.Scheme == "file"
	sources := htmlinput.StyleSourcesInOrder(p.Document)
	promises := make([]resources.TextPromise, len(sources))
	for i, src := range sources {
		if !src.IsLink() {
			continue
		}
		ref, err := url.Parse(src.Href)
		if err != nil {
			tracer().Infof("ignoring stylesheet link %q: %v", src.Href, err)
			continue
		}
		promises[i] = linkPuller.Resolve(ctx, p.URL.ResolveReference(ref))
	}
	var sheets []css.GlobalStyle
	for i, src := range sources {
		text := src.Text
		if src.IsLink() {
			if promises[i] == nil {
				continue
			}
			var err error
			if text, err = promises[i].Await(ctx); err != nil {
				tracer().Infof("cannot load stylesheet %s: %v", src.Href, err)
				continue
			}
		}
		sheets = append(sheets, css.ParseStylesheet(text))
	}
	tracer().Debugf("page has %d stylesheets", len(sheets))
	return sheets
}

// RecomputeLayout builds a new layout tree for the page's document.
func (p *Page) RecomputeLayout() error {
	if p.Document == nil {
		return core.Error(core.EINVALID, "page %s is not loaded", p.URL)
	}
	start := time.Now()
	opts := p.Options
	opts.Stylesheets = p.Stylesheets
	tree, err := layout.Compute(p.Document, p.Fonts, opts)
	if err != nil {
		return err
	}
	p.Layout = tree
	p.Timers.Layout = time.Since(start)
	tracer().Infof("computed layout in %v", p.Timers.Layout)
	return nil
}
