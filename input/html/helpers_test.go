package html

import (
	"testing"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

func cascadiaFirst(t *testing.T, doc *html.Node, selector string) *html.Node {
	t.Helper()
	sel, err := cascadia.Compile(selector)
	if err != nil {
		t.Fatalf("cannot compile selector %q: %v", selector, err)
	}
	n := sel.MatchFirst(doc)
	if n == nil {
		t.Fatalf("no element matches %q", selector)
	}
	return n
}
