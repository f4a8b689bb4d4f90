package layoutdbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/ivy/engine/frame/layout"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ivy.layout")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(`<html><body><p id="a">Hello World, again</p></body></html>`))
	require.NoError(t, err)
	tree, err := layout.Compute(doc, nil, layout.DefaultOptions())
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, ToGraphViz(tree, &buf))
	dot := buf.String()
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, `"p#a\n(0px,0px)"`)
	assert.Contains(t, dot, "Hello␣Worl…")
	assert.Equal(t, tree.Len()-1, strings.Count(dot, "->"))
}

func TestGraphVizEscapesText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ivy.layout")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(`<html><body><p>a"b</p><p>c\d</p></body></html>`))
	require.NoError(t, err)
	tree, err := layout.Compute(doc, nil, layout.DefaultOptions())
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, ToGraphViz(tree, &buf))
	dot := buf.String()
	assert.Contains(t, dot, `label="T␣\"a\"b\""`)
	assert.Contains(t, dot, `label="T␣\"c\\d\""`)
	for _, line := range strings.Split(dot, "\n") {
		if strings.Contains(line, "label=") {
			// quotes in a label line are balanced once escaped quotes are removed
			plain := strings.ReplaceAll(strings.ReplaceAll(line, `\\`, ""), `\"`, "")
			assert.Equal(t, 0, strings.Count(plain, `"`)%2, "unbalanced quotes in %q", line)
		}
	}
}
