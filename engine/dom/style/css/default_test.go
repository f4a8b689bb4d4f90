package css

import (
	"image/color"
	"testing"

	"github.com/npillmayer/ivy/core/option"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestDefaultStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ivy.css")
	defer teardown()
	//
	gs := DefaultStyle()
	if gs.Len() == 0 {
		t.Fatalf("default stylesheet has no rules")
	}
	a := gs.Lookup("a")
	if assert.Len(t, a, 1) {
		assert.Equal(t, DisplayInline, a[0].Display)
		assert.Equal(t, option.Some(color.RGBA{173, 216, 230, 255}), a[0].Color)
	}
	head := gs.Lookup("head")
	if assert.Len(t, head, 1) {
		assert.Equal(t, DisplayNone, head[0].Display)
	}
	pre := gs.Lookup("pre")
	if assert.Len(t, pre, 1) {
		assert.Equal(t, option.Some(GenericFamily(FamilyMonospace)), pre[0].FontFamily)
	}
	gs.Rules[0].Selector = "modified"
	assert.NotEqual(t, "modified", DefaultStyle().Rules[0].Selector)
}
