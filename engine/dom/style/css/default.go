package css

import (
	"sync"

	"github.com/npillmayer/ivy/core/locate/resources"
)

// DefaultStylesheetName is the name of the packaged default stylesheet.
const DefaultStylesheetName = "default.css"

var defaultStyle GlobalStyle
var defaultStyleLoading sync.Once

// DefaultStyle returns the built-in default stylesheet. It is parsed on first
// use; callers receive a copy and may modify it freely.
func DefaultStyle() GlobalStyle {
	defaultStyleLoading.Do(func() {
		text, err := resources.PackagedStylesheet(DefaultStylesheetName)
		if err != nil {
			tracer().Errorf("default stylesheet not available: %v", err)
			return
		}
		defaultStyle = ParseDefaultStylesheet(string(text))
		tracer().Infof("default stylesheet has %d rules", defaultStyle.Len())
	})
	rules := make([]Rule, len(defaultStyle.Rules))
	copy(rules, defaultStyle.Rules)
	return GlobalStyle{Rules: rules}
}
