package option_test

import (
	"strconv"
	"testing"

	"github.com/npillmayer/ivy/core/option"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/assert"
)

func TestOptionMatch(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	x := option.Some(42)
	y1 := option.Match(x, func() int { return 7 }, func(v int) int { return v + 1 })
	if y1 != 43 {
		t.Errorf("expected Some(42) to match to 43, is %d", y1)
	}
	y2 := option.Match(option.None[int](),
		func() string { return "No Value" },
		strconv.Itoa,
	)
	if y2 != "No Value" {
		t.Errorf("expected None to match to No Value, is %v", y2)
	}
}

func TestOptionZeroValue(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var o option.T[string]
	assert.True(t, o.IsNone())
	assert.Equal(t, option.None[string](), o)
	_, err := o.Unwrap()
	assert.ErrorIs(t, err, option.ErrCannotMatchUnsetValue)
	assert.Equal(t, "dflt", o.UnwrapOr("dflt"))
	assert.Equal(t, "None", o.String())
	//
	o = option.Some("")
	assert.True(t, o.IsSome())
	assert.True(t, o.Equals(""))
	assert.NotEqual(t, option.None[string](), o)
}

func TestOptionMap(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	l := option.Map(option.Some("hello"), func(s string) int { return len(s) })
	v, ok := l.Get()
	assert.True(t, ok)
	assert.Equal(t, 5, v)
	assert.True(t, option.Map(option.None[string](), func(s string) int { return len(s) }).IsNone())
}
