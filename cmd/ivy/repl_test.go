package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestExecute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ivy.css")
	defer teardown()
	//
	var out bytes.Buffer
	intp := &Intp{out: &out}
	assert.False(t, intp.Execute("display: none"))
	assert.Contains(t, out.String(), "display: none")
	out.Reset()
	assert.False(t, intp.Execute(":css p { color: red } h1 { display: inline }"))
	assert.Contains(t, out.String(), "2 rule(s)")
	out.Reset()
	assert.False(t, intp.Execute(":default head"))
	assert.Contains(t, out.String(), "head {")
	assert.False(t, intp.Execute(""))
	assert.True(t, intp.Execute(":quit"))
}

func TestCompletion(t *testing.T) {
	pc := newPropertyCompleter()
	line := []rune("color: red; margin-t")
	cands, n := pc.Do(line, len(line))
	assert.Equal(t, len("margin-t"), n)
	assert.Equal(t, [][]rune{[]rune("op: ")}, cands)
	line = []rune("backg")
	cands, n = pc.Do(line, len(line))
	assert.Equal(t, 5, n)
	if assert.Len(t, cands, 1) {
		assert.True(t, strings.HasSuffix(string(cands[0]), ": "))
	}
	cands, _ = pc.Do([]rune(""), 0)
	assert.Empty(t, cands)
}
