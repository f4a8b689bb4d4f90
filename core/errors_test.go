package core

import (
	"bytes"
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	err := WrapError(fs.ErrNotExist, EMISSING, "stylesheet %q not found", "a.css")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, EMISSING, Code(err))
	assert.True(t, Is(err, EMISSING))
	assert.Equal(t, `stylesheet "a.css" not found`, UserMessage(err))
	assert.Equal(t, "[122] file does not exist", err.Error())
}

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
	assert.Equal(t, "internal error", UserMessage(errors.New("plain")))
	err := WrapError(nil, EFORBIDDEN, "no access")
	assert.Equal(t, EFORBIDDEN, Code(err))
	assert.Equal(t, "[126] forbidden", err.Error())
	err = Error(EFORMAT, "no font in %s", "x.txt")
	assert.True(t, Is(err, EFORMAT))
	assert.False(t, Is(err, EMISSING))
}

func TestPrintUserError(t *testing.T) {
	var buf bytes.Buffer
	printUserError(&buf, Error(EMISSING, "page %s not found", "x.html"))
	assert.Equal(t, "[122] page x.html not found\n", buf.String())
	buf.Reset()
	printUserError(&buf, errors.New("plain"))
	assert.Equal(t, "Error: plain\n", buf.String())
}
