/*
Package font is for typeface and font handling.

We stick to the following definitions:

* A "typeface" is a family of fonts. An example is "Helvetica".

* A "scalable font" is a font, i.e. a variant of a typeface with a
certain weight, slant, etc.  An example is "Helvetica regular".

CSS selects fonts by family. A family is either one of the generic families
(serif, sans-serif, monospace, cursive, fantasy and a handful of system
families mapped onto these), or the name of a concrete typeface. A Manager
holds one scalable font per generic family and resolves concrete typefaces
by name, using the fonts installed on the system.

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package font

import (
	"os"
	"strings"
	"sync"

	"github.com/npillmayer/ivy/core"
	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// tracer traces to tracing key 'ivy.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("ivy.fonts")
}

// ScalableFont is a font which may be scaled to any size.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container; sfnt.Font is not safe for concurrent use
}

// Metrics holds the dimensions of a single glyph, in pixels.
type Metrics struct {
	Width   float64 // width of the glyph's bounding box
	Height  float64 // height of the glyph's bounding box
	Advance float64 // horizontal advance
}

// LoadOpenTypeFont loads an OpenType or TrueType font from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font file %s", fontfile)
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont parses the binary data of an OpenType or TrueType font.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, core.WrapError(err, core.EFORMAT, "cannot parse font data")
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// GlyphMetrics measures the glyph for r at a font size of px pixels.
// buf may be nil; callers measuring many glyphs should pass a buffer to
// avoid allocations.
func (sf *ScalableFont) GlyphMetrics(buf *sfnt.Buffer, r rune, px float64) (Metrics, error) {
	if buf == nil {
		buf = &sfnt.Buffer{}
	}
	ppem := fixed.Int26_6(px * 64)
	inx, err := sf.SFNT.GlyphIndex(buf, r)
	if err != nil {
		return Metrics{}, err
	}
	if inx == 0 {
		tracer().Debugf("font %s has no glyph for %#U, using .notdef", sf.Fontname, r)
	}
	bounds, advance, err := sf.SFNT.GlyphBounds(buf, inx, ppem, xfont.HintingNone)
	if err != nil {
		return Metrics{}, err
	}
	return Metrics{
		Width:   fixedToFloat(bounds.Max.X - bounds.Min.X),
		Height:  fixedToFloat(bounds.Max.Y - bounds.Min.Y),
		Advance: fixedToFloat(advance),
	}, nil
}

func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

// --- Fallback fonts --------------------------------------------------------

// FallbackFont returns a font to be used if everything else failes. It is
// always present. Currently we use Go Regular.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadGoFont("Go Regular", goregular.TTF)
	})
	return fallbackFont
}

// MonospaceFont returns a monospaced font which is always present.
// Currently we use Go Mono.
func MonospaceFont() *ScalableFont {
	monoFontLoading.Do(func() {
		monoFont = loadGoFont("Go Mono", gomono.TTF)
	})
	return monoFont
}

var fallbackFontLoading, monoFontLoading sync.Once

var fallbackFont, monoFont *ScalableFont

func loadGoFont(name string, ttf []byte) *ScalableFont {
	var err error
	gofont := &ScalableFont{
		Fontname: name,
		Filepath: "internal",
		Binary:   ttf,
	}
	gofont.SFNT, err = sfnt.Parse(gofont.Binary)
	if err != nil {
		panic("cannot load packaged Go font") // this cannot happen
	}
	return gofont
}

// NormalizeFontname creates a lookup key for a font name, ignoring
// quotes, case, blanks and a file extension.
func NormalizeFontname(fname string) string {
	fname = strings.TrimSpace(fname)
	fname = strings.Trim(fname, `"'`)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		switch strings.ToLower(fname[dot:]) {
		case ".ttf", ".otf", ".ttc":
			fname = fname[:dot]
		}
	}
	return strings.ToLower(fname)
}
