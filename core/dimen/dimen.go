// Package dimen implements absolute dimensions and units.
//
// Dimensions are measured in CSS pixels, where one inch equals 96 pixels.
// Relative units (em, rem, …) are not handled here, as they need context
// information to be resolved.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Dimen is a dimension type.
// Values are in CSS pixels (1/96 inch).
type Dimen float64

// Some pre-defined dimensions
const (
	Zero Dimen = 0
	PX   Dimen = 1              // CSS pixel
	IN   Dimen = 96             // inch
	CM   Dimen = 96 / 2.54      // centimeters
	MM   Dimen = 96 / 25.4      // millimeters
	Q    Dimen = 96 / 2.54 / 40 // quarter-millimeters
	PT   Dimen = 96.0 / 72.0    // points, 1/72 inch
	PC   Dimen = 16             // picas, 12 points
)

// Infinity is the largest possible dimension
var Infinity = Dimen(math.MaxFloat32)

// ErrFormat is returned for dimension strings which cannot be parsed.
var ErrFormat = errors.New("format error parsing dimension")

// Stringer implementation.
func (d Dimen) String() string {
	return strconv.FormatFloat(float64(d), 'f', -1, 64) + "px"
}

// Pixels returns a dimension as a plain float value.
func (d Dimen) Pixels() float64 {
	return float64(d)
}

// Point is a point on a canvas.
type Point struct {
	X, Y Dimen
}

// Origin is origin
var Origin = Point{0, 0}

// Shift a point along a vector.
func (p *Point) Shift(vector Point) *Point {
	p.X += vector.X
	p.Y += vector.Y
	return p
}

func (p Point) String() string {
	return fmt.Sprintf("(%s,%s)", p.X, p.Y)
}

// Rect is a rectangle (on a canvas).
type Rect struct {
	TopL, BotR Point
}

// Width returns the width of a rectangle, i.e. the difference between x-coordinates
// of bottom-right and top-left corner.
func (r Rect) Width() Dimen {
	return r.BotR.X - r.TopL.X
}

// Height returns the height of a rectangle, i.e. the difference between y-coordinates
// of bottom-right and top-left corner.
func (r Rect) Height() Dimen {
	return r.BotR.Y - r.TopL.Y
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+))(.*)$`)

// Split separates a CSS length into its number and its (lower-cased) unit suffix.
// The suffix may be empty.
func Split(s string) (float64, string, error) {
	d := dimenPattern.FindStringSubmatch(strings.TrimSpace(s))
	if len(d) < 3 {
		return 0, "", ErrFormat
	}
	n, err := strconv.ParseFloat(d[1], 64)
	if err != nil {
		return 0, "", ErrFormat
	}
	return n, strings.ToLower(d[2]), nil
}

// Scale returns the size of an absolute CSS unit in pixels.
// An empty unit denotes a unitless number and scales by 1.
// If unit is not an absolute unit, false is returned.
func Scale(unit string) (Dimen, bool) {
	switch strings.ToLower(unit) {
	case "", "px":
		return PX, true
	case "in":
		return IN, true
	case "cm":
		return CM, true
	case "mm":
		return MM, true
	case "q":
		return Q, true
	case "pt":
		return PT, true
	case "pc":
		return PC, true
	}
	return 0, false
}

// ParseDimen parses a string to return a dimension. Syntax is CSS Unit,
// restricted to absolute units.
func ParseDimen(s string) (Dimen, error) {
	n, unit, err := Split(s)
	if err != nil {
		return 0, err
	}
	scale, ok := Scale(unit)
	if !ok {
		return 0, fmt.Errorf("%w: unit %q is not absolute", ErrFormat, unit)
	}
	return Dimen(n) * scale, nil
}

// ---------------------------------------------------------------------------

// Min returns the smaller of two dimensions.
func Min(a, b Dimen) Dimen {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b Dimen) Dimen {
	if a > b {
		return a
	}
	return b
}
