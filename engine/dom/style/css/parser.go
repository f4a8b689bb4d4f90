package css

import (
	"strings"
	"unicode"
)

// Mode tells a parser which kind of stylesheet it reads.
type Mode uint8

// Parser modes
const (
	ModeStylesheet Mode = iota // author stylesheets
	ModeDefault                // the built-in stylesheet; theme keywords are replaced
)

func (m Mode) String() string {
	if m == ModeDefault {
		return "default"
	}
	return "stylesheet"
}

// Parser reads stylesheet text in a single forward scan.
//
// Outside of braces, a parser reads selectors, which consist of the characters
// [A-Za-z0-9_-]. Inside the braces following a selector, it reads runs of text
// delimited by ':' and ';', alternating between property names and values.
// The closing brace commits the selector and its declaration as a rule.
//
// A parser operates on code points, not on bytes.
type Parser struct {
	input      []rune
	pos        int
	depth      int    // brace depth, never negative
	ruleDepth  int    // brace depth at which the pending selector was read, or -1
	selector   string // pending selector
	property   string // pending property name
	decl       Declaration
	mode       Mode
	stylesheet GlobalStyle
}

// NewParser creates a parser for stylesheet text. The text is normalized
// before parsing.
func NewParser(text string, mode Mode) *Parser {
	return &Parser{
		input:     []rune(Normalize(text)),
		ruleDepth: -1,
		mode:      mode,
	}
}

// ParseStylesheet parses an author stylesheet.
func ParseStylesheet(text string) GlobalStyle {
	return NewParser(text, ModeStylesheet).Parse()
}

// ParseDefaultStylesheet parses a built-in stylesheet, which may use
// theme keywords in place of colors.
func ParseDefaultStylesheet(text string) GlobalStyle {
	return NewParser(text, ModeDefault).Parse()
}

// Parse runs the parser until the end of input and returns the rules read.
// Rules lacking their closing brace are discarded. Parse never fails.
func (p *Parser) Parse() GlobalStyle {
	for !p.eof() {
		p.advance()
	}
	if p.ruleDepth >= 0 {
		tracer().Infof("discarding unclosed rule for selector %q", p.selector)
	}
	tracer().Debugf("parsed %d rules in %s mode", p.stylesheet.Len(), p.mode)
	return p.stylesheet
}

func (p *Parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *Parser) consumeWhile(test func(rune) bool) string {
	start := p.pos
	for !p.eof() && test(p.input[p.pos]) {
		p.pos++
	}
	return string(p.input[start:p.pos])
}

func isNameChar(r rune) bool {
	return r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_')
}

func isRunChar(r rune) bool {
	return r != ';' && r != ':' && r != '{' && r != '}'
}

func (p *Parser) advance() {
	c := p.input[p.pos]
	switch {
	case c == '{':
		p.pos++
		p.depth++
	case c == '}':
		p.pos++
		if p.depth == 0 {
			return
		}
		p.depth--
		if p.ruleDepth >= 0 && p.depth == p.ruleDepth {
			p.commit()
		}
	case c == ';':
		p.pos++
		if p.property != "" {
			tracer().Infof("property %q lacks a value", p.property)
			p.property = ""
		}
	case unicode.IsSpace(c):
		p.pos++
	case p.depth == 0:
		name := p.consumeWhile(isNameChar)
		if name == "" {
			p.pos++ // always consume something
			return
		}
		tracer().Debugf("selector %q", name)
		p.selector = name
		p.ruleDepth = p.depth
		p.property = ""
		p.decl = Declaration{}
	default:
		run := p.consumeWhile(isRunChar)
		if run == "" {
			p.pos++ // always consume something
			return
		}
		run = strings.TrimSpace(run)
		if p.ruleDepth < 0 || p.depth != p.ruleDepth+1 {
			tracer().Debugf("ignoring %q at brace depth %d", run, p.depth)
			return
		}
		if p.property == "" {
			p.property = run
			return
		}
		resolve(&p.decl, p.property, run, p.mode)
		p.property = ""
	}
}

func (p *Parser) commit() {
	tracer().Debugf("rule %s { %s }", p.selector, p.decl)
	p.stylesheet.Add(p.selector, p.decl)
	p.selector, p.property = "", ""
	p.ruleDepth = -1
	p.decl = Declaration{}
}
