package css

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize removes all block comments from s and replaces each run of
// white space with a single blank. Comments do not nest: the first "*/"
// ends a comment, and a comment lacking its end extends to the end of s.
//
// Normalize is idempotent, and its result is never longer than s.
func Normalize(s string) string {
	for {
		n := normalizeOnce(s)
		if n == s {
			return n
		}
		// removing a comment may join "/" and "*" into a new comment start
		s = n
	}
}

func normalizeOnce(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	incomment, blank := false, false
	for i := 0; i < len(s); {
		if incomment {
			if s[i] == '*' && i+1 < len(s) && s[i+1] == '/' {
				incomment = false
				i += 2
			} else {
				i++
			}
			continue
		}
		if s[i] == '/' && i+1 < len(s) && s[i+1] == '*' {
			incomment = true
			i += 2
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) {
			if !blank {
				b.WriteByte(' ')
				blank = true
			}
		} else {
			b.WriteString(s[i : i+size])
			blank = false
		}
		i += size
	}
	return b.String()
}
