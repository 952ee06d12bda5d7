package badge

import "strings"

// IsSpace reports whether r is whitespace as browsers define it for
// String.prototype.trim and the \s class: the ASCII controls \t..\r, space,
// the Unicode Zs characters, line and paragraph separators and the BOM.
// Unlike unicode.IsSpace it excludes U+0085 and includes U+FEFF.
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u00a0', '\u1680', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return r >= '\u2000' && r <= '\u200a'
}

// TrimSpace removes leading and trailing IsSpace runes.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, IsSpace)
}
