package model

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// nonMainspacePrefixes lists the namespace prefixes that disqualify a title
// from the article mainspace. These are the namespaces the English-language
// encyclopedia exposes on rendered /wiki/ links.
var nonMainspacePrefixes = []string{
	"File:",
	"File talk:",
	"Wikipedia:",
	"Wikipedia talk:",
	"Project:",
	"Project talk:",
	"Portal:",
	"Portal talk:",
	"Special:",
	"Help:",
	"Help talk:",
	"Template:",
	"Template talk:",
	"Talk:",
	"Category:",
	"Category talk:",
}

// NormalizeTitle converts a surface-form article title to its canonical form:
// underscores become spaces, whitespace runs collapse to a single space,
// the first letter is uppercased, and the result is composed to Unicode NFC.
// Normalizing an already-canonical title is a no-op, so the function is
// idempotent and safe to apply at every boundary.
func NormalizeTitle(title string) string {
	t := strings.ReplaceAll(title, "_", " ")
	t = strings.Join(strings.Fields(t), " ")
	t = upperFirst(t)
	return norm.NFC.String(t)
}

// upperFirst uppercases the leading rune. Article titles are case sensitive
// except for their first character.
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	u := unicode.ToUpper(r)
	if u == r {
		return s
	}
	return string(u) + s[size:]
}

// SameTitle reports whether two surface-form titles identify the same
// article. Comparison is on canonical forms, so capitalization, underscores,
// and stray whitespace do not matter.
func SameTitle(a, b string) bool {
	return NormalizeTitle(a) == NormalizeTitle(b)
}

// IsMainspace reports whether the title names an ordinary article, i.e.
// carries no namespace prefix such as "File:" or "Category talk:". The empty
// string is not a mainspace title.
func IsMainspace(title string) bool {
	if title == "" {
		return false
	}
	for _, prefix := range nonMainspacePrefixes {
		if strings.HasPrefix(title, prefix) {
			return false
		}
	}
	return true
}
