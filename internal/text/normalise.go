// Package text implements the lexical pipeline the matcher runs on:
// normalisation, tokenisation, bag-of-words vectors and cosine similarity.
// Every function here is pure and total; empty input is a valid input,
// never an error.
package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldMarks decomposes to NFD and drops combining marks, leaving the
// unaccented base letters. Note "ñ" decomposes to "n" + U+0303, so it
// folds to plain "n" before the character filter ever sees it.
var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Normalise lowercases text, strips diacritics and restricts the character
// set to {a-z, 0-9, ñ, whitespace, ?, !, ., ,}. Anything else is replaced
// with a space, runs of whitespace collapse to a single space and the
// result is trimmed. Idempotent.
func Normalise(text string) string {
	t := strings.ToLower(text)
	if folded, _, err := transform.String(foldMarks, t); err == nil {
		t = folded
	}

	var b strings.Builder
	b.Grow(len(t))
	for _, r := range t {
		if retained(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// retained reports whether a rune survives normalisation.
func retained(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == 'ñ':
		return true
	case unicode.IsSpace(r):
		return true
	case r == '?' || r == '!' || r == '.' || r == ',':
		return true
	default:
		return false
	}
}
