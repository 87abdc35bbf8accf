package text

import "strings"

// wordRune reports whether a rune can appear inside a token.
func wordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == 'ñ'
}

// Tokenise normalises text and splits it into word tokens. Whitespace and
// the punctuation retained by Normalise act purely as separators and are
// never emitted as tokens. Pure function of its input.
func Tokenise(text string) []string {
	return strings.FieldsFunc(Normalise(text), func(r rune) bool {
		return !wordRune(r)
	})
}
