package hsk

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var unaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Key derives the filename key from a pinyin transcription: tone marks
// and other diacritics stripped, punctuation dropped, lower-cased, runs
// of whitespace collapsed. Used only for filename uniqueness, never for
// lookup.
func Key(pinyin string) string {
	s, _, err := transform.String(unaccent, pinyin)
	if err != nil {
		s = pinyin
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			continue
		}
		b.WriteRune(r)
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
