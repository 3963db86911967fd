package marketdata

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// persianLetters maps Arabic code points the feed sometimes uses to their
// Persian equivalents.
var persianLetters = map[rune]rune{
	'ي': 'ی', // ARABIC YEH -> FARSI YEH
	'ى': 'ی', // ALEF MAKSURA -> FARSI YEH
	'ك': 'ک', // ARABIC KAF -> KEHEH
	'ة': 'ه', // TEH MARBUTA -> HEH
}

// normalizeName folds a feed currency name to a canonical form. ZWNJ reads
// as a space, other format characters are dropped, Arabic letters become
// their Persian forms and whitespace is collapsed.
func normalizeName(s string) string {
	t := transform.Chain(
		norm.NFKC,
		runes.Map(func(r rune) rune {
			if r == '\u200c' {
				return ' '
			}
			if p, ok := persianLetters[r]; ok {
				return p
			}
			return r
		}),
		runes.Remove(runes.In(unicode.Cf)),
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(out), " ")
}
