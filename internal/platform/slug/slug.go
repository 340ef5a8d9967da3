package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlphaNum = regexp.MustCompile(`[^a-z0-9]+`)

// Make lowercases input, folds accents and joins words with dashes, so
// "Desarrollo Móvil" and "desarrollo-movil" compare equal.
func Make(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	if folded, _, err := transform.String(fold(), s); err == nil {
		s = folded
	}
	s = nonAlphaNum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func fold() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}
