package turkish

import (
	"strings"
	"unicode"
)

// replacer folds the six Turkish letters after lowercasing. Nothing
// else is touched, search stays purely textual.
var replacer = strings.NewReplacer(
	"ğ", "g",
	"ü", "u",
	"ş", "s",
	"ı", "i",
	"ö", "o",
	"ç", "c",
)

// Normalize lowercases with Turkish casing rules (İ→i, I→ı) and then
// folds ğüşıöç to ASCII.
func Normalize(s string) string {
	s = strings.ToLowerSpecial(unicode.TurkishCase, s)
	return replacer.Replace(s)
}

// Includes reports whether needle occurs in haystack after both are
// normalized. An empty needle always matches.
func Includes(haystack, needle string) bool {
	return strings.Contains(Normalize(haystack), Normalize(needle))
}
