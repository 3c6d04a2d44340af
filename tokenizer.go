package phishcheck

import "regexp"

var (
	schemePrefix = regexp.MustCompile(`(?i)^https?://`)
	wwwPrefix    = regexp.MustCompile(`(?i)^www\.`)
	extractAlpha = regexp.MustCompile(`[A-Za-z]+`)
)

// Tokenize splits url into maximal runs of ASCII letters in order of appearance.
// A leading http:// or https:// and then a leading www. are removed first
// (case-insensitive). Digits and punctuation are separators. Case is preserved.
func Tokenize(url string) []string {
	clean := schemePrefix.ReplaceAllString(url, "")
	clean = wwwPrefix.ReplaceAllString(clean, "")
	return extractAlpha.FindAllString(clean, -1)
}
