package phishcheck

import (
	"fmt"
	"strings"

	"github.com/kljensen/snowball"
	"github.com/projectdiscovery/utils/errkit"
)

// ErrUnknownStemmer is returned when a stemmer is requested by a name that is not registered.
var ErrUnknownStemmer = errkit.New("unknown stemmer")

// Stemmer reduces a token toward a root form.
type Stemmer interface {
	Stem(token string) string
}

// suffixRule strips suffix and appends replacement.
// minLen is the minimum length of the lower-cased token for the rule to apply.
type suffixRule struct {
	suffix      string
	replacement string
	minLen      int
}

// suffixRules is checked top to bottom and only the first match is applied.
// "tion" must stay ahead of "ion", and every rule ahead of the bare plural.
// "ied" is shadowed by "ed" and never fires; the order is kept as is.
var suffixRules = []suffixRule{
	{suffix: "ing"},
	{suffix: "ed"},
	{suffix: "er"},
	{suffix: "est"},
	{suffix: "ly"},
	{suffix: "tion"},
	{suffix: "ion"},
	{suffix: "ness"},
	{suffix: "ment"},
	{suffix: "able"},
	{suffix: "ible"},
	{suffix: "ful"},
	{suffix: "less"},
	{suffix: "ous"},
	{suffix: "ive"},
	{suffix: "ary"},
	{suffix: "ory"},
	{suffix: "ify"},
	{suffix: "ize"},
	{suffix: "ise"},
	{suffix: "ies", replacement: "y"},
	{suffix: "ied", replacement: "y"},
	{suffix: "s", minLen: 4}, // keeps "is", "as", "bus"
}

// SuffixStemmer is the default single-pass suffix stripper.
type SuffixStemmer struct{}

// Stem lower-cases token and applies the first matching suffix rule.
// A rule that would leave nothing behind is treated as not matching.
func (SuffixStemmer) Stem(token string) string {
	word := strings.ToLower(token)
	for _, rule := range suffixRules {
		if len(word) < rule.minLen || !strings.HasSuffix(word, rule.suffix) {
			continue
		}
		stem := word[:len(word)-len(rule.suffix)]
		if stem == "" {
			continue
		}
		return stem + rule.replacement
	}
	return word
}

// SnowballStemmer stems with the Porter2 english algorithm.
type SnowballStemmer struct{}

// Stem lower-cases token and stems it, returning the lower-cased token when snowball fails.
func (SnowballStemmer) Stem(token string) string {
	word := strings.ToLower(token)
	stem, err := snowball.Stem(word, "english", false)
	if err != nil || stem == "" {
		return word
	}
	return stem
}

// DefaultStemmer is used by Stem and ClassifyURL.
var DefaultStemmer Stemmer = SuffixStemmer{}

// Stem stems token with DefaultStemmer.
func Stem(token string) string {
	return DefaultStemmer.Stem(token)
}

// StemAll stems every token with s, keeping order.
func StemAll(s Stemmer, tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	stems := make([]string, len(tokens))
	for i, t := range tokens {
		stems[i] = s.Stem(t)
	}
	return stems
}

// StemmerByName returns the stemmer registered as name ("" selects the default).
func StemmerByName(name string) (Stemmer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "suffix":
		return SuffixStemmer{}, nil
	case "snowball", "porter2":
		return SnowballStemmer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStemmer, name)
	}
}
