package phishcheck

import (
	"strings"

	"github.com/projectdiscovery/utils/errkit"
)

var errInvalidLabel = errkit.New("invalid label, expected SAFE or MALICIOUS")

// Label is the binary outcome of a classification.
// The integer values match the historical prediction encoding.
type Label int

const (
	Malicious Label = 0
	Safe      Label = 1
)

// String returns SAFE or MALICIOUS.
func (l Label) String() string {
	if l == Safe {
		return "SAFE"
	}
	return "MALICIOUS"
}

// MarshalText encodes the label as SAFE or MALICIOUS.
func (l Label) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText accepts SAFE/MALICIOUS (any case) and the integer forms 1/0.
func (l *Label) UnmarshalText(text []byte) error {
	switch strings.ToUpper(strings.TrimSpace(string(text))) {
	case "SAFE", "1":
		*l = Safe
	case "MALICIOUS", "SUSPICIOUS", "0":
		*l = Malicious
	default:
		return errInvalidLabel
	}
	return nil
}

// SuspiciousPatterns are substrings commonly seen in phishing urls.
var SuspiciousPatterns = []string{
	"login", "signin", "account", "secur", "verif", "updat", "suspend",
	"paypal", "amazon", "apple", "microsoft", "google", "facebook",
	"bank", "credit", "card", "password", "confirm", "click", "urgent",
	"expire", "limit", "restrict", "unlock", "activ", "deactiv",
}

// LegitimatePatterns are substrings of well known, trusted sites and suffixes.
var LegitimatePatterns = []string{
	"edu", "gov", "org", "wikipedia", "github", "stackoverflow",
	"youtube", "linkedin", "twitter", "instagram", "reddit",
}

// structural thresholds
const (
	maxStems          = 10
	maxStemLength     = 20
	shortStemLength   = 3
	maxShortFragments = 5
)

// Signal names reported in Score.Signals for the structural rules.
const (
	SignalManyTokens     = "structure:many-tokens"
	SignalLongWord       = "structure:long-word"
	SignalShortFragments = "structure:short-fragments"
)

// Score is the accumulated evidence for a stem sequence.
type Score struct {
	Suspicious int `json:"suspicious"`
	Legitimate int `json:"legitimate"`
	// Signals lists every contribution in the form "<list>:<stem>" or a structural signal name.
	Signals []string `json:"signals,omitempty"`
}

// ScoreStems scores stems against both vocabularies and the structural rules.
// Each stem adds at most one point per vocabulary however many patterns it contains.
func ScoreStems(stems []string) Score {
	var score Score
	short := 0
	long := false
	for _, stem := range stems {
		if containsAny(stem, SuspiciousPatterns) {
			score.Suspicious++
			score.Signals = append(score.Signals, "suspicious:"+stem)
		}
		if containsAny(stem, LegitimatePatterns) {
			score.Legitimate++
			score.Signals = append(score.Signals, "legitimate:"+stem)
		}
		if len(stem) > maxStemLength {
			long = true
		}
		if len(stem) < shortStemLength {
			short++
		}
	}
	if len(stems) > maxStems {
		score.Suspicious++
		score.Signals = append(score.Signals, SignalManyTokens)
	}
	if long {
		score.Suspicious++
		score.Signals = append(score.Signals, SignalLongWord)
	}
	if short > maxShortFragments {
		score.Suspicious++
		score.Signals = append(score.Signals, SignalShortFragments)
	}
	return score
}

// Decide turns a score into a label.
// A legitimate lead wins, a suspicious lead of two or more loses, and anything
// in between is malicious only when there is some suspicious evidence.
func Decide(score Score) Label {
	if score.Legitimate > score.Suspicious {
		return Safe
	}
	if score.Suspicious > score.Legitimate+1 {
		return Malicious
	}
	if score.Suspicious > 0 {
		return Malicious
	}
	return Safe
}

// Classify scores stems and decides the label.
func Classify(stems []string) Label {
	return Decide(ScoreStems(stems))
}

// ClassifyURL runs url through Tokenize, DefaultStemmer and Classify.
func ClassifyURL(url string) Label {
	return Classify(StemAll(DefaultStemmer, Tokenize(url)))
}

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
