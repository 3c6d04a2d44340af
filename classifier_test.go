package phishcheck

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}

func TestScoreStems(t *testing.T) {
	testcases := []struct {
		name       string
		stems      []string
		suspicious int
		legitimate int
	}{
		{name: "empty", stems: nil},
		{name: "phishing words", stems: []string{"login", "secur", "paypal"}, suspicious: 3},
		{name: "trusted sites", stems: []string{"wikipedia", "github"}, legitimate: 2},
		{name: "one point per stem", stems: []string{"paypalsecurlogin"}, suspicious: 1},
		{name: "stem on both lists", stems: []string{"githublogin"}, suspicious: 1, legitimate: 1},
		{name: "substring match", stems: []string{"forgotten"}, legitimate: 1}, // contains "org"
		{name: "ten stems", stems: repeat("abc", 10)},
		{name: "eleven stems", stems: repeat("abc", 11), suspicious: 1},
		{name: "twenty chars", stems: []string{strings.Repeat("x", 20)}},
		{name: "twenty one chars", stems: []string{strings.Repeat("x", 21), strings.Repeat("y", 30)}, suspicious: 1},
		{name: "five fragments", stems: repeat("ab", 5)},
		{name: "six fragments", stems: repeat("ab", 6), suspicious: 1},
		{name: "all structural", stems: append(repeat("x", 11), strings.Repeat("z", 25)), suspicious: 3},
	}
	for _, v := range testcases {
		t.Run(v.name, func(t *testing.T) {
			got := ScoreStems(v.stems)
			require.Equal(t, v.suspicious, got.Suspicious, "suspicious score")
			require.Equal(t, v.legitimate, got.Legitimate, "legitimate score")
		})
	}
}

func TestScoreSignals(t *testing.T) {
	got := ScoreStems(append([]string{"login", "github"}, repeat("ab", 6)...))
	require.Equal(t, []string{"suspicious:login", "legitimate:github", SignalShortFragments}, got.Signals)
}

func TestDecide(t *testing.T) {
	testcases := []struct {
		suspicious, legitimate int
		expected               Label
	}{
		{0, 0, Safe},
		{1, 0, Malicious}, // narrow lead with evidence
		{2, 0, Malicious},
		{1, 1, Malicious}, // tie with evidence
		{2, 1, Malicious},
		{3, 1, Malicious},
		{2, 2, Malicious},
		{0, 1, Safe},
		{1, 2, Safe},
		{4, 5, Safe},
	}
	for _, v := range testcases {
		got := Decide(Score{Suspicious: v.suspicious, Legitimate: v.legitimate})
		require.Equalf(t, v.expected, got, "suspicious=%d legitimate=%d", v.suspicious, v.legitimate)
	}
}

func TestClassify(t *testing.T) {
	require.Equal(t, Malicious, Classify([]string{"login", "secur", "paypal"}))
	require.Equal(t, Safe, Classify([]string{"wikipedia", "github"}))
	require.Equal(t, Malicious, Classify([]string{"login"}))
	require.Equal(t, Safe, Classify(nil))
	require.Equal(t, Safe, Classify([]string{"example", "com"}))
}

func TestClassifyURL(t *testing.T) {
	testcases := []struct {
		url      string
		expected Label
	}{
		{url: "http://www.paypal-login-secure-verify.com", expected: Malicious},
		{url: "https://en.wikipedia.org/wiki/Phishing", expected: Safe},
		{url: "https://github.com/projectdiscovery", expected: Safe},
		{url: "https://example.com", expected: Safe},
		{url: "http://account-update.example.com/confirm", expected: Malicious},
		{url: "", expected: Safe},
	}
	for _, v := range testcases {
		require.Equalf(t, v.expected, ClassifyURL(v.url), "label mismatch for %v", v.url)
	}
}

func TestLabel(t *testing.T) {
	require.Equal(t, "SAFE", Safe.String())
	require.Equal(t, "MALICIOUS", Malicious.String())
	require.EqualValues(t, 1, Safe)
	require.EqualValues(t, 0, Malicious)

	testcases := map[string]Label{"safe": Safe, "1": Safe, "MALICIOUS": Malicious, "suspicious": Malicious, " 0 ": Malicious}
	for text, expected := range testcases {
		var l Label
		require.NoError(t, l.UnmarshalText([]byte(text)))
		require.Equal(t, expected, l, text)
	}
	var l Label
	require.Error(t, l.UnmarshalText([]byte("maybe")))
}

func TestVocabulariesDisjoint(t *testing.T) {
	seen := map[string]struct{}{}
	for _, p := range SuspiciousPatterns {
		seen[p] = struct{}{}
	}
	for _, p := range LegitimatePatterns {
		_, dup := seen[p]
		require.Falsef(t, dup, "%v is on both lists", p)
	}
	require.Len(t, LegitimatePatterns, 11)
}
