package phishcheck

import (
	"sync"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
)

// BrandPatterns is the subset of SuspiciousPatterns naming impersonated brands.
var BrandPatterns = []string{"paypal", "amazon", "apple", "microsoft", "google", "facebook"}

const (
	minLookalikeLength = 4
	maxLookalikeDist   = 2
)

// distanceMu guards levenshtein.Distance, which reuses a package level table.
var distanceMu sync.Mutex

// Lookalike returns the brand that label is a near miss of, or "".
// An exact brand match is not a lookalike. The result is informational and
// does not take part in scoring.
func Lookalike(label string) string {
	if len(label) < minLookalikeLength {
		return ""
	}
	best, bestDist := "", maxLookalikeDist+1
	distanceMu.Lock()
	defer distanceMu.Unlock()
	for _, brand := range BrandPatterns {
		if label == brand {
			return ""
		}
		d := levenshtein.Distance(label, brand)
		if d > 0 && d < bestDist {
			best, bestDist = brand, d
		}
	}
	return best
}
