// Package report turns evaluator output into scored per-page results and the
// final run artifact (JSON plus a Markdown mirror).
package report

import "math"

// Score returns the compliance percentage for one category:
// 100 * (observed - violations) / observed. A category with no observations
// scores 100; absence of evidence is not treated as non-compliance. The result
// is clamped at 0 since an element can carry more than one violation.
func Score(observed, violations int) float64 {
	if observed == 0 {
		return 100
	}
	pct := 100 * float64(observed-violations) / float64(observed)
	if pct < 0 {
		return 0
	}
	return round1(pct)
}

// Aggregate is the unweighted mean across the four primary categories.
func Aggregate(color, typography, spacing, touchTarget float64) float64 {
	return round1((color + typography + spacing + touchTarget) / 4)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
