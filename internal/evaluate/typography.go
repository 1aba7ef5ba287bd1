package evaluate

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jonathan/design-auditor/internal/tokens"
	"github.com/jonathan/design-auditor/internal/types"
)

// Typography checks font sizes against the type scale (with a tolerance for
// sub-pixel rendering variance) and font weights against the named weights or
// the generic normal/bold aliases.
func Typography(facts []types.ObservedFact, reg *tokens.Registry, policy Policy) Result {
	res := Result{}
	sizes := reg.FontSizes()
	weights := reg.FontWeights()

	for _, fact := range facts {
		if fact.Role == types.RoleImage || fact.FontSizePx <= 0 {
			continue
		}
		res.Observed++

		if !sizeOnScale(fact.FontSizePx, sizes, policy.TypographySizeTolerancePx) {
			res.Violations = append(res.Violations, types.Violation{
				RuleCategory: types.CategoryTypography,
				Severity:     types.SeverityWarning,
				Element:      fact.ElementRef,
				Observed:     fmt.Sprintf("%.1fpx", fact.FontSizePx),
				Expected:     fmt.Sprintf("one of %v (±%.0fpx)", sizes, policy.TypographySizeTolerancePx),
				Message:      fmt.Sprintf("font size %.1fpx is not on the type scale", fact.FontSizePx),
			})
		}

		if !weightAllowed(fact.FontWeight, weights) {
			res.Violations = append(res.Violations, types.Violation{
				RuleCategory: types.CategoryTypography,
				Severity:     types.SeverityWarning,
				Element:      fact.ElementRef,
				Observed:     fact.FontWeight,
				Expected:     "a named scale weight or normal/bold",
				Message:      fmt.Sprintf("font weight %q is not part of the type scale", fact.FontWeight),
			})
		}
	}

	return res
}

func sizeOnScale(sizePx float64, scale []float64, tolerance float64) bool {
	for _, s := range scale {
		if math.Abs(sizePx-s) <= tolerance {
			return true
		}
	}
	return false
}

// weightAllowed accepts numeric weights present in the scale plus the generic
// aliases browsers report for unstyled text.
func weightAllowed(weight string, allowed map[int]bool) bool {
	switch strings.ToLower(strings.TrimSpace(weight)) {
	case "normal", "bold":
		return true
	}
	n, err := strconv.Atoi(strings.TrimSpace(weight))
	if err != nil {
		return false
	}
	return allowed[n]
}
