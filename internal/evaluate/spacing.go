package evaluate

import (
	"fmt"
	"math"

	"github.com/jonathan/design-auditor/internal/tokens"
	"github.com/jonathan/design-auditor/internal/types"
)

// spacingEpsilon absorbs floating error in computed pixel values.
const spacingEpsilon = 0.01

// Spacing checks that padding, margin and gap values sit on the spacing grid
// (exact multiples of the base unit; zero is always compliant) and that border
// radii come from the discrete radius scale.
func Spacing(facts []types.ObservedFact, reg *tokens.Registry, _ Policy) Result {
	res := Result{}
	rule := reg.SpacingRule()
	radii := reg.RadiusScale()

	for _, fact := range facts {
		res.Observed++

		edges := []struct {
			label  string
			values [4]float64
		}{
			{"padding", fact.Padding.Values()},
			{"margin", fact.Margin.Values()},
		}
		sides := [4]string{"top", "right", "bottom", "left"}

		for _, e := range edges {
			for i, v := range e.values {
				if !onGrid(v, rule.BaseUnitPx) {
					res.Violations = append(res.Violations, types.Violation{
						RuleCategory: types.CategorySpacing,
						Severity:     types.SeverityWarning,
						Element:      fact.ElementRef,
						Observed:     fmt.Sprintf("%.1fpx", v),
						Expected:     fmt.Sprintf("a multiple of %.0fpx", rule.BaseUnitPx),
						Message:      fmt.Sprintf("%s-%s %.1fpx is off the %.0fpx spacing grid", e.label, sides[i], v, rule.BaseUnitPx),
					})
				}
			}
		}

		if !onGrid(fact.GapPx, rule.BaseUnitPx) {
			res.Violations = append(res.Violations, types.Violation{
				RuleCategory: types.CategorySpacing,
				Severity:     types.SeverityWarning,
				Element:      fact.ElementRef,
				Observed:     fmt.Sprintf("%.1fpx", fact.GapPx),
				Expected:     fmt.Sprintf("a multiple of %.0fpx", rule.BaseUnitPx),
				Message:      fmt.Sprintf("gap %.1fpx is off the %.0fpx spacing grid", fact.GapPx, rule.BaseUnitPx),
			})
		}

		if !radiusOnScale(fact.BorderRadiusPx, radii) {
			res.Violations = append(res.Violations, types.Violation{
				RuleCategory: types.CategorySpacing,
				Severity:     types.SeverityWarning,
				Element:      fact.ElementRef,
				Observed:     fmt.Sprintf("%.1fpx", fact.BorderRadiusPx),
				Expected:     "a radius from the discrete scale",
				Message:      fmt.Sprintf("border radius %.1fpx is not on the radius scale", fact.BorderRadiusPx),
			})
		}
	}

	return res
}

// onGrid reports whether a pixel value is an exact multiple of the base unit.
// Zero is compliant: absence of spacing is not a violation. Negative margins
// are graded by magnitude.
func onGrid(v, baseUnit float64) bool {
	v = math.Abs(v)
	if v == 0 {
		return true
	}
	remainder := math.Mod(v, baseUnit)
	return remainder < spacingEpsilon || baseUnit-remainder < spacingEpsilon
}

func radiusOnScale(v float64, radii []tokens.BorderRadiusToken) bool {
	for _, r := range radii {
		if math.Abs(v-r.Px) < spacingEpsilon {
			return true
		}
	}
	// Browsers clamp oversized radii (the "pill" token) to half the box, so
	// anything at or beyond the largest named finite radius is treated as pill.
	return v > largestFiniteRadius(radii)
}

func largestFiniteRadius(radii []tokens.BorderRadiusToken) float64 {
	largest := 0.0
	for _, r := range radii {
		if r.Px < 9999 && r.Px > largest {
			largest = r.Px
		}
	}
	return largest
}
