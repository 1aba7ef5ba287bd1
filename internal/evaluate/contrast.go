package evaluate

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/design-auditor/internal/tokens"
	"github.com/jonathan/design-auditor/internal/types"
)

// WCAG contrast thresholds.
const (
	normalTextRatio = 4.5
	largeTextRatio  = 3.0

	// Large text per the audited app's scale: at or above 24px, or at or
	// above 19px when bold.
	largeTextSizePx     = 24.0
	largeTextBoldSizePx = 19.0
)

// Contrast computes the WCAG contrast ratio between each text-bearing
// element's foreground and its effective background, and requires 4.5:1 for
// normal text or 3.0:1 for large text. The luminance math follows the
// gamma-corrected sRGB formula exactly so results agree with standard
// accessibility tooling.
func Contrast(facts []types.ObservedFact, _ *tokens.Registry, _ Policy) Result {
	res := Result{}

	for _, fact := range facts {
		if fact.Role == types.RoleImage || strings.TrimSpace(fact.TextContent) == "" {
			continue
		}

		fg, okFg := ParseCSSColor(fact.ComputedColor)
		bg, okBg := ParseCSSColor(fact.EffectiveBackground)
		if !okFg || !okBg {
			continue
		}
		res.Observed++

		ratio := ContrastRatio(fg, bg)
		required := normalTextRatio
		if isLargeText(fact.FontSizePx, fact.FontWeight) {
			required = largeTextRatio
		}

		if ratio < required {
			res.Violations = append(res.Violations, types.Violation{
				RuleCategory: types.CategoryContrast,
				Severity:     types.SeverityError,
				Element:      fact.ElementRef,
				Observed:     fmt.Sprintf("%.2f:1 (%s on %s)", ratio, fg.Hex(), bg.Hex()),
				Expected:     fmt.Sprintf("at least %.1f:1", required),
				Message: fmt.Sprintf("contrast ratio %.2f:1 is below the %.1f:1 requirement",
					ratio, required),
			})
		}
	}

	return res
}

// RelativeLuminance implements the WCAG gamma-corrected sRGB luminance formula.
func RelativeLuminance(c RGBA) float64 {
	lin := func(v uint8) float64 {
		ch := float64(v) / 255.0
		if ch <= 0.03928 {
			return ch / 12.92
		}
		return math.Pow((ch+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(c.R) + 0.7152*lin(c.G) + 0.0722*lin(c.B)
}

// ContrastRatio returns the WCAG contrast ratio between two colors, always
// placing the lighter color in the numerator. Black on white yields 21:1.
func ContrastRatio(a, b RGBA) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

func isLargeText(sizePx float64, weight string) bool {
	if sizePx >= largeTextSizePx {
		return true
	}
	return sizePx >= largeTextBoldSizePx && isBoldWeight(weight)
}

func isBoldWeight(weight string) bool {
	switch strings.TrimSpace(strings.ToLower(weight)) {
	case "bold", "700", "800", "900":
		return true
	}
	return false
}
