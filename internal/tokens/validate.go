package tokens

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

var hexPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

// validate checks the static table invariants: every token value positive,
// hex values normalized, the neutral scale monotonically ordered light to dark,
// and every spacing multiple an exact multiple of the base unit (trivially true
// for integer multiples, but guards against a corrupted table edit).
func (r *Registry) validate() error {
	seen := make(map[string]string)
	for role, group := range r.colors {
		if len(group) == 0 {
			return &InvariantError{Message: fmt.Sprintf("color role %q has no tokens", role)}
		}
		for _, tok := range group {
			if !hexPattern.MatchString(tok.Hex) {
				return &InvariantError{Message: fmt.Sprintf("color token %q has malformed hex value %q", tok.Name, tok.Hex)}
			}
			if prev, dup := seen[tok.Hex]; dup {
				return &InvariantError{Message: fmt.Sprintf("color tokens %q and %q share hex value %s", prev, tok.Name, tok.Hex)}
			}
			seen[tok.Hex] = tok.Name
		}
	}

	// Neutral scale must run light to dark.
	neutrals := r.colors[RoleNeutral]
	for i := 1; i < len(neutrals); i++ {
		prev := hexLuminance(neutrals[i-1].Hex)
		cur := hexLuminance(neutrals[i].Hex)
		if cur >= prev {
			return &InvariantError{Message: fmt.Sprintf(
				"neutral scale not monotonic: %s (%s) is not darker than %s (%s)",
				neutrals[i].Name, neutrals[i].Hex, neutrals[i-1].Name, neutrals[i-1].Hex)}
		}
	}

	for _, t := range r.typography {
		if t.SizePx <= 0 {
			return &InvariantError{Message: fmt.Sprintf("typography role %q has non-positive size %.1f", t.Role, t.SizePx)}
		}
		if t.Weight < 100 || t.Weight > 900 || t.Weight%100 != 0 {
			return &InvariantError{Message: fmt.Sprintf("typography role %q has invalid weight %d", t.Role, t.Weight)}
		}
	}

	if r.spacing.BaseUnitPx <= 0 {
		return &InvariantError{Message: fmt.Sprintf("spacing base unit must be positive, got %.1f", r.spacing.BaseUnitPx)}
	}
	for _, m := range r.spacing.AllowedMultiples {
		if m <= 0 {
			return &InvariantError{Message: fmt.Sprintf("spacing multiple must be positive, got %d", m)}
		}
	}

	for _, rad := range r.radii {
		if rad.Px < 0 {
			return &InvariantError{Message: fmt.Sprintf("border radius %q is negative", rad.Name)}
		}
	}

	if r.touchTarget.MinimumPx <= 0 || r.touchTarget.MobileMinimumPx <= 0 {
		return &InvariantError{Message: "touch target minimums must be positive"}
	}
	if r.touchTarget.MobileMinimumPx > r.touchTarget.MinimumPx {
		return &InvariantError{Message: "mobile touch target minimum exceeds the primary minimum"}
	}

	return nil
}

// hexLuminance computes WCAG relative luminance for a normalized "#rrggbb"
// value. Only used for the neutral-scale ordering check; the contrast evaluator
// has its own full implementation over observed CSS colors.
func hexLuminance(hex string) float64 {
	channel := func(s string) float64 {
		v, _ := strconv.ParseInt(s, 16, 32)
		c := float64(v) / 255.0
		if c <= 0.03928 {
			return c / 12.92
		}
		return math.Pow((c+0.055)/1.055, 2.4)
	}
	r := channel(hex[1:3])
	g := channel(hex[3:5])
	b := channel(hex[5:7])
	return 0.2126*r + 0.7152*g + 0.0722*b
}
