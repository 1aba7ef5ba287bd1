package evaluate

import (
	"fmt"
	"strings"

	"github.com/jonathan/design-auditor/internal/tokens"
	"github.com/jonathan/design-auditor/internal/types"
)

// Color checks every observed foreground and background color for membership
// in the canonical palette. Off-palette colors on primary actionable controls
// are always errors; elsewhere the legacy tolerance downgrades the first N
// findings to warnings to accommodate legacy and third-party elements.
func Color(facts []types.ObservedFact, reg *tokens.Registry, policy Policy) Result {
	res := Result{}
	legacySeen := 0

	for _, fact := range facts {
		if fact.Role == types.RoleImage {
			continue
		}
		res.Observed++

		for _, obs := range []struct {
			label string
			value string
		}{
			{"color", fact.ComputedColor},
			{"background-color", fact.ComputedBackground},
		} {
			parsed, ok := ParseCSSColor(obs.value)
			if !ok || !parsed.Opaque() {
				// Transparent backgrounds are resolved by the prober's
				// ancestor walk; nothing to check here.
				continue
			}
			hex := parsed.Hex()
			if _, member := reg.ColorName(hex); member {
				continue
			}

			severity := types.SeverityError
			if !isPrimaryControl(fact) {
				legacySeen++
				if legacySeen <= policy.LegacyColorTolerance {
					severity = types.SeverityWarning
				}
			}

			res.Violations = append(res.Violations, types.Violation{
				RuleCategory: types.CategoryColor,
				Severity:     severity,
				Element:      fact.ElementRef,
				Observed:     hex,
				Expected:     "a canonical palette color",
				Message:      fmt.Sprintf("%s %s is not in the design-token palette", obs.label, hex),
			})
		}

		if v, ok := semanticRoleViolation(fact, reg); ok {
			res.Violations = append(res.Violations, v)
		}
	}

	return res
}

// isPrimaryControl reports whether a fact is a primary actionable control,
// which gets zero color tolerance.
func isPrimaryControl(fact types.ObservedFact) bool {
	return fact.Role == types.RoleButton || fact.Role == types.RoleInput
}

// semanticRoleViolation enforces semantic palette scoping: elements whose
// descriptor marks them as success/warning/error surfaces must draw their
// background from the matching palette group.
func semanticRoleViolation(fact types.ObservedFact, reg *tokens.Registry) (types.Violation, bool) {
	ref := strings.ToLower(fact.ElementRef)

	var role tokens.ColorRole
	switch {
	case strings.Contains(ref, "success"):
		role = tokens.RoleSuccess
	case strings.Contains(ref, "warning"):
		role = tokens.RoleWarning
	case strings.Contains(ref, "error"), strings.Contains(ref, "danger"):
		role = tokens.RoleError
	default:
		return types.Violation{}, false
	}

	parsed, ok := ParseCSSColor(fact.ComputedBackground)
	if !ok || !parsed.Opaque() {
		return types.Violation{}, false
	}
	hex := parsed.Hex()

	for _, allowed := range reg.RoleColors(role) {
		if hex == allowed {
			return types.Violation{}, false
		}
	}
	// Neutral backgrounds on semantic elements are fine (e.g. outlined variants).
	for _, allowed := range reg.RoleColors(tokens.RoleNeutral) {
		if hex == allowed {
			return types.Violation{}, false
		}
	}

	return types.Violation{
		RuleCategory: types.CategoryColor,
		Severity:     types.SeverityError,
		Element:      fact.ElementRef,
		Observed:     hex,
		Expected:     fmt.Sprintf("a %s-palette color", role),
		Message:      fmt.Sprintf("element identifies as %q but its background %s is outside the %s palette", role, hex, role),
	}, true
}
