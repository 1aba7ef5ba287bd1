package evaluate

import (
	"fmt"

	"github.com/jonathan/design-auditor/internal/tokens"
	"github.com/jonathan/design-auditor/internal/types"
)

// TouchTarget checks that every interactive element's bounding box meets the
// configured minimum in both dimensions. Primary controls (buttons, inputs)
// get zero tolerance; inline text links get a small slack so dense prose is
// not penalized. On mobile viewports the iOS minimum applies instead.
func TouchTarget(facts []types.ObservedFact, reg *tokens.Registry, policy Policy, mobileViewport bool) Result {
	res := Result{}
	rule := reg.TouchTargetMinimum()

	minimum := rule.MinimumPx
	if mobileViewport {
		minimum = rule.MobileMinimumPx
	}

	for _, fact := range facts {
		if !isInteractive(fact.Role) || presentational(fact) {
			continue
		}
		res.Observed++

		// A link that declares role=button promises button semantics to
		// assistive technology, so it is held to the full button minimum
		// with no inline-link slack.
		inlineLink := fact.Role == types.RoleLink && fact.AriaAttributes["role"] != "button"

		required := minimum
		severity := types.SeverityError
		if inlineLink {
			required = minimum - policy.LinkSlackPx
			severity = types.SeverityWarning
		}

		var failing []string
		if fact.Box.Width < required {
			failing = append(failing, fmt.Sprintf("width %.0fpx", fact.Box.Width))
		}
		if fact.Box.Height < required {
			failing = append(failing, fmt.Sprintf("height %.0fpx", fact.Box.Height))
		}
		if len(failing) == 0 {
			continue
		}

		for _, dim := range failing {
			res.Violations = append(res.Violations, types.Violation{
				RuleCategory: types.CategoryTouchTarget,
				Severity:     severity,
				Element:      fact.ElementRef,
				Observed:     dim,
				Expected:     fmt.Sprintf("at least %.0fpx", required),
				Message:      fmt.Sprintf("touch target %s is below the %.0fpx minimum", dim, required),
			})
		}
	}

	return res
}

func isInteractive(role types.ElementRole) bool {
	switch role {
	case types.RoleButton, types.RoleLink, types.RoleInput:
		return true
	}
	return false
}

// presentational reports whether the element opted out of the accessibility
// tree via its observed ARIA attributes. Decorative controls are not audited
// as touch targets.
func presentational(fact types.ObservedFact) bool {
	if fact.AriaAttributes["aria-hidden"] == "true" {
		return true
	}
	switch fact.AriaAttributes["role"] {
	case "presentation", "none":
		return true
	}
	return false
}
