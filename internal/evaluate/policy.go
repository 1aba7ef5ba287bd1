package evaluate

import "github.com/jonathan/design-auditor/internal/types"

// Policy holds the named tolerance knobs for the rule evaluators. These are
// intentional legacy-tolerance settings, not arbitrary thresholds: third-party
// widgets and legacy screens are allowed a bounded number of off-palette
// colors, and inline prose links get a little slack on touch-target size.
type Policy struct {
	// LegacyColorTolerance is how many off-palette colors on non-primary
	// elements are downgraded to warnings before further ones become errors.
	// Primary actionable controls get zero tolerance regardless.
	LegacyColorTolerance int

	// TypographySizeTolerancePx absorbs sub-pixel rendering variance across
	// browsers and platforms when matching the type scale.
	TypographySizeTolerancePx float64

	// LinkSlackPx is subtracted from the touch-target minimum for inline text
	// links so dense prose is not penalized.
	LinkSlackPx float64

	// CriticalFloorPct is the compliance percentage below which color and
	// touch-target results escalate to critical.
	CriticalFloorPct float64
}

// DefaultPolicy returns the tolerances used in CI.
func DefaultPolicy() Policy {
	return Policy{
		LegacyColorTolerance:      10,
		TypographySizeTolerancePx: 2,
		LinkSlackPx:               4,
		CriticalFloorPct:          70,
	}
}

// Result is one evaluator's output: how many facts it examined and the
// violations it found. Observed counts feed the scoring formula.
type Result struct {
	Observed   int
	Violations []types.Violation
}
