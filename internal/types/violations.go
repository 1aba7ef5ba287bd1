package types

// RuleCategory identifies which evaluator produced a violation.
type RuleCategory string

// Rule categories, one per evaluator.
const (
	CategoryColor       RuleCategory = "color"
	CategoryTypography  RuleCategory = "typography"
	CategorySpacing     RuleCategory = "spacing"
	CategoryTouchTarget RuleCategory = "touch_target"
	CategoryContrast    RuleCategory = "contrast"
	CategorySemantic    RuleCategory = "semantic"
	CategoryProbe       RuleCategory = "probe"
)

// Severity levels for violations.
const (
	SeverityCritical = "critical"
	SeverityError    = "error"
	SeverityWarning  = "warning"
)

// Violation represents a single design-compliance failure found on a page.
// A violation is immutable once created; the owning page's AuditResult holds it.
type Violation struct {
	RuleCategory RuleCategory `json:"rule_category"`
	Severity     string       `json:"severity"`
	Element      string       `json:"element"` // element descriptor, e.g. "button#subscribe"
	Observed     string       `json:"observed"`
	Expected     string       `json:"expected"`
	Message      string       `json:"message"`
}
