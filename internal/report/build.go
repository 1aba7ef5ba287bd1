package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/jonathan/design-auditor/internal/evaluate"
	"github.com/jonathan/design-auditor/internal/types"
)

// Remediation recommendations surfaced when a category falls below the
// critical compliance floor.
const (
	recommendColor       = "Replace off-palette colors with design tokens; audit component themes against the canonical palette."
	recommendTouchTarget = "Increase interactive element dimensions to at least 48x48px; add padding rather than resizing icons."
)

// BuildResult assembles one page's immutable AuditResult from its evaluation.
func BuildResult(pageName, url string, eval *evaluate.PageEvaluation, policy evaluate.Policy, screenshots []string) types.AuditResult {
	scores := types.CategoryScores{
		ColorPct:       Score(eval.Color.Observed, len(eval.Color.Violations)),
		TypographyPct:  Score(eval.Typography.Observed, len(eval.Typography.Violations)),
		SpacingPct:     Score(eval.Spacing.Observed, len(eval.Spacing.Violations)),
		TouchTargetPct: Score(eval.TouchTarget.Observed, len(eval.TouchTarget.Violations)),
	}

	violations := dedupe(eval.AllViolations())
	var recommendations []string

	// Color and touch-target categories below the compliance floor escalate
	// to critical and surface a remediation recommendation.
	if scores.ColorPct < policy.CriticalFloorPct {
		escalate(violations, types.CategoryColor)
		recommendations = append(recommendations, recommendColor)
	}
	if scores.TouchTargetPct < policy.CriticalFloorPct {
		escalate(violations, types.CategoryTouchTarget)
		recommendations = append(recommendations, recommendTouchTarget)
	}

	return types.AuditResult{
		PageName:        pageName,
		URL:             url,
		Probed:          true,
		Scores:          scores,
		OverallScore:    Aggregate(scores.ColorPct, scores.TypographyPct, scores.SpacingPct, scores.TouchTargetPct),
		Violations:      violations,
		Recommendations: dedupeStrings(recommendations),
		Screenshots:     screenshots,
	}
}

// FailedResult synthesizes the AuditResult for a page whose probe failed. The
// page scores zero and carries a single critical violation describing the
// failure; the run continues to the next page.
func FailedResult(pageName, url string, cause error) types.AuditResult {
	return types.AuditResult{
		PageName:     pageName,
		URL:          url,
		Probed:       false,
		FailureCause: cause.Error(),
		Scores:       types.CategoryScores{},
		OverallScore: 0,
		Violations: []types.Violation{{
			RuleCategory: types.CategoryProbe,
			Severity:     types.SeverityCritical,
			Element:      "(page)",
			Observed:     "probe failed",
			Expected:     "page reaches a stable rendered state",
			Message:      fmt.Sprintf("page could not be audited: %v", cause),
		}},
		Recommendations: []string{"Verify the route renders and stabilizes within the probe timeout."},
	}
}

// Build assembles the final run artifact. It is called exactly once per run;
// the returned report is never mutated afterwards.
func Build(runID, baseURL string, viewport types.Viewport, results []types.AuditResult, referenceScreens []string, now time.Time) *types.AuditReport {
	summary := types.Summary{PagesAudited: len(results)}

	var complianceSum float64
	for _, r := range results {
		complianceSum += r.OverallScore
		summary.TotalIssues += len(r.Violations)
		for _, v := range r.Violations {
			if v.Severity == types.SeverityCritical {
				summary.CriticalIssues++
			}
		}
		if !r.Probed {
			summary.PagesFailed++
		}
	}
	if len(results) > 0 {
		summary.AvgCompliance = round1(complianceSum / float64(len(results)))
	}

	// Nil slices marshal to JSON null, which the report schema rejects.
	if referenceScreens == nil {
		referenceScreens = []string{}
	}
	if results == nil {
		results = []types.AuditResult{}
	}
	sort.Strings(referenceScreens)

	return &types.AuditReport{
		RunID:            runID,
		Timestamp:        now.UTC(),
		BaseURL:          baseURL,
		Viewport:         viewport,
		ReferenceScreens: referenceScreens,
		AuditedScreens:   results,
		Summary:          summary,
	}
}

// escalate raises every violation of a category to critical in place.
func escalate(violations []types.Violation, category types.RuleCategory) {
	for i := range violations {
		if violations[i].RuleCategory == category {
			violations[i].Severity = types.SeverityCritical
		}
	}
}

// dedupe drops exact-duplicate violations while preserving order, so repeated
// DOM structures do not flood a page's report.
func dedupe(violations []types.Violation) []types.Violation {
	seen := make(map[types.Violation]bool, len(violations))
	out := make([]types.Violation, 0, len(violations))
	for _, v := range violations {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func dedupeStrings(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, s := range items {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
