package types

import "time"

// CategoryScores holds the per-category compliance percentages for one page.
// A category with no sampled elements scores 100: absence of evidence is not
// treated as non-compliance.
type CategoryScores struct {
	ColorPct       float64 `json:"color_pct"`
	TypographyPct  float64 `json:"typography_pct"`
	SpacingPct     float64 `json:"spacing_pct"`
	TouchTargetPct float64 `json:"touch_target_pct"`
}

// AuditResult is the outcome of auditing a single page. It is created once at
// the end of that page's evaluation pass and never mutated afterwards.
type AuditResult struct {
	PageName string `json:"page_name"`
	URL      string `json:"url"`

	Probed       bool   `json:"probed"` // false when navigation or stabilization failed
	FailureCause string `json:"failure_cause,omitempty"`

	Scores       CategoryScores `json:"scores"`
	OverallScore float64        `json:"overall_score"`

	Violations      []Violation `json:"violations"`
	Recommendations []string    `json:"recommendations"`

	Screenshots []string `json:"screenshots,omitempty"`
}

// Summary aggregates the whole run.
type Summary struct {
	AvgCompliance  float64 `json:"avg_compliance"`
	TotalIssues    int     `json:"total_issues"`
	CriticalIssues int     `json:"critical_issues"`
	PagesAudited   int     `json:"pages_audited"`
	PagesFailed    int     `json:"pages_failed"`
}

// AuditReport is the final artifact of a run, serialized to disk as JSON and
// mirrored to Markdown. Written exactly once, never mutated after write.
type AuditReport struct {
	RunID            string        `json:"run_id"`
	Timestamp        time.Time     `json:"timestamp"`
	BaseURL          string        `json:"base_url"`
	Viewport         Viewport      `json:"viewport"`
	ReferenceScreens []string      `json:"reference_screens"`
	AuditedScreens   []AuditResult `json:"audited_screens"`
	Summary          Summary       `json:"summary"`
}
