package observability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/design-auditor/internal/types"
)

func TestPrintAuditResult(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	p.PrintAuditResult(&types.AuditResult{
		PageName:     "home",
		URL:          "http://localhost:3000/",
		Probed:       true,
		Scores:       types.CategoryScores{ColorPct: 100, TypographyPct: 95.5, SpacingPct: 100, TouchTargetPct: 100},
		OverallScore: 98.9,
		Violations: []types.Violation{{
			RuleCategory: types.CategoryTypography,
			Severity:     types.SeverityWarning,
			Element:      "p.fine-print",
			Message:      "font size 11.0px is not on the type scale",
		}},
	})

	out := buf.String()
	assert.Contains(t, out, "AUDIT: home")
	assert.Contains(t, out, "95.5%")
	assert.Contains(t, out, "[typography]")
}

func TestPrintAuditResult_FailedPage(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	p.PrintAuditResult(&types.AuditResult{
		PageName:     "history",
		URL:          "http://localhost:3000/history",
		Probed:       false,
		FailureCause: "navigation timed out",
	})

	out := buf.String()
	assert.Contains(t, out, "PROBE FAILED")
	assert.Contains(t, out, "navigation timed out")
}

func TestPrintAuditResult_NilIsNoop(t *testing.T) {
	var buf strings.Builder
	NewPrinter(&buf).PrintAuditResult(nil)
	assert.Empty(t, buf.String())
}

func TestPrintSummary(t *testing.T) {
	var buf strings.Builder
	NewPrinter(&buf).PrintSummary(types.Summary{
		AvgCompliance:  87.5,
		TotalIssues:    12,
		CriticalIssues: 0,
		PagesAudited:   6,
	})

	out := buf.String()
	assert.Contains(t, out, "AUDIT SUMMARY ✅")
	assert.Contains(t, out, "87.5%")
	assert.Contains(t, out, "Pages audited:      6")
}
