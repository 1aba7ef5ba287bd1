package report

import (
	"fmt"
	"strings"

	"github.com/jonathan/design-auditor/internal/tokens"
	"github.com/jonathan/design-auditor/internal/types"
)

// RenderMarkdown renders the human-readable mirror of the JSON report. It is
// presentation only: every number comes straight from the report model, never
// recomputed here.
func RenderMarkdown(rep *types.AuditReport, reg *tokens.Registry) string {
	var sb strings.Builder

	sb.WriteString("# Design Compliance Audit\n\n")
	fmt.Fprintf(&sb, "Run `%s` at %s against `%s` (%s %dx%d).\n\n",
		rep.RunID, rep.Timestamp.Format("2006-01-02 15:04:05 UTC"), rep.BaseURL,
		rep.Viewport.Name, rep.Viewport.Width, rep.Viewport.Height)

	// Executive summary
	sb.WriteString("## Summary\n\n")
	fmt.Fprintf(&sb, "- Average compliance: **%.1f%%**\n", rep.Summary.AvgCompliance)
	fmt.Fprintf(&sb, "- Pages audited: %d (%d failed to probe)\n", rep.Summary.PagesAudited, rep.Summary.PagesFailed)
	fmt.Fprintf(&sb, "- Issues: %d total, %d critical\n\n", rep.Summary.TotalIssues, rep.Summary.CriticalIssues)

	// Per-page table
	sb.WriteString("## Pages\n\n")
	sb.WriteString("| Page | Status | Color | Typography | Spacing | Touch Target | Overall |\n")
	sb.WriteString("|------|--------|-------|------------|---------|--------------|---------|\n")
	for _, page := range rep.AuditedScreens {
		status := "audited"
		if !page.Probed {
			status = "PROBE FAILED"
		}
		fmt.Fprintf(&sb, "| %s | %s | %.1f%% | %.1f%% | %.1f%% | %.1f%% | %.1f%% |\n",
			page.PageName, status,
			page.Scores.ColorPct, page.Scores.TypographyPct,
			page.Scores.SpacingPct, page.Scores.TouchTargetPct,
			page.OverallScore)
	}
	sb.WriteString("\n")

	// Per-page issues, critical ones visually distinguished for triage.
	for _, page := range rep.AuditedScreens {
		if len(page.Violations) == 0 && len(page.Recommendations) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "### %s\n\n", page.PageName)
		for _, v := range page.Violations {
			if v.Severity == types.SeverityCritical {
				fmt.Fprintf(&sb, "- **CRITICAL:** [%s] %s — %s\n", v.RuleCategory, v.Element, v.Message)
			} else {
				fmt.Fprintf(&sb, "- [%s] %s — %s\n", v.RuleCategory, v.Element, v.Message)
			}
		}
		for _, rec := range page.Recommendations {
			fmt.Fprintf(&sb, "- Recommendation: %s\n", rec)
		}
		sb.WriteString("\n")
	}

	// Token reference appendix
	sb.WriteString("## Token Reference\n\n")
	sb.WriteString("### Colors\n\n")
	for _, role := range []tokens.ColorRole{tokens.RolePrimary, tokens.RoleSuccess, tokens.RoleWarning, tokens.RoleError, tokens.RoleNeutral} {
		for _, tok := range reg.ColorTokens()[role] {
			fmt.Fprintf(&sb, "- `%s` (%s): `%s`\n", tok.Name, role, tok.Hex)
		}
	}
	sb.WriteString("\n### Typography\n\n")
	for _, t := range reg.TypographyScale() {
		fmt.Fprintf(&sb, "- `%s`: %.0fpx / %d\n", t.Role, t.SizePx, t.Weight)
	}
	spacing := reg.SpacingRule()
	fmt.Fprintf(&sb, "\n### Spacing\n\nBase unit %.0fpx, multiples %v.\n", spacing.BaseUnitPx, spacing.AllowedMultiples)
	sb.WriteString("\n### Border Radius\n\n")
	for _, r := range reg.RadiusScale() {
		fmt.Fprintf(&sb, "- `%s`: %.0fpx\n", r.Name, r.Px)
	}
	tt := reg.TouchTargetMinimum()
	fmt.Fprintf(&sb, "\n### Touch Targets\n\nMinimum %.0fpx (mobile minimum %.0fpx).\n", tt.MinimumPx, tt.MobileMinimumPx)

	return sb.String()
}
