// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/design-auditor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAuditResult outputs a human-readable summary of one page's audit.
func (p *Printer) PrintAuditResult(result *types.AuditResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("URL:      %s\n", result.URL))

	if !result.Probed {
		sb.WriteString("\nPROBE FAILED\n")
		sb.WriteString(fmt.Sprintf("Cause: %s\n", result.FailureCause))
		p.printBox(fmt.Sprintf("AUDIT: %s", result.PageName), strings.TrimSuffix(sb.String(), "\n"))
		return
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Color:        %5.1f%%\n", result.Scores.ColorPct))
	sb.WriteString(fmt.Sprintf("Typography:   %5.1f%%\n", result.Scores.TypographyPct))
	sb.WriteString(fmt.Sprintf("Spacing:      %5.1f%%\n", result.Scores.SpacingPct))
	sb.WriteString(fmt.Sprintf("Touch target: %5.1f%%\n", result.Scores.TouchTargetPct))
	sb.WriteString(fmt.Sprintf("Overall:      %5.1f%%\n", result.OverallScore))

	if len(result.Violations) > 0 {
		sb.WriteString(fmt.Sprintf("\n%d violations:\n", len(result.Violations)))
		count := min(len(result.Violations), maxItemsToShow)
		for i := 0; i < count; i++ {
			v := result.Violations[i]
			msg := v.Message
			if len(msg) > 45 {
				msg = msg[:42] + "..."
			}
			marker := "⚠"
			if v.Severity == types.SeverityCritical {
				marker = "✗ CRITICAL"
			}
			sb.WriteString(fmt.Sprintf("%s [%s] %s\n", marker, v.RuleCategory, msg))
		}
		if len(result.Violations) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(result.Violations)-maxItemsToShow))
		}
	}

	p.printBox(fmt.Sprintf("AUDIT: %s", result.PageName), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummary outputs the whole-run summary box.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSummary(summary types.Summary) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Average compliance: %.1f%%\n", summary.AvgCompliance))
	sb.WriteString(fmt.Sprintf("Pages audited:      %d\n", summary.PagesAudited))
	sb.WriteString(fmt.Sprintf("Pages failed:       %d\n", summary.PagesFailed))
	sb.WriteString(fmt.Sprintf("Total issues:       %d\n", summary.TotalIssues))
	sb.WriteString(fmt.Sprintf("Critical issues:    %d", summary.CriticalIssues))

	title := "AUDIT SUMMARY"
	if summary.CriticalIssues == 0 {
		title = "AUDIT SUMMARY ✅"
	}
	p.printBox(title, sb.String())
}
