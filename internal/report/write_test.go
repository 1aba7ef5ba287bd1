package report

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/design-auditor/internal/evaluate"
	"github.com/jonathan/design-auditor/internal/tokens"
	"github.com/jonathan/design-auditor/internal/types"
)

func sampleReport(t *testing.T) *types.AuditReport {
	t.Helper()

	eval := &evaluate.PageEvaluation{
		Color:       evaluate.Result{Observed: 4},
		Typography:  evaluate.Result{Observed: 4},
		Spacing:     evaluate.Result{Observed: 4},
		TouchTarget: evaluate.Result{Observed: 2},
	}
	home := BuildResult("home", "http://localhost:3000/", eval, evaluate.DefaultPolicy(),
		[]string{"audit-home-desktop.png"})

	return Build("c1a7e1f0-0000-0000-0000-000000000001", "http://localhost:3000",
		types.Viewport{Name: "desktop", Width: 1280, Height: 800},
		[]types.AuditResult{home}, []string{"audit-home-desktop.png"},
		time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
}

func TestWrite_ProducesBothArtifacts(t *testing.T) {
	outDir := t.TempDir()
	reg := tokens.MustLoad()

	jsonPath, mdPath, err := Write(sampleReport(t), reg, outDir)
	require.NoError(t, err)

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)

	var roundTrip types.AuditReport
	require.NoError(t, json.Unmarshal(data, &roundTrip))
	assert.Equal(t, "http://localhost:3000", roundTrip.BaseURL)
	require.Len(t, roundTrip.AuditedScreens, 1)
	assert.Equal(t, 100.0, roundTrip.AuditedScreens[0].OverallScore)

	md, err := os.ReadFile(mdPath)
	require.NoError(t, err)
	assert.Contains(t, string(md), "# Design Compliance Audit")
	assert.Contains(t, string(md), "| home | audited |")
	assert.Contains(t, string(md), "## Token Reference")
}

func TestWrite_CreatesOutputDirectory(t *testing.T) {
	outDir := t.TempDir() + "/nested/reports"
	reg := tokens.MustLoad()

	_, _, err := Write(sampleReport(t), reg, outDir)
	require.NoError(t, err)

	_, err = os.Stat(outDir)
	assert.NoError(t, err)
}

func TestRenderMarkdown_FailedPageAndCriticals(t *testing.T) {
	reg := tokens.MustLoad()

	rep := sampleReport(t)
	rep.AuditedScreens = append(rep.AuditedScreens, types.AuditResult{
		PageName: "history",
		URL:      "http://localhost:3000/history",
		Probed:   false,
		Violations: []types.Violation{{
			RuleCategory: types.CategoryProbe,
			Severity:     types.SeverityCritical,
			Element:      "(page)",
			Message:      "page could not be audited: navigation timed out",
		}},
		Recommendations: []string{"Verify the route renders and stabilizes within the probe timeout."},
	})

	md := RenderMarkdown(rep, reg)
	assert.Contains(t, md, "| history | PROBE FAILED |")
	assert.Contains(t, md, "**CRITICAL:** [probe]")
	assert.Contains(t, md, "- Recommendation: Verify the route")
}
