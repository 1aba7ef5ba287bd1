package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/design-auditor/internal/schemas"
	"github.com/jonathan/design-auditor/internal/tokens"
	"github.com/jonathan/design-auditor/internal/types"
)

// Artifact file names inside the output directory.
const (
	JSONFileName     = "audit_report.json"
	MarkdownFileName = "audit_report.md"
)

// Write serializes the report to the output directory: the JSON model first
// (the single source of truth), then the Markdown mirror rendered from it.
// When the report schema can be located, the JSON is validated against it
// before anything touches disk, so a failed write never leaves a corrupt
// artifact behind.
func Write(rep *types.AuditReport, reg *tokens.Registry, outDir string) (jsonPath string, mdPath string, err error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal report: %w", err)
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.ReportSchemaPath); schemaPath != "" {
		schemaContent, readErr := os.ReadFile(schemaPath)
		if readErr != nil {
			return "", "", fmt.Errorf("failed to read report schema: %w", readErr)
		}
		if err := schemas.ValidateJSONString(string(schemaContent), string(data)); err != nil {
			return "", "", fmt.Errorf("report failed schema validation: %w", err)
		}
	}

	jsonPath = filepath.Join(outDir, JSONFileName)
	if err := os.WriteFile(jsonPath, data, 0644); err != nil {
		return "", "", fmt.Errorf("failed to write JSON report %s: %w", jsonPath, err)
	}

	mdPath = filepath.Join(outDir, MarkdownFileName)
	if err := os.WriteFile(mdPath, []byte(RenderMarkdown(rep, reg)), 0644); err != nil {
		return "", "", fmt.Errorf("failed to write Markdown report %s: %w", mdPath, err)
	}

	return jsonPath, mdPath, nil
}
