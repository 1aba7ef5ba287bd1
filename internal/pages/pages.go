// Package pages loads and validates the list of application routes to audit.
package pages

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/design-auditor/internal/types"
)

var validate = validator.New()

// DefaultPages is the built-in route set for the family-caregiving app when no
// pages file is supplied.
func DefaultPages() []types.PageSpec {
	return []types.PageSpec{
		{Name: "home", Path: "/", Description: "Dashboard with today's activity summary"},
		{Name: "log", Path: "/log", Description: "Diaper change logging form"},
		{Name: "history", Path: "/history", Description: "Change history timeline"},
		{Name: "profile", Path: "/profile", Description: "Child profile screen"},
		{Name: "settings", Path: "/settings", Description: "Caregiver and notification settings"},
		{Name: "subscribe", Path: "/subscribe", Description: "Subscription plans with tax-inclusive pricing"},
	}
}

// Load reads a JSON pages file (an array of {name, path, description}) and
// validates every entry. Names must be unique since they key screenshot and
// report entries.
func Load(path string) ([]types.PageSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pages file %s: %w", path, err)
	}

	var specs []types.PageSpec
	if err := json.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("failed to parse pages file %s: %w", path, err)
	}

	if len(specs) == 0 {
		return nil, fmt.Errorf("pages file %s contains no pages", path)
	}

	seen := make(map[string]bool, len(specs))
	for i, spec := range specs {
		if err := validate.Struct(spec); err != nil {
			return nil, fmt.Errorf("pages file entry %d is invalid: %w", i, err)
		}
		if seen[spec.Name] {
			return nil, fmt.Errorf("pages file entry %d duplicates page name %q", i, spec.Name)
		}
		seen[spec.Name] = true
	}

	return specs, nil
}
