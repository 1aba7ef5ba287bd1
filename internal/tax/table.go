// Package tax validates and applies the jurisdiction-keyed Canadian sales-tax
// table used for subscription pricing.
package tax

import (
	"fmt"
	"math"
	"sort"
)

// Rule is the tax structure for one jurisdiction. HST provinces harmonize GST
// and PST into a single rate, so HSTPct > 0 implies GSTPct == 0 and PSTPct == 0.
type Rule struct {
	JurisdictionCode string  `json:"jurisdiction_code"`
	GSTPct           float64 `json:"gst_pct"`
	PSTPct           float64 `json:"pst_pct"`
	HSTPct           float64 `json:"hst_pct"`
	TotalRatePct     float64 `json:"total_rate_pct"`
	DisplayName      string  `json:"display_name"`
}

// DefaultJurisdiction is the fallback for unknown or empty codes. Pricing must
// never hard-fail on a bad code, so lookups degrade to the reference province.
const DefaultJurisdiction = "ON"

// rateTolerance bounds floating error when checking component sums.
const rateTolerance = 0.001

// table is the static rate table, loaded once and read-only thereafter.
var table = map[string]Rule{
	"AB": {JurisdictionCode: "AB", GSTPct: 5, TotalRatePct: 5, DisplayName: "Alberta"},
	"BC": {JurisdictionCode: "BC", GSTPct: 5, PSTPct: 7, TotalRatePct: 12, DisplayName: "British Columbia"},
	"MB": {JurisdictionCode: "MB", GSTPct: 5, PSTPct: 7, TotalRatePct: 12, DisplayName: "Manitoba"},
	"NB": {JurisdictionCode: "NB", HSTPct: 15, TotalRatePct: 15, DisplayName: "New Brunswick"},
	"NL": {JurisdictionCode: "NL", HSTPct: 15, TotalRatePct: 15, DisplayName: "Newfoundland and Labrador"},
	"NS": {JurisdictionCode: "NS", HSTPct: 15, TotalRatePct: 15, DisplayName: "Nova Scotia"},
	"NT": {JurisdictionCode: "NT", GSTPct: 5, TotalRatePct: 5, DisplayName: "Northwest Territories"},
	"NU": {JurisdictionCode: "NU", GSTPct: 5, TotalRatePct: 5, DisplayName: "Nunavut"},
	"ON": {JurisdictionCode: "ON", HSTPct: 13, TotalRatePct: 13, DisplayName: "Ontario"},
	"PE": {JurisdictionCode: "PE", HSTPct: 15, TotalRatePct: 15, DisplayName: "Prince Edward Island"},
	"QC": {JurisdictionCode: "QC", GSTPct: 5, PSTPct: 9.975, TotalRatePct: 14.975, DisplayName: "Quebec"},
	"SK": {JurisdictionCode: "SK", GSTPct: 5, PSTPct: 6, TotalRatePct: 11, DisplayName: "Saskatchewan"},
	"YT": {JurisdictionCode: "YT", GSTPct: 5, TotalRatePct: 5, DisplayName: "Yukon"},
}

// IsValidCode reports whether the code exists in the rate table.
func IsValidCode(code string) bool {
	_, ok := table[code]
	return ok
}

// ListAllCodes returns every jurisdiction code in the table, sorted.
func ListAllCodes() []string {
	codes := make([]string, 0, len(table))
	for code := range table {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Lookup returns the rule for a code, falling back to the default jurisdiction
// for unknown or empty codes. The second return reports whether a fallback
// occurred so callers can log a notice.
func Lookup(code string) (Rule, bool) {
	if rule, ok := table[code]; ok {
		return rule, false
	}
	return table[DefaultJurisdiction], true
}

// ValidateTable checks the static table's internal consistency. A failure is
// fatal at startup, same policy as the design-token registry.
func ValidateTable() error {
	for code, rule := range table {
		if code != rule.JurisdictionCode {
			return &TableError{Message: fmt.Sprintf("key %s does not match rule code %s", code, rule.JurisdictionCode)}
		}
		sum := rule.GSTPct + rule.PSTPct + rule.HSTPct
		if math.Abs(sum-rule.TotalRatePct) > rateTolerance {
			return &TableError{Message: fmt.Sprintf(
				"%s: component sum %.3f does not equal total rate %.3f", code, sum, rule.TotalRatePct)}
		}
		if rule.HSTPct > 0 && (rule.GSTPct != 0 || rule.PSTPct != 0) {
			return &TableError{Message: fmt.Sprintf(
				"%s: HST is harmonized and mutually exclusive with separate GST/PST", code)}
		}
		if rule.TotalRatePct < 5 || rule.TotalRatePct > 15 {
			return &TableError{Message: fmt.Sprintf(
				"%s: total rate %.3f outside the expected [5,15] range", code, rule.TotalRatePct)}
		}
	}
	if !IsValidCode(DefaultJurisdiction) {
		return &TableError{Message: fmt.Sprintf("default jurisdiction %s missing from table", DefaultJurisdiction)}
	}
	return nil
}
