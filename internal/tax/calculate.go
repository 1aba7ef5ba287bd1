package tax

import (
	"fmt"
	"log"
	"math"
	"strings"
)

// Calculation is the result of applying a jurisdiction's rate to a base price.
type Calculation struct {
	BasePrice   float64 `json:"base_price"`
	TaxAmount   float64 `json:"tax_amount"`
	TotalPrice  float64 `json:"total_price"`
	TaxRate     float64 `json:"tax_rate"`
	DisplayName string  `json:"display_name"`
}

// round2 rounds to cents.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Calculate applies the jurisdiction's total rate to a base price. Unknown or
// empty codes fall back to the default jurisdiction with a logged notice;
// pricing must never block checkout on a bad code.
func Calculate(basePrice float64, code string) Calculation {
	rule, fellBack := Lookup(code)
	if fellBack {
		log.Printf("[TAX] unknown jurisdiction %q, falling back to %s", code, DefaultJurisdiction)
	}

	taxAmount := round2(basePrice * rule.TotalRatePct / 100)
	return Calculation{
		BasePrice:   basePrice,
		TaxAmount:   taxAmount,
		TotalPrice:  round2(basePrice + taxAmount),
		TaxRate:     rule.TotalRatePct,
		DisplayName: rule.DisplayName,
	}
}

// DisplayOptions controls FormatDisplay rendering.
type DisplayOptions struct {
	Interval      string // "month" or "year"; empty omits the suffix
	ShowBreakdown bool   // itemize GST/PST components instead of the combined rate
}

// FormatDisplay renders a human-readable price string embedding the total, the
// billing-interval suffix, and either the combined rate or the itemized
// components, e.g. "$5.59/month (5% GST + 7% PST)".
func FormatDisplay(basePrice float64, code string, opts DisplayOptions) string {
	rule, _ := Lookup(code)
	calc := Calculate(basePrice, code)

	var sb strings.Builder
	fmt.Fprintf(&sb, "$%.2f", calc.TotalPrice)
	if opts.Interval != "" {
		fmt.Fprintf(&sb, "/%s", opts.Interval)
	}

	if opts.ShowBreakdown {
		parts := make([]string, 0, 2)
		if rule.HSTPct > 0 {
			parts = append(parts, fmt.Sprintf("%s%% HST", trimRate(rule.HSTPct)))
		}
		if rule.GSTPct > 0 {
			parts = append(parts, fmt.Sprintf("%s%% GST", trimRate(rule.GSTPct)))
		}
		if rule.PSTPct > 0 {
			parts = append(parts, fmt.Sprintf("%s%% PST", trimRate(rule.PSTPct)))
		}
		fmt.Fprintf(&sb, " (%s)", strings.Join(parts, " + "))
	} else {
		fmt.Fprintf(&sb, " (incl. %s%% tax)", trimRate(rule.TotalRatePct))
	}

	return sb.String()
}

// trimRate formats a rate without trailing zeros: 13 -> "13", 9.975 -> "9.975".
func trimRate(rate float64) string {
	s := fmt.Sprintf("%.3f", rate)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
