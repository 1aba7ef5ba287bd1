package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/design-auditor/internal/tax"
)

var taxCmd = &cobra.Command{
	Use:   "tax",
	Short: "Validate the tax table and calculate a price",
	Long:  "Validates the jurisdiction rate table for internal consistency, and optionally calculates the taxed price for a base amount in a given jurisdiction.",
	RunE:  runTax,
}

var (
	taxPrice     float64
	taxCode      string
	taxInterval  string
	taxBreakdown bool
)

func init() {
	taxCmd.Flags().Float64Var(&taxPrice, "price", 0, "Base price to calculate tax for")
	taxCmd.Flags().StringVar(&taxCode, "code", tax.DefaultJurisdiction, "Jurisdiction code (e.g. ON, BC, QC)")
	taxCmd.Flags().StringVar(&taxInterval, "interval", "month", "Billing interval suffix (month or year)")
	taxCmd.Flags().BoolVar(&taxBreakdown, "breakdown", false, "Show itemized GST/PST/HST components")

	rootCmd.AddCommand(taxCmd)
}

func runTax(_ *cobra.Command, _ []string) error {
	if err := tax.ValidateTable(); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Tax table OK: %d jurisdictions\n", len(tax.ListAllCodes()))

	if taxPrice <= 0 {
		return nil
	}

	calc := tax.Calculate(taxPrice, taxCode)
	fmt.Fprintf(os.Stdout, "%s: base $%.2f, tax $%.2f (%.3f%%), total $%.2f\n",
		calc.DisplayName, calc.BasePrice, calc.TaxAmount, calc.TaxRate, calc.TotalPrice)
	fmt.Fprintln(os.Stdout, tax.FormatDisplay(taxPrice, taxCode, tax.DisplayOptions{
		Interval:      taxInterval,
		ShowBreakdown: taxBreakdown,
	}))

	return nil
}
