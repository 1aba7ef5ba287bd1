package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/design-auditor/internal/tokens"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Validate and print the design-token registry",
	Long:  "Loads the canonical token registry, runs its self-validation, and prints the palette, type scale, spacing grid and touch-target rules for design review.",
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(_ *cobra.Command, _ []string) error {
	registry, err := tokens.Load()
	if err != nil {
		return err
	}

	out := os.Stdout

	fmt.Fprintln(out, "Colors:")
	for _, role := range []tokens.ColorRole{tokens.RolePrimary, tokens.RoleSuccess, tokens.RoleWarning, tokens.RoleError, tokens.RoleNeutral} {
		for _, tok := range registry.ColorTokens()[role] {
			fmt.Fprintf(out, "  %-14s %-8s %s\n", tok.Name, role, tok.Hex)
		}
	}

	fmt.Fprintln(out, "\nTypography:")
	for _, t := range registry.TypographyScale() {
		fmt.Fprintf(out, "  %-12s %4.0fpx  weight %d\n", t.Role, t.SizePx, t.Weight)
	}

	spacing := registry.SpacingRule()
	fmt.Fprintf(out, "\nSpacing: base unit %.0fpx, multiples %v\n", spacing.BaseUnitPx, spacing.AllowedMultiples)

	fmt.Fprintln(out, "\nBorder radius:")
	for _, r := range registry.RadiusScale() {
		fmt.Fprintf(out, "  %-8s %.0fpx\n", r.Name, r.Px)
	}

	tt := registry.TouchTargetMinimum()
	fmt.Fprintf(out, "\nTouch targets: %.0fpx minimum (%.0fpx on mobile)\n", tt.MinimumPx, tt.MobileMinimumPx)

	return nil
}
