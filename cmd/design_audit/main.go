// Package main implements the design_audit CLI for design-system and
// accessibility compliance auditing of the running application.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "design_audit",
	Short: "Design-system compliance auditor",
	Long:  "design_audit probes rendered pages of the running application, checks them against the canonical design tokens and accessibility rules, and produces a scored compliance report usable as a CI gate.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
