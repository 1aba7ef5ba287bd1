package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/design-auditor/internal/db"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Fetch a stored audit report by run ID",
	Long:  "Retrieves the JSON report of a past audit run from the history database and prints it to stdout.",
	RunE:  runHistory,
}

var (
	historyRunID       string
	historyDatabaseURL string
)

func init() {
	historyCmd.Flags().StringVar(&historyRunID, "run-id", "", "Run ID to fetch (required)")
	historyCmd.Flags().StringVar(&historyDatabaseURL, "database-url", "", "PostgreSQL URL (overrides DATABASE_URL env var)")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	runID, err := uuid.Parse(historyRunID)
	if err != nil {
		return fmt.Errorf("invalid run ID %q: %w", historyRunID, err)
	}

	databaseURL := historyDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("database URL required: set --database-url or DATABASE_URL")
	}

	store, err := db.Connect(cmd.Context(), databaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	content, err := store.GetReport(cmd.Context(), runID)
	if err != nil {
		return err
	}
	if content == nil {
		return fmt.Errorf("no report stored for run %s", runID)
	}

	fmt.Fprintln(os.Stdout, string(content))
	return nil
}
