package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/design-auditor/internal/audit"
	"github.com/jonathan/design-auditor/internal/config"
	"github.com/jonathan/design-auditor/internal/evaluate"
	"github.com/jonathan/design-auditor/internal/observability"
	"github.com/jonathan/design-auditor/internal/pages"
	"github.com/jonathan/design-auditor/internal/probe"
	"github.com/jonathan/design-auditor/internal/types"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Audit the application's pages for design-token compliance",
	Long:  "Probes each configured route in a headless browser, evaluates colors, typography, spacing, touch targets, contrast and ARIA semantics against the token registry, and writes a JSON + Markdown report. Exits non-zero when critical issues are found, so the command works as a CI gate.",
	RunE:  runAudit,
}

var (
	runBaseURL       string
	runPagesFile     string
	runOutDir        string
	runConfigPath    string
	runViewport      string
	runWidth         int64
	runHeight        int64
	runMobile        bool
	runSampleLimit   int
	runNavTimeoutSec int
	runParallelism   int
	runDatabaseURL   string
	runVerbose       bool
)

func init() {
	runCmd.Flags().StringVarP(&runBaseURL, "base-url", "u", "", "Base URL of the application under test (required)")
	runCmd.Flags().StringVar(&runPagesFile, "pages", "", "JSON file listing pages to audit (default: built-in route set)")
	runCmd.Flags().StringVarP(&runOutDir, "out", "o", "audit-output", "Output directory for reports and screenshots")
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "JSON config file providing flag defaults")
	runCmd.Flags().StringVar(&runViewport, "viewport", "desktop", "Viewport name used in screenshot file names")
	runCmd.Flags().Int64Var(&runWidth, "width", 1280, "Viewport width in pixels")
	runCmd.Flags().Int64Var(&runHeight, "height", 800, "Viewport height in pixels")
	runCmd.Flags().BoolVar(&runMobile, "mobile", false, "Apply mobile touch-target minimums")
	runCmd.Flags().IntVar(&runSampleLimit, "sample-limit", probe.DefaultSampleLimit, "Per-category element sample cap")
	runCmd.Flags().IntVar(&runNavTimeoutSec, "timeout", int(probe.DefaultNavigationTimeout/time.Second), "Per-page navigation timeout in seconds")
	runCmd.Flags().IntVar(&runParallelism, "parallelism", 2, "Concurrent page audits")
	runCmd.Flags().StringVar(&runDatabaseURL, "database-url", "", "PostgreSQL URL for audit history (overrides DATABASE_URL env var)")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print per-page audit boxes")

	rootCmd.AddCommand(runCmd)
}

func runDefaults() config.Config {
	return config.Config{
		OutDir:               "audit-output",
		ViewportName:         "desktop",
		ViewportWidth:        1280,
		ViewportHeight:       800,
		SampleLimit:          probe.DefaultSampleLimit,
		NavigationTimeoutSec: int(probe.DefaultNavigationTimeout / time.Second),
		Parallelism:          2,
	}
}

// resolveRunConfig applies the precedence explicitly-set flags > config file >
// built-in defaults. Flags only override when the user actually set them, so a
// flag's cobra default never clobbers a config-file value.
func resolveRunConfig(cmd *cobra.Command, fileCfg config.Config) config.Config {
	cfg := fileCfg
	f := cmd.Flags()

	if f.Changed("base-url") {
		cfg.BaseURL = runBaseURL
	}
	if f.Changed("pages") {
		cfg.PagesFile = runPagesFile
	}
	if f.Changed("out") {
		cfg.OutDir = runOutDir
	}
	if f.Changed("viewport") {
		cfg.ViewportName = runViewport
	}
	if f.Changed("width") {
		cfg.ViewportWidth = runWidth
	}
	if f.Changed("height") {
		cfg.ViewportHeight = runHeight
	}
	if f.Changed("mobile") {
		cfg.Mobile = runMobile
	}
	if f.Changed("sample-limit") {
		cfg.SampleLimit = runSampleLimit
	}
	if f.Changed("timeout") {
		cfg.NavigationTimeoutSec = runNavTimeoutSec
	}
	if f.Changed("parallelism") {
		cfg.Parallelism = runParallelism
	}
	if f.Changed("database-url") {
		cfg.DatabaseURL = runDatabaseURL
	}
	if f.Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	return cfg.MergeWithDefaults(runDefaults())
}

func runAudit(cmd *cobra.Command, _ []string) error {
	var fileCfg config.Config
	if runConfigPath != "" {
		loaded, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return err
		}
		fileCfg = *loaded
	}

	cfg := resolveRunConfig(cmd, fileCfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.BaseURL == "" {
		return fmt.Errorf("base URL required: set --base-url or provide it in the config file")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	pageSpecs := pages.DefaultPages()
	if cfg.PagesFile != "" {
		loaded, err := pages.Load(cfg.PagesFile)
		if err != nil {
			return err
		}
		pageSpecs = loaded
	}

	printer := observability.NewPrinter(os.Stdout)
	var onProgress audit.ProgressCallback
	if cfg.Verbose {
		onProgress = func(result types.AuditResult) {
			printer.PrintAuditResult(&result)
		}
	}

	outcome, err := audit.Run(context.Background(), audit.Options{
		BaseURL: cfg.BaseURL,
		Pages:   pageSpecs,
		Viewport: types.Viewport{
			Name:   cfg.ViewportName,
			Width:  cfg.ViewportWidth,
			Height: cfg.ViewportHeight,
			Mobile: cfg.Mobile,
		},
		OutDir:            cfg.OutDir,
		Policy:            evaluate.DefaultPolicy(),
		SampleLimit:       cfg.SampleLimit,
		NavigationTimeout: time.Duration(cfg.NavigationTimeoutSec) * time.Second,
		Parallelism:       cfg.Parallelism,
		DatabaseURL:       cfg.DatabaseURL,
		Verbose:           cfg.Verbose,
		OnProgress:        onProgress,
	})
	if err != nil {
		return err
	}

	printer.PrintSummary(outcome.Report.Summary)
	fmt.Fprintf(os.Stdout, "Report: %s\n", outcome.JSONPath)
	fmt.Fprintf(os.Stdout, "Markdown: %s\n", outcome.MarkdownPath)

	// CI gate: a clean run exits zero.
	if critical := outcome.Report.Summary.CriticalIssues; critical > 0 {
		return fmt.Errorf("audit found %d critical issues", critical)
	}
	return nil
}
