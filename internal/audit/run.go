// Package audit provides the high-level orchestration for a compliance audit
// run: probe every page, evaluate the facts, and assemble the final report.
package audit

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/design-auditor/internal/db"
	"github.com/jonathan/design-auditor/internal/evaluate"
	"github.com/jonathan/design-auditor/internal/probe"
	"github.com/jonathan/design-auditor/internal/report"
	"github.com/jonathan/design-auditor/internal/tax"
	"github.com/jonathan/design-auditor/internal/tokens"
	"github.com/jonathan/design-auditor/internal/types"
)

// Prober abstracts the browser-driving layer so the runner can be exercised
// without a real browser.
type Prober interface {
	Probe(allocCtx context.Context, pageURL string, vp types.Viewport, screenshotPath string) ([]types.ObservedFact, string, error)
}

// ProgressCallback is called as pages finish auditing.
type ProgressCallback func(result types.AuditResult)

// Options holds configuration for one audit run.
type Options struct {
	BaseURL     string
	Pages       []types.PageSpec
	Viewport    types.Viewport
	OutDir      string
	Policy      evaluate.Policy
	Parallelism int // concurrent page audits; each gets an isolated browser context
	DatabaseURL string
	Verbose     bool
	OnProgress  ProgressCallback

	// Probe tuning; zero values keep the prober's defaults.
	SampleLimit       int
	NavigationTimeout time.Duration

	// Prober overrides the default chromedp prober, used by tests.
	Prober Prober
}

// Outcome is what a completed run produced.
type Outcome struct {
	Report       *types.AuditReport
	JSONPath     string
	MarkdownPath string
}

// Run executes a full audit. Both static rule sets validate before any browser
// starts; a corrupt table aborts the run. Pages are probed in parallel in
// isolated browser contexts; a single page's probe failure becomes a failed
// page result, never a crash of the run. The report is written exactly once at
// the end, so an interrupted run leaves no partial artifact.
func Run(ctx context.Context, opts Options) (*Outcome, error) {
	registry, err := tokens.Load()
	if err != nil {
		return nil, err
	}
	if err := tax.ValidateTable(); err != nil {
		return nil, err
	}

	if len(opts.Pages) == 0 {
		return nil, fmt.Errorf("no pages to audit")
	}
	if opts.Parallelism <= 0 {
		opts.Parallelism = 2
	}

	prober := opts.Prober
	var allocCtx context.Context
	if prober == nil {
		prober = newDefaultProber(opts)

		var cancel context.CancelFunc
		allocCtx, cancel = probe.NewAllocator(ctx)
		// Cancelling the allocator closes every open browser context, so an
		// aborted run does not leak OS processes.
		defer cancel()
	} else {
		allocCtx = ctx
	}

	runID := uuid.New().String()
	results := make([]types.AuditResult, len(opts.Pages))
	screenshots := make([]string, len(opts.Pages))
	var mu sync.Mutex

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallelism)

	for i, page := range opts.Pages {
		i, page := i, page
		g.Go(func() error {
			pageURL := opts.BaseURL + page.Path
			shotName := probe.ScreenshotName("audit", page.Name, opts.Viewport.Name)
			shotPath := filepath.Join(opts.OutDir, shotName)

			result := auditPage(gCtx, prober, allocCtx, page, pageURL, opts, registry, shotPath)
			if result.Probed {
				result.Screenshots = []string{shotName}
			}

			mu.Lock()
			results[i] = result
			if result.Probed {
				screenshots[i] = shotName
			}
			mu.Unlock()

			if opts.OnProgress != nil {
				opts.OnProgress(result)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var referenceScreens []string
	for _, s := range screenshots {
		if s != "" {
			referenceScreens = append(referenceScreens, s)
		}
	}

	rep := report.Build(runID, opts.BaseURL, opts.Viewport, results, referenceScreens, time.Now())

	jsonPath, mdPath, err := report.Write(rep, registry, opts.OutDir)
	if err != nil {
		return nil, err
	}

	if opts.DatabaseURL != "" {
		if err := persist(ctx, opts.DatabaseURL, rep); err != nil {
			// History storage is best effort; the on-disk artifact is the
			// authoritative output.
			log.Printf("[AUDIT] failed to persist run history: %v", err)
		}
	}

	return &Outcome{Report: rep, JSONPath: jsonPath, MarkdownPath: mdPath}, nil
}

// newDefaultProber builds the chromedp prober with the run's tuning applied.
func newDefaultProber(opts Options) *probe.Prober {
	p := probe.New()
	p.Verbose = opts.Verbose
	if opts.SampleLimit > 0 {
		p.SampleLimit = opts.SampleLimit
	}
	if opts.NavigationTimeout > 0 {
		p.NavigationTimeout = opts.NavigationTimeout
	}
	return p
}

// auditPage probes and evaluates one page, degrading any failure into a
// synthesized failed result.
func auditPage(ctx context.Context, prober Prober, allocCtx context.Context, page types.PageSpec, pageURL string, opts Options, registry *tokens.Registry, shotPath string) types.AuditResult {
	facts, html, err := prober.Probe(allocCtx, pageURL, opts.Viewport, shotPath)
	if err != nil {
		return report.FailedResult(page.Name, pageURL, err)
	}

	eval, err := evaluate.All(ctx, facts, html, registry, opts.Policy, opts.Viewport.Mobile)
	if err != nil {
		return report.FailedResult(page.Name, pageURL, err)
	}

	return report.BuildResult(page.Name, pageURL, eval, opts.Policy, nil)
}

// persist saves the run and its pages to the optional history database.
func persist(ctx context.Context, databaseURL string, rep *types.AuditReport) error {
	store, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	runID, err := store.CreateRun(ctx, rep.BaseURL, rep.Viewport.Name)
	if err != nil {
		return err
	}
	for _, page := range rep.AuditedScreens {
		if err := store.SavePageResult(ctx, runID, page); err != nil {
			return err
		}
	}
	if err := store.SaveReport(ctx, runID, rep); err != nil {
		return err
	}

	status := "passed"
	if rep.Summary.CriticalIssues > 0 {
		status = "failed"
	}
	return store.CompleteRun(ctx, runID, status, rep.Summary)
}
