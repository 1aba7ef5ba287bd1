package probe

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/jonathan/design-auditor/internal/types"
)

// Defaults for probe timing and sampling. The settle delay is a deliberate
// fixed buffer after the document is ready: the audited app animates on load,
// and without it the probe captures pre-animation styles. Bounded, not
// adaptive; revisit if flakiness is observed.
const (
	DefaultNavigationTimeout = 20 * time.Second
	DefaultSettleDelay       = 1 * time.Second
	DefaultSampleLimit       = 40
)

// Prober extracts observed style facts from rendered pages.
type Prober struct {
	NavigationTimeout time.Duration
	SettleDelay       time.Duration
	SampleLimit       int // per-category element cap, bounds probe cost on large pages
	Verbose           bool
}

// New returns a Prober with the default timing and sampling settings.
func New() *Prober {
	return &Prober{
		NavigationTimeout: DefaultNavigationTimeout,
		SettleDelay:       DefaultSettleDelay,
		SampleLimit:       DefaultSampleLimit,
	}
}

// Probe navigates to a URL in a fresh, isolated browser context off allocCtx,
// waits until the page is stable, and returns the sampled observed facts plus
// the rendered HTML. When screenshotPath is non-empty a full-page screenshot
// is written there. Any failure is returned as a *probe.Error for the runner
// to convert into a failed page result.
func (p *Prober) Probe(allocCtx context.Context, pageURL string, vp types.Viewport, screenshotPath string) ([]types.ObservedFact, string, error) {
	if p.Verbose {
		log.Printf("[PROBE] %s (%s %dx%d)", pageURL, vp.Name, vp.Width, vp.Height)
	}

	// Fresh context per page: cookies and storage are not shared between
	// page audits.
	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, p.NavigationTimeout)
	defer cancel()

	var (
		facts      []types.ObservedFact
		html       string
		screenshot []byte
	)

	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(vp.Width, vp.Height),
		chromedp.Navigate(pageURL),
	}
	tasks = append(tasks, waitUntilStable(p.SettleDelay)...)
	tasks = append(tasks,
		chromedp.Evaluate(p.script(), &facts),
		chromedp.OuterHTML("html", &html),
	)
	if screenshotPath != "" {
		tasks = append(tasks, chromedp.FullScreenshot(&screenshot, 90))
	}

	if err := chromedp.Run(browserCtx, tasks); err != nil {
		return nil, "", &Error{URL: pageURL, Message: "navigation or extraction failed", Cause: err}
	}

	if screenshotPath != "" {
		if err := os.WriteFile(screenshotPath, screenshot, 0644); err != nil {
			return nil, "", &Error{URL: pageURL, Message: "failed to write screenshot", Cause: err}
		}
	}

	if p.Verbose {
		log.Printf("[PROBE] extracted %d facts, %d bytes of HTML", len(facts), len(html))
	}

	return facts, html, nil
}

// script renders the extraction script with this prober's sample cap.
func (p *Prober) script() string {
	return fmt.Sprintf(extractionScript, p.SampleLimit)
}

// waitUntilStable is the documented settle heuristic: the document body is
// ready, then a fixed bounded delay for animations and transitions to finish
// before styles are sampled.
func waitUntilStable(settle time.Duration) chromedp.Tasks {
	return chromedp.Tasks{
		chromedp.WaitReady("body"),
		chromedp.Sleep(settle),
	}
}

// ScreenshotName builds the deterministic screenshot file name
// {category}-{screenName}-{viewport}.png used by visual-regression tooling.
func ScreenshotName(category, screenName, viewportName string) string {
	return fmt.Sprintf("%s-%s-%s.png", category, screenName, viewportName)
}
