// Package probe drives a headless browser to extract observed style facts
// from rendered pages. It is the only layer that touches stringly-typed CSS
// values; everything downstream works on the normalized ObservedFact record.
package probe

import (
	"context"

	"github.com/chromedp/chromedp"
)

// NewAllocator creates the shared headless-browser allocator for a run.
// Individual pages get their own isolated browser contexts off this allocator
// so cookies and storage never leak between page audits. Cancelling the
// returned context closes every browser context spawned from it.
func NewAllocator(ctx context.Context) (context.Context, context.CancelFunc) {
	return chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
}
