package evaluate

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/design-auditor/internal/tokens"
	"github.com/jonathan/design-auditor/internal/types"
)

// PageEvaluation bundles every evaluator's result for one page.
type PageEvaluation struct {
	Color       Result
	Typography  Result
	Spacing     Result
	TouchTarget Result
	Contrast    Result
	Semantic    Result
}

// AllViolations returns the violations from every evaluator in a fixed
// category order so repeated runs over an unchanged page produce identical
// output.
func (pe *PageEvaluation) AllViolations() []types.Violation {
	var out []types.Violation
	for _, r := range []Result{pe.Color, pe.Typography, pe.Spacing, pe.TouchTarget, pe.Contrast, pe.Semantic} {
		out = append(out, r.Violations...)
	}
	return out
}

// All runs every evaluator over one page's facts and captured HTML. The
// evaluators are pure and share no state, so they run concurrently; results
// land in per-evaluator fields, not a shared accumulator.
func All(ctx context.Context, facts []types.ObservedFact, html string, reg *tokens.Registry, policy Policy, mobileViewport bool) (*PageEvaluation, error) {
	pe := &PageEvaluation{}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		pe.Color = Color(facts, reg, policy)
		return nil
	})
	g.Go(func() error {
		pe.Typography = Typography(facts, reg, policy)
		return nil
	})
	g.Go(func() error {
		pe.Spacing = Spacing(facts, reg, policy)
		return nil
	})
	g.Go(func() error {
		pe.TouchTarget = TouchTarget(facts, reg, policy, mobileViewport)
		return nil
	})
	g.Go(func() error {
		pe.Contrast = Contrast(facts, reg, policy)
		return nil
	})
	g.Go(func() error {
		semantic, err := Semantic(html)
		if err != nil {
			return err
		}
		pe.Semantic = semantic
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pe, nil
}
