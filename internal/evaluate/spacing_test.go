package evaluate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/design-auditor/internal/tokens"
	"github.com/jonathan/design-auditor/internal/types"
)

func spacingFact(padding types.BoxEdges) types.ObservedFact {
	return types.ObservedFact{
		ElementRef: "div.card",
		Role:       types.RoleText,
		Padding:    padding,
	}
}

func TestSpacing_GridMultiplePasses(t *testing.T) {
	reg := tokens.MustLoad()

	res := Spacing([]types.ObservedFact{
		spacingFact(types.BoxEdges{Top: 16, Right: 16, Bottom: 16, Left: 16}),
	}, reg, DefaultPolicy())
	assert.Equal(t, 1, res.Observed)
	assert.Empty(t, res.Violations)
}

func TestSpacing_OffGridFails(t *testing.T) {
	reg := tokens.MustLoad()

	res := Spacing([]types.ObservedFact{
		spacingFact(types.BoxEdges{Top: 15}),
	}, reg, DefaultPolicy())
	require.Len(t, res.Violations, 1)
	assert.Equal(t, types.CategorySpacing, res.Violations[0].RuleCategory)
	assert.Contains(t, res.Violations[0].Message, "padding-top")
	assert.Contains(t, res.Violations[0].Message, "15.0px")
}

func TestSpacing_ZeroIsCompliant(t *testing.T) {
	reg := tokens.MustLoad()

	res := Spacing([]types.ObservedFact{spacingFact(types.BoxEdges{})}, reg, DefaultPolicy())
	assert.Empty(t, res.Violations)
}

func TestSpacing_NegativeMarginGradedByMagnitude(t *testing.T) {
	reg := tokens.MustLoad()

	res := Spacing([]types.ObservedFact{{
		ElementRef: "div.overlap",
		Role:       types.RoleText,
		Margin:     types.BoxEdges{Top: -8},
	}}, reg, DefaultPolicy())
	assert.Empty(t, res.Violations)

	res = Spacing([]types.ObservedFact{{
		ElementRef: "div.overlap",
		Role:       types.RoleText,
		Margin:     types.BoxEdges{Top: -7},
	}}, reg, DefaultPolicy())
	assert.Len(t, res.Violations, 1)
}

func TestSpacing_GapOnGrid(t *testing.T) {
	reg := tokens.MustLoad()

	res := Spacing([]types.ObservedFact{{
		ElementRef: "div.row",
		Role:       types.RoleText,
		GapPx:      12,
	}}, reg, DefaultPolicy())
	assert.Empty(t, res.Violations)

	res = Spacing([]types.ObservedFact{{
		ElementRef: "div.row",
		Role:       types.RoleText,
		GapPx:      13,
	}}, reg, DefaultPolicy())
	assert.Len(t, res.Violations, 1)
}

func TestSpacing_RadiusScale(t *testing.T) {
	reg := tokens.MustLoad()

	pass := func(px float64) types.ObservedFact {
		return types.ObservedFact{ElementRef: "div.chip", Role: types.RoleText, BorderRadiusPx: px}
	}

	res := Spacing([]types.ObservedFact{pass(8)}, reg, DefaultPolicy())
	assert.Empty(t, res.Violations)

	res = Spacing([]types.ObservedFact{pass(7)}, reg, DefaultPolicy())
	require.Len(t, res.Violations, 1)
	assert.Contains(t, res.Violations[0].Message, "radius")
}

func TestSpacing_OversizedRadiusTreatedAsPill(t *testing.T) {
	reg := tokens.MustLoad()

	// The browser clamps the pill token to half the box height.
	res := Spacing([]types.ObservedFact{{
		ElementRef:     "button.pill",
		Role:           types.RoleButton,
		BorderRadiusPx: 24,
	}}, reg, DefaultPolicy())
	assert.Empty(t, res.Violations)
}
