package evaluate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/design-auditor/internal/types"
)

func page(body string) string {
	return fmt.Sprintf("<html><head><title>t</title></head><body>%s</body></html>", body)
}

func semanticOnly(t *testing.T, html string) []types.Violation {
	t.Helper()
	res, err := Semantic(html)
	require.NoError(t, err)
	return res.Violations
}

func TestSemantic_FirstHeadingMustBeH1(t *testing.T) {
	violations := semanticOnly(t, page("<h2>Today</h2><h3>Meals</h3>"))
	require.Len(t, violations, 1)
	assert.Equal(t, "h2", violations[0].Observed)
	assert.Equal(t, "h1", violations[0].Expected)
	assert.Contains(t, violations[0].Message, "first heading")
}

func TestSemantic_DescendingHierarchyPasses(t *testing.T) {
	violations := semanticOnly(t, page("<h1>Dashboard</h1><h2>Today</h2><h3>Meals</h3>"))
	assert.Empty(t, violations)
}

func TestSemantic_LevelSkipFlagged(t *testing.T) {
	violations := semanticOnly(t, page("<h1>Dashboard</h1><h3>Meals</h3>"))
	require.Len(t, violations, 1)
	assert.Equal(t, "h3 after h1", violations[0].Observed)
	assert.Contains(t, violations[0].Message, "skips")
}

func TestSemantic_ReturningToHigherLevelAllowed(t *testing.T) {
	violations := semanticOnly(t, page("<h1>a</h1><h2>b</h2><h3>c</h3><h2>d</h2>"))
	assert.Empty(t, violations)
}

func TestSemantic_UnknownAriaRole(t *testing.T) {
	violations := semanticOnly(t, page(`<div role="fancybox">x</div>`))
	require.Len(t, violations, 1)
	assert.Equal(t, "fancybox", violations[0].Observed)
	assert.Equal(t, types.CategorySemantic, violations[0].RuleCategory)

	assert.Empty(t, semanticOnly(t, page(`<div role="navigation">x</div>`)))
	assert.Empty(t, semanticOnly(t, page(`<div role="ALERT">x</div>`)))
}

func TestSemantic_AriaLiveValues(t *testing.T) {
	assert.Empty(t, semanticOnly(t, page(`<div aria-live="polite">x</div>`)))
	assert.Empty(t, semanticOnly(t, page(`<div aria-live="assertive">x</div>`)))

	violations := semanticOnly(t, page(`<div aria-live="loud">x</div>`))
	require.Len(t, violations, 1)
	assert.Equal(t, "loud", violations[0].Observed)
}

func TestSemantic_ImageAltText(t *testing.T) {
	assert.Empty(t, semanticOnly(t, page(`<img src="a.png" alt="family photo">`)))
	assert.Empty(t, semanticOnly(t, page(`<img src="a.png" alt="">`)))
	assert.Empty(t, semanticOnly(t, page(`<img src="a.png" role="presentation">`)))
	assert.Empty(t, semanticOnly(t, page(`<img src="a.png" aria-hidden="true">`)))

	violations := semanticOnly(t, page(`<img src="a.png" class="hero">`))
	require.Len(t, violations, 1)
	assert.Equal(t, "img.hero", violations[0].Element)
	assert.Contains(t, violations[0].Message, "alt")
}

func TestSemantic_InputLabelAssociation(t *testing.T) {
	assert.Empty(t, semanticOnly(t,
		page(`<label for="med">Medication</label><input id="med" type="text">`)))
	assert.Empty(t, semanticOnly(t, page(`<input type="text" aria-label="Medication">`)))
	assert.Empty(t, semanticOnly(t,
		page(`<span id="lbl">Dose</span><input type="text" aria-labelledby="lbl">`)))
	assert.Empty(t, semanticOnly(t, page(`<label>Dose <input type="text"></label>`)))

	violations := semanticOnly(t, page(`<input id="orphan" type="text">`))
	require.Len(t, violations, 1)
	assert.Equal(t, "input#orphan", violations[0].Element)
}

func TestSemantic_HiddenAndButtonInputsExempt(t *testing.T) {
	assert.Empty(t, semanticOnly(t, page(`<input type="hidden" name="csrf">`)))
	assert.Empty(t, semanticOnly(t, page(`<input type="submit" value="Save">`)))
	assert.Empty(t, semanticOnly(t, page(`<input type="button" value="Cancel">`)))
}

func TestSemantic_ObservedCountsStructuralElements(t *testing.T) {
	res, err := Semantic(page(`<h1>a</h1><img src="x" alt=""><input type="text" aria-label="n">`))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Observed)
}
