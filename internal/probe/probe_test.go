package probe

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	p := New()
	assert.Equal(t, 20*time.Second, p.NavigationTimeout)
	assert.Equal(t, 1*time.Second, p.SettleDelay)
	assert.Equal(t, 40, p.SampleLimit)
	assert.False(t, p.Verbose)
}

func TestScreenshotName(t *testing.T) {
	assert.Equal(t, "audit-home-desktop.png", ScreenshotName("audit", "home", "desktop"))
	assert.Equal(t, "audit-log-mobile.png", ScreenshotName("audit", "log", "mobile"))
}

func TestScript_EmbedsConfiguredSampleLimit(t *testing.T) {
	p := New()
	p.SampleLimit = 7

	script := p.script()
	assert.Contains(t, script, "const LIMIT = 7;")
	assert.NotContains(t, script, "%d")
}

func TestExtractionScript_FormatsCleanly(t *testing.T) {
	script := fmt.Sprintf(extractionScript, 40)

	// The sample limit is the script's only format verb.
	assert.NotContains(t, script, "%!")
	assert.Contains(t, script, "40")

	// The emitted object keys must match the fact model's JSON tags exactly,
	// since chromedp.Evaluate unmarshals the script result directly.
	for _, key := range []string{
		"element_ref", "role", "computed_color", "computed_background",
		"effective_background", "font_size_px", "font_weight", "box",
		"padding", "margin", "gap_px", "border_radius_px", "aria_attributes",
		"text_content",
	} {
		assert.Contains(t, script, key)
	}
}

func TestExtractionScript_SamplesInStableCategoryOrder(t *testing.T) {
	script := fmt.Sprintf(extractionScript, 40)

	order := []string{"'button'", "'link'", "'heading'", "'input'", "'image'", "'text'"}
	last := -1
	for _, cat := range order {
		idx := strings.Index(script, cat)
		require.GreaterOrEqual(t, idx, 0, "category %s missing from script", cat)
		assert.Greater(t, idx, last, "category %s out of order", cat)
		last = idx
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("net::ERR_CONNECTION_REFUSED")
	err := &Error{URL: "http://localhost:3000/", Message: "navigation or extraction failed", Cause: cause}
	assert.Contains(t, err.Error(), "http://localhost:3000/")
	assert.ErrorIs(t, err, cause)
}
