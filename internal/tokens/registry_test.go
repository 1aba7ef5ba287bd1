package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Succeeds(t *testing.T) {
	reg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, reg)
}

func TestLoad_FlattensPalette(t *testing.T) {
	reg, err := Load()
	require.NoError(t, err)

	name, ok := reg.ColorName("#4a90d9")
	assert.True(t, ok)
	assert.Equal(t, "primary", name)

	_, ok = reg.ColorName("#123456")
	assert.False(t, ok)
}

func TestRegistry_TypographyScale(t *testing.T) {
	reg := MustLoad()

	sizes := reg.FontSizes()
	assert.Contains(t, sizes, 16.0)
	assert.Contains(t, sizes, 24.0)

	weights := reg.FontWeights()
	assert.True(t, weights[400])
	assert.True(t, weights[700])
	assert.False(t, weights[300])
}

func TestRegistry_SpacingAndTouchTarget(t *testing.T) {
	reg := MustLoad()

	assert.Equal(t, 4.0, reg.SpacingRule().BaseUnitPx)
	assert.Equal(t, 48.0, reg.TouchTargetMinimum().MinimumPx)
	assert.Equal(t, 44.0, reg.TouchTargetMinimum().MobileMinimumPx)
}

func TestValidate_RejectsMalformedHex(t *testing.T) {
	r := &Registry{
		colors: map[ColorRole][]ColorToken{
			RolePrimary: {{Name: "primary", Hex: "#XYZ123"}},
			RoleNeutral: {{Name: "neutral-0", Hex: "#ffffff"}},
		},
		typography:  staticTypography,
		spacing:     staticSpacing,
		radii:       staticRadii,
		touchTarget: staticTouchTarget,
	}
	err := r.validate()
	require.Error(t, err)
	var invErr *InvariantError
	assert.ErrorAs(t, err, &invErr)
	assert.Contains(t, err.Error(), "malformed hex")
}

func TestValidate_RejectsNonMonotonicNeutralScale(t *testing.T) {
	r := &Registry{
		colors: map[ColorRole][]ColorToken{
			RoleNeutral: {
				{Name: "neutral-0", Hex: "#e0e0e0"},
				{Name: "neutral-100", Hex: "#ffffff"}, // lighter than its predecessor
			},
		},
		typography:  staticTypography,
		spacing:     staticSpacing,
		radii:       staticRadii,
		touchTarget: staticTouchTarget,
	}
	err := r.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not monotonic")
}

func TestValidate_RejectsDuplicateHexValues(t *testing.T) {
	r := &Registry{
		colors: map[ColorRole][]ColorToken{
			RolePrimary: {
				{Name: "primary", Hex: "#4a90d9"},
				{Name: "primary-alias", Hex: "#4a90d9"},
			},
			RoleNeutral: {{Name: "neutral-0", Hex: "#ffffff"}},
		},
		typography:  staticTypography,
		spacing:     staticSpacing,
		radii:       staticRadii,
		touchTarget: staticTouchTarget,
	}
	err := r.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "share hex value")
}

func TestValidate_RejectsNonPositiveTypographySize(t *testing.T) {
	r := &Registry{
		colors:      staticColors,
		typography:  []TypographyToken{{Role: "body", SizePx: 0, Weight: 400}},
		spacing:     staticSpacing,
		radii:       staticRadii,
		touchTarget: staticTouchTarget,
	}
	err := r.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-positive size")
}

func TestValidate_RejectsInvalidSpacingBase(t *testing.T) {
	r := &Registry{
		colors:      staticColors,
		typography:  staticTypography,
		spacing:     SpacingScale{BaseUnitPx: 0, AllowedMultiples: []int{1}},
		radii:       staticRadii,
		touchTarget: staticTouchTarget,
	}
	err := r.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base unit")
}

func TestValidate_RejectsMobileMinimumAboveDesktop(t *testing.T) {
	r := &Registry{
		colors:      staticColors,
		typography:  staticTypography,
		spacing:     staticSpacing,
		radii:       staticRadii,
		touchTarget: TouchTargetRule{MinimumPx: 44, MobileMinimumPx: 48},
	}
	err := r.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mobile touch target")
}

func TestHexLuminance_Extremes(t *testing.T) {
	assert.InDelta(t, 1.0, hexLuminance("#ffffff"), 0.001)
	assert.InDelta(t, 0.0, hexLuminance("#000000"), 0.001)
}
