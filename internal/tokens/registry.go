// Package tokens provides the canonical design-token registry the audit engine
// evaluates rendered pages against.
package tokens

// ColorToken is a named canonical color.
type ColorToken struct {
	Name string `json:"name"`
	Hex  string `json:"hex"` // normalized "#rrggbb", lowercase
}

// ColorRole groups color tokens by semantic purpose.
type ColorRole string

// Semantic color roles.
const (
	RolePrimary  ColorRole = "primary"
	RoleSuccess  ColorRole = "success"
	RoleWarning  ColorRole = "warning"
	RoleError    ColorRole = "error"
	RoleNeutral  ColorRole = "neutral"
)

// TypographyToken is one step of the type scale.
type TypographyToken struct {
	Role   string  `json:"role"`
	SizePx float64 `json:"size_px"`
	Weight int     `json:"weight"`
}

// SpacingScale defines the spacing grid: every padding/margin/gap value must be
// an exact multiple of BaseUnitPx. Zero is always compliant.
type SpacingScale struct {
	BaseUnitPx       float64 `json:"base_unit_px"`
	AllowedMultiples []int   `json:"allowed_multiples"`
}

// BorderRadiusToken is one step of the discrete corner-radius scale.
type BorderRadiusToken struct {
	Name string  `json:"name"`
	Px   float64 `json:"px"`
}

// TouchTargetRule holds the interactive-element size minimums.
type TouchTargetRule struct {
	MinimumPx       float64 `json:"minimum_px"`        // WCAG-AAA aligned primary threshold
	MobileMinimumPx float64 `json:"mobile_minimum_px"` // iOS HIG minimum, used on mobile viewports
}

// Registry is the immutable canonical token set. Construct it with Load, which
// validates the static table and refuses to return a corrupt rule set.
type Registry struct {
	colors      map[ColorRole][]ColorToken
	typography  []TypographyToken
	spacing     SpacingScale
	radii       []BorderRadiusToken
	touchTarget TouchTargetRule

	flatColors map[string]string // hex -> token name, for membership checks
}

// staticColors is the canonical palette. The neutral scale must stay ordered
// light to dark; Load enforces this.
var staticColors = map[ColorRole][]ColorToken{
	RolePrimary: {
		{Name: "primary", Hex: "#4a90d9"},
		{Name: "primary-dark", Hex: "#2e6db4"},
		{Name: "primary-light", Hex: "#7fb3e8"},
	},
	RoleSuccess: {
		{Name: "success", Hex: "#34a853"},
		{Name: "success-light", Hex: "#81c995"},
	},
	RoleWarning: {
		{Name: "warning", Hex: "#f9a825"},
		{Name: "warning-light", Hex: "#fdd663"},
	},
	RoleError: {
		{Name: "error", Hex: "#d93025"},
		{Name: "error-light", Hex: "#f28b82"},
	},
	RoleNeutral: {
		{Name: "neutral-0", Hex: "#ffffff"},
		{Name: "neutral-100", Hex: "#f5f5f5"},
		{Name: "neutral-200", Hex: "#e0e0e0"},
		{Name: "neutral-400", Hex: "#9e9e9e"},
		{Name: "neutral-600", Hex: "#616161"},
		{Name: "neutral-900", Hex: "#212121"},
	},
}

var staticTypography = []TypographyToken{
	{Role: "display", SizePx: 32, Weight: 700},
	{Role: "heading", SizePx: 24, Weight: 600},
	{Role: "subheading", SizePx: 20, Weight: 600},
	{Role: "body", SizePx: 16, Weight: 400},
	{Role: "caption", SizePx: 14, Weight: 400},
	{Role: "label", SizePx: 12, Weight: 500},
}

var staticSpacing = SpacingScale{
	BaseUnitPx:       4,
	AllowedMultiples: []int{1, 2, 3, 4, 5, 6, 8, 10, 12, 16},
}

var staticRadii = []BorderRadiusToken{
	{Name: "none", Px: 0},
	{Name: "small", Px: 4},
	{Name: "medium", Px: 8},
	{Name: "large", Px: 16},
	{Name: "pill", Px: 9999},
}

var staticTouchTarget = TouchTargetRule{
	MinimumPx:       48,
	MobileMinimumPx: 44,
}

// Load builds and validates the registry. It returns an InvariantError if the
// static table violates its own invariants; callers must treat that as fatal.
func Load() (*Registry, error) {
	r := &Registry{
		colors:      staticColors,
		typography:  staticTypography,
		spacing:     staticSpacing,
		radii:       staticRadii,
		touchTarget: staticTouchTarget,
		flatColors:  make(map[string]string),
	}

	if err := r.validate(); err != nil {
		return nil, err
	}

	for _, group := range r.colors {
		for _, tok := range group {
			r.flatColors[tok.Hex] = tok.Name
		}
	}

	return r, nil
}

// MustLoad is Load for program startup paths where a corrupt token table must
// abort the process.
func MustLoad() *Registry {
	r, err := Load()
	if err != nil {
		panic(err)
	}
	return r
}

// ColorTokens returns the palette grouped by semantic role.
func (r *Registry) ColorTokens() map[ColorRole][]ColorToken {
	return r.colors
}

// ColorName returns the token name for a normalized "#rrggbb" value and whether
// the color is part of the canonical palette.
func (r *Registry) ColorName(hex string) (string, bool) {
	name, ok := r.flatColors[hex]
	return name, ok
}

// RoleColors returns the hex values of a single semantic role.
func (r *Registry) RoleColors(role ColorRole) []string {
	out := make([]string, 0, len(r.colors[role]))
	for _, tok := range r.colors[role] {
		out = append(out, tok.Hex)
	}
	return out
}

// TypographyScale returns the full type scale.
func (r *Registry) TypographyScale() []TypographyToken {
	return r.typography
}

// FontSizes returns the allowed font sizes in scale order.
func (r *Registry) FontSizes() []float64 {
	sizes := make([]float64, 0, len(r.typography))
	for _, t := range r.typography {
		sizes = append(sizes, t.SizePx)
	}
	return sizes
}

// FontWeights returns the set of named weights in the scale.
func (r *Registry) FontWeights() map[int]bool {
	weights := make(map[int]bool, len(r.typography))
	for _, t := range r.typography {
		weights[t.Weight] = true
	}
	return weights
}

// SpacingRule returns the spacing grid definition.
func (r *Registry) SpacingRule() SpacingScale {
	return r.spacing
}

// RadiusScale returns the discrete border-radius scale.
func (r *Registry) RadiusScale() []BorderRadiusToken {
	return r.radii
}

// TouchTargetMinimum returns the interactive-element size rule.
func (r *Registry) TouchTargetMinimum() TouchTargetRule {
	return r.touchTarget
}
