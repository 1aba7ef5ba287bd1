// Package types provides type definitions for structured data used throughout the design-auditor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ElementRole classifies a probed DOM element by how the auditor treats it.
type ElementRole string

// Element roles assigned by the prober's sampling heuristics.
const (
	RoleButton  ElementRole = "button"
	RoleLink    ElementRole = "link"
	RoleHeading ElementRole = "heading"
	RoleText    ElementRole = "text"
	RoleImage   ElementRole = "image"
	RoleInput   ElementRole = "input"
)

// BoundingBox is the rendered geometry of an element in CSS pixels.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// BoxEdges holds a per-edge pixel value (padding or margin).
type BoxEdges struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Values returns the four edge values in top/right/bottom/left order.
func (b BoxEdges) Values() [4]float64 {
	return [4]float64{b.Top, b.Right, b.Bottom, b.Left}
}

// ObservedFact is one element's computed visual properties as extracted during a
// single page probe. Facts are created by the prober, consumed immediately by the
// evaluators, and discarded; they are never persisted.
type ObservedFact struct {
	ElementRef string      `json:"element_ref"` // CSS-path style descriptor, e.g. "button#submit"
	Role       ElementRole `json:"role"`

	// Colors as reported by the browser's computed-style API, e.g. "rgb(33, 33, 33)".
	// EffectiveBackground is the nearest opaque ancestor background (white fallback).
	ComputedColor       string `json:"computed_color"`
	ComputedBackground  string `json:"computed_background"`
	EffectiveBackground string `json:"effective_background"`

	FontSizePx float64 `json:"font_size_px"`
	FontWeight string  `json:"font_weight"` // numeric string or "normal"/"bold"

	Box BoundingBox `json:"box"`

	Padding        BoxEdges `json:"padding"`
	Margin         BoxEdges `json:"margin"`
	GapPx          float64  `json:"gap_px"`
	BorderRadiusPx float64  `json:"border_radius_px"`

	AriaAttributes map[string]string `json:"aria_attributes,omitempty"`
	TextContent    string            `json:"text_content,omitempty"`
}

// PageSpec describes one route of the application under audit.
type PageSpec struct {
	Name        string `json:"name" validate:"required"`
	Path        string `json:"path" validate:"required,startswith=/"`
	Description string `json:"description,omitempty"`
}

// Viewport is the emulated browser viewport for a probe.
type Viewport struct {
	Name   string `json:"name"`
	Width  int64  `json:"width"`
	Height int64  `json:"height"`
	Mobile bool   `json:"mobile"`
}
