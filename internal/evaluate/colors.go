// Package evaluate implements the design-compliance rule evaluators. Each
// evaluator is a pure function over a page's observed facts and the token
// registry; evaluators share no mutable state and may run concurrently.
package evaluate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// RGBA is a parsed CSS color. Alpha is in [0,1].
type RGBA struct {
	R, G, B uint8
	A       float64
}

// Hex returns the normalized "#rrggbb" form, ignoring alpha.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Opaque reports whether the color fully covers what is behind it.
func (c RGBA) Opaque() bool {
	return c.A >= 1.0
}

var (
	rgbPattern  = regexp.MustCompile(`^rgb\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)$`)
	rgbaPattern = regexp.MustCompile(`^rgba\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*,\s*([0-9.]+)\s*\)$`)
	hex6Pattern = regexp.MustCompile(`^#([0-9a-fA-F]{6})$`)
	hex3Pattern = regexp.MustCompile(`^#([0-9a-fA-F]{3})$`)
)

// ParseCSSColor parses the color strings the browser's computed-style API
// emits: rgb(...), rgba(...), #rrggbb, #rgb, and the transparent keyword.
// This is the only place stringly-typed style values enter the engine; the
// evaluators work on the normalized form.
func ParseCSSColor(s string) (RGBA, bool) {
	s = strings.TrimSpace(strings.ToLower(s))

	switch s {
	case "transparent":
		return RGBA{A: 0}, true
	case "white":
		return RGBA{R: 255, G: 255, B: 255, A: 1}, true
	case "black":
		return RGBA{A: 1}, true
	}

	if m := rgbPattern.FindStringSubmatch(s); m != nil {
		r, g, b, ok := parseChannels(m[1], m[2], m[3])
		if !ok {
			return RGBA{}, false
		}
		return RGBA{R: r, G: g, B: b, A: 1}, true
	}

	if m := rgbaPattern.FindStringSubmatch(s); m != nil {
		r, g, b, ok := parseChannels(m[1], m[2], m[3])
		if !ok {
			return RGBA{}, false
		}
		a, err := strconv.ParseFloat(m[4], 64)
		if err != nil || a < 0 || a > 1 {
			return RGBA{}, false
		}
		return RGBA{R: r, G: g, B: b, A: a}, true
	}

	if m := hex6Pattern.FindStringSubmatch(s); m != nil {
		v, _ := strconv.ParseUint(m[1], 16, 32)
		return RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 1}, true
	}

	if m := hex3Pattern.FindStringSubmatch(s); m != nil {
		v, _ := strconv.ParseUint(m[1], 16, 16)
		r := uint8(v >> 8)
		g := uint8(v >> 4 & 0xf)
		b := uint8(v & 0xf)
		return RGBA{R: r*16 + r, G: g*16 + g, B: b*16 + b, A: 1}, true
	}

	return RGBA{}, false
}

func parseChannels(rs, gs, bs string) (uint8, uint8, uint8, bool) {
	r, err1 := strconv.Atoi(rs)
	g, err2 := strconv.Atoi(gs)
	b, err3 := strconv.Atoi(bs)
	if err1 != nil || err2 != nil || err3 != nil || r > 255 || g > 255 || b > 255 {
		return 0, 0, 0, false
	}
	return uint8(r), uint8(g), uint8(b), true
}
