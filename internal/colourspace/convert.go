// Package colourspace provides colour conversion and distance calculation
// for dye matching.
package colourspace

import (
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParseHex parses a hex colour, with or without a leading '#'.
func ParseHex(hex string) (colorful.Color, error) {
	s := strings.TrimSpace(hex)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid hex colour %q: %w", hex, err)
	}
	return c, nil
}

// parseOrZero parses a hex colour, returning black for malformed input.
// The dye catalog guarantees valid hex values; this keeps the distance
// functions total for callers that pass arbitrary strings.
func parseOrZero(hex string) colorful.Color {
	c, err := ParseHex(hex)
	if err != nil {
		return colorful.Color{}
	}
	return c
}

// HexToHSV converts a hex colour to HSV.
// Hue is in degrees [0, 360); saturation and value are percentages [0, 100].
func HexToHSV(hex string) (h, s, v float64, err error) {
	c, err := ParseHex(hex)
	if err != nil {
		return 0, 0, 0, err
	}
	h, cs, cv := c.Hsv()
	return h, cs * 100, cv * 100, nil
}

// HSVToHex converts an HSV triple to a lowercase hex colour string.
// Hue is wrapped into [0, 360); saturation and value are percentages
// clamped to [0, 100].
func HSVToHex(h, s, v float64) string {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = clampPercent(s)
	v = clampPercent(v)
	return colorful.Hsv(h, s/100, v/100).Clamped().Hex()
}

func clampPercent(p float64) float64 {
	return math.Max(0, math.Min(100, p))
}

// HueDeviance calculates the angular distance between two hues on the colour
// wheel. Returns a value between 0 and 180 degrees (shortest path around the
// wheel).
func HueDeviance(h1, h2 float64) float64 {
	diff := math.Abs(h1 - h2)
	if diff > 180 {
		diff = 360 - diff // Handle wraparound
	}
	return diff
}
