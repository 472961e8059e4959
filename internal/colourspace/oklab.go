package colourspace

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Oklab conversion per Björn Ottosson's reference implementation
// (https://bottosson.github.io/posts/oklab/). go-colorful v1.2.0 does not
// ship Oklab, so the conversion lives here.

// oklab converts a colour to Oklab coordinates.
// L is perceived lightness [0, 1]; a and b are the green-red and blue-yellow
// axes, roughly [-0.4, 0.4].
func oklab(c colorful.Color) (l, a, b float64) {
	r, g, bl := c.LinearRgb()

	lm := 0.4122214708*r + 0.5363325363*g + 0.0514459929*bl
	mm := 0.2119034982*r + 0.6806995451*g + 0.1073969566*bl
	sm := 0.0883024619*r + 0.2817188376*g + 0.6299787005*bl

	lc := math.Cbrt(lm)
	mc := math.Cbrt(mm)
	sc := math.Cbrt(sm)

	l = 0.2104542553*lc + 0.7936177850*mc - 0.0040720468*sc
	a = 1.9779984951*lc - 2.4285922050*mc + 0.4505937099*sc
	b = 0.0259040371*lc + 0.7827717662*mc - 0.8086757660*sc
	return l, a, b
}

// oklabDistance is the Euclidean Delta-E in Oklab space.
func oklabDistance(c1, c2 colorful.Color) float64 {
	l1, a1, b1 := oklab(c1)
	l2, a2, b2 := oklab(c2)
	dl := l1 - l2
	da := a1 - a2
	db := b1 - b2
	return math.Sqrt(dl*dl + da*da + db*db)
}

// hyabDistance is the HyAB metric in Oklab space: city-block distance on the
// lightness axis plus Euclidean distance in the chroma plane. HyAB tracks
// perceived difference better than plain Delta-E for large colour
// differences.
func hyabDistance(c1, c2 colorful.Color) float64 {
	l1, a1, b1 := oklab(c1)
	l2, a2, b2 := oklab(c2)
	da := a1 - a2
	db := b1 - b2
	return math.Abs(l1-l2) + math.Sqrt(da*da+db*db)
}

// OkLCh weighting factors. Lightness differences dominate perceived
// mismatch between dye swatches, so it carries double weight.
const (
	oklchLightnessWeight = 2.0
	oklchChromaWeight    = 1.0
	oklchHueWeight       = 1.0
)

// oklchWeightedDistance is a weighted Euclidean distance in OkLCh space.
// The hue term is scaled by chroma so that near-grey colours do not produce
// spurious hue differences.
func oklchWeightedDistance(c1, c2 colorful.Color) float64 {
	l1, a1, b1 := oklab(c1)
	l2, a2, b2 := oklab(c2)

	ch1 := math.Sqrt(a1*a1 + b1*b1)
	ch2 := math.Sqrt(a2*a2 + b2*b2)
	h1 := math.Atan2(b1, a1)
	h2 := math.Atan2(b2, a2)

	dh := h1 - h2
	for dh > math.Pi {
		dh -= 2 * math.Pi
	}
	for dh < -math.Pi {
		dh += 2 * math.Pi
	}
	// Chroma-scaled hue difference, as in CIEDE2000's dH' term.
	dhTerm := 2 * math.Sqrt(ch1*ch2) * math.Sin(dh/2)

	dl := oklchLightnessWeight * (l1 - l2)
	dc := oklchChromaWeight * (ch1 - ch2)
	dhw := oklchHueWeight * dhTerm

	return math.Sqrt(dl*dl + dc*dc + dhw*dhw)
}
