package colourspace

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Method identifies a colour-distance algorithm for dye matching.
type Method string

const (
	// MethodRGB is a weighted Euclidean distance in RGB space.
	MethodRGB Method = "rgb"
	// MethodCIE76 is Delta-E CIE76 in Lab space.
	MethodCIE76 Method = "cie76"
	// MethodCIEDE2000 is Delta-E CIEDE2000 in Lab space.
	MethodCIEDE2000 Method = "ciede2000"
	// MethodOklab is Delta-E in Oklab space.
	MethodOklab Method = "oklab"
	// MethodHyAB is the HyAB metric in Oklab space (city-block lightness,
	// Euclidean chroma plane).
	MethodHyAB Method = "hyab"
	// MethodOklchWeighted is a weighted distance in OkLCh space.
	MethodOklchWeighted Method = "oklch-weighted"
)

// Methods returns all recognised distance methods in display order.
func Methods() []Method {
	return []Method{
		MethodRGB,
		MethodCIE76,
		MethodCIEDE2000,
		MethodOklab,
		MethodHyAB,
		MethodOklchWeighted,
	}
}

// Valid reports whether m names a recognised distance method.
func (m Method) Valid() bool {
	switch m {
	case MethodRGB, MethodCIE76, MethodCIEDE2000, MethodOklab, MethodHyAB, MethodOklchWeighted:
		return true
	}
	return false
}

// algorithm maps the public method name to the internal algorithm identifier.
// The mapping is not 1:1: the public "ciede2000" name selects the internal
// "cie2000" algorithm.
func (m Method) algorithm() string {
	switch m {
	case MethodRGB:
		return "rgb"
	case MethodCIE76:
		return "cie76"
	case MethodCIEDE2000:
		return "cie2000"
	case MethodOklab:
		return "oklab"
	case MethodHyAB:
		return "hyab"
	case MethodOklchWeighted:
		return "oklch-weighted"
	default:
		// Unrecognised methods fall back to Oklab rather than erroring.
		return "oklab"
	}
}

// Distance calculates the colour distance between two hex colours using the
// given method. Unrecognised methods fall back to Oklab. Malformed hex input
// is treated as black, keeping the function total.
func Distance(hexA, hexB string, m Method) float64 {
	a := parseOrZero(hexA)
	b := parseOrZero(hexB)
	return deltaE(a, b, m.algorithm())
}

// deltaE dispatches on the internal algorithm identifier.
func deltaE(a, b colorful.Color, algorithm string) float64 {
	switch algorithm {
	case "rgb":
		return weightedRGBDistance(a, b)
	case "cie76":
		return a.DistanceCIE76(b)
	case "cie2000":
		return a.DistanceCIEDE2000(b)
	case "hyab":
		return hyabDistance(a, b)
	case "oklch-weighted":
		return oklchWeightedDistance(a, b)
	default:
		return oklabDistance(a, b)
	}
}

// RGBDistance calculates a perceptually weighted Euclidean distance between
// two hex colours in RGB space. This is cheaper than the Delta-E metrics and
// is used for best-effort fallback matching.
func RGBDistance(hexA, hexB string) float64 {
	return weightedRGBDistance(parseOrZero(hexA), parseOrZero(hexB))
}

// weightedRGBDistance emphasises green more, like human perception.
func weightedRGBDistance(a, b colorful.Color) float64 {
	dr := (a.R - b.R) * 255
	dg := (a.G - b.G) * 255
	db := (a.B - b.B) * 255
	return math.Sqrt(2*dr*dr + 4*dg*dg + 3*db*db)
}
