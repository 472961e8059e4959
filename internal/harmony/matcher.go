package harmony

import (
	"sort"

	"github.com/jmylchreest/dyeharmony/internal/catalog"
	"github.com/jmylchreest/dyeharmony/internal/colourspace"
)

// Saturation/value for the synthetic perceptual target when the base dye
// carries no usable HSV.
const fallbackSatValue = 50

// FindClosestMatches ranks catalog dyes by closeness to a target hue and
// returns the top count matches in ascending deviance order. Facewear dyes
// are always skipped; their display names are non-descriptive.
//
// With cfg.UsePerceptualMatching and a non-nil baseDye, matching uses the
// configured perceptual distance against a synthetic target colour built
// from targetHue and the base dye's saturation and value. Otherwise each
// dye's deviance is the shortest angular distance between its hue and
// targetHue.
//
// An empty catalog or non-positive count yields an empty result.
func FindClosestMatches(dyes []catalog.Dye, targetHue float64, count int, cfg Config, baseDye *catalog.Dye) []ScoredMatch {
	if count <= 0 || len(dyes) == 0 {
		return nil
	}

	perceptual := cfg.UsePerceptualMatching && baseDye != nil

	var targetHex string
	if perceptual {
		s := baseDye.HSV.S
		v := baseDye.HSV.V
		if s <= 0 {
			s = fallbackSatValue
		}
		if v <= 0 {
			v = fallbackSatValue
		}
		targetHex = colourspace.HSVToHex(targetHue, s, v)
	}

	matches := make([]ScoredMatch, 0, len(dyes))
	for _, d := range dyes {
		if d.Category == catalog.CategoryFacewear {
			continue
		}

		var deviance float64
		if perceptual {
			deviance = colourspace.Distance(targetHex, d.Hex, cfg.MatchingMethod)
		} else {
			deviance = colourspace.HueDeviance(d.HSV.H, targetHue)
		}
		matches = append(matches, ScoredMatch{Dye: d, Deviance: deviance})
	}

	// Stable sort keeps catalog order for ties.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Deviance < matches[j].Deviance
	})

	if len(matches) > count {
		matches = matches[:count]
	}
	return matches
}
