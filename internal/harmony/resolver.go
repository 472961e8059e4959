package harmony

import (
	"math"

	"github.com/jmylchreest/dyeharmony/internal/catalog"
	"github.com/jmylchreest/dyeharmony/internal/colourspace"
)

// ReplaceExcluded substitutes excluded match entries with the next-best
// non-excluded alternative from the full catalog, preserving the requested
// list length where possible.
//
// Replacement candidates are ranked by weighted-RGB distance from the
// excluded dye's colour. This is deliberately cheaper than the primary
// matcher's configured metric; substitution is a best-effort fallback path.
// A replacement's deviance is recomputed as the angular hue deviance against
// targetHue.
//
// When no replacement exists (catalog exhausted) the slot is dropped, so the
// output may be shorter than the input. Callers relying on an exact count
// must check the result length. Never errors.
func ReplaceExcluded(matches []ScoredMatch, dyes []catalog.Dye, targetHue float64, pred FilterPredicate, active bool) []ScoredMatch {
	// Filtering is opt-in; without an active predicate the input passes
	// through untouched.
	if !active || pred == nil {
		return matches
	}

	used := make(map[int]struct{}, len(matches))
	out := make([]ScoredMatch, 0, len(matches))

	for _, m := range matches {
		if !pred(m.Dye) {
			// An earlier slot may have already consumed this dye as a
			// replacement; duplicates are dropped.
			if _, taken := used[m.Dye.ID]; taken {
				continue
			}
			out = append(out, m)
			used[m.Dye.ID] = struct{}{}
			continue
		}

		replacement, ok := closestReplacement(m.Dye, dyes, used, pred)
		if !ok {
			continue
		}

		out = append(out, ScoredMatch{
			Dye:      replacement,
			Deviance: colourspace.HueDeviance(replacement.HSV.H, targetHue),
		})
		used[replacement.ID] = struct{}{}
	}

	return out
}

// closestReplacement scans the whole catalog for the nearest dye to the
// excluded one that is not already used, not Facewear and not itself
// excluded.
func closestReplacement(excluded catalog.Dye, dyes []catalog.Dye, used map[int]struct{}, pred FilterPredicate) (catalog.Dye, bool) {
	var best catalog.Dye
	bestDistance := math.MaxFloat64
	found := false

	for _, d := range dyes {
		if _, taken := used[d.ID]; taken {
			continue
		}
		if d.Category == catalog.CategoryFacewear {
			continue
		}
		if pred(d) {
			continue
		}

		distance := colourspace.RGBDistance(excluded.Hex, d.Hex)
		if distance < bestDistance {
			bestDistance = distance
			best = d
			found = true
		}
	}

	return best, found
}
