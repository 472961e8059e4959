package harmony

import (
	"math"

	"github.com/jmylchreest/dyeharmony/internal/catalog"
)

// FindHarmonyDyes aggregates matcher results across every offset of a
// harmony type into one flat list, truncated to CompanionDyesCount per
// offset.
//
// Unlike GeneratePanel, excluded dyes are dropped rather than substituted:
// this entry point feeds flat aggregate listings where a shorter list reads
// better than a stand-in colour. Unknown harmony types yield an empty
// result, not an error.
func FindHarmonyDyes(dyes []catalog.Dye, base catalog.Dye, typ Type, cfg Config, pred FilterPredicate, filterActive bool) []ScoredMatch {
	offsets := Offsets(typ)
	if len(offsets) == 0 {
		return nil
	}

	var out []ScoredMatch
	for _, offset := range offsets {
		targetHue := math.Mod(base.HSV.H+float64(offset), 360)
		if targetHue < 0 {
			targetHue += 360
		}

		matches := FindClosestMatches(dyes, targetHue, cfg.CompanionDyesCount, cfg, &base)
		for _, m := range matches {
			if filterActive && pred != nil && pred(m.Dye) {
				continue
			}
			out = append(out, m)
		}
	}

	limit := cfg.CompanionDyesCount * len(offsets)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
