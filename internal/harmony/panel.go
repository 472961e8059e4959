package harmony

import (
	"math"

	"github.com/jmylchreest/dyeharmony/internal/catalog"
	"github.com/jmylchreest/dyeharmony/internal/colourspace"
)

// Panels overfetch this many extra candidates so the exclusion resolver can
// substitute without re-querying the matcher.
const overfetchMargin = 10

// Panel is one harmony slot for a base dye: the ideal target colour, the dye
// chosen to represent the slot and the remaining companion suggestions.
type Panel struct {
	// DisplayDye is the dye shown for this slot: the user's override when
	// supplied, otherwise the best resolved match, otherwise the base dye.
	DisplayDye catalog.Dye `json:"displayDye"`

	// TargetColor is the ideal target before matching against the real
	// catalog: the base dye's saturation and value at the rotated hue.
	TargetColor string `json:"targetColor"`

	// Deviance is DisplayDye's closeness to the target hue.
	Deviance float64 `json:"deviance"`

	// ClosestDyes are the companion suggestions, best first, without
	// DisplayDye.
	ClosestDyes []catalog.Dye `json:"closestDyes"`
}

// GeneratePanel computes the harmony slot for one hue offset from a base
// dye.
//
// The matcher is asked for CompanionDyesCount+10 candidates so the exclusion
// resolver has headroom to substitute without shrinking the final list in
// the common case. A supplied override always wins the DisplayDye slot, with
// its deviance recomputed via the hue formula regardless of the matching
// mode.
func GeneratePanel(dyes []catalog.Dye, base catalog.Dye, offsetDegrees int, cfg Config, pred FilterPredicate, filterActive bool, override *catalog.Dye) Panel {
	targetHue := math.Mod(base.HSV.H+float64(offsetDegrees), 360)
	if targetHue < 0 {
		targetHue += 360
	}

	targetColor := colourspace.HSVToHex(targetHue, base.HSV.S, base.HSV.V)

	matches := FindClosestMatches(dyes, targetHue, cfg.CompanionDyesCount+overfetchMargin, cfg, &base)
	resolved := ReplaceExcluded(matches, dyes, targetHue, pred, filterActive)

	var displayDye catalog.Dye
	var deviance float64
	switch {
	case override != nil:
		displayDye = *override
		deviance = colourspace.HueDeviance(override.HSV.H, targetHue)
	case len(resolved) > 0:
		displayDye = resolved[0].Dye
		deviance = resolved[0].Deviance
	default:
		displayDye = base
		deviance = colourspace.HueDeviance(base.HSV.H, targetHue)
	}

	closest := []catalog.Dye{}
	for _, m := range resolved {
		if len(closest) >= cfg.CompanionDyesCount {
			break
		}
		if m.Dye.ID == displayDye.ID {
			continue
		}
		closest = append(closest, m.Dye)
	}

	return Panel{
		DisplayDye:  displayDye,
		TargetColor: targetColor,
		Deviance:    deviance,
		ClosestDyes: closest,
	}
}
