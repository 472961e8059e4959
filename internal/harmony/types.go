// Package harmony computes colour-harmony companion dyes for a base dye:
// target hues from a static offset table, best catalog matches under hue or
// perceptual distance, and deterministic substitution of filtered-out
// candidates.
//
// Every function in this package is total over its documented input domain:
// unknown harmony types, empty catalogs and fully-excluded catalogs yield
// empty or shorter results, never errors. The package holds no mutable
// state; concurrent calls are safe.
package harmony

import (
	"github.com/jmylchreest/dyeharmony/internal/catalog"
	"github.com/jmylchreest/dyeharmony/internal/colourspace"
)

// ScoredMatch pairs a catalog dye with its deviance from a matching target.
// Lower deviance means more similar. The unit depends on the matching mode:
// angular degrees [0, 180] for hue matching, metric units for perceptual
// matching.
type ScoredMatch struct {
	Dye      catalog.Dye
	Deviance float64
}

// Config controls one harmony computation. It is supplied per call and never
// mutated.
type Config struct {
	// UsePerceptualMatching selects perceptual distance against a synthetic
	// target colour instead of plain hue-angle distance. It only takes
	// effect when the caller also supplies a base dye.
	UsePerceptualMatching bool

	// MatchingMethod selects the perceptual distance metric. Unrecognised
	// values fall back to Oklab.
	MatchingMethod colourspace.Method

	// CompanionDyesCount is how many companion dyes each harmony slot
	// should propose.
	CompanionDyesCount int
}

// DefaultConfig returns the configuration the CLI uses when no flags are
// given.
func DefaultConfig() Config {
	return Config{
		UsePerceptualMatching: false,
		MatchingMethod:        colourspace.MethodOklab,
		CompanionDyesCount:    5,
	}
}

// FilterPredicate reports whether a dye should be excluded from results.
// A nil predicate excludes nothing. Predicates must be pure for the duration
// of one call; the resolver calls them repeatedly while scanning the
// catalog.
type FilterPredicate func(catalog.Dye) bool
