package harmony

import (
	"testing"

	"github.com/jmylchreest/dyeharmony/internal/catalog"
	"github.com/jmylchreest/dyeharmony/internal/colourspace"
)

func TestFindClosestMatchesHueMode(t *testing.T) {
	dyes := wheelCatalog(t)

	matches := FindClosestMatches(dyes, 180, 3, DefaultConfig(), nil)

	if len(matches) != 3 {
		t.Fatalf("got %d matches, want 3", len(matches))
	}
	if matches[0].Dye.Name != "Test Cyan" {
		t.Errorf("best match = %s, want Test Cyan", matches[0].Dye.Name)
	}
	if matches[0].Deviance != 0 {
		t.Errorf("best deviance = %v, want 0", matches[0].Deviance)
	}
}

func TestFindClosestMatchesOrdering(t *testing.T) {
	dyes := wheelCatalog(t)

	for _, hue := range []float64{0, 45, 180, 300} {
		matches := FindClosestMatches(dyes, hue, len(dyes), DefaultConfig(), nil)
		for i := 1; i < len(matches); i++ {
			if matches[i].Deviance < matches[i-1].Deviance {
				t.Errorf("hue %v: deviance decreases at index %d: %v -> %v",
					hue, i, matches[i-1].Deviance, matches[i].Deviance)
			}
		}
	}
}

func TestFindClosestMatchesTruncation(t *testing.T) {
	dyes := wheelCatalog(t) // 10 entries, 9 matchable

	matches := FindClosestMatches(dyes, 90, 3, DefaultConfig(), nil)
	if len(matches) != 3 {
		t.Errorf("got %d matches, want exactly 3", len(matches))
	}
}

func TestFindClosestMatchesSkipsFacewear(t *testing.T) {
	dyes := wheelCatalog(t)

	// Ask for everything; the Facewear entry must still be absent even
	// though its colour sits right at the target hue.
	matches := FindClosestMatches(dyes, 180, len(dyes), DefaultConfig(), nil)
	for _, m := range matches {
		if m.Dye.Category == catalog.CategoryFacewear {
			t.Errorf("Facewear dye %s surfaced in matches", m.Dye.Name)
		}
	}
}

func TestFindClosestMatchesFacewearOnlyCatalog(t *testing.T) {
	dyes := []catalog.Dye{
		testDye(t, 1, "Face A", "#112233", catalog.CategoryFacewear),
		testDye(t, 2, "Face B", "#445566", catalog.CategoryFacewear),
	}

	if got := FindClosestMatches(dyes, 0, 10, DefaultConfig(), nil); len(got) != 0 {
		t.Errorf("got %d matches from Facewear-only catalog, want 0", len(got))
	}
}

func TestFindClosestMatchesEmptyInputs(t *testing.T) {
	dyes := wheelCatalog(t)

	if got := FindClosestMatches(nil, 0, 5, DefaultConfig(), nil); len(got) != 0 {
		t.Errorf("empty catalog: got %d matches, want 0", len(got))
	}
	if got := FindClosestMatches(dyes, 0, 0, DefaultConfig(), nil); len(got) != 0 {
		t.Errorf("count 0: got %d matches, want 0", len(got))
	}
	if got := FindClosestMatches(dyes, 0, -3, DefaultConfig(), nil); len(got) != 0 {
		t.Errorf("negative count: got %d matches, want 0", len(got))
	}
}

func TestFindClosestMatchesPerceptualMode(t *testing.T) {
	dyes := wheelCatalog(t)
	base := testDye(t, 99, "Base Red", "#ff0000", catalog.CategoryRed)

	cfg := DefaultConfig()
	cfg.UsePerceptualMatching = true
	cfg.MatchingMethod = colourspace.MethodOklab

	matches := FindClosestMatches(dyes, 180, 5, cfg, &base)
	if len(matches) != 5 {
		t.Fatalf("got %d matches, want 5", len(matches))
	}

	// The synthetic target is full-saturation, full-value cyan; the cyan
	// dye must win under any perceptual metric.
	if matches[0].Dye.Name != "Test Cyan" {
		t.Errorf("best perceptual match = %s, want Test Cyan", matches[0].Dye.Name)
	}

	for i := 1; i < len(matches); i++ {
		if matches[i].Deviance < matches[i-1].Deviance {
			t.Errorf("deviance decreases at index %d", i)
		}
	}
	for _, m := range matches {
		if m.Deviance < 0 {
			t.Errorf("negative deviance %v for %s", m.Deviance, m.Dye.Name)
		}
	}
}

// Without a base dye, perceptual matching cannot build a synthetic target
// and the matcher stays in hue mode.
func TestFindClosestMatchesPerceptualNeedsBaseDye(t *testing.T) {
	dyes := wheelCatalog(t)

	cfg := DefaultConfig()
	cfg.UsePerceptualMatching = true

	matches := FindClosestMatches(dyes, 180, 1, cfg, nil)
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	// Hue-mode deviance for an exact hue hit is 0 degrees.
	if matches[0].Deviance != 0 {
		t.Errorf("deviance = %v, want hue-mode 0", matches[0].Deviance)
	}
}

func TestFindClosestMatchesPerceptualSatValueFallback(t *testing.T) {
	dyes := wheelCatalog(t)
	// Black carries no saturation or value; the synthetic target falls
	// back to 50/50.
	base := testDye(t, 99, "Base Black", "#000000", catalog.CategoryGrey)

	cfg := DefaultConfig()
	cfg.UsePerceptualMatching = true

	matches := FindClosestMatches(dyes, 180, 1, cfg, &base)
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}

	wantTarget := colourspace.HSVToHex(180, 50, 50)
	wantDeviance := colourspace.Distance(wantTarget, matches[0].Dye.Hex, cfg.MatchingMethod)
	if matches[0].Deviance != wantDeviance {
		t.Errorf("deviance = %v, want %v (distance from 50/50 fallback target)",
			matches[0].Deviance, wantDeviance)
	}
}

func TestFindClosestMatchesStableTies(t *testing.T) {
	// Two dyes at the same hue: catalog order decides.
	dyes := []catalog.Dye{
		testDye(t, 1, "First Red", "#ff0000", catalog.CategoryRed),
		testDye(t, 2, "Second Red", "#cc0000", catalog.CategoryRed),
	}

	matches := FindClosestMatches(dyes, 0, 2, DefaultConfig(), nil)
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Dye.ID != 1 || matches[1].Dye.ID != 2 {
		t.Errorf("tie broken out of catalog order: %v", dyeIDs(matches))
	}
}
