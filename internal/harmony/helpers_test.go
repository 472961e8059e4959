package harmony

import (
	"testing"

	"github.com/jmylchreest/dyeharmony/internal/catalog"
	"github.com/jmylchreest/dyeharmony/internal/colourspace"
)

// testDye builds a catalog entry with HSV derived from the hex value, the
// same way the real catalog loader does.
func testDye(t *testing.T, id int, name, hex, category string) catalog.Dye {
	t.Helper()

	h, s, v, err := colourspace.HexToHSV(hex)
	if err != nil {
		t.Fatalf("testDye(%s): %v", hex, err)
	}

	c, err := colourspace.ParseHex(hex)
	if err != nil {
		t.Fatalf("testDye(%s): %v", hex, err)
	}
	r, g, b := c.RGB255()

	return catalog.Dye{
		ID:       id,
		ItemID:   10000 + id,
		Name:     name,
		Hex:      hex,
		RGB:      catalog.RGB{R: r, G: g, B: b},
		HSV:      catalog.HSV{H: h, S: s, V: v},
		Category: category,
	}
}

// wheelCatalog is a small catalog spread around the colour wheel, with one
// Facewear entry that must never surface in matches.
func wheelCatalog(t *testing.T) []catalog.Dye {
	t.Helper()
	return []catalog.Dye{
		testDye(t, 1, "Test Red", "#ff0000", catalog.CategoryRed),
		testDye(t, 2, "Test Orange", "#ff8000", catalog.CategoryBrown),
		testDye(t, 3, "Test Yellow", "#ffff00", catalog.CategoryYellow),
		testDye(t, 4, "Test Green", "#00ff00", catalog.CategoryGreen),
		testDye(t, 5, "Test Cyan", "#00ffff", catalog.CategoryBlue),
		testDye(t, 6, "Test Blue", "#0000ff", catalog.CategoryBlue),
		testDye(t, 7, "Test Magenta", "#ff00ff", catalog.CategoryPurple),
		testDye(t, 8, "Test Teal", "#00c0c0", catalog.CategoryBlue),
		testDye(t, 9, "Test Olive", "#808000", catalog.CategoryGreen),
		testDye(t, 10, "Test Facewear", "#00f0f0", catalog.CategoryFacewear),
	}
}

func dyeIDs(matches []ScoredMatch) []int {
	ids := make([]int, len(matches))
	for i, m := range matches {
		ids[i] = m.Dye.ID
	}
	return ids
}
