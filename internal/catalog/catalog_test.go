package catalog

import (
	"regexp"
	"testing"
)

func TestAllLoadsCatalog(t *testing.T) {
	dyes, err := All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(dyes) == 0 {
		t.Fatal("All() returned empty catalog")
	}
}

func TestAllHexesValid(t *testing.T) {
	hexPattern := regexp.MustCompile(`^#[0-9a-f]{6}$`)

	dyes, err := All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}

	for _, d := range dyes {
		if !hexPattern.MatchString(d.Hex) {
			t.Errorf("dye %d (%s) has invalid hex %q", d.ID, d.Name, d.Hex)
		}
	}
}

func TestAllCategoriesKnown(t *testing.T) {
	known := make(map[string]bool)
	for _, c := range Categories() {
		known[c] = true
	}

	dyes, err := All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}

	for _, d := range dyes {
		if !known[d.Category] {
			t.Errorf("dye %d (%s) has unknown category %q", d.ID, d.Name, d.Category)
		}
	}
}

func TestIDsUnique(t *testing.T) {
	dyes, err := All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}

	seen := make(map[int]string, len(dyes))
	for _, d := range dyes {
		if prev, dup := seen[d.ID]; dup {
			t.Errorf("duplicate dye ID %d: %s and %s", d.ID, prev, d.Name)
		}
		seen[d.ID] = d.Name
	}
}

func TestHSVDerivedFromHex(t *testing.T) {
	dyes, err := All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}

	for _, d := range dyes {
		if d.HSV.H < 0 || d.HSV.H >= 360 {
			t.Errorf("dye %s hue %v out of range [0, 360)", d.Name, d.HSV.H)
		}
		if d.HSV.S < 0 || d.HSV.S > 100 || d.HSV.V < 0 || d.HSV.V > 100 {
			t.Errorf("dye %s saturation/value out of range: %+v", d.Name, d.HSV)
		}
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
		found bool
	}{
		{
			name:  "exact name",
			query: "Snow White",
			want:  "Snow White",
			found: true,
		},
		{
			name:  "lowercase",
			query: "snow white",
			want:  "Snow White",
			found: true,
		},
		{
			name:  "no spaces",
			query: "snowwhite",
			want:  "Snow White",
			found: true,
		},
		{
			name:  "dashed",
			query: "opo-opo brown",
			want:  "Opo-opo Brown",
			found: true,
		},
		{
			name:  "unknown",
			query: "octarine",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ByName(tt.query)
			if ok != tt.found {
				t.Fatalf("ByName(%q) found = %v, want %v", tt.query, ok, tt.found)
			}
			if ok && got.Name != tt.want {
				t.Errorf("ByName(%q) = %s, want %s", tt.query, got.Name, tt.want)
			}
		})
	}
}

func TestByHex(t *testing.T) {
	d, ok := ByHex("#e9e4db")
	if !ok {
		t.Fatal("ByHex(#e9e4db) not found")
	}
	if d.Name != "Snow White" {
		t.Errorf("ByHex(#e9e4db) = %s, want Snow White", d.Name)
	}

	// Without the leading hash and with mixed case.
	if _, ok := ByHex("E9E4DB"); !ok {
		t.Error("ByHex(E9E4DB) not found, want case-insensitive match")
	}

	if _, ok := ByHex("#123456"); ok {
		t.Error("ByHex(#123456) found a dye, want none")
	}
}

func TestByID(t *testing.T) {
	d, ok := ByID(1)
	if !ok {
		t.Fatal("ByID(1) not found")
	}
	if d.Name != "Snow White" {
		t.Errorf("ByID(1) = %s, want Snow White", d.Name)
	}

	if _, ok := ByID(99999); ok {
		t.Error("ByID(99999) found a dye, want none")
	}
}

func TestFacewearPresent(t *testing.T) {
	facewear := InCategory(CategoryFacewear)
	if len(facewear) == 0 {
		t.Fatal("catalog contains no Facewear dyes")
	}
	for _, d := range facewear {
		if d.Category != CategoryFacewear {
			t.Errorf("InCategory returned %s with category %s", d.Name, d.Category)
		}
	}
}

func TestInCategoryUnknown(t *testing.T) {
	if got := InCategory("Octarine"); len(got) != 0 {
		t.Errorf("InCategory(Octarine) = %d dyes, want 0", len(got))
	}
}
