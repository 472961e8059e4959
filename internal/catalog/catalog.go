package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/jmylchreest/dyeharmony/internal/colourspace"
)

//go:embed dyes.json
var dyesJSON []byte

// record is the on-disk shape of a catalog entry. RGB and HSV are derived at
// load time from the hex value so the snapshot only stores one source of
// truth per colour.
type record struct {
	ID       int    `json:"id"`
	ItemID   int    `json:"itemID"`
	Name     string `json:"name"`
	Hex      string `json:"hex"`
	Category string `json:"category"`
}

var (
	loadOnce sync.Once
	loadErr  error
	dyes     []Dye
	byID     map[int]int
	byName   map[string]int
	byHex    map[string]int
)

func load() {
	var records []record
	if err := json.Unmarshal(dyesJSON, &records); err != nil {
		loadErr = fmt.Errorf("decoding embedded dye catalog: %w", err)
		return
	}

	dyes = make([]Dye, 0, len(records))
	byID = make(map[int]int, len(records))
	byName = make(map[string]int, len(records))
	byHex = make(map[string]int, len(records))

	for _, r := range records {
		h, s, v, err := colourspace.HexToHSV(r.Hex)
		if err != nil {
			loadErr = fmt.Errorf("dye %d (%s): %w", r.ID, r.Name, err)
			return
		}

		c, err := colourspace.ParseHex(r.Hex)
		if err != nil {
			loadErr = fmt.Errorf("dye %d (%s): %w", r.ID, r.Name, err)
			return
		}
		cr, cg, cb := c.RGB255()

		d := Dye{
			ID:       r.ID,
			ItemID:   r.ItemID,
			Name:     r.Name,
			Hex:      strings.ToLower(r.Hex),
			RGB:      RGB{R: cr, G: cg, B: cb},
			HSV:      HSV{H: h, S: s, V: v},
			Category: r.Category,
		}

		idx := len(dyes)
		dyes = append(dyes, d)
		byID[d.ID] = idx
		byName[normaliseName(d.Name)] = idx
		byHex[d.Hex] = idx
	}
}

// All returns the full dye catalog as a stable, read-only snapshot. Callers
// must not modify the returned slice.
func All() ([]Dye, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return nil, loadErr
	}
	return dyes, nil
}

// Count returns the number of dyes in the catalog.
func Count() int {
	all, err := All()
	if err != nil {
		return 0
	}
	return len(all)
}

// ByID looks up a dye by its catalog identifier.
func ByID(id int) (Dye, bool) {
	if _, err := All(); err != nil {
		return Dye{}, false
	}
	idx, ok := byID[id]
	if !ok {
		return Dye{}, false
	}
	return dyes[idx], true
}

// ByName looks up a dye by display name. Matching is case-insensitive and
// ignores spaces, dashes and apostrophes, so "snow white", "Snow White" and
// "snow-white" all resolve to the same dye.
func ByName(name string) (Dye, bool) {
	if _, err := All(); err != nil {
		return Dye{}, false
	}
	idx, ok := byName[normaliseName(name)]
	if !ok {
		return Dye{}, false
	}
	return dyes[idx], true
}

// ByHex looks up a dye by its exact hex colour, with or without a leading
// '#'. Matching is case-insensitive.
func ByHex(hex string) (Dye, bool) {
	if _, err := All(); err != nil {
		return Dye{}, false
	}
	s := strings.ToLower(strings.TrimSpace(hex))
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	idx, ok := byHex[s]
	if !ok {
		return Dye{}, false
	}
	return dyes[idx], true
}

// InCategory returns all dyes in the given category, in catalog order.
func InCategory(category string) []Dye {
	all, err := All()
	if err != nil {
		return nil
	}
	var out []Dye
	for _, d := range all {
		if strings.EqualFold(d.Category, category) {
			out = append(out, d)
		}
	}
	return out
}

// normaliseName lowercases a name and strips spaces, dashes and apostrophes.
func normaliseName(name string) string {
	s := strings.ToLower(name)
	for _, cut := range []string{" ", "-", "'", "’"} {
		s = strings.ReplaceAll(s, cut, "")
	}
	return s
}
