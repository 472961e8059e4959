// Package catalog provides the read-only in-game dye catalog.
package catalog

import "fmt"

// Dye categories as they appear in the in-game dye window. Facewear dyes
// carry generic display names and are structurally excluded from harmony
// matching.
const (
	CategoryGrey     = "Grey"
	CategoryRed      = "Red"
	CategoryBrown    = "Brown"
	CategoryYellow   = "Yellow"
	CategoryGreen    = "Green"
	CategoryBlue     = "Blue"
	CategoryPurple   = "Purple"
	CategoryRare     = "Rare"
	CategoryFacewear = "Facewear"
)

// Categories returns all dye categories in display order.
func Categories() []string {
	return []string{
		CategoryGrey,
		CategoryRed,
		CategoryBrown,
		CategoryYellow,
		CategoryGreen,
		CategoryBlue,
		CategoryPurple,
		CategoryRare,
		CategoryFacewear,
	}
}

// RGB holds 8-bit colour channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// HSV holds a hue in degrees [0, 360) and saturation/value percentages
// [0, 100].
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// Dye is a single catalog entry. The catalog is loaded once at startup and
// never mutated; Dye values are safe to copy and share.
type Dye struct {
	ID       int    `json:"id"`
	ItemID   int    `json:"itemID"`
	Name     string `json:"name"`
	Hex      string `json:"hex"`
	RGB      RGB    `json:"rgb"`
	HSV      HSV    `json:"hsv"`
	Category string `json:"category"`
}

// String returns a short human-readable description of the dye.
func (d Dye) String() string {
	return fmt.Sprintf("%s (%s, %s)", d.Name, d.Hex, d.Category)
}
