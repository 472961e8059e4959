package harmony

// Type identifies a colour-theory harmony relationship.
type Type string

const (
	Complementary      Type = "complementary"
	Analogous          Type = "analogous"
	Triadic            Type = "triadic"
	SplitComplementary Type = "split-complementary"
	Tetradic           Type = "tetradic"
	Square             Type = "square"
	Monochromatic      Type = "monochromatic"
	Compound           Type = "compound"
	Shades             Type = "shades"
)

// offsetTable maps each harmony type to its hue-rotation offsets in degrees.
// The offset count determines how many companion slots a type produces.
// Static data; never mutated.
var offsetTable = map[Type][]int{
	Complementary:      {180},
	Analogous:          {30, 330},
	Triadic:            {120, 240},
	SplitComplementary: {150, 210},
	Tetradic:           {60, 180, 240},
	Square:             {90, 180, 270},
	Monochromatic:      {0},
	Compound:           {30, 150, 210, 330},
	Shades:             {0, 0},
}

// Types returns all known harmony types in display order.
func Types() []Type {
	return []Type{
		Complementary,
		Analogous,
		Triadic,
		SplitComplementary,
		Tetradic,
		Square,
		Monochromatic,
		Compound,
		Shades,
	}
}

// Offsets returns the hue offsets for a harmony type, or nil for unknown
// types. Callers must not modify the returned slice.
func Offsets(t Type) []int {
	return offsetTable[t]
}

// Known reports whether t names a harmony type in the offset table.
func Known(t Type) bool {
	_, ok := offsetTable[t]
	return ok
}
