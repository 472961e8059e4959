package harmony

// Display-name glue for harmony types. Kept separate from the offset table
// so presentation strings never leak into the matching logic.

var typeNames = map[Type]string{
	Complementary:      "Complementary",
	Analogous:          "Analogous",
	Triadic:            "Triadic",
	SplitComplementary: "Split-Complementary",
	Tetradic:           "Tetradic",
	Square:             "Square",
	Monochromatic:      "Monochromatic",
	Compound:           "Compound",
	Shades:             "Shades",
}

var typeDescriptions = map[Type]string{
	Complementary:      "The colour directly opposite on the wheel. High contrast, high impact.",
	Analogous:          "Neighbouring colours on the wheel. Calm, cohesive combinations.",
	Triadic:            "Three colours evenly spaced around the wheel. Vibrant and balanced.",
	SplitComplementary: "The two colours flanking the complement. Contrast with less tension.",
	Tetradic:           "Two complementary pairs forming a rectangle on the wheel.",
	Square:             "Four colours evenly spaced around the wheel.",
	Monochromatic:      "The same hue at different saturation and brightness.",
	Compound:           "Analogous colours combined with the complement's neighbours.",
	Shades:             "Darker and lighter variations of the base hue.",
}

// DisplayName returns the human-readable name for a harmony type. Unknown
// types return their raw identifier.
func (t Type) DisplayName() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return string(t)
}

// Description returns a one-line description of a harmony type, or "" for
// unknown types.
func (t Type) Description() string {
	return typeDescriptions[t]
}
