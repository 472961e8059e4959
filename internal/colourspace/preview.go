package colourspace

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 4
)

// Swatch returns an ANSI truecolor block for a hex colour. Width specifies
// how many characters wide the block should be. Malformed hex renders as a
// black block.
func Swatch(hex string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	c := parseOrZero(hex)
	r, g, b := c.RGB255()

	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, r, g, b, ansiSuffix)
	block := strings.Repeat(" ", width)

	return bgColour + block + ansiReset
}

// FormatHexWithSwatch formats a hex colour with a swatch preview prefix.
func FormatHexWithSwatch(hex string, width int) string {
	return fmt.Sprintf("%s %s", Swatch(hex, width), hex)
}
