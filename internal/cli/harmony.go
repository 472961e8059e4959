package cli

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/jmylchreest/dyeharmony/internal/catalog"
	"github.com/jmylchreest/dyeharmony/internal/colourspace"
	"github.com/jmylchreest/dyeharmony/internal/harmony"
	"github.com/spf13/cobra"
)

var (
	// Harmony command flags
	harmonyType       string
	harmonyCount      int
	harmonyMethod     = methodValue(colourspace.MethodOklab)
	harmonyPerceptual bool
	harmonyExclude    []string
	harmonyFormat     string
)

// harmonyCmd represents the harmony command
var harmonyCmd = &cobra.Command{
	Use:   "harmony <dye-name|hex>",
	Short: "Suggest harmony companion dyes for a base dye",
	Long: `Suggest companion dyes for a base dye using colour-theory harmony rules.

The base dye can be named directly ("Dalamud Red") or given as a hex colour,
in which case the nearest catalog dye is used. Each harmony type rotates the
base hue by one or more offsets and matches the rotated targets against the
dye catalog.

Examples:
  # Complementary companions for Dalamud Red
  dyeharmony harmony "Dalamud Red"

  # Triadic companions for the dye nearest a hex colour
  dyeharmony harmony "#a22728" --type triadic

  # Perceptual matching with CIEDE2000 and 8 companions per slot
  dyeharmony harmony "Sky Blue" --perceptual --method ciede2000 --count 8

  # Exclude whole dye categories from the suggestions
  dyeharmony harmony "Snow White" --exclude Rare,Purple

  # JSON output for scripting
  dyeharmony harmony "Othard Blue" --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runHarmony,
}

func init() {
	harmonyCmd.Flags().StringVarP(&harmonyType, "type", "t", "complementary", "harmony type (see 'dyeharmony types')")
	harmonyCmd.Flags().IntVarP(&harmonyCount, "count", "c", 5, "companion dyes per harmony slot")
	harmonyCmd.Flags().VarP(&harmonyMethod, "method", "m", "perceptual distance method ("+methodNames()+")")
	harmonyCmd.Flags().BoolVarP(&harmonyPerceptual, "perceptual", "p", false, "match by perceptual distance instead of hue angle")
	harmonyCmd.Flags().StringSliceVarP(&harmonyExclude, "exclude", "x", nil, "dye categories to exclude from suggestions")
	harmonyCmd.Flags().StringVarP(&harmonyFormat, "format", "f", "text", "output format (text, json)")
}

// harmonyOutput is the JSON shape of one harmony run.
type harmonyOutput struct {
	Base    catalog.Dye     `json:"base"`
	Type    harmony.Type    `json:"type"`
	Offsets []int           `json:"offsets"`
	Panels  []harmony.Panel `json:"panels"`
}

// runHarmony executes the harmony command.
func runHarmony(cmd *cobra.Command, args []string) error {
	dyes, err := catalog.All()
	if err != nil {
		return fmt.Errorf("loading dye catalog: %w", err)
	}

	base, err := resolveBaseDye(args[0], dyes)
	if err != nil {
		return err
	}

	typ := harmony.Type(strings.ToLower(strings.TrimSpace(harmonyType)))
	if !harmony.Known(typ) {
		return fmt.Errorf("unknown harmony type %q (valid: %s)", harmonyType, typeNames())
	}

	if harmonyCount < 1 {
		return fmt.Errorf("count must be at least 1")
	}

	cfg := harmony.Config{
		UsePerceptualMatching: harmonyPerceptual,
		MatchingMethod:        colourspace.Method(harmonyMethod),
		CompanionDyesCount:    harmonyCount,
	}

	pred, active := excludeFilter(harmonyExclude)

	logger.Debug("generating harmony panels",
		"base", base.Name, "type", typ, "method", cfg.MatchingMethod,
		"perceptual", cfg.UsePerceptualMatching, "count", cfg.CompanionDyesCount)

	offsets := harmony.Offsets(typ)
	panels := make([]harmony.Panel, 0, len(offsets))
	for _, offset := range offsets {
		panels = append(panels, harmony.GeneratePanel(dyes, base, offset, cfg, pred, active, nil))
	}

	out := harmonyOutput{Base: base, Type: typ, Offsets: offsets, Panels: panels}

	switch harmonyFormat {
	case "json":
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
		fmt.Println(string(data))
	case "text", "":
		fmt.Print(formatHarmonyText(out, previewEnabled()))
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", harmonyFormat)
	}

	return nil
}

// resolveBaseDye turns a command-line argument into a catalog dye. Hex input
// resolves to the nearest dye by weighted-RGB distance when there is no
// exact colour match.
func resolveBaseDye(arg string, dyes []catalog.Dye) (catalog.Dye, error) {
	trimmed := strings.TrimSpace(arg)

	if looksLikeHex(trimmed) {
		if d, ok := catalog.ByHex(trimmed); ok {
			return d, nil
		}
		if _, err := colourspace.ParseHex(trimmed); err != nil {
			return catalog.Dye{}, err
		}
		return nearestDye(trimmed, dyes)
	}

	if d, ok := catalog.ByName(trimmed); ok {
		return d, nil
	}
	return catalog.Dye{}, fmt.Errorf("no dye named %q in the catalog (try 'dyeharmony dyes %s')", arg, arg)
}

// looksLikeHex reports whether the argument reads as a hex colour rather
// than a dye name.
func looksLikeHex(s string) bool {
	if strings.HasPrefix(s, "#") {
		return true
	}
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// nearestDye finds the catalog dye closest to a hex colour.
func nearestDye(hex string, dyes []catalog.Dye) (catalog.Dye, error) {
	var best catalog.Dye
	bestDistance := math.MaxFloat64
	found := false

	for _, d := range dyes {
		if d.Category == catalog.CategoryFacewear {
			continue
		}
		distance := colourspace.RGBDistance(hex, d.Hex)
		if distance < bestDistance {
			bestDistance = distance
			best = d
			found = true
		}
	}

	if !found {
		return catalog.Dye{}, fmt.Errorf("dye catalog is empty")
	}
	return best, nil
}

// excludeFilter builds a category-based filter predicate from the --exclude
// flag. Returns a nil predicate and false when no categories are given.
func excludeFilter(categories []string) (harmony.FilterPredicate, bool) {
	if len(categories) == 0 {
		return nil, false
	}

	excluded := make(map[string]bool, len(categories))
	for _, c := range categories {
		excluded[strings.ToLower(strings.TrimSpace(c))] = true
	}

	return func(d catalog.Dye) bool {
		return excluded[strings.ToLower(d.Category)]
	}, true
}

// formatHarmonyText renders harmony panels for the terminal.
func formatHarmonyText(out harmonyOutput, preview bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s — %s\n", out.Type.DisplayName(), out.Type.Description())
	fmt.Fprintf(&b, "Base: %s\n", formatDyeLine(out.Base, preview))

	for i, panel := range out.Panels {
		fmt.Fprintf(&b, "\nOffset +%d°  target %s\n", out.Offsets[i], formatHexLine(panel.TargetColor, preview))
		fmt.Fprintf(&b, "  Match: %s  (deviance %.2f)\n", formatDyeLine(panel.DisplayDye, preview), panel.Deviance)

		if len(panel.ClosestDyes) > 0 {
			fmt.Fprintf(&b, "  Companions:\n")
			for _, d := range panel.ClosestDyes {
				fmt.Fprintf(&b, "    %s\n", formatDyeLine(d, preview))
			}
		}
	}

	return b.String()
}

// formatDyeLine renders one dye with an optional swatch prefix.
func formatDyeLine(d catalog.Dye, preview bool) string {
	if preview {
		return fmt.Sprintf("%s %s (%s, %s)", colourspace.Swatch(d.Hex, 4), d.Name, d.Hex, d.Category)
	}
	return fmt.Sprintf("%s (%s, %s)", d.Name, d.Hex, d.Category)
}

// formatHexLine renders a bare hex colour with an optional swatch prefix.
func formatHexLine(hex string, preview bool) string {
	if preview {
		return colourspace.FormatHexWithSwatch(hex, 4)
	}
	return hex
}

// typeNames returns all harmony type identifiers for error messages.
func typeNames() string {
	types := harmony.Types()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
