package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jmylchreest/dyeharmony/internal/catalog"
	"github.com/jmylchreest/dyeharmony/internal/colourspace"
	"github.com/spf13/cobra"
)

var (
	// Dyes command flags
	dyesCategory string
	dyesFormat   string
)

// dyesCmd represents the dyes command
var dyesCmd = &cobra.Command{
	Use:   "dyes [search]",
	Short: "List or search the dye catalog",
	Long: `List the dye catalog, optionally filtered by category or a name search.

Examples:
  # The whole catalog
  dyeharmony dyes

  # Only blue dyes
  dyeharmony dyes --category blue

  # Dyes with "metallic" in the name
  dyeharmony dyes metallic

  # JSON output for scripting
  dyeharmony dyes --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDyes,
}

func init() {
	dyesCmd.Flags().StringVarP(&dyesCategory, "category", "C", "", "filter by dye category")
	dyesCmd.Flags().StringVarP(&dyesFormat, "format", "f", "text", "output format (text, json)")
}

// runDyes executes the dyes command.
func runDyes(cmd *cobra.Command, args []string) error {
	dyes, err := catalog.All()
	if err != nil {
		return fmt.Errorf("loading dye catalog: %w", err)
	}

	var search string
	if len(args) == 1 {
		search = strings.ToLower(strings.TrimSpace(args[0]))
	}

	var selected []catalog.Dye
	for _, d := range dyes {
		if dyesCategory != "" && !strings.EqualFold(d.Category, dyesCategory) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(d.Name), search) {
			continue
		}
		selected = append(selected, d)
	}

	logger.Debug("listing dyes", "total", len(dyes), "selected", len(selected),
		"category", dyesCategory, "search", search)

	switch dyesFormat {
	case "json":
		data, err := json.MarshalIndent(selected, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
		fmt.Println(string(data))
	case "text", "":
		if len(selected) == 0 {
			fmt.Println("No dyes matched.")
			return nil
		}
		fmt.Print(formatDyeList(selected, previewEnabled()))
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", dyesFormat)
	}

	return nil
}

// formatDyeList renders dyes either as a plain table or, with previews, as
// swatch-prefixed lines (ANSI escapes would break the table's width
// arithmetic).
func formatDyeList(dyes []catalog.Dye, preview bool) string {
	if !preview {
		table := NewTable([]string{"ID", "NAME", "HEX", "CATEGORY", "HUE"})
		for _, d := range dyes {
			table.AddRow([]string{
				fmt.Sprintf("%d", d.ID),
				d.Name,
				d.Hex,
				d.Category,
				fmt.Sprintf("%.0f°", d.HSV.H),
			})
		}
		return table.Render()
	}

	var b strings.Builder
	for _, d := range dyes {
		fmt.Fprintf(&b, "%s %-22s %s  %-8s %5.0f°\n",
			colourspace.Swatch(d.Hex, 4), d.Name, d.Hex, d.Category, d.HSV.H)
	}
	return b.String()
}
