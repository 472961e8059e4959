package cli

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/dyeharmony/internal/harmony"
	"github.com/spf13/cobra"
)

// typesCmd represents the types command
var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the available harmony types",
	Long:  `List every harmony type with its hue offsets and a short description.`,
	Run: func(cmd *cobra.Command, args []string) {
		table := NewTable([]string{"TYPE", "OFFSETS", "DESCRIPTION"})
		for _, typ := range harmony.Types() {
			table.AddRow([]string{
				string(typ),
				formatOffsets(harmony.Offsets(typ)),
				typ.Description(),
			})
		}
		fmt.Print(table.Render())
	},
}

func formatOffsets(offsets []int) string {
	parts := make([]string, len(offsets))
	for i, o := range offsets {
		parts[i] = fmt.Sprintf("%d°", o)
	}
	return strings.Join(parts, ", ")
}
