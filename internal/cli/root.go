// Package cli provides the command-line interface for dyeharmony.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/dyeharmony/internal/version"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	// Global flags
	flagVerbose bool
	flagQuiet   bool
	flagNoColor bool

	// logger is rebuilt from the global flags before every command run.
	logger = hclog.NewNullLogger()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "dyeharmony",
		Short: "Colour-harmony companion finder for the in-game dye catalog",
		Long: `Dyeharmony suggests dye combinations for glamours. Given a base dye it
computes colour-theory harmony targets (complementary, triadic, analogous
and more) and finds the closest real dyes in the catalog under a choice of
perceptual colour-distance metrics.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger()
		},
	}
)

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colour swatch previews")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(harmonyCmd)
	rootCmd.AddCommand(dyesCmd)
	rootCmd.AddCommand(typesCmd)
}

// newLogger builds the command logger from the global verbosity flags.
func newLogger() hclog.Logger {
	level := hclog.Warn
	if flagVerbose {
		level = hclog.Debug
	}
	if flagQuiet {
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "dyeharmony",
		Output: os.Stderr,
		Level:  level,
	})
}

// previewEnabled reports whether swatch previews should be rendered: stdout
// is a terminal and colour output has not been disabled.
func previewEnabled() bool {
	if flagNoColor {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
