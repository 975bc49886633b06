package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cedar/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "cedar",
	Short: "Cedar semantic analyzer and toolchain",
	Long:  `Cedar is a compiler frontend with structural types and layout tools`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(targetsCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(checkConfigCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|always|never)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color flag against the actual output stream.
func useColor(cmd *cobra.Command) bool {
	mode, _ := cmd.Flags().GetString("color")
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return !color.NoColor && isTerminal(os.Stdout)
	}
}
