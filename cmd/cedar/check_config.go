package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cedar/internal/project"
)

var checkConfigDir string

func init() {
	checkConfigCmd.Flags().StringVar(&checkConfigDir, "dir", ".", "directory to search for cedar.toml")
}

var checkConfigCmd = &cobra.Command{
	Use:   "check-config",
	Short: "Validate the cedar.toml manifest",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		path, ok, err := project.FindManifest(checkConfigDir)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "no cedar.toml found, defaults apply")
			return nil
		}
		m, err := project.Load(path)
		if err != nil {
			return err
		}
		target := m.ResolveTarget()
		okText := "ok"
		if useColor(cmd) {
			okText = color.New(color.FgGreen, color.Bold).Sprint(okText)
		}
		fmt.Fprintf(out, "%s: %s\n", path, okText)
		if m.Package.Name != "" {
			fmt.Fprintf(out, "package: %s\n", m.Package.Name)
		}
		fmt.Fprintf(out, "target: %s (ptr %d/%d)\n", target.Triple, target.PtrSize, target.PtrAlign)
		fmt.Fprintf(out, "diagnostics: max=%d warn-unused=%v color=%s format=%s\n",
			m.Diagnostics.Max, m.Diagnostics.WarnUnused, m.Diagnostics.Color, m.Diagnostics.Format)
		return nil
	},
}
