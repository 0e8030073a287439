// Package cmd implements the CLI commands for brandpipe using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "brandpipe",
	Short: "brandpipe — extract a brand profile from a website",
	Long: `brandpipe fetches a website, mines its pages and stylesheets for
colors, fonts, logo, and text signals, and fuses them into a brand
profile. When an AI endpoint is available the profile is enriched with
a summary and content strategy; without one the run is deterministic.

Usage:
  brandpipe analyze <url> [flags]`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
