// Package cli provides the Cobra command structure for snifftrap.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/snifftrap/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root snifftrap command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "snifftrap",
		Short: "Intercept and reconcile animalsniffer diagnostic output",
		Long: `snifftrap sits between the animalsniffer API-compatibility checker and its
consumers. It captures the checker's raw diagnostic output, normalizes each
line into a structured finding, merges the adjacent duplicate pairs certain
checker versions emit for a single expression, and renders the result as a
console stream and a persisted report file.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
