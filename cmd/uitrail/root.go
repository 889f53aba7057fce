package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uitrail/uitrail/internal/logging"
	"github.com/uitrail/uitrail/internal/output"
	"github.com/uitrail/uitrail/internal/version"
)

// appLog is the process-wide logger, configured from --verbose before any
// command runs.
var appLog = logging.NewNop()

var rootCmd = &cobra.Command{
	Use:   "uitrail",
	Short: "Infer breadcrumb paths for elements in dialog snapshots",
	Long:  "uitrail reads captured dialog component trees and infers where an element lives as a human-readable path, e.g. 'Auto Import | Java | Insert imports on paste'.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log resolver decisions to stderr")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		appLog = logging.New(verbose)

		// Use the root persistent flag directly to avoid conflicts with
		// subcommand local flags.
		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		if prettyFlag := cmd.Flags().Lookup("pretty"); prettyFlag != nil {
			if pretty, err := cmd.Flags().GetBool("pretty"); err == nil && pretty {
				output.PrettyOutput = true
			}
		}
		return nil
	}
}
