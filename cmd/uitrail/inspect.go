package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/uitrail/uitrail/internal/output"
	"github.com/uitrail/uitrail/pkg/model"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <snapshot-file>",
	Short: "List snapshot elements flat with IDs and coordinates",
	Long: `List every element of a snapshot as a flat table with its ID, kind,
cleaned text, absolute coordinates, and kind path within the tree.

Examples:
  uitrail inspect settings.json
  uitrail inspect settings.json --toggles --visible-only
  uitrail inspect settings.json --kind chk,radio --text import`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().String("kind", "", "Comma-separated kinds to include (lbl, chk, radio, grp, tab, sep, border, styled)")
	inspectCmd.Flags().String("text", "", "Filter by text content (case-insensitive substring)")
	inspectCmd.Flags().Bool("toggles", false, "Only checkboxes and radio buttons")
	inspectCmd.Flags().Bool("visible-only", false, "Skip hidden elements")
	inspectCmd.Flags().Bool("pretty", false, "Pretty-print JSON")
}

func runInspect(cmd *cobra.Command, args []string) error {
	kindStr, _ := cmd.Flags().GetString("kind")
	text, _ := cmd.Flags().GetString("text")
	toggles, _ := cmd.Flags().GetBool("toggles")
	visibleOnly, _ := cmd.Flags().GetBool("visible-only")

	doc, snap, err := openSnapshot(args[0])
	if err != nil {
		return err
	}

	opts := model.FlattenOptions{
		VisibleOnly: visibleOnly,
		TogglesOnly: toggles,
		Text:        text,
	}
	if kindStr != "" {
		for _, k := range strings.Split(kindStr, ",") {
			if k = strings.TrimSpace(k); k != "" {
				opts.Kinds = append(opts.Kinds, model.ParseKind(k))
			}
		}
	}

	elements := snap.Flatten(opts)
	return output.Print(output.ListResult{TS: doc.TS, Count: len(elements), Elements: elements})
}
