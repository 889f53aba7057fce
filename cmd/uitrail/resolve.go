package main

import (
	"github.com/spf13/cobra"

	"github.com/uitrail/uitrail/internal/output"
	"github.com/uitrail/uitrail/internal/resolve"
	"github.com/uitrail/uitrail/pkg/model"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <snapshot-file>",
	Short: "Infer the breadcrumb path of an element",
	Long: `Infer where an element lives inside a captured dialog tree, as a
human-readable path like 'Auto Import | Java | Insert imports on paste'.

The target is addressed by --id or by --text (deepest match wins). An
unresolvable path is a normal result with ok: false, not an error.

Examples:
  uitrail resolve settings.json --id 42
  uitrail resolve settings.json --text "Insert imports on paste"
  uitrail resolve settings.json --text Default --boundary-id 7 --base "Editor | Inlay Hints"`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().Int("id", 0, "Target element ID")
	resolveCmd.Flags().String("text", "", "Find the target by text (case-insensitive substring)")
	resolveCmd.Flags().Bool("exact", false, "Require exact text match")
	resolveCmd.Flags().Int("boundary-id", 0, "Element ID capping the upward search (default: tree root)")
	resolveCmd.Flags().String("base", "", "Leading path segment overriding title detection")
	resolveCmd.Flags().String("sep", "", "Segment separator (default \" | \")")
	resolveCmd.Flags().Int("row-tol", 0, "Max Y delta for two elements to share a row (default 8)")
	resolveCmd.Flags().Int("indent", 0, "Smallest X delta counting as one indent level (default 12)")
	resolveCmd.Flags().Int("column-gap", 0, "X distance separating layout columns (default 160)")
	resolveCmd.Flags().Int("title-depth", 0, "Max depth searched for a dialog title (default 3)")
}

func runResolve(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetInt("id")
	text, _ := cmd.Flags().GetString("text")
	exact, _ := cmd.Flags().GetBool("exact")
	boundaryID, _ := cmd.Flags().GetInt("boundary-id")
	base, _ := cmd.Flags().GetString("base")
	sep, _ := cmd.Flags().GetString("sep")
	rowTol, _ := cmd.Flags().GetInt("row-tol")
	indent, _ := cmd.Flags().GetInt("indent")
	columnGap, _ := cmd.Flags().GetInt("column-gap")
	titleDepth, _ := cmd.Flags().GetInt("title-depth")

	_, snap, err := openSnapshot(args[0])
	if err != nil {
		return err
	}

	target, err := findTargetNode(snap, id, text, exact)
	if err != nil {
		return err
	}

	cfg := resolve.Config{
		RowTolerance: rowTol,
		IndentStep:   indent,
		ColumnGap:    columnGap,
		TitleDepth:   titleDepth,
		Separator:    sep,
		Logger:       appLog,
	}

	boundary := model.InvalidNode
	if boundaryID > 0 {
		boundary = snap.ByID(boundaryID)
	}

	path, ok := resolve.Run(cfg, snap, resolve.Request{
		Target:   target,
		Boundary: boundary,
		BasePath: base,
	})

	tn := snap.Node(target)
	return output.Print(output.ResolveResult{
		Path:     path,
		OK:       ok,
		Target:   tn.ID,
		Text:     tn.Text,
		Boundary: boundaryID,
		Base:     base,
	})
}
