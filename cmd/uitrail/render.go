package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/uitrail/uitrail/internal/output"
)

var renderCmd = &cobra.Command{
	Use:   "render <snapshot-file>",
	Short: "Draw the snapshot layout to a PNG",
	Long: `Draw the captured layout as element boxes on a blank canvas, labeled
with element IDs or text. Useful to eyeball the geometry the resolver
works from.

Examples:
  uitrail render settings.json -o layout.png
  uitrail render settings.json -o layout.png --labels text --highlight 42`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringP("out", "o", "snapshot.png", "Output PNG file")
	renderCmd.Flags().String("labels", "ids", "Label mode: ids, text, none")
	renderCmd.Flags().Int("highlight", 0, "Element ID to highlight")
	renderCmd.Flags().Bool("visible-only", true, "Skip hidden elements")
}

// renderResult is the top-level output of the render command.
type renderResult struct {
	OK       bool   `yaml:"ok"       json:"ok"`
	File     string `yaml:"file"     json:"file"`
	Elements int    `yaml:"elements" json:"elements"`
	Width    int    `yaml:"width"    json:"width"`
	Height   int    `yaml:"height"   json:"height"`
}

func runRender(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")
	labels, _ := cmd.Flags().GetString("labels")
	highlight, _ := cmd.Flags().GetInt("highlight")
	visibleOnly, _ := cmd.Flags().GetBool("visible-only")

	var mode labelMode
	switch labels {
	case "ids":
		mode = labelIDs
	case "text":
		mode = labelText
	case "none":
		mode = labelNone
	default:
		return fmt.Errorf("unsupported label mode: %s (use ids, text, or none)", labels)
	}

	_, snap, err := openSnapshot(args[0])
	if err != nil {
		return err
	}

	img, drawn := renderSnapshot(snap, renderOptions{
		Mode:        mode,
		Highlight:   highlight,
		VisibleOnly: visibleOnly,
	})

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", out, err)
	}

	return output.Print(renderResult{
		OK:       true,
		File:     out,
		Elements: drawn,
		Width:    img.Bounds().Dx(),
		Height:   img.Bounds().Dy(),
	})
}
