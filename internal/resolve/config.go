package resolve

import (
	"log/slog"

	"github.com/uitrail/uitrail/internal/logging"
)

// Default geometric tolerances. These encode the visual-design assumptions
// of the dialogs being resolved and are overridable per resolver.
const (
	// DefaultRowTolerance is the max Y delta for two elements to count as
	// sharing a visual row.
	DefaultRowTolerance = 8

	// DefaultIndentStep is the smallest X delta recognized as one nesting
	// level of indentation.
	DefaultIndentStep = 12

	// DefaultColumnGap is the X distance beyond which elements belong to
	// different columns of a multi-column layout.
	DefaultColumnGap = 160

	// DefaultTitleDepth bounds the title search below a boundary root.
	DefaultTitleDepth = 3

	// DefaultSeparator joins path segments in the output.
	DefaultSeparator = " | "
)

// Title-shape limits for the fallback title strategy.
const (
	minTitleLen = 3
	maxTitleLen = 50
)

// shortcutHints mark a label as a keyboard-shortcut hint rather than a
// title.
var shortcutHints = []string{"Ctrl+", "Cmd+", "Alt+"}

// Config carries the tunable thresholds and the logger for one resolver.
// Zero fields fall back to the defaults above.
type Config struct {
	RowTolerance int
	IndentStep   int
	ColumnGap    int
	TitleDepth   int
	Separator    string
	Logger       *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.RowTolerance == 0 {
		c.RowTolerance = DefaultRowTolerance
	}
	if c.IndentStep == 0 {
		c.IndentStep = DefaultIndentStep
	}
	if c.ColumnGap == 0 {
		c.ColumnGap = DefaultColumnGap
	}
	if c.TitleDepth == 0 {
		c.TitleDepth = DefaultTitleDepth
	}
	if c.Separator == "" {
		c.Separator = DefaultSeparator
	}
	if c.Logger == nil {
		c.Logger = logging.NewNop()
	}
	return c
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
