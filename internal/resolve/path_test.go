package resolve

import (
	"testing"

	"github.com/uitrail/uitrail/pkg/model"
)

func TestJoinSegments(t *testing.T) {
	tests := []struct {
		name string
		segs []string
		want string
		ok   bool
	}{
		{"plain", []string{"Editor", "General"}, "Editor | General", true},
		{"blanks dropped", []string{"", "Editor", "  ", "General"}, "Editor | General", true},
		{"adjacent duplicates collapse", []string{"Appearance", "Appearance", "Menus"}, "Appearance | Menus", true},
		{"non-adjacent duplicates stay", []string{"Editor", "Font", "Editor"}, "Editor | Font | Editor", true},
		{"whitespace trimmed", []string{" Editor ", "General"}, "Editor | General", true},
		{"trailing separator trimmed", []string{"Editor |"}, "Editor", true},
		{"empty", nil, "", false},
		{"all blank", []string{"", "  "}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := joinSegments(tt.segs, DefaultSeparator)
			if got != tt.want || ok != tt.ok {
				t.Errorf("joinSegments(%v) = %q, %v, want %q, %v", tt.segs, got, ok, tt.want, tt.ok)
			}
		})
	}
}

// autoImportTree builds a nested settings page:
//
//	tabs (Editor selected)
//	└── tabs (General selected)
//	    └── border "Auto Import"
//	        ├── ── Java ─────────────
//	        ├── Insert imports on paste:    ← id 6
//	        └── ── XML ──────────────
func autoImportTree() *model.Snapshot {
	st := 0
	root := model.Element{ID: 1, Kind: model.KindContainer, Bounds: [4]int{0, 0, 800, 600}, Children: []model.Element{
		{ID: 2, Kind: model.KindTabs, Bounds: [4]int{0, 0, 800, 600}, Tabs: []string{"Editor", "Plugins"}, SelectedTab: &st, Children: []model.Element{
			{ID: 3, Kind: model.KindTabs, Bounds: [4]int{0, 0, 800, 570}, SelectedTabTitle: "General", Children: []model.Element{
				{ID: 4, Kind: model.KindBorder, Text: "Auto Import", Bounds: [4]int{0, 0, 780, 520}, Children: []model.Element{
					{ID: 5, Kind: model.KindSeparator, Text: "Java", Bounds: [4]int{20, 60, 740, 1}},
					{ID: 6, Kind: model.KindLabel, Text: "Insert imports on paste:", Bounds: [4]int{30, 90, 200, 20}},
					{ID: 7, Kind: model.KindSeparator, Text: "XML", Bounds: [4]int{20, 150, 740, 1}},
				}},
			}},
		}},
	}}
	return model.Index(&root)
}

func TestRun_NestedTabsWithSection(t *testing.T) {
	snap := autoImportTree()
	got, ok := Run(Config{}, snap, Request{Target: nodeByID(t, snap, 6)})
	want := "Editor | General | Auto Import | Java | Insert imports on paste:"
	if !ok || got != want {
		t.Errorf("Run() = %q, %v, want %q, true", got, ok, want)
	}
}

func TestRun_BasePathLeads(t *testing.T) {
	snap := autoImportTree()
	got, ok := Run(Config{}, snap, Request{Target: nodeByID(t, snap, 6), BasePath: "Settings"})
	want := "Settings | Editor | General | Auto Import | Java | Insert imports on paste:"
	if !ok || got != want {
		t.Errorf("Run() = %q, %v, want %q, true", got, ok, want)
	}
}

func TestRun_Deterministic(t *testing.T) {
	snap := autoImportTree()
	req := Request{Target: nodeByID(t, snap, 6)}
	first, ok1 := Run(Config{}, snap, req)
	second, ok2 := Run(Config{}, snap, req)
	if first != second || ok1 != ok2 {
		t.Errorf("repeated Run() differs: %q, %v vs %q, %v", first, ok1, second, ok2)
	}
}

func TestRun_NullWhenNothingKnown(t *testing.T) {
	t.Run("nil snapshot", func(t *testing.T) {
		if got, ok := Run(Config{}, nil, Request{}); ok || got != "" {
			t.Errorf("Run() = %q, %v, want empty, false", got, ok)
		}
	})
	t.Run("unknown target", func(t *testing.T) {
		if got, ok := Run(Config{}, dialog(), Request{Target: 99}); ok || got != "" {
			t.Errorf("Run() = %q, %v, want empty, false", got, ok)
		}
	})
	t.Run("textless target in a bare panel", func(t *testing.T) {
		snap := dialog(el(2, model.KindCheckbox, "", 20, 40))
		if got, ok := Run(Config{}, snap, Request{Target: nodeByID(t, snap, 2)}); ok || got != "" {
			t.Errorf("Run() = %q, %v, want empty, false", got, ok)
		}
	})
}

func TestRun_DedupesBaseAgainstTrail(t *testing.T) {
	// The supplied base path already names the dialog; the border repeating
	// it must not double up.
	root := model.Element{ID: 1, Kind: model.KindContainer, Bounds: [4]int{0, 0, 400, 300}, Children: []model.Element{
		{ID: 2, Kind: model.KindBorder, Text: "Appearance", Bounds: [4]int{10, 10, 380, 280}, Children: []model.Element{
			{ID: 3, Kind: model.KindCheckbox, Text: "Show icons", Bounds: [4]int{20, 50, 150, 20}},
		}},
	}}
	snap := model.Index(&root)
	got, ok := Run(Config{}, snap, Request{Target: nodeByID(t, snap, 3), BasePath: "Appearance"})
	if !ok || got != "Appearance | Show icons" {
		t.Errorf("Run() = %q, %v, want %q, true", got, ok, "Appearance | Show icons")
	}
}

func TestRun_BoundaryScopesResolution(t *testing.T) {
	root := model.Element{ID: 1, Kind: model.KindContainer, Bounds: [4]int{0, 0, 800, 600}, Children: []model.Element{
		{ID: 2, Kind: model.KindBorder, Text: "Outer", Bounds: [4]int{0, 0, 800, 560}, Children: []model.Element{
			{ID: 3, Kind: model.KindBorder, Text: "Inner", Bounds: [4]int{10, 10, 780, 540}, Children: []model.Element{
				{ID: 4, Kind: model.KindLabel, Text: "Tab Options", Emphasized: true, Bounds: [4]int{20, 20, 150, 20}},
				{ID: 5, Kind: model.KindCheckbox, Text: "Reuse tabs", Bounds: [4]int{20, 60, 150, 20}},
			}},
		}},
		{ID: 6, Kind: model.KindCheckbox, Text: "Unrelated", Bounds: [4]int{400, 580, 150, 20}},
	}}
	snap := model.Index(&root)
	target := nodeByID(t, snap, 5)

	t.Run("boundary excludes outer containers", func(t *testing.T) {
		got, ok := Run(Config{}, snap, Request{Target: target, Boundary: nodeByID(t, snap, 3)})
		if !ok || got != "Tab Options | Reuse tabs" {
			t.Errorf("Run() = %q, %v, want %q, true", got, ok, "Tab Options | Reuse tabs")
		}
	})
	t.Run("unset boundary resolves from the root", func(t *testing.T) {
		got, ok := Run(Config{}, snap, Request{Target: target})
		want := "Tab Options | Outer | Inner | Reuse tabs"
		if !ok || got != want {
			t.Errorf("Run() = %q, %v, want %q, true", got, ok, want)
		}
	})
	t.Run("non-ancestor boundary falls back to the root", func(t *testing.T) {
		got, ok := Run(Config{}, snap, Request{Target: target, Boundary: nodeByID(t, snap, 6)})
		want := "Tab Options | Outer | Inner | Reuse tabs"
		if !ok || got != want {
			t.Errorf("Run() = %q, %v, want %q, true", got, ok, want)
		}
	})
	t.Run("boundary at the target yields only the target", func(t *testing.T) {
		got, ok := Run(Config{}, snap, Request{Target: target, Boundary: target})
		if !ok || got != "Reuse tabs" {
			t.Errorf("Run() = %q, %v, want %q, true", got, ok, "Reuse tabs")
		}
	})
}

func TestRun_CustomSeparator(t *testing.T) {
	root := model.Element{ID: 1, Kind: model.KindContainer, Bounds: [4]int{0, 0, 400, 300}, Children: []model.Element{
		{ID: 2, Kind: model.KindBorder, Text: "Display", Bounds: [4]int{10, 10, 380, 280}, Children: []model.Element{
			{ID: 3, Kind: model.KindCheckbox, Text: "Show line numbers", Bounds: [4]int{20, 50, 150, 20}},
		}},
	}}
	snap := model.Index(&root)
	got, ok := Run(Config{Separator: " > "}, snap, Request{Target: nodeByID(t, snap, 3)})
	if !ok || got != "Display > Show line numbers" {
		t.Errorf("Run() = %q, %v, want %q, true", got, ok, "Display > Show line numbers")
	}
}

func TestRun_IndentStepControlsNesting(t *testing.T) {
	snap := dialog(
		el(2, model.KindCheckbox, "Use custom colors", 20, 40),
		el(3, model.KindCheckbox, "Background", 40, 70),
	)
	target := nodeByID(t, snap, 3)

	got, ok := Run(Config{}, snap, Request{Target: target})
	if !ok || got != "Use custom colors | Background" {
		t.Errorf("Run() = %q, %v, want %q, true", got, ok, "Use custom colors | Background")
	}

	// A coarser indent step stops reading the 20px offset as nesting.
	got, ok = Run(Config{IndentStep: 30}, snap, Request{Target: target})
	if !ok || got != "Background" {
		t.Errorf("Run(IndentStep: 30) = %q, %v, want %q, true", got, ok, "Background")
	}
}
