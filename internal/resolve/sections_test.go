package resolve

import (
	"testing"

	"github.com/uitrail/uitrail/pkg/model"
)

func TestCollectSeparators(t *testing.T) {
	snap := dialog(
		el(2, model.KindSeparator, "Appearance", 20, 40),
		el(3, model.KindSeparator, "", 20, 100),
		hide(el(4, model.KindSeparator, "Hidden", 20, 160)),
		hide(model.Element{ID: 5, Kind: model.KindContainer, Bounds: [4]int{0, 200, 400, 100}, Children: []model.Element{
			{ID: 6, Kind: model.KindSeparator, Text: "Nested", Bounds: [4]int{20, 20, 150, 20}},
		}}),
		el(7, model.KindSeparator, "Target", 20, 340),
	)
	p := newPass(snap)
	seps := p.collectSeparators(nodeByID(t, snap, 7))
	if len(seps) != 2 {
		t.Fatalf("collectSeparators() returned %d separators, want 2", len(seps))
	}
	// The untitled one stays: it fences sections without naming one.
	if seps[0].text != "Appearance" || seps[1].text != "" {
		t.Errorf("unexpected separators: %q, %q", seps[0].text, seps[1].text)
	}
}

func TestNearestSeparatorAbove(t *testing.T) {
	p := newPass(dialog())
	target := model.Point{X: 30, Y: 160}
	tests := []struct {
		name string
		seps []sepInfo
		want string
		ok   bool
	}{
		{"closest above wins", []sepInfo{
			{id: 1, pos: model.Point{X: 20, Y: 40}, text: "Appearance"},
			{id: 2, pos: model.Point{X: 20, Y: 100}, text: "Fonts"},
		}, "Fonts", true},
		{"below target ignored", []sepInfo{
			{id: 1, pos: model.Point{X: 20, Y: 200}, text: "Colors"},
		}, "", false},
		{"same row breaks to horizontally nearest", []sepInfo{
			{id: 1, pos: model.Point{X: 200, Y: 100}, text: "Far"},
			{id: 2, pos: model.Point{X: 20, Y: 100}, text: "Near"},
		}, "Near", true},
		{"equal distance breaks to leftmost", []sepInfo{
			{id: 1, pos: model.Point{X: 40, Y: 100}, text: "Right"},
			{id: 2, pos: model.Point{X: 20, Y: 100}, text: "Left"},
		}, "Left", true},
		{"no separators", nil, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sep, ok := p.nearestSeparatorAbove(tt.seps, target, false)
			if ok != tt.ok || (ok && sep.text != tt.want) {
				t.Errorf("nearestSeparatorAbove() = %q, %v, want %q, %v", sep.text, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestMultiColumnSeps(t *testing.T) {
	p := newPass(dialog())
	tests := []struct {
		name string
		seps []sepInfo
		want bool
	}{
		{"two columns", []sepInfo{
			{id: 1, pos: model.Point{X: 20, Y: 100}},
			{id: 2, pos: model.Point{X: 400, Y: 102}},
		}, true},
		{"stacked sections", []sepInfo{
			{id: 1, pos: model.Point{X: 20, Y: 100}},
			{id: 2, pos: model.Point{X: 20, Y: 200}},
		}, false},
		{"same row but near", []sepInfo{
			{id: 1, pos: model.Point{X: 20, Y: 100}},
			{id: 2, pos: model.Point{X: 120, Y: 100}},
		}, false},
		{"single", []sepInfo{{id: 1, pos: model.Point{X: 20, Y: 100}}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.multiColumnSeps(tt.seps); got != tt.want {
				t.Errorf("multiColumnSeps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNearestSeparatorAbove_MultiColumn(t *testing.T) {
	// Two-column settings panel; each target must resolve to its own
	// column's heading even when the other column's is horizontally closer
	// to the panel edge.
	//
	//	── General ──────        ── Updates ──────
	//	[ ] Show tips            [ ] Check weekly
	snap := dialog(
		el(2, model.KindSeparator, "General", 20, 100),
		el(3, model.KindSeparator, "Updates", 400, 100),
		el(4, model.KindCheckbox, "Check weekly", 420, 150),
		el(5, model.KindCheckbox, "Show tips", 30, 150),
	)
	p := newPass(snap)
	seps := p.collectSeparators(nodeByID(t, snap, 4))
	if !p.multiColumnSeps(seps) {
		t.Fatal("multiColumnSeps() = false, want true")
	}

	right, ok := p.nearestSeparatorAbove(seps, snap.Absolute(nodeByID(t, snap, 4)), true)
	if !ok || right.text != "Updates" {
		t.Errorf("right-column separator = %q, %v, want %q, true", right.text, ok, "Updates")
	}
	left, ok := p.nearestSeparatorAbove(seps, snap.Absolute(nodeByID(t, snap, 5)), true)
	if !ok || left.text != "General" {
		t.Errorf("left-column separator = %q, %v, want %q, true", left.text, ok, "General")
	}
}
